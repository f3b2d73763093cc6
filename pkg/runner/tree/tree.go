package tree

import (
	"context"
	"errors"

	"tableflip.dev/codex/pkg/app"
	"tableflip.dev/codex/pkg/printers"
)

// Tree prints one topic's forest, or every topic with All. With Folded
// set it respects the saved expand state instead of showing every node.
type Tree struct {
	Service  *app.Service
	Topic    string
	All      bool
	Folded   bool
	Campaign bool
	ShowID   bool
}

func (n *Tree) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not print tree, no service")
	}

	topics := []string{n.Topic}
	if n.All || n.Topic == "" {
		var err error
		topics, err = n.Service.Topics(ctx)
		if err != nil {
			return err
		}
	}

	var expanded map[string]bool
	if n.Folded {
		var err error
		expanded, err = n.Service.ExpandedAll(ctx, n.Campaign)
		if err != nil {
			return err
		}
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	for _, topic := range topics {
		m, top, err := n.Service.Forest(topic).Snapshot(ctx)
		if err != nil {
			return err
		}
		names, err := n.Service.Catalog().Names(ctx, topic)
		if err != nil {
			return err
		}
		pp.Title(topic)
		pp.Forest(m, top, names, expanded)
	}
	return nil
}
