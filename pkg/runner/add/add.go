package add

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/codex/pkg/app"
)

// Add creates a new entry, top-level by default or under Parent.
type Add struct {
	Service *app.Service
	Topic   string
	Parent  string
	Name    string
	Type    string
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}
	if n.Name == "" {
		return errors.New("an entry needs a name")
	}

	var id string
	var err error
	if n.Parent == "" {
		e, cerr := n.Service.CreateRoot(ctx, n.Topic, n.Name, n.Type)
		id, err = e.ID, cerr
	} else {
		e, cerr := n.Service.CreateChild(ctx, n.Topic, n.Parent, n.Name, n.Type)
		id, err = e.ID, cerr
	}
	if err != nil {
		return err
	}

	faint := color.New(color.Faint)
	fmt.Printf("added %s to %s\n", n.Name, n.Topic)
	_, _ = faint.Printf("  %s\n", id)
	return nil
}
