package recent

import (
	"context"
	"errors"

	"tableflip.dev/codex/pkg/app"
	"tableflip.dev/codex/pkg/printers"
)

// Recent prints the recently-viewed list.
type Recent struct {
	Service *app.Service
}

func (n *Recent) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list, no service")
	}
	manager := n.Service.TabManager()
	if err := manager.Load(ctx); err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("Recently viewed")
	pp.Recent(manager.Recent())
	return nil
}
