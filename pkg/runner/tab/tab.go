package tab

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/codex/pkg/app"
	"tableflip.dev/codex/pkg/printers"
)

// List prints the world's tabs.
type List struct {
	Service *app.Service
	ShowID  bool
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list tabs, no service")
	}
	manager := n.Service.TabManager()
	if err := manager.Load(ctx); err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.Tabs(manager.Tabs())
	return nil
}

// Activate switches the active tab.
type Activate struct {
	Service *app.Service
	ID      string
}

func (n *Activate) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not activate, no service")
	}
	manager := n.Service.TabManager()
	if err := manager.ActivateTab(ctx, n.ID); err != nil {
		return err
	}
	if active := manager.ActiveTab(true); active != nil {
		fmt.Printf("showing %s\n", active.Header.Name)
	}
	return nil
}

// Close removes a tab. If it was the active one the next `tabs activate`
// picks the replacement; nothing is chosen automatically.
type Close struct {
	Service *app.Service
	ID      string
}

func (n *Close) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not close, no service")
	}
	return n.Service.TabManager().CloseTab(ctx, n.ID)
}
