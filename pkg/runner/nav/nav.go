package nav

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/codex/pkg/app"
)

// Nav moves the active tab back or forward through its history.
type Nav struct {
	Service *app.Service
	Forward bool
}

func (n *Nav) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not navigate, no service")
	}
	tab, err := n.Service.TabManager().Navigate(ctx, n.Forward)
	if err != nil {
		return err
	}
	if tab == nil {
		return errors.New("no open tabs")
	}
	fmt.Printf("showing %s (%d/%d)\n", tab.Header.Name, tab.HistoryIdx+1, len(tab.History))
	return nil
}
