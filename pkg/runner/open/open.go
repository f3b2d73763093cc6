package open

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/codex/pkg/app"
	"tableflip.dev/codex/pkg/tabs"
)

// Open shows an entry in a tab: a new one by default, or the active tab
// with InPlace.
type Open struct {
	Service    *app.Service
	ContentID  string
	InPlace    bool
	Background bool
	NoHistory  bool
}

func (n *Open) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not open, no service")
	}
	opts := tabs.OpenOptions{
		Activate:      !n.Background,
		NewTab:        !n.InPlace,
		UpdateHistory: !n.NoHistory,
	}
	tab, err := n.Service.TabManager().OpenEntry(ctx, n.ContentID, opts)
	if err != nil {
		return err
	}
	fmt.Printf("showing %s\n", tab.Header.Name)
	return nil
}
