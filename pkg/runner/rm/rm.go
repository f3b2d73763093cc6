package rm

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/codex/pkg/app"
)

// Remove deletes an entry; its children reflow onto its former parent.
type Remove struct {
	Service *app.Service
	Topic   string
	ID      string
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no service")
	}
	if err := n.Service.Delete(ctx, n.Topic, n.ID); err != nil {
		return err
	}
	fmt.Printf("removed %s from %s\n", n.ID, n.Topic)
	return nil
}
