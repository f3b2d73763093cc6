package expand

import (
	"context"
	"errors"

	"tableflip.dev/codex/pkg/app"
)

// Expand records a node's expand state for the directory view (or the
// campaign view with Campaign set).
type Expand struct {
	Service  *app.Service
	ID       string
	Collapse bool
	Campaign bool
}

func (n *Expand) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not expand, no service")
	}
	if n.ID == "" {
		return errors.New("an entry id is required")
	}
	return n.Service.SetExpanded(ctx, n.ID, !n.Collapse, n.Campaign)
}
