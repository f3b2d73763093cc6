package move

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/codex/pkg/app"
	"tableflip.dev/codex/pkg/hierarchy"
)

// Move reparents an entry within its topic. An empty Parent moves the
// entry to the top level.
type Move struct {
	Service *app.Service
	Topic   string
	ID      string
	Parent  string
}

func (n *Move) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not move, no service")
	}
	err := n.Service.Move(ctx, n.Topic, n.ID, n.Parent)

	var cyc *hierarchy.CycleError
	if errors.As(err, &cyc) {
		// Surface a friendlier message; the forest was left untouched.
		return fmt.Errorf("%q cannot move under its own descendant %q", cyc.ID, cyc.ParentID)
	}
	if err != nil {
		return err
	}

	if n.Parent == "" {
		fmt.Printf("moved %s to the top level\n", n.ID)
	} else {
		fmt.Printf("moved %s under %s\n", n.ID, n.Parent)
	}
	return nil
}

// ListParents prints the entries ID could legally move under.
type ListParents struct {
	Service *app.Service
	Topic   string
	ID      string
}

func (n *ListParents) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list, no service")
	}
	ids, err := n.Service.Forest(n.Topic).ValidParents(ctx, n.ID)
	if err != nil {
		return err
	}
	names, err := n.Service.Catalog().Names(ctx, n.Topic)
	if err != nil {
		return err
	}
	for _, id := range ids {
		name := names[id]
		if name == "" {
			name = id
		}
		fmt.Printf("%s  %s\n", id, name)
	}
	return nil
}
