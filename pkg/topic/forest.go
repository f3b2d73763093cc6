// Package topic scopes hierarchy operations to one topic's forest and
// keeps the persisted top-node list in step with it.
package topic

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"tableflip.dev/codex/pkg/hierarchy"
	"tableflip.dev/codex/pkg/store"
)

// Forest owns one topic's hierarchy snapshot and topNodes list. Every
// mutation loads the persisted blobs, applies the structural change,
// and rewrites the hierarchy blob (plus topNodes when membership
// changed). Validation always happens before the first write, so a
// rejected operation leaves nothing half-persisted. A write failure
// after validation can leave memory ahead of disk; callers re-read to
// resynchronize.
type Forest struct {
	Store store.FlagStore
	World string
	Topic string

	// NewID generates entry ids; defaults to random UUIDs.
	NewID func() string
}

func (f *Forest) scope() string {
	return f.World + "/" + f.Topic
}

func (f *Forest) newID() string {
	if f.NewID != nil {
		return f.NewID()
	}
	return uuid.NewString()
}

// Snapshot loads the hierarchy map and top-node list.
func (f *Forest) Snapshot(ctx context.Context) (hierarchy.Map, []string, error) {
	m := hierarchy.Map{}
	if _, err := f.Store.GetFlag(ctx, f.scope(), store.KeyHierarchies, &m); err != nil {
		return nil, nil, err
	}
	var top []string
	if _, err := f.Store.GetFlag(ctx, f.scope(), store.KeyTopNodes, &top); err != nil {
		return nil, nil, err
	}
	return m, top, nil
}

func (f *Forest) persist(ctx context.Context, m hierarchy.Map, top []string, topChanged bool) error {
	if err := f.Store.SetFlag(ctx, f.scope(), store.KeyHierarchies, m); err != nil {
		return err
	}
	if topChanged {
		if top == nil {
			top = []string{}
		}
		return f.Store.SetFlag(ctx, f.scope(), store.KeyTopNodes, top)
	}
	return nil
}

// CreateRoot adds a new top-level entry and returns its id.
func (f *Forest) CreateRoot(ctx context.Context, typ string) (string, error) {
	m, top, err := f.Snapshot(ctx)
	if err != nil {
		return "", err
	}
	id := f.newID()
	m, err = hierarchy.InsertRoot(m, id, typ)
	if err != nil {
		return "", err
	}
	top = append(top, id)
	if err := f.persist(ctx, m, top, true); err != nil {
		return "", err
	}
	return id, nil
}

// CreateChild adds a new entry under parentID and returns its id.
func (f *Forest) CreateChild(ctx context.Context, parentID, typ string) (string, error) {
	m, _, err := f.Snapshot(ctx)
	if err != nil {
		return "", err
	}
	id := f.newID()
	m, err = hierarchy.InsertChild(m, id, parentID, typ)
	if err != nil {
		return "", err
	}
	if err := f.persist(ctx, m, nil, false); err != nil {
		return "", err
	}
	return id, nil
}

// Move reparents id under newParentID, or to the top level when
// newParentID is empty, updating topNodes membership as needed.
func (f *Forest) Move(ctx context.Context, id, newParentID string) error {
	m, top, err := f.Snapshot(ctx)
	if err != nil {
		return err
	}
	node, ok := m[id]
	if !ok {
		return hierarchy.ErrNotFound
	}
	wasTop := node.ParentID == ""

	m, err = hierarchy.Reparent(m, id, newParentID)
	if err != nil {
		return err
	}

	topChanged := false
	switch {
	case wasTop && newParentID != "":
		top = removeID(top, id)
		topChanged = true
	case !wasTop && newParentID == "":
		top = append(top, id)
		topChanged = true
	}
	return f.persist(ctx, m, top, topChanged)
}

// Delete removes id, reflowing its children onto its former parent.
// Children of a deleted top-level entry become top-level themselves.
func (f *Forest) Delete(ctx context.Context, id string) error {
	m, top, err := f.Snapshot(ctx)
	if err != nil {
		return err
	}
	res, err := hierarchy.DeleteWithReflow(m, id)
	if err != nil {
		return err
	}

	topChanged := false
	if withinList(top, id) {
		top = removeID(top, id)
		topChanged = true
	}
	if len(res.OrphanedTopLevelIDs) > 0 {
		top = append(top, res.OrphanedTopLevelIDs...)
		topChanged = true
	}
	return f.persist(ctx, res.Map, top, topChanged)
}

// ValidParents lists every entry id could move under without creating a
// cycle: everything except id itself and its descendants.
func (f *Forest) ValidParents(ctx context.Context, id string) ([]string, error) {
	m, _, err := f.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	var out []string
	for candidate := range m {
		if candidate == id {
			continue
		}
		if hierarchy.IsAncestorOf(m, id, candidate) {
			continue
		}
		out = append(out, candidate)
	}
	sort.Strings(out)
	return out, nil
}

// ValidChildren lists every entry that could move under id: everything
// except id itself and its own ancestors.
func (f *Forest) ValidChildren(ctx context.Context, id string) ([]string, error) {
	m, _, err := f.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	var out []string
	for candidate := range m {
		if candidate == id {
			continue
		}
		if hierarchy.IsAncestorOf(m, candidate, id) {
			continue
		}
		out = append(out, candidate)
	}
	sort.Strings(out)
	return out, nil
}

func removeID(list []string, id string) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

func withinList(list []string, id string) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}
