package store

import (
	"context"
	"fmt"
)

// FlagStore is the persistence contract for the core. Values are whole
// JSON blobs: callers read a snapshot, mutate it in memory, and write
// the whole thing back. Scopes look like "world" or "world/topic" and
// identify the owner of a flag namespace.
type FlagStore interface {
	// GetFlag unmarshals the stored blob into out and reports whether
	// the flag existed. A missing flag is not an error; out is left
	// untouched so callers keep their zero value as the default.
	GetFlag(ctx context.Context, scope, key string, out any) (bool, error)
	SetFlag(ctx context.Context, scope, key string, value any) error
	UnsetFlag(ctx context.Context, scope, key string) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Flag keys used by the core. Hierarchy and top-node blobs are scoped
// per world/topic, the rest per world.
const (
	KeyHierarchies  = "hierarchies"
	KeyTopNodes     = "topNodes"
	KeyEntries      = "entries"
	KeyTopics       = "topics"
	KeyTabs         = "tabs"
	KeyRecent       = "recentlyViewed"
	KeyExpanded     = "expandedIds"
	KeyExpandedCamp = "expandedCampaignIds"
)

// PersistenceError wraps a storage failure with the scope and key that
// was being written. In-memory state is not rolled back when one of
// these surfaces; callers re-read the flag to resynchronize.
type PersistenceError struct {
	Scope string
	Key   string
	Err   error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("store: %s/%s: %v", e.Scope, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
