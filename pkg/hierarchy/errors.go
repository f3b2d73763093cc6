package hierarchy

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an operation references an entry id that
// is not present in the supplied snapshot.
var ErrNotFound = errors.New("hierarchy: entry not found")

// DuplicateEntryError reports an insert with an id that already exists.
// This is a programming error on the caller's side, not something a
// user can recover from by retrying.
type DuplicateEntryError struct {
	ID string
}

func (e *DuplicateEntryError) Error() string {
	return fmt.Sprintf("hierarchy: entry %q already exists", e.ID)
}

// UnknownParentError reports a reference to a parent id that is not in
// the snapshot. Callers should re-validate against a fresh snapshot.
type UnknownParentError struct {
	ParentID string
}

func (e *UnknownParentError) Error() string {
	return fmt.Sprintf("hierarchy: unknown parent %q", e.ParentID)
}

// CycleError reports a reparent that would make an entry its own
// ancestor. The snapshot is left untouched when this is returned.
type CycleError struct {
	ID       string
	ParentID string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("hierarchy: moving %q under %q would create a cycle", e.ID, e.ParentID)
}
