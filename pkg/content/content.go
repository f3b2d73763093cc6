// Package content holds the display metadata for entries and resolves
// content references for the tab layer.
package content

import "context"

// Entry is the catalog record for one content node: identity, display
// name, and the topic-defined subtype. Tree position lives in the
// hierarchy snapshot, not here.
type Entry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

// Summary is what a resolved content reference looks like to the tab
// layer.
type Summary struct {
	Name  string
	Type  string
	Topic string
}

// Resolver turns a content id into its display summary. A nil Summary
// with a nil error means the content no longer exists; navigation then
// shows a missing placeholder instead of failing.
type Resolver interface {
	Resolve(ctx context.Context, id string) (*Summary, error)
}
