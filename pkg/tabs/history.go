// Package tabs models per-world browsing: tabs with branch-on-navigate
// history, an active-tab collection, and the recently-viewed list.
package tabs

// Kind distinguishes what a history entry points at.
type Kind string

const (
	// KindNewTab is the placeholder a fresh tab starts on.
	KindNewTab Kind = "new"
	// KindEntry is a content entry reference.
	KindEntry Kind = "entry"
)

// HistoryEntry is one visited reference. An empty ContentID is the
// new-tab placeholder.
type HistoryEntry struct {
	ContentID string `json:"contentId,omitempty"`
	Kind      Kind   `json:"tabType"`
}

// Header summarizes what the tab currently displays.
type Header struct {
	UUID string `json:"uuid,omitempty"`
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

// Tab is one browsing context. History always holds at least one entry
// and HistoryIdx always points inside it.
type Tab struct {
	ID         string         `json:"id"`
	Active     bool           `json:"active"`
	History    []HistoryEntry `json:"history"`
	HistoryIdx int            `json:"historyIdx"`
	Header     Header         `json:"header"`
}

// newTabName is what an unnavigated tab shows in tab lists.
const newTabName = "New Tab"

// NewTab returns a tab sitting on the placeholder entry.
func NewTab(id string) *Tab {
	return &Tab{
		ID:         id,
		History:    []HistoryEntry{{Kind: KindNewTab}},
		HistoryIdx: 0,
		Header:     Header{Name: newTabName},
	}
}

// NavigateTo records a visit. A tab still sitting on its placeholder
// swaps the placeholder for the real entry. Otherwise any forward
// entries past the current position are discarded and the new entry is
// appended: visiting somewhere new from a back state abandons the old
// forward branch, like a browser tab.
func (t *Tab) NavigateTo(contentID string, kind Kind) {
	entry := HistoryEntry{ContentID: contentID, Kind: kind}
	if len(t.History) == 1 && t.History[0].ContentID == "" {
		t.History[0] = entry
		t.HistoryIdx = 0
		return
	}
	t.History = append(t.History[:t.HistoryIdx+1], entry)
	t.HistoryIdx = len(t.History) - 1
}

// Back moves one step toward the oldest entry and reports whether the
// position changed. At the start it is a no-op.
func (t *Tab) Back() bool {
	if t.HistoryIdx <= 0 {
		return false
	}
	t.HistoryIdx--
	return true
}

// Forward moves one step toward the newest entry and reports whether
// the position changed. At the end it is a no-op.
func (t *Tab) Forward() bool {
	if t.HistoryIdx >= len(t.History)-1 {
		return false
	}
	t.HistoryIdx++
	return true
}

// Current returns the history entry under the position pointer.
func (t *Tab) Current() HistoryEntry {
	return t.History[t.HistoryIdx]
}
