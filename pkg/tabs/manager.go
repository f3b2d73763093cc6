package tabs

import (
	"context"

	"github.com/google/uuid"

	"tableflip.dev/codex/pkg/content"
	"tableflip.dev/codex/pkg/store"
)

// missingName is displayed when a history entry points at content that
// no longer resolves.
const missingName = "(missing)"

// Manager owns the world's tab list and recently-viewed list. State is
// loaded from the flag store once and mutated in memory; every mutation
// ends with a rewrite of the affected flag. A persistence failure
// leaves memory ahead of disk; callers re-Load to resynchronize.
type Manager struct {
	Store    store.FlagStore
	Resolver content.Resolver
	World    string

	// NewID generates tab ids; defaults to random UUIDs.
	NewID func() string

	tabs   []*Tab
	recent RecentList
	loaded bool
}

// OpenOptions controls OpenEntry. The zero value opens in place without
// activating or recording history; DefaultOpenOptions matches the usual
// "open in new tab" gesture.
type OpenOptions struct {
	Activate      bool
	NewTab        bool
	UpdateHistory bool
}

// DefaultOpenOptions activates a fresh tab and records history.
func DefaultOpenOptions() OpenOptions {
	return OpenOptions{Activate: true, NewTab: true, UpdateHistory: true}
}

// Load reads the tabs and recently-viewed flags. Calling it again
// re-reads, which is how callers resynchronize after a write failure.
func (m *Manager) Load(ctx context.Context) error {
	var tabs []*Tab
	if _, err := m.Store.GetFlag(ctx, m.World, store.KeyTabs, &tabs); err != nil {
		return err
	}
	var recent RecentList
	if _, err := m.Store.GetFlag(ctx, m.World, store.KeyRecent, &recent); err != nil {
		return err
	}
	m.tabs = tabs
	m.recent = recent
	m.loaded = true
	return nil
}

func (m *Manager) ensure(ctx context.Context) error {
	if m.loaded {
		return nil
	}
	return m.Load(ctx)
}

// Tabs returns the in-memory tab list in order.
func (m *Manager) Tabs() []*Tab { return m.tabs }

// Recent returns the in-memory recently-viewed list, newest first.
func (m *Manager) Recent() RecentList { return m.recent }

// ActiveTab returns the tab flagged active. When none is flagged and
// findOne is set it falls back to the first tab, recovering quietly
// from inconsistent persisted state.
func (m *Manager) ActiveTab(findOne bool) *Tab {
	for _, t := range m.tabs {
		if t.Active {
			return t
		}
	}
	if findOne && len(m.tabs) > 0 {
		return m.tabs[0]
	}
	return nil
}

// OpenEntry shows contentID in a tab. With NewTab set (or no tab open)
// a fresh tab is created; otherwise the active tab is reused. Reusing a
// tab already showing contentID changes nothing. The tab list is
// persisted afterward either way, and real content lands on the
// recently-viewed list.
func (m *Manager) OpenEntry(ctx context.Context, contentID string, opts OpenOptions) (*Tab, error) {
	if err := m.ensure(ctx); err != nil {
		return nil, err
	}

	target := m.ActiveTab(true)
	summary, err := m.resolve(ctx, contentID)
	if err != nil {
		return nil, err
	}

	if opts.NewTab || target == nil {
		target = NewTab(m.newID())
		m.tabs = append(m.tabs, target)
		if contentID != "" {
			target.Header = headerFor(contentID, summary)
			target.NavigateTo(contentID, KindEntry)
		}
	} else if contentID != "" && target.Current().ContentID != contentID {
		target.Header = headerFor(contentID, summary)
		if opts.UpdateHistory {
			target.NavigateTo(contentID, KindEntry)
		}
	}

	if opts.Activate {
		m.setActive(target.ID)
	}
	if err := m.saveTabs(ctx); err != nil {
		return nil, err
	}
	if contentID != "" && summary != nil {
		if err := m.touchRecent(ctx, contentID, summary.Name); err != nil {
			return nil, err
		}
	}
	return target, nil
}

// ActivateTab switches the active tab. Unknown ids and already-active
// tabs are no-ops.
func (m *Manager) ActivateTab(ctx context.Context, id string) error {
	if err := m.ensure(ctx); err != nil {
		return err
	}
	target := m.find(id)
	if target == nil || target.Active {
		return nil
	}
	m.setActive(id)
	if err := m.saveTabs(ctx); err != nil {
		return err
	}
	if cur := target.Current(); cur.ContentID != "" && target.Header.Name != missingName {
		return m.touchRecent(ctx, cur.ContentID, target.Header.Name)
	}
	return nil
}

// CloseTab removes the tab. Which tab becomes active afterward is the
// caller's policy; nothing is auto-activated here.
func (m *Manager) CloseTab(ctx context.Context, id string) error {
	if err := m.ensure(ctx); err != nil {
		return err
	}
	kept := m.tabs[:0]
	for _, t := range m.tabs {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(m.tabs) {
		return nil
	}
	m.tabs = kept
	return m.saveTabs(ctx)
}

// DropRecent removes uuid from the recently-viewed list, for content
// that no longer exists.
func (m *Manager) DropRecent(ctx context.Context, uuid string) error {
	if err := m.ensure(ctx); err != nil {
		return err
	}
	m.recent = m.recent.Drop(uuid)
	return m.Store.SetFlag(ctx, m.World, store.KeyRecent, m.recent)
}

// Navigate moves the active tab through its history, refreshing the
// header for the entry that lands under the pointer.
func (m *Manager) Navigate(ctx context.Context, forward bool) (*Tab, error) {
	if err := m.ensure(ctx); err != nil {
		return nil, err
	}
	target := m.ActiveTab(true)
	if target == nil {
		return nil, nil
	}
	moved := false
	if forward {
		moved = target.Forward()
	} else {
		moved = target.Back()
	}
	if !moved {
		return target, nil
	}
	cur := target.Current()
	if cur.ContentID == "" {
		target.Header = Header{Name: newTabName}
	} else {
		summary, err := m.resolve(ctx, cur.ContentID)
		if err != nil {
			return nil, err
		}
		target.Header = headerFor(cur.ContentID, summary)
	}
	return target, m.saveTabs(ctx)
}

func (m *Manager) find(id string) *Tab {
	for _, t := range m.tabs {
		if t.ID == id {
			return t
		}
	}
	return nil
}

func (m *Manager) setActive(id string) {
	for _, t := range m.tabs {
		t.Active = t.ID == id
	}
}

func (m *Manager) newID() string {
	if m.NewID != nil {
		return m.NewID()
	}
	return uuid.NewString()
}

func (m *Manager) resolve(ctx context.Context, contentID string) (*content.Summary, error) {
	if contentID == "" || m.Resolver == nil {
		return nil, nil
	}
	return m.Resolver.Resolve(ctx, contentID)
}

// headerFor builds the display header; unresolvable content becomes a
// "missing" placeholder rather than a failed navigation.
func headerFor(contentID string, summary *content.Summary) Header {
	if summary == nil {
		return Header{UUID: contentID, Name: missingName, Icon: "missing"}
	}
	return Header{UUID: contentID, Name: summary.Name, Icon: summary.Topic}
}

func (m *Manager) saveTabs(ctx context.Context) error {
	tabs := m.tabs
	if tabs == nil {
		tabs = []*Tab{}
	}
	return m.Store.SetFlag(ctx, m.World, store.KeyTabs, tabs)
}

func (m *Manager) touchRecent(ctx context.Context, uuid, name string) error {
	m.recent = m.recent.Touch(uuid, name)
	return m.Store.SetFlag(ctx, m.World, store.KeyRecent, m.recent)
}
