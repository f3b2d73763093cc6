package tabs

import (
	"context"
	"fmt"
	"testing"

	"tableflip.dev/codex/pkg/content"
	"tableflip.dev/codex/pkg/store"
)

type fakeResolver map[string]content.Summary

func (f fakeResolver) Resolve(_ context.Context, id string) (*content.Summary, error) {
	if s, ok := f[id]; ok {
		return &s, nil
	}
	return nil, nil
}

func testManager(resolver fakeResolver) (*Manager, *store.Memory) {
	mem := store.NewMemory()
	counter := 0
	m := &Manager{
		Store:    mem,
		Resolver: resolver,
		World:    "default",
		NewID: func() string {
			counter++
			return fmt.Sprintf("tab-%d", counter)
		},
	}
	return m, mem
}

func TestOpenEntryNewTab(t *testing.T) {
	ctx := context.Background()
	m, _ := testManager(fakeResolver{"e1": {Name: "Elf Queen", Topic: "characters"}})

	tab, err := m.OpenEntry(ctx, "e1", DefaultOpenOptions())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if !tab.Active {
		t.Fatalf("opened tab should be active")
	}
	if tab.Header.Name != "Elf Queen" || tab.Header.UUID != "e1" {
		t.Fatalf("header = %+v", tab.Header)
	}
	if tab.Current().ContentID != "e1" {
		t.Fatalf("current = %+v", tab.Current())
	}
	if len(m.Recent()) != 1 || m.Recent()[0].UUID != "e1" {
		t.Fatalf("recent = %+v", m.Recent())
	}
}

func TestOpenEntryIdempotentInActiveTab(t *testing.T) {
	ctx := context.Background()
	m, _ := testManager(fakeResolver{"x": {Name: "X", Topic: "places"}})

	if _, err := m.OpenEntry(ctx, "x", DefaultOpenOptions()); err != nil {
		t.Fatalf("open: %v", err)
	}
	opts := OpenOptions{Activate: true, UpdateHistory: true} // reuse active tab
	tab, err := m.OpenEntry(ctx, "x", opts)
	if err != nil {
		t.Fatalf("re-open: %v", err)
	}
	if len(tab.History) != 1 {
		t.Fatalf("re-opening the shown entry should not grow history: %+v", tab.History)
	}
	if len(m.Tabs()) != 1 {
		t.Fatalf("tab count = %d", len(m.Tabs()))
	}
}

func TestOpenEntryReusesActiveTab(t *testing.T) {
	ctx := context.Background()
	m, _ := testManager(fakeResolver{
		"a": {Name: "A", Topic: "places"},
		"b": {Name: "B", Topic: "places"},
	})

	if _, err := m.OpenEntry(ctx, "a", DefaultOpenOptions()); err != nil {
		t.Fatalf("open a: %v", err)
	}
	tab, err := m.OpenEntry(ctx, "b", OpenOptions{Activate: true, UpdateHistory: true})
	if err != nil {
		t.Fatalf("open b: %v", err)
	}
	if len(m.Tabs()) != 1 {
		t.Fatalf("should reuse the active tab, have %d tabs", len(m.Tabs()))
	}
	if len(tab.History) != 2 || tab.Current().ContentID != "b" {
		t.Fatalf("history = %+v", tab.History)
	}
}

func TestOpenEntryMissingContent(t *testing.T) {
	ctx := context.Background()
	m, _ := testManager(fakeResolver{})

	tab, err := m.OpenEntry(ctx, "gone", DefaultOpenOptions())
	if err != nil {
		t.Fatalf("open missing content should not fail: %v", err)
	}
	if tab.Header.Name != "(missing)" {
		t.Fatalf("header = %+v", tab.Header)
	}
	if len(m.Recent()) != 0 {
		t.Fatalf("missing content should not land on the recent list: %+v", m.Recent())
	}
}

func TestActivateTab(t *testing.T) {
	ctx := context.Background()
	m, _ := testManager(fakeResolver{
		"a": {Name: "A", Topic: "places"},
		"b": {Name: "B", Topic: "places"},
	})

	t1, _ := m.OpenEntry(ctx, "a", DefaultOpenOptions())
	t2, _ := m.OpenEntry(ctx, "b", DefaultOpenOptions())
	if t1.Active || !t2.Active {
		t.Fatalf("expected t2 active after opening")
	}

	if err := m.ActivateTab(ctx, t1.ID); err != nil {
		t.Fatalf("activate: %v", err)
	}
	if !t1.Active || t2.Active {
		t.Fatalf("expected t1 active")
	}
	if m.Recent()[0].UUID != "a" {
		t.Fatalf("recent = %+v", m.Recent())
	}

	// Unknown and already-active activations are no-ops.
	if err := m.ActivateTab(ctx, "nope"); err != nil {
		t.Fatalf("unknown id: %v", err)
	}
	if err := m.ActivateTab(ctx, t1.ID); err != nil {
		t.Fatalf("already active: %v", err)
	}
}

func TestCloseTabLeavesActivationToCaller(t *testing.T) {
	ctx := context.Background()
	m, _ := testManager(fakeResolver{
		"a": {Name: "A", Topic: "places"},
		"b": {Name: "B", Topic: "places"},
	})

	t1, _ := m.OpenEntry(ctx, "a", DefaultOpenOptions())
	t2, _ := m.OpenEntry(ctx, "b", DefaultOpenOptions())

	if err := m.CloseTab(ctx, t2.ID); err != nil {
		t.Fatalf("close: %v", err)
	}
	if len(m.Tabs()) != 1 || m.Tabs()[0].ID != t1.ID {
		t.Fatalf("tabs = %+v", m.Tabs())
	}
	// The closed tab was active; nothing is auto-activated.
	if m.ActiveTab(false) != nil {
		t.Fatalf("no tab should be flagged active")
	}
	// The defensive getter still finds one.
	if got := m.ActiveTab(true); got == nil || got.ID != t1.ID {
		t.Fatalf("findOne fallback = %+v", got)
	}
}

func TestManagerPersistsAndReloads(t *testing.T) {
	ctx := context.Background()
	resolver := fakeResolver{"a": {Name: "A", Topic: "places"}}
	m, mem := testManager(resolver)

	tab, _ := m.OpenEntry(ctx, "a", DefaultOpenOptions())

	fresh := &Manager{Store: mem, Resolver: resolver, World: "default"}
	if err := fresh.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(fresh.Tabs()) != 1 || fresh.Tabs()[0].ID != tab.ID {
		t.Fatalf("reloaded tabs = %+v", fresh.Tabs())
	}
	if got := fresh.ActiveTab(false); got == nil || got.ID != tab.ID {
		t.Fatalf("active flag lost in round trip")
	}
	if len(fresh.Recent()) != 1 {
		t.Fatalf("reloaded recent = %+v", fresh.Recent())
	}
}

func TestNavigateRefreshesHeader(t *testing.T) {
	ctx := context.Background()
	m, _ := testManager(fakeResolver{
		"a": {Name: "A", Topic: "places"},
		"b": {Name: "B", Topic: "places"},
	})

	m.OpenEntry(ctx, "a", DefaultOpenOptions())
	m.OpenEntry(ctx, "b", OpenOptions{Activate: true, UpdateHistory: true})

	tab, err := m.Navigate(ctx, false)
	if err != nil {
		t.Fatalf("back: %v", err)
	}
	if tab.Current().ContentID != "a" || tab.Header.Name != "A" {
		t.Fatalf("after back: current=%+v header=%+v", tab.Current(), tab.Header)
	}
	tab, err = m.Navigate(ctx, true)
	if err != nil {
		t.Fatalf("forward: %v", err)
	}
	if tab.Current().ContentID != "b" || tab.Header.Name != "B" {
		t.Fatalf("after forward: current=%+v header=%+v", tab.Current(), tab.Header)
	}
}
