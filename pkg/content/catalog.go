package content

import (
	"context"
	"errors"

	"tableflip.dev/codex/pkg/store"
)

// ErrUnknownEntry is returned when a catalog mutation references an id
// that no topic holds.
var ErrUnknownEntry = errors.New("content: unknown entry")

// Catalog stores entry metadata per topic, one `entries` flag blob per
// world/topic scope. It also implements Resolver by scanning the
// world's topics.
type Catalog struct {
	Store store.FlagStore
	World string
}

func (c *Catalog) scope(topic string) string {
	return c.World + "/" + topic
}

// List returns the catalog records for one topic; a missing flag yields
// an empty list.
func (c *Catalog) List(ctx context.Context, topic string) ([]Entry, error) {
	var entries []Entry
	if _, err := c.Store.GetFlag(ctx, c.scope(topic), store.KeyEntries, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Names returns id -> display name for one topic.
func (c *Catalog) Names(ctx context.Context, topic string) (map[string]string, error) {
	entries, err := c.List(ctx, topic)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(entries))
	for _, e := range entries {
		names[e.ID] = e.Name
	}
	return names, nil
}

// Add appends a record and rewrites the topic's blob.
func (c *Catalog) Add(ctx context.Context, topic string, e Entry) error {
	entries, err := c.List(ctx, topic)
	if err != nil {
		return err
	}
	entries = append(entries, e)
	return c.Store.SetFlag(ctx, c.scope(topic), store.KeyEntries, entries)
}

// Rename updates the display name for id within topic.
func (c *Catalog) Rename(ctx context.Context, topic, id, name string) error {
	entries, err := c.List(ctx, topic)
	if err != nil {
		return err
	}
	for i := range entries {
		if entries[i].ID == id {
			entries[i].Name = name
			return c.Store.SetFlag(ctx, c.scope(topic), store.KeyEntries, entries)
		}
	}
	return ErrUnknownEntry
}

// Remove drops the record for id within topic. Removing an absent id is
// quiet so delete flows stay idempotent.
func (c *Catalog) Remove(ctx context.Context, topic, id string) error {
	entries, err := c.List(ctx, topic)
	if err != nil {
		return err
	}
	kept := entries[:0]
	for _, e := range entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(entries) {
		return nil
	}
	return c.Store.SetFlag(ctx, c.scope(topic), store.KeyEntries, kept)
}

// Topics returns the world's topic names from the world-scoped flag.
func (c *Catalog) Topics(ctx context.Context) ([]string, error) {
	var topics []string
	if _, err := c.Store.GetFlag(ctx, c.World, store.KeyTopics, &topics); err != nil {
		return nil, err
	}
	return topics, nil
}

// Resolve scans the world's topics for id. A nil result means the
// content is gone.
func (c *Catalog) Resolve(ctx context.Context, id string) (*Summary, error) {
	topics, err := c.Topics(ctx)
	if err != nil {
		return nil, err
	}
	for _, topic := range topics {
		entries, err := c.List(ctx, topic)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if e.ID == id {
				return &Summary{Name: e.Name, Type: e.Type, Topic: topic}, nil
			}
		}
	}
	return nil, nil
}
