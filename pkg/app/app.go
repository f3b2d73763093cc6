package app

import (
	"context"
	"errors"
	"sort"

	"tableflip.dev/codex/pkg/content"
	"tableflip.dev/codex/pkg/store"
	"tableflip.dev/codex/pkg/tabs"
	"tableflip.dev/codex/pkg/topic"
)

// Service is the explicit context object tying the flag store, topic
// forests, the entry catalog, and the tab manager together for one
// world. CLIs and UIs share it instead of reaching for globals.
type Service struct {
	Store store.FlagStore
	World string

	catalog *content.Catalog
	manager *tabs.Manager
}

// New wires a Service for the given world.
func New(s store.FlagStore, world string) *Service {
	svc := &Service{Store: s, World: world}
	svc.catalog = &content.Catalog{Store: s, World: world}
	svc.manager = &tabs.Manager{Store: s, Resolver: svc.catalog, World: world}
	return svc
}

// Catalog exposes entry metadata lookups.
func (s *Service) Catalog() *content.Catalog { return s.catalog }

// TabManager exposes the world's tabs.
func (s *Service) TabManager() *tabs.Manager { return s.manager }

// Forest returns the topic-scoped hierarchy operations.
func (s *Service) Forest(topicName string) *topic.Forest {
	return &topic.Forest{Store: s.Store, World: s.World, Topic: topicName}
}

// Topics returns the world's topic names, sorted.
func (s *Service) Topics(ctx context.Context) ([]string, error) {
	names, err := s.catalog.Topics(ctx)
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

// EnsureTopic registers a topic name for the world.
func (s *Service) EnsureTopic(ctx context.Context, name string) error {
	if name == "" {
		return errors.New("app: topic name required")
	}
	names, err := s.catalog.Topics(ctx)
	if err != nil {
		return err
	}
	for _, n := range names {
		if n == name {
			return nil
		}
	}
	names = append(names, name)
	return s.Store.SetFlag(ctx, s.World, store.KeyTopics, names)
}

// CreateRoot creates a top-level entry in the topic's forest and
// records its catalog metadata.
func (s *Service) CreateRoot(ctx context.Context, topicName, name, typ string) (content.Entry, error) {
	if err := s.EnsureTopic(ctx, topicName); err != nil {
		return content.Entry{}, err
	}
	id, err := s.Forest(topicName).CreateRoot(ctx, typ)
	if err != nil {
		return content.Entry{}, err
	}
	e := content.Entry{ID: id, Name: name, Type: typ}
	return e, s.catalog.Add(ctx, topicName, e)
}

// CreateChild creates an entry under parentID and records its catalog
// metadata.
func (s *Service) CreateChild(ctx context.Context, topicName, parentID, name, typ string) (content.Entry, error) {
	id, err := s.Forest(topicName).CreateChild(ctx, parentID, typ)
	if err != nil {
		return content.Entry{}, err
	}
	e := content.Entry{ID: id, Name: name, Type: typ}
	return e, s.catalog.Add(ctx, topicName, e)
}

// Move reparents an entry within its topic.
func (s *Service) Move(ctx context.Context, topicName, id, newParentID string) error {
	return s.Forest(topicName).Move(ctx, id, newParentID)
}

// Delete removes the entry from the forest (reflowing its children)
// and drops its catalog record, expand state, and recency entry.
func (s *Service) Delete(ctx context.Context, topicName, id string) error {
	if err := s.Forest(topicName).Delete(ctx, id); err != nil {
		return err
	}
	if err := s.catalog.Remove(ctx, topicName, id); err != nil {
		return err
	}
	for _, key := range []string{store.KeyExpanded, store.KeyExpandedCamp} {
		if err := s.setExpandedKey(ctx, key, id, false); err != nil {
			return err
		}
	}
	return s.manager.DropRecent(ctx, id)
}

// Expanded reports the persisted expand state for a node in the
// directory view (or the campaign view when campaign is set).
func (s *Service) Expanded(ctx context.Context, id string, campaign bool) (bool, error) {
	state := map[string]bool{}
	key := store.KeyExpanded
	if campaign {
		key = store.KeyExpandedCamp
	}
	if _, err := s.Store.GetFlag(ctx, s.World, key, &state); err != nil {
		return false, err
	}
	return state[id], nil
}

// ExpandedAll returns the full expand-state blob for one view.
func (s *Service) ExpandedAll(ctx context.Context, campaign bool) (map[string]bool, error) {
	state := map[string]bool{}
	key := store.KeyExpanded
	if campaign {
		key = store.KeyExpandedCamp
	}
	if _, err := s.Store.GetFlag(ctx, s.World, key, &state); err != nil {
		return nil, err
	}
	return state, nil
}

// SetExpanded persists the expand state for a node. Collapsed nodes are
// removed from the blob rather than stored as false.
func (s *Service) SetExpanded(ctx context.Context, id string, expanded, campaign bool) error {
	key := store.KeyExpanded
	if campaign {
		key = store.KeyExpandedCamp
	}
	return s.setExpandedKey(ctx, key, id, expanded)
}

func (s *Service) setExpandedKey(ctx context.Context, key, id string, expanded bool) error {
	state := map[string]bool{}
	if _, err := s.Store.GetFlag(ctx, s.World, key, &state); err != nil {
		return err
	}
	if state[id] == expanded {
		return nil
	}
	if expanded {
		state[id] = true
	} else {
		delete(state, id)
	}
	return s.Store.SetFlag(ctx, s.World, key, state)
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Store == nil {
		return nil, errors.New("app: no store configured")
	}
	return s.Store.Watch(ctx)
}
