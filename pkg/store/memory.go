package store

import (
	"context"
	"encoding/json"
	"sync"
)

// Memory is an in-process FlagStore for tests and ephemeral runs. Blobs
// round-trip through JSON so callers see the same aliasing behavior as
// the diskv implementation.
type Memory struct {
	mu    sync.Mutex
	flags map[string][]byte

	// FailNextSet makes the next SetFlag return a PersistenceError,
	// letting tests exercise the documented divergence between
	// in-memory and persisted state.
	FailNextSet error

	// Writes counts successful SetFlag calls per scope/key.
	Writes map[string]int
}

// NewMemory returns an empty in-memory flag store.
func NewMemory() *Memory {
	return &Memory{flags: make(map[string][]byte), Writes: make(map[string]int)}
}

func (m *Memory) GetFlag(_ context.Context, scope, key string, out any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.flags[scope+"\x00"+key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, &PersistenceError{Scope: scope, Key: key, Err: err}
	}
	return true, nil
}

func (m *Memory) SetFlag(_ context.Context, scope, key string, value any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.FailNextSet; err != nil {
		m.FailNextSet = nil
		return &PersistenceError{Scope: scope, Key: key, Err: err}
	}
	data, err := json.Marshal(value)
	if err != nil {
		return &PersistenceError{Scope: scope, Key: key, Err: err}
	}
	m.flags[scope+"\x00"+key] = data
	m.Writes[scope+"/"+key]++
	return nil
}

func (m *Memory) UnsetFlag(_ context.Context, scope, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.flags, scope+"\x00"+key)
	return nil
}

// Watch on the memory store never emits; it exists to satisfy the
// interface for composition roots running without disk.
func (m *Memory) Watch(ctx context.Context) (<-chan Event, error) {
	events := make(chan Event)
	go func() {
		<-ctx.Done()
		close(events)
	}()
	return events, nil
}
