package store

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"

	"github.com/peterbourgon/diskv/v3"
)

// Load creates a FlagStore backed by diskv using the provided config.
func Load(cfg Config) (FlagStore, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &flagStore{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type flagStore struct {
	d        *diskv.Diskv
	basePath string
}

func (p *flagStore) GetFlag(_ context.Context, scope, key string, out any) (bool, error) {
	val, err := p.d.Read(toKey(scope, key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, &PersistenceError{Scope: scope, Key: key, Err: err}
	}
	if err := json.Unmarshal(val, out); err != nil {
		return false, &PersistenceError{Scope: scope, Key: key, Err: err}
	}
	return true, nil
}

func (p *flagStore) SetFlag(_ context.Context, scope, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return &PersistenceError{Scope: scope, Key: key, Err: err}
	}
	if err := p.d.Write(toKey(scope, key), data); err != nil {
		return &PersistenceError{Scope: scope, Key: key, Err: err}
	}
	return nil
}

func (p *flagStore) UnsetFlag(_ context.Context, scope, key string) error {
	if err := p.d.Erase(toKey(scope, key)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return &PersistenceError{Scope: scope, Key: key, Err: err}
	}
	return nil
}
