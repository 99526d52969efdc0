// Package store implements the persistent key/value storage used by all
// WellNest components. Every logical record (user list, session, per-user
// entry partitions, testimonial board) lives under one key as a JSON value.
package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// Store is a string-keyed byte store.
//
// Contract:
//   - Get returns (nil, nil) when the key is absent.
//   - Set fully overwrites any prior value under the key.
//   - Delete is a no-op for absent keys.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// TxStore is a Store whose writes can be grouped into one atomic unit.
// WithinTx runs fn against a handle whose writes commit together or not at
// all; backends without real transactions run fn against the store itself.
type TxStore interface {
	Store
	WithinTx(ctx context.Context, fn func(Store) error) error
}

// ReadJSON reads the value under key and unmarshals it into T. An absent key,
// a store error, or malformed content all yield the caller-supplied fallback;
// persisted garbage is treated the same as no data at all.
func ReadJSON[T any](ctx context.Context, s Store, key string, fallback T) T {
	raw, err := s.Get(ctx, key)
	if err != nil || raw == nil {
		return fallback
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return fallback
	}
	return v
}

// WriteJSON marshals v and persists it under key, replacing prior content.
func WriteJSON(ctx context.Context, s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal value for %s: %w", key, err)
	}
	if err := s.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
