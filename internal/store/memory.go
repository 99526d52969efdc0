package store

import "context"

// MemoryStore is a map-backed Store used in tests and ephemeral runs.
// Access is single-threaded by design, matching the run-to-completion
// execution model of the CLI; there is no internal locking.
type MemoryStore struct {
	data map[string][]byte
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// WithinTx runs fn against the store itself; the in-memory backend has no
// transactions.
func (s *MemoryStore) WithinTx(_ context.Context, fn func(Store) error) error {
	return fn(s)
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := s.data[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	v := make([]byte, len(value))
	copy(v, value)
	s.data[key] = v
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	delete(s.data, key)
	return nil
}
