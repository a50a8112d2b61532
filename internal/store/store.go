// Package store provides the session's persistent key-value store and the
// typed accessors for each persisted slice. Values are strings; slices are
// independent keys and may be written in any relative order. Anything
// malformed on load is replaced by that slice's documented default; a bad
// store never surfaces as an error to the engine.
package store

import "sync"

// Store is the synchronous string-valued key-value store the session writes
// through on every mutation.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}

// MemStore is a map-backed Store for tests and ephemeral sessions.
type MemStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string]string)}
}

func (m *MemStore) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok
}

func (m *MemStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MemStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *MemStore) Close() error { return nil }
