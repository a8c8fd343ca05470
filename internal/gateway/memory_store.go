package gateway

import (
	"context"
	"sync"

	"cashbook/internal/domain"
	"cashbook/internal/usecase"
)

// MemoryStore is an in-memory KeyValueStore. Nothing survives the process; it is
// meant for tests and for running without a data file.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get returns the value for key or domain.ErrKeyNotFound.
func (m *MemoryStore) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[key]
	if !ok {
		return "", domain.ErrKeyNotFound
	}
	return v, nil
}

// Set stores value under key.
func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}

// Remove deletes key. Removing an absent key is not an error.
func (m *MemoryStore) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
	return nil
}

// Close is a no-op so the store can be used where a closable store is expected.
func (m *MemoryStore) Close() error { return nil }

var _ usecase.KeyValueStore = (*MemoryStore)(nil)
