package resultcache

import (
	"context"
	"slices"
	"sync"
	"time"
)

// MemoryStore is an in-process Store, used when no database is configured.
type MemoryStore struct {
	mu    sync.RWMutex
	slots map[string]Entry
}

// NewMemoryStore creates an empty in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[string]Entry)}
}

// Save implements Store.
func (m *MemoryStore) Save(ctx context.Context, key string, entry Entry) error {
	entry.NotFollowingBack = slices.Clone(entry.NotFollowingBack)
	entry.NotFollowedBack = slices.Clone(entry.NotFollowedBack)
	entry.UpdatedAt = time.Now().UTC()

	m.mu.Lock()
	m.slots[key] = entry
	m.mu.Unlock()
	return nil
}

// Load implements Store.
func (m *MemoryStore) Load(ctx context.Context, key string) (*Entry, error) {
	m.mu.RLock()
	entry, ok := m.slots[key]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	entry.NotFollowingBack = slices.Clone(entry.NotFollowingBack)
	entry.NotFollowedBack = slices.Clone(entry.NotFollowedBack)
	if entry.NotFollowingBack == nil {
		entry.NotFollowingBack = []string{}
	}
	return &entry, nil
}

// Delete implements Store.
func (m *MemoryStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	delete(m.slots, key)
	m.mu.Unlock()
	return nil
}
