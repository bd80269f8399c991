package persistence

import (
	"context"
	"encoding/json"
	"sync"
)

// Logical storage keys. Each key holds one whole JSON collection.
const (
	KeyNotices    = "notices"
	KeyUsers      = "users"
	KeyCategories = "categories"
)

// Store is a string-keyed JSON document store. Read decodes the value stored
// under key into dest and reports whether a usable value was present; absent
// or malformed data reports false without an error. Write marshals value and
// fully replaces whatever was stored before — there are no partial updates or
// merge semantics.
type Store interface {
	Read(ctx context.Context, key string, dest any) (bool, error)
	Write(ctx context.Context, key string, value any) error
}

// Pinger is implemented by backends that can verify connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// MemoryStore keeps documents in process memory. It backs tests and runs
// without external services; contents do not survive a restart.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (m *MemoryStore) Read(ctx context.Context, key string, dest any) (bool, error) {
	m.mu.RLock()
	raw, ok := m.data[key]
	m.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		// Malformed stored data is treated as absent.
		return false, nil
	}
	return true, nil
}

func (m *MemoryStore) Write(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.data[key] = raw
	m.mu.Unlock()
	return nil
}
