// Package memory keeps application state in process memory.
package memory

import (
	"context"
	"slices"
	"sync"

	"fieldops/internal/domain/service"
)

type kvStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewKVStore creates an empty in-memory store. Entries do not survive a restart.
func NewKVStore() service.KVStore {
	return &kvStore{entries: make(map[string][]byte)}
}

func (s *kvStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.entries[key]
	if !ok {
		return nil, false, nil
	}

	return slices.Clone(value), true, nil
}

func (s *kvStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = slices.Clone(value)

	return nil
}

func (s *kvStore) Clear(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)

	return nil
}
