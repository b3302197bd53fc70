package store

import (
	"context"
	"fmt"
	"io/fs"
	"slices"
	"sync"
)

// Memory keeps values in memory, for tests and dry runs.
type Memory struct {
	mu     sync.Mutex
	values map[string][]byte
}

// NewMemory returns an empty memory store.
func NewMemory() *Memory { return &Memory{values: make(map[string][]byte)} }

// Get returns a copy of the value.
func (s *Memory) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	if !ok {
		return nil, fmt.Errorf("key %q: %w", key, fs.ErrNotExist)
	}
	return slices.Clone(v), nil
}

// Put stores a copy of the value.
func (s *Memory) Put(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = slices.Clone(value)
	return nil
}
