// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
)

type memoryStore struct {
	mu    sync.RWMutex
	slots map[string]string
}

// NewMemoryStore returns a process-local [SecureStore]. Values do not
// survive a restart.
func NewMemoryStore() SecureStore {
	return &memoryStore{slots: make(map[string]string)}
}

func (s *memoryStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.slots[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

func (s *memoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	s.slots[key] = value
	s.mu.Unlock()
	return nil
}

func (s *memoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.slots, key)
	s.mu.Unlock()
	return nil
}
