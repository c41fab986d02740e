package repository

import (
	"context"
	"strings"
	"sync"

	domainRepo "easymed-booking/internal/domain/repository"
)

type memoryClientStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryClientStore keeps client state in process memory; it is lost on restart.
func NewMemoryClientStore() domainRepo.ClientStore {
	return &memoryClientStore{values: make(map[string]string)}
}

func (s *memoryClientStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	return value, ok, nil
}

func (s *memoryClientStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *memoryClientStore) Delete(ctx context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range keys {
		delete(s.values, key)
	}
	return nil
}

func (s *memoryClientStore) DeletePrefix(ctx context.Context, prefix string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.values {
		if strings.HasPrefix(key, prefix) {
			delete(s.values, key)
		}
	}
	return nil
}
