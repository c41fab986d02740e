// Package favorites keeps the set of doctors a client has marked, persisted through a ClientStore.
package favorites

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"easymed-booking/internal/domain/entity"
	"easymed-booking/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Key returns the client store key holding the client's favorites.
func Key(clientID uuid.UUID) string {
	return entity.ClientStateKey(clientID, entity.ClientKeyFavoriteDoctors)
}

// Store is one client's favorites set. Every mutation writes the full set back.
type Store struct {
	mu      sync.RWMutex
	backend repository.ClientStore
	key     string
	ids     map[int]struct{}
}

// Load reads the client's persisted set. A missing or malformed value yields an empty set.
func Load(ctx context.Context, backend repository.ClientStore, clientID uuid.UUID, log *logrus.Logger) (*Store, error) {
	s := &Store{
		backend: backend,
		key:     Key(clientID),
		ids:     make(map[int]struct{}),
	}

	raw, found, err := backend.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("load favorites: %w", err)
	}
	if !found {
		return s, nil
	}

	var ids []int
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		log.Warnf("Discarding malformed favorites for client %s: %+v", clientID, err)
		return s, nil
	}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return s, nil
}

func (s *Store) Add(ctx context.Context, doctorID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ids[doctorID] = struct{}{}
	return s.persist(ctx)
}

func (s *Store) Remove(ctx context.Context, doctorID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.ids, doctorID)
	return s.persist(ctx)
}

func (s *Store) IsFavorite(doctorID int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.ids[doctorID]
	return ok
}

// List returns the favorite doctor IDs in ascending order.
func (s *Store) List() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sortedIDs()
}

func (s *Store) sortedIDs() []int {
	ids := make([]int, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// persist must be called with mu held.
func (s *Store) persist(ctx context.Context) error {
	payload, err := json.Marshal(s.sortedIDs())
	if err != nil {
		return fmt.Errorf("encode favorites: %w", err)
	}
	if err := s.backend.Set(ctx, s.key, string(payload)); err != nil {
		return fmt.Errorf("save favorites: %w", err)
	}
	return nil
}
