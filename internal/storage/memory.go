// Package storage provides LikesStore implementations.
package storage

import (
	"context"
	"sync"

	"github.com/hammamikhairi/forkify/internal/domain"
	"github.com/hammamikhairi/forkify/internal/logger"
)

// Compile-time interface check.
var _ domain.LikesStore = (*MemoryStore)(nil)

// MemoryStore keeps the likes slot in memory. Safe for concurrent access.
type MemoryStore struct {
	mu    sync.RWMutex
	likes []domain.Like
	log   *logger.Logger
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore(log *logger.Logger) *MemoryStore {
	return &MemoryStore{log: log.With("store")}
}

// Save replaces the slot with likes.
func (s *MemoryStore) Save(ctx context.Context, likes []domain.Like) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.log.Debug("saving %d likes", len(likes))
	s.likes = append([]domain.Like(nil), likes...)
	return nil
}

// Load returns a copy of the slot. An empty store yields an empty slice.
func (s *MemoryStore) Load(ctx context.Context) ([]domain.Like, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]domain.Like{}, s.likes...), nil
}
