package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/fekuna/shopwave-storefront/internal/model"
	"github.com/fekuna/shopwave-storefront/internal/storefront"
)

// MemoryRepository keeps sessions in process memory.
type MemoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]model.Session
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{sessions: make(map[string]model.Session)}
}

func (r *MemoryRepository) Create(ctx context.Context, s *model.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.sessions[s.ID]; exists {
		return fmt.Errorf("session %s already exists", s.ID)
	}
	r.sessions[s.ID] = *s
	return nil
}

func (r *MemoryRepository) FindByID(ctx context.Context, id string) (*model.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, storefront.ErrSessionNotFound
	}
	return &s, nil
}

func (r *MemoryRepository) Update(ctx context.Context, id string, fn func(s *model.Session) error) (*model.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, storefront.ErrSessionNotFound
	}
	if err := fn(&s); err != nil {
		return nil, err
	}
	r.sessions[id] = s
	return &s, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return storefront.ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}
