package geo

import (
	"context"
	"sync"
)

type InMemoryRepository struct {
	mu        sync.RWMutex
	locations map[string]Location
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{locations: make(map[string]Location)}
}

func (r *InMemoryRepository) LoadLocation(_ context.Context, userID string) (*Location, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	loc, ok := r.locations[userID]
	if !ok {
		return nil, nil
	}
	return &loc, nil
}

func (r *InMemoryRepository) SaveLocation(_ context.Context, userID string, loc Location) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.locations[userID] = loc
	return nil
}
