package cart

import (
	"context"
	"sync"
)

type InMemoryRepository struct {
	mu        sync.Mutex
	carts     map[string]string
	summaries map[string]string
	clicked   map[string]map[string]bool
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		carts:     make(map[string]string),
		summaries: make(map[string]string),
		clicked:   make(map[string]map[string]bool),
	}
}

func (r *InMemoryRepository) LoadCart(_ context.Context, userID string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.carts[userID], nil
}

func (r *InMemoryRepository) SaveCart(_ context.Context, userID, data string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.carts[userID] = data
	return nil
}

func (r *InMemoryRepository) LoadSummary(_ context.Context, userID string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.summaries[userID], nil
}

func (r *InMemoryRepository) SaveSummary(_ context.Context, userID, data string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.summaries[userID] = data
	return nil
}

func (r *InMemoryRepository) MarkClicked(_ context.Context, userID, productID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen, ok := r.clicked[userID]
	if !ok {
		seen = make(map[string]bool)
		r.clicked[userID] = seen
	}
	if seen[productID] {
		return false, nil
	}
	seen[productID] = true
	return true, nil
}
