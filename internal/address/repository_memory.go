package address

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	mu        sync.RWMutex
	addresses map[string][]Address
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{addresses: make(map[string][]Address)}
}

func (r *InMemoryRepository) List(_ context.Context, userID string) ([]Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Address(nil), r.addresses[userID]...), nil
}

func (r *InMemoryRepository) Create(_ context.Context, addr *Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if addr.ID == "" {
		addr.ID = uuid.New().String()
	}
	r.addresses[addr.UserID] = append(r.addresses[addr.UserID], *addr)
	return nil
}

func (r *InMemoryRepository) Update(_ context.Context, addr Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.addresses[addr.UserID]
	for i := range list {
		if list[i].ID == addr.ID {
			list[i] = addr
			return nil
		}
	}
	return ErrNotFound
}

func (r *InMemoryRepository) Delete(_ context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.addresses[userID]
	for i := range list {
		if list[i].ID == id {
			r.addresses[userID] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
