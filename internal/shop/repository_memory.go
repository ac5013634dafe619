package shop

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	mu    sync.RWMutex
	shops []Shop
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

// Seed replaces the stored records, for tests and the in-memory wiring.
func (r *InMemoryRepository) Seed(shops []Shop) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shops = append([]Shop(nil), shops...)
}

func (r *InMemoryRepository) Create(_ context.Context, shop *Shop) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if shop.ID == "" {
		shop.ID = uuid.New().String()
	}
	r.shops = append(r.shops, *shop)
	return nil
}

func (r *InMemoryRepository) ListAll(context.Context) ([]Shop, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Shop(nil), r.shops...), nil
}

func (r *InMemoryRepository) ListByArea(_ context.Context, areaID string) ([]Shop, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Shop
	for _, s := range r.shops {
		if s.AreaID == areaID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) ListByOwner(_ context.Context, ownerID string) ([]Shop, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Shop
	for _, s := range r.shops {
		if s.OwnerID == ownerID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) GetByIDs(_ context.Context, ids []string) ([]Shop, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []Shop
	for _, s := range r.shops {
		if want[s.ID] {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) AddImages(_ context.Context, shopID string, urls []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.shops {
		if r.shops[i].ID == shopID {
			r.shops[i].ImageURLs = append(r.shops[i].ImageURLs, urls...)
			return nil
		}
	}
	return errors.New("shop not found")
}

func (r *InMemoryRepository) IsOwner(_ context.Context, shopID, userID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.shops {
		if s.ID == shopID {
			return s.OwnerID == userID, nil
		}
	}
	return false, nil
}
