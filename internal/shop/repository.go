package shop

import "context"

type Repository interface {
	Create(ctx context.Context, shop *Shop) error
	ListAll(ctx context.Context) ([]Shop, error)
	ListByArea(ctx context.Context, areaID string) ([]Shop, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Shop, error)
	GetByIDs(ctx context.Context, ids []string) ([]Shop, error)
	AddImages(ctx context.Context, shopID string, urls []string) error
	IsOwner(ctx context.Context, shopID, userID string) (bool, error)
}
