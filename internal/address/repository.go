package address

import "context"

// Repository stores saved addresses in insertion order per user.
type Repository interface {
	List(ctx context.Context, userID string) ([]Address, error)
	Create(ctx context.Context, addr *Address) error
	Update(ctx context.Context, addr Address) error
	Delete(ctx context.Context, userID, id string) error
}
