package geo

import "context"

// Repository stores each user's confirmed delivery location.
type Repository interface {
	LoadLocation(ctx context.Context, userID string) (*Location, error)
	SaveLocation(ctx context.Context, userID string, loc Location) error
}
