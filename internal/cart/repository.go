package cart

import "context"

// Repository persists the cart as serialized text, the way the storefront
// kept it in key-value storage. The store owns encoding and decoding;
// repositories never interpret the blobs.
type Repository interface {
	LoadCart(ctx context.Context, userID string) (string, error)
	SaveCart(ctx context.Context, userID, data string) error

	LoadSummary(ctx context.Context, userID string) (string, error)
	SaveSummary(ctx context.Context, userID, data string) error

	// MarkClicked records that a product was added at least once and
	// reports whether this was the first time (first-add toast gate).
	MarkClicked(ctx context.Context, userID, productID string) (bool, error)
}
