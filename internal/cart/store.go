package cart

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/shopspring/decimal"

	"talabak/internal/pricing"
)

var (
	// ErrShopConflict is returned by Add when the cart already holds items
	// from another shop and the caller has not resolved the conflict yet.
	ErrShopConflict = errors.New("cart holds items from another shop")

	ErrItemNotFound = errors.New("item not in cart")
)

// Resolution is the user's answer to the shop-conflict confirmation.
type Resolution string

const (
	// ResolutionMerge keeps the existing items and tracks multiple shops.
	ResolutionMerge Resolution = "merge"
	// ResolutionReplace clears the cart before adding the new item.
	ResolutionReplace Resolution = "replace"
)

// RateSource supplies the delivery fee and the per-delivery discount
// percent for the shops currently in the cart.
type RateSource interface {
	Rates(ctx context.Context, shopIDs []string) (fee, discountPercent decimal.Decimal, err error)
}

// ChangeFunc is invoked after every successful mutation; the re-render of
// whatever is watching the cart is a side effect, not a return value.
type ChangeFunc func(userID string, items []Item)

// Store owns the item list. All mutations go through it: each one
// persists the list, recomputes the summary cache and notifies the
// registered change callback.
type Store struct {
	repo     Repository
	rates    RateSource
	onChange ChangeFunc
}

func NewStore(repo Repository, rates RateSource) *Store {
	return &Store{repo: repo, rates: rates}
}

// OnChange registers the refresh callback. Registration is idempotent:
// the latest callback wins, handlers are never stacked.
func (s *Store) OnChange(fn ChangeFunc) {
	s.onChange = fn
}

// Items loads the current cart. A blob that fails to parse is treated as
// an empty cart, never surfaced to the caller.
func (s *Store) Items(ctx context.Context, userID string) ([]Item, error) {
	data, err := s.repo.LoadCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, nil
	}

	var items []Item
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		log.Printf("cart: corrupted data for user %s, starting empty: %v", userID, err)
		return nil, nil
	}
	return items, nil
}

// Count is the cart icon number: the sum of all quantities.
func (s *Store) Count(ctx context.Context, userID string) (int, error) {
	items, err := s.Items(ctx, userID)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, it := range items {
		total += it.Quantity
	}
	return total, nil
}

// Add inserts a line or increments the quantity of a matching identity.
// Adding from a shop not yet in a non-empty cart returns ErrShopConflict;
// the caller resolves it with AddResolved.
func (s *Store) Add(ctx context.Context, userID string, item Item) error {
	items, err := s.Items(ctx, userID)
	if err != nil {
		return err
	}

	if len(items) > 0 && !holdsShop(items, item.ShopID) {
		return ErrShopConflict
	}

	return s.commit(ctx, userID, upsert(items, item))
}

// AddResolved applies the confirmed multi-shop policy and performs the add.
func (s *Store) AddResolved(ctx context.Context, userID string, item Item, how Resolution) error {
	items, err := s.Items(ctx, userID)
	if err != nil {
		return err
	}

	switch how {
	case ResolutionMerge:
		// keep everything, the order now spans multiple shops
	case ResolutionReplace:
		items = nil
	default:
		return errors.New("unknown resolution: " + string(how))
	}

	return s.commit(ctx, userID, upsert(items, item))
}

func (s *Store) Increase(ctx context.Context, userID, productID, shopID string) error {
	return s.adjust(ctx, userID, productID, shopID, +1)
}

func (s *Store) Decrease(ctx context.Context, userID, productID, shopID string) error {
	return s.adjust(ctx, userID, productID, shopID, -1)
}

func (s *Store) adjust(ctx context.Context, userID, productID, shopID string, delta int) error {
	items, err := s.Items(ctx, userID)
	if err != nil {
		return err
	}

	for i := range items {
		if !items[i].sameIdentity(productID, shopID) {
			continue
		}
		items[i].Quantity += delta
		if items[i].Quantity <= 0 {
			items = append(items[:i], items[i+1:]...)
		}
		return s.commit(ctx, userID, items)
	}
	return ErrItemNotFound
}

// Remove deletes a line unconditionally. Removing an unknown identity is
// a no-op.
func (s *Store) Remove(ctx context.Context, userID, productID, shopID string) error {
	items, err := s.Items(ctx, userID)
	if err != nil {
		return err
	}

	for i := range items {
		if items[i].sameIdentity(productID, shopID) {
			return s.commit(ctx, userID, append(items[:i], items[i+1:]...))
		}
	}
	return nil
}

// FirstAdd reports whether this product was added for the first time.
// Used to suppress the "added to cart" toast after the first time.
func (s *Store) FirstAdd(ctx context.Context, userID, productID string) (bool, error) {
	return s.repo.MarkClicked(ctx, userID, productID)
}

// Summary recomputes the money figures from the current items and the
// rate source. It also refreshes the persisted summary cache.
func (s *Store) Summary(ctx context.Context, userID string) (pricing.Summary, error) {
	items, err := s.Items(ctx, userID)
	if err != nil {
		return pricing.Summary{}, err
	}
	summary, err := s.compute(ctx, items)
	if err != nil {
		return pricing.Summary{}, err
	}
	if err := s.persistSummary(ctx, userID, summary); err != nil {
		return pricing.Summary{}, err
	}
	return summary, nil
}

func (s *Store) compute(ctx context.Context, items []Item) (pricing.Summary, error) {
	fee, pct := decimal.Zero, decimal.Zero
	if s.rates != nil && len(items) > 0 {
		var err error
		fee, pct, err = s.rates.Rates(ctx, shopIDs(items))
		if err != nil {
			return pricing.Summary{}, err
		}
	}

	lines := make([]pricing.Line, 0, len(items))
	for _, it := range items {
		lines = append(lines, pricing.Line{
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			ShopID:    it.ShopID,
		})
	}
	return pricing.ComputeSummary(lines, fee, pct), nil
}

// commit is the single mutation sink: persist items, refresh the summary
// cache, fire the change callback.
func (s *Store) commit(ctx context.Context, userID string, items []Item) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	if err := s.repo.SaveCart(ctx, userID, string(data)); err != nil {
		return err
	}

	summary, err := s.compute(ctx, items)
	if err != nil {
		return err
	}
	if err := s.persistSummary(ctx, userID, summary); err != nil {
		return err
	}

	if s.onChange != nil {
		s.onChange(userID, items)
	}
	return nil
}

func (s *Store) persistSummary(ctx context.Context, userID string, summary pricing.Summary) error {
	data, err := json.Marshal(summary.Format())
	if err != nil {
		return err
	}
	return s.repo.SaveSummary(ctx, userID, string(data))
}

func upsert(items []Item, item Item) []Item {
	if item.Quantity <= 0 {
		item.Quantity = 1
	}
	for i := range items {
		if items[i].sameIdentity(item.ProductID, item.ShopID) {
			items[i].Quantity += item.Quantity
			return items
		}
	}
	return append(items, item)
}

func holdsShop(items []Item, shopID string) bool {
	for _, it := range items {
		if it.ShopID == shopID {
			return true
		}
	}
	return false
}

func shopIDs(items []Item) []string {
	var ids []string
	seen := make(map[string]bool)
	for _, it := range items {
		if !seen[it.ShopID] {
			seen[it.ShopID] = true
			ids = append(ids, it.ShopID)
		}
	}
	return ids
}
