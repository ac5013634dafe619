package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

type fixedRates struct {
	fee decimal.Decimal
	pct decimal.Decimal
}

func (f fixedRates) Rates(context.Context, []string) (decimal.Decimal, decimal.Decimal, error) {
	return f.fee, f.pct, nil
}

func testStore() (*Store, *InMemoryRepository) {
	repo := NewInMemoryRepository()
	store := NewStore(repo, fixedRates{
		fee: decimal.NewFromInt(20),
		pct: decimal.NewFromInt(10),
	})
	return store, repo
}

func item(productID, shopID string, price string) Item {
	return Item{
		ProductID: productID,
		Name:      "item " + productID,
		UnitPrice: decimal.RequireFromString(price),
		Quantity:  1,
		ShopID:    shopID,
		ShopName:  "shop " + shopID,
	}
}

func TestAddNewItemAndIncrementExisting(t *testing.T) {
	store, _ := testStore()
	ctx := context.Background()

	if err := store.Add(ctx, "u1", item("p1", "s1", "50")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Add(ctx, "u1", item("p1", "s1", "50")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items, _ := store.Items(ctx, "u1")
	if len(items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(items))
	}
	if items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", items[0].Quantity)
	}
}

func TestCountEqualsSumOfQuantities(t *testing.T) {
	store, _ := testStore()
	ctx := context.Background()

	store.Add(ctx, "u1", item("p1", "s1", "50"))
	store.Add(ctx, "u1", item("p1", "s1", "50"))
	store.Add(ctx, "u1", item("p2", "s1", "30"))
	store.Increase(ctx, "u1", "p2", "s1")
	store.Decrease(ctx, "u1", "p1", "s1")

	count, err := store.Count(ctx, "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected count 3, got %d", count)
	}
}

func TestDecreaseToZeroRemovesLine(t *testing.T) {
	store, _ := testStore()
	ctx := context.Background()

	store.Add(ctx, "u1", item("p1", "s1", "50"))
	if err := store.Decrease(ctx, "u1", "p1", "s1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items, _ := store.Items(ctx, "u1")
	if len(items) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(items))
	}
}

func TestRemoveUnknownIdentityIsNoOp(t *testing.T) {
	store, _ := testStore()
	ctx := context.Background()

	store.Add(ctx, "u1", item("p1", "s1", "50"))
	if err := store.Remove(ctx, "u1", "p9", "s9"); err != nil {
		t.Fatalf("expected no-op, got %v", err)
	}

	items, _ := store.Items(ctx, "u1")
	if len(items) != 1 {
		t.Fatalf("expected cart untouched, got %d lines", len(items))
	}
}

func TestAddFromSecondShopRequiresResolution(t *testing.T) {
	store, _ := testStore()
	ctx := context.Background()

	store.Add(ctx, "u1", item("p1", "s1", "50"))

	err := store.Add(ctx, "u1", item("p2", "s2", "30"))
	if !errors.Is(err, ErrShopConflict) {
		t.Fatalf("expected ErrShopConflict, got %v", err)
	}

	// merge keeps both shops
	if err := store.AddResolved(ctx, "u1", item("p2", "s2", "30"), ResolutionMerge); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items, _ := store.Items(ctx, "u1")
	if len(items) != 2 {
		t.Fatalf("expected 2 lines after merge, got %d", len(items))
	}

	// replace clears the cart first
	if err := store.AddResolved(ctx, "u1", item("p3", "s3", "10"), ResolutionReplace); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items, _ = store.Items(ctx, "u1")
	if len(items) != 1 || items[0].ProductID != "p3" {
		t.Fatalf("expected only p3 after replace, got %+v", items)
	}
}

func TestSummaryMultiShopDiscount(t *testing.T) {
	store, _ := testStore()
	ctx := context.Background()

	store.Add(ctx, "u1", item("p1", "s1", "40"))
	store.AddResolved(ctx, "u1", item("p2", "s2", "60"), ResolutionMerge)

	summary, err := store.Summary(ctx, "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f := summary.Format()
	if f.Delivery != "18.00" || f.Discount != "2.00" {
		t.Fatalf("expected delivery 18.00 / discount 2.00, got %s / %s", f.Delivery, f.Discount)
	}
	if f.Total != "118.00" {
		t.Fatalf("expected total 118.00, got %s", f.Total)
	}
}

func TestSummaryCachePersistedOnMutation(t *testing.T) {
	store, repo := testStore()
	ctx := context.Background()

	store.Add(ctx, "u1", item("p1", "s1", "25"))

	cached, err := repo.LoadSummary(ctx, "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cached == "" {
		t.Fatal("expected summary cache to be written on mutation")
	}
}

func TestCorruptedCartLoadsEmpty(t *testing.T) {
	store, repo := testStore()
	ctx := context.Background()

	repo.SaveCart(ctx, "u1", "{not json")

	items, err := store.Items(ctx, "u1")
	if err != nil {
		t.Fatalf("corrupted data must not surface an error, got %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(items))
	}

	// the cart is usable again after the fallback
	if err := store.Add(ctx, "u1", item("p1", "s1", "10")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestChangeCallbackFiresOnEveryMutation(t *testing.T) {
	store, _ := testStore()
	ctx := context.Background()

	var calls int
	store.OnChange(func(string, []Item) { calls++ })

	store.Add(ctx, "u1", item("p1", "s1", "50"))
	store.Increase(ctx, "u1", "p1", "s1")
	store.Remove(ctx, "u1", "p1", "s1")

	if calls != 3 {
		t.Fatalf("expected 3 callback invocations, got %d", calls)
	}
}

func TestFirstAddReportedOnce(t *testing.T) {
	store, _ := testStore()
	ctx := context.Background()

	first, err := store.FirstAdd(ctx, "u1", "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !first {
		t.Fatal("expected first add to be reported")
	}

	again, _ := store.FirstAdd(ctx, "u1", "p1")
	if again {
		t.Fatal("expected repeat add to be suppressed")
	}
}

func TestGroupByShopPreservesOrder(t *testing.T) {
	items := []Item{
		item("p1", "s1", "10"),
		item("p2", "s2", "20"),
		item("p3", "s1", "30"),
	}

	groups := GroupByShop(items)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].ShopID != "s1" || groups[1].ShopID != "s2" {
		t.Fatalf("expected shop order s1, s2; got %s, %s", groups[0].ShopID, groups[1].ShopID)
	}
	if len(groups[0].Items) != 2 {
		t.Fatalf("expected 2 items for s1, got %d", len(groups[0].Items))
	}
}
