package cart

import "github.com/shopspring/decimal"

// Item is one cart line. Identity is the (ProductID, ShopID) pair;
// Quantity is always >= 1, a line at zero is removed instead.
type Item struct {
	ProductID  string          `json:"product_id"`
	Name       string          `json:"name"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Quantity   int             `json:"quantity"`
	ShopID     string          `json:"shop_id"`
	ShopName   string          `json:"shop_name"`
	ShopAreaID string          `json:"shop_area_id,omitempty"`
}

func (it Item) sameIdentity(productID, shopID string) bool {
	return it.ProductID == productID && it.ShopID == shopID
}

// ShopGroup is the checkout view of the cart: items grouped per shop.
type ShopGroup struct {
	ShopID     string `json:"shop_id"`
	ShopName   string `json:"shop_name"`
	ShopAreaID string `json:"shop_area_id,omitempty"`
	Items      []Item `json:"items"`
}

// GroupByShop splits items into per-shop groups, preserving the order in
// which shops first appear in the cart.
func GroupByShop(items []Item) []ShopGroup {
	var groups []ShopGroup
	index := make(map[string]int)

	for _, it := range items {
		i, ok := index[it.ShopID]
		if !ok {
			index[it.ShopID] = len(groups)
			groups = append(groups, ShopGroup{
				ShopID:     it.ShopID,
				ShopName:   it.ShopName,
				ShopAreaID: it.ShopAreaID,
			})
			i = len(groups) - 1
		}
		groups[i].Items = append(groups[i].Items, it)
	}

	return groups
}
