package pricing

import "github.com/shopspring/decimal"

// Line is the slice of a cart item pricing cares about.
type Line struct {
	UnitPrice decimal.Decimal
	Quantity  int
	ShopID    string
}

// Summary holds the derived money figures for the current cart.
// It is a cache, recomputed from the item list on every mutation.
type Summary struct {
	Subtotal  decimal.Decimal `json:"subtotal"`
	Delivery  decimal.Decimal `json:"delivery"`
	Discount  decimal.Decimal `json:"discount"`
	Total     decimal.Decimal `json:"total"`
	ShopCount int             `json:"shop_count"`
}

var oneHundred = decimal.NewFromInt(100)

// ComputeSummary derives subtotal, delivery fee and total from the lines.
// The delivery discount applies only when the order spans more than one
// distinct shop. Intermediate math is exact; rounding happens at
// formatting time only.
func ComputeSummary(lines []Line, deliveryFee, discountPercent decimal.Decimal) Summary {
	subtotal := decimal.Zero
	shops := make(map[string]struct{})

	for _, line := range lines {
		if line.Quantity <= 0 {
			continue
		}
		qty := decimal.NewFromInt(int64(line.Quantity))
		subtotal = subtotal.Add(line.UnitPrice.Mul(qty))
		shops[line.ShopID] = struct{}{}
	}

	if subtotal.IsNegative() {
		subtotal = decimal.Zero
	}

	discount := decimal.Zero
	delivery := deliveryFee
	if len(shops) > 1 {
		discount = deliveryFee.Mul(discountPercent).Div(oneHundred)
		delivery = deliveryFee.Sub(discount)
	}

	return Summary{
		Subtotal:  subtotal,
		Delivery:  delivery,
		Discount:  discount,
		Total:     subtotal.Add(delivery),
		ShopCount: len(shops),
	}
}

// Formatted is the wire shape of a summary: fixed-point strings with two
// fractional digits, rounded half away from zero.
type Formatted struct {
	Subtotal  string `json:"subtotal"`
	Delivery  string `json:"delivery"`
	Discount  string `json:"discount"`
	Total     string `json:"total"`
	ShopCount int    `json:"shop_count"`
}

func (s Summary) Format() Formatted {
	return Formatted{
		Subtotal:  s.Subtotal.StringFixed(2),
		Delivery:  s.Delivery.StringFixed(2),
		Discount:  s.Discount.StringFixed(2),
		Total:     s.Total.StringFixed(2),
		ShopCount: s.ShopCount,
	}
}
