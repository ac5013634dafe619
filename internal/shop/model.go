package shop

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shop is a directory record. Directory operations only read it; records
// are created through the owner endpoints.
type Shop struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	AreaID              string          `json:"area_id"`
	OwnerID             string          `json:"-"`
	Rating              float64         `json:"rating"`
	RatingLabel         string          `json:"rating_label"`
	DeliveryFee         decimal.Decimal `json:"delivery_fee"`
	FreeDelivery        bool            `json:"free_delivery"`
	DeliveryTimeMinutes int             `json:"delivery_time_minutes"`
	MinOrderAmount      decimal.Decimal `json:"min_order_amount"`
	DiscountPercent     decimal.Decimal `json:"discount_percent"`
	ImageURLs           []string        `json:"image_urls"`
	CreatedAt           time.Time       `json:"created_at"`
}

// IsFree reports free delivery, whether flagged or priced at zero.
func (s Shop) IsFree() bool {
	return s.FreeDelivery || s.DeliveryFee.IsZero()
}
