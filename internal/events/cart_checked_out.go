package events

import "time"

const (
	EventsExchange           = "talabak.events"
	CartCheckedOutRoutingKey = "cart.checkedout.v1"
)

type CartCheckedOut struct {
	EventType  string          `json:"eventType"`
	UserID     string          `json:"userId"`
	Items      []CartItemEvent `json:"items"`
	Subtotal   string          `json:"subtotal"`
	Delivery   string          `json:"delivery"`
	Discount   string          `json:"discount"`
	Total      string          `json:"total"`
	ShopCount  int             `json:"shopCount"`
	OccurredAt time.Time       `json:"occurredAt"`
}

type CartItemEvent struct {
	ProductID string `json:"productId"`
	ShopID    string `json:"shopId"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
}
