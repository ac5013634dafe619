package events

import "context"

// Publisher emits domain events. The checkout flow works without a broker;
// wiring is optional (NopPublisher when AMQP_URL is unset).
type Publisher interface {
	PublishCartCheckedOut(ctx context.Context, evt CartCheckedOut) error
}

type NopPublisher struct{}

func (NopPublisher) PublishCartCheckedOut(context.Context, CartCheckedOut) error {
	return nil
}
