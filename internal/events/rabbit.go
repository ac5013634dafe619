package events

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

type RabbitPublisher struct {
	ch *amqp.Channel
}

// NewRabbitPublisher declares the topic exchange and returns a publisher
// bound to it.
func NewRabbitPublisher(conn *amqp.Connection) (*RabbitPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	err = ch.ExchangeDeclare(
		EventsExchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		ch.Close()
		return nil, err
	}

	return &RabbitPublisher{ch: ch}, nil
}

func (p *RabbitPublisher) PublishCartCheckedOut(ctx context.Context, evt CartCheckedOut) error {
	if evt.EventType == "" {
		evt.EventType = "CartCheckedOut"
	}
	if evt.OccurredAt.IsZero() {
		evt.OccurredAt = time.Now().UTC()
	}

	body, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	return p.ch.PublishWithContext(ctx,
		EventsExchange,
		CartCheckedOutRoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    evt.OccurredAt,
			Body:         body,
		},
	)
}

func (p *RabbitPublisher) Close() error {
	return p.ch.Close()
}
