package rabbitmq

import (
	"context"
	"errors"
	"fmt"

	"logistics/internal/adapters/out/broker"
	"logistics/internal/core/domain/model/kernel"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Channel is the part of amqp.Channel the publisher uses.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher sends domain events to a durable topic exchange. The routing key
// is the event name, so consumers bind with patterns such as "shipment.*".
type Publisher struct {
	conn     *amqp.Connection
	channel  Channel
	exchange string
}

// Dial connects, opens a channel and declares the exchange.
func Dial(url, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange,
		amqp.ExchangeTopic,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}

	return &Publisher{conn: conn, channel: ch, exchange: exchange}, nil
}

func NewPublisherWithChannel(ch Channel, exchange string) *Publisher {
	return &Publisher{channel: ch, exchange: exchange}
}

func (p *Publisher) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	var errList []error
	for _, e := range events {
		env, err := broker.NewEnvelope(e)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		body, err := env.Marshal()
		if err != nil {
			errList = append(errList, err)
			continue
		}

		err = p.channel.PublishWithContext(ctx, p.exchange, env.Name, false, false, amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    env.AggregateID + ":" + env.Name + ":" + env.OccurredAt.Format("20060102T150405.000000000"),
			Timestamp:    env.OccurredAt,
			Type:         env.Name,
			Body:         body,
		})
		if err != nil {
			errList = append(errList, fmt.Errorf("publish %s: %w", env.Name, err))
		}
	}
	return errors.Join(errList...)
}

func (p *Publisher) Close() error {
	var errList []error
	if p.channel != nil {
		errList = append(errList, p.channel.Close())
	}
	if p.conn != nil {
		errList = append(errList, p.conn.Close())
	}
	return errors.Join(errList...)
}
