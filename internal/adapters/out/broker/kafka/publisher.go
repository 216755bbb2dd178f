package kafka

import (
	"context"
	"errors"
	"fmt"

	"logistics/internal/adapters/out/broker"
	"logistics/internal/core/domain/model/kernel"

	skafka "github.com/segmentio/kafka-go"
)

// Writer is the part of kafka.Writer the publisher uses.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...skafka.Message) error
	Close() error
}

// Topics routes events by stream. Events of a stream without a topic are
// dropped.
type Topics map[string]string

// Publisher writes domain events to Kafka, keyed by aggregate id so the
// events of one shipment or payment stay ordered within a partition.
type Publisher struct {
	writer Writer
	topics Topics
}

// NewPublisher creates a publisher writing to brokerAddr. The topic is set
// per message.
func NewPublisher(brokerAddr string, topics Topics) *Publisher {
	w := &skafka.Writer{
		Addr:                   skafka.TCP(brokerAddr),
		Balancer:               &skafka.Hash{},
		RequiredAcks:           skafka.RequireAll,
		AllowAutoTopicCreation: true,
	}
	return NewPublisherWithWriter(w, topics)
}

func NewPublisherWithWriter(w Writer, topics Topics) *Publisher {
	return &Publisher{writer: w, topics: topics}
}

func (p *Publisher) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	msgs := make([]skafka.Message, 0, len(events))
	var errList []error
	for _, e := range events {
		topic, ok := p.topics[broker.Stream(e.EventName())]
		if !ok || topic == "" {
			continue
		}

		env, err := broker.NewEnvelope(e)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		value, err := env.Marshal()
		if err != nil {
			errList = append(errList, err)
			continue
		}

		msgs = append(msgs, skafka.Message{
			Topic: topic,
			Key:   []byte(env.AggregateID),
			Value: value,
			Time:  env.OccurredAt,
			Headers: []skafka.Header{
				{Key: "event", Value: []byte(env.Name)},
			},
		})
	}

	if len(msgs) > 0 {
		if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
			errList = append(errList, fmt.Errorf("kafka write: %w", err))
		}
	}
	return errors.Join(errList...)
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
