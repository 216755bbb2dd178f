// Package broker holds what every event publisher shares: the wire
// envelope and a publisher that drops events.
package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
)

// Envelope is the JSON document written to the broker for one domain event.
type Envelope struct {
	Name        string          `json:"name"`
	AggregateID string          `json:"aggregateId"`
	OccurredAt  time.Time       `json:"occurredAt"`
	Payload     json.RawMessage `json:"payload"`
}

func NewEnvelope(e kernel.DomainEvent) (Envelope, error) {
	payload, err := json.Marshal(e)
	if err != nil {
		return Envelope{}, fmt.Errorf("encode %s payload: %w", e.EventName(), err)
	}
	return Envelope{
		Name:        e.EventName(),
		AggregateID: e.AggregateID().String(),
		OccurredAt:  e.OccurredAt().UTC(),
		Payload:     payload,
	}, nil
}

func (e Envelope) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

// Stream is the aggregate family an event belongs to, taken from the event
// name prefix ("shipment.created" -> "shipment").
func Stream(eventName string) string {
	stream, _, _ := strings.Cut(eventName, ".")
	return stream
}

// NoopPublisher discards events. It is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, ...kernel.DomainEvent) error { return nil }
func (NoopPublisher) Close() error                                         { return nil }
