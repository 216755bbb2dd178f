package shipment

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
)

const (
	EventCreated        = "shipment.created"
	EventStatusChanged  = "shipment.status_changed"
	EventDriverAssigned = "shipment.driver_assigned"
)

type CreatedEvent struct {
	ShipmentID     kernel.UUID `json:"-"`
	TrackingNumber string      `json:"trackingNumber"`
	ClientID       string      `json:"clientId"`
	At             time.Time   `json:"at"`
}

func (e CreatedEvent) EventName() string        { return EventCreated }
func (e CreatedEvent) AggregateID() kernel.UUID { return e.ShipmentID }
func (e CreatedEvent) OccurredAt() time.Time    { return e.At }

type StatusChangedEvent struct {
	ShipmentID     kernel.UUID `json:"-"`
	TrackingNumber string      `json:"trackingNumber"`
	From           string      `json:"from"`
	To             string      `json:"to"`
	Actor          string      `json:"actor"`
	At             time.Time   `json:"at"`
}

func (e StatusChangedEvent) EventName() string        { return EventStatusChanged }
func (e StatusChangedEvent) AggregateID() kernel.UUID { return e.ShipmentID }
func (e StatusChangedEvent) OccurredAt() time.Time    { return e.At }

type DriverAssignedEvent struct {
	ShipmentID     kernel.UUID `json:"-"`
	TrackingNumber string      `json:"trackingNumber"`
	DriverID       string      `json:"driverId"`
	At             time.Time   `json:"at"`
}

func (e DriverAssignedEvent) EventName() string        { return EventDriverAssigned }
func (e DriverAssignedEvent) AggregateID() kernel.UUID { return e.ShipmentID }
func (e DriverAssignedEvent) OccurredAt() time.Time    { return e.At }
