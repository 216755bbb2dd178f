package payment

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
)

const (
	EventCreated                = "payment.created"
	EventStatusChanged          = "payment.status_changed"
	EventRefundAdded            = "payment.refund_added"
	EventRefundCompleted        = "payment.refund_completed"
	EventPartialPaymentRecorded = "payment.partial_payment_recorded"
	EventOverdue                = "payment.overdue"
)

type CreatedEvent struct {
	PaymentID  kernel.UUID `json:"-"`
	ShipmentID string      `json:"shipmentId"`
	ClientID   string      `json:"clientId"`
	Total      int64       `json:"total"`
	Currency   string      `json:"currency"`
	DueDate    time.Time   `json:"dueDate"`
	At         time.Time   `json:"at"`
}

func (e CreatedEvent) EventName() string        { return EventCreated }
func (e CreatedEvent) AggregateID() kernel.UUID { return e.PaymentID }
func (e CreatedEvent) OccurredAt() time.Time    { return e.At }

type StatusChangedEvent struct {
	PaymentID kernel.UUID `json:"-"`
	From      string      `json:"from"`
	To        string      `json:"to"`
	Actor     string      `json:"actor"`
	At        time.Time   `json:"at"`
}

func (e StatusChangedEvent) EventName() string        { return EventStatusChanged }
func (e StatusChangedEvent) AggregateID() kernel.UUID { return e.PaymentID }
func (e StatusChangedEvent) OccurredAt() time.Time    { return e.At }

type RefundAddedEvent struct {
	PaymentID kernel.UUID `json:"-"`
	RefundID  string      `json:"refundId"`
	Amount    int64       `json:"amount"`
	Reason    string      `json:"reason"`
	At        time.Time   `json:"at"`
}

func (e RefundAddedEvent) EventName() string        { return EventRefundAdded }
func (e RefundAddedEvent) AggregateID() kernel.UUID { return e.PaymentID }
func (e RefundAddedEvent) OccurredAt() time.Time    { return e.At }

type RefundCompletedEvent struct {
	PaymentID     kernel.UUID `json:"-"`
	RefundID      string      `json:"refundId"`
	Amount        int64       `json:"amount"`
	TotalRefunded int64       `json:"totalRefunded"`
	At            time.Time   `json:"at"`
}

func (e RefundCompletedEvent) EventName() string        { return EventRefundCompleted }
func (e RefundCompletedEvent) AggregateID() kernel.UUID { return e.PaymentID }
func (e RefundCompletedEvent) OccurredAt() time.Time    { return e.At }

type PartialPaymentRecordedEvent struct {
	PaymentID        kernel.UUID `json:"-"`
	PartialID        string      `json:"partialId"`
	Amount           int64       `json:"amount"`
	RemainingBalance int64       `json:"remainingBalance"`
	At               time.Time   `json:"at"`
}

func (e PartialPaymentRecordedEvent) EventName() string        { return EventPartialPaymentRecorded }
func (e PartialPaymentRecordedEvent) AggregateID() kernel.UUID { return e.PaymentID }
func (e PartialPaymentRecordedEvent) OccurredAt() time.Time    { return e.At }

// OverdueEvent is emitted by the overdue scan, not by the aggregate.
type OverdueEvent struct {
	PaymentID        kernel.UUID `json:"-"`
	ClientID         string      `json:"clientId"`
	DueDate          time.Time   `json:"dueDate"`
	RemainingBalance int64       `json:"remainingBalance"`
	At               time.Time   `json:"at"`
}

func (e OverdueEvent) EventName() string        { return EventOverdue }
func (e OverdueEvent) AggregateID() kernel.UUID { return e.PaymentID }
func (e OverdueEvent) OccurredAt() time.Time    { return e.At }
