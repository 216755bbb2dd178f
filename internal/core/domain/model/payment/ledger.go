package payment

import (
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"go.jetify.com/typeid/v2"
)

const (
	refundPrefix  = "rfd"
	partialPrefix = "ppm"
)

// EntryStatus is the state of a refund or partial payment line.
type EntryStatus string

const (
	EntryPending   EntryStatus = "pending"
	EntryCompleted EntryStatus = "completed"
	EntryFailed    EntryStatus = "failed"
)

func (s EntryStatus) Validate() error {
	switch s {
	case EntryPending, EntryCompleted, EntryFailed:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("entryStatus", fmt.Errorf("%q is not a valid entry status", string(s)))
}

type RefundReason string

const (
	RefundDamagedGoods      RefundReason = "damaged_goods"
	RefundLateDelivery      RefundReason = "late_delivery"
	RefundCancelledShipment RefundReason = "cancelled_shipment"
	RefundOvercharge        RefundReason = "overcharge"
	RefundCustomerRequest   RefundReason = "customer_request"
	RefundOther             RefundReason = "other"
)

func (r RefundReason) Validate() error {
	switch r {
	case RefundDamagedGoods, RefundLateDelivery, RefundCancelledShipment,
		RefundOvercharge, RefundCustomerRequest, RefundOther:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("reason", fmt.Errorf("%q is not a valid refund reason", string(r)))
}

// Refund reverses funds against a completed payment. It starts pending and
// counts toward the refunded total only once completed.
type Refund struct {
	ID                   string
	Amount               kernel.Money
	Reason               RefundReason
	Method               Method
	Notes                string
	Status               EntryStatus
	ProcessedBy          kernel.Actor
	GatewayTransactionID string
	RequestedAt          time.Time
	CompletedAt          *time.Time
}

// PartialPayment is a completed sub-payment applied against the total.
type PartialPayment struct {
	ID            string
	Amount        kernel.Money
	Method        Method
	Status        EntryStatus
	TransactionID string
	RecordedBy    kernel.Actor
	PaidAt        time.Time
}

func newEntryID(prefix string) (string, error) {
	tid, err := typeid.Generate(prefix)
	if err != nil {
		return "", fmt.Errorf("generate %s id: %w", prefix, err)
	}
	return tid.String(), nil
}
