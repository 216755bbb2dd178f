package payment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")

// CreateParams is the validated input of NewPayment. Terms must already be
// resolved by the caller (see ResolveTerms); an empty value means DefaultTerms.
// A nil DueDate is derived from the terms.
type CreateParams struct {
	ShipmentID kernel.UUID
	ClientID   kernel.UUID
	Amount     Amount
	Charges    []Charge
	Method     Method
	Terms      Terms
	DueDate    *time.Time
	Notes      string
	CreatedBy  kernel.Actor
}

// Payment is the aggregate root of the ledger for one shipment.
//
// Invariants:
//   - at most one payment references a shipment (enforced by the repository)
//   - Status() is always the status of the latest timeline entry
//   - the sum of completed refunds never exceeds the total
//   - the sum of completed partial payments never exceeds the total
//   - RemainingBalance() is zero when completed, otherwise total minus
//     completed partial payments
type Payment struct {
	kernel.EventRecorder

	id         kernel.UUID
	shipmentID kernel.UUID
	clientID   kernel.UUID

	amount  Amount
	charges []Charge
	method  Method
	terms   Terms
	notes   string

	dueDate  time.Time
	paidDate *time.Time

	timeline kernel.OrderedLog[TimelineEntry]
	refunds  []Refund
	partials kernel.OrderedLog[PartialPayment]

	createdAt time.Time
	updatedAt time.Time
	version   int64

	isConstructed bool
}

func NewPayment(p CreateParams, now time.Time) (*Payment, error) {
	now = now.UTC()

	var errList []error
	if err := p.ShipmentID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("shipmentId", err))
	}
	if err := p.ClientID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("clientId", err))
	}
	if err := p.Amount.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("amount", err))
	}
	for i, c := range p.Charges {
		if p.Amount.Validate() == nil && c.Amount.Currency() != p.Amount.Currency() {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("charges[%d].amount", i),
				fmt.Errorf("currency %s differs from %s", c.Amount.Currency(), p.Amount.Currency())))
		}
	}
	if p.Method != "" {
		errList = append(errList, p.Method.Validate())
	}
	if p.Terms != "" {
		errList = append(errList, p.Terms.Validate())
	}
	if err := p.CreatedBy.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("createdBy", err))
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	terms := p.Terms
	if terms == "" {
		terms = DefaultTerms
	}
	dueDate := terms.DueDate(now)
	if p.DueDate != nil {
		dueDate = p.DueDate.UTC()
	}

	pay := &Payment{
		id:            kernel.NewUUID(),
		shipmentID:    p.ShipmentID,
		clientID:      p.ClientID,
		amount:        p.Amount,
		charges:       append([]Charge(nil), p.Charges...),
		method:        p.Method,
		terms:         terms,
		notes:         strings.TrimSpace(p.Notes),
		dueDate:       dueDate,
		timeline:      kernel.NewOrderedLog[TimelineEntry](0),
		partials:      kernel.NewOrderedLog[PartialPayment](0),
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}
	pay.timeline.Append(RestoreTimelineEntry(Pending, now, "Payment created", nil, p.CreatedBy))

	pay.Record(CreatedEvent{
		PaymentID:  pay.id,
		ShipmentID: pay.shipmentID.String(),
		ClientID:   pay.clientID.String(),
		Total:      pay.amount.Total().Amount(),
		Currency:   pay.amount.Currency(),
		DueDate:    pay.dueDate,
		At:         now,
	})
	return pay, nil
}

// RestoreParams is the persisted form of a payment.
type RestoreParams struct {
	ID              kernel.UUID
	ShipmentID      kernel.UUID
	ClientID        kernel.UUID
	Amount          Amount
	Charges         []Charge
	Method          Method
	Terms           Terms
	Notes           string
	DueDate         time.Time
	PaidDate        *time.Time
	Timeline        []TimelineEntry
	Refunds         []Refund
	PartialPayments []PartialPayment
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Version         int64
}

func RestorePayment(p RestoreParams) (*Payment, error) {
	if err := errors.Join(p.ID.Validate(), p.ShipmentID.Validate(), p.ClientID.Validate(), p.Amount.Validate()); err != nil {
		return nil, err
	}
	if len(p.Timeline) == 0 {
		return nil, errs.NewValueIsRequiredError("timeline")
	}

	return &Payment{
		id:            p.ID,
		shipmentID:    p.ShipmentID,
		clientID:      p.ClientID,
		amount:        p.Amount,
		charges:       p.Charges,
		method:        p.Method,
		terms:         p.Terms,
		notes:         p.Notes,
		dueDate:       p.DueDate,
		paidDate:      p.PaidDate,
		timeline:      kernel.RestoreOrderedLog(p.Timeline, 0),
		refunds:       p.Refunds,
		partials:      kernel.RestoreOrderedLog(p.PartialPayments, 0),
		createdAt:     p.CreatedAt,
		updatedAt:     p.UpdatedAt,
		version:       p.Version,
		isConstructed: true,
	}, nil
}

func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

func (p *Payment) ID() kernel.UUID                   { return p.id }
func (p *Payment) ShipmentID() kernel.UUID           { return p.shipmentID }
func (p *Payment) ClientID() kernel.UUID             { return p.clientID }
func (p *Payment) Amount() Amount                    { return p.amount }
func (p *Payment) Charges() []Charge                 { return append([]Charge(nil), p.charges...) }
func (p *Payment) Method() Method                    { return p.method }
func (p *Payment) Terms() Terms                      { return p.terms }
func (p *Payment) Notes() string                     { return p.notes }
func (p *Payment) DueDate() time.Time                { return p.dueDate }
func (p *Payment) PaidDate() *time.Time              { return p.paidDate }
func (p *Payment) Timeline() []TimelineEntry         { return p.timeline.Entries() }
func (p *Payment) Refunds() []Refund                 { return append([]Refund(nil), p.refunds...) }
func (p *Payment) PartialPayments() []PartialPayment { return p.partials.Entries() }
func (p *Payment) CreatedAt() time.Time              { return p.createdAt }
func (p *Payment) UpdatedAt() time.Time              { return p.updatedAt }
func (p *Payment) Version() int64                    { return p.version }
func (p *Payment) IncrementVersion()                 { p.version++ }

// Status is the status of the latest timeline entry.
func (p *Payment) Status() Status {
	latest, _ := p.timeline.Latest()
	return latest.Status()
}

func (p *Payment) IsOwnedBy(clientID kernel.UUID) bool {
	return p.clientID.IsEqual(clientID)
}

// TotalRefunded sums completed refunds only.
func (p *Payment) TotalRefunded() kernel.Money {
	sum := kernel.ZeroMoney(p.amount.Currency())
	for _, r := range p.refunds {
		if r.Status == EntryCompleted {
			sum = sum.Add(r.Amount)
		}
	}
	return sum
}

// TotalPartiallyPaid sums completed partial payments.
func (p *Payment) TotalPartiallyPaid() kernel.Money {
	sum := kernel.ZeroMoney(p.amount.Currency())
	for partial := range p.partials.All() {
		if partial.Status == EntryCompleted {
			sum = sum.Add(partial.Amount)
		}
	}
	return sum
}

// RemainingBalance is zero once completed, otherwise the total minus
// completed partial payments.
func (p *Payment) RemainingBalance() kernel.Money {
	if p.Status() == Completed {
		return kernel.ZeroMoney(p.amount.Currency())
	}
	return p.amount.Total().Sub(p.TotalPartiallyPaid())
}

// IsOverdue reports whether money is still expected after the due date.
func (p *Payment) IsOverdue(now time.Time) bool {
	return p.Status().IsOpen() && now.After(p.dueDate)
}

// UpdateStatus sets one of processing, completed, failed or cancelled. No
// adjacency is enforced. Completed stamps the paid date.
func (p *Payment) UpdateStatus(to Status, notes string, actor kernel.Actor, now time.Time) error {
	if err := to.Validate(); err != nil {
		return err
	}
	if !to.IsSettable() {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is derived from refunds and cannot be set directly", to))
	}
	if err := actor.Validate(); err != nil {
		return err
	}
	p.appendStatus(to, notes, nil, actor, now)
	return nil
}

// RefundParams describes a refund request in minor units.
type RefundParams struct {
	Amount int64
	Reason RefundReason
	Method Method
	Notes  string
}

// AddRefund appends a pending refund. The bound is checked against completed
// refunds only, so a pending refund does not change the status until
// CompleteRefund settles it.
func (p *Payment) AddRefund(r RefundParams, processedBy kernel.Actor, now time.Time) (Refund, error) {
	var errList []error
	if r.Amount <= 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("amount", r.Amount, 1, "unbounded"))
	}
	errList = append(errList, r.Reason.Validate(), processedBy.Validate())
	if r.Method != "" {
		errList = append(errList, r.Method.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return Refund{}, err
	}

	// A fully refunded payment has nothing left to refund, which is a
	// balance failure rather than a state one.
	if st := p.Status(); st != Completed && st != PartiallyRefunded && st != Refunded {
		return Refund{}, errs.NewInvalidStateError("payment", st.String(), Completed.String())
	}
	available := p.amount.Total().Sub(p.TotalRefunded())
	if r.Amount > available.Amount() {
		return Refund{}, errs.NewInsufficientBalanceError(r.Amount, available.Amount())
	}

	id, err := newEntryID(refundPrefix)
	if err != nil {
		return Refund{}, err
	}
	now = now.UTC()
	refund := Refund{
		ID:          id,
		Amount:      kernel.RestoreMoney(r.Amount, p.amount.Currency()),
		Reason:      r.Reason,
		Method:      r.Method,
		Notes:       strings.TrimSpace(r.Notes),
		Status:      EntryPending,
		ProcessedBy: processedBy,
		RequestedAt: now,
	}
	p.refunds = append(p.refunds, refund)
	p.updatedAt = now
	p.recomputeRefundStatus(processedBy, now)

	p.Record(RefundAddedEvent{
		PaymentID: p.id,
		RefundID:  refund.ID,
		Amount:    r.Amount,
		Reason:    string(r.Reason),
		At:        now,
	})
	return refund, nil
}

// CanCompleteRefund returns the pending refund refundID when completing it
// keeps completed refunds within the payment total. Money must not move
// through a gateway for a refund that fails this check.
func (p *Payment) CanCompleteRefund(refundID string) (Refund, error) {
	idx := p.refundIndex(refundID)
	if idx < 0 {
		return Refund{}, errs.NewObjectNotFoundError("refundId", refundID)
	}
	refund := p.refunds[idx]
	if refund.Status != EntryPending {
		return Refund{}, errs.NewInvalidStateError("refund", string(refund.Status), string(EntryPending))
	}
	available := p.amount.Total().Sub(p.TotalRefunded())
	if refund.Amount.Amount() > available.Amount() {
		return Refund{}, errs.NewInsufficientBalanceError(refund.Amount.Amount(), available.Amount())
	}
	return refund, nil
}

// CompleteRefund settles a pending refund and re-derives the status.
func (p *Payment) CompleteRefund(refundID, gatewayTransactionID string, actor kernel.Actor, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	refund, err := p.CanCompleteRefund(refundID)
	if err != nil {
		return err
	}
	idx := p.refundIndex(refundID)

	now = now.UTC()
	refund.Status = EntryCompleted
	refund.GatewayTransactionID = gatewayTransactionID
	refund.CompletedAt = &now
	p.refunds[idx] = refund
	p.updatedAt = now
	p.recomputeRefundStatus(actor, now)

	p.Record(RefundCompletedEvent{
		PaymentID:     p.id,
		RefundID:      refund.ID,
		Amount:        refund.Amount.Amount(),
		TotalRefunded: p.TotalRefunded().Amount(),
		At:            now,
	})
	return nil
}

// FailRefund marks a pending refund as failed. It never counts toward the
// refunded total.
func (p *Payment) FailRefund(refundID string, actor kernel.Actor, now time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	idx := p.refundIndex(refundID)
	if idx < 0 {
		return errs.NewObjectNotFoundError("refundId", refundID)
	}
	if st := p.refunds[idx].Status; st != EntryPending {
		return errs.NewInvalidStateError("refund", string(st), string(EntryPending))
	}
	p.refunds[idx].Status = EntryFailed
	p.updatedAt = now.UTC()
	return nil
}

// PartialParams describes an incoming partial payment in minor units.
type PartialParams struct {
	Amount        int64
	Method        Method
	TransactionID string
}

// RecordPartialPayment appends a completed partial payment. When nothing is
// left to pay the payment completes, otherwise it moves to processing; both
// timeline entries carry the partial amount.
func (p *Payment) RecordPartialPayment(r PartialParams, actor kernel.Actor, now time.Time) (PartialPayment, error) {
	var errList []error
	if r.Amount <= 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("amount", r.Amount, 1, "unbounded"))
	}
	errList = append(errList, r.Method.Validate(), actor.Validate())
	if err := errors.Join(errList...); err != nil {
		return PartialPayment{}, err
	}

	remaining := p.RemainingBalance()
	if r.Amount > remaining.Amount() {
		return PartialPayment{}, errs.NewInsufficientBalanceError(r.Amount, remaining.Amount())
	}

	id, err := newEntryID(partialPrefix)
	if err != nil {
		return PartialPayment{}, err
	}
	now = now.UTC()
	amount := kernel.RestoreMoney(r.Amount, p.amount.Currency())
	partial := PartialPayment{
		ID:            id,
		Amount:        amount,
		Method:        r.Method,
		Status:        EntryCompleted,
		TransactionID: strings.TrimSpace(r.TransactionID),
		RecordedBy:    actor,
		PaidAt:        now,
	}
	p.partials.Append(partial)

	left := remaining.Sub(amount)
	if left.Amount() <= 0 {
		p.appendStatus(Completed, fmt.Sprintf("Paid in full with partial payment of %s", amount), &amount, actor, now)
	} else {
		p.appendStatus(Processing, fmt.Sprintf("Partial payment of %s received, %s remaining", amount, left), &amount, actor, now)
	}

	p.Record(PartialPaymentRecordedEvent{
		PaymentID:        p.id,
		PartialID:        partial.ID,
		Amount:           amount.Amount(),
		RemainingBalance: p.RemainingBalance().Amount(),
		At:               now,
	})
	return partial, nil
}

func (p *Payment) recomputeRefundStatus(actor kernel.Actor, now time.Time) {
	refunded := p.TotalRefunded()
	var next Status
	switch {
	case refunded.Amount() >= p.amount.Total().Amount():
		next = Refunded
	case refunded.IsPositive():
		next = PartiallyRefunded
	default:
		return
	}
	if next == p.Status() {
		return
	}
	p.appendStatus(next, fmt.Sprintf("Refunded %s of %s", refunded, p.amount.Total()), nil, actor, now)
}

func (p *Payment) refundIndex(refundID string) int {
	for i, r := range p.refunds {
		if r.ID == refundID {
			return i
		}
	}
	return -1
}

func (p *Payment) appendStatus(to Status, notes string, partialAmount *kernel.Money, actor kernel.Actor, now time.Time) {
	now = now.UTC()
	from := p.Status()
	p.timeline.Append(RestoreTimelineEntry(to, now, strings.TrimSpace(notes), partialAmount, actor))
	p.updatedAt = now
	if to == Completed {
		p.paidDate = &now
	}

	p.Record(StatusChangedEvent{
		PaymentID: p.id,
		From:      from.String(),
		To:        to.String(),
		Actor:     actor.String(),
		At:        now,
	})
}
