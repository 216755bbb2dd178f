// Package paymentrepo persists payment aggregates. The ledger sub-records
// are jsonb columns on the payment row; shipment_id is unique so a shipment
// has at most one payment.
package paymentrepo

import (
	"errors"
	"time"

	"logistics/internal/adapters/out/postgres/columns"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

// shipmentUniqueIndex is the constraint that backs one-payment-per-shipment.
const shipmentUniqueIndex = "idx_payments_shipment_id"

type PaymentDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID      uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_payments_shipment_id;not null"`
	ClientID        uuid.UUID `gorm:"type:uuid;index;not null"`
	Status          string    `gorm:"index;not null"`
	Method          string    `gorm:"not null"`
	Terms           string    `gorm:"not null"`
	Notes           string
	Subtotal        int64
	Tax             int64
	Discount        int64
	Total           int64
	Currency        string      `gorm:"size:3;not null"`
	Charges         []ChargeDTO `gorm:"type:jsonb;serializer:json"`
	DueDate         time.Time   `gorm:"index;not null"`
	PaidDate        *time.Time
	Timeline        []TimelineEntryDTO  `gorm:"type:jsonb;serializer:json"`
	Refunds         []RefundDTO         `gorm:"type:jsonb;serializer:json"`
	PartialPayments []PartialPaymentDTO `gorm:"type:jsonb;serializer:json"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Version         int64 `gorm:"not null;default:0"`
}

func (PaymentDTO) TableName() string {
	return "payments"
}

type ChargeDTO struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Amount      int64  `json:"amount"`
	Quantity    int    `json:"quantity"`
	Rate        int64  `json:"rate"`
}

type TimelineEntryDTO struct {
	Status        string           `json:"status"`
	At            time.Time        `json:"at"`
	Notes         string           `json:"notes,omitempty"`
	PartialAmount *int64           `json:"partialAmount,omitempty"`
	Actor         columns.ActorDTO `json:"actor"`
}

type RefundDTO struct {
	ID                   string           `json:"id"`
	Amount               int64            `json:"amount"`
	Reason               string           `json:"reason"`
	Method               string           `json:"method,omitempty"`
	Notes                string           `json:"notes,omitempty"`
	Status               string           `json:"status"`
	ProcessedBy          columns.ActorDTO `json:"processedBy"`
	GatewayTransactionID string           `json:"gatewayTransactionId,omitempty"`
	RequestedAt          time.Time        `json:"requestedAt"`
	CompletedAt          *time.Time       `json:"completedAt,omitempty"`
}

type PartialPaymentDTO struct {
	ID            string           `json:"id"`
	Amount        int64            `json:"amount"`
	Method        string           `json:"method"`
	Status        string           `json:"status"`
	TransactionID string           `json:"transactionId,omitempty"`
	RecordedBy    columns.ActorDTO `json:"recordedBy"`
	PaidAt        time.Time        `json:"paidAt"`
}

func fromDomain(p *payment.Payment) PaymentDTO {
	amount := p.Amount()

	charges := make([]ChargeDTO, 0, len(p.Charges()))
	for _, c := range p.Charges() {
		charges = append(charges, ChargeDTO{
			Type:        string(c.Type),
			Description: c.Description,
			Amount:      c.Amount.Amount(),
			Quantity:    c.Quantity,
			Rate:        c.Rate.Amount(),
		})
	}

	timeline := make([]TimelineEntryDTO, 0, len(p.Timeline()))
	for _, e := range p.Timeline() {
		var partial *int64
		if m := e.PartialAmount(); m != nil {
			v := m.Amount()
			partial = &v
		}
		timeline = append(timeline, TimelineEntryDTO{
			Status:        e.Status().String(),
			At:            e.At(),
			Notes:         e.Notes(),
			PartialAmount: partial,
			Actor:         columns.ActorFromDomain(e.Actor()),
		})
	}

	refunds := make([]RefundDTO, 0, len(p.Refunds()))
	for _, r := range p.Refunds() {
		refunds = append(refunds, RefundDTO{
			ID:                   r.ID,
			Amount:               r.Amount.Amount(),
			Reason:               string(r.Reason),
			Method:               string(r.Method),
			Notes:                r.Notes,
			Status:               string(r.Status),
			ProcessedBy:          columns.ActorFromDomain(r.ProcessedBy),
			GatewayTransactionID: r.GatewayTransactionID,
			RequestedAt:          r.RequestedAt,
			CompletedAt:          r.CompletedAt,
		})
	}

	partials := make([]PartialPaymentDTO, 0, len(p.PartialPayments()))
	for _, pp := range p.PartialPayments() {
		partials = append(partials, PartialPaymentDTO{
			ID:            pp.ID,
			Amount:        pp.Amount.Amount(),
			Method:        string(pp.Method),
			Status:        string(pp.Status),
			TransactionID: pp.TransactionID,
			RecordedBy:    columns.ActorFromDomain(pp.RecordedBy),
			PaidAt:        pp.PaidAt,
		})
	}

	return PaymentDTO{
		ID:              p.ID().Bytes(),
		ShipmentID:      p.ShipmentID().Bytes(),
		ClientID:        p.ClientID().Bytes(),
		Status:          p.Status().String(),
		Method:          string(p.Method()),
		Terms:           string(p.Terms()),
		Notes:           p.Notes(),
		Subtotal:        amount.Subtotal().Amount(),
		Tax:             amount.Tax().Amount(),
		Discount:        amount.Discount().Amount(),
		Total:           amount.Total().Amount(),
		Currency:        amount.Currency(),
		Charges:         charges,
		DueDate:         p.DueDate(),
		PaidDate:        p.PaidDate(),
		Timeline:        timeline,
		Refunds:         refunds,
		PartialPayments: partials,
		CreatedAt:       p.CreatedAt(),
		UpdatedAt:       p.UpdatedAt(),
		Version:         p.Version(),
	}
}

func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, idErr := columns.KernelUUID(dto.ID)
	shipmentID, shipmentErr := columns.KernelUUID(dto.ShipmentID)
	clientID, clientErr := columns.KernelUUID(dto.ClientID)
	if err := errors.Join(idErr, shipmentErr, clientErr); err != nil {
		return nil, err
	}
	money := func(v int64) columns.MoneyDTO { return columns.MoneyDTO{Amount: v, Currency: dto.Currency} }

	charges := make([]payment.Charge, 0, len(dto.Charges))
	for _, c := range dto.Charges {
		charges = append(charges, payment.Charge{
			Type:        payment.ChargeType(c.Type),
			Description: c.Description,
			Amount:      money(c.Amount).ToDomain(),
			Quantity:    c.Quantity,
			Rate:        money(c.Rate).ToDomain(),
		})
	}

	timeline := make([]payment.TimelineEntry, 0, len(dto.Timeline))
	for _, e := range dto.Timeline {
		status, err := payment.ParseStatus(e.Status)
		if err != nil {
			return nil, err
		}
		actor, err := e.Actor.ToDomain()
		if err != nil {
			return nil, err
		}
		var partial *kernel.Money
		if e.PartialAmount != nil {
			m := money(*e.PartialAmount).ToDomain()
			partial = &m
		}
		timeline = append(timeline, payment.RestoreTimelineEntry(status, e.At, e.Notes, partial, actor))
	}

	refunds := make([]payment.Refund, 0, len(dto.Refunds))
	for _, r := range dto.Refunds {
		actor, err := r.ProcessedBy.ToDomain()
		if err != nil {
			return nil, err
		}
		refunds = append(refunds, payment.Refund{
			ID:                   r.ID,
			Amount:               money(r.Amount).ToDomain(),
			Reason:               payment.RefundReason(r.Reason),
			Method:               payment.Method(r.Method),
			Notes:                r.Notes,
			Status:               payment.EntryStatus(r.Status),
			ProcessedBy:          actor,
			GatewayTransactionID: r.GatewayTransactionID,
			RequestedAt:          r.RequestedAt,
			CompletedAt:          r.CompletedAt,
		})
	}

	partials := make([]payment.PartialPayment, 0, len(dto.PartialPayments))
	for _, pp := range dto.PartialPayments {
		actor, err := pp.RecordedBy.ToDomain()
		if err != nil {
			return nil, err
		}
		partials = append(partials, payment.PartialPayment{
			ID:            pp.ID,
			Amount:        money(pp.Amount).ToDomain(),
			Method:        payment.Method(pp.Method),
			Status:        payment.EntryStatus(pp.Status),
			TransactionID: pp.TransactionID,
			RecordedBy:    actor,
			PaidAt:        pp.PaidAt,
		})
	}

	return payment.RestorePayment(payment.RestoreParams{
		ID:              id,
		ShipmentID:      shipmentID,
		ClientID:        clientID,
		Amount:          payment.RestoreAmount(dto.Subtotal, dto.Tax, dto.Discount, dto.Total, dto.Currency),
		Charges:         charges,
		Method:          payment.Method(dto.Method),
		Terms:           payment.Terms(dto.Terms),
		Notes:           dto.Notes,
		DueDate:         dto.DueDate,
		PaidDate:        dto.PaidDate,
		Timeline:        timeline,
		Refunds:         refunds,
		PartialPayments: partials,
		CreatedAt:       dto.CreatedAt,
		UpdatedAt:       dto.UpdatedAt,
		Version:         dto.Version,
	})
}
