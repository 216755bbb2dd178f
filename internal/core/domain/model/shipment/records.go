package shipment

import (
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

const (
	MinRatingScore = 1
	MaxRatingScore = 5
)

type ServiceType string

const (
	ServiceStandard  ServiceType = "standard"
	ServiceExpress   ServiceType = "express"
	ServiceSameDay   ServiceType = "same_day"
	ServiceOvernight ServiceType = "overnight"
)

func (t ServiceType) Validate() error {
	switch t {
	case ServiceStandard, ServiceExpress, ServiceSameDay, ServiceOvernight:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("serviceType", fmt.Errorf("%q is not a valid service type", string(t)))
}

type IssueType string

const (
	IssueDamaged             IssueType = "damaged"
	IssueDelayed             IssueType = "delayed"
	IssueLost                IssueType = "lost"
	IssueWrongAddress        IssueType = "wrong_address"
	IssueCustomerUnavailable IssueType = "customer_unavailable"
	IssueOther               IssueType = "other"
)

func (t IssueType) Validate() error {
	switch t {
	case IssueDamaged, IssueDelayed, IssueLost, IssueWrongAddress, IssueCustomerUnavailable, IssueOther:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("issueType", fmt.Errorf("%q is not a valid issue type", string(t)))
}

type CancellationReason string

const (
	CancelCustomerRequest CancellationReason = "customer_request"
	CancelAddressIssue    CancellationReason = "address_issue"
	CancelPaymentIssue    CancellationReason = "payment_issue"
	CancelDuplicate       CancellationReason = "duplicate"
	CancelOther           CancellationReason = "other"
)

func (r CancellationReason) Validate() error {
	switch r {
	case CancelCustomerRequest, CancelAddressIssue, CancelPaymentIssue, CancelDuplicate, CancelOther:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("reason", fmt.Errorf("%q is not a valid cancellation reason", string(r)))
}

type DocumentKind string

const (
	DocumentInvoice         DocumentKind = "invoice"
	DocumentProofOfDelivery DocumentKind = "proof_of_delivery"
	DocumentCustoms         DocumentKind = "customs"
	DocumentLabel           DocumentKind = "label"
	DocumentPhoto           DocumentKind = "photo"
	DocumentOther           DocumentKind = "other"
)

func (k DocumentKind) Validate() error {
	switch k {
	case DocumentInvoice, DocumentProofOfDelivery, DocumentCustoms, DocumentLabel, DocumentPhoto, DocumentOther:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("documentKind", fmt.Errorf("%q is not a valid document kind", string(k)))
}

// Issue is a problem report attached to a shipment. Issues are append-only.
type Issue struct {
	ID          kernel.UUID
	Type        IssueType
	Description string
	ReportedBy  kernel.Actor
	ReportedAt  time.Time
}

// Cancellation fills the single cancellation slot of a shipment.
type Cancellation struct {
	Reason      CancellationReason
	Notes       string
	CancelledBy kernel.Actor
	CancelledAt time.Time
}

// Rating is the owning client's single score of a delivered shipment.
type Rating struct {
	Score   int
	Comment string
	RatedBy kernel.UUID
	RatedAt time.Time
}

// Document references an uploaded file held by the blob store.
type Document struct {
	ID          kernel.UUID
	Kind        DocumentKind
	URL         string
	Filename    string
	ContentType string
	SizeBytes   int64
	UploadedBy  kernel.Actor
	UploadedAt  time.Time
}
