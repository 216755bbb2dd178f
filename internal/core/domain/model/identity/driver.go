package identity

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")

// DriverStatus gates whether a driver may log in and receive work.
type DriverStatus string

const (
	DriverPending   DriverStatus = "pending"
	DriverApproved  DriverStatus = "approved"
	DriverSuspended DriverStatus = "suspended"
	DriverRejected  DriverStatus = "rejected"
	DriverInactive  DriverStatus = "inactive"
)

func (s DriverStatus) Validate() error {
	switch s {
	case DriverPending, DriverApproved, DriverSuspended, DriverRejected, DriverInactive:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid driver status", string(s)))
}

// KYCStatus is the state of identity verification.
type KYCStatus string

const (
	KYCNotSubmitted KYCStatus = "not_submitted"
	KYCPending      KYCStatus = "pending"
	KYCApproved     KYCStatus = "approved"
	KYCRejected     KYCStatus = "rejected"
)

func (s KYCStatus) Validate() error {
	switch s {
	case KYCNotSubmitted, KYCPending, KYCApproved, KYCRejected:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("kycStatus", fmt.Errorf("%q is not a valid kyc status", string(s)))
}

// DriverDocument is a document that must be verified before KYC approval.
type DriverDocument string

const (
	DocumentLicense             DriverDocument = "license"
	DocumentVehicleRegistration DriverDocument = "vehicle_registration"
	DocumentInsurance           DriverDocument = "insurance"
	DocumentIdentityProof       DriverDocument = "identity_proof"
)

func (d DriverDocument) Validate() error {
	switch d {
	case DocumentLicense, DocumentVehicleRegistration, DocumentInsurance, DocumentIdentityProof:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("document", fmt.Errorf("%q is not a valid driver document", string(d)))
}

// DocumentChecks holds one verification flag per driver document.
type DocumentChecks struct {
	License             bool
	VehicleRegistration bool
	Insurance           bool
	IdentityProof       bool
}

// AllVerified reports whether every document has been verified.
func (c DocumentChecks) AllVerified() bool {
	return c.License && c.VehicleRegistration && c.Insurance && c.IdentityProof
}

func (c *DocumentChecks) set(doc DriverDocument, verified bool) {
	switch doc {
	case DocumentLicense:
		c.License = verified
	case DocumentVehicleRegistration:
		c.VehicleRegistration = verified
	case DocumentInsurance:
		c.Insurance = verified
	case DocumentIdentityProof:
		c.IdentityProof = verified
	}
}

// Vehicle describes what a driver drives.
type Vehicle struct {
	Type        string
	PlateNumber string
	CapacityKg  float64
}

// DriverParams is the input of NewDriver. PasswordHash must already be hashed.
type DriverParams struct {
	Email         string
	PasswordHash  string
	FirstName     string
	LastName      string
	Phone         string
	LicenseNumber string
	Vehicle       Vehicle
}

// Driver is a principal that carries shipments.
//
// Business rules:
//   - a driver starts pending with KYC not submitted
//   - a driver may authenticate while pending or approved
//   - a driver is eligible for assignment only when both the account status
//     and the KYC status are approved
//   - KYC approval requires every document to be verified
type Driver struct {
	id            kernel.UUID
	email         string
	passwordHash  string
	firstName     string
	lastName      string
	phone         string
	licenseNumber string
	vehicle       Vehicle

	status    DriverStatus
	kycStatus KYCStatus
	documents DocumentChecks
	kycNotes  string

	kycSubmittedAt *time.Time
	kycReviewedAt  *time.Time
	lastLoginAt    *time.Time
	createdAt      time.Time
	updatedAt      time.Time

	isConstructed bool
}

// NewDriver registers a driver awaiting review.
func NewDriver(p DriverParams, now time.Time) (*Driver, error) {
	d := &Driver{
		id:            kernel.NewUUID(),
		status:        DriverPending,
		kycStatus:     KYCNotSubmitted,
		createdAt:     now.UTC(),
		updatedAt:     now.UTC(),
		isConstructed: true,
	}
	if err := errors.Join(
		d.setEmail(p.Email),
		d.setPasswordHash(p.PasswordHash),
		d.setName(p.FirstName, p.LastName),
		d.setPhone(p.Phone),
		d.setLicense(p.LicenseNumber),
	); err != nil {
		return nil, err
	}
	d.vehicle = p.Vehicle
	return d, nil
}

// DriverRestoreParams is the persisted form of a driver.
type DriverRestoreParams struct {
	ID             kernel.UUID
	Email          string
	PasswordHash   string
	FirstName      string
	LastName       string
	Phone          string
	LicenseNumber  string
	Vehicle        Vehicle
	Status         DriverStatus
	KYCStatus      KYCStatus
	Documents      DocumentChecks
	KYCNotes       string
	KYCSubmittedAt *time.Time
	KYCReviewedAt  *time.Time
	LastLoginAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func RestoreDriver(p DriverRestoreParams) (*Driver, error) {
	if err := errors.Join(p.ID.Validate(), p.Status.Validate(), p.KYCStatus.Validate()); err != nil {
		return nil, err
	}
	return &Driver{
		id:             p.ID,
		email:          p.Email,
		passwordHash:   p.PasswordHash,
		firstName:      p.FirstName,
		lastName:       p.LastName,
		phone:          p.Phone,
		licenseNumber:  p.LicenseNumber,
		vehicle:        p.Vehicle,
		status:         p.Status,
		kycStatus:      p.KYCStatus,
		documents:      p.Documents,
		kycNotes:       p.KYCNotes,
		kycSubmittedAt: p.KYCSubmittedAt,
		kycReviewedAt:  p.KYCReviewedAt,
		lastLoginAt:    p.LastLoginAt,
		createdAt:      p.CreatedAt,
		updatedAt:      p.UpdatedAt,
		isConstructed:  true,
	}, nil
}

func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}
	return nil
}

func (d *Driver) ID() kernel.UUID            { return d.id }
func (d *Driver) Email() string              { return d.email }
func (d *Driver) PasswordHash() string       { return d.passwordHash }
func (d *Driver) FirstName() string          { return d.firstName }
func (d *Driver) LastName() string           { return d.lastName }
func (d *Driver) Phone() string              { return d.phone }
func (d *Driver) LicenseNumber() string      { return d.licenseNumber }
func (d *Driver) Vehicle() Vehicle           { return d.vehicle }
func (d *Driver) Status() DriverStatus       { return d.status }
func (d *Driver) KYCStatus() KYCStatus       { return d.kycStatus }
func (d *Driver) Documents() DocumentChecks  { return d.documents }
func (d *Driver) KYCNotes() string           { return d.kycNotes }
func (d *Driver) KYCSubmittedAt() *time.Time { return d.kycSubmittedAt }
func (d *Driver) KYCReviewedAt() *time.Time  { return d.kycReviewedAt }
func (d *Driver) LastLoginAt() *time.Time    { return d.lastLoginAt }
func (d *Driver) CreatedAt() time.Time       { return d.createdAt }
func (d *Driver) UpdatedAt() time.Time       { return d.updatedAt }

// FullName is used in assignment notes.
func (d *Driver) FullName() string {
	return strings.TrimSpace(d.firstName + " " + d.lastName)
}

// IsEligible reports whether the driver may be assigned to a shipment.
func (d *Driver) IsEligible() bool {
	return d.status == DriverApproved && d.kycStatus == KYCApproved
}

// CheckEligible returns an IneligibleDriverError naming both statuses.
func (d *Driver) CheckEligible() error {
	if d.IsEligible() {
		return nil
	}
	return errs.NewIneligibleDriverError(d.id.String(), string(d.status), string(d.kycStatus))
}

// CanAuthenticate reports whether the account status allows logging in.
func (d *Driver) CanAuthenticate() error {
	if d.status == DriverPending || d.status == DriverApproved {
		return nil
	}
	return errs.NewAccountInactiveError(string(d.status))
}

func (d *Driver) RecordLogin(now time.Time) {
	now = now.UTC()
	d.lastLoginAt = &now
	d.updatedAt = now
}

// VerifyDocument sets the verification flag of one document.
func (d *Driver) VerifyDocument(doc DriverDocument, verified bool, now time.Time) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	d.documents.set(doc, verified)
	d.updatedAt = now.UTC()
	return nil
}

// SubmitKYC moves KYC to pending review. A rejected submission may be
// resubmitted; an approved one may not.
func (d *Driver) SubmitKYC(now time.Time) error {
	if d.kycStatus == KYCApproved || d.kycStatus == KYCPending {
		return errs.NewInvalidStateError("kycStatus", string(d.kycStatus), string(KYCNotSubmitted)+" or "+string(KYCRejected))
	}
	now = now.UTC()
	d.kycStatus = KYCPending
	d.kycSubmittedAt = &now
	d.updatedAt = now
	return nil
}

// DecideKYC approves or rejects a pending submission. Approval requires all
// documents to be verified.
func (d *Driver) DecideKYC(approve bool, notes string, now time.Time) error {
	if d.kycStatus != KYCPending {
		return errs.NewInvalidStateError("kycStatus", string(d.kycStatus), string(KYCPending))
	}
	if approve && !d.documents.AllVerified() {
		return errs.NewInvalidStateError("documents", "partially verified", "all verified")
	}
	now = now.UTC()
	d.kycStatus = KYCRejected
	if approve {
		d.kycStatus = KYCApproved
	}
	d.kycNotes = strings.TrimSpace(notes)
	d.kycReviewedAt = &now
	d.updatedAt = now
	return nil
}

// SetStatus changes the account status. Drivers cannot be moved back to
// pending.
func (d *Driver) SetStatus(status DriverStatus, now time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if status == DriverPending {
		return errs.NewValueIsInvalidErrorWithCause("status", errors.New("a driver cannot be moved back to pending"))
	}
	d.status = status
	d.updatedAt = now.UTC()
	return nil
}

func (d *Driver) setEmail(email string) error {
	normalized, err := NormalizeEmail(email)
	if err != nil {
		return err
	}
	d.email = normalized
	return nil
}

func (d *Driver) setPasswordHash(hash string) error {
	if err := requireText("password", hash); err != nil {
		return err
	}
	d.passwordHash = hash
	return nil
}

func (d *Driver) setName(first, last string) error {
	if err := errors.Join(requireText("firstName", first), requireText("lastName", last)); err != nil {
		return err
	}
	d.firstName = strings.TrimSpace(first)
	d.lastName = strings.TrimSpace(last)
	return nil
}

func (d *Driver) setPhone(phone string) error {
	if err := requireText("phone", phone); err != nil {
		return err
	}
	d.phone = strings.TrimSpace(phone)
	return nil
}

func (d *Driver) setLicense(license string) error {
	if err := requireText("licenseNumber", license); err != nil {
		return err
	}
	d.licenseNumber = strings.TrimSpace(license)
	return nil
}
