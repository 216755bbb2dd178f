package identity

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/payment"
	"logistics/internal/pkg/errs"
)

var ErrClientIsNotConstructed = errors.New("Client must be created via NewClient constructor")

type ClientStatus string

const (
	ClientActive    ClientStatus = "active"
	ClientInactive  ClientStatus = "inactive"
	ClientSuspended ClientStatus = "suspended"
)

func (s ClientStatus) Validate() error {
	switch s {
	case ClientActive, ClientInactive, ClientSuspended:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid client status", string(s)))
}

type ClientParams struct {
	Email        string
	PasswordHash string
	CompanyName  string
	ContactName  string
	Phone        string
	BillingTerms payment.Terms
}

// Client is a shipper. Billing terms, when set, are the default terms of its
// payments.
type Client struct {
	id           kernel.UUID
	email        string
	passwordHash string
	companyName  string
	contactName  string
	phone        string
	billingTerms payment.Terms
	status       ClientStatus
	lastLoginAt  *time.Time
	createdAt    time.Time
	updatedAt    time.Time

	isConstructed bool
}

func NewClient(p ClientParams, now time.Time) (*Client, error) {
	email, emailErr := NormalizeEmail(p.Email)
	var termsErr error
	if p.BillingTerms != "" {
		termsErr = p.BillingTerms.Validate()
	}
	if err := errors.Join(
		emailErr,
		requireText("password", p.PasswordHash),
		requireText("contactName", p.ContactName),
		requireText("phone", p.Phone),
		termsErr,
	); err != nil {
		return nil, err
	}

	return &Client{
		id:            kernel.NewUUID(),
		email:         email,
		passwordHash:  p.PasswordHash,
		companyName:   strings.TrimSpace(p.CompanyName),
		contactName:   strings.TrimSpace(p.ContactName),
		phone:         strings.TrimSpace(p.Phone),
		billingTerms:  p.BillingTerms,
		status:        ClientActive,
		createdAt:     now.UTC(),
		updatedAt:     now.UTC(),
		isConstructed: true,
	}, nil
}

type ClientRestoreParams struct {
	ID           kernel.UUID
	Email        string
	PasswordHash string
	CompanyName  string
	ContactName  string
	Phone        string
	BillingTerms payment.Terms
	Status       ClientStatus
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func RestoreClient(p ClientRestoreParams) (*Client, error) {
	if err := errors.Join(p.ID.Validate(), p.Status.Validate()); err != nil {
		return nil, err
	}
	return &Client{
		id:            p.ID,
		email:         p.Email,
		passwordHash:  p.PasswordHash,
		companyName:   p.CompanyName,
		contactName:   p.ContactName,
		phone:         p.Phone,
		billingTerms:  p.BillingTerms,
		status:        p.Status,
		lastLoginAt:   p.LastLoginAt,
		createdAt:     p.CreatedAt,
		updatedAt:     p.UpdatedAt,
		isConstructed: true,
	}, nil
}

func (c *Client) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrClientIsNotConstructed
	}
	return nil
}

func (c *Client) ID() kernel.UUID             { return c.id }
func (c *Client) Email() string               { return c.email }
func (c *Client) PasswordHash() string        { return c.passwordHash }
func (c *Client) CompanyName() string         { return c.companyName }
func (c *Client) ContactName() string         { return c.contactName }
func (c *Client) Phone() string               { return c.phone }
func (c *Client) BillingTerms() payment.Terms { return c.billingTerms }
func (c *Client) Status() ClientStatus        { return c.status }
func (c *Client) LastLoginAt() *time.Time     { return c.lastLoginAt }
func (c *Client) CreatedAt() time.Time        { return c.createdAt }
func (c *Client) UpdatedAt() time.Time        { return c.updatedAt }

// CanAuthenticate allows active clients only.
func (c *Client) CanAuthenticate() error {
	if c.status == ClientActive {
		return nil
	}
	return errs.NewAccountInactiveError(string(c.status))
}

func (c *Client) RecordLogin(now time.Time) {
	now = now.UTC()
	c.lastLoginAt = &now
	c.updatedAt = now
}

func (c *Client) SetStatus(status ClientStatus, now time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	c.updatedAt = now.UTC()
	return nil
}

// SetBillingTerms changes the default terms; an empty value clears them.
func (c *Client) SetBillingTerms(terms payment.Terms, now time.Time) error {
	if terms != "" {
		if err := terms.Validate(); err != nil {
			return err
		}
	}
	c.billingTerms = terms
	c.updatedAt = now.UTC()
	return nil
}
