// Package identityrepo persists drivers, clients and admins, one table per
// principal type. E-mail addresses are unique within each table.
package identityrepo

import (
	"errors"
	"time"

	"logistics/internal/adapters/out/postgres/columns"
	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

const (
	driverEmailIndex = "idx_drivers_email"
	clientEmailIndex = "idx_clients_email"
	adminEmailIndex  = "idx_admins_email"
)

type DriverDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email          string    `gorm:"uniqueIndex:idx_drivers_email;not null"`
	PasswordHash   string    `gorm:"not null"`
	FirstName      string
	LastName       string
	Phone          string
	LicenseNumber  string
	Vehicle        VehicleDTO   `gorm:"embedded;embeddedPrefix:vehicle_"`
	Status         string       `gorm:"index;not null"`
	KYCStatus      string       `gorm:"column:kyc_status;index;not null"`
	Documents      DocumentsDTO `gorm:"embedded;embeddedPrefix:doc_"`
	KYCNotes       string       `gorm:"column:kyc_notes"`
	KYCSubmittedAt *time.Time   `gorm:"column:kyc_submitted_at"`
	KYCReviewedAt  *time.Time   `gorm:"column:kyc_reviewed_at"`
	LastLoginAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (DriverDTO) TableName() string {
	return "drivers"
}

type VehicleDTO struct {
	Type        string
	PlateNumber string
	CapacityKg  float64
}

type DocumentsDTO struct {
	License             bool
	VehicleRegistration bool
	Insurance           bool
	IdentityProof       bool
}

type ClientDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"uniqueIndex:idx_clients_email;not null"`
	PasswordHash string    `gorm:"not null"`
	CompanyName  string
	ContactName  string
	Phone        string
	BillingTerms string
	Status       string `gorm:"index;not null"`
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (ClientDTO) TableName() string {
	return "clients"
}

type AdminDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email         string    `gorm:"uniqueIndex:idx_admins_email;not null"`
	PasswordHash  string    `gorm:"not null"`
	Name          string
	Role          string              `gorm:"not null"`
	Permissions   map[string][]string `gorm:"type:jsonb;serializer:json"`
	Status        string              `gorm:"index;not null"`
	LoginAttempts int
	LockedUntil   *time.Time
	LastLoginAt   *time.Time
	Sessions      []SessionDTO       `gorm:"type:jsonb;serializer:json"`
	ActivityLog   []ActivityEntryDTO `gorm:"type:jsonb;serializer:json"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Version       int64 `gorm:"not null;default:0"`
}

func (AdminDTO) TableName() string {
	return "admins"
}

type SessionDTO struct {
	ID        string    `json:"id"`
	IPAddress string    `json:"ipAddress,omitempty"`
	UserAgent string    `json:"userAgent,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type ActivityEntryDTO struct {
	Operation string    `json:"operation"`
	Module    string    `json:"module"`
	TargetID  string    `json:"targetId,omitempty"`
	Outcome   string    `json:"outcome"`
	Detail    string    `json:"detail,omitempty"`
	At        time.Time `json:"at"`
}

func driverFromDomain(d *identity.Driver) DriverDTO {
	v := d.Vehicle()
	docs := d.Documents()
	return DriverDTO{
		ID:            d.ID().Bytes(),
		Email:         d.Email(),
		PasswordHash:  d.PasswordHash(),
		FirstName:     d.FirstName(),
		LastName:      d.LastName(),
		Phone:         d.Phone(),
		LicenseNumber: d.LicenseNumber(),
		Vehicle:       VehicleDTO{Type: v.Type, PlateNumber: v.PlateNumber, CapacityKg: v.CapacityKg},
		Status:        string(d.Status()),
		KYCStatus:     string(d.KYCStatus()),
		Documents: DocumentsDTO{
			License:             docs.License,
			VehicleRegistration: docs.VehicleRegistration,
			Insurance:           docs.Insurance,
			IdentityProof:       docs.IdentityProof,
		},
		KYCNotes:       d.KYCNotes(),
		KYCSubmittedAt: d.KYCSubmittedAt(),
		KYCReviewedAt:  d.KYCReviewedAt(),
		LastLoginAt:    d.LastLoginAt(),
		CreatedAt:      d.CreatedAt(),
		UpdatedAt:      d.UpdatedAt(),
	}
}

func driverToDomain(dto DriverDTO) (*identity.Driver, error) {
	id, err := columns.KernelUUID(dto.ID)
	if err != nil {
		return nil, err
	}
	return identity.RestoreDriver(identity.DriverRestoreParams{
		ID:            id,
		Email:         dto.Email,
		PasswordHash:  dto.PasswordHash,
		FirstName:     dto.FirstName,
		LastName:      dto.LastName,
		Phone:         dto.Phone,
		LicenseNumber: dto.LicenseNumber,
		Vehicle: identity.Vehicle{
			Type:        dto.Vehicle.Type,
			PlateNumber: dto.Vehicle.PlateNumber,
			CapacityKg:  dto.Vehicle.CapacityKg,
		},
		Status:    identity.DriverStatus(dto.Status),
		KYCStatus: identity.KYCStatus(dto.KYCStatus),
		Documents: identity.DocumentChecks{
			License:             dto.Documents.License,
			VehicleRegistration: dto.Documents.VehicleRegistration,
			Insurance:           dto.Documents.Insurance,
			IdentityProof:       dto.Documents.IdentityProof,
		},
		KYCNotes:       dto.KYCNotes,
		KYCSubmittedAt: dto.KYCSubmittedAt,
		KYCReviewedAt:  dto.KYCReviewedAt,
		LastLoginAt:    dto.LastLoginAt,
		CreatedAt:      dto.CreatedAt,
		UpdatedAt:      dto.UpdatedAt,
	})
}

func clientFromDomain(c *identity.Client) ClientDTO {
	return ClientDTO{
		ID:           c.ID().Bytes(),
		Email:        c.Email(),
		PasswordHash: c.PasswordHash(),
		CompanyName:  c.CompanyName(),
		ContactName:  c.ContactName(),
		Phone:        c.Phone(),
		BillingTerms: string(c.BillingTerms()),
		Status:       string(c.Status()),
		LastLoginAt:  c.LastLoginAt(),
		CreatedAt:    c.CreatedAt(),
		UpdatedAt:    c.UpdatedAt(),
	}
}

func clientToDomain(dto ClientDTO) (*identity.Client, error) {
	id, err := columns.KernelUUID(dto.ID)
	if err != nil {
		return nil, err
	}
	return identity.RestoreClient(identity.ClientRestoreParams{
		ID:           id,
		Email:        dto.Email,
		PasswordHash: dto.PasswordHash,
		CompanyName:  dto.CompanyName,
		ContactName:  dto.ContactName,
		Phone:        dto.Phone,
		BillingTerms: payment.Terms(dto.BillingTerms),
		Status:       identity.ClientStatus(dto.Status),
		LastLoginAt:  dto.LastLoginAt,
		CreatedAt:    dto.CreatedAt,
		UpdatedAt:    dto.UpdatedAt,
	})
}

func adminFromDomain(a *identity.Admin) AdminDTO {
	sessions := make([]SessionDTO, 0, len(a.Sessions()))
	for _, s := range a.Sessions() {
		sessions = append(sessions, SessionDTO(s))
	}
	log := make([]ActivityEntryDTO, 0, len(a.ActivityLog()))
	for _, e := range a.ActivityLog() {
		log = append(log, ActivityEntryDTO{
			Operation: e.Operation,
			Module:    string(e.Module),
			TargetID:  e.TargetID,
			Outcome:   string(e.Outcome),
			Detail:    e.Detail,
			At:        e.At,
		})
	}

	return AdminDTO{
		ID:            a.ID().Bytes(),
		Email:         a.Email(),
		PasswordHash:  a.PasswordHash(),
		Name:          a.Name(),
		Role:          string(a.Role()),
		Permissions:   a.Permissions().Map(),
		Status:        string(a.Status()),
		LoginAttempts: a.LoginAttempts(),
		LockedUntil:   a.LockedUntil(),
		LastLoginAt:   a.LastLoginAt(),
		Sessions:      sessions,
		ActivityLog:   log,
		CreatedAt:     a.CreatedAt(),
		UpdatedAt:     a.UpdatedAt(),
		Version:       a.Version(),
	}
}

func adminToDomain(dto AdminDTO) (*identity.Admin, error) {
	id, idErr := columns.KernelUUID(dto.ID)
	perms, permErr := identity.ParsePermissions(dto.Permissions)
	if err := errors.Join(idErr, permErr); err != nil {
		return nil, err
	}

	sessions := make([]identity.Session, 0, len(dto.Sessions))
	for _, s := range dto.Sessions {
		sessions = append(sessions, identity.Session(s))
	}
	log := make([]identity.ActivityEntry, 0, len(dto.ActivityLog))
	for _, e := range dto.ActivityLog {
		log = append(log, identity.ActivityEntry{
			Operation: e.Operation,
			Module:    identity.Module(e.Module),
			TargetID:  e.TargetID,
			Outcome:   identity.ActivityOutcome(e.Outcome),
			Detail:    e.Detail,
			At:        e.At,
		})
	}

	return identity.RestoreAdmin(identity.AdminRestoreParams{
		ID:            id,
		Email:         dto.Email,
		PasswordHash:  dto.PasswordHash,
		Name:          dto.Name,
		Role:          identity.AdminRole(dto.Role),
		Permissions:   perms,
		Status:        identity.AdminStatus(dto.Status),
		LoginAttempts: dto.LoginAttempts,
		LockedUntil:   dto.LockedUntil,
		LastLoginAt:   dto.LastLoginAt,
		Sessions:      sessions,
		ActivityLog:   log,
		CreatedAt:     dto.CreatedAt,
		UpdatedAt:     dto.UpdatedAt,
		Version:       dto.Version,
	})
}
