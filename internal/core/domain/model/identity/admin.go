package identity

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

const (
	// MaxLoginAttempts consecutive failures lock the account.
	MaxLoginAttempts = 5
	LockDuration     = 30 * time.Minute

	MaxActiveSessions  = 5
	MaxActivityEntries = 1000
)

var ErrAdminIsNotConstructed = errors.New("Admin must be created via NewAdmin constructor")

type AdminRole string

const (
	RoleSuperAdmin AdminRole = "super_admin"
	RoleAdmin      AdminRole = "admin"
	RoleManager    AdminRole = "manager"
	RoleSupport    AdminRole = "support"
)

func (r AdminRole) Validate() error {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleManager, RoleSupport:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid admin role", string(r)))
}

type AdminStatus string

const (
	AdminActive    AdminStatus = "active"
	AdminInactive  AdminStatus = "inactive"
	AdminSuspended AdminStatus = "suspended"
)

func (s AdminStatus) Validate() error {
	switch s {
	case AdminActive, AdminInactive, AdminSuspended:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid admin status", string(s)))
}

// AdminParams is the input of NewAdmin. A nil Permissions pointer means the
// role defaults.
type AdminParams struct {
	Email        string
	PasswordHash string
	Name         string
	Role         AdminRole
	Permissions  *Permissions
}

// Admin is a back-office principal.
//
// The login counter, the session list and the activity log live on the
// aggregate:
//   - MaxLoginAttempts consecutive failures lock the account for LockDuration
//   - at most MaxActiveSessions sessions are kept, the oldest is evicted
//   - at most MaxActivityEntries activity entries are kept, the oldest is evicted
type Admin struct {
	id           kernel.UUID
	email        string
	passwordHash string
	name         string
	role         AdminRole
	permissions  Permissions
	status       AdminStatus

	loginAttempts int
	lockedUntil   *time.Time
	lastLoginAt   *time.Time

	sessions    kernel.OrderedLog[Session]
	activityLog kernel.OrderedLog[ActivityEntry]

	createdAt time.Time
	updatedAt time.Time
	version   int64

	isConstructed bool
}

func NewAdmin(p AdminParams, now time.Time) (*Admin, error) {
	email, emailErr := NormalizeEmail(p.Email)
	if err := errors.Join(
		emailErr,
		requireText("password", p.PasswordHash),
		requireText("name", p.Name),
		p.Role.Validate(),
	); err != nil {
		return nil, err
	}

	perms := DefaultRolePermissions(p.Role)
	if p.Permissions != nil {
		perms = *p.Permissions
	}

	return &Admin{
		id:            kernel.NewUUID(),
		email:         email,
		passwordHash:  p.PasswordHash,
		name:          strings.TrimSpace(p.Name),
		role:          p.Role,
		permissions:   perms,
		status:        AdminActive,
		sessions:      kernel.NewOrderedLog[Session](MaxActiveSessions),
		activityLog:   kernel.NewOrderedLog[ActivityEntry](MaxActivityEntries),
		createdAt:     now.UTC(),
		updatedAt:     now.UTC(),
		isConstructed: true,
	}, nil
}

type AdminRestoreParams struct {
	ID            kernel.UUID
	Email         string
	PasswordHash  string
	Name          string
	Role          AdminRole
	Permissions   Permissions
	Status        AdminStatus
	LoginAttempts int
	LockedUntil   *time.Time
	LastLoginAt   *time.Time
	Sessions      []Session
	ActivityLog   []ActivityEntry
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Version       int64
}

func RestoreAdmin(p AdminRestoreParams) (*Admin, error) {
	if err := errors.Join(p.ID.Validate(), p.Role.Validate(), p.Status.Validate()); err != nil {
		return nil, err
	}
	return &Admin{
		id:            p.ID,
		email:         p.Email,
		passwordHash:  p.PasswordHash,
		name:          p.Name,
		role:          p.Role,
		permissions:   p.Permissions,
		status:        p.Status,
		loginAttempts: p.LoginAttempts,
		lockedUntil:   p.LockedUntil,
		lastLoginAt:   p.LastLoginAt,
		sessions:      kernel.RestoreOrderedLog(p.Sessions, MaxActiveSessions),
		activityLog:   kernel.RestoreOrderedLog(p.ActivityLog, MaxActivityEntries),
		createdAt:     p.CreatedAt,
		updatedAt:     p.UpdatedAt,
		version:       p.Version,
		isConstructed: true,
	}, nil
}

func (a *Admin) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAdminIsNotConstructed
	}
	return nil
}

func (a *Admin) ID() kernel.UUID              { return a.id }
func (a *Admin) Email() string                { return a.email }
func (a *Admin) PasswordHash() string         { return a.passwordHash }
func (a *Admin) Name() string                 { return a.name }
func (a *Admin) Role() AdminRole              { return a.role }
func (a *Admin) Permissions() Permissions     { return a.permissions }
func (a *Admin) Status() AdminStatus          { return a.status }
func (a *Admin) LoginAttempts() int           { return a.loginAttempts }
func (a *Admin) LockedUntil() *time.Time      { return a.lockedUntil }
func (a *Admin) LastLoginAt() *time.Time      { return a.lastLoginAt }
func (a *Admin) Sessions() []Session          { return a.sessions.Entries() }
func (a *Admin) ActivityLog() []ActivityEntry { return a.activityLog.Entries() }
func (a *Admin) CreatedAt() time.Time         { return a.createdAt }
func (a *Admin) UpdatedAt() time.Time         { return a.updatedAt }
func (a *Admin) Version() int64               { return a.version }
func (a *Admin) IncrementVersion()            { a.version++ }

// IsLocked reports whether a lock is in force at now.
func (a *Admin) IsLocked(now time.Time) bool {
	return a.lockedUntil != nil && now.Before(*a.lockedUntil)
}

// Login applies one login attempt whose password check already happened.
//
// Order of checks:
//  1. an active lock fails with AccountLockedError, even for a correct password
//  2. a wrong password increments the counter, locks the account on the
//     MaxLoginAttempts-th consecutive failure and fails with UnauthenticatedError
//  3. a non-active status fails with AccountInactiveError
//  4. success resets the counter and appends the session
//
// The aggregate is mutated on failure too; callers must persist it.
func (a *Admin) Login(passwordOK bool, session Session, now time.Time) error {
	now = now.UTC()
	if a.IsLocked(now) {
		return errs.NewAccountLockedError(*a.lockedUntil)
	}
	if a.lockedUntil != nil {
		a.lockedUntil = nil
		a.loginAttempts = 0
	}

	if !passwordOK {
		a.loginAttempts++
		if a.loginAttempts >= MaxLoginAttempts {
			until := now.Add(LockDuration)
			a.lockedUntil = &until
		}
		a.updatedAt = now
		return errs.NewUnauthenticatedError()
	}

	if a.status != AdminActive {
		return errs.NewAccountInactiveError(string(a.status))
	}

	a.loginAttempts = 0
	a.lastLoginAt = &now
	a.sessions.Append(session)
	a.updatedAt = now
	return nil
}

// HasSession reports whether the session is still active.
func (a *Admin) HasSession(sessionID string, now time.Time) bool {
	for s := range a.sessions.All() {
		if s.ID == sessionID {
			return now.Before(s.ExpiresAt)
		}
	}
	return false
}

// RevokeSession drops one session. It reports whether it existed.
func (a *Admin) RevokeSession(sessionID string, now time.Time) bool {
	return a.keepSessions(func(s Session) bool { return s.ID != sessionID }, now) > 0
}

// PruneSessions drops sessions expired at now and returns how many were removed.
func (a *Admin) PruneSessions(now time.Time) int {
	return a.keepSessions(func(s Session) bool { return now.Before(s.ExpiresAt) }, now)
}

// RecordActivity appends one entry to the capped activity log.
func (a *Admin) RecordActivity(entry ActivityEntry) {
	entry.At = entry.At.UTC()
	a.activityLog.Append(entry)
}

func (a *Admin) SetStatus(status AdminStatus, now time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}
	a.status = status
	if status != AdminActive {
		a.sessions = kernel.NewOrderedLog[Session](MaxActiveSessions)
	}
	a.updatedAt = now.UTC()
	return nil
}

func (a *Admin) SetPermissions(role AdminRole, permissions Permissions, now time.Time) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	a.permissions = permissions
	a.updatedAt = now.UTC()
	return nil
}

// Unlock clears a lock and the failure counter.
func (a *Admin) Unlock(now time.Time) {
	a.lockedUntil = nil
	a.loginAttempts = 0
	a.updatedAt = now.UTC()
}

func (a *Admin) keepSessions(keep func(Session) bool, now time.Time) int {
	kept := a.sessions.Filter(keep)
	removed := a.sessions.Len() - len(kept)
	if removed > 0 {
		a.sessions = kernel.RestoreOrderedLog(kept, MaxActiveSessions)
		a.updatedAt = now.UTC()
	}
	return removed
}
