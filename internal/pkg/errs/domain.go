package errs

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidTransition   = errors.New("invalid transition")
	ErrInvalidState        = errors.New("invalid state")
	ErrIneligibleDriver    = errors.New("driver is not eligible")
	ErrDuplicatePayment    = errors.New("payment already exists")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrForbidden           = errors.New("forbidden")
	ErrUnauthenticated     = errors.New("unauthenticated")
	ErrAccountLocked       = errors.New("account is locked")
	ErrAccountInactive     = errors.New("account is inactive")
	ErrTransient           = errors.New("transient failure")
)

// InvalidTransitionError names the current and the requested status of a
// rejected state machine move.
type InvalidTransitionError struct {
	From string
	To   string
}

func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// InvalidStateError reports an aggregate whose state does not satisfy an
// operation precondition.
type InvalidStateError struct {
	ParamName string
	Current   string
	Expected  string
}

func NewInvalidStateError(paramName, current, expected string) *InvalidStateError {
	return &InvalidStateError{ParamName: paramName, Current: current, Expected: expected}
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: %s is %s, expected %s", ErrInvalidState, e.ParamName, e.Current, e.Expected)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

type IneligibleDriverError struct {
	DriverID  string
	Status    string
	KYCStatus string
}

func NewIneligibleDriverError(driverID, status, kycStatus string) *IneligibleDriverError {
	return &IneligibleDriverError{DriverID: driverID, Status: status, KYCStatus: kycStatus}
}

func (e *IneligibleDriverError) Error() string {
	return fmt.Sprintf("%s: %s (status: %s, kyc: %s)", ErrIneligibleDriver, e.DriverID, e.Status, e.KYCStatus)
}

func (e *IneligibleDriverError) Unwrap() error {
	return ErrIneligibleDriver
}

type DuplicatePaymentError struct {
	ShipmentID string
	Cause      error
}

func NewDuplicatePaymentError(shipmentID string) *DuplicatePaymentError {
	return &DuplicatePaymentError{ShipmentID: shipmentID}
}

func NewDuplicatePaymentErrorWithCause(shipmentID string, cause error) *DuplicatePaymentError {
	return &DuplicatePaymentError{ShipmentID: shipmentID, Cause: cause}
}

func (e *DuplicatePaymentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: shipment %s (cause: %v)", ErrDuplicatePayment, e.ShipmentID, e.Cause)
	}
	return fmt.Sprintf("%s: shipment %s", ErrDuplicatePayment, e.ShipmentID)
}

func (e *DuplicatePaymentError) Unwrap() error {
	return ErrDuplicatePayment
}

// InsufficientBalanceError carries amounts in minor currency units.
type InsufficientBalanceError struct {
	Requested int64
	Available int64
}

func NewInsufficientBalanceError(requested, available int64) *InsufficientBalanceError {
	return &InsufficientBalanceError{Requested: requested, Available: available}
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("%s: requested %d, available %d", ErrInsufficientBalance, e.Requested, e.Available)
}

func (e *InsufficientBalanceError) Unwrap() error {
	return ErrInsufficientBalance
}

type ForbiddenError struct {
	Module string
	Action string
}

func NewForbiddenError(module, action string) *ForbiddenError {
	return &ForbiddenError{Module: module, Action: action}
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("%s: %s on %s", ErrForbidden, e.Action, e.Module)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// UnauthenticatedError never names which part of the credential was wrong.
type UnauthenticatedError struct {
	Cause error
}

func NewUnauthenticatedError() *UnauthenticatedError {
	return &UnauthenticatedError{}
}

func NewUnauthenticatedErrorWithCause(cause error) *UnauthenticatedError {
	return &UnauthenticatedError{Cause: cause}
}

func (e *UnauthenticatedError) Error() string {
	return fmt.Sprintf("%s: invalid credentials", ErrUnauthenticated)
}

func (e *UnauthenticatedError) Unwrap() error {
	return ErrUnauthenticated
}

type AccountLockedError struct {
	Until time.Time
}

func NewAccountLockedError(until time.Time) *AccountLockedError {
	return &AccountLockedError{Until: until}
}

func (e *AccountLockedError) Error() string {
	return fmt.Sprintf("%s until %s", ErrAccountLocked, e.Until.UTC().Format(time.RFC3339))
}

func (e *AccountLockedError) Unwrap() error {
	return ErrAccountLocked
}

type AccountInactiveError struct {
	Status string
}

func NewAccountInactiveError(status string) *AccountInactiveError {
	return &AccountInactiveError{Status: status}
}

func (e *AccountInactiveError) Error() string {
	return fmt.Sprintf("%s: %s", ErrAccountInactive, e.Status)
}

func (e *AccountInactiveError) Unwrap() error {
	return ErrAccountInactive
}

// TransientError marks persistence failures that the caller may retry.
// Nothing is committed when one is returned.
type TransientError struct {
	Operation string
	Cause     error
}

func NewTransientError(operation string, cause error) *TransientError {
	return &TransientError{Operation: operation, Cause: cause}
}

func (e *TransientError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrTransient, e.Operation, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrTransient, e.Operation)
}

func (e *TransientError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrTransient}
	}
	return []error{ErrTransient, e.Cause}
}
