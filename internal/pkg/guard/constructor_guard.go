// Package guard detects value objects, entities and commands that bypassed
// their constructor and are being used as Go zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate on a zero-value guard
// when the caller supplies no error of its own.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded as a private field and set only by
// NewConstructorGuard, so a struct literal or `var x T` leaves it unset.
//
//	type RateShipmentCommand struct {
//	    score int
//	    guard guard.ConstructorGuard
//	}
//
//	func (c RateShipmentCommand) Validate() error {
//	    return c.guard.Validate(ErrRateShipmentCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is
// nil) if the guard was never constructed.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
