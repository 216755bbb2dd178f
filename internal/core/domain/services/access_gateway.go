package services

import (
	"slices"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/payment"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
)

// AccessGateway answers whether a principal may perform an action.
//
// Super admins are always allowed. Other admins are checked against their
// permission map; drivers and clients against fixed implied permissions.
// Ownership rules on top of that:
//   - a client acts only on its own shipments and payments
//   - a driver acts only on shipments assigned to it
//   - clients never transition shipment status directly
type AccessGateway struct{}

func NewAccessGateway() AccessGateway {
	return AccessGateway{}
}

func (AccessGateway) Authorize(p identity.Principal, module identity.Module, action identity.Action) bool {
	if p.IsSuperAdmin() {
		return true
	}
	if p.IsAdmin() {
		return p.Permissions.Permits(module, action)
	}
	return identity.ImpliedPermissions(p.Type).Permits(module, action)
}

// Require is Authorize returning a ForbiddenError.
func (g AccessGateway) Require(p identity.Principal, module identity.Module, action identity.Action) error {
	if g.Authorize(p, module, action) {
		return nil
	}
	return errs.NewForbiddenError(string(module), string(action))
}

// RequireType restricts a route to the listed principal types.
func (AccessGateway) RequireType(p identity.Principal, types ...identity.PrincipalType) error {
	if slices.Contains(types, p.Type) {
		return nil
	}
	return errs.NewForbiddenError("principal", string(p.Type))
}

func (g AccessGateway) CanViewShipment(p identity.Principal, s *shipment.Shipment) error {
	switch p.Type {
	case identity.PrincipalClient:
		if !s.IsOwnedBy(p.ID) {
			return errs.NewForbiddenError(string(identity.ModuleShipments), string(identity.ActionRead))
		}
	case identity.PrincipalDriver:
		if !s.IsAssignedTo(p.ID) {
			return errs.NewForbiddenError(string(identity.ModuleShipments), string(identity.ActionRead))
		}
	}
	return g.Require(p, identity.ModuleShipments, identity.ActionRead)
}

// CanTransitionShipment allows the assigned driver and admins with
// shipments:update.
func (g AccessGateway) CanTransitionShipment(p identity.Principal, s *shipment.Shipment) error {
	switch p.Type {
	case identity.PrincipalDriver:
		if !s.IsAssignedTo(p.ID) {
			return errs.NewForbiddenError(string(identity.ModuleShipments), string(identity.ActionUpdate))
		}
	case identity.PrincipalAdmin:
	default:
		return errs.NewForbiddenError(string(identity.ModuleShipments), string(identity.ActionUpdate))
	}
	return g.Require(p, identity.ModuleShipments, identity.ActionUpdate)
}

// CanCancelShipment allows the owning client and admins with shipments:update.
func (g AccessGateway) CanCancelShipment(p identity.Principal, s *shipment.Shipment) error {
	switch p.Type {
	case identity.PrincipalClient:
		if !s.IsOwnedBy(p.ID) {
			return errs.NewForbiddenError(string(identity.ModuleShipments), string(identity.ActionUpdate))
		}
	case identity.PrincipalAdmin:
	default:
		return errs.NewForbiddenError(string(identity.ModuleShipments), string(identity.ActionUpdate))
	}
	return g.Require(p, identity.ModuleShipments, identity.ActionUpdate)
}

// CanReportIssue allows everyone who can view the shipment.
func (g AccessGateway) CanReportIssue(p identity.Principal, s *shipment.Shipment) error {
	return g.CanViewShipment(p, s)
}

func (g AccessGateway) CanViewPayment(p identity.Principal, pay *payment.Payment) error {
	switch p.Type {
	case identity.PrincipalClient:
		if !pay.IsOwnedBy(p.ID) {
			return errs.NewForbiddenError(string(identity.ModulePayments), string(identity.ActionRead))
		}
	case identity.PrincipalAdmin:
	default:
		return errs.NewForbiddenError(string(identity.ModulePayments), string(identity.ActionRead))
	}
	return g.Require(p, identity.ModulePayments, identity.ActionRead)
}
