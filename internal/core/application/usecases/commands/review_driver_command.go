package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrReviewDriverCommandIsNotConstructed = errors.New(
	"ReviewDriverCommand must be created via one of the NewReviewDriver... constructors",
)

// DriverReviewStep names one step of the driver onboarding review.
type DriverReviewStep string

const (
	ReviewVerifyDocument DriverReviewStep = "verify_document"
	ReviewSubmitKYC      DriverReviewStep = "submit_kyc"
	ReviewDecideKYC      DriverReviewStep = "decide_kyc"
	ReviewSetStatus      DriverReviewStep = "set_status"
)

// ReviewDriverCommand is one step of the driver onboarding review.
//
// Steps and who may issue them:
//   - verify_document: admin with drivers:approve
//   - submit_kyc: the driver itself, or admin with drivers:update
//   - decide_kyc: admin with drivers:approve
//   - set_status: admin with drivers:update
type ReviewDriverCommand struct { //nolint:recvcheck //using for validation
	principal identity.Principal
	driverID  kernel.UUID
	step      DriverReviewStep

	document identity.DriverDocument
	verified bool
	approve  bool
	notes    string
	status   identity.DriverStatus

	guard guard.ConstructorGuard
}

func newReviewDriverCommand(principal identity.Principal, driverID kernel.UUID, step DriverReviewStep) (ReviewDriverCommand, error) {
	if err := errors.Join(validatePrincipal(principal), driverID.Validate()); err != nil {
		return ReviewDriverCommand{}, err
	}
	return ReviewDriverCommand{
		principal: principal,
		driverID:  driverID,
		step:      step,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func NewReviewDriverVerifyDocumentCommand(
	principal identity.Principal,
	driverID kernel.UUID,
	document identity.DriverDocument,
	verified bool,
) (ReviewDriverCommand, error) {
	cmd, err := newReviewDriverCommand(principal, driverID, ReviewVerifyDocument)
	if err = errors.Join(err, document.Validate()); err != nil {
		return ReviewDriverCommand{}, err
	}
	cmd.document = document
	cmd.verified = verified
	return cmd, nil
}

func NewReviewDriverSubmitKYCCommand(principal identity.Principal, driverID kernel.UUID) (ReviewDriverCommand, error) {
	return newReviewDriverCommand(principal, driverID, ReviewSubmitKYC)
}

func NewReviewDriverDecideKYCCommand(
	principal identity.Principal,
	driverID kernel.UUID,
	approve bool,
	notes string,
) (ReviewDriverCommand, error) {
	cmd, err := newReviewDriverCommand(principal, driverID, ReviewDecideKYC)
	if err != nil {
		return ReviewDriverCommand{}, err
	}
	cmd.approve = approve
	cmd.notes = strings.TrimSpace(notes)
	return cmd, nil
}

func NewReviewDriverSetStatusCommand(
	principal identity.Principal,
	driverID kernel.UUID,
	status identity.DriverStatus,
) (ReviewDriverCommand, error) {
	cmd, err := newReviewDriverCommand(principal, driverID, ReviewSetStatus)
	if err = errors.Join(err, status.Validate()); err != nil {
		return ReviewDriverCommand{}, err
	}
	cmd.status = status
	return cmd, nil
}

func (c ReviewDriverCommand) Validate() error {
	return c.guard.Validate(ErrReviewDriverCommandIsNotConstructed)
}

func (c ReviewDriverCommand) Principal() identity.Principal { return c.principal }
func (c ReviewDriverCommand) DriverID() kernel.UUID         { return c.driverID }
func (c ReviewDriverCommand) Step() DriverReviewStep        { return c.step }
func (c ReviewDriverCommand) ActivityTarget() string        { return c.driverID.String() }
