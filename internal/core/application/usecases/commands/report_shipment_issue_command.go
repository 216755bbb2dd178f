package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrReportShipmentIssueCommandIsNotConstructed = errors.New(
	"ReportShipmentIssueCommand must be created via NewReportShipmentIssueCommand constructor",
)

// ReportShipmentIssueCommand appends a problem report. It never changes the
// shipment status.
type ReportShipmentIssueCommand struct { //nolint:recvcheck //using for validation
	principal   identity.Principal
	shipmentID  kernel.UUID
	issueType   shipment.IssueType
	description string

	guard guard.ConstructorGuard
}

func NewReportShipmentIssueCommand(
	principal identity.Principal,
	shipmentID kernel.UUID,
	issueType shipment.IssueType,
	description string,
) (ReportShipmentIssueCommand, error) {
	cmd := ReportShipmentIssueCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setPrincipal(principal),
		cmd.setShipmentID(shipmentID),
		cmd.setIssueType(issueType),
		cmd.setDescription(description),
	); err != nil {
		return ReportShipmentIssueCommand{}, err
	}

	return cmd, nil
}

func (c ReportShipmentIssueCommand) Validate() error {
	return c.guard.Validate(ErrReportShipmentIssueCommandIsNotConstructed)
}

func (c ReportShipmentIssueCommand) Principal() identity.Principal { return c.principal }
func (c ReportShipmentIssueCommand) ShipmentID() kernel.UUID       { return c.shipmentID }
func (c ReportShipmentIssueCommand) IssueType() shipment.IssueType { return c.issueType }
func (c ReportShipmentIssueCommand) Description() string           { return c.description }
func (c ReportShipmentIssueCommand) ActivityTarget() string        { return c.shipmentID.String() }

func (c *ReportShipmentIssueCommand) setPrincipal(p identity.Principal) error {
	if err := validatePrincipal(p); err != nil {
		return err
	}
	c.principal = p
	return nil
}

func (c *ReportShipmentIssueCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shipmentID = id
	return nil
}

func (c *ReportShipmentIssueCommand) setIssueType(t shipment.IssueType) error {
	if err := t.Validate(); err != nil {
		return err
	}
	c.issueType = t
	return nil
}

func (c *ReportShipmentIssueCommand) setDescription(description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	c.description = description
	return nil
}
