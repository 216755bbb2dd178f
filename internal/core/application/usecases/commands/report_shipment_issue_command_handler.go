package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
)

type ReportShipmentIssueCommandHandler struct {
	uowFactory ShipmentUoWFactory
	gateway    services.AccessGateway
}

func NewReportShipmentIssueCommandHandler(uowFactory ShipmentUoWFactory) ReportShipmentIssueCommandHandler {
	return ReportShipmentIssueCommandHandler{
		uowFactory: uowFactory,
		gateway:    services.NewAccessGateway(),
	}
}

// Handle returns the appended issue.
func (h ReportShipmentIssueCommandHandler) Handle(ctx context.Context, cmd ReportShipmentIssueCommand) (shipment.Issue, error) {
	if err := cmd.Validate(); err != nil {
		return shipment.Issue{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return shipment.Issue{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ShipmentRepository()
	s, err := repo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return shipment.Issue{}, err
	}

	if err = h.gateway.CanReportIssue(cmd.Principal(), s); err != nil {
		return shipment.Issue{}, err
	}

	issue, err := s.ReportIssue(cmd.IssueType(), cmd.Description(), cmd.Principal().Actor(), time.Now())
	if err != nil {
		return shipment.Issue{}, err
	}

	if err = repo.Update(ctx, s); err != nil {
		return shipment.Issue{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return shipment.Issue{}, err
	}

	return issue, nil
}
