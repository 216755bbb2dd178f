package http

import (
	"errors"
	"io"
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/generated/servers"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// TrackShipment handles GET /api/v1/track/{trackingNumber}. Public.
func (s *Server) TrackShipment(ctx echo.Context, trackingNumber string) error {
	query, err := queries.NewTrackShipmentQuery(trackingNumber)
	if err != nil {
		return s.fail(ctx, err)
	}

	snapshot, err := s.handlers.TrackShipment.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toAPITrackingSnapshot(snapshot))
}

// ListShipments handles GET /api/v1/shipments.
func (s *Server) ListShipments(ctx echo.Context, params servers.ListShipmentsParams) error {
	principal, err := mustPrincipal(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var filter queries.ShipmentFilter
	if params.Status != nil {
		status, parseErr := shipment.ParseStatus(string(*params.Status))
		if parseErr != nil {
			return s.fail(ctx, parseErr)
		}
		filter.Status = &status
	}
	var clientErr, driverErr error
	filter.ClientID, clientErr = fromAPIUUIDPtr(params.ClientId)
	filter.DriverID, driverErr = fromAPIUUIDPtr(params.DriverId)
	if err = errors.Join(clientErr, driverErr); err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListShipmentsQuery(principal, filter, deref(params.Limit), deref(params.Offset))
	if err != nil {
		return s.fail(ctx, err)
	}

	page, err := s.handlers.ListShipments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toAPIShipmentPage(page, query.Limit(), query.Offset()))
}

// CreateShipment handles POST /api/v1/shipments.
func (s *Server) CreateShipment(ctx echo.Context) error {
	principal, err := mustPrincipal(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.CreateShipmentJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	in := commands.CreateShipmentInput{
		PickupDate:          body.PickupDate,
		DeliveryDate:        body.DeliveryDate,
		ServiceType:         shipment.ServiceType(deref(body.ServiceType)),
		SpecialInstructions: deref(body.SpecialInstructions),
	}

	// A client always ships for itself; an admin names the client.
	if body.ClientId != nil {
		clientID, idErr := fromAPIUUID(*body.ClientId)
		if idErr != nil {
			return s.fail(ctx, idErr)
		}
		in.ClientID = clientID
	} else {
		in.ClientID = principal.ID
	}

	var itemsErr, pickupErr, deliveryErr error
	in.Items, itemsErr = fromAPIItems(body.Items)
	in.PickupAddress, pickupErr = fromAPIAddress(body.PickupAddress)
	in.DeliveryAddress, deliveryErr = fromAPIAddress(body.DeliveryAddress)
	if err = errors.Join(itemsErr, pickupErr, deliveryErr); err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateShipmentCommand(principal, in)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.handlers.CreateShipment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toAPIShipment(created))
}

// GetShipment handles GET /api/v1/shipments/{id}.
func (s *Server) GetShipment(ctx echo.Context, id openapi_types.UUID) error {
	principal, shipmentID, err := s.principalAndID(ctx, id)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetShipmentQuery(principal, shipmentID)
	if err != nil {
		return s.fail(ctx, err)
	}

	found, err := s.handlers.GetShipment.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toAPIShipment(found))
}

// TransitionShipment handles POST /api/v1/shipments/{id}/status.
func (s *Server) TransitionShipment(ctx echo.Context, id openapi_types.UUID) error {
	principal, shipmentID, err := s.principalAndID(ctx, id)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.TransitionShipmentJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	location, err := fromAPICoordinates(body.Latitude, body.Longitude)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewTransitionShipmentCommand(principal, shipmentID, string(body.Status), deref(body.Notes), location)
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.handlers.TransitionShipment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toAPIShipment(updated))
}

// AssignDriver handles POST /api/v1/shipments/{id}/assign.
func (s *Server) AssignDriver(ctx echo.Context, id openapi_types.UUID) error {
	principal, shipmentID, err := s.principalAndID(ctx, id)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.AssignDriverJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	driverID, err := fromAPIUUID(body.DriverId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAssignDriverCommand(principal, shipmentID, driverID)
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.handlers.AssignDriver.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toAPIShipment(updated))
}

// CancelShipment handles POST /api/v1/shipments/{id}/cancel.
func (s *Server) CancelShipment(ctx echo.Context, id openapi_types.UUID) error {
	principal, shipmentID, err := s.principalAndID(ctx, id)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.CancelShipmentJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCancelShipmentCommand(
		principal,
		shipmentID,
		shipment.CancellationReason(body.Reason),
		deref(body.Notes),
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.handlers.CancelShipment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toAPIShipment(updated))
}

// ReportShipmentIssue handles POST /api/v1/shipments/{id}/issues.
func (s *Server) ReportShipmentIssue(ctx echo.Context, id openapi_types.UUID) error {
	principal, shipmentID, err := s.principalAndID(ctx, id)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.ReportShipmentIssueJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewReportShipmentIssueCommand(
		principal,
		shipmentID,
		shipment.IssueType(body.Type),
		body.Description,
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	issue, err := s.handlers.ReportShipmentIssue.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toAPIIssue(issue))
}

// RateShipment handles POST /api/v1/shipments/{id}/rating.
func (s *Server) RateShipment(ctx echo.Context, id openapi_types.UUID) error {
	principal, shipmentID, err := s.principalAndID(ctx, id)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.RateShipmentJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRateShipmentCommand(principal, shipmentID, body.Score, deref(body.Comment))
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.handlers.RateShipment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toAPIShipment(updated))
}

// AttachShipmentDocument handles POST /api/v1/shipments/{id}/documents. The
// body is multipart/form-data with a kind field and a file part.
func (s *Server) AttachShipmentDocument(ctx echo.Context, id openapi_types.UUID) error {
	principal, shipmentID, err := s.principalAndID(ctx, id)
	if err != nil {
		return s.fail(ctx, err)
	}

	kind := shipment.DocumentKind(ctx.FormValue("kind"))
	header, err := ctx.FormFile("file")
	if err != nil {
		return badRequest(ctx, "file part is required")
	}
	if header.Size > s.maxUploadBytes {
		return s.fail(ctx, errs.NewValueIsOutOfRangeError("file", header.Size, 1, s.maxUploadBytes))
	}

	file, err := header.Open()
	if err != nil {
		return s.fail(ctx, err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, s.maxUploadBytes+1))
	if err != nil {
		return s.fail(ctx, err)
	}
	if int64(len(data)) > s.maxUploadBytes {
		return s.fail(ctx, errs.NewValueIsOutOfRangeError("file", int64(len(data)), 1, s.maxUploadBytes))
	}

	contentType := header.Header.Get(echo.HeaderContentType)
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	cmd, err := commands.NewAttachShipmentDocumentCommand(principal, shipmentID, kind, header.Filename, contentType, data)
	if err != nil {
		return s.fail(ctx, err)
	}

	doc, err := s.handlers.AttachShipmentDocument.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toAPIDocument(doc))
}

func (s *Server) principalAndID(ctx echo.Context, id openapi_types.UUID) (identity.Principal, kernel.UUID, error) {
	principal, err := mustPrincipal(ctx)
	if err != nil {
		return identity.Principal{}, kernel.UUID{}, err
	}
	aggregateID, err := fromAPIUUID(id)
	if err != nil {
		return identity.Principal{}, kernel.UUID{}, err
	}
	return principal, aggregateID, nil
}
