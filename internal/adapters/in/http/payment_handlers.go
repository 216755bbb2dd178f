package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/payment"
	"logistics/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// CreatePayment handles POST /api/v1/payments.
func (s *Server) CreatePayment(ctx echo.Context) error {
	principal, err := mustPrincipal(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.CreatePaymentJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	shipmentID, err := fromAPIUUID(body.ShipmentId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreatePaymentCommand(principal, commands.CreatePaymentInput{
		ShipmentID: shipmentID,
		Amount: payment.AmountParams{
			Subtotal: body.Amount.Subtotal,
			Tax:      deref(body.Amount.Tax),
			Discount: deref(body.Amount.Discount),
			Total:    body.Amount.Total,
			Currency: body.Amount.Currency,
		},
		Charges: fromAPICharges(body.Charges),
		Method:  payment.Method(body.Method),
		Terms:   payment.Terms(deref(body.Terms)),
		DueDate: body.DueDate,
		Notes:   deref(body.Notes),
	})
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.handlers.CreatePayment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toAPIPayment(created))
}

// ListOverduePayments handles GET /api/v1/payments/overdue. The query itself
// is unscoped, so only admins with payment read access get here.
func (s *Server) ListOverduePayments(ctx echo.Context) error {
	principal, err := mustPrincipal(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.gateway.RequireType(principal, identity.PrincipalAdmin); err != nil {
		return s.fail(ctx, err)
	}
	if err = s.gateway.Require(principal, identity.ModulePayments, identity.ActionRead); err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListOverduePaymentsQuery(s.now())
	if err != nil {
		return s.fail(ctx, err)
	}

	overdue, err := s.handlers.ListOverduePayments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.OverduePayment, len(overdue))
	for i, o := range overdue {
		response[i] = toAPIOverdue(o)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetPayment handles GET /api/v1/payments/{id}.
func (s *Server) GetPayment(ctx echo.Context, id openapi_types.UUID) error {
	principal, paymentID, err := s.principalAndID(ctx, id)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetPaymentQuery(principal, paymentID)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.getPayment(ctx, query)
}

// GetShipmentPayment handles GET /api/v1/shipments/{id}/payment.
func (s *Server) GetShipmentPayment(ctx echo.Context, id openapi_types.UUID) error {
	principal, shipmentID, err := s.principalAndID(ctx, id)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetPaymentByShipmentQuery(principal, shipmentID)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.getPayment(ctx, query)
}

func (s *Server) getPayment(ctx echo.Context, query queries.GetPaymentQuery) error {
	found, err := s.handlers.GetPayment.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := toAPIPayment(found.Payment)
	response.TotalRefunded = toAPIMoney(found.TotalRefunded)
	response.RemainingBalance = toAPIMoney(found.RemainingBalance)
	return ctx.JSON(http.StatusOK, response)
}

// UpdatePaymentStatus handles POST /api/v1/payments/{id}/status.
func (s *Server) UpdatePaymentStatus(ctx echo.Context, id openapi_types.UUID) error {
	principal, paymentID, err := s.principalAndID(ctx, id)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.UpdatePaymentStatusJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdatePaymentStatusCommand(principal, paymentID, string(body.Status), deref(body.Notes))
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.handlers.UpdatePaymentStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toAPIPayment(updated))
}

// AddRefund handles POST /api/v1/payments/{id}/refunds.
func (s *Server) AddRefund(ctx echo.Context, id openapi_types.UUID) error {
	principal, paymentID, err := s.principalAndID(ctx, id)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.AddRefundJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddRefundCommand(
		principal,
		paymentID,
		body.Amount,
		payment.RefundReason(body.Reason),
		payment.Method(deref(body.Method)),
		deref(body.Notes),
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	refund, err := s.handlers.AddRefund.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toAPIRefund(refund))
}

// CompleteRefund handles POST /api/v1/payments/{id}/refunds/{refundId}/complete.
// The body is optional.
func (s *Server) CompleteRefund(ctx echo.Context, id openapi_types.UUID, refundID string) error {
	principal, paymentID, err := s.principalAndID(ctx, id)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.CompleteRefundJSONRequestBody
	if ctx.Request().ContentLength != 0 {
		if err = ctx.Bind(&body); err != nil {
			return badRequest(ctx, "Invalid request body")
		}
	}

	cmd, err := commands.NewCompleteRefundCommand(principal, paymentID, refundID, deref(body.GatewayTransactionId))
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.handlers.CompleteRefund.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toAPIPayment(updated))
}

// RecordPartialPayment handles POST /api/v1/payments/{id}/partial-payments.
func (s *Server) RecordPartialPayment(ctx echo.Context, id openapi_types.UUID) error {
	principal, paymentID, err := s.principalAndID(ctx, id)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.RecordPartialPaymentJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRecordPartialPaymentCommand(
		principal,
		paymentID,
		body.Amount,
		payment.Method(body.Method),
		deref(body.TransactionId),
		deref(body.IdempotencyKey),
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.handlers.RecordPartialPayment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toAPIPayment(updated))
}
