package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/payment"
	"logistics/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Login handles POST /api/v1/auth/login.
func (s *Server) Login(ctx echo.Context) error {
	var body servers.LoginJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewLoginCommand(
		identity.PrincipalType(body.PrincipalType),
		body.Email,
		body.Password,
		ctx.RealIP(),
		ctx.Request().UserAgent(),
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.handlers.Login.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.failLogin(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.LoginResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		Principal: toAPIPrincipal(result.Principal),
	})
}

// Logout handles POST /api/v1/auth/logout. Only admin sessions are tracked
// server side; for other principals the token simply expires.
func (s *Server) Logout(ctx echo.Context) error {
	principal, err := mustPrincipal(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewLogoutCommand(principal)
	if err != nil {
		return s.fail(ctx, err)
	}
	if _, err = s.handlers.Logout.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// RegisterDriver handles POST /api/v1/drivers/register.
func (s *Server) RegisterDriver(ctx echo.Context) error {
	var body servers.RegisterDriverJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRegisterDriverCommand(commands.RegisterDriverInput{
		Email:         body.Email,
		Password:      body.Password,
		FirstName:     body.FirstName,
		LastName:      body.LastName,
		Phone:         body.Phone,
		LicenseNumber: body.LicenseNumber,
		Vehicle: identity.Vehicle{
			Type:        body.Vehicle.Type,
			PlateNumber: body.Vehicle.PlateNumber,
			CapacityKg:  body.Vehicle.CapacityKg,
		},
	})
	if err != nil {
		return s.fail(ctx, err)
	}

	driver, err := s.handlers.RegisterDriver.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toAPIDriver(driver))
}

// RegisterClient handles POST /api/v1/clients/register.
func (s *Server) RegisterClient(ctx echo.Context) error {
	var body servers.RegisterClientJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRegisterClientCommand(commands.RegisterClientInput{
		Email:        body.Email,
		Password:     body.Password,
		CompanyName:  body.CompanyName,
		ContactName:  body.ContactName,
		Phone:        body.Phone,
		BillingTerms: payment.Terms(deref(body.BillingTerms)),
	})
	if err != nil {
		return s.fail(ctx, err)
	}

	client, err := s.handlers.RegisterClient.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toAPIClient(client))
}

// CreateAdmin handles POST /api/v1/admins.
func (s *Server) CreateAdmin(ctx echo.Context) error {
	principal, err := mustPrincipal(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.CreateAdminJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var permissions map[string][]string
	if body.Permissions != nil {
		permissions = *body.Permissions
	}

	cmd, err := commands.NewCreateAdminCommand(
		principal,
		body.Email,
		body.Password,
		body.Name,
		identity.AdminRole(body.Role),
		permissions,
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	admin, err := s.handlers.CreateAdmin.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toAPIAdmin(admin))
}

// ListEligibleDrivers handles GET /api/v1/drivers/eligible.
func (s *Server) ListEligibleDrivers(ctx echo.Context) error {
	principal, err := mustPrincipal(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListEligibleDriversQuery(principal)
	if err != nil {
		return s.fail(ctx, err)
	}

	drivers, err := s.handlers.ListEligibleDrivers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.EligibleDriver, len(drivers))
	for i, d := range drivers {
		response[i] = toAPIEligibleDriver(d)
	}
	return ctx.JSON(http.StatusOK, response)
}

// VerifyDriverDocument handles POST /api/v1/drivers/{id}/documents/{document}.
func (s *Server) VerifyDriverDocument(ctx echo.Context, id openapi_types.UUID, document servers.DriverDocumentType) error {
	var body servers.VerifyDriverDocumentJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	return s.reviewDriver(ctx, id, func(p identity.Principal, driverID kernel.UUID) (commands.ReviewDriverCommand, error) {
		return commands.NewReviewDriverVerifyDocumentCommand(p, driverID, identity.DriverDocument(document), body.Verified)
	})
}

// SubmitDriverKYC handles POST /api/v1/drivers/{id}/kyc/submit.
func (s *Server) SubmitDriverKYC(ctx echo.Context, id openapi_types.UUID) error {
	return s.reviewDriver(ctx, id, func(p identity.Principal, driverID kernel.UUID) (commands.ReviewDriverCommand, error) {
		return commands.NewReviewDriverSubmitKYCCommand(p, driverID)
	})
}

// DecideDriverKYC handles POST /api/v1/drivers/{id}/kyc/decision.
func (s *Server) DecideDriverKYC(ctx echo.Context, id openapi_types.UUID) error {
	var body servers.DecideDriverKYCJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	return s.reviewDriver(ctx, id, func(p identity.Principal, driverID kernel.UUID) (commands.ReviewDriverCommand, error) {
		return commands.NewReviewDriverDecideKYCCommand(p, driverID, body.Approve, deref(body.Notes))
	})
}

// SetDriverStatus handles POST /api/v1/drivers/{id}/status.
func (s *Server) SetDriverStatus(ctx echo.Context, id openapi_types.UUID) error {
	var body servers.SetDriverStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	return s.reviewDriver(ctx, id, func(p identity.Principal, driverID kernel.UUID) (commands.ReviewDriverCommand, error) {
		return commands.NewReviewDriverSetStatusCommand(p, driverID, identity.DriverStatus(body.Status))
	})
}

// reviewDriver runs one driver review step built by build.
func (s *Server) reviewDriver(
	ctx echo.Context,
	id openapi_types.UUID,
	build func(caller identity.Principal, driverID kernel.UUID) (commands.ReviewDriverCommand, error),
) error {
	principal, err := mustPrincipal(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	driverID, err := fromAPIUUID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := build(principal, driverID)
	if err != nil {
		return s.fail(ctx, err)
	}

	driver, err := s.handlers.ReviewDriver.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toAPIDriver(driver))
}
