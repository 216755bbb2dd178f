package http

import (
	"errors"
	"fmt"
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/generated/servers"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const invalidCredentialsMessage = "invalid credentials"

// statusFor maps the error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errs.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrAccountLocked):
		return http.StatusLocked
	case errors.Is(err, errs.ErrForbidden), errors.Is(err, errs.ErrAccountInactive):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrIneligibleDriver):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrDuplicatePayment),
		errors.Is(err, errs.ErrInsufficientBalance):
		return http.StatusConflict
	case errors.Is(err, commands.ErrPaymentGatewayFailed):
		return http.StatusBadGateway
	case errors.Is(err, errs.ErrTransient):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as an Error body. Server side failures are logged and
// their detail is not sent to the caller.
func (s *Server) fail(ctx echo.Context, err error) error {
	code := statusFor(err)
	message := err.Error()
	if code >= http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method, "path", ctx.Path(), "status", code, "error", err)
		message = http.StatusText(code)
		if code == http.StatusBadGateway || code == http.StatusServiceUnavailable {
			message = fmt.Sprintf("%s, retry later", http.StatusText(code))
		}
	}
	return ctx.JSON(code, servers.Error{Code: code, Message: message})
}

// failLogin hides every credential failure behind one body so that the
// response never tells whether the account exists.
func (s *Server) failLogin(ctx echo.Context, err error) error {
	if errors.Is(err, errs.ErrUnauthenticated) {
		return ctx.JSON(http.StatusUnauthorized, servers.Error{
			Code:    http.StatusUnauthorized,
			Message: invalidCredentialsMessage,
		})
	}
	return s.fail(ctx, err)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// ErrorHandler renders errors that never reached a Server method, such as
// unknown routes and malformed path parameters, in the API error shape.
func ErrorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	code := statusFor(err)
	message := http.StatusText(code)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		message = fmt.Sprint(he.Message)
	} else if code < http.StatusInternalServerError {
		message = err.Error()
	}

	if ctx.Request().Method == http.MethodHead {
		_ = ctx.NoContent(code)
		return
	}
	_ = ctx.JSON(code, servers.Error{Code: code, Message: message})
}
