package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/identity"
	"logistics/internal/generated/servers"
	"logistics/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const principalContextKey = "logistics.principal"

// principalFrom returns the caller resolved by the request validator. Public
// routes have no principal.
func principalFrom(ctx echo.Context) (identity.Principal, bool) {
	p, ok := ctx.Get(principalContextKey).(identity.Principal)
	return p, ok
}

// mustPrincipal is used by secured routes, where the validator has already
// rejected anonymous requests.
func mustPrincipal(ctx echo.Context) (identity.Principal, error) {
	p, ok := principalFrom(ctx)
	if !ok {
		return identity.Principal{}, errs.NewUnauthenticatedError()
	}
	return p, nil
}

// RequestValidator checks every /api request against the OpenAPI document.
// Operations guarded by bearerAuth resolve the bearer token through resolve
// and store the principal on the echo context. Multipart bodies are left to
// the handler.
func RequestValidator(
	swagger *openapi3.T,
	resolve UseCase[queries.ResolvePrincipalQuery, identity.Principal],
) (echo.MiddlewareFunc, error) {
	swagger.Servers = nil
	router, err := legacy.NewRouter(swagger)
	if err != nil {
		return nil, err
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()
			if !strings.HasPrefix(req.URL.Path, "/api/") {
				return next(ctx)
			}

			route, pathParams, err := router.FindRoute(req)
			switch {
			case errors.Is(err, routers.ErrMethodNotAllowed):
				return echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed")
			case err != nil:
				return echo.NewHTTPError(http.StatusNotFound, "route not found")
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options: &openapi3filter.Options{
					ExcludeRequestBody: isMultipart(req),
					AuthenticationFunc: func(c context.Context, _ *openapi3filter.AuthenticationInput) error {
						return authenticate(c, ctx, resolve)
					},
				},
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return validationFailure(ctx, err)
			}
			return next(ctx)
		}
	}, nil
}

func authenticate(
	c context.Context,
	ctx echo.Context,
	resolve UseCase[queries.ResolvePrincipalQuery, identity.Principal],
) error {
	token, ok := bearerToken(ctx.Request())
	if !ok {
		return errs.NewUnauthenticatedError()
	}
	query, err := queries.NewResolvePrincipalQuery(token)
	if err != nil {
		return errs.NewUnauthenticatedErrorWithCause(err)
	}
	principal, err := resolve.Handle(c, query)
	if err != nil {
		return err
	}
	ctx.Set(principalContextKey, principal)
	return nil
}

func bearerToken(req *http.Request) (string, bool) {
	header := req.Header.Get(echo.HeaderAuthorization)
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func isMultipart(req *http.Request) bool {
	return strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm)
}

// validationFailure writes the response for a request the validator
// rejected. Authentication failures keep their own status.
func validationFailure(ctx echo.Context, err error) error {
	var secErr *openapi3filter.SecurityRequirementsError
	if errors.As(err, &secErr) {
		cause := error(errs.NewUnauthenticatedError())
		if len(secErr.Errors) > 0 && secErr.Errors[0] != nil {
			cause = secErr.Errors[0]
		}
		code := statusFor(cause)
		message := cause.Error()
		if code == http.StatusUnauthorized {
			message = "authentication required"
		}
		if code >= http.StatusInternalServerError {
			message = http.StatusText(code)
		}
		return ctx.JSON(code, servers.Error{Code: code, Message: message})
	}

	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) {
		return badRequest(ctx, reqErr.Error())
	}
	return badRequest(ctx, err.Error())
}

// RequestLogger forwards the access log to slog.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(ctx echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			switch {
			case v.Status >= http.StatusInternalServerError:
				level = slog.LevelError
			case v.Status >= http.StatusBadRequest:
				level = slog.LevelWarn
			}
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("remote_ip", v.RemoteIP),
			}
			if v.RequestID != "" {
				attrs = append(attrs, slog.String("request_id", v.RequestID))
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			logger.LogAttrs(ctx.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}
