package http

import (
	"log/slog"
	"net/http"
	"sync"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/identity"
	"logistics/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// RouterConfig holds what NewRouter needs besides the server itself.
type RouterConfig struct {
	// FilesPrefix and FilesRoot expose the blob directory read-only. Both
	// empty disables static serving.
	FilesPrefix string
	FilesRoot   string
	Logger      *slog.Logger
	Debug       bool
}

// NewRouter builds the echo instance serving the API, the health check,
// the swagger UI and stored documents.
func NewRouter(
	server *Server,
	resolve UseCase[queries.ResolvePrincipalQuery, identity.Principal],
	config RouterConfig,
) (*echo.Echo, error) {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	registerSwaggerDoc(swagger)

	validator, err := RequestValidator(swagger, resolve)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = config.Debug
	e.HTTPErrorHandler = ErrorHandler
	if config.Debug {
		e.Logger.SetLevel(log.DEBUG)
	} else {
		e.Logger.SetLevel(log.WARN)
	}

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(RequestLogger(logger))
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	if config.FilesPrefix != "" && config.FilesRoot != "" {
		e.Static(config.FilesPrefix, config.FilesRoot)
	}

	servers.RegisterHandlers(e, server)
	return e, nil
}

var registerSwaggerOnce sync.Once

// swaggerDoc serves the embedded contract to the swagger UI.
type swaggerDoc struct {
	json string
}

func (d swaggerDoc) ReadDoc() string {
	return d.json
}

func registerSwaggerDoc(swagger *openapi3.T) {
	registerSwaggerOnce.Do(func() {
		data, err := swagger.MarshalJSON()
		if err != nil {
			return
		}
		swag.Register(swag.Name, swaggerDoc{json: string(data)})
	})
}
