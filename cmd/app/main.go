package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"logistics/cmd"
	apihttp "logistics/internal/adapters/in/http"
	"logistics/internal/core/application/usecases/commands"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 15 * time.Second

func main() {
	configs := getConfigs()
	logger := newLogger(configs)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gormDB := cmd.MustGetGormConnection(configs)

	app, err := cmd.NewCompositionRoot(ctx, configs, gormDB, logger)
	if err != nil {
		log.Fatalf("composition root: %v", err)
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			logger.Error("failed to close adapters", "error", closeErr)
		}
	}()

	bootstrapAdmin(ctx, app, configs, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("jobs: %v", err)
	}
	defer jobManager.StopAll()

	e, err := newWebServer(app, configs, logger)
	if err != nil {
		log.Fatalf("http: %v", err)
	}

	if err = run(ctx, e, configs.HTTPPort, logger); err != nil {
		logger.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, e *echo.Echo, port string, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", "port", port)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func newWebServer(app *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) (*echo.Echo, error) {
	handlers := app.CreateHTTPHandlers()
	server := apihttp.NewServer(handlers, apihttp.WithLogger(logger))
	return apihttp.NewRouter(server, handlers.ResolvePrincipal, apihttp.RouterConfig{
		FilesPrefix: filesPrefix(configs.BlobBaseURL),
		FilesRoot:   app.BlobStore().Root(),
		Logger:      logger,
		Debug:       configs.Debug,
	})
}

// filesPrefix is the path under which the blob directory is served. An
// absolute base URL means the files live elsewhere and nothing is served.
func filesPrefix(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil || u.IsAbs() {
		return ""
	}
	return strings.TrimRight(u.Path, "/")
}

// bootstrapAdmin seeds the first super admin. It does nothing once any
// admin with that e-mail exists.
func bootstrapAdmin(ctx context.Context, app *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) {
	if configs.BootstrapAdminEmail == "" {
		return
	}
	command, err := commands.NewBootstrapAdminCommand(configs.BootstrapAdminEmail, configs.BootstrapAdminPassword, "Administrator")
	if err != nil {
		log.Fatalf("bootstrap admin: %v", err)
	}
	created, err := app.CreateBootstrapAdminCommandHandler().Handle(ctx, command)
	if err != nil {
		log.Fatalf("bootstrap admin: %v", err)
	}
	if created {
		logger.Info("bootstrap super admin created", "email", configs.BootstrapAdminEmail)
	}
}

func newLogger(configs cmd.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(configs.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.EqualFold(configs.LogFormat, "text") {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	return slog.New(handler).With("service", "logistics")
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config := cmd.Config{
		HTTPPort:   envOr("HTTP_PORT", "8080"),
		Debug:      envBool("DEBUG"),
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     envOr("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSslMode:  envOr("DB_SSLMODE", "disable"),

		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		RedisDB:          envInt("REDIS_DB", 0),
		TrackingCacheTTL: envDuration("TRACKING_CACHE_TTL", 5*time.Minute),

		EventBroker:              envOr("EVENT_BROKER", cmd.BrokerNone),
		KafkaHost:                os.Getenv("KAFKA_HOST"),
		KafkaShipmentEventsTopic: envOr("KAFKA_SHIPMENT_EVENTS_TOPIC", "shipment.events"),
		KafkaPaymentEventsTopic:  envOr("KAFKA_PAYMENT_EVENTS_TOPIC", "payment.events"),
		RabbitMQURL:              os.Getenv("RABBITMQ_URL"),
		RabbitMQExchange:         envOr("RABBITMQ_EXCHANGE", "logistics.events"),

		JWTSecret: os.Getenv("JWT_SECRET"),
		JWTTTL:    envDuration("JWT_TTL", 24*time.Hour),

		StripeAPIKey:        os.Getenv("STRIPE_API_KEY"),
		StripePaymentMethod: os.Getenv("STRIPE_PAYMENT_METHOD"),
		StripeCustomer:      os.Getenv("STRIPE_CUSTOMER"),

		BlobDir:     envOr("BLOB_DIR", "./data/blobs"),
		BlobBaseURL: envOr("BLOB_BASE_URL", "/files"),

		BootstrapAdminEmail:    os.Getenv("BOOTSTRAP_ADMIN_EMAIL"),
		BootstrapAdminPassword: os.Getenv("BOOTSTRAP_ADMIN_PASSWORD"),

		OverdueScanSchedule:  os.Getenv("OVERDUE_SCAN_SCHEDULE"),
		SessionPruneSchedule: os.Getenv("SESSION_PRUNE_SCHEDULE"),

		LogLevel:  envOr("LOG_LEVEL", "info"),
		LogFormat: envOr("LOG_FORMAT", "json"),
	}
	return config
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("%s: %v", key, err)
	}
	return n
}

func envBool(key string) bool {
	b, _ := strconv.ParseBool(os.Getenv(key))
	return b
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("%s: %v", key, err)
	}
	return d
}
