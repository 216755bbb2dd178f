package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	apihttp "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/blob"
	"logistics/internal/adapters/out/broker"
	"logistics/internal/adapters/out/broker/kafka"
	"logistics/internal/adapters/out/broker/rabbitmq"
	"logistics/internal/adapters/out/crypto"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/redis"
	"logistics/internal/adapters/out/stripe"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/payment"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/ports"
	"logistics/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot owns the adapters and builds every handler from them.
type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory

	publisher ports.EventPublisher
	cache     ports.Cache
	gateway   ports.PaymentGateway
	blobs     *blob.FileStore
	hasher    ports.PasswordHasher
	tokens    ports.TokenService
	activity  commands.ActivityLogger

	closers []func() error
}

func NewCompositionRoot(ctx context.Context, config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{
		config: config,
		logger: logger,
		gormDB: gormDB,
		hasher: crypto.NewArgon2Hasher(crypto.DefaultArgon2Params),
	}

	tokens, err := crypto.NewJWTService(config.JWTSecret, config.JWTTTL)
	if err != nil {
		return nil, fmt.Errorf("jwt: %w", err)
	}
	c.tokens = tokens

	if c.blobs, err = blob.NewFileStore(config.BlobDir, config.BlobBaseURL); err != nil {
		return nil, err
	}

	if err = c.connectPublisher(); err != nil {
		return nil, err
	}
	if err = c.connectCache(ctx); err != nil {
		_ = c.Close()
		return nil, err
	}
	if config.StripeAPIKey != "" {
		c.gateway = stripe.NewGateway(stripe.Config{
			APIKey:        config.StripeAPIKey,
			PaymentMethod: config.StripePaymentMethod,
			Customer:      config.StripeCustomer,
		})
	} else {
		logger.Warn("STRIPE_API_KEY is not set, payments are settled manually")
	}

	c.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB,
		postgres.WithEventPublisher(c.publisher),
		postgres.WithTrackingCache(c.cache),
		postgres.WithLogger(logger),
	)
	c.activity = commands.NewActivityLogger(c.adminUoWFactory(), logger)
	return c, nil
}

func (c *CompositionRoot) connectPublisher() error {
	switch c.config.EventBroker {
	case BrokerKafka:
		p := kafka.NewPublisher(c.config.KafkaHost, kafka.Topics{
			"shipment": c.config.KafkaShipmentEventsTopic,
			"payment":  c.config.KafkaPaymentEventsTopic,
		})
		c.publisher = p
		c.closers = append(c.closers, p.Close)
	case BrokerRabbitMQ:
		p, err := rabbitmq.Dial(c.config.RabbitMQURL, c.config.RabbitMQExchange)
		if err != nil {
			return err
		}
		c.publisher = p
		c.closers = append(c.closers, p.Close)
	case BrokerNone, "":
		c.publisher = broker.NoopPublisher{}
	default:
		return fmt.Errorf("unknown EVENT_BROKER %q", c.config.EventBroker)
	}
	return nil
}

func (c *CompositionRoot) connectCache(ctx context.Context) error {
	if c.config.RedisAddr == "" {
		c.logger.Warn("REDIS_ADDR is not set, tracking snapshots are not cached")
		return nil
	}
	cache, err := redis.NewCache(ctx, redis.Config{
		Addr:     c.config.RedisAddr,
		Password: c.config.RedisPassword,
		DB:       c.config.RedisDB,
	})
	if err != nil {
		return err
	}
	c.cache = cache
	c.closers = append(c.closers, cache.Close)
	return nil
}

// Close releases broker and cache connections.
func (c *CompositionRoot) Close() error {
	var errList []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		errList = append(errList, c.closers[i]())
	}
	c.closers = nil
	return errors.Join(errList...)
}

func (c *CompositionRoot) BlobStore() *blob.FileStore { return c.blobs }

// Unit of work factories narrowed per handler group.

func (c *CompositionRoot) shipmentUoWFactory() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) paymentUoWFactory() commands.PaymentUoWFactory {
	return FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) identityUoWFactory() commands.IdentityUoWFactory {
	return FuncIdentityUoWFactory(func() commands.IdentityUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) adminUoWFactory() commands.AdminUoWFactory {
	return FuncAdminUoWFactory(func() commands.AdminUoW {
		return c.uowFactory.Create()
	})
}

// Repositories used outside a transaction serve the read side.

func (c *CompositionRoot) reader() ports.UnitOfWork {
	return c.uowFactory.Create()
}

// Commands

func (c *CompositionRoot) CreateBootstrapAdminCommandHandler() commands.BootstrapAdminCommandHandler {
	return commands.NewBootstrapAdminCommandHandler(c.identityUoWFactory(), c.hasher, c.logger)
}

func (c *CompositionRoot) CreatePruneSessionsCommandHandler() commands.PruneSessionsCommandHandler {
	return commands.NewPruneSessionsCommandHandler(c.adminUoWFactory())
}

func (c *CompositionRoot) CreateResolvePrincipalQueryHandler() queries.ResolvePrincipalQueryHandler {
	r := c.reader()
	return queries.NewResolvePrincipalQueryHandler(c.tokens, r.DriverRepository(), r.ClientRepository(), r.AdminRepository())
}

func (c *CompositionRoot) CreateListOverduePaymentsQueryHandler() queries.ListOverduePaymentsQueryHandler {
	return queries.NewListOverduePaymentsQueryHandler(c.reader().PaymentRepository())
}

// CreateHTTPHandlers wires every use case exposed over HTTP. Mutations an
// admin can perform are recorded in the admin's activity log.
func (c *CompositionRoot) CreateHTTPHandlers() apihttp.Handlers {
	shipments := c.shipmentUoWFactory()
	payments := c.paymentUoWFactory()
	accounts := c.identityUoWFactory()
	r := c.reader()

	return apihttp.Handlers{
		Login:          commands.NewLoginCommandHandler(accounts, c.hasher, c.tokens),
		Logout:         commands.NewLogoutCommandHandler(accounts),
		RegisterDriver: commands.NewRegisterDriverCommandHandler(accounts, c.hasher),
		RegisterClient: commands.NewRegisterClientCommandHandler(accounts, c.hasher),
		CreateAdmin: commands.WithActivityLog[commands.CreateAdminCommand, *identity.Admin](
			commands.NewCreateAdminCommandHandler(accounts, c.hasher),
			c.activity, "admin.create", identity.ModuleAdmins),
		ReviewDriver: commands.WithActivityLog[commands.ReviewDriverCommand, *identity.Driver](
			commands.NewReviewDriverCommandHandler(accounts),
			c.activity, "driver.review", identity.ModuleDrivers),

		CreateShipment: commands.WithActivityLog[commands.CreateShipmentCommand, *shipment.Shipment](
			commands.NewCreateShipmentCommandHandler(shipments),
			c.activity, "shipment.create", identity.ModuleShipments),
		TransitionShipment: commands.WithActivityLog[commands.TransitionShipmentCommand, *shipment.Shipment](
			commands.NewTransitionShipmentCommandHandler(shipments),
			c.activity, "shipment.transition", identity.ModuleShipments),
		AssignDriver: commands.WithActivityLog[commands.AssignDriverCommand, *shipment.Shipment](
			commands.NewAssignDriverCommandHandler(shipments),
			c.activity, "shipment.assign", identity.ModuleShipments),
		CancelShipment: commands.WithActivityLog[commands.CancelShipmentCommand, *shipment.Shipment](
			commands.NewCancelShipmentCommandHandler(shipments),
			c.activity, "shipment.cancel", identity.ModuleShipments),
		ReportShipmentIssue: commands.WithActivityLog[commands.ReportShipmentIssueCommand, shipment.Issue](
			commands.NewReportShipmentIssueCommandHandler(shipments),
			c.activity, "shipment.report_issue", identity.ModuleShipments),
		RateShipment: commands.NewRateShipmentCommandHandler(shipments),
		AttachShipmentDocument: commands.WithActivityLog[commands.AttachShipmentDocumentCommand, shipment.Document](
			commands.NewAttachShipmentDocumentCommandHandler(shipments, c.blobs),
			c.activity, "shipment.attach_document", identity.ModuleShipments),

		CreatePayment: commands.WithActivityLog[commands.CreatePaymentCommand, *payment.Payment](
			commands.NewCreatePaymentCommandHandler(payments),
			c.activity, "payment.create", identity.ModulePayments),
		UpdatePaymentStatus: commands.WithActivityLog[commands.UpdatePaymentStatusCommand, *payment.Payment](
			commands.NewUpdatePaymentStatusCommandHandler(payments),
			c.activity, "payment.update_status", identity.ModulePayments),
		AddRefund: commands.WithActivityLog[commands.AddRefundCommand, payment.Refund](
			commands.NewAddRefundCommandHandler(payments),
			c.activity, "payment.add_refund", identity.ModulePayments),
		CompleteRefund: commands.WithActivityLog[commands.CompleteRefundCommand, *payment.Payment](
			commands.NewCompleteRefundCommandHandler(payments, c.gateway),
			c.activity, "payment.complete_refund", identity.ModulePayments),
		RecordPartialPayment: commands.WithActivityLog[commands.RecordPartialPaymentCommand, *payment.Payment](
			commands.NewRecordPartialPaymentCommandHandler(payments, c.gateway),
			c.activity, "payment.record_partial", identity.ModulePayments),

		GetShipment:         queries.NewGetShipmentQueryHandler(r.ShipmentRepository()),
		ListShipments:       queries.NewListShipmentsQueryHandler(c.gormDB),
		TrackShipment:       queries.NewTrackShipmentQueryHandler(r.ShipmentRepository(), c.cache, c.config.TrackingCacheTTL, c.logger),
		GetPayment:          queries.NewGetPaymentQueryHandler(r.PaymentRepository()),
		ListEligibleDrivers: queries.NewListEligibleDriversQueryHandler(c.gormDB),
		ListOverduePayments: c.CreateListOverduePaymentsQueryHandler(),
		ResolvePrincipal:    c.CreateResolvePrincipalQueryHandler(),
	}
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateListOverduePaymentsQueryHandler(),
		c.CreatePruneSessionsCommandHandler(),
		c.publisher,
		jobs.Schedules{
			OverdueScan:  c.config.OverdueScanSchedule,
			SessionPrune: c.config.SessionPruneSchedule,
		},
		c.logger,
	)
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

type FuncIdentityUoWFactory func() commands.IdentityUoW

func (f FuncIdentityUoWFactory) Create() commands.IdentityUoW {
	return f()
}

type FuncAdminUoWFactory func() commands.AdminUoW

func (f FuncAdminUoWFactory) Create() commands.AdminUoW {
	return f()
}
