package http

import (
	"context"
	"log/slog"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/payment"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
	"logistics/internal/generated/servers"
)

// DefaultMaxUploadBytes bounds a single uploaded shipment document.
const DefaultMaxUploadBytes int64 = 10 << 20

// UseCase is satisfied by every command and query handler, decorated or not.
type UseCase[In any, Out any] interface {
	Handle(ctx context.Context, in In) (Out, error)
}

// Handlers are the use cases exposed over HTTP.
type Handlers struct {
	// Identity
	Login          UseCase[commands.LoginCommand, commands.LoginResult]
	Logout         UseCase[commands.LogoutCommand, bool]
	RegisterDriver UseCase[commands.RegisterDriverCommand, *identity.Driver]
	RegisterClient UseCase[commands.RegisterClientCommand, *identity.Client]
	CreateAdmin    UseCase[commands.CreateAdminCommand, *identity.Admin]
	ReviewDriver   UseCase[commands.ReviewDriverCommand, *identity.Driver]

	// Shipments
	CreateShipment         UseCase[commands.CreateShipmentCommand, *shipment.Shipment]
	TransitionShipment     UseCase[commands.TransitionShipmentCommand, *shipment.Shipment]
	AssignDriver           UseCase[commands.AssignDriverCommand, *shipment.Shipment]
	CancelShipment         UseCase[commands.CancelShipmentCommand, *shipment.Shipment]
	ReportShipmentIssue    UseCase[commands.ReportShipmentIssueCommand, shipment.Issue]
	RateShipment           UseCase[commands.RateShipmentCommand, *shipment.Shipment]
	AttachShipmentDocument UseCase[commands.AttachShipmentDocumentCommand, shipment.Document]

	// Payments
	CreatePayment        UseCase[commands.CreatePaymentCommand, *payment.Payment]
	UpdatePaymentStatus  UseCase[commands.UpdatePaymentStatusCommand, *payment.Payment]
	AddRefund            UseCase[commands.AddRefundCommand, payment.Refund]
	CompleteRefund       UseCase[commands.CompleteRefundCommand, *payment.Payment]
	RecordPartialPayment UseCase[commands.RecordPartialPaymentCommand, *payment.Payment]

	// Queries
	GetShipment         UseCase[queries.GetShipmentQuery, *shipment.Shipment]
	ListShipments       UseCase[queries.ListShipmentsQuery, queries.ListShipmentsQueryResponse]
	TrackShipment       UseCase[queries.TrackShipmentQuery, queries.TrackShipmentQueryResponse]
	GetPayment          UseCase[queries.GetPaymentQuery, queries.GetPaymentQueryResponse]
	ListEligibleDrivers UseCase[queries.ListEligibleDriversQuery, []queries.ListEligibleDriversQueryResponse]
	ListOverduePayments UseCase[queries.ListOverduePaymentsQuery, []queries.ListOverduePaymentsQueryResponse]
	ResolvePrincipal    UseCase[queries.ResolvePrincipalQuery, identity.Principal]
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers       Handlers
	gateway        services.AccessGateway
	maxUploadBytes int64
	now            func() time.Time
	logger         *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

type ServerOption func(*Server)

func WithMaxUploadBytes(n int64) ServerOption {
	return func(s *Server) {
		if n > 0 {
			s.maxUploadBytes = n
		}
	}
}

func WithClock(now func() time.Time) ServerOption {
	return func(s *Server) {
		s.now = now
	}
}

func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, opts ...ServerOption) *Server {
	s := &Server{
		handlers:       handlers,
		gateway:        services.NewAccessGateway(),
		maxUploadBytes: DefaultMaxUploadBytes,
		now:            time.Now,
		logger:         slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "http")
	return s
}
