package jobs

import (
	"context"
	"log/slog"
	"time"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/payment"
	"logistics/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DefaultOverdueScanSchedule runs the scan at the top of every hour.
const DefaultOverdueScanSchedule = "0 0 * * * *"

// OverduePaymentsLister is satisfied by queries.ListOverduePaymentsQueryHandler.
type OverduePaymentsLister interface {
	Handle(ctx context.Context, query queries.ListOverduePaymentsQuery) ([]queries.ListOverduePaymentsQueryResponse, error)
}

// OverduePaymentsJob periodically lists pending or processing payments past
// their due date and emits one payment.overdue event for each of them.
type OverduePaymentsJob struct {
	lister    OverduePaymentsLister
	publisher ports.EventPublisher
	schedule  string
	now       func() time.Time
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewOverduePaymentsJob(
	lister OverduePaymentsLister,
	publisher ports.EventPublisher,
	schedule string,
	logger *slog.Logger,
) *OverduePaymentsJob {
	if schedule == "" {
		schedule = DefaultOverdueScanSchedule
	}
	return &OverduePaymentsJob{
		lister:    lister,
		publisher: publisher,
		schedule:  schedule,
		now:       time.Now,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "overdue_payments_job"),
	}
}

// Start schedules the scan.
func (j *OverduePaymentsJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Overdue payments scan failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue payments job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running scan to finish.
func (j *OverduePaymentsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Overdue payments job stopped")
}

// Run performs one scan and returns the number of overdue payments found.
// Publishing failures are logged and do not fail the scan.
func (j *OverduePaymentsJob) Run(ctx context.Context) (int, error) {
	now := j.now()
	query, err := queries.NewListOverduePaymentsQuery(now)
	if err != nil {
		return 0, err
	}

	overdue, err := j.lister.Handle(ctx, query)
	if err != nil {
		return 0, err
	}
	if len(overdue) == 0 {
		return 0, nil
	}

	events := make([]kernel.DomainEvent, 0, len(overdue))
	for _, o := range overdue {
		p := o.Payment
		j.logger.WarnContext(ctx, "Payment is overdue",
			"payment_id", p.ID().String(),
			"client_id", p.ClientID().String(),
			"days_overdue", o.DaysOverdue,
			"remaining", p.RemainingBalance().Amount(),
		)
		events = append(events, payment.OverdueEvent{
			PaymentID:        p.ID(),
			ClientID:         p.ClientID().String(),
			DueDate:          p.DueDate(),
			RemainingBalance: p.RemainingBalance().Amount(),
			At:               now.UTC(),
		})
	}

	if err = j.publisher.Publish(ctx, events...); err != nil {
		j.logger.ErrorContext(ctx, "Failed to publish overdue payment events", "count", len(events), "error", err)
	}
	return len(overdue), nil
}
