package jobs

import (
	"context"
	"log/slog"
	"time"

	"logistics/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultSessionPruneSchedule runs every five minutes.
const DefaultSessionPruneSchedule = "0 */5 * * * *"

// SessionPruner is satisfied by commands.PruneSessionsCommandHandler.
type SessionPruner interface {
	Handle(ctx context.Context, cmd commands.PruneSessionsCommand) (int, error)
}

// SessionPruneJob removes expired admin sessions so that the capped session
// list only holds live ones.
type SessionPruneJob struct {
	pruner   SessionPruner
	schedule string
	now      func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewSessionPruneJob(pruner SessionPruner, schedule string, logger *slog.Logger) *SessionPruneJob {
	if schedule == "" {
		schedule = DefaultSessionPruneSchedule
	}
	return &SessionPruneJob{
		pruner:   pruner,
		schedule: schedule,
		now:      time.Now,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "session_prune_job"),
	}
}

func (j *SessionPruneJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Session prune failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session prune job started", "schedule", j.schedule)
	return nil
}

func (j *SessionPruneJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Session prune job stopped")
}

// Run prunes once and returns the number of sessions removed.
func (j *SessionPruneJob) Run(ctx context.Context) (int, error) {
	cmd, err := commands.NewPruneSessionsCommand(j.now())
	if err != nil {
		return 0, err
	}
	pruned, err := j.pruner.Handle(ctx, cmd)
	if err != nil {
		return 0, err
	}
	if pruned > 0 {
		j.logger.InfoContext(ctx, "Expired admin sessions pruned", "count", pruned)
	}
	return pruned, nil
}
