package jobs

import (
	"fmt"
	"log/slog"

	"logistics/internal/core/ports"
)

// Schedules are six-field cron expressions, seconds first. Empty values fall
// back to the job defaults.
type Schedules struct {
	OverdueScan  string
	SessionPrune string
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	overduePaymentsJob *OverduePaymentsJob
	sessionPruneJob    *SessionPruneJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	overdueLister OverduePaymentsLister,
	sessionPruner SessionPruner,
	publisher ports.EventPublisher,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		overduePaymentsJob: NewOverduePaymentsJob(overdueLister, publisher, schedules.OverdueScan, logger),
		sessionPruneJob:    NewSessionPruneJob(sessionPruner, schedules.SessionPrune, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.overduePaymentsJob.Start(); err != nil {
		return fmt.Errorf("failed to start overdue payments job: %w", err)
	}

	if err := jm.sessionPruneJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.overduePaymentsJob.Stop()
		return fmt.Errorf("failed to start session prune job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.sessionPruneJob.Stop()
	jm.overduePaymentsJob.Stop()
}
