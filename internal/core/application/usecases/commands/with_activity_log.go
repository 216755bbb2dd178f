package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// Audited is implemented by commands whose admin invocations are written to
// the acting admin's activity log.
type Audited interface {
	Principal() identity.Principal
	ActivityTarget() string
}

// ActivityLogger appends activity entries to admin aggregates, each in its
// own unit of work.
type ActivityLogger struct {
	uowFactory AdminUoWFactory
	logger     *slog.Logger
}

func NewActivityLogger(uowFactory AdminUoWFactory, logger *slog.Logger) ActivityLogger {
	return ActivityLogger{
		uowFactory: uowFactory,
		logger:     logger.With("component", "ActivityLogger"),
	}
}

// Record appends one entry. A lost version race is retried once.
func (l ActivityLogger) Record(ctx context.Context, adminID kernel.UUID, entry identity.ActivityEntry) error {
	err := l.record(ctx, adminID, entry)
	if errors.Is(err, errs.ErrVersionIsInvalid) {
		err = l.record(ctx, adminID, entry)
	}
	return err
}

func (l ActivityLogger) record(ctx context.Context, adminID kernel.UUID, entry identity.ActivityEntry) error {
	uow := l.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.AdminRepository()
	admin, err := repo.Get(ctx, adminID)
	if err != nil {
		return err
	}
	admin.RecordActivity(entry)

	if err = repo.Update(ctx, admin); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

type activityLogged[C Audited, R any] struct {
	inner     Handler[C, R]
	activity  ActivityLogger
	operation string
	module    identity.Module
}

// WithActivityLog wraps a mutating handler. After the inner handler returns,
// exactly one entry describing the outcome is appended to the acting admin's
// log, then the inner result is returned unchanged. Commands issued by
// drivers and clients are not logged. A failure to write the entry is logged
// and never replaces the inner result.
func WithActivityLog[C Audited, R any](
	inner Handler[C, R],
	activity ActivityLogger,
	operation string,
	module identity.Module,
) Handler[C, R] {
	return activityLogged[C, R]{
		inner:     inner,
		activity:  activity,
		operation: operation,
		module:    module,
	}
}

func (h activityLogged[C, R]) Handle(ctx context.Context, cmd C) (R, error) {
	result, err := h.inner.Handle(ctx, cmd)

	principal := cmd.Principal()
	if !principal.IsAdmin() || principal.ID.IsZero() {
		return result, err
	}

	entry := identity.ActivityEntry{
		Operation: h.operation,
		Module:    h.module,
		TargetID:  cmd.ActivityTarget(),
		Outcome:   identity.OutcomeSuccess,
		At:        time.Now(),
	}
	if err != nil {
		entry.Outcome = identity.OutcomeFailure
		entry.Detail = err.Error()
	}

	// The entry survives client cancellation of the request.
	if recErr := h.activity.Record(context.WithoutCancel(ctx), principal.ID, entry); recErr != nil {
		h.activity.logger.ErrorContext(ctx, "failed to record admin activity",
			"adminId", principal.ID.String(),
			"operation", h.operation,
			"error", recErr,
		)
	}

	return result, err
}
