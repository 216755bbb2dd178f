package commands

import (
	"context"
	"errors"
	"time"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrPruneSessionsCommandIsNotConstructed = errors.New(
	"PruneSessionsCommand must be created via NewPruneSessionsCommand constructor",
)

// PruneSessionsCommand drops every admin session that expired before now.
// It is issued by the session pruning job as the system.
type PruneSessionsCommand struct {
	now   time.Time
	guard guard.ConstructorGuard
}

func NewPruneSessionsCommand(now time.Time) (PruneSessionsCommand, error) {
	if now.IsZero() {
		return PruneSessionsCommand{}, errs.NewValueIsRequiredError("now")
	}
	return PruneSessionsCommand{now: now.UTC(), guard: guard.NewConstructorGuard()}, nil
}

func (c PruneSessionsCommand) Validate() error {
	return c.guard.Validate(ErrPruneSessionsCommandIsNotConstructed)
}

func (c PruneSessionsCommand) Now() time.Time { return c.now }

type PruneSessionsCommandHandler struct {
	uowFactory AdminUoWFactory
}

func NewPruneSessionsCommandHandler(uowFactory AdminUoWFactory) PruneSessionsCommandHandler {
	return PruneSessionsCommandHandler{uowFactory: uowFactory}
}

// Handle returns the number of sessions removed. All admins are updated in
// one transaction; a version conflict aborts the run and the next tick
// retries.
func (h PruneSessionsCommandHandler) Handle(ctx context.Context, cmd PruneSessionsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.AdminRepository()
	admins, err := repo.ListWithExpiredSessions(ctx, cmd.now)
	if err != nil {
		return 0, err
	}

	pruned := 0
	for _, admin := range admins {
		n := admin.PruneSessions(cmd.now)
		if n == 0 {
			continue
		}
		if err = repo.Update(ctx, admin); err != nil {
			return 0, err
		}
		pruned += n
	}

	if pruned == 0 {
		return 0, nil
	}
	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	return pruned, nil
}
