package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/pkg/errs"
)

// Handler is the shape shared by every command handler. The activity log
// decorator wraps it.
type Handler[C any, R any] interface {
	Handle(ctx context.Context, cmd C) (R, error)
}

// ErrPrincipalIsRequired is returned by command constructors that act on
// behalf of an authenticated caller.
var ErrPrincipalIsRequired = errs.NewValueIsRequiredError("principal")

func validatePrincipal(p identity.Principal) error {
	if p.ID.IsZero() {
		return ErrPrincipalIsRequired
	}
	if err := p.Type.Validate(); err != nil {
		return errors.Join(ErrPrincipalIsRequired, err)
	}
	return nil
}
