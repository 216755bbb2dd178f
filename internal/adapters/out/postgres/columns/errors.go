package columns

import (
	"errors"

	"logistics/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// Transient wraps a driver or connection failure of operation in a
// TransientError so callers see a retryable error rather than a raw gorm one.
func Transient(operation string, err error) error {
	if err == nil {
		return nil
	}
	return errs.NewTransientError(operation, err)
}

// IsUniqueViolation reports whether err is a Postgres unique violation on the
// named constraint. An empty constraint matches any unique violation.
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
