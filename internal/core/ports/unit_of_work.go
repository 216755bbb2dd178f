package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is one database transaction. Repositories obtained after Begin
// run inside it. Domain events recorded by aggregates written through its
// repositories are published once Commit succeeds.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	ShipmentRepository() ShipmentRepository
	PaymentRepository() PaymentRepository
	DriverRepository() DriverRepository
	ClientRepository() ClientRepository
	AdminRepository() AdminRepository
}
