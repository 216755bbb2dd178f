// Package commands contains business operations that modify system state.
// Every handler validates its command, opens one unit of work, loads and
// mutates exactly one aggregate and commits.
package commands

import (
	"context"

	"logistics/internal/core/ports"
)

// Unit of Work interfaces narrowed to the repositories each group of handlers
// needs.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	ClientRepoFactory interface {
		ClientRepository() ports.ClientRepository
	}

	AdminRepoFactory interface {
		AdminRepository() ports.AdminRepository
	}

	// ShipmentUoW serves shipment commands. Client and driver repositories
	// are read only: creation checks the client, assignment loads the driver.
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
		ClientRepoFactory
		DriverRepoFactory
	}

	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// PaymentUoW serves payment commands. Creation reads the shipment and
	// the client's billing terms.
	PaymentUoW interface {
		TxManager
		PaymentRepoFactory
		ShipmentRepoFactory
		ClientRepoFactory
	}

	PaymentUoWFactory interface {
		Create() PaymentUoW
	}

	// IdentityUoW serves registration, login and account review.
	IdentityUoW interface {
		TxManager
		DriverRepoFactory
		ClientRepoFactory
		AdminRepoFactory
	}

	IdentityUoWFactory interface {
		Create() IdentityUoW
	}

	// AdminUoW is used by the activity log decorator.
	AdminUoW interface {
		TxManager
		AdminRepoFactory
	}

	AdminUoWFactory interface {
		Create() AdminUoW
	}
)
