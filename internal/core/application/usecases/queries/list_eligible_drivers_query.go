package queries

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrListEligibleDriversQueryIsNotConstructed = errors.New(
	"ListEligibleDriversQuery must be created via NewListEligibleDriversQuery constructor",
)

// ListEligibleDriversQuery lists drivers that may receive an assignment:
// account approved and KYC approved.
type ListEligibleDriversQuery struct {
	principal identity.Principal
	guard     guard.ConstructorGuard
}

func NewListEligibleDriversQuery(principal identity.Principal) (ListEligibleDriversQuery, error) {
	if err := validatePrincipal(principal); err != nil {
		return ListEligibleDriversQuery{}, err
	}
	return ListEligibleDriversQuery{principal: principal, guard: guard.NewConstructorGuard()}, nil
}

func (q ListEligibleDriversQuery) Validate() error {
	return q.guard.Validate(ErrListEligibleDriversQueryIsNotConstructed)
}

type ListEligibleDriversQueryResponse struct {
	ID           kernel.UUID
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	VehicleType  string
	VehiclePlate string
	CapacityKg   float64
}

type ListEligibleDriversQueryHandler struct {
	db      *gorm.DB
	gateway services.AccessGateway
}

func NewListEligibleDriversQueryHandler(db *gorm.DB) ListEligibleDriversQueryHandler {
	return ListEligibleDriversQueryHandler{db: db, gateway: services.NewAccessGateway()}
}

// Handle is restricted to admins allowed to read drivers.
func (h ListEligibleDriversQueryHandler) Handle(
	ctx context.Context,
	query ListEligibleDriversQuery,
) ([]ListEligibleDriversQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.gateway.RequireType(query.principal, identity.PrincipalAdmin); err != nil {
		return nil, err
	}
	if err := h.gateway.Require(query.principal, identity.ModuleDrivers, identity.ActionRead); err != nil {
		return nil, err
	}

	drivers := make([]ListEligibleDriversQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			first_name,
			last_name,
			email,
			phone,
			vehicle_type,
			vehicle_plate_number,
			vehicle_capacity_kg
		FROM drivers
		WHERE status = ? AND kyc_status = ?
		ORDER BY last_name, first_name, id
	`, string(identity.DriverApproved), string(identity.KYCApproved)).Rows()
	if err != nil {
		return nil, errs.NewTransientError("driver.list_eligible", err)
	}
	defer rows.Close()

	for rows.Next() {
		var d ListEligibleDriversQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&d.FirstName,
			&d.LastName,
			&d.Email,
			&d.Phone,
			&d.VehicleType,
			&d.VehiclePlate,
			&d.CapacityKg,
		)
		if err != nil {
			return nil, err
		}

		driverID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		d.ID = driverID
		drivers = append(drivers, d)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewTransientError("driver.list_eligible", err)
	}

	return drivers, nil
}
