package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

var ErrListShipmentsQueryIsNotConstructed = errors.New(
	"ListShipmentsQuery must be created via NewListShipmentsQuery constructor",
)

// ShipmentFilter narrows a shipment listing. Nil fields do not filter.
type ShipmentFilter struct {
	Status   *shipment.Status
	ClientID *kernel.UUID
	DriverID *kernel.UUID
}

// ListShipmentsQuery pages through shipments visible to a principal, newest
// first. Clients only ever see their own shipments and drivers only those
// assigned to them, whatever the filter says.
type ListShipmentsQuery struct { //nolint:recvcheck //using for validation
	principal identity.Principal
	filter    ShipmentFilter
	limit     int
	offset    int
	guard     guard.ConstructorGuard
}

// NewListShipmentsQuery builds the query. A limit of zero means
// DefaultListLimit.
func NewListShipmentsQuery(
	principal identity.Principal,
	filter ShipmentFilter,
	limit, offset int,
) (ListShipmentsQuery, error) {
	q := ListShipmentsQuery{guard: guard.NewConstructorGuard()}
	if err := errors.Join(
		validatePrincipal(principal),
		q.setFilter(filter),
		q.setPage(limit, offset),
	); err != nil {
		return ListShipmentsQuery{}, err
	}
	q.principal = principal
	q.scopeToPrincipal()
	return q, nil
}

func (q ListShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrListShipmentsQueryIsNotConstructed)
}

func (q ListShipmentsQuery) Principal() identity.Principal { return q.principal }
func (q ListShipmentsQuery) Filter() ShipmentFilter        { return q.filter }
func (q ListShipmentsQuery) Limit() int                    { return q.limit }
func (q ListShipmentsQuery) Offset() int                   { return q.offset }

func (q *ListShipmentsQuery) setFilter(f ShipmentFilter) error {
	var errList []error
	if f.Status != nil {
		errList = append(errList, f.Status.Validate())
	}
	if f.ClientID != nil {
		errList = append(errList, f.ClientID.Validate())
	}
	if f.DriverID != nil {
		errList = append(errList, f.DriverID.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}
	q.filter = f
	return nil
}

func (q *ListShipmentsQuery) setPage(limit, offset int) error {
	if limit == 0 {
		limit = DefaultListLimit
	}
	if limit < 1 || limit > MaxListLimit {
		return errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxListLimit)
	}
	if offset < 0 {
		return errs.NewValueIsOutOfRangeError("offset", offset, 0, "unbounded")
	}
	q.limit = limit
	q.offset = offset
	return nil
}

func (q *ListShipmentsQuery) scopeToPrincipal() {
	id := q.principal.ID
	switch q.principal.Type {
	case identity.PrincipalClient:
		q.filter.ClientID = &id
	case identity.PrincipalDriver:
		q.filter.DriverID = &id
	}
}

// ListShipmentsQueryResponse is one page of shipment summaries.
type ListShipmentsQueryResponse struct {
	Items []ShipmentSummary
	Total int64
}

type ShipmentSummary struct {
	ID             kernel.UUID
	TrackingNumber string
	ClientID       kernel.UUID
	DriverID       *kernel.UUID
	Status         shipment.Status
	ServiceType    shipment.ServiceType
	TotalValue     kernel.Money
	TotalWeight    float64
	PickupCity     string
	DeliveryCity   string
	PickupDate     time.Time
	DeliveryDate   time.Time
	CreatedAt      time.Time
}
