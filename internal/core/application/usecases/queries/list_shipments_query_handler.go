package queries

import (
	"context"
	"strings"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListShipmentsQueryHandler reads shipment summaries straight from the
// shipments table without restoring aggregates.
type ListShipmentsQueryHandler struct {
	db      *gorm.DB
	gateway services.AccessGateway
}

func NewListShipmentsQueryHandler(db *gorm.DB) ListShipmentsQueryHandler {
	return ListShipmentsQueryHandler{
		db:      db,
		gateway: services.NewAccessGateway(),
	}
}

func (h ListShipmentsQueryHandler) Handle(
	ctx context.Context,
	query ListShipmentsQuery,
) (ListShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListShipmentsQueryResponse{}, err
	}
	if err := h.gateway.Require(query.principal, identity.ModuleShipments, identity.ActionRead); err != nil {
		return ListShipmentsQueryResponse{}, err
	}

	var (
		where []string
		args  []any
	)
	if f := query.filter; f.Status != nil {
		where = append(where, "status = ?")
		args = append(args, f.Status.String())
	}
	if f := query.filter; f.ClientID != nil {
		where = append(where, "client_id = ?")
		args = append(args, f.ClientID.Bytes())
	}
	if f := query.filter; f.DriverID != nil {
		where = append(where, "driver_id = ?")
		args = append(args, f.DriverID.Bytes())
	}

	sql := `
		SELECT
			id,
			tracking_number,
			client_id,
			driver_id,
			status,
			service_type,
			total_value_amount,
			total_value_currency,
			total_weight,
			pickup_address->>'city',
			delivery_address->>'city',
			pickup_date,
			delivery_date,
			created_at,
			COUNT(*) OVER ()
		FROM shipments`
	if len(where) > 0 {
		sql += "\n\t\tWHERE " + strings.Join(where, " AND ")
	}
	sql += "\n\t\tORDER BY created_at DESC, id\n\t\tLIMIT ? OFFSET ?"
	args = append(args, query.limit, query.offset)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return ListShipmentsQueryResponse{}, errs.NewTransientError("shipment.list", err)
	}
	defer rows.Close()

	resp := ListShipmentsQueryResponse{Items: make([]ShipmentSummary, 0)}
	for rows.Next() {
		var (
			item                 ShipmentSummary
			id, clientID         uuid.UUID
			driverID             *uuid.UUID
			status, serviceType  string
			valueAmount          int64
			valueCurrency        string
			pickupCity, dropCity *string
		)

		err = rows.Scan(
			&id,
			&item.TrackingNumber,
			&clientID,
			&driverID,
			&status,
			&serviceType,
			&valueAmount,
			&valueCurrency,
			&item.TotalWeight,
			&pickupCity,
			&dropCity,
			&item.PickupDate,
			&item.DeliveryDate,
			&item.CreatedAt,
			&resp.Total,
		)
		if err != nil {
			return ListShipmentsQueryResponse{}, err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return ListShipmentsQueryResponse{}, err
		}
		if item.ClientID, err = kernel.UUIDFromBytes(clientID[:]); err != nil {
			return ListShipmentsQueryResponse{}, err
		}
		if driverID != nil {
			d, idErr := kernel.UUIDFromBytes(driverID[:])
			if idErr != nil {
				return ListShipmentsQueryResponse{}, idErr
			}
			item.DriverID = &d
		}
		if item.Status, err = shipment.ParseStatus(status); err != nil {
			return ListShipmentsQueryResponse{}, err
		}
		item.ServiceType = shipment.ServiceType(serviceType)
		item.TotalValue = kernel.RestoreMoney(valueAmount, valueCurrency)
		if pickupCity != nil {
			item.PickupCity = *pickupCity
		}
		if dropCity != nil {
			item.DeliveryCity = *dropCity
		}

		resp.Items = append(resp.Items, item)
	}

	if err = rows.Err(); err != nil {
		return ListShipmentsQueryResponse{}, errs.NewTransientError("shipment.list", err)
	}

	return resp, nil
}
