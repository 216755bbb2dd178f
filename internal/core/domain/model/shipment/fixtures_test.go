package shipment_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func testAddress(t *testing.T, field string) kernel.Address {
	t.Helper()
	a, err := kernel.NewAddress(field, kernel.AddressParams{
		Street:     "221B Baker Street",
		City:       "London",
		State:      "Greater London",
		PostalCode: "NW1 6XE",
		Country:    "GB",
	})
	require.NoError(t, err)
	return a
}

func testItem(t *testing.T, qty int, weight float64, valueCents int64) shipment.Item {
	t.Helper()
	value, err := kernel.NewMoney(valueCents, "usd")
	require.NoError(t, err)
	item, err := shipment.NewItem(0, shipment.ItemParams{
		Name:     "Box",
		Quantity: qty,
		WeightKg: weight,
		Value:    value,
		Category: shipment.CategoryOther,
	})
	require.NoError(t, err)
	return item
}

func validCreateParams(t *testing.T) shipment.CreateParams {
	t.Helper()
	clientID := kernel.NewUUID()
	return shipment.CreateParams{
		ClientID:        clientID,
		Items:           []shipment.Item{testItem(t, 2, 5, 1500)},
		PickupAddress:   testAddress(t, "pickupAddress"),
		DeliveryAddress: testAddress(t, "deliveryAddress"),
		PickupDate:      testNow.Add(24 * time.Hour),
		DeliveryDate:    testNow.Add(4 * 24 * time.Hour),
		CreatedBy:       kernel.ClientActor(clientID),
	}
}

func newTestShipment(t *testing.T) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(validCreateParams(t), testNow)
	require.NoError(t, err)
	return s
}

// shipmentIn restores a shipment whose timeline walks a valid path ending in
// status, with a driver assigned when the status requires one.
func shipmentIn(t *testing.T, status shipment.Status) *shipment.Shipment {
	t.Helper()
	paths := map[shipment.Status][]shipment.Status{
		shipment.Pending:        {shipment.Pending},
		shipment.Assigned:       {shipment.Pending, shipment.Assigned},
		shipment.Picked:         {shipment.Pending, shipment.Assigned, shipment.Picked},
		shipment.Packed:         {shipment.Pending, shipment.Assigned, shipment.Picked, shipment.Packed},
		shipment.Processing:     {shipment.Pending, shipment.Assigned, shipment.Picked, shipment.Processing},
		shipment.InTransit:      {shipment.Pending, shipment.Assigned, shipment.Picked, shipment.Packed, shipment.InTransit},
		shipment.OutForDelivery: {shipment.Pending, shipment.Assigned, shipment.Picked, shipment.Packed, shipment.InTransit, shipment.OutForDelivery},
		shipment.Delivered:      {shipment.Pending, shipment.Assigned, shipment.Picked, shipment.Packed, shipment.InTransit, shipment.Delivered},
		shipment.Failed:         {shipment.Pending, shipment.Assigned, shipment.Picked, shipment.Failed},
		shipment.Returned:       {shipment.Pending, shipment.Assigned, shipment.Picked, shipment.Packed, shipment.InTransit, shipment.OutForDelivery, shipment.Returned},
		shipment.Cancelled:      {shipment.Pending, shipment.Cancelled},
	}
	path, ok := paths[status]
	require.True(t, ok, "no path for %s", status)

	base := newTestShipment(t)
	var timeline []shipment.TimelineEntry
	for i, st := range path {
		timeline = append(timeline, shipment.RestoreTimelineEntry(
			st, testNow.Add(time.Duration(i)*time.Hour), nil, "", kernel.SystemActor()))
	}

	var driverID *kernel.UUID
	if status != shipment.Pending && status != shipment.Cancelled {
		id := kernel.NewUUID()
		driverID = &id
	}

	s, err := shipment.RestoreShipment(shipment.RestoreParams{
		ID:              base.ID(),
		TrackingNumber:  base.TrackingNumber(),
		ClientID:        base.ClientID(),
		DriverID:        driverID,
		Items:           base.Items(),
		TotalWeight:     base.TotalWeight(),
		TotalValue:      base.TotalValue(),
		PickupAddress:   base.PickupAddress(),
		DeliveryAddress: base.DeliveryAddress(),
		ServiceType:     base.ServiceType(),
		PickupDate:      base.PickupDate(),
		DeliveryDate:    base.DeliveryDate(),
		Timeline:        timeline,
		CreatedAt:       base.CreatedAt(),
		UpdatedAt:       base.UpdatedAt(),
		Version:         1,
	})
	require.NoError(t, err)
	require.Equal(t, status, s.Status())
	return s
}
