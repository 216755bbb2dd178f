package services_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func newPendingShipment(t *testing.T) *shipment.Shipment {
	t.Helper()
	address, err := kernel.NewAddress("address", kernel.AddressParams{
		Street: "1 Main St", City: "Springfield", State: "IL", PostalCode: "62701", Country: "US",
	})
	require.NoError(t, err)
	value, err := kernel.NewMoney(2500, "usd")
	require.NoError(t, err)
	item, err := shipment.NewItem(0, shipment.ItemParams{
		Name: "Parcel", Quantity: 2, WeightKg: 5, Value: value, Category: shipment.CategoryOther,
	})
	require.NoError(t, err)

	clientID := kernel.NewUUID()
	s, err := shipment.NewShipment(shipment.CreateParams{
		ClientID:        clientID,
		Items:           []shipment.Item{item},
		PickupAddress:   address,
		DeliveryAddress: address,
		PickupDate:      testNow.Add(24 * time.Hour),
		DeliveryDate:    testNow.Add(96 * time.Hour),
		CreatedBy:       kernel.ClientActor(clientID),
	}, testNow)
	require.NoError(t, err)
	return s
}

func newDriver(t *testing.T, status identity.DriverStatus, kyc identity.KYCStatus) *identity.Driver {
	t.Helper()
	d, err := identity.RestoreDriver(identity.DriverRestoreParams{
		ID:        kernel.NewUUID(),
		Email:     "driver@example.com",
		FirstName: "Grace",
		LastName:  "Hopper",
		Status:    status,
		KYCStatus: kyc,
	})
	require.NoError(t, err)
	return d
}
