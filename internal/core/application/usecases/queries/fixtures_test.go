package queries_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/payment"
	"logistics/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/require"
)

func adminPrincipal(role identity.AdminRole) identity.Principal {
	return identity.Principal{
		ID:          kernel.NewUUID(),
		Type:        identity.PrincipalAdmin,
		AdminRole:   role,
		Permissions: identity.DefaultRolePermissions(role),
		SessionID:   "sess-1",
	}
}

func clientPrincipal(id kernel.UUID) identity.Principal {
	return identity.Principal{ID: id, Type: identity.PrincipalClient}
}

func driverPrincipal(id kernel.UUID) identity.Principal {
	return identity.Principal{ID: id, Type: identity.PrincipalDriver}
}

func testAddress(t *testing.T, field, city string) kernel.Address {
	t.Helper()
	a, err := kernel.NewAddress(field, kernel.AddressParams{
		Street:     "1 Main St",
		City:       city,
		State:      "IL",
		PostalCode: "62701",
		Country:    "US",
	})
	require.NoError(t, err)
	return a
}

func newShipment(t *testing.T, clientID kernel.UUID) *shipment.Shipment {
	t.Helper()
	value, err := kernel.NewMoney(1500, "usd")
	require.NoError(t, err)
	item, err := shipment.NewItem(0, shipment.ItemParams{
		Name: "Box", Quantity: 2, WeightKg: 5, Value: value, Category: shipment.CategoryOther,
	})
	require.NoError(t, err)

	tomorrow := time.Now().UTC().Add(24 * time.Hour)
	s, err := shipment.NewShipment(shipment.CreateParams{
		ClientID:        clientID,
		Items:           []shipment.Item{item},
		PickupAddress:   testAddress(t, "pickupAddress", "Springfield"),
		DeliveryAddress: testAddress(t, "deliveryAddress", "Shelbyville"),
		PickupDate:      tomorrow,
		DeliveryDate:    tomorrow.Add(72 * time.Hour),
		CreatedBy:       kernel.ClientActor(clientID),
	}, time.Now())
	require.NoError(t, err)
	s.ClearDomainEvents()
	return s
}

func assign(t *testing.T, s *shipment.Shipment, driverID kernel.UUID) {
	t.Helper()
	require.NoError(t, s.AssignDriver(driverID, "Grace Hopper", kernel.SystemActor(), time.Now()))
	s.ClearDomainEvents()
}

func newPayment(t *testing.T, clientID kernel.UUID, total int64) *payment.Payment {
	t.Helper()
	amount, err := payment.NewAmount(payment.AmountParams{Subtotal: total, Currency: "usd"})
	require.NoError(t, err)
	p, err := payment.NewPayment(payment.CreateParams{
		ShipmentID: kernel.NewUUID(),
		ClientID:   clientID,
		Amount:     amount,
		CreatedBy:  kernel.SystemActor(),
	}, time.Now())
	require.NoError(t, err)
	p.ClearDomainEvents()
	return p
}
