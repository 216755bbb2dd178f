package commands_test

import (
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/payment"
	"logistics/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/require"
)

func superAdmin() identity.Principal {
	return identity.Principal{
		ID:          kernel.NewUUID(),
		Type:        identity.PrincipalAdmin,
		AdminRole:   identity.RoleSuperAdmin,
		Permissions: identity.FullPermissions(),
		SessionID:   "sess-1",
	}
}

func supportAdmin() identity.Principal {
	return identity.Principal{
		ID:          kernel.NewUUID(),
		Type:        identity.PrincipalAdmin,
		AdminRole:   identity.RoleSupport,
		Permissions: identity.DefaultRolePermissions(identity.RoleSupport),
	}
}

func clientPrincipal(id kernel.UUID) identity.Principal {
	return identity.Principal{ID: id, Type: identity.PrincipalClient}
}

func driverPrincipal(id kernel.UUID) identity.Principal {
	return identity.Principal{ID: id, Type: identity.PrincipalDriver}
}

func addressParams() kernel.AddressParams {
	return kernel.AddressParams{
		Street:     "1 Main St",
		City:       "Springfield",
		State:      "IL",
		PostalCode: "62701",
		Country:    "US",
	}
}

func shipmentInput(t *testing.T, clientID kernel.UUID) commands.CreateShipmentInput {
	t.Helper()
	value, err := kernel.NewMoney(1500, "usd")
	require.NoError(t, err)
	tomorrow := time.Now().UTC().Add(24 * time.Hour)
	return commands.CreateShipmentInput{
		ClientID: clientID,
		Items: []shipment.ItemParams{{
			Name: "Box", Quantity: 2, WeightKg: 5, Value: value, Category: shipment.CategoryOther,
		}},
		PickupAddress:   addressParams(),
		DeliveryAddress: addressParams(),
		PickupDate:      tomorrow,
		DeliveryDate:    tomorrow.Add(72 * time.Hour),
	}
}

func newPendingShipment(t *testing.T, clientID kernel.UUID) *shipment.Shipment {
	t.Helper()
	in := shipmentInput(t, clientID)
	item, err := shipment.NewItem(0, in.Items[0])
	require.NoError(t, err)
	pickup, err := kernel.NewAddress("pickupAddress", in.PickupAddress)
	require.NoError(t, err)
	s, err := shipment.NewShipment(shipment.CreateParams{
		ClientID:        clientID,
		Items:           []shipment.Item{item},
		PickupAddress:   pickup,
		DeliveryAddress: pickup,
		PickupDate:      in.PickupDate,
		DeliveryDate:    in.DeliveryDate,
		CreatedBy:       kernel.ClientActor(clientID),
	}, time.Now())
	require.NoError(t, err)
	s.ClearDomainEvents()
	return s
}

func newAssignedShipment(t *testing.T, driver *identity.Driver) *shipment.Shipment {
	t.Helper()
	s := newPendingShipment(t, kernel.NewUUID())
	require.NoError(t, s.AssignDriver(driver.ID(), driver.FullName(), kernel.SystemActor(), time.Now()))
	s.ClearDomainEvents()
	return s
}

func newDriver(t *testing.T, status identity.DriverStatus, kyc identity.KYCStatus) *identity.Driver {
	t.Helper()
	d, err := identity.RestoreDriver(identity.DriverRestoreParams{
		ID:           kernel.NewUUID(),
		Email:        "driver@example.com",
		PasswordHash: "hash",
		FirstName:    "Grace",
		LastName:     "Hopper",
		Status:       status,
		KYCStatus:    kyc,
	})
	require.NoError(t, err)
	return d
}

func newClient(t *testing.T, status identity.ClientStatus, terms payment.Terms) *identity.Client {
	t.Helper()
	c, err := identity.RestoreClient(identity.ClientRestoreParams{
		ID:           kernel.NewUUID(),
		Email:        "client@example.com",
		PasswordHash: "hash",
		CompanyName:  "Acme",
		ContactName:  "Wile E.",
		BillingTerms: terms,
		Status:       status,
	})
	require.NoError(t, err)
	return c
}

func newAdmin(t *testing.T, attempts int, lockedUntil *time.Time) *identity.Admin {
	t.Helper()
	a, err := identity.RestoreAdmin(identity.AdminRestoreParams{
		ID:            kernel.NewUUID(),
		Email:         "admin@example.com",
		PasswordHash:  "hash",
		Name:          "Ada",
		Role:          identity.RoleAdmin,
		Permissions:   identity.DefaultRolePermissions(identity.RoleAdmin),
		Status:        identity.AdminActive,
		LoginAttempts: attempts,
		LockedUntil:   lockedUntil,
		Version:       1,
	})
	require.NoError(t, err)
	return a
}

func newPayment(t *testing.T, total int64) *payment.Payment {
	t.Helper()
	amount, err := payment.NewAmount(payment.AmountParams{Subtotal: total, Currency: "usd"})
	require.NoError(t, err)
	p, err := payment.NewPayment(payment.CreateParams{
		ShipmentID: kernel.NewUUID(),
		ClientID:   kernel.NewUUID(),
		Amount:     amount,
		CreatedBy:  kernel.SystemActor(),
	}, time.Now())
	require.NoError(t, err)
	p.ClearDomainEvents()
	return p
}

func completedPayment(t *testing.T, total int64) *payment.Payment {
	t.Helper()
	p := newPayment(t, total)
	require.NoError(t, p.UpdateStatus(payment.Completed, "paid", kernel.SystemActor(), time.Now()))
	p.ClearDomainEvents()
	return p
}

// reloadPayment returns an independent copy of p, as a repository read
// would.
func reloadPayment(t *testing.T, p *payment.Payment) *payment.Payment {
	t.Helper()
	copied, err := payment.RestorePayment(payment.RestoreParams{
		ID:              p.ID(),
		ShipmentID:      p.ShipmentID(),
		ClientID:        p.ClientID(),
		Amount:          p.Amount(),
		Charges:         p.Charges(),
		Method:          p.Method(),
		Terms:           p.Terms(),
		Notes:           p.Notes(),
		DueDate:         p.DueDate(),
		PaidDate:        p.PaidDate(),
		Timeline:        p.Timeline(),
		Refunds:         p.Refunds(),
		PartialPayments: p.PartialPayments(),
		CreatedAt:       p.CreatedAt(),
		UpdatedAt:       p.UpdatedAt(),
		Version:         p.Version(),
	})
	require.NoError(t, err)
	return copied
}
