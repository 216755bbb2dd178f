package services_test

import (
	"testing"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminPrincipal(t *testing.T, role identity.AdminRole, grants map[identity.Module][]identity.Action) identity.Principal {
	t.Helper()
	perms, err := identity.NewPermissions(grants)
	require.NoError(t, err)
	return identity.Principal{ID: kernel.NewUUID(), Type: identity.PrincipalAdmin, AdminRole: role, Permissions: perms}
}

func TestAccessGateway_Authorize(t *testing.T) {
	gateway := services.NewAccessGateway()

	t.Run("super admin short-circuits", func(t *testing.T) {
		p := adminPrincipal(t, identity.RoleSuperAdmin, nil)

		for _, m := range identity.AllModules() {
			for _, a := range identity.AllActions() {
				assert.True(t, gateway.Authorize(p, m, a))
			}
		}
	})

	t.Run("admin is limited to its permission map", func(t *testing.T) {
		p := adminPrincipal(t, identity.RoleSupport, map[identity.Module][]identity.Action{
			identity.ModuleShipments: {identity.ActionRead},
		})

		assert.True(t, gateway.Authorize(p, identity.ModuleShipments, identity.ActionRead))
		assert.False(t, gateway.Authorize(p, identity.ModuleShipments, identity.ActionAssign))

		var forbidden *errs.ForbiddenError
		require.ErrorAs(t, gateway.Require(p, identity.ModulePayments, identity.ActionRefund), &forbidden)
		assert.Equal(t, "payments", forbidden.Module)
		assert.Equal(t, "refund", forbidden.Action)
	})

	t.Run("clients cannot touch payments beyond reading", func(t *testing.T) {
		p := identity.Principal{ID: kernel.NewUUID(), Type: identity.PrincipalClient}

		assert.True(t, gateway.Authorize(p, identity.ModulePayments, identity.ActionRead))
		assert.False(t, gateway.Authorize(p, identity.ModulePayments, identity.ActionUpdate))
	})

	t.Run("route guard by principal type", func(t *testing.T) {
		driver := identity.Principal{ID: kernel.NewUUID(), Type: identity.PrincipalDriver}

		require.NoError(t, gateway.RequireType(driver, identity.PrincipalDriver, identity.PrincipalAdmin))
		require.ErrorIs(t, gateway.RequireType(driver, identity.PrincipalAdmin), errs.ErrForbidden)
	})
}

func TestAccessGateway_Shipments(t *testing.T) {
	gateway := services.NewAccessGateway()
	s := newPendingShipment(t)
	d := newDriver(t, identity.DriverApproved, identity.KYCApproved)
	require.NoError(t, services.NewDriverAssigner().Assign(s, d, kernel.SystemActor(), testNow))

	owner := identity.Principal{ID: s.ClientID(), Type: identity.PrincipalClient}
	stranger := identity.Principal{ID: kernel.NewUUID(), Type: identity.PrincipalClient}
	assigned := identity.Principal{ID: d.ID(), Type: identity.PrincipalDriver}
	otherDriver := identity.Principal{ID: kernel.NewUUID(), Type: identity.PrincipalDriver}
	dispatcher := adminPrincipal(t, identity.RoleManager, map[identity.Module][]identity.Action{
		identity.ModuleShipments: {identity.ActionRead, identity.ActionUpdate},
	})
	viewer := adminPrincipal(t, identity.RoleSupport, map[identity.Module][]identity.Action{
		identity.ModuleShipments: {identity.ActionRead},
	})

	t.Run("transition", func(t *testing.T) {
		assert.NoError(t, gateway.CanTransitionShipment(assigned, s))
		assert.NoError(t, gateway.CanTransitionShipment(dispatcher, s))
		assert.ErrorIs(t, gateway.CanTransitionShipment(otherDriver, s), errs.ErrForbidden)
		assert.ErrorIs(t, gateway.CanTransitionShipment(owner, s), errs.ErrForbidden)
		assert.ErrorIs(t, gateway.CanTransitionShipment(viewer, s), errs.ErrForbidden)
	})

	t.Run("view", func(t *testing.T) {
		assert.NoError(t, gateway.CanViewShipment(owner, s))
		assert.NoError(t, gateway.CanViewShipment(assigned, s))
		assert.NoError(t, gateway.CanViewShipment(viewer, s))
		assert.ErrorIs(t, gateway.CanViewShipment(stranger, s), errs.ErrForbidden)
		assert.ErrorIs(t, gateway.CanViewShipment(otherDriver, s), errs.ErrForbidden)
	})

	t.Run("cancel", func(t *testing.T) {
		assert.NoError(t, gateway.CanCancelShipment(owner, s))
		assert.NoError(t, gateway.CanCancelShipment(dispatcher, s))
		assert.ErrorIs(t, gateway.CanCancelShipment(stranger, s), errs.ErrForbidden)
		assert.ErrorIs(t, gateway.CanCancelShipment(assigned, s), errs.ErrForbidden)
	})
}
