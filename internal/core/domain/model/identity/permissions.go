package identity

import (
	"fmt"
	"slices"
	"sort"

	"logistics/internal/pkg/errs"
)

// Module is a closed set of protected areas.
type Module string

const (
	ModuleShipments Module = "shipments"
	ModulePayments  Module = "payments"
	ModuleDrivers   Module = "drivers"
	ModuleClients   Module = "clients"
	ModuleAdmins    Module = "admins"
	ModuleReports   Module = "reports"
)

func AllModules() []Module {
	return []Module{ModuleShipments, ModulePayments, ModuleDrivers, ModuleClients, ModuleAdmins, ModuleReports}
}

func (m Module) Validate() error {
	if slices.Contains(AllModules(), m) {
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("module", fmt.Errorf("%q is not a valid module", string(m)))
}

// Action is a closed set of operations on a module.
type Action string

const (
	ActionCreate  Action = "create"
	ActionRead    Action = "read"
	ActionUpdate  Action = "update"
	ActionDelete  Action = "delete"
	ActionAssign  Action = "assign"
	ActionApprove Action = "approve"
	ActionRefund  Action = "refund"
)

func AllActions() []Action {
	return []Action{ActionCreate, ActionRead, ActionUpdate, ActionDelete, ActionAssign, ActionApprove, ActionRefund}
}

func (a Action) Validate() error {
	if slices.Contains(AllActions(), a) {
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%q is not a valid action", string(a)))
}

// Permissions maps modules to allowed actions. The zero value permits nothing.
type Permissions struct {
	grants map[Module]map[Action]struct{}
}

// NewPermissions validates every module and action name.
func NewPermissions(grants map[Module][]Action) (Permissions, error) {
	p := Permissions{grants: make(map[Module]map[Action]struct{}, len(grants))}
	for module, actions := range grants {
		if err := module.Validate(); err != nil {
			return Permissions{}, err
		}
		if p.grants[module] == nil {
			p.grants[module] = map[Action]struct{}{}
		}
		for _, action := range actions {
			if err := action.Validate(); err != nil {
				return Permissions{}, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("permissions.%s", module), err)
			}
			p.grant(module, action)
		}
	}
	return p, nil
}

// ParsePermissions builds Permissions from their wire form.
func ParsePermissions(raw map[string][]string) (Permissions, error) {
	grants := make(map[Module][]Action, len(raw))
	for module, actions := range raw {
		for _, action := range actions {
			grants[Module(module)] = append(grants[Module(module)], Action(action))
		}
		if len(actions) == 0 {
			grants[Module(module)] = nil
		}
	}
	return NewPermissions(grants)
}

// FullPermissions grants every action on every module.
func FullPermissions() Permissions {
	p := Permissions{grants: map[Module]map[Action]struct{}{}}
	for _, m := range AllModules() {
		for _, a := range AllActions() {
			p.grant(m, a)
		}
	}
	return p
}

func (p Permissions) Permits(module Module, action Action) bool {
	_, ok := p.grants[module][action]
	return ok
}

// Map returns the wire form with actions sorted.
func (p Permissions) Map() map[string][]string {
	out := make(map[string][]string, len(p.grants))
	for module, actions := range p.grants {
		list := make([]string, 0, len(actions))
		for a := range actions {
			list = append(list, string(a))
		}
		sort.Strings(list)
		out[string(module)] = list
	}
	return out
}

func (p *Permissions) grant(module Module, action Action) {
	if p.grants == nil {
		p.grants = map[Module]map[Action]struct{}{}
	}
	if p.grants[module] == nil {
		p.grants[module] = map[Action]struct{}{}
	}
	p.grants[module][action] = struct{}{}
}

// DefaultRolePermissions is granted to new admins when none are supplied.
func DefaultRolePermissions(role AdminRole) Permissions {
	switch role {
	case RoleSuperAdmin:
		return FullPermissions()
	case RoleAdmin:
		p, _ := NewPermissions(map[Module][]Action{
			ModuleShipments: {ActionCreate, ActionRead, ActionUpdate, ActionDelete, ActionAssign},
			ModulePayments:  {ActionCreate, ActionRead, ActionUpdate, ActionRefund},
			ModuleDrivers:   {ActionRead, ActionUpdate, ActionApprove},
			ModuleClients:   {ActionRead, ActionUpdate},
			ModuleReports:   {ActionRead},
		})
		return p
	case RoleManager:
		p, _ := NewPermissions(map[Module][]Action{
			ModuleShipments: {ActionRead, ActionUpdate, ActionAssign},
			ModulePayments:  {ActionRead},
			ModuleDrivers:   {ActionRead},
			ModuleClients:   {ActionRead},
			ModuleReports:   {ActionRead},
		})
		return p
	case RoleSupport:
		p, _ := NewPermissions(map[Module][]Action{
			ModuleShipments: {ActionRead},
			ModuleClients:   {ActionRead},
			ModuleDrivers:   {ActionRead},
		})
		return p
	default:
		return Permissions{}
	}
}

// ImpliedPermissions are the fixed grants of non-admin principals.
func ImpliedPermissions(t PrincipalType) Permissions {
	switch t {
	case PrincipalClient:
		p, _ := NewPermissions(map[Module][]Action{
			ModuleShipments: {ActionCreate, ActionRead, ActionUpdate},
			ModulePayments:  {ActionRead},
		})
		return p
	case PrincipalDriver:
		p, _ := NewPermissions(map[Module][]Action{
			ModuleShipments: {ActionRead, ActionUpdate},
		})
		return p
	default:
		return Permissions{}
	}
}
