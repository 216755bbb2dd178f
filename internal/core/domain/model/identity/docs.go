// Package identity holds the principals of the system: drivers, clients and
// admins, together with the closed module and action enumerations used by
// the access gateway.
//
// Passwords are stored as opaque hashes produced outside the domain.
package identity
