// Package services contains domain services that coordinate more than one
// aggregate or answer questions no single aggregate owns: driver assignment
// and access control.
package services
