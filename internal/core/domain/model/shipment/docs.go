// Package shipment contains the Shipment aggregate: its item manifest,
// pickup and delivery addresses, the status state machine and the
// append-only timeline that is the single source of truth for the current
// status.
//
// Auxiliary sub-records (issues, documents, the cancellation slot and the
// rating slot) hang off the same aggregate but never drive status changes
// on their own.
package shipment
