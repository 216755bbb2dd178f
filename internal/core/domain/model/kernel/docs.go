// Package kernel provides value objects shared by every aggregate of the
// logistics domain.
//
// The package includes:
//   - UUID: identifiers for shipments, payments and principals
//   - Money: integer minor-unit amounts with an ISO 4217 currency
//   - Address and Coordinates: postal addresses with optional geocoding
//   - Actor: the tagged variant naming who performed a mutation
//   - OrderedLog: the append-only, optionally capped history used for
//     timelines, refunds, partial payments, sessions and activity logs
//
// Every value object rejects its zero value through Validate.
package kernel
