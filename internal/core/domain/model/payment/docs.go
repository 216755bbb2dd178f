// Package payment contains the Payment aggregate: the billed amount, an
// informational charge breakdown, refunds, partial payments and a timeline
// of status changes.
//
// The payment status machine is permissive on purpose. Admins may set
// processing, completed, failed or cancelled at any time; refunded and
// partially_refunded are derived from completed refunds. Payments are not
// coupled to the shipment lifecycle.
package payment
