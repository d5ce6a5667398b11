// Package payment contains the Payment aggregate: settlement records for
// driver earnings. A payment is either a periodic payout generated from a
// driver's pending earnings or a manual adjustment, and moves through a short
// state machine (pending, optionally processing, then completed or failed).
//
// The net amount is always derived from gross earnings minus the platform fee
// and is rejected when negative rather than clamped to zero.
package payment
