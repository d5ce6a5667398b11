// Package parcel contains the Parcel aggregate: one delivery job moving
// through the forward-only state machine pending -> accepted -> picked_up ->
// in_transit -> delivered, with cancellation as a side exit from any
// non-terminal state.
//
// The aggregate also owns the per-parcel financials: the negotiated final
// price and the driver commission / platform fee breakdown are computed once
// at delivery time and persisted, so the read side can sum them without
// recomputation.
package parcel
