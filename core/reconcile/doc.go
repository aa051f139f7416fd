// Package reconcile implements the dual-ledger reconciliation engine.
//
// A Processor keeps two ledgers, one per Flow (received and shipped). Every
// recorded event first offsets the opposite ledger and then accumulates into the
// target ledger, so a unit that comes back in the other direction cancels an
// outstanding one instead of being counted twice.
//
// # Algorithm
//
// For Record(id, flow):
//
//  1. Resolve the display name through the Directory. Unknown identifiers get a
//     default entry whose ID and Name are the uppercased identifier.
//  2. If id is present in the opposite ledger, decrement it and drop the entry
//     when the quantity reaches zero.
//  3. If id is present in the target ledger, increment it; otherwise insert it
//     with quantity 1.
//
// Ledger keys are the identifiers exactly as supplied, while the Directory
// normalizes to uppercase. Two casings of the same identifier therefore share a
// display name but are tracked as separate ledger entries.
//
// # Concurrency
//
// All Processor methods are serialized by a single mutex per instance, since the
// offset-then-accumulate sequence must not interleave.
//
// # Usage
//
//	dir := directory.New()
//	proc := reconcile.NewProcessor(dir)
//	proc.Record("5f1c0a9b2e4d7f8a1b3c6d90", reconcile.FlowReceived)
//	received := proc.Snapshot(reconcile.FlowReceived)
package reconcile
