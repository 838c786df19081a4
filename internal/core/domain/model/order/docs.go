// Package order contains the delivery note aggregate, the core of the
// system.
//
// The Order aggregate root exclusively owns its LineItems. All line
// mutations go through the root and finish with an explicit total
// recomputation, so the three monetary fields (base, tax, total) are never
// out of sync with the lines. Unit prices and tax rates are snapshotted from
// the catalog into the lines, insulating persisted notes from later price
// changes.
//
// The lifecycle is a strict state machine: Pending, InPreparation, Shipped,
// Delivered, with Cancelled reachable from any non-terminal state. Entering
// Shipped is reserved for the fulfillment workflow, which decrements stock
// and calls Ship inside one transaction.
package order
