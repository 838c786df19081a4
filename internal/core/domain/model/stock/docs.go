// Package stock contains the inventory ledger domain model.
//
// A stock entry tracks the on-hand quantity of one product in one warehouse.
// The only invariant that matters here is that the quantity never drops below
// zero: consumption and negative adjustments are all-or-nothing, there is no
// clamping and no backorder concept. Cross-entry consistency during order
// fulfillment is the job of the fulfillment service and the transactional
// outer layer, not of this package.
package stock
