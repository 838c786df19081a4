// Package catalog contains the product and category domain model.
//
// The catalog is a read dependency for the rest of the core: orders snapshot
// product prices into their lines, and the fulfillment workflow resolves
// stock entries through product identifiers. Beyond plain field updates the
// catalog has no mutation logic.
//
// Tax rates are a closed enum of exactly three decimal values (4%, 10%, 21%)
// represented as exact fixed-point decimals because they participate in
// monetary rounding.
package catalog
