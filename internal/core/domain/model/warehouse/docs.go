// Package warehouse contains the storage-site and staff domain model.
//
// Warehouses scope both stock and orders: every stock entry and every order
// belongs to exactly one warehouse. Employees carry an optional warehouse
// assignment, and the fulfillment workflow requires the acting employee to be
// assigned to the order's warehouse.
package warehouse
