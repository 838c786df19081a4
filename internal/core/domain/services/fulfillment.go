package services

import (
	"albarans/internal/core/domain/model/order"
	"albarans/internal/core/domain/model/stock"
	"albarans/internal/core/domain/model/warehouse"
	"albarans/internal/pkg/errs"
)

// FulfillmentService is a domain service that ships an order by consuming
// warehouse stock. It implements the two-pass protocol: first every line is
// checked against the stock on hand, and only when all lines pass are the
// entries decremented and the order advanced to Shipped.
//
// Business rules:
//   - The acting employee must be assigned to the order's warehouse
//   - The order must be in preparation and bound to a warehouse
//   - No stock entry is mutated unless every line can be satisfied
//   - The first insufficiency found aborts the whole operation, naming the
//     failing product
//
// The service mutates in-memory aggregates only. Persisting the decrements
// and the status change in one transaction is the caller's responsibility.
type FulfillmentService struct{}

// NewFulfillmentService creates a new FulfillmentService instance.
func NewFulfillmentService() FulfillmentService {
	return FulfillmentService{}
}

// Fulfill consumes stock for every line of the order and ships it.
//
// Parameters:
//   - o: the order to ship, must be InPreparation and bound to a warehouse
//   - actor: the employee performing the shipment
//   - entries: stock entries of the order's warehouse keyed by product id,
//     one per distinct product on the order
//
// Returns:
//   - nil on success, with all entries decremented and the order Shipped
//   - a NotAuthorized error when the actor is not assigned to the order's
//     warehouse
//   - an InsufficientStock error naming the first failing product, with no
//     entry mutated
//   - an InvalidTransition error when the order cannot be shipped
func (s FulfillmentService) Fulfill(
	o *order.Order,
	actor *warehouse.Employee,
	entries map[int64]*stock.StockEntry,
) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := actor.Validate(); err != nil {
		return err
	}

	if o.WarehouseID() == nil {
		return errs.NewValueIsRequiredError("order warehouse")
	}
	warehouseID := *o.WarehouseID()
	if !actor.WorksAt(warehouseID) {
		return errs.NewNotAuthorizedError(actor.Code(), "employee is not assigned to the order's warehouse")
	}
	if !o.Status().CanTransitionTo(order.StatusShipped) {
		return errs.NewInvalidTransitionError(o.Status().String(), order.StatusShipped.String())
	}

	// Pass 1: read-only sufficiency check across all lines. Quantities are
	// accumulated per product so several lines of the same product are
	// checked against the combined demand.
	required := make(map[int64]int)
	for _, line := range o.Lines() {
		required[line.ProductID()] += line.Quantity()
		// A product with no stock row at this warehouse has zero on hand.
		entry, ok := entries[line.ProductID()]
		if !ok {
			return errs.NewInsufficientStockError(
				line.ProductID(), warehouseID, required[line.ProductID()], 0)
		}
		if !entry.HasSufficient(required[line.ProductID()]) {
			return errs.NewInsufficientStockError(
				line.ProductID(), warehouseID, required[line.ProductID()], entry.Quantity())
		}
	}

	// Pass 2: decrement each entry. Cannot fail after pass 1 because the
	// caller holds the entries exclusively for the transaction.
	for productID, qty := range required {
		if err := entries[productID].Consume(qty); err != nil {
			return err
		}
	}

	return o.Ship()
}
