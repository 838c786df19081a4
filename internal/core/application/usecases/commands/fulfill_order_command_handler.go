package commands

import (
	"context"

	"albarans/internal/core/domain/services"
	"albarans/internal/pkg/errs"
)

// FulfillOrderCommandHandler handles the fulfillment transaction, the
// hottest path in the system. It loads the order, the acting employee and
// the stock entries of every product on the order, hands them to the
// fulfillment domain service for the two-pass check and decrement, and
// commits everything atomically.
//
// The stock entries are fetched with row-level locks in ascending product id
// order, so two concurrent fulfillments against the same warehouse serialize
// instead of deadlocking. When the store cannot serialize the transaction
// the repository surfaces a ConcurrencyConflict error and nothing is
// applied.
type FulfillOrderCommandHandler struct {
	uowFactory  FulfillmentUoWFactory
	fulfillment services.FulfillmentService
}

// NewFulfillOrderCommandHandler creates a handler for order fulfillment.
func NewFulfillOrderCommandHandler(
	uowFactory FulfillmentUoWFactory,
	fulfillment services.FulfillmentService,
) FulfillOrderCommandHandler {
	return FulfillOrderCommandHandler{
		uowFactory:  uowFactory,
		fulfillment: fulfillment,
	}
}

// Handle processes the fulfillment command. On any failure the transaction
// rolls back: stock quantities and the order status are left untouched.
func (h *FulfillOrderCommandHandler) Handle(ctx context.Context, cmd FulfillOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetByNumber(ctx, cmd.OrderNumber())
	if err != nil {
		return err
	}

	actor, err := uow.EmployeeRepository().GetByCode(ctx, cmd.ActorCode())
	if err != nil {
		return err
	}

	if aggregate.WarehouseID() == nil {
		return errs.NewValueIsRequiredError("order warehouse")
	}

	productIDs := make([]int64, 0, len(aggregate.Lines()))
	seen := make(map[int64]bool, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		if !seen[line.ProductID()] {
			seen[line.ProductID()] = true
			productIDs = append(productIDs, line.ProductID())
		}
	}

	entries, err := uow.StockRepository().GetForUpdate(ctx, *aggregate.WarehouseID(), productIDs)
	if err != nil {
		return err
	}

	if err = h.fulfillment.Fulfill(aggregate, actor, entries); err != nil {
		return err
	}

	stockRepo := uow.StockRepository()
	for _, entry := range entries {
		if err = stockRepo.Update(ctx, entry); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
