package commands

import (
	"context"
	"errors"

	"albarans/internal/pkg/errs"
)

// AddLineCommandHandler handles line addition to delivery notes.
//
// When the order is bound to a warehouse the handler prechecks stock
// sufficiency for the requested quantity and fails with an insufficient
// stock error before touching the order. The check is advisory only: no
// stock is reserved or decremented until fulfillment.
type AddLineCommandHandler struct {
	uowFactory LineUoWFactory
}

// NewAddLineCommandHandler creates a handler for line addition.
func NewAddLineCommandHandler(uowFactory LineUoWFactory) AddLineCommandHandler {
	return AddLineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the line addition command. The parent order's totals are
// recomputed by the aggregate before it is persisted.
func (h *AddLineCommandHandler) Handle(ctx context.Context, cmd AddLineCommand) error {
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

	product, err := uow.ProductRepository().GetByCode(ctx, cmd.ProductCode())
	if err != nil {
		return err
	}

	if aggregate.WarehouseID() != nil {
		warehouseID := *aggregate.WarehouseID()
		entry, err := uow.StockRepository().Get(ctx, product.ID(), warehouseID)
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				return errs.NewInsufficientStockError(product.ID(), warehouseID, cmd.Quantity(), 0)
			}
			return err
		}
		if !entry.HasSufficient(cmd.Quantity()) {
			return errs.NewInsufficientStockError(
				product.ID(), warehouseID, cmd.Quantity(), entry.Quantity())
		}
	}

	if _, err = aggregate.AddLine(product, cmd.Quantity(), cmd.Discount(), cmd.Notes()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
