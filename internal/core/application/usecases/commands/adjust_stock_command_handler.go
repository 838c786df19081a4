package commands

import (
	"context"
	"errors"
	"time"

	"albarans/internal/core/domain/model/stock"
	"albarans/internal/pkg/errs"
)

// AdjustStockCommandHandler handles signed inventory adjustments. A positive
// delta against a missing (product, warehouse) pair creates the entry; a
// negative delta against a missing pair fails with a NotFound error.
type AdjustStockCommandHandler struct {
	uowFactory StockUoWFactory
	now        func() time.Time
}

// NewAdjustStockCommandHandler creates a handler for stock adjustments.
func NewAdjustStockCommandHandler(uowFactory StockUoWFactory) AdjustStockCommandHandler {
	return AdjustStockCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the stock adjustment command. The adjustment either fully
// commits or leaves the entry untouched.
func (h *AdjustStockCommandHandler) Handle(ctx context.Context, cmd AdjustStockCommand) error {
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

	product, err := uow.ProductRepository().GetByCode(ctx, cmd.ProductCode())
	if err != nil {
		return err
	}

	stockRepo := uow.StockRepository()
	entry, err := stockRepo.Get(ctx, product.ID(), cmd.WarehouseID())
	if err != nil {
		if cmd.Delta() < 0 || !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}
		entry, err = stock.NewStockEntry(product.ID(), cmd.WarehouseID(), 0, h.now(), "")
		if err != nil {
			return err
		}
		if err = entry.Adjust(cmd.Delta(), h.now()); err != nil {
			return err
		}
		if err = stockRepo.Add(ctx, entry); err != nil {
			return err
		}
		return uow.Commit(ctx)
	}

	if err = entry.Adjust(cmd.Delta(), h.now()); err != nil {
		return err
	}

	if err = stockRepo.Update(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
