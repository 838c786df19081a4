package commands

import (
	"context"
)

// EditLineCommandHandler handles edits to existing delivery-note lines.
type EditLineCommandHandler struct {
	uowFactory LineUoWFactory
}

// NewEditLineCommandHandler creates a handler for line edits.
func NewEditLineCommandHandler(uowFactory LineUoWFactory) EditLineCommandHandler {
	return EditLineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the line edit command. The parent order's totals are
// recomputed by the aggregate before it is persisted.
func (h *EditLineCommandHandler) Handle(ctx context.Context, cmd EditLineCommand) error {
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

	if _, err = aggregate.EditLine(
		cmd.LineID(), product, cmd.Quantity(), cmd.Discount(), cmd.Notes()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
