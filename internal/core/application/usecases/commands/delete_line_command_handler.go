package commands

import (
	"context"
)

// DeleteLineCommandHandler handles removal of delivery-note lines.
type DeleteLineCommandHandler struct {
	uowFactory LineUoWFactory
}

// NewDeleteLineCommandHandler creates a handler for line removal.
func NewDeleteLineCommandHandler(uowFactory LineUoWFactory) DeleteLineCommandHandler {
	return DeleteLineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the line removal command. The parent order's totals are
// recomputed by the aggregate before it is persisted.
func (h *DeleteLineCommandHandler) Handle(ctx context.Context, cmd DeleteLineCommand) error {
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

	if err = aggregate.RemoveLine(cmd.LineID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
