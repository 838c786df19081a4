package commands

import (
	"context"
)

// UpdateOrderCommandHandler handles delivery-note header edits. The edit is
// refused once the note has shipped; the aggregate enforces that rule.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for header edits.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the header edit command. Totals and lines are untouched.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
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

	var clientID *int64
	if cmd.ClientCode() != "" {
		c, err := uow.ClientRepository().GetByCode(ctx, cmd.ClientCode())
		if err != nil {
			return err
		}
		id := c.ID()
		clientID = &id
	}

	if err = aggregate.UpdateHeader(clientID, cmd.DeliveryDate(), cmd.Notes()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
