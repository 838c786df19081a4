package commands

import (
	"context"

	"albarans/internal/core/domain/model/order"
	"albarans/internal/pkg/errs"
)

// ChangeOrderStatusCommandHandler handles lifecycle transitions other than
// shipping. Transition legality is enforced by the aggregate's state
// machine; this handler adds the warehouse authorization check when the
// order moves into preparation.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for status changes.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command. No state is persisted when the
// transition or the authorization check fails.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	if cmd.Target() == order.StatusInPreparation {
		actor, err := uow.EmployeeRepository().GetByCode(ctx, cmd.ActorCode())
		if err != nil {
			return err
		}
		if aggregate.WarehouseID() == nil || !actor.WorksAt(*aggregate.WarehouseID()) {
			return errs.NewNotAuthorizedError(
				actor.Code(), "employee is not assigned to the order's warehouse")
		}
	}

	if err = aggregate.Transition(cmd.Target()); err != nil {
		return err
	}

	if cmd.Target() == order.StatusDelivered && cmd.Signature() != "" {
		aggregate.AttachSignature(cmd.Signature())
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
