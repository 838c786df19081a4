package commands

import (
	"context"
	"time"

	"albarans/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for opening delivery
// notes. The note number is assigned by the repository inside the same
// transaction as the insert, using the creation year and the database id.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for delivery-note creation.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the order creation command and returns the generated note
// number, e.g. "ALB-2024-007". The order starts Pending with zeroed totals.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	var clientID *int64
	if cmd.ClientCode() != "" {
		c, err := uow.ClientRepository().GetByCode(ctx, cmd.ClientCode())
		if err != nil {
			return "", err
		}
		id := c.ID()
		clientID = &id
	}

	var employeeID *int64
	if cmd.EmployeeCode() != "" {
		e, err := uow.EmployeeRepository().GetByCode(ctx, cmd.EmployeeCode())
		if err != nil {
			return "", err
		}
		id := e.ID()
		employeeID = &id
	}

	var warehouseID *int64
	if cmd.WarehouseID() != 0 {
		id := cmd.WarehouseID()
		warehouseID = &id
	}

	aggregate, err := order.NewOrder(
		clientID, employeeID, warehouseID, h.now(), cmd.DeliveryDate(), cmd.Notes())
	if err != nil {
		return "", err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return aggregate.Number(), nil
}
