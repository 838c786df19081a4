package commands

import (
	"errors"
	"time"

	"albarans/internal/pkg/errs"
	"albarans/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to open a new delivery note.
// Client and employee are addressed by their public codes, the warehouse by
// id. All three references are optional, but an order without a warehouse
// cannot be fulfilled until one is bound.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("CLI007", "EMP003", 2, deliveryDate, "ring twice")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	number, err := handler.Handle(ctx, cmd)
//	// number == "ALB-2024-007"
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	clientCode   string
	employeeCode string
	warehouseID  int64
	deliveryDate time.Time
	notes        string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open a new delivery note.
// Empty codes and a zero warehouse id mean "no reference".
func NewCreateOrderCommand(
	clientCode string,
	employeeCode string,
	warehouseID int64,
	deliveryDate time.Time,
	notes string,
) (CreateOrderCommand, error) {
	if warehouseID < 0 {
		return CreateOrderCommand{}, errs.NewValueIsInvalidError("warehouse id")
	}

	return CreateOrderCommand{
		clientCode:   clientCode,
		employeeCode: employeeCode,
		warehouseID:  warehouseID,
		deliveryDate: deliveryDate,
		notes:        notes,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// ClientCode returns the ordering client's code, or empty.
func (c CreateOrderCommand) ClientCode() string {
	return c.clientCode
}

// EmployeeCode returns the registering employee's code, or empty.
func (c CreateOrderCommand) EmployeeCode() string {
	return c.employeeCode
}

// WarehouseID returns the shipping warehouse id, or 0.
func (c CreateOrderCommand) WarehouseID() int64 {
	return c.warehouseID
}

// DeliveryDate returns the target delivery date.
func (c CreateOrderCommand) DeliveryDate() time.Time {
	return c.deliveryDate
}

// Notes returns the free-text notes for the note.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}
