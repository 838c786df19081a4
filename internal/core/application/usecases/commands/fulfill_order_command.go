package commands

import (
	"errors"

	"albarans/internal/pkg/errs"
	"albarans/internal/pkg/guard"
)

var ErrFulfillOrderCommandIsNotConstructed = errors.New(
	"FulfillOrderCommand must be created via NewFulfillOrderCommand constructor",
)

// FulfillOrderCommand represents a request to ship a delivery note,
// consuming stock at the order's warehouse. The acting employee must be
// assigned to that warehouse.
//
// Example:
//
//	cmd, err := NewFulfillOrderCommand("ALB-2024-007", "EMP003")
//	if err != nil {
//	    return fmt.Errorf("invalid fulfillment request: %w", err)
//	}
//
//	handler := NewFulfillOrderCommandHandler(uowFactory, services.NewFulfillmentService())
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("fulfillment failed: %w", err)
//	}
//	// Order is now Shipped and stock is decremented
type FulfillOrderCommand struct { //nolint:recvcheck //using for validation
	orderNumber string
	actorCode   string

	guard guard.ConstructorGuard
}

// NewFulfillOrderCommand creates a command to ship a delivery note.
func NewFulfillOrderCommand(orderNumber, actorCode string) (FulfillOrderCommand, error) {
	if orderNumber == "" {
		return FulfillOrderCommand{}, errs.NewValueIsRequiredError("order number")
	}
	if actorCode == "" {
		return FulfillOrderCommand{}, errs.NewValueIsRequiredError("actor code")
	}

	return FulfillOrderCommand{
		orderNumber: orderNumber,
		actorCode:   actorCode,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c FulfillOrderCommand) Validate() error {
	return c.guard.Validate(ErrFulfillOrderCommandIsNotConstructed)
}

// OrderNumber returns the note number to ship.
func (c FulfillOrderCommand) OrderNumber() string {
	return c.orderNumber
}

// ActorCode returns the shipping employee's code.
func (c FulfillOrderCommand) ActorCode() string {
	return c.actorCode
}
