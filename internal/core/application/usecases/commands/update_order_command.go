package commands

import (
	"errors"
	"time"

	"albarans/internal/pkg/errs"
	"albarans/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a request to edit a delivery note's header:
// the ordering client, the target delivery date and the notes. Lines are
// edited through their own commands. An empty client code clears the
// reference.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderNumber  string
	clientCode   string
	deliveryDate time.Time
	notes        string

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to edit a delivery note's header.
func NewUpdateOrderCommand(
	orderNumber string,
	clientCode string,
	deliveryDate time.Time,
	notes string,
) (UpdateOrderCommand, error) {
	if orderNumber == "" {
		return UpdateOrderCommand{}, errs.NewValueIsRequiredError("order number")
	}

	return UpdateOrderCommand{
		orderNumber:  orderNumber,
		clientCode:   clientCode,
		deliveryDate: deliveryDate,
		notes:        notes,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderNumber returns the note number to edit.
func (c UpdateOrderCommand) OrderNumber() string {
	return c.orderNumber
}

// ClientCode returns the new client code, or empty to clear the reference.
func (c UpdateOrderCommand) ClientCode() string {
	return c.clientCode
}

// DeliveryDate returns the new target delivery date.
func (c UpdateOrderCommand) DeliveryDate() time.Time {
	return c.deliveryDate
}

// Notes returns the new free-text notes.
func (c UpdateOrderCommand) Notes() string {
	return c.notes
}
