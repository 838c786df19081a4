package commands

import (
	"errors"

	"albarans/internal/core/domain/model/order"
	"albarans/internal/pkg/errs"
	"albarans/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents a request to move a delivery note
// through its lifecycle: into preparation, to delivered, or cancelled.
// Shipping is not reachable through this command; the fulfillment workflow
// is the only path into the Shipped status.
//
// Moving an order into preparation is a warehouse operation, so the acting
// employee's code is required for that target and checked against the
// order's warehouse. A client signature may accompany the transition to
// Delivered.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderNumber string
	target      order.Status
	actorCode   string
	signature   string

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to change an order's status.
// The actor code may be empty unless the target is InPreparation.
func NewChangeOrderStatusCommand(
	orderNumber string,
	target order.Status,
	actorCode string,
	signature string,
) (ChangeOrderStatusCommand, error) {
	if orderNumber == "" {
		return ChangeOrderStatusCommand{}, errs.NewValueIsRequiredError("order number")
	}
	if err := target.Validate(); err != nil {
		return ChangeOrderStatusCommand{}, err
	}
	if target == order.StatusInPreparation && actorCode == "" {
		return ChangeOrderStatusCommand{}, errs.NewValueIsRequiredError("actor code")
	}

	return ChangeOrderStatusCommand{
		orderNumber: orderNumber,
		target:      target,
		actorCode:   actorCode,
		signature:   signature,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderNumber returns the note number to transition.
func (c ChangeOrderStatusCommand) OrderNumber() string {
	return c.orderNumber
}

// Target returns the requested lifecycle status.
func (c ChangeOrderStatusCommand) Target() order.Status {
	return c.target
}

// ActorCode returns the acting employee's code, or empty.
func (c ChangeOrderStatusCommand) ActorCode() string {
	return c.actorCode
}

// Signature returns the client's delivery signature, or empty.
func (c ChangeOrderStatusCommand) Signature() string {
	return c.signature
}
