package commands

import (
	"errors"

	"albarans/internal/pkg/errs"
	"albarans/internal/pkg/guard"
)

var ErrDeleteLineCommandIsNotConstructed = errors.New(
	"DeleteLineCommand must be created via NewDeleteLineCommand constructor",
)

// DeleteLineCommand represents a request to remove a line from a delivery
// note.
type DeleteLineCommand struct { //nolint:recvcheck //using for validation
	orderNumber string
	lineID      int64

	guard guard.ConstructorGuard
}

// NewDeleteLineCommand creates a command to remove a delivery-note line.
func NewDeleteLineCommand(orderNumber string, lineID int64) (DeleteLineCommand, error) {
	if orderNumber == "" {
		return DeleteLineCommand{}, errs.NewValueIsRequiredError("order number")
	}
	if lineID <= 0 {
		return DeleteLineCommand{}, errs.NewValueIsRequiredError("line id")
	}

	return DeleteLineCommand{
		orderNumber: orderNumber,
		lineID:      lineID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteLineCommand) Validate() error {
	return c.guard.Validate(ErrDeleteLineCommandIsNotConstructed)
}

// OrderNumber returns the note number the line belongs to.
func (c DeleteLineCommand) OrderNumber() string {
	return c.orderNumber
}

// LineID returns the identifier of the line to remove.
func (c DeleteLineCommand) LineID() int64 {
	return c.lineID
}
