package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"albarans/internal/pkg/errs"
	"albarans/internal/pkg/guard"
)

var ErrEditLineCommandIsNotConstructed = errors.New(
	"EditLineCommand must be created via NewEditLineCommand constructor",
)

// EditLineCommand represents a request to change an existing line on a
// delivery note. The unit price and tax rate are refreshed from the current
// product state when the edit is saved.
type EditLineCommand struct { //nolint:recvcheck //using for validation
	orderNumber string
	lineID      int64
	productCode string
	quantity    int
	discount    decimal.Decimal
	notes       string

	guard guard.ConstructorGuard
}

// NewEditLineCommand creates a command to edit a delivery-note line.
func NewEditLineCommand(
	orderNumber string,
	lineID int64,
	productCode string,
	quantity int,
	discount decimal.Decimal,
	notes string,
) (EditLineCommand, error) {
	if orderNumber == "" {
		return EditLineCommand{}, errs.NewValueIsRequiredError("order number")
	}
	if lineID <= 0 {
		return EditLineCommand{}, errs.NewValueIsRequiredError("line id")
	}
	if productCode == "" {
		return EditLineCommand{}, errs.NewValueIsRequiredError("product code")
	}
	if quantity <= 0 {
		return EditLineCommand{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, nil)
	}

	return EditLineCommand{
		orderNumber: orderNumber,
		lineID:      lineID,
		productCode: productCode,
		quantity:    quantity,
		discount:    discount,
		notes:       notes,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c EditLineCommand) Validate() error {
	return c.guard.Validate(ErrEditLineCommandIsNotConstructed)
}

// OrderNumber returns the note number the line belongs to.
func (c EditLineCommand) OrderNumber() string {
	return c.orderNumber
}

// LineID returns the identifier of the line to edit.
func (c EditLineCommand) LineID() int64 {
	return c.lineID
}

// ProductCode returns the code of the product the line should reference.
func (c EditLineCommand) ProductCode() string {
	return c.productCode
}

// Quantity returns the new quantity.
func (c EditLineCommand) Quantity() int {
	return c.quantity
}

// Discount returns the new discount percentage.
func (c EditLineCommand) Discount() decimal.Decimal {
	return c.discount
}

// Notes returns the new line notes.
func (c EditLineCommand) Notes() string {
	return c.notes
}
