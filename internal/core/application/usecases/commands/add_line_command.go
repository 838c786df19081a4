package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"albarans/internal/pkg/errs"
	"albarans/internal/pkg/guard"
)

var ErrAddLineCommandIsNotConstructed = errors.New(
	"AddLineCommand must be created via NewAddLineCommand constructor",
)

// AddLineCommand represents a request to add a product line to a delivery
// note. The current product price and tax rate are snapshotted into the
// line; stock at the order's warehouse is prechecked but not decremented.
type AddLineCommand struct { //nolint:recvcheck //using for validation
	orderNumber string
	productCode string
	quantity    int
	discount    decimal.Decimal
	notes       string

	guard guard.ConstructorGuard
}

// NewAddLineCommand creates a command to add a line to a delivery note.
// The discount is a percentage in [0, 100]; quantity must be positive.
func NewAddLineCommand(
	orderNumber string,
	productCode string,
	quantity int,
	discount decimal.Decimal,
	notes string,
) (AddLineCommand, error) {
	lineCommand := AddLineCommand{
		discount: discount,
		notes:    notes,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		lineCommand.setOrderNumber(orderNumber),
		lineCommand.setProductCode(productCode),
		lineCommand.setQuantity(quantity),
	); err != nil {
		return AddLineCommand{}, err
	}

	return lineCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddLineCommand) Validate() error {
	return c.guard.Validate(ErrAddLineCommandIsNotConstructed)
}

// OrderNumber returns the note number the line is added to.
func (c AddLineCommand) OrderNumber() string {
	return c.orderNumber
}

// ProductCode returns the code of the ordered product.
func (c AddLineCommand) ProductCode() string {
	return c.productCode
}

// Quantity returns the ordered quantity.
func (c AddLineCommand) Quantity() int {
	return c.quantity
}

// Discount returns the discount percentage.
func (c AddLineCommand) Discount() decimal.Decimal {
	return c.discount
}

// Notes returns the free-text notes for the line.
func (c AddLineCommand) Notes() string {
	return c.notes
}

func (c *AddLineCommand) setOrderNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	c.orderNumber = number
	return nil
}

func (c *AddLineCommand) setProductCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("product code")
	}
	c.productCode = code
	return nil
}

func (c *AddLineCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, nil)
	}
	c.quantity = quantity
	return nil
}
