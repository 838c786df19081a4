package commands

import (
	"errors"

	"albarans/internal/pkg/errs"
	"albarans/internal/pkg/guard"
)

var ErrAdjustStockCommandIsNotConstructed = errors.New(
	"AdjustStockCommand must be created via NewAdjustStockCommand constructor",
)

// AdjustStockCommand represents a signed inventory adjustment: a positive
// delta is a goods receipt, a negative delta a manual correction. An
// adjustment that would drive the quantity below zero is rejected.
type AdjustStockCommand struct { //nolint:recvcheck //using for validation
	productCode string
	warehouseID int64
	delta       int

	guard guard.ConstructorGuard
}

// NewAdjustStockCommand creates a command to adjust a stock entry.
func NewAdjustStockCommand(productCode string, warehouseID int64, delta int) (AdjustStockCommand, error) {
	if productCode == "" {
		return AdjustStockCommand{}, errs.NewValueIsRequiredError("product code")
	}
	if warehouseID <= 0 {
		return AdjustStockCommand{}, errs.NewValueIsRequiredError("warehouse id")
	}
	if delta == 0 {
		return AdjustStockCommand{}, errs.NewValueIsInvalidError("delta")
	}

	return AdjustStockCommand{
		productCode: productCode,
		warehouseID: warehouseID,
		delta:       delta,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AdjustStockCommand) Validate() error {
	return c.guard.Validate(ErrAdjustStockCommandIsNotConstructed)
}

// ProductCode returns the code of the adjusted product.
func (c AdjustStockCommand) ProductCode() string {
	return c.productCode
}

// WarehouseID returns the id of the holding warehouse.
func (c AdjustStockCommand) WarehouseID() int64 {
	return c.warehouseID
}

// Delta returns the signed quantity change.
func (c AdjustStockCommand) Delta() int {
	return c.delta
}
