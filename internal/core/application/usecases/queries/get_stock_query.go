package queries

import (
	"errors"
	"time"

	"albarans/internal/pkg/errs"
	"albarans/internal/pkg/guard"
)

var ErrGetStockQueryIsNotConstructed = errors.New(
	"GetStockQuery must be created via NewGetStockQuery constructor",
)

// GetStockQuery retrieves the on-hand quantity of one product at one
// warehouse.
type GetStockQuery struct {
	productCode string
	warehouseID int64

	guard guard.ConstructorGuard
}

// NewGetStockQuery creates a stock lookup query.
func NewGetStockQuery(productCode string, warehouseID int64) (GetStockQuery, error) {
	if productCode == "" {
		return GetStockQuery{}, errs.NewValueIsRequiredError("product code")
	}
	if warehouseID <= 0 {
		return GetStockQuery{}, errs.NewValueIsRequiredError("warehouse id")
	}
	return GetStockQuery{
		productCode: productCode,
		warehouseID: warehouseID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStockQuery) Validate() error {
	return q.guard.Validate(ErrGetStockQueryIsNotConstructed)
}

// ProductCode returns the requested product code.
func (q GetStockQuery) ProductCode() string {
	return q.productCode
}

// WarehouseID returns the requested warehouse id.
func (q GetStockQuery) WarehouseID() int64 {
	return q.warehouseID
}

// GetStockQueryResponse is the stock entry projection.
type GetStockQueryResponse struct {
	ProductID     int64
	ProductCode   string
	WarehouseID   int64
	Quantity      int
	LastEntryDate time.Time
	Location      string
}
