package queries

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"albarans/internal/core/domain/model/order"
	"albarans/internal/pkg/errs"
	"albarans/internal/pkg/guard"
)

var ErrGetOrdersByWarehouseQueryIsNotConstructed = errors.New(
	"GetOrdersByWarehouseQuery must be created via NewGetOrdersByWarehouseQuery constructor",
)

// GetOrdersByWarehouseQuery lists the delivery notes of one warehouse whose
// status is in the given set. An empty status set means all statuses.
type GetOrdersByWarehouseQuery struct {
	warehouseID int64
	statuses    []order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersByWarehouseQuery creates a query for a warehouse's notes.
func NewGetOrdersByWarehouseQuery(warehouseID int64, statuses []order.Status) (GetOrdersByWarehouseQuery, error) {
	if warehouseID <= 0 {
		return GetOrdersByWarehouseQuery{}, errs.NewValueIsRequiredError("warehouse id")
	}
	for _, s := range statuses {
		if err := s.Validate(); err != nil {
			return GetOrdersByWarehouseQuery{}, err
		}
	}
	return GetOrdersByWarehouseQuery{
		warehouseID: warehouseID,
		statuses:    statuses,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByWarehouseQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByWarehouseQueryIsNotConstructed)
}

// WarehouseID returns the warehouse whose notes are listed.
func (q GetOrdersByWarehouseQuery) WarehouseID() int64 {
	return q.warehouseID
}

// Statuses returns the status filter, possibly empty.
func (q GetOrdersByWarehouseQuery) Statuses() []order.Status {
	return q.statuses
}

// OrderSummaryResponse is a delivery-note row in a listing.
type OrderSummaryResponse struct {
	ID           int64
	Number       string
	Status       string
	DeliveryDate time.Time
	Total        decimal.Decimal
}
