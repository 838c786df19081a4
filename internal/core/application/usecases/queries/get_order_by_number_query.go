// Package queries contains read-only operations over the persistent store.
// Implements the Query side of the CQRS architecture: handlers bypass the
// domain aggregates and read projection rows straight from the database.
package queries

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"albarans/internal/pkg/errs"
	"albarans/internal/pkg/guard"
)

var ErrGetOrderByNumberQueryIsNotConstructed = errors.New(
	"GetOrderByNumberQuery must be created via NewGetOrderByNumberQuery constructor",
)

// GetOrderByNumberQuery retrieves one delivery note with its lines by its
// public note number.
//
// Example:
//
//	query, _ := NewGetOrderByNumberQuery("ALB-2024-007")
//	handler := NewGetOrderByNumberQueryHandler(db)
//
//	note, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get note: %w", err)
//	}
//	fmt.Printf("%s: %s, total %s\n", note.Number, note.Status, note.Total)
type GetOrderByNumberQuery struct {
	number string

	guard guard.ConstructorGuard
}

// NewGetOrderByNumberQuery creates a query for one delivery note.
func NewGetOrderByNumberQuery(number string) (GetOrderByNumberQuery, error) {
	if number == "" {
		return GetOrderByNumberQuery{}, errs.NewValueIsRequiredError("order number")
	}
	return GetOrderByNumberQuery{number: number, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByNumberQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByNumberQueryIsNotConstructed)
}

// Number returns the requested note number.
func (q GetOrderByNumberQuery) Number() string {
	return q.number
}

// OrderLineResponse is one line of a delivery note projection.
type OrderLineResponse struct {
	ID          int64
	ProductID   int64
	ProductCode string
	Quantity    int
	UnitPrice   decimal.Decimal
	Discount    decimal.Decimal
	TaxRate     int
	Subtotal    decimal.Decimal
	Notes       string
}

// GetOrderByNumberQueryResponse is the full delivery note projection.
type GetOrderByNumberQueryResponse struct {
	ID           int64
	Number       string
	Status       string
	ClientCode   *string
	WarehouseID  *int64
	CreatedAt    time.Time
	DeliveryDate time.Time
	Notes        string
	Signature    string
	Base         decimal.Decimal
	Tax          decimal.Decimal
	Total        decimal.Decimal
	Lines        []OrderLineResponse
}
