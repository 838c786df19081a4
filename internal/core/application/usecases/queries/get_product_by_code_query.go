package queries

import (
	"errors"

	"github.com/shopspring/decimal"

	"albarans/internal/pkg/errs"
	"albarans/internal/pkg/guard"
)

var ErrGetProductByCodeQueryIsNotConstructed = errors.New(
	"GetProductByCodeQuery must be created via NewGetProductByCodeQuery constructor",
)

// GetProductByCodeQuery retrieves one catalog product by its public code.
type GetProductByCodeQuery struct {
	code string

	guard guard.ConstructorGuard
}

// NewGetProductByCodeQuery creates a query for one product.
func NewGetProductByCodeQuery(code string) (GetProductByCodeQuery, error) {
	if code == "" {
		return GetProductByCodeQuery{}, errs.NewValueIsRequiredError("product code")
	}
	return GetProductByCodeQuery{code: code, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductByCodeQuery) Validate() error {
	return q.guard.Validate(ErrGetProductByCodeQueryIsNotConstructed)
}

// Code returns the requested product code.
func (q GetProductByCodeQuery) Code() string {
	return q.code
}

// ProductResponse is the catalog product projection, shared by the single
// lookup and the catalog listing.
type ProductResponse struct {
	ID           int64
	Code         string
	Name         string
	CategoryID   int64
	CategoryName string
	UnitPrice    decimal.Decimal
	Unit         string
	TaxRate      int
	Perishable   bool
	Active       bool
}
