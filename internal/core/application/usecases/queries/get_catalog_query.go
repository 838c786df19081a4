package queries

import (
	"errors"

	"albarans/internal/pkg/guard"
)

var ErrGetCatalogQueryIsNotConstructed = errors.New(
	"GetCatalogQuery must be created via NewGetCatalogQuery constructor",
)

// GetCatalogQuery lists catalog products, optionally filtered by category
// and restricted to active products.
type GetCatalogQuery struct {
	activeOnly bool
	categoryID int64

	guard guard.ConstructorGuard
}

// NewGetCatalogQuery creates a catalog listing query. A categoryID of 0
// means all categories.
func NewGetCatalogQuery(activeOnly bool, categoryID int64) GetCatalogQuery {
	return GetCatalogQuery{
		activeOnly: activeOnly,
		categoryID: categoryID,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetCatalogQuery) Validate() error {
	return q.guard.Validate(ErrGetCatalogQueryIsNotConstructed)
}

// ActiveOnly reports whether inactive products are excluded.
func (q GetCatalogQuery) ActiveOnly() bool {
	return q.activeOnly
}

// CategoryID returns the category filter, or 0 for all categories.
func (q GetCatalogQuery) CategoryID() int64 {
	return q.categoryID
}
