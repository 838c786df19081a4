package queries

import (
	"context"

	"gorm.io/gorm"

	"albarans/internal/pkg/errs"
)

// GetProductByCodeQueryHandler reads one product projection from the
// database.
type GetProductByCodeQueryHandler struct {
	db *gorm.DB
}

// NewGetProductByCodeQueryHandler creates a handler for product lookups.
func NewGetProductByCodeQueryHandler(db *gorm.DB) GetProductByCodeQueryHandler {
	return GetProductByCodeQueryHandler{db: db}
}

// Handle executes the lookup. Fails with a NotFound error when no product
// carries the requested code.
func (h GetProductByCodeQueryHandler) Handle(
	ctx context.Context,
	query GetProductByCodeQuery,
) (ProductResponse, error) {
	var response ProductResponse
	if err := query.Validate(); err != nil {
		return response, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id, p.code, p.name, p.category_id, cat.name,
			p.unit_price, p.unit, p.tax_rate, p.perishable, p.active
		FROM products p
		LEFT JOIN categories cat ON cat.id = p.category_id
		WHERE p.code = ?
	`, query.Code()).Row()

	err := row.Scan(
		&response.ID,
		&response.Code,
		&response.Name,
		&response.CategoryID,
		&response.CategoryName,
		&response.UnitPrice,
		&response.Unit,
		&response.TaxRate,
		&response.Perishable,
		&response.Active,
	)
	if err != nil {
		return ProductResponse{},
			errs.NewObjectNotFoundErrorWithCause("product code", query.Code(), err)
	}

	return response, nil
}
