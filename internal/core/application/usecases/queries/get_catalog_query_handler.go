package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCatalogQueryHandler lists product projections from the database.
type GetCatalogQueryHandler struct {
	db *gorm.DB
}

// NewGetCatalogQueryHandler creates a handler for catalog listings.
func NewGetCatalogQueryHandler(db *gorm.DB) GetCatalogQueryHandler {
	return GetCatalogQueryHandler{db: db}
}

// Handle executes the listing, ordered by product code.
func (h GetCatalogQueryHandler) Handle(
	ctx context.Context,
	query GetCatalogQuery,
) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			p.id, p.code, p.name, p.category_id, cat.name,
			p.unit_price, p.unit, p.tax_rate, p.perishable, p.active
		FROM products p
		LEFT JOIN categories cat ON cat.id = p.category_id
		WHERE 1 = 1
	`
	args := []any{}
	if query.ActiveOnly() {
		sql += " AND p.active"
	}
	if query.CategoryID() != 0 {
		sql += " AND p.category_id = ?"
		args = append(args, query.CategoryID())
	}
	sql += " ORDER BY p.code"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]ProductResponse, 0)
	for rows.Next() {
		var product ProductResponse
		if err = rows.Scan(
			&product.ID,
			&product.Code,
			&product.Name,
			&product.CategoryID,
			&product.CategoryName,
			&product.UnitPrice,
			&product.Unit,
			&product.TaxRate,
			&product.Perishable,
			&product.Active,
		); err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
