package queries

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"albarans/internal/pkg/errs"
)

// GetStockQueryHandler reads one stock entry projection from the database.
type GetStockQueryHandler struct {
	db *gorm.DB
}

// NewGetStockQueryHandler creates a handler for stock lookups.
func NewGetStockQueryHandler(db *gorm.DB) GetStockQueryHandler {
	return GetStockQueryHandler{db: db}
}

// Handle executes the lookup. Fails with a NotFound error when no entry
// exists for the (product, warehouse) pair.
func (h GetStockQueryHandler) Handle(
	ctx context.Context,
	query GetStockQuery,
) (GetStockQueryResponse, error) {
	var response GetStockQueryResponse
	if err := query.Validate(); err != nil {
		return response, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			s.product_id, p.code, s.warehouse_id, s.quantity,
			s.last_entry_date, s.location
		FROM stock_entries s
		JOIN products p ON p.id = s.product_id
		WHERE p.code = ? AND s.warehouse_id = ?
	`, query.ProductCode(), query.WarehouseID()).Row()

	err := row.Scan(
		&response.ProductID,
		&response.ProductCode,
		&response.WarehouseID,
		&response.Quantity,
		&response.LastEntryDate,
		&response.Location,
	)
	if err != nil {
		return GetStockQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
			"stock entry",
			fmt.Sprintf("%s@%d", query.ProductCode(), query.WarehouseID()),
			err,
		)
	}

	return response, nil
}
