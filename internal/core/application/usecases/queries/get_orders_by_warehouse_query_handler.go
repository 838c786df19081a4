package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersByWarehouseQueryHandler lists delivery-note summaries for one
// warehouse, newest first.
type GetOrdersByWarehouseQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByWarehouseQueryHandler creates a handler for warehouse note
// listings.
func NewGetOrdersByWarehouseQueryHandler(db *gorm.DB) GetOrdersByWarehouseQueryHandler {
	return GetOrdersByWarehouseQueryHandler{db: db}
}

// Handle executes the listing. An empty status filter returns every note of
// the warehouse.
func (h GetOrdersByWarehouseQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByWarehouseQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT id, number, status, delivery_date, total
		FROM orders
		WHERE warehouse_id = ?
	`
	args := []any{query.WarehouseID()}

	if len(query.Statuses()) > 0 {
		names := make([]string, 0, len(query.Statuses()))
		for _, s := range query.Statuses() {
			names = append(names, s.String())
		}
		sql += " AND status IN ?"
		args = append(args, names)
	}
	sql += " ORDER BY created_at DESC, id DESC"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]OrderSummaryResponse, 0)
	for rows.Next() {
		var summary OrderSummaryResponse
		if err = rows.Scan(
			&summary.ID,
			&summary.Number,
			&summary.Status,
			&summary.DeliveryDate,
			&summary.Total,
		); err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
