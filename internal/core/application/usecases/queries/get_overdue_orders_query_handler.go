package queries

import (
	"context"

	"gorm.io/gorm"

	"albarans/internal/core/domain/model/order"
)

// GetOverdueOrdersQueryHandler lists delivery notes past their target
// delivery date that are neither delivered nor cancelled.
type GetOverdueOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOverdueOrdersQueryHandler creates a handler for overdue listings.
func NewGetOverdueOrdersQueryHandler(db *gorm.DB) GetOverdueOrdersQueryHandler {
	return GetOverdueOrdersQueryHandler{db: db}
}

// Handle executes the listing, most overdue first.
func (h GetOverdueOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueOrdersQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, number, status, delivery_date, total
		FROM orders
		WHERE delivery_date < ?
		  AND status NOT IN (?, ?)
		ORDER BY delivery_date
	`, query.AsOf(), order.StatusDelivered.String(), order.StatusCancelled.String()).Rows()
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
