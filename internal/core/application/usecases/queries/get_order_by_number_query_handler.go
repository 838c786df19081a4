package queries

import (
	"context"

	"gorm.io/gorm"

	"albarans/internal/pkg/errs"
)

// GetOrderByNumberQueryHandler reads one delivery note projection from the
// database, including its lines with subtotals computed in SQL.
type GetOrderByNumberQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByNumberQueryHandler creates a handler for note lookups.
func NewGetOrderByNumberQueryHandler(db *gorm.DB) GetOrderByNumberQueryHandler {
	return GetOrderByNumberQueryHandler{db: db}
}

// Handle executes the lookup. Fails with a NotFound error when no note
// carries the requested number.
func (h GetOrderByNumberQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByNumberQuery,
) (GetOrderByNumberQueryResponse, error) {
	var response GetOrderByNumberQueryResponse
	if err := query.Validate(); err != nil {
		return response, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.number,
			o.status,
			c.code,
			o.warehouse_id,
			o.created_at,
			o.delivery_date,
			o.notes,
			o.signature,
			o.base,
			o.tax,
			o.total
		FROM orders o
		LEFT JOIN clients c ON c.id = o.client_id
		WHERE o.number = ?
	`, query.Number()).Row()

	err := row.Scan(
		&response.ID,
		&response.Number,
		&response.Status,
		&response.ClientCode,
		&response.WarehouseID,
		&response.CreatedAt,
		&response.DeliveryDate,
		&response.Notes,
		&response.Signature,
		&response.Base,
		&response.Tax,
		&response.Total,
	)
	if err != nil {
		return GetOrderByNumberQueryResponse{},
			errs.NewObjectNotFoundErrorWithCause("order number", query.Number(), err)
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			l.id,
			l.product_id,
			p.code,
			l.quantity,
			l.unit_price,
			l.discount,
			l.tax_rate,
			l.quantity * l.unit_price * (1 - l.discount / 100) AS subtotal,
			l.notes
		FROM line_items l
		LEFT JOIN products p ON p.id = l.product_id
		WHERE l.order_id = ?
		ORDER BY l.id
	`, response.ID).Rows()
	if err != nil {
		return GetOrderByNumberQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var line OrderLineResponse
		var productCode *string
		if err = rows.Scan(
			&line.ID,
			&line.ProductID,
			&productCode,
			&line.Quantity,
			&line.UnitPrice,
			&line.Discount,
			&line.TaxRate,
			&line.Subtotal,
			&line.Notes,
		); err != nil {
			return GetOrderByNumberQueryResponse{}, err
		}
		if productCode != nil {
			line.ProductCode = *productCode
		}
		response.Lines = append(response.Lines, line)
	}
	if err = rows.Err(); err != nil {
		return GetOrderByNumberQueryResponse{}, err
	}

	return response, nil
}
