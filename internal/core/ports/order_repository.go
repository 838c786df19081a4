package ports

import (
	"context"

	"albarans/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for delivery-note
// aggregates. Orders are stored together with their line items.
type OrderRepository interface {
	// Add persists a new order and assigns its note number in the same
	// transaction (insert, read back the id, patch the number).
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order and its lines. Lines
	// removed from the aggregate are deleted from storage.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its lines by database identifier.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetByNumber retrieves an order with its lines by its note number,
	// e.g. "ALB-2024-007".
	GetByNumber(ctx context.Context, number string) (*order.Order, error)

	// GetByWarehouseAndStatuses retrieves the orders of one warehouse whose
	// status is in the given set, newest first.
	GetByWarehouseAndStatuses(ctx context.Context, warehouseID int64, statuses []order.Status) ([]*order.Order, error)
}
