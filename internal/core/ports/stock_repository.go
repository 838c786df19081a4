package ports

import (
	"context"

	"albarans/internal/core/domain/model/stock"
)

// StockRepository defines the persistence contract for the inventory ledger.
type StockRepository interface {
	// Add persists a new stock entry. The (product, warehouse) pair is
	// unique across the ledger.
	Add(ctx context.Context, aggregate *stock.StockEntry) error

	// Update persists a quantity or location change on an existing entry.
	Update(ctx context.Context, aggregate *stock.StockEntry) error

	// Get retrieves the entry for a (product, warehouse) pair. Fails with a
	// NotFound error when no entry exists for the pair.
	Get(ctx context.Context, productID, warehouseID int64) (*stock.StockEntry, error)

	// GetForUpdate retrieves the entries of the given products at one
	// warehouse with row-level locks held until the surrounding transaction
	// ends. Entries are locked in ascending product id order to keep
	// concurrent fulfillments deadlock free.
	GetForUpdate(ctx context.Context, warehouseID int64, productIDs []int64) (map[int64]*stock.StockEntry, error)
}
