package ports

import (
	"context"

	"albarans/internal/core/domain/model/catalog"
)

// ProductRepository defines the persistence contract for catalog products.
type ProductRepository interface {
	// Add persists a new product and assigns its sequential code in the same
	// transaction.
	Add(ctx context.Context, aggregate *catalog.Product) error

	// Update persists changes to an existing product.
	Update(ctx context.Context, aggregate *catalog.Product) error

	// Get retrieves a product by its database identifier.
	Get(ctx context.Context, id int64) (*catalog.Product, error)

	// GetByCode retrieves a product by its unique code, e.g. "BEB012".
	GetByCode(ctx context.Context, code string) (*catalog.Product, error)
}

// CategoryRepository defines the persistence contract for product categories.
type CategoryRepository interface {
	// Add persists a new category.
	Add(ctx context.Context, aggregate *catalog.Category) error

	// Get retrieves a category by its database identifier.
	Get(ctx context.Context, id int64) (*catalog.Category, error)
}
