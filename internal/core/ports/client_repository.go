// Package ports defines repository interfaces for the delivery-note domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"albarans/internal/core/domain/model/client"
)

// ClientRepository defines the persistence contract for client aggregates.
type ClientRepository interface {
	// Add persists a new client and assigns its sequential code in the same
	// transaction (insert, read back the id, patch the code).
	Add(ctx context.Context, aggregate *client.Client) error

	// Update persists changes to an existing client. The code is immutable
	// and never rewritten.
	Update(ctx context.Context, aggregate *client.Client) error

	// Get retrieves a client by its database identifier.
	Get(ctx context.Context, id int64) (*client.Client, error)

	// GetByCode retrieves a client by its unique code, e.g. "CLI007".
	GetByCode(ctx context.Context, code string) (*client.Client, error)
}
