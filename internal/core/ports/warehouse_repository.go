package ports

import (
	"context"

	"albarans/internal/core/domain/model/warehouse"
)

// WarehouseRepository defines the persistence contract for warehouses.
type WarehouseRepository interface {
	// Add persists a new warehouse.
	Add(ctx context.Context, aggregate *warehouse.Warehouse) error

	// Get retrieves a warehouse by its database identifier.
	Get(ctx context.Context, id int64) (*warehouse.Warehouse, error)
}

// EmployeeRepository defines the persistence contract for warehouse staff.
type EmployeeRepository interface {
	// Add persists a new employee and assigns its sequential code in the
	// same transaction.
	Add(ctx context.Context, aggregate *warehouse.Employee) error

	// Update persists changes to an existing employee, including warehouse
	// reassignment.
	Update(ctx context.Context, aggregate *warehouse.Employee) error

	// Get retrieves an employee by its database identifier.
	Get(ctx context.Context, id int64) (*warehouse.Employee, error)

	// GetByCode retrieves an employee by its unique code, e.g. "EMP003".
	GetByCode(ctx context.Context, code string) (*warehouse.Employee, error)
}
