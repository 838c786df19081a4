package warehouse

import (
	"errors"

	"github.com/shopspring/decimal"

	"albarans/internal/pkg/errs"
	"albarans/internal/pkg/guard"
)

var (
	// ErrWarehouseIsNotConstructed is returned when a Warehouse instance was
	// not created through NewWarehouse or RestoreWarehouse.
	ErrWarehouseIsNotConstructed = errors.New("Warehouse must be created via NewWarehouse constructor")
)

// Warehouse is a physical storage site. Stock entries and orders are bound to
// a warehouse, and preparation/shipping staff may only act on orders of the
// warehouse they are assigned to.
type Warehouse struct {
	id          int64
	name        string
	address     string
	maxCapacity decimal.Decimal
	coldStorage bool
	responsible string

	guard guard.ConstructorGuard
}

// NewWarehouse creates a new Warehouse with validation.
func NewWarehouse(
	name string,
	address string,
	maxCapacity decimal.Decimal,
	coldStorage bool,
	responsible string,
) (*Warehouse, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if maxCapacity.IsNegative() {
		return nil, errs.NewValueIsInvalidError("max capacity")
	}

	return &Warehouse{
		name:        name,
		address:     address,
		maxCapacity: maxCapacity,
		coldStorage: coldStorage,
		responsible: responsible,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreWarehouse reconstructs a Warehouse from persistent storage.
func RestoreWarehouse(
	id int64,
	name string,
	address string,
	maxCapacity decimal.Decimal,
	coldStorage bool,
	responsible string,
) (*Warehouse, error) {
	w, err := NewWarehouse(name, address, maxCapacity, coldStorage, responsible)
	if err != nil {
		return nil, err
	}
	w.id = id
	return w, nil
}

// Validate ensures the Warehouse instance was properly constructed.
func (w *Warehouse) Validate() error {
	if w == nil {
		return ErrWarehouseIsNotConstructed
	}
	return w.guard.Validate(ErrWarehouseIsNotConstructed)
}

// AssignID records the database-assigned identifier after the first insert.
// The identifier is assigned exactly once.
func (w *Warehouse) AssignID(id int64) error {
	if w.id != 0 {
		return errs.NewValueIsInvalidError("warehouse id is already assigned")
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("warehouse id")
	}
	w.id = id
	return nil
}

// ID returns the warehouse's sequential identifier (0 before first persistence).
func (w *Warehouse) ID() int64 {
	return w.id
}

// Name returns the warehouse name.
func (w *Warehouse) Name() string {
	return w.name
}

// Address returns the warehouse address.
func (w *Warehouse) Address() string {
	return w.address
}

// MaxCapacity returns the declared storage capacity.
func (w *Warehouse) MaxCapacity() decimal.Decimal {
	return w.maxCapacity
}

// HasColdStorage reports whether the warehouse has a refrigerated chamber.
func (w *Warehouse) HasColdStorage() bool {
	return w.coldStorage
}

// Responsible returns the identifier of the person in charge of the site.
func (w *Warehouse) Responsible() string {
	return w.responsible
}
