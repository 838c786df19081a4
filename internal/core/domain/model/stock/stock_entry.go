package stock

import (
	"errors"
	"time"

	"albarans/internal/pkg/errs"
	"albarans/internal/pkg/guard"
)

var (
	// ErrStockEntryIsNotConstructed is returned when a StockEntry instance was
	// not created through NewStockEntry or RestoreStockEntry.
	ErrStockEntryIsNotConstructed = errors.New("StockEntry must be created via NewStockEntry constructor")
)

// StockEntry is the on-hand quantity of one product in one warehouse. The
// (product, warehouse) pair is unique, and the quantity is never negative:
// any adjustment that would drive it below zero is rejected outright rather
// than clamped.
type StockEntry struct {
	id            int64
	productID     int64
	warehouseID   int64
	quantity      int
	lastEntryDate time.Time
	location      string

	guard guard.ConstructorGuard
}

// NewStockEntry creates a new StockEntry with validation.
func NewStockEntry(
	productID int64,
	warehouseID int64,
	quantity int,
	lastEntryDate time.Time,
	location string,
) (*StockEntry, error) {
	if productID <= 0 {
		return nil, errs.NewValueIsRequiredError("product id")
	}
	if warehouseID <= 0 {
		return nil, errs.NewValueIsRequiredError("warehouse id")
	}
	if quantity < 0 {
		return nil, errs.NewValueIsOutOfRangeError("quantity", quantity, 0, nil)
	}

	return &StockEntry{
		productID:     productID,
		warehouseID:   warehouseID,
		quantity:      quantity,
		lastEntryDate: lastEntryDate,
		location:      location,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// RestoreStockEntry reconstructs a StockEntry from persistent storage.
func RestoreStockEntry(
	id int64,
	productID int64,
	warehouseID int64,
	quantity int,
	lastEntryDate time.Time,
	location string,
) (*StockEntry, error) {
	s, err := NewStockEntry(productID, warehouseID, quantity, lastEntryDate, location)
	if err != nil {
		return nil, err
	}
	s.id = id
	return s, nil
}

// Validate ensures the StockEntry instance was properly constructed.
func (s *StockEntry) Validate() error {
	if s == nil {
		return ErrStockEntryIsNotConstructed
	}
	return s.guard.Validate(ErrStockEntryIsNotConstructed)
}

// AssignID records the database-assigned identifier after the first insert.
// The identifier is assigned exactly once.
func (s *StockEntry) AssignID(id int64) error {
	if s.id != 0 {
		return errs.NewValueIsInvalidError("stock entry id is already assigned")
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("stock entry id")
	}
	s.id = id
	return nil
}

// Adjust applies a signed delta to the on-hand quantity. A positive delta is
// a goods receipt and refreshes the last entry date. A negative delta that
// would leave the quantity below zero fails with an insufficient stock error
// and leaves the entry unchanged.
func (s *StockEntry) Adjust(delta int, now time.Time) error {
	next := s.quantity + delta
	if next < 0 {
		return errs.NewInsufficientStockError(s.productID, s.warehouseID, -delta, s.quantity)
	}
	s.quantity = next
	if delta > 0 {
		s.lastEntryDate = now
	}
	return nil
}

// HasSufficient reports whether at least qty units are on hand.
func (s *StockEntry) HasSufficient(qty int) bool {
	return s.quantity >= qty
}

// Consume removes qty units for an outgoing order. It fails with an
// insufficient stock error when fewer than qty units are on hand.
func (s *StockEntry) Consume(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}
	if s.quantity < qty {
		return errs.NewInsufficientStockError(s.productID, s.warehouseID, qty, s.quantity)
	}
	s.quantity -= qty
	return nil
}

// Relocate changes the shelf location inside the warehouse.
func (s *StockEntry) Relocate(location string) {
	s.location = location
}

// ID returns the entry's sequential identifier (0 before first persistence).
func (s *StockEntry) ID() int64 {
	return s.id
}

// ProductID returns the identifier of the stocked product.
func (s *StockEntry) ProductID() int64 {
	return s.productID
}

// WarehouseID returns the identifier of the holding warehouse.
func (s *StockEntry) WarehouseID() int64 {
	return s.warehouseID
}

// Quantity returns the current on-hand quantity.
func (s *StockEntry) Quantity() int {
	return s.quantity
}

// LastEntryDate returns the timestamp of the most recent goods receipt.
func (s *StockEntry) LastEntryDate() time.Time {
	return s.lastEntryDate
}

// Location returns the shelf location inside the warehouse.
func (s *StockEntry) Location() string {
	return s.location
}
