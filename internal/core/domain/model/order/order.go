package order

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"albarans/internal/core/domain/model/catalog"
	"albarans/internal/core/domain/model/kernel"
	"albarans/internal/pkg/errs"
	"albarans/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderNumberIsAssigned is returned when a number is assigned to an
	// order that already has one.
	ErrOrderNumberIsAssigned = errors.New("order number is already assigned")

	// ErrOrderIsNotEditable is returned when a line or header mutation is
	// attempted on an order that has already been shipped, delivered or
	// cancelled.
	ErrOrderIsNotEditable = errors.New("order can no longer be edited")
)

// Order represents a delivery note (albaran) in the system. It is the
// aggregate root that exclusively owns its line items and manages the
// lifecycle from creation through preparation and shipping to delivery.
//
// Order follows these invariants:
//   - The note number is derived from the database id and assigned exactly once
//   - Line items are only reachable and mutable through the aggregate root
//   - Lines can be mutated only before the order is shipped
//   - The three monetary totals are always recomputed from the lines,
//     never edited independently
//   - Status transitions follow the lifecycle state machine in Status
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id           int64
	number       string
	clientID     *int64
	employeeID   *int64
	warehouseID  *int64
	createdAt    time.Time
	deliveryDate time.Time
	status       Status
	notes        string
	signature    string
	base         kernel.Money
	tax          kernel.Money
	total        kernel.Money
	lines        []*LineItem

	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in the Pending status with zeroed totals and
// no lines. The note number is not known until the first insert, see
// AssignNumber.
//
// Client, employee and warehouse references are all optional. An order
// without a warehouse skips stock prechecks on line addition and cannot be
// fulfilled until one is bound.
func NewOrder(
	clientID *int64,
	employeeID *int64,
	warehouseID *int64,
	createdAt time.Time,
	deliveryDate time.Time,
	notes string,
) (*Order, error) {
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("created at")
	}
	if err := errors.Join(
		validateOptionalID("client id", clientID),
		validateOptionalID("employee id", employeeID),
		validateOptionalID("warehouse id", warehouseID),
	); err != nil {
		return nil, err
	}

	return &Order{
		clientID:     clientID,
		employeeID:   employeeID,
		warehouseID:  warehouseID,
		createdAt:    createdAt,
		deliveryDate: deliveryDate,
		status:       StatusPending,
		notes:        notes,
		base:         kernel.ZeroMoney(),
		tax:          kernel.ZeroMoney(),
		total:        kernel.ZeroMoney(),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrder reconstructs an Order and its lines from persistent storage.
// Stored totals are trusted as-is and not recomputed here.
func RestoreOrder(
	id int64,
	number string,
	clientID *int64,
	employeeID *int64,
	warehouseID *int64,
	createdAt time.Time,
	deliveryDate time.Time,
	status Status,
	notes string,
	signature string,
	base kernel.Money,
	tax kernel.Money,
	total kernel.Money,
	lines []*LineItem,
) (*Order, error) {
	o, err := NewOrder(clientID, employeeID, warehouseID, createdAt, deliveryDate, notes)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	o.id = id
	o.number = number
	o.status = status
	o.signature = signature
	o.base = base
	o.tax = tax
	o.total = total
	o.lines = lines
	return o, nil
}

func validateOptionalID(paramName string, id *int64) error {
	if id != nil && *id <= 0 {
		return errs.NewValueIsInvalidError(paramName)
	}
	return nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// AssignNumber derives the note number from the database-assigned identifier
// and the creation year, e.g. id 7 created in 2024 yields "ALB-2024-007".
// The number is assigned exactly once.
func (o *Order) AssignNumber(id int64) error {
	if o.number != "" {
		return ErrOrderNumberIsAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("order id")
	}
	o.id = id
	o.number = kernel.OrderNumber(o.createdAt.Year(), id)
	return nil
}

// AddLine appends a line for the given product, snapshotting its current
// unit price and tax rate, and recomputes the totals. Stock sufficiency at
// the order's warehouse is the caller's concern and is checked before this
// method is invoked.
func (o *Order) AddLine(
	product *catalog.Product,
	quantity int,
	discount decimal.Decimal,
	notes string,
) (*LineItem, error) {
	if err := o.checkEditable(); err != nil {
		return nil, err
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}

	line, err := NewLineItem(product.ID(), quantity, product.UnitPrice(), discount, product.TaxRate(), notes)
	if err != nil {
		return nil, err
	}

	o.lines = append(o.lines, line)
	o.RecomputeTotals()
	return line, nil
}

// EditLine updates an existing line and recomputes the totals. The unit
// price and tax rate are refreshed from the current product state, so a
// catalog price change since the line was added leaks into the edit.
func (o *Order) EditLine(
	lineID int64,
	product *catalog.Product,
	quantity int,
	discount decimal.Decimal,
	notes string,
) (*LineItem, error) {
	if err := o.checkEditable(); err != nil {
		return nil, err
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}

	line, err := o.findLine(lineID)
	if err != nil {
		return nil, err
	}

	replacement, err := RestoreLineItem(
		line.ID(), product.ID(), quantity, product.UnitPrice(), discount, product.TaxRate(), notes)
	if err != nil {
		return nil, err
	}

	*line = *replacement
	o.RecomputeTotals()
	return line, nil
}

// RemoveLine deletes a line from the order and recomputes the totals.
func (o *Order) RemoveLine(lineID int64) error {
	if err := o.checkEditable(); err != nil {
		return err
	}

	for i, line := range o.lines {
		if line.ID() == lineID {
			o.lines = append(o.lines[:i], o.lines[i+1:]...)
			o.RecomputeTotals()
			return nil
		}
	}
	return errs.NewObjectNotFoundError("line id", lineID)
}

// UpdateHeader replaces the order's client reference, target delivery date
// and notes. Allowed only while the order is editable; lines and totals are
// untouched.
func (o *Order) UpdateHeader(clientID *int64, deliveryDate time.Time, notes string) error {
	if err := o.checkEditable(); err != nil {
		return err
	}
	if err := validateOptionalID("client id", clientID); err != nil {
		return err
	}
	o.clientID = clientID
	o.deliveryDate = deliveryDate
	o.notes = notes
	return nil
}

// RecomputeTotals rederives the three monetary fields from the current
// lines:
//
//	base  = sum of line subtotals
//	tax   = sum of line subtotal x line tax rate
//	total = base + tax
//
// The computation is idempotent: calling it twice with unchanged lines
// yields identical values. Rounding to cents happens only at persistence.
func (o *Order) RecomputeTotals() {
	base := kernel.ZeroMoney()
	tax := kernel.ZeroMoney()
	for _, line := range o.lines {
		base = base.Add(line.Subtotal())
		tax = tax.Add(line.Tax())
	}
	o.base = base
	o.tax = tax
	o.total = base.Add(tax)
}

// Transition requests a lifecycle status change. Shipping is rejected here:
// the only path into the Shipped status is the fulfillment workflow, which
// consumes stock and calls Ship.
func (o *Order) Transition(target Status) error {
	if target == StatusShipped {
		return errs.NewInvalidTransitionError(o.status.String(), target.String())
	}
	next, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// Cancel abandons the order. Allowed from any non-terminal status.
func (o *Order) Cancel() error {
	return o.Transition(StatusCancelled)
}

// Ship advances the order from InPreparation to Shipped. It is invoked by
// the fulfillment workflow after all stock decrements have been applied
// within the same transaction.
func (o *Order) Ship() error {
	next, err := o.status.TransitionTo(StatusShipped)
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// AttachSignature records the client's delivery signature.
func (o *Order) AttachSignature(signature string) {
	o.signature = signature
}

func (o *Order) findLine(lineID int64) (*LineItem, error) {
	for _, line := range o.lines {
		if line.ID() == lineID {
			return line, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("line id", lineID)
}

func (o *Order) checkEditable() error {
	if o.status != StatusPending && o.status != StatusInPreparation {
		return ErrOrderIsNotEditable
	}
	return nil
}

// ID returns the order's sequential identifier (0 before first persistence).
func (o *Order) ID() int64 {
	return o.id
}

// Number returns the delivery-note number (empty before first persistence).
func (o *Order) Number() string {
	return o.number
}

// ClientID returns the ordering client, or nil.
func (o *Order) ClientID() *int64 {
	return o.clientID
}

// EmployeeID returns the employee who registered the order, or nil.
func (o *Order) EmployeeID() *int64 {
	return o.employeeID
}

// WarehouseID returns the warehouse the order ships from, or nil.
func (o *Order) WarehouseID() *int64 {
	return o.warehouseID
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// DeliveryDate returns the target delivery date.
func (o *Order) DeliveryDate() time.Time {
	return o.deliveryDate
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Notes returns the free-text notes attached to the order.
func (o *Order) Notes() string {
	return o.notes
}

// Signature returns the client's delivery signature, if recorded.
func (o *Order) Signature() string {
	return o.signature
}

// Base returns the taxable base, the sum of line subtotals.
func (o *Order) Base() kernel.Money {
	return o.base
}

// Tax returns the total tax amount across all lines.
func (o *Order) Tax() kernel.Money {
	return o.tax
}

// Total returns the grand total, base plus tax.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Lines returns the order's line items. The returned slice must not be
// mutated by callers.
func (o *Order) Lines() []*LineItem {
	return o.lines
}
