package order

import (
	"errors"

	"github.com/shopspring/decimal"

	"albarans/internal/core/domain/model/catalog"
	"albarans/internal/core/domain/model/kernel"
	"albarans/internal/pkg/errs"
	"albarans/internal/pkg/guard"
)

var (
	// ErrLineItemIsNotConstructed is returned when a LineItem instance was not
	// created through NewLineItem or RestoreLineItem.
	ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")
)

// LineItem is one product position on a delivery note. It belongs to exactly
// one Order and is only ever mutated through the aggregate root.
//
// The unit price and tax rate are snapshots taken from the catalog at the
// moment the line is added (or edited): later catalog price changes never
// affect existing notes. The discount is a percentage in [0, 100] applied to
// the line subtotal.
type LineItem struct {
	id        int64
	productID int64
	quantity  int
	unitPrice kernel.Money
	discount  decimal.Decimal
	taxRate   catalog.TaxRate
	notes     string

	guard guard.ConstructorGuard
}

// NewLineItem creates a new LineItem with validation, snapshotting the
// given unit price and tax rate.
func NewLineItem(
	productID int64,
	quantity int,
	unitPrice kernel.Money,
	discount decimal.Decimal,
	taxRate catalog.TaxRate,
	notes string,
) (*LineItem, error) {
	item := &LineItem{
		productID: productID,
		unitPrice: unitPrice,
		taxRate:   taxRate,
		notes:     notes,
		guard:     guard.NewConstructorGuard(),
	}

	if productID <= 0 {
		return nil, errs.NewValueIsRequiredError("product id")
	}
	if err := taxRate.Validate(); err != nil {
		return nil, err
	}
	if err := errors.Join(
		item.setQuantity(quantity),
		item.setDiscount(discount),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreLineItem reconstructs a LineItem from persistent storage.
func RestoreLineItem(
	id int64,
	productID int64,
	quantity int,
	unitPrice kernel.Money,
	discount decimal.Decimal,
	taxRate catalog.TaxRate,
	notes string,
) (*LineItem, error) {
	item, err := NewLineItem(productID, quantity, unitPrice, discount, taxRate, notes)
	if err != nil {
		return nil, err
	}
	item.id = id
	return item, nil
}

func (l *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, nil)
	}
	l.quantity = quantity
	return nil
}

func (l *LineItem) setDiscount(discount decimal.Decimal) error {
	if discount.IsNegative() || discount.GreaterThan(decimal.NewFromInt(100)) {
		return errs.NewValueIsOutOfRangeError("discount", discount.String(), 0, 100)
	}
	l.discount = discount
	return nil
}

// Validate ensures the LineItem instance was properly constructed.
func (l *LineItem) Validate() error {
	if l == nil {
		return ErrLineItemIsNotConstructed
	}
	return l.guard.Validate(ErrLineItemIsNotConstructed)
}

// Subtotal returns quantity x unit price reduced by the discount percentage.
// The result keeps full decimal precision; rounding to cents happens only
// when order totals are persisted.
func (l *LineItem) Subtotal() kernel.Money {
	gross := l.unitPrice.MulInt(l.quantity)
	factor := decimal.NewFromInt(1).Sub(l.discount.Div(decimal.NewFromInt(100)))
	return gross.Mul(factor)
}

// Tax returns the tax amount for this line, Subtotal x tax rate.
func (l *LineItem) Tax() kernel.Money {
	return l.Subtotal().Mul(l.taxRate.Fraction())
}

// ID returns the line's sequential identifier (0 before first persistence).
func (l *LineItem) ID() int64 {
	return l.id
}

// ProductID returns the identifier of the ordered product.
func (l *LineItem) ProductID() int64 {
	return l.productID
}

// Quantity returns the ordered quantity.
func (l *LineItem) Quantity() int {
	return l.quantity
}

// UnitPrice returns the price snapshot taken when the line was added.
func (l *LineItem) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Discount returns the discount percentage in [0, 100].
func (l *LineItem) Discount() decimal.Decimal {
	return l.discount
}

// TaxRate returns the tax rate snapshot taken when the line was added.
func (l *LineItem) TaxRate() catalog.TaxRate {
	return l.taxRate
}

// Notes returns the free-text notes attached to the line.
func (l *LineItem) Notes() string {
	return l.notes
}
