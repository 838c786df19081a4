package catalog

import (
	"errors"

	"albarans/internal/core/domain/model/kernel"
	"albarans/internal/pkg/errs"
	"albarans/internal/pkg/guard"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through NewProduct or RestoreProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

	// ErrProductNameIsRequired is returned when a product has no name.
	ErrProductNameIsRequired = errs.NewValueIsRequiredError("name")

	// ErrProductCodeIsAssigned is returned when attempting to assign a code to
	// a product that already carries one. Codes are assigned exactly once,
	// right after the first persistence.
	ErrProductCodeIsAssigned = errs.NewValueIsInvalidError("product code is already assigned")
)

// Product is a catalog entry that line items reference. A product belongs to
// exactly one category, is priced per measurement unit, and carries exactly
// one of the three permitted tax rates.
//
// Product follows these invariants:
//   - The code (BEB + zero-padded id) is unique and assigned exactly once,
//     after the first persistence
//   - The unit price is never negative
//   - The tax rate and measurement unit are valid closed-enum values
type Product struct {
	id          int64
	code        string
	name        string
	description string
	categoryID  int64
	unitPrice   kernel.Money
	unit        MeasureUnit
	taxRate     TaxRate
	perishable  bool
	imageURL    string
	active      bool

	guard guard.ConstructorGuard
}

// NewProduct creates a new Product with validation. The code is empty until
// AssignCode is called after the first persistence.
func NewProduct(
	name string,
	description string,
	categoryID int64,
	unitPrice kernel.Money,
	unit MeasureUnit,
	taxRate TaxRate,
	perishable bool,
	imageURL string,
) (*Product, error) {
	product := &Product{
		description: description,
		perishable:  perishable,
		imageURL:    imageURL,
		active:      true,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		product.setName(name),
		product.setCategoryID(categoryID),
		product.setUnitPrice(unitPrice),
		product.setUnit(unit),
		product.setTaxRate(taxRate),
	); err != nil {
		return nil, err
	}

	return product, nil
}

// RestoreProduct reconstructs a Product from persistent storage, including
// its assigned code and active flag.
func RestoreProduct(
	id int64,
	code string,
	name string,
	description string,
	categoryID int64,
	unitPrice kernel.Money,
	unit MeasureUnit,
	taxRate TaxRate,
	perishable bool,
	imageURL string,
	active bool,
) (*Product, error) {
	product, err := NewProduct(name, description, categoryID, unitPrice, unit, taxRate, perishable, imageURL)
	if err != nil {
		return nil, err
	}

	product.id = id
	product.code = code
	product.active = active
	return product, nil
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// AssignCode records the database-assigned identifier and its derived code
// after the first insert. The code is assigned exactly once.
func (p *Product) AssignCode(id int64) error {
	if p.id != 0 || p.code != "" {
		return ErrProductCodeIsAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("product id")
	}

	p.id = id
	p.code = kernel.ProductCode(id)
	return nil
}

// ID returns the product's sequential identifier (0 before first persistence).
func (p *Product) ID() int64 {
	return p.id
}

// Code returns the unique product code, e.g. "BEB012".
// Empty until the product has been persisted once.
func (p *Product) Code() string {
	return p.code
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the free-text description.
func (p *Product) Description() string {
	return p.description
}

// CategoryID returns the identifier of the owning category.
func (p *Product) CategoryID() int64 {
	return p.categoryID
}

// UnitPrice returns the current price per measurement unit.
func (p *Product) UnitPrice() kernel.Money {
	return p.unitPrice
}

// Unit returns the measurement unit the product is sold in.
func (p *Product) Unit() MeasureUnit {
	return p.unit
}

// TaxRate returns the tax rate applied to the product.
func (p *Product) TaxRate() TaxRate {
	return p.taxRate
}

// Perishable reports whether the product spoils and needs rotation.
func (p *Product) Perishable() bool {
	return p.perishable
}

// ImageURL returns the optional catalog image URL.
func (p *Product) ImageURL() string {
	return p.imageURL
}

// IsActive reports whether the product is available for new order lines.
func (p *Product) IsActive() bool {
	return p.active
}

// Deactivate removes the product from the active catalog without deleting it.
func (p *Product) Deactivate() {
	p.active = false
}

// ChangeUnitPrice updates the current unit price. Existing persisted lines
// keep their snapshot; unsaved edits of old lines pick up the new price.
func (p *Product) ChangeUnitPrice(price kernel.Money) error {
	return p.setUnitPrice(price)
}

func (p *Product) setName(name string) error {
	if name == "" {
		return ErrProductNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Product) setCategoryID(categoryID int64) error {
	if categoryID <= 0 {
		return errs.NewValueIsRequiredError("categoryID")
	}
	p.categoryID = categoryID
	return nil
}

func (p *Product) setUnitPrice(price kernel.Money) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidError("unit price")
	}
	p.unitPrice = price
	return nil
}

func (p *Product) setUnit(unit MeasureUnit) error {
	if err := unit.Validate(); err != nil {
		return err
	}
	p.unit = unit
	return nil
}

func (p *Product) setTaxRate(rate TaxRate) error {
	if err := rate.Validate(); err != nil {
		return err
	}
	p.taxRate = rate
	return nil
}
