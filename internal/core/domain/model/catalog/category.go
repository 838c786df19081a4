package catalog

import (
	"errors"

	"github.com/shopspring/decimal"

	"albarans/internal/pkg/errs"
	"albarans/internal/pkg/guard"
)

var (
	// ErrCategoryIsNotConstructed is returned when a Category instance was not
	// created through NewCategory or RestoreCategory.
	ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory constructor")

	// ErrCategoryNameIsRequired is returned when a category has no name.
	ErrCategoryNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Category groups products and carries the cold-chain attributes shared by
// every product in it. A refrigerated category is expected to declare its
// maximum storage temperature; this is an expectation, not a hard constraint.
type Category struct {
	id                    int64
	name                  string
	description           string
	requiresRefrigeration bool
	maxTemperature        *decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCategory creates a new Category with the given attributes.
// maxTemperature is only meaningful when requiresRefrigeration is true and
// may be nil otherwise.
func NewCategory(
	name string,
	description string,
	requiresRefrigeration bool,
	maxTemperature *decimal.Decimal,
) (*Category, error) {
	if name == "" {
		return nil, ErrCategoryNameIsRequired
	}

	return &Category{
		name:                  name,
		description:           description,
		requiresRefrigeration: requiresRefrigeration,
		maxTemperature:        maxTemperature,
		guard:                 guard.NewConstructorGuard(),
	}, nil
}

// RestoreCategory reconstructs a Category from persistent storage.
func RestoreCategory(
	id int64,
	name string,
	description string,
	requiresRefrigeration bool,
	maxTemperature *decimal.Decimal,
) (*Category, error) {
	category, err := NewCategory(name, description, requiresRefrigeration, maxTemperature)
	if err != nil {
		return nil, err
	}
	category.id = id
	return category, nil
}

// Validate ensures the Category instance was properly constructed.
func (c *Category) Validate() error {
	if c == nil {
		return ErrCategoryIsNotConstructed
	}
	return c.guard.Validate(ErrCategoryIsNotConstructed)
}

// ID returns the category's sequential identifier (0 before first persistence).
func (c *Category) ID() int64 {
	return c.id
}

// AssignID records the database-assigned identifier after the first insert.
// The identifier is assigned exactly once.
func (c *Category) AssignID(id int64) error {
	if c.id != 0 {
		return errs.NewValueIsInvalidError("category id is already assigned")
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("category id")
	}
	c.id = id
	return nil
}

// Name returns the category name.
func (c *Category) Name() string {
	return c.name
}

// Description returns the free-text description.
func (c *Category) Description() string {
	return c.description
}

// RequiresRefrigeration reports whether products in this category need cold storage.
func (c *Category) RequiresRefrigeration() bool {
	return c.requiresRefrigeration
}

// MaxTemperature returns the maximum storage temperature, or nil when the
// category does not declare one.
func (c *Category) MaxTemperature() *decimal.Decimal {
	return c.maxTemperature
}
