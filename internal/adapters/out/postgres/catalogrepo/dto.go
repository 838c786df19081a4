// Package catalogrepo provides GORM-based persistence for the product
// catalog: products and their categories.
package catalogrepo

import (
	"albarans/internal/core/domain/model/catalog"
	"albarans/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting products.
// Unit prices are stored rounded to two decimal places; the measurement unit
// and tax rate are stored in their persisted string and percent forms.
type ProductDTO struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	Code        *string         `gorm:"type:varchar(16);uniqueIndex"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Description string          `gorm:"type:text"`
	CategoryID  int64           `gorm:"not null;index"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Unit        string          `gorm:"type:varchar(16);not null"`
	TaxRate     int             `gorm:"not null"`
	Perishable  bool            `gorm:"not null;default:false"`
	ImageURL    string          `gorm:"type:varchar(512)"`
	Active      bool            `gorm:"not null;default:true"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// CategoryDTO represents the database structure for persisting categories.
type CategoryDTO struct {
	ID                    int64            `gorm:"primaryKey;autoIncrement"`
	Name                  string           `gorm:"type:varchar(255);not null"`
	Description           string           `gorm:"type:text"`
	RequiresRefrigeration bool             `gorm:"not null;default:false"`
	MaxTemperature        *decimal.Decimal `gorm:"type:decimal(5,2)"`
}

// TableName specifies the database table name for category entities.
func (CategoryDTO) TableName() string {
	return "categories"
}

// productFromDomain converts a product aggregate to its database representation.
func productFromDomain(aggregate *catalog.Product) ProductDTO {
	var code *string
	if c := aggregate.Code(); c != "" {
		code = &c
	}

	return ProductDTO{
		ID:          aggregate.ID(),
		Code:        code,
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		CategoryID:  aggregate.CategoryID(),
		UnitPrice:   aggregate.UnitPrice().Round().Decimal(),
		Unit:        aggregate.Unit().String(),
		TaxRate:     aggregate.TaxRate().Percent(),
		Perishable:  aggregate.Perishable(),
		ImageURL:    aggregate.ImageURL(),
		Active:      aggregate.IsActive(),
	}
}

// productToDomain reconstructs a product aggregate from its database
// representation. Invalid persisted units or rates surface as validation
// errors rather than silently producing a broken aggregate.
func productToDomain(dto ProductDTO) (*catalog.Product, error) {
	unit, err := catalog.MeasureUnitFromString(dto.Unit)
	if err != nil {
		return nil, err
	}

	taxRate, err := catalog.TaxRateFromPercent(dto.TaxRate)
	if err != nil {
		return nil, err
	}

	code := ""
	if dto.Code != nil {
		code = *dto.Code
	}

	return catalog.RestoreProduct(
		dto.ID,
		code,
		dto.Name,
		dto.Description,
		dto.CategoryID,
		kernel.NewMoneyFromDecimal(dto.UnitPrice),
		unit,
		taxRate,
		dto.Perishable,
		dto.ImageURL,
		dto.Active,
	)
}

// categoryFromDomain converts a category aggregate to its database representation.
func categoryFromDomain(aggregate *catalog.Category) CategoryDTO {
	return CategoryDTO{
		ID:                    aggregate.ID(),
		Name:                  aggregate.Name(),
		Description:           aggregate.Description(),
		RequiresRefrigeration: aggregate.RequiresRefrigeration(),
		MaxTemperature:        aggregate.MaxTemperature(),
	}
}

// categoryToDomain reconstructs a category aggregate from its database representation.
func categoryToDomain(dto CategoryDTO) (*catalog.Category, error) {
	return catalog.RestoreCategory(
		dto.ID,
		dto.Name,
		dto.Description,
		dto.RequiresRefrigeration,
		dto.MaxTemperature,
	)
}
