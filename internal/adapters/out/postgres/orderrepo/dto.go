// Package orderrepo provides GORM-based persistence for delivery-note
// aggregates. Orders are stored together with their line items and loaded
// back as a whole; the note number is assigned in a two-phase create.
package orderrepo

import (
	"time"

	"albarans/internal/core/domain/model/catalog"
	"albarans/internal/core/domain/model/kernel"
	"albarans/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting delivery notes.
// Monetary totals are stored rounded to two decimal places and the status is
// stored in its persisted string form. The number column is null until the
// first insert completes and the number derived from the id is patched in.
type OrderDTO struct {
	ID           int64           `gorm:"primaryKey;autoIncrement"`
	Number       *string         `gorm:"type:varchar(32);uniqueIndex"`
	ClientID     *int64          `gorm:"index"`
	EmployeeID   *int64          `gorm:"index"`
	WarehouseID  *int64          `gorm:"index"`
	CreatedAt    time.Time       `gorm:"not null"`
	DeliveryDate time.Time       `gorm:"index"`
	Status       string          `gorm:"type:varchar(32);not null;index"`
	Notes        string          `gorm:"type:text"`
	Signature    string          `gorm:"type:text"`
	Base         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Tax          decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Total        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Lines        []LineItemDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO represents the database structure for persisting order lines.
// Unit price, discount and tax rate are snapshots taken when the line was
// added; later catalog changes do not touch them.
type LineItemDTO struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	OrderID   int64           `gorm:"not null;index"`
	ProductID int64           `gorm:"not null;index"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Discount  decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	TaxRate   int             `gorm:"not null"`
	Notes     string          `gorm:"type:text"`
}

// TableName specifies the database table name for line item entities.
func (LineItemDTO) TableName() string {
	return "line_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var number *string
	if n := aggregate.Number(); n != "" {
		number = &n
	}

	lines := make([]LineItemDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, LineItemDTO{
			ID:        line.ID(),
			OrderID:   aggregate.ID(),
			ProductID: line.ProductID(),
			Quantity:  line.Quantity(),
			UnitPrice: line.UnitPrice().Round().Decimal(),
			Discount:  line.Discount(),
			TaxRate:   line.TaxRate().Percent(),
			Notes:     line.Notes(),
		})
	}

	return OrderDTO{
		ID:           aggregate.ID(),
		Number:       number,
		ClientID:     aggregate.ClientID(),
		EmployeeID:   aggregate.EmployeeID(),
		WarehouseID:  aggregate.WarehouseID(),
		CreatedAt:    aggregate.CreatedAt(),
		DeliveryDate: aggregate.DeliveryDate(),
		Status:       aggregate.Status().String(),
		Notes:        aggregate.Notes(),
		Signature:    aggregate.Signature(),
		Base:         aggregate.Base().Round().Decimal(),
		Tax:          aggregate.Tax().Round().Decimal(),
		Total:        aggregate.Total().Round().Decimal(),
		Lines:        lines,
	}
}

// toDomain reconstructs an order aggregate with its lines from the database
// representation. Stored totals are restored as-is, not recomputed.
func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	lines := make([]*order.LineItem, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		taxRate, rateErr := catalog.TaxRateFromPercent(lineDTO.TaxRate)
		if rateErr != nil {
			return nil, rateErr
		}

		line, lineErr := order.RestoreLineItem(
			lineDTO.ID,
			lineDTO.ProductID,
			lineDTO.Quantity,
			kernel.NewMoneyFromDecimal(lineDTO.UnitPrice),
			lineDTO.Discount,
			taxRate,
			lineDTO.Notes,
		)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	number := ""
	if dto.Number != nil {
		number = *dto.Number
	}

	return order.RestoreOrder(
		dto.ID,
		number,
		dto.ClientID,
		dto.EmployeeID,
		dto.WarehouseID,
		dto.CreatedAt,
		dto.DeliveryDate,
		status,
		dto.Notes,
		dto.Signature,
		kernel.NewMoneyFromDecimal(dto.Base),
		kernel.NewMoneyFromDecimal(dto.Tax),
		kernel.NewMoneyFromDecimal(dto.Total),
		lines,
	)
}
