// Package stockrepo provides GORM-based persistence for the inventory
// ledger. Each row records the quantity of one product at one warehouse.
package stockrepo

import (
	"time"

	"albarans/internal/core/domain/model/stock"
)

// StockEntryDTO represents the database structure for persisting stock
// entries. The (product, warehouse) pair is unique across the ledger.
type StockEntryDTO struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	ProductID     int64     `gorm:"not null;uniqueIndex:idx_stock_product_warehouse"`
	WarehouseID   int64     `gorm:"not null;uniqueIndex:idx_stock_product_warehouse"`
	Quantity      int       `gorm:"not null"`
	LastEntryDate time.Time `gorm:"not null"`
	Location      string    `gorm:"type:varchar(64)"`
}

// TableName specifies the database table name for stock entries.
func (StockEntryDTO) TableName() string {
	return "stock_entries"
}

// fromDomain converts a stock entry aggregate to its database representation.
func fromDomain(aggregate *stock.StockEntry) StockEntryDTO {
	return StockEntryDTO{
		ID:            aggregate.ID(),
		ProductID:     aggregate.ProductID(),
		WarehouseID:   aggregate.WarehouseID(),
		Quantity:      aggregate.Quantity(),
		LastEntryDate: aggregate.LastEntryDate(),
		Location:      aggregate.Location(),
	}
}

// toDomain reconstructs a stock entry aggregate from its database representation.
func toDomain(dto StockEntryDTO) (*stock.StockEntry, error) {
	return stock.RestoreStockEntry(
		dto.ID,
		dto.ProductID,
		dto.WarehouseID,
		dto.Quantity,
		dto.LastEntryDate,
		dto.Location,
	)
}
