package stockrepo

import (
	"context"
	"errors"
	"fmt"

	"albarans/internal/core/domain/model/stock"
	"albarans/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStockRepository implements ports.StockRepository using GORM.
type GormStockRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormStockRepository creates a new GORM stock repository.
func NewGormStockRepository(db *gorm.DB, tracker aggregateTracker) *GormStockRepository {
	return &GormStockRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new stock entry to the database.
func (r *GormStockRepository) Add(ctx context.Context, aggregate *stock.StockEntry) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if aggregate.ID() == 0 {
		if err := aggregate.AssignID(dto.ID); err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves a quantity or location change on an existing entry.
func (r *GormStockRepository) Update(ctx context.Context, aggregate *stock.StockEntry) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&StockEntryDTO{}).
		Where("id = ?", dto.ID).
		Select("Quantity", "LastEntryDate", "Location").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("stock entry", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves the entry for a (product, warehouse) pair.
func (r *GormStockRepository) Get(ctx context.Context, productID, warehouseID int64) (*stock.StockEntry, error) {
	var dto StockEntryDTO
	err := r.db.WithContext(ctx).
		First(&dto, "product_id = ? AND warehouse_id = ?", productID, warehouseID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("stock entry", fmt.Sprintf("%d@%d", productID, warehouseID))
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForUpdate retrieves the entries of the given products at one warehouse
// with FOR UPDATE row locks held until the surrounding transaction ends.
// Rows are locked in ascending product id order so concurrent fulfillments
// touching overlapping product sets cannot deadlock. Products with no entry
// at the warehouse are simply absent from the result map.
func (r *GormStockRepository) GetForUpdate(
	ctx context.Context,
	warehouseID int64,
	productIDs []int64,
) (map[int64]*stock.StockEntry, error) {
	if len(productIDs) == 0 {
		return map[int64]*stock.StockEntry{}, nil
	}

	var dtos []StockEntryDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("warehouse_id = ? AND product_id IN ?", warehouseID, productIDs).
		Order("product_id ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	entries := make(map[int64]*stock.StockEntry, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries[entry.ProductID()] = entry
	}

	return entries, nil
}
