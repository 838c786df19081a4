package orderrepo

import (
	"context"
	"errors"

	"albarans/internal/core/domain/model/order"
	"albarans/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its lines and assigns its note number in the
// same transaction (insert with null number, read back the id, patch the
// number).
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := aggregate.AssignNumber(dto.ID); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Update("number", aggregate.Number()).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order and its lines. Lines removed from the
// aggregate are deleted from storage, modified lines are updated in place,
// and new lines are inserted. The number column is never rewritten.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("ClientID", "EmployeeID", "WarehouseID", "DeliveryDate",
			"Status", "Notes", "Signature", "Base", "Tax", "Total").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID())
	}

	if err := r.saveLines(ctx, dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// saveLines reconciles the stored line rows with the aggregate's lines:
// orphans are deleted first, then the remaining lines are upserted.
func (r *GormOrderRepository) saveLines(ctx context.Context, dto OrderDTO) error {
	kept := make([]int64, 0, len(dto.Lines))
	for i := range dto.Lines {
		dto.Lines[i].OrderID = dto.ID
		if dto.Lines[i].ID != 0 {
			kept = append(kept, dto.Lines[i].ID)
		}
	}

	query := r.db.WithContext(ctx).Where("order_id = ?", dto.ID)
	if len(kept) > 0 {
		query = query.Where("id NOT IN ?", kept)
	}
	if err := query.Delete(&LineItemDTO{}).Error; err != nil {
		return err
	}

	for i := range dto.Lines {
		if err := r.db.WithContext(ctx).Save(&dto.Lines[i]).Error; err != nil {
			return err
		}
	}

	return nil
}

// Get retrieves an order with its lines by database identifier.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Lines").First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByNumber retrieves an order with its lines by its note number.
func (r *GormOrderRepository) GetByNumber(ctx context.Context, number string) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Lines").First(&dto, "number = ?", number).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", number)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByWarehouseAndStatuses retrieves the orders of one warehouse whose
// status is in the given set, newest first.
func (r *GormOrderRepository) GetByWarehouseAndStatuses(
	ctx context.Context,
	warehouseID int64,
	statuses []order.Status,
) ([]*order.Order, error) {
	names := make([]string, 0, len(statuses))
	for _, status := range statuses {
		if err := status.Validate(); err != nil {
			return nil, err
		}
		names = append(names, status.String())
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).Preload("Lines").
		Where("warehouse_id = ? AND status IN ?", warehouseID, names).
		Order("created_at DESC, id DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
