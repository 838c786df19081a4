package warehouserepo

import (
	"context"
	"errors"

	"albarans/internal/core/domain/model/warehouse"
	"albarans/internal/pkg/errs"

	"gorm.io/gorm"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// GormWarehouseRepository implements ports.WarehouseRepository using GORM.
type GormWarehouseRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormWarehouseRepository creates a new GORM warehouse repository.
func NewGormWarehouseRepository(db *gorm.DB, tracker aggregateTracker) *GormWarehouseRepository {
	return &GormWarehouseRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new warehouse to the database.
func (r *GormWarehouseRepository) Add(ctx context.Context, aggregate *warehouse.Warehouse) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := warehouseFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := aggregate.AssignID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a warehouse by its database identifier.
func (r *GormWarehouseRepository) Get(ctx context.Context, id int64) (*warehouse.Warehouse, error) {
	var dto WarehouseDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("warehouse", id)
		}
		return nil, err
	}

	return warehouseToDomain(dto)
}

// GormEmployeeRepository implements ports.EmployeeRepository using GORM.
type GormEmployeeRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormEmployeeRepository creates a new GORM employee repository.
func NewGormEmployeeRepository(db *gorm.DB, tracker aggregateTracker) *GormEmployeeRepository {
	return &GormEmployeeRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new employee and assigns its sequential code in the same
// transaction (insert with null code, read back the id, patch the code).
func (r *GormEmployeeRepository) Add(ctx context.Context, aggregate *warehouse.Employee) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := employeeFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := aggregate.AssignCode(dto.ID); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Model(&EmployeeDTO{}).
		Where("id = ?", dto.ID).
		Update("code", aggregate.Code()).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing employee to the database, including warehouse
// reassignment and unassignment.
func (r *GormEmployeeRepository) Update(ctx context.Context, aggregate *warehouse.Employee) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := employeeFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&EmployeeDTO{}).
		Where("id = ?", dto.ID).
		Select("UserID", "Phone", "HireDate", "WarehouseID", "Role").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("employee", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an employee by its database identifier.
func (r *GormEmployeeRepository) Get(ctx context.Context, id int64) (*warehouse.Employee, error) {
	var dto EmployeeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("employee", id)
		}
		return nil, err
	}

	return employeeToDomain(dto)
}

// GetByCode retrieves an employee by its unique code.
func (r *GormEmployeeRepository) GetByCode(ctx context.Context, code string) (*warehouse.Employee, error) {
	var dto EmployeeDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("employee", code)
		}
		return nil, err
	}

	return employeeToDomain(dto)
}
