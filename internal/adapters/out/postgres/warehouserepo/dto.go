// Package warehouserepo provides GORM-based persistence for warehouses and
// the staff assigned to them.
package warehouserepo

import (
	"time"

	"albarans/internal/core/domain/model/warehouse"

	"github.com/shopspring/decimal"
)

// WarehouseDTO represents the database structure for persisting warehouses.
type WarehouseDTO struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Address     string          `gorm:"type:varchar(255)"`
	MaxCapacity decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ColdStorage bool            `gorm:"not null;default:false"`
	Responsible string          `gorm:"type:varchar(255)"`
}

// TableName specifies the database table name for warehouse entities.
func (WarehouseDTO) TableName() string {
	return "warehouses"
}

// EmployeeDTO represents the database structure for persisting warehouse
// staff. The warehouse reference is nullable so staff can exist without an
// assignment, and the role is stored in its persisted string form.
type EmployeeDTO struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Code        *string   `gorm:"type:varchar(16);uniqueIndex"`
	UserID      int64     `gorm:"not null;uniqueIndex"`
	Phone       string    `gorm:"type:varchar(32)"`
	HireDate    time.Time `gorm:"not null"`
	WarehouseID *int64    `gorm:"index"`
	Role        string    `gorm:"type:varchar(32);not null"`
}

// TableName specifies the database table name for employee entities.
func (EmployeeDTO) TableName() string {
	return "employees"
}

// warehouseFromDomain converts a warehouse aggregate to its database representation.
func warehouseFromDomain(aggregate *warehouse.Warehouse) WarehouseDTO {
	return WarehouseDTO{
		ID:          aggregate.ID(),
		Name:        aggregate.Name(),
		Address:     aggregate.Address(),
		MaxCapacity: aggregate.MaxCapacity(),
		ColdStorage: aggregate.HasColdStorage(),
		Responsible: aggregate.Responsible(),
	}
}

// warehouseToDomain reconstructs a warehouse aggregate from its database representation.
func warehouseToDomain(dto WarehouseDTO) (*warehouse.Warehouse, error) {
	return warehouse.RestoreWarehouse(
		dto.ID,
		dto.Name,
		dto.Address,
		dto.MaxCapacity,
		dto.ColdStorage,
		dto.Responsible,
	)
}

// employeeFromDomain converts an employee aggregate to its database representation.
func employeeFromDomain(aggregate *warehouse.Employee) EmployeeDTO {
	var code *string
	if c := aggregate.Code(); c != "" {
		code = &c
	}

	return EmployeeDTO{
		ID:          aggregate.ID(),
		Code:        code,
		UserID:      aggregate.UserID(),
		Phone:       aggregate.Phone(),
		HireDate:    aggregate.HireDate(),
		WarehouseID: aggregate.WarehouseID(),
		Role:        aggregate.Role().String(),
	}
}

// employeeToDomain reconstructs an employee aggregate from its database representation.
func employeeToDomain(dto EmployeeDTO) (*warehouse.Employee, error) {
	role, err := warehouse.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	code := ""
	if dto.Code != nil {
		code = *dto.Code
	}

	return warehouse.RestoreEmployee(
		dto.ID,
		code,
		dto.UserID,
		dto.Phone,
		dto.HireDate,
		dto.WarehouseID,
		role,
	)
}
