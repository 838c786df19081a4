package warehouse

import (
	"errors"
	"time"

	"albarans/internal/core/domain/model/kernel"
	"albarans/internal/pkg/errs"
	"albarans/internal/pkg/guard"
)

var (
	// ErrEmployeeIsNotConstructed is returned when an Employee instance was
	// not created through NewEmployee or RestoreEmployee.
	ErrEmployeeIsNotConstructed = errors.New("Employee must be created via NewEmployee constructor")

	// ErrEmployeeCodeIsAssigned is returned when a code is assigned to an
	// employee that already has one.
	ErrEmployeeCodeIsAssigned = errors.New("employee code is already assigned")
)

// Role is the operational role of a warehouse employee.
type Role int

const (
	RoleUnknown Role = iota
	RoleOperator
	RoleSupervisor
	RoleDriver
	RoleAdministrative
)

var roleNames = map[Role]string{
	RoleOperator:       "OPERATOR",
	RoleSupervisor:     "SUPERVISOR",
	RoleDriver:         "DRIVER",
	RoleAdministrative: "ADMINISTRATIVE",
}

// RoleFromString parses a role from its storage representation.
func RoleFromString(name string) (Role, error) {
	for role, roleName := range roleNames {
		if roleName == name {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidError("role")
}

// Validate checks that the role holds a known value.
func (r Role) Validate() error {
	if _, ok := roleNames[r]; !ok {
		return errs.NewValueIsInvalidError("role")
	}
	return nil
}

// String returns the storage representation of the role.
func (r Role) String() string {
	return roleNames[r]
}

// Employee is a member of the warehouse staff. An employee may be unassigned
// from any warehouse, in which case they cannot prepare or ship orders.
type Employee struct {
	id          int64
	code        string
	userID      int64
	phone       string
	hireDate    time.Time
	warehouseID *int64
	role        Role

	guard guard.ConstructorGuard
}

// NewEmployee creates a new Employee with validation. The employee code is
// not known until the first insert, see AssignCode.
func NewEmployee(
	userID int64,
	phone string,
	hireDate time.Time,
	warehouseID *int64,
	role Role,
) (*Employee, error) {
	if userID <= 0 {
		return nil, errs.NewValueIsRequiredError("user id")
	}
	if hireDate.IsZero() {
		return nil, errs.NewValueIsRequiredError("hire date")
	}
	if err := role.Validate(); err != nil {
		return nil, err
	}
	if warehouseID != nil && *warehouseID <= 0 {
		return nil, errs.NewValueIsInvalidError("warehouse id")
	}

	return &Employee{
		userID:      userID,
		phone:       phone,
		hireDate:    hireDate,
		warehouseID: warehouseID,
		role:        role,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreEmployee reconstructs an Employee from persistent storage.
func RestoreEmployee(
	id int64,
	code string,
	userID int64,
	phone string,
	hireDate time.Time,
	warehouseID *int64,
	role Role,
) (*Employee, error) {
	e, err := NewEmployee(userID, phone, hireDate, warehouseID, role)
	if err != nil {
		return nil, err
	}
	e.id = id
	e.code = code
	return e, nil
}

// Validate ensures the Employee instance was properly constructed.
func (e *Employee) Validate() error {
	if e == nil {
		return ErrEmployeeIsNotConstructed
	}
	return e.guard.Validate(ErrEmployeeIsNotConstructed)
}

// AssignCode derives the employee code from the database-assigned identifier.
// The code is assigned exactly once.
func (e *Employee) AssignCode(id int64) error {
	if e.code != "" {
		return ErrEmployeeCodeIsAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("employee id")
	}
	e.id = id
	e.code = kernel.EmployeeCode(id)
	return nil
}

// AssignToWarehouse moves the employee to the given warehouse.
func (e *Employee) AssignToWarehouse(warehouseID int64) error {
	if warehouseID <= 0 {
		return errs.NewValueIsInvalidError("warehouse id")
	}
	e.warehouseID = &warehouseID
	return nil
}

// UnassignFromWarehouse detaches the employee from their current warehouse.
func (e *Employee) UnassignFromWarehouse() {
	e.warehouseID = nil
}

// WorksAt reports whether the employee is assigned to the given warehouse.
func (e *Employee) WorksAt(warehouseID int64) bool {
	return e.warehouseID != nil && *e.warehouseID == warehouseID
}

// ID returns the employee's sequential identifier (0 before first persistence).
func (e *Employee) ID() int64 {
	return e.id
}

// Code returns the human-readable employee code (empty before first persistence).
func (e *Employee) Code() string {
	return e.code
}

// UserID returns the identifier of the linked user account.
func (e *Employee) UserID() int64 {
	return e.userID
}

// Phone returns the employee's contact phone.
func (e *Employee) Phone() string {
	return e.phone
}

// HireDate returns the date the employee was hired.
func (e *Employee) HireDate() time.Time {
	return e.hireDate
}

// WarehouseID returns the warehouse the employee is assigned to, or nil.
func (e *Employee) WarehouseID() *int64 {
	return e.warehouseID
}

// Role returns the operational role of the employee.
func (e *Employee) Role() Role {
	return e.role
}
