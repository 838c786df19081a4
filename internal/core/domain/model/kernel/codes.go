package kernel

import "fmt"

// Entity codes are generated from the database-assigned sequential id after
// the first insert (two-phase create). The row is inserted with an empty code
// inside a transaction, the assigned id is read back, and the final code is
// patched onto the same row before commit. A code is assigned exactly once
// and never changes afterwards.

// ClientCode formats the immutable client code for a sequential id, e.g.
// ClientCode(7) == "CLI007".
func ClientCode(id int64) string {
	return fmt.Sprintf("CLI%03d", id)
}

// ProductCode formats the product code for a sequential id, e.g.
// ProductCode(12) == "BEB012".
func ProductCode(id int64) string {
	return fmt.Sprintf("BEB%03d", id)
}

// EmployeeCode formats the employee code for a sequential id, e.g.
// EmployeeCode(3) == "EMP003".
func EmployeeCode(id int64) string {
	return fmt.Sprintf("EMP%03d", id)
}

// OrderNumber formats the delivery-note number from the creation year and the
// sequential id, e.g. OrderNumber(2024, 7) == "ALB-2024-007".
func OrderNumber(year int, id int64) string {
	return fmt.Sprintf("ALB-%d-%03d", year, id)
}
