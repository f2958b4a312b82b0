package employee

import "context"

// EmployeeRepository - interface for the employees table
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)
	Update(ctx context.Context, emp Employee) (Employee, error)
	// Delete removes the row unconditionally. Dependent leave records and
	// quota rows are left in place (foreign keys by identity, not containment).
	Delete(ctx context.Context, id string) error
}
