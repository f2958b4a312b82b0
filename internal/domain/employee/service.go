package employee

import "context"

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// CreateEmployee creates a new employee and provisions leave quota rows
	// for the current year from the leave-type catalog, in one transaction.
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// GetEmployee retrieves a single employee by ID
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// ListEmployees lists employees with search, status filter and pagination
	ListEmployees(ctx context.Context, filter EmployeeFilter) ([]EmployeeResponse, int64, error)

	// UpdateEmployee patches an existing employee
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee removes an employee without touching dependent records
	DeleteEmployee(ctx context.Context, id string) error
}
