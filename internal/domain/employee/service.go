package employee

import (
	"context"
)

// EmployeeService defines the record operations of the employee master
type EmployeeService interface {
	// LoadTable loads and normalizes the current table
	LoadTable(ctx context.Context) (Table, error)

	// ListEmployees lists records in file order, optionally filtered
	ListEmployees(ctx context.Context, filter EmployeeFilter) (ListEmployeeResponse, error)

	// GetEmployee returns the first record carrying the EC Number
	GetEmployee(ctx context.Context, ecNumber string) (EmployeeResponse, error)

	// CreateEmployee allocates an EC Number, derives salary and appends the record
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// UpdateEmployee overwrites the editable fields of an existing record
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee removes every record carrying the EC Number
	DeleteEmployee(ctx context.Context, ecNumber string) error

	// ImportEmployees merges uploaded files into the table, first EC Number wins
	ImportEmployees(ctx context.Context, req ImportEmployeesRequest) (ImportEmployeesResponse, error)
}
