package employee

import "context"

// EmployeeRepository persists the whole table at once; there is no row-level write path.
type EmployeeRepository interface {
	// Load returns the stored table, or NewTable() when nothing is stored yet.
	Load(ctx context.Context) (Table, error)
	// Save replaces the stored table with t.
	Save(ctx context.Context, t Table) error
}
