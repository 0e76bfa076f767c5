package postgresql

import (
	"context"
	"fmt"

	"github.com/balsons/erp-backend-go/internal/domain/employee"
	"github.com/balsons/erp-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const employeeMasterSchema = `
	CREATE TABLE IF NOT EXISTS employee_master_columns (
		position INT PRIMARY KEY,
		name     TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS employee_master_rows (
		position INT PRIMARY KEY,
		cells    JSONB NOT NULL
	);
`

type employeeMasterRepositoryImpl struct {
	db *database.DB
}

// NewEmployeeMasterRepository keeps the table in two relations: the ordered
// header and one JSONB cell map per row. Save replaces both wholesale.
func NewEmployeeMasterRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeMasterRepositoryImpl{db: db}
}

// EnsureEmployeeMasterSchema creates the backing relations when missing.
func EnsureEmployeeMasterSchema(ctx context.Context, db *database.DB) error {
	if _, err := db.Exec(ctx, employeeMasterSchema); err != nil {
		return fmt.Errorf("failed to create employee master schema: %w", err)
	}
	return nil
}

// Load implements employee.EmployeeRepository.
func (r *employeeMasterRepositoryImpl) Load(ctx context.Context) (employee.Table, error) {
	q := GetQuerier(ctx, r.db)

	colRows, err := q.Query(ctx, `SELECT name FROM employee_master_columns ORDER BY position`)
	if err != nil {
		return employee.Table{}, fmt.Errorf("failed to query employee master columns: %w", err)
	}
	defer colRows.Close()

	var columns []string
	for colRows.Next() {
		var name string
		if err := colRows.Scan(&name); err != nil {
			return employee.Table{}, fmt.Errorf("failed to scan employee master column: %w", err)
		}
		columns = append(columns, name)
	}
	if err := colRows.Err(); err != nil {
		return employee.Table{}, fmt.Errorf("failed to read employee master columns: %w", err)
	}
	if len(columns) == 0 {
		return employee.NewTable(), nil
	}

	rows, err := q.Query(ctx, `SELECT cells FROM employee_master_rows ORDER BY position`)
	if err != nil {
		return employee.Table{}, fmt.Errorf("failed to query employee master rows: %w", err)
	}
	defer rows.Close()

	var cellMaps []map[string]string
	for rows.Next() {
		var cells map[string]string
		if err := rows.Scan(&cells); err != nil {
			return employee.Table{}, fmt.Errorf("%w: %w", employee.ErrCorruptTable, err)
		}
		cellMaps = append(cellMaps, cells)
	}
	if err := rows.Err(); err != nil {
		return employee.Table{}, fmt.Errorf("failed to read employee master rows: %w", err)
	}

	t := employee.Table{Columns: columns, Records: make([]employee.Employee, 0, len(cellMaps))}
	for _, cells := range cellMaps {
		t.Records = append(t.Records, employee.FromCells(cells))
	}
	return t, nil
}

// Save implements employee.EmployeeRepository.
func (r *employeeMasterRepositoryImpl) Save(ctx context.Context, t employee.Table) error {
	return WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM employee_master_rows`); err != nil {
			return fmt.Errorf("failed to clear employee master rows: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM employee_master_columns`); err != nil {
			return fmt.Errorf("failed to clear employee master columns: %w", err)
		}

		batch := &pgx.Batch{}
		for i, name := range t.Columns {
			batch.Queue(`INSERT INTO employee_master_columns (position, name) VALUES ($1, $2)`, i, name)
		}
		for i, e := range t.Records {
			cells := make(map[string]string, len(t.Columns))
			for _, c := range t.Columns {
				cells[c] = e.Cell(c)
			}
			batch.Queue(`INSERT INTO employee_master_rows (position, cells) VALUES ($1, $2)`, i, cells)
		}

		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("failed to write employee master: %w", err)
		}
		return nil
	})
}
