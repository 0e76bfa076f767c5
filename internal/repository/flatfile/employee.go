package flatfile

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/balsons/erp-backend-go/internal/domain/employee"
	"github.com/balsons/erp-backend-go/internal/pkg/spreadsheet"
	"github.com/balsons/erp-backend-go/internal/pkg/storage"
)

type employeeRepositoryImpl struct {
	storage storage.FileStorage
	path    string
}

// NewEmployeeRepository stores the table as one CSV file at path inside storage.
func NewEmployeeRepository(storage storage.FileStorage, path string) employee.EmployeeRepository {
	return &employeeRepositoryImpl{storage: storage, path: path}
}

// Load implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Load(ctx context.Context) (employee.Table, error) {
	rc, err := r.storage.Download(ctx, r.path)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return employee.NewTable(), nil
		}
		return employee.Table{}, fmt.Errorf("failed to open %s: %w", r.path, err)
	}
	defer rc.Close()

	rows, err := spreadsheet.ReadRows(rc, r.path)
	if err != nil {
		return employee.Table{}, fmt.Errorf("%w: %w", employee.ErrCorruptTable, err)
	}
	if len(rows) == 0 {
		return employee.Table{}, fmt.Errorf("%w: %s has no header row", employee.ErrCorruptTable, r.path)
	}

	header, records := spreadsheet.Records(rows)
	t := employee.Table{Columns: header, Records: make([]employee.Employee, 0, len(records))}
	for _, cells := range records {
		t.Records = append(t.Records, employee.FromCells(cells))
	}
	return t, nil
}

// Save implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Save(ctx context.Context, t employee.Table) error {
	rows := make([][]string, len(t.Records))
	for i, e := range t.Records {
		rows[i] = e.Cells(t.Columns)
	}

	var buf bytes.Buffer
	if err := spreadsheet.WriteCSV(&buf, t.Columns, rows); err != nil {
		return fmt.Errorf("failed to encode employee master: %w", err)
	}

	if _, err := r.storage.Upload(ctx, &buf, r.path, "text/csv"); err != nil {
		return fmt.Errorf("failed to write %s: %w", r.path, err)
	}
	return nil
}
