package employee

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/balsons/erp-backend-go/internal/domain/employee"
	"github.com/balsons/erp-backend-go/internal/domain/payroll"
	"github.com/balsons/erp-backend-go/internal/pkg/validator"
	"github.com/balsons/erp-backend-go/internal/service/file"
	"golang.org/x/sync/errgroup"
)

type EmployeeServiceImpl struct {
	// mu serialises load-mutate-persist cycles within this process
	mu           sync.Mutex
	employeeRepo employee.EmployeeRepository
	calculator   payroll.SalaryCalculator
	fileService  file.FileService
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	calculator payroll.SalaryCalculator,
	fileService file.FileService,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		calculator:   calculator,
		fileService:  fileService,
	}
}

func (s *EmployeeServiceImpl) load(ctx context.Context) (employee.Table, error) {
	t, err := s.employeeRepo.Load(ctx)
	if err != nil {
		return employee.Table{}, fmt.Errorf("failed to load employee master: %w", err)
	}
	return Normalize(t), nil
}

// persist rewrites the whole table. A failure is reported as-is; nothing is rolled back.
func (s *EmployeeServiceImpl) persist(ctx context.Context, t employee.Table) error {
	if err := s.employeeRepo.Save(ctx, t); err != nil {
		return fmt.Errorf("%w: %w", employee.ErrPersistenceFailure, err)
	}
	return nil
}

// LoadTable implements employee.EmployeeService.
func (s *EmployeeServiceImpl) LoadTable(ctx context.Context) (employee.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(ctx)
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	if err := filter.Validate(); err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	t, err := s.LoadTable(ctx)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	results := make([]employee.EmployeeResponse, 0, len(t.Records))
	for _, e := range t.Records {
		if filter.Matches(e) {
			results = append(results, employee.ToResponse(e))
		}
	}

	return employee.ListEmployeeResponse{
		Columns:   t.Columns,
		Employees: results,
		Total:     len(results),
	}, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, ecNumber string) (employee.EmployeeResponse, error) {
	t, err := s.LoadTable(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	idx := t.IndexesOf(ecNumber)
	if len(idx) == 0 {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
	}

	return employee.ToResponse(t.Records[idx[0]]), nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	salary, err := s.calculator.Derive(req.BasicSalary)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.load(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	newEmployee := req.ToEmployee()
	newEmployee.ECNumber = NextECNumber(t.ECNumbers())
	newEmployee.ApplySalary(salary)

	t.EnsureColumns(employee.ColumnNames()...)
	t.Records = append(t.Records, newEmployee)

	if err := s.persist(ctx, t); err != nil {
		return employee.EmployeeResponse{}, err
	}

	slog.Info("Employee added", "ec_number", newEmployee.ECNumber, "employee_code", newEmployee.EmployeeCode)
	return employee.ToResponse(newEmployee), nil
}

// UpdateEmployee implements employee.EmployeeService.
// Every row carrying the EC Number is updated; the first one is returned.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.load(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	idx := t.IndexesOf(req.ECNumber)
	if len(idx) == 0 {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
	}

	if req.BasicSalary == nil {
		for _, i := range idx {
			if _, ok := t.Records[i].Decimal(employee.ColBasicSalary); !ok || !t.HasColumn(employee.ColBasicSalary) {
				return employee.EmployeeResponse{}, validator.ValidationErrors{{
					Field:   "basic_salary",
					Message: "basic_salary is required because the stored value is blank or not a number",
				}}
			}
		}
	}

	for _, i := range idx {
		rec := &t.Records[i]
		basic := rec.BasicSalary
		if req.BasicSalary != nil {
			basic = *req.BasicSalary
		}
		salary, err := s.calculator.Derive(basic)
		if err != nil {
			return employee.EmployeeResponse{}, err
		}

		req.ApplyTo(rec)
		rec.ApplySalary(salary)
	}
	t.EnsureColumns(employee.SalaryColumns...)
	t.EnsureColumns(employee.ColSurname, employee.ColFirstName, employee.ColMiddleName, employee.ColFullName)

	if err := s.persist(ctx, t); err != nil {
		return employee.EmployeeResponse{}, err
	}

	slog.Info("Employee updated", "ec_number", req.ECNumber, "rows", len(idx))
	return employee.ToResponse(t.Records[idx[0]]), nil
}

// DeleteEmployee implements employee.EmployeeService.
// Deleting an unknown EC Number is not an error; the table is persisted either way.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, ecNumber string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.load(ctx)
	if err != nil {
		return err
	}

	kept := make([]employee.Employee, 0, len(t.Records))
	for _, e := range t.Records {
		if e.Cell(employee.ColECNumber) != ecNumber {
			kept = append(kept, e)
		}
	}
	removed := len(t.Records) - len(kept)
	t.Records = kept

	if err := s.persist(ctx, t); err != nil {
		return err
	}

	if removed == 0 {
		slog.Warn("Delete matched no employee", "ec_number", ecNumber)
	} else {
		slog.Info("Employee deleted", "ec_number", ecNumber, "rows", removed)
	}
	return nil
}

// ImportEmployees implements employee.EmployeeService.
// Files are parsed concurrently and merged in the order they were given.
func (s *EmployeeServiceImpl) ImportEmployees(ctx context.Context, req employee.ImportEmployeesRequest) (employee.ImportEmployeesResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.ImportEmployeesResponse{}, err
	}

	sheets := make([]file.ImportSheet, len(req.Files))
	g, gCtx := errgroup.WithContext(ctx)
	for i, f := range req.Files {
		i, f := i, f
		g.Go(func() error {
			sheet, err := s.fileService.ReadImport(gCtx, f.Filename, f.Content)
			if err != nil {
				return fmt.Errorf("%s: %w", f.Filename, err)
			}
			sheets[i] = sheet
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return employee.ImportEmployeesResponse{}, err
	}

	incoming := employee.Table{Columns: []string{}}
	for _, sheet := range sheets {
		incoming.EnsureColumns(sheet.Header...)
		for _, cells := range sheet.Records {
			incoming.Records = append(incoming.Records, employee.FromCells(cells))
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.load(ctx)
	if err != nil {
		return employee.ImportEmployeesResponse{}, err
	}

	merged, kept := Merge(t, Normalize(incoming))
	if err := s.persist(ctx, merged); err != nil {
		return employee.ImportEmployeesResponse{}, err
	}

	// uploads are archived only once the merge is on disk
	var archived []string
	for i, sheet := range sheets {
		path, err := s.fileService.Archive(ctx, sheet)
		if err != nil {
			slog.Warn("Failed to archive import", "file", req.Files[i].Filename, "error", err)
			continue
		}
		if path != "" {
			archived = append(archived, path)
		}
	}

	resp := employee.ImportEmployeesResponse{
		Received: len(incoming.Records),
		Imported: kept,
		Skipped:  len(t.Records) + len(incoming.Records) - len(merged.Records),
		Total:    len(merged.Records),
		Archived: archived,
	}
	slog.Info("Employees imported", "received", resp.Received, "imported", resp.Imported, "skipped", resp.Skipped)
	return resp, nil
}

// Merge appends incoming after existing and drops every row whose EC Number was
// already seen, scanning from the top. It returns the merged table and how many
// incoming rows survived.
func Merge(existing, incoming employee.Table) (employee.Table, int) {
	merged := employee.Table{Columns: append([]string(nil), existing.Columns...)}
	merged.EnsureColumns(incoming.Columns...)

	seen := make(map[string]struct{}, len(existing.Records)+len(incoming.Records))
	add := func(e employee.Employee) bool {
		key := e.Cell(employee.ColECNumber)
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
		merged.Records = append(merged.Records, e.Clone())
		return true
	}

	for _, e := range existing.Records {
		add(e)
	}
	kept := 0
	for _, e := range incoming.Records {
		if add(e) {
			kept++
		}
	}
	return Normalize(merged), kept
}
