package employee

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/balsons/erp-backend-go/internal/domain/employee"
	"github.com/balsons/erp-backend-go/internal/pkg/storage"
	"github.com/balsons/erp-backend-go/internal/pkg/validator"
	"github.com/balsons/erp-backend-go/internal/repository/flatfile"
	"github.com/balsons/erp-backend-go/internal/service/file"
	"github.com/balsons/erp-backend-go/internal/service/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const masterFile = "employee_master_data.csv"

type testEnv struct {
	dir     string
	repo    employee.EmployeeRepository
	service employee.EmployeeService
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	return newArchivingTestEnv(t, false)
}

func newArchivingTestEnv(t *testing.T, archive bool) testEnv {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewLocalStorage(dir)
	require.NoError(t, err)

	repo := flatfile.NewEmployeeRepository(store, masterFile)
	return testEnv{
		dir:     dir,
		repo:    repo,
		service: NewEmployeeService(repo, payroll.NewCalculator(), file.NewFileService(store, archive)),
	}
}

func strPtr(s string) *string { return &s }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func seed(t *testing.T, env testEnv, csv string) {
	t.Helper()
	_, err := env.service.ImportEmployees(context.Background(), employee.ImportEmployeesRequest{
		Files: []employee.ImportFile{{Filename: "seed.csv", Content: strings.NewReader(csv)}},
	})
	require.NoError(t, err)
}

func TestCreateEmployee_Scenario(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	got, err := env.service.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		EmployeeCode: "emp-01",
		Surname:      " rao ",
		FirstName:    "anil",
		BasicSalary:  dec("10000"),
		DOB:          "1990-03-15",
		JoiningDate:  "2015-06-01",
	})
	require.NoError(t, err)

	assert.Equal(t, "EC001", got.ECNumber)
	assert.Equal(t, "EMP-01", got.EmployeeCode)
	assert.Equal(t, "RAO ANIL", got.FullName)
	assert.Equal(t, "Active", got.Status)
	assert.True(t, got.DA.Equal(dec("5000")))
	assert.True(t, got.TA.Equal(dec("2000")))
	assert.True(t, got.OA.Equal(dec("2000")))
	assert.True(t, got.LTA.Equal(dec("833")))
	assert.True(t, got.HRA.Equal(dec("5000")))
	assert.True(t, got.PF.Equal(dec("2400")))
	assert.True(t, got.ESCI.Equal(dec("325")))
	assert.True(t, got.GrandTotal.Equal(dec("27558")), got.GrandTotal.String())

	second, err := env.service.CreateEmployee(ctx, employee.CreateEmployeeRequest{Surname: "SHAH", BasicSalary: dec("0")})
	require.NoError(t, err)
	assert.Equal(t, "EC002", second.ECNumber)
	assert.True(t, second.GrandTotal.IsZero())

	tbl, err := env.repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, employee.ColumnNames(), tbl.Columns)
	assert.Equal(t, []string{"EC001", "EC002"}, tbl.ECNumbers())
	assert.Equal(t, "1990-03-15", tbl.Records[0].Cell(employee.ColDOB))
}

func TestCreateEmployee_Validation(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.service.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		BasicSalary: dec("-1"),
		DOB:         "1949-12-31",
		JoiningDate: "15/06/2015",
		Status:      "Fired",
	})

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	fields := verrs.ToMap()
	assert.Contains(t, fields, "basic_salary")
	assert.Contains(t, fields, "dob")
	assert.Contains(t, fields, "joining_date")
	assert.Contains(t, fields, "employee_status")

	tbl, err := env.service.LoadTable(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tbl.Records)
}

func TestUpdateEmployee_OnlyMutableFieldsChange(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	seed(t, env, "Employee Code,EC Number,Surname,First Name,Name of Employee,Email ID,Bank Name,Basic Salary,Employee Status\n"+
		"E-1,EC001,RAO,ANIL,RAO ANIL,anil@example.com,SBI,10000,Active\n"+
		"E-2,EC002,SHAH,MEERA,SHAH MEERA,meera@example.com,HDFC,20000,Probation\n")

	got, err := env.service.UpdateEmployee(ctx, employee.UpdateEmployeeRequest{
		ECNumber: "EC002",
		Surname:  strPtr("x"),
	})
	require.NoError(t, err)

	assert.Equal(t, "X", got.Surname)
	assert.Equal(t, "X MEERA", got.FullName)
	assert.Equal(t, "E-2", got.EmployeeCode)
	assert.Equal(t, "EC002", got.ECNumber)
	assert.Equal(t, "meera@example.com", got.Email)
	assert.Equal(t, "HDFC", got.BankName)
	assert.Equal(t, "Probation", got.Status)
	assert.True(t, got.BasicSalary.Equal(dec("20000")))
	assert.True(t, got.GrandTotal.Equal(dec("55116")), got.GrandTotal.String())

	tbl, err := env.service.LoadTable(ctx)
	require.NoError(t, err)
	assert.Equal(t, "RAO", tbl.Records[0].Surname)
	assert.Equal(t, "X", tbl.Records[1].Surname)
}

func TestUpdateEmployee_RecomputesSalary(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	created, err := env.service.CreateEmployee(ctx, employee.CreateEmployeeRequest{Surname: "RAO", BasicSalary: dec("10000")})
	require.NoError(t, err)

	basic := dec("0")
	got, err := env.service.UpdateEmployee(ctx, employee.UpdateEmployeeRequest{
		ECNumber:    created.ECNumber,
		BasicSalary: &basic,
		Status:      strPtr("Resigned"),
		JoiningDate: strPtr("2020-01-01"),
	})
	require.NoError(t, err)

	assert.True(t, got.GrandTotal.IsZero())
	assert.True(t, got.DA.IsZero())
	assert.Equal(t, "Resigned", got.Status)
	assert.Equal(t, "2020-01-01", got.JoiningDate)
}

func TestUpdateEmployee_UnparsedBasicRequiresSalary(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	seed(t, env, "EC Number,Surname,Basic Salary,Grand Total,Employee Status\n"+
		"EC001,RAO,,999,Active\n"+
		"EC002,SHAH,n/a,,Active\n")

	for _, ec := range []string{"EC001", "EC002"} {
		_, err := env.service.UpdateEmployee(ctx, employee.UpdateEmployeeRequest{
			ECNumber: ec,
			Surname:  strPtr("X"),
		})
		var verrs validator.ValidationErrors
		require.True(t, errors.As(err, &verrs), ec)
		assert.Contains(t, verrs.ToMap(), "basic_salary")
	}

	tbl, err := env.service.LoadTable(ctx)
	require.NoError(t, err)
	assert.Equal(t, "RAO", tbl.Records[0].Surname)
	assert.Equal(t, "", tbl.Records[0].Cell(employee.ColBasicSalary))
	assert.Equal(t, "999", tbl.Records[0].Cell(employee.ColGrandTotal))
	assert.Equal(t, "n/a", tbl.Records[1].Cell(employee.ColBasicSalary))

	basic := dec("10000")
	got, err := env.service.UpdateEmployee(ctx, employee.UpdateEmployeeRequest{
		ECNumber:    "EC001",
		Surname:     strPtr("X"),
		BasicSalary: &basic,
	})
	require.NoError(t, err)
	assert.True(t, got.GrandTotal.Equal(dec("27558")), got.GrandTotal.String())
}

func TestUpdateEmployee_MissingBasicColumnRequiresSalary(t *testing.T) {
	env := newTestEnv(t)
	seed(t, env, "EC Number,Surname\nEC001,RAO\n")

	_, err := env.service.UpdateEmployee(context.Background(), employee.UpdateEmployeeRequest{
		ECNumber: "EC001",
		Surname:  strPtr("X"),
	})
	var verrs validator.ValidationErrors
	assert.True(t, errors.As(err, &verrs))
}

func TestUpdateEmployee_NotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.service.UpdateEmployee(context.Background(), employee.UpdateEmployeeRequest{
		ECNumber: "EC404",
		Surname:  strPtr("X"),
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestGetEmployee_NotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.service.GetEmployee(context.Background(), "EC001")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestAddThenDeleteRestoresTable(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	seed(t, env, "EC Number,Surname,Basic Salary,Employee Status\nEC001,RAO,100,Active\nEC007,SHAH,200,Retired\n")

	before, err := env.service.LoadTable(ctx)
	require.NoError(t, err)

	created, err := env.service.CreateEmployee(ctx, employee.CreateEmployeeRequest{Surname: "NEW", BasicSalary: dec("500")})
	require.NoError(t, err)
	assert.Equal(t, "EC008", created.ECNumber)

	require.NoError(t, env.service.DeleteEmployee(ctx, created.ECNumber))

	after, err := env.service.LoadTable(ctx)
	require.NoError(t, err)
	assert.Equal(t, before.ECNumbers(), after.ECNumbers())
	for i := range before.Records {
		assert.Equal(t, before.Records[i].Cells(before.Columns), after.Records[i].Cells(before.Columns))
	}
}

func TestDeleteEmployee_KeepsOtherRowsVerbatim(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	body := "EC Number,Date of Birth,Basic Salary,Employee Status\n" +
		"EC001,12345,10000.50,Active\n" +
		"EC002,1990-03-15,200,Active\n"
	require.NoError(t, os.WriteFile(filepath.Join(env.dir, masterFile), []byte(body), 0o644))

	require.NoError(t, env.service.DeleteEmployee(ctx, "EC002"))

	out, err := os.ReadFile(filepath.Join(env.dir, masterFile))
	require.NoError(t, err)
	assert.Equal(t, "EC Number,Date of Birth,Basic Salary,Employee Status\nEC001,12345,10000.50,Active\n", string(out))
}

func TestDeleteEmployee_UnknownIsNoop(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	seed(t, env, "EC Number,Surname\nEC001,RAO\n")

	require.NoError(t, env.service.DeleteEmployee(ctx, "EC999"))

	tbl, err := env.service.LoadTable(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"EC001"}, tbl.ECNumbers())
}

func TestDeleteEmployee_RemovesEveryMatch(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	require.NoError(t, env.repo.Save(ctx, employee.Table{
		Columns: []string{employee.ColECNumber, employee.ColSurname},
		Records: []employee.Employee{
			{ECNumber: "EC001", Surname: "A"},
			{ECNumber: "EC002", Surname: "B"},
			{ECNumber: "EC001", Surname: "C"},
		},
	}))

	require.NoError(t, env.service.DeleteEmployee(ctx, "EC001"))

	tbl, err := env.service.LoadTable(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"EC002"}, tbl.ECNumbers())
}

func TestImportEmployees_Dedup(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	resp, err := env.service.ImportEmployees(ctx, employee.ImportEmployeesRequest{
		Files: []employee.ImportFile{{
			Filename: "batch.csv",
			Content:  strings.NewReader("EC Number,Surname\nEC005,FIRST\nEC005,SECOND\n"),
		}},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Received)
	assert.Equal(t, 1, resp.Imported)
	assert.Equal(t, 1, resp.Skipped)
	assert.Equal(t, 1, resp.Total)

	tbl, err := env.service.LoadTable(ctx)
	require.NoError(t, err)
	require.Len(t, tbl.Records, 1)
	assert.Equal(t, "FIRST", tbl.Records[0].Surname)
	assert.Equal(t, employee.StatusActive, tbl.Records[0].Status)
}

func TestImportEmployees_ExistingWinsAcrossFiles(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	seed(t, env, "EC Number,Surname\nEC001,OLD\n")

	resp, err := env.service.ImportEmployees(ctx, employee.ImportEmployeesRequest{
		Files: []employee.ImportFile{
			{Filename: "a.csv", Content: strings.NewReader("EC Number,Surname,Grade\nEC001,NEW,A1\nEC002,TWO,B2\n")},
			{Filename: "b.csv", Content: strings.NewReader("EC Number,Surname\nEC002,DUP\nEC003,THREE\n")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 4, resp.Received)
	assert.Equal(t, 2, resp.Imported)
	assert.Equal(t, 3, resp.Total)

	tbl, err := env.service.LoadTable(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"EC001", "EC002", "EC003"}, tbl.ECNumbers())
	assert.Equal(t, "OLD", tbl.Records[0].Surname)
	assert.Equal(t, "TWO", tbl.Records[1].Surname)
	assert.True(t, tbl.HasColumn("Grade"))
	assert.Equal(t, "B2", tbl.Records[1].Cell("Grade"))
}

func TestImportEmployees_ArchivesAfterSave(t *testing.T) {
	env := newArchivingTestEnv(t, true)

	resp, err := env.service.ImportEmployees(context.Background(), employee.ImportEmployeesRequest{
		Files: []employee.ImportFile{{Filename: "batch.csv", Content: strings.NewReader("EC Number,Surname\nEC001,RAO\n")}},
	})
	require.NoError(t, err)
	require.Len(t, resp.Archived, 1)
	_, err = os.Stat(filepath.Join(env.dir, resp.Archived[0]))
	assert.NoError(t, err)
}

func TestImportEmployees_RejectsUnsupportedFile(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.service.ImportEmployees(context.Background(), employee.ImportEmployeesRequest{
		Files: []employee.ImportFile{{Filename: "roster.txt", Content: strings.NewReader("x")}},
	})

	var verrs validator.ValidationErrors
	assert.True(t, errors.As(err, &verrs))
}

func TestListEmployees_Filter(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	seed(t, env, "EC Number,Employee Code,Name of Employee,Employee Status\n"+
		"EC001,E-1,RAO ANIL,Active\nEC002,E-2,SHAH MEERA,Resigned\nEC003,E-3,RAO SITA,Resigned\n")

	all, err := env.service.ListEmployees(ctx, employee.EmployeeFilter{})
	require.NoError(t, err)
	assert.Equal(t, 3, all.Total)

	resigned, err := env.service.ListEmployees(ctx, employee.EmployeeFilter{Status: strPtr("Resigned"), Search: strPtr("rao")})
	require.NoError(t, err)
	require.Equal(t, 1, resigned.Total)
	assert.Equal(t, "EC003", resigned.Employees[0].ECNumber)

	_, err = env.service.ListEmployees(ctx, employee.EmployeeFilter{Status: strPtr("Gone")})
	var verrs validator.ValidationErrors
	assert.True(t, errors.As(err, &verrs))
}

type failingRepo struct {
	employee.EmployeeRepository
}

func (failingRepo) Load(ctx context.Context) (employee.Table, error) {
	return employee.NewTable(), nil
}

func (failingRepo) Save(ctx context.Context, t employee.Table) error {
	return errors.New("disk full")
}

func TestCreateEmployee_PersistenceFailure(t *testing.T) {
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	svc := NewEmployeeService(failingRepo{}, payroll.NewCalculator(), file.NewFileService(store, false))

	_, err = svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{Surname: "RAO", BasicSalary: dec("1")})
	assert.ErrorIs(t, err, employee.ErrPersistenceFailure)
	assert.ErrorContains(t, err, "disk full")
}

func TestImportEmployees_PersistenceFailureArchivesNothing(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewLocalStorage(dir)
	require.NoError(t, err)
	svc := NewEmployeeService(failingRepo{}, payroll.NewCalculator(), file.NewFileService(store, true))

	_, err = svc.ImportEmployees(context.Background(), employee.ImportEmployeesRequest{
		Files: []employee.ImportFile{{Filename: "batch.csv", Content: strings.NewReader("EC Number\nEC001\n")}},
	})
	assert.ErrorIs(t, err, employee.ErrPersistenceFailure)

	_, err = os.Stat(filepath.Join(dir, "imports"))
	assert.True(t, os.IsNotExist(err))
}
