package employee

import (
	"time"

	"github.com/balsons/erp-backend-go/internal/domain/payroll"
)

// Table is the whole employee master: header columns and rows in file order.
type Table struct {
	Columns []string
	Records []Employee
}

// NewTable returns an empty table carrying exactly the schema columns.
func NewTable() Table {
	return Table{Columns: ColumnNames(), Records: []Employee{}}
}

func (t Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// EnsureColumns appends any of names not yet in the header, preserving order.
func (t *Table) EnsureColumns(names ...string) {
	for _, n := range names {
		if !t.HasColumn(n) {
			t.Columns = append(t.Columns, n)
		}
	}
}

// ECNumbers returns the EC Number of every row in order.
func (t Table) ECNumbers() []string {
	out := make([]string, len(t.Records))
	for i, r := range t.Records {
		out[i] = r.Cell(ColECNumber)
	}
	return out
}

// IndexesOf returns the row positions carrying ecNumber.
func (t Table) IndexesOf(ecNumber string) []int {
	var idx []int
	for i, r := range t.Records {
		if r.Cell(ColECNumber) == ecNumber {
			idx = append(idx, i)
		}
	}
	return idx
}

// Clone deep-copies the table.
func (t Table) Clone() Table {
	out := Table{
		Columns: append([]string(nil), t.Columns...),
		Records: make([]Employee, len(t.Records)),
	}
	for i, r := range t.Records {
		out.Records[i] = r.Clone()
	}
	return out
}

// ApplySalary overwrites Basic Salary and every derived component.
func (e *Employee) ApplySalary(b payroll.SalaryBreakdown) {
	e.BasicSalary = b.Basic
	e.DA = b.DA
	e.TA = b.TA
	e.OA = b.OA
	e.LTA = b.LTA
	e.HRA = b.HRA
	e.PF = b.PF
	e.ESCI = b.ESCI
	e.GrandTotal = b.GrandTotal
	e.clearExtra(SalaryColumns...)
}

// SetNames sets the three name parts and the derived full name.
func (e *Employee) SetNames(surname, firstName, middleName string) {
	e.Surname = surname
	e.FirstName = firstName
	e.MiddleName = middleName
	e.FullName = ComposeFullName(surname, firstName, middleName)
	e.clearExtra(ColSurname, ColFirstName, ColMiddleName, ColFullName)
}

func (e *Employee) SetDOB(t *time.Time) {
	e.DOB = t
	e.clearExtra(ColDOB)
}

func (e *Employee) SetJoiningDate(t *time.Time) {
	e.JoiningDate = t
	e.clearExtra(ColJoiningDate)
}

func (e *Employee) SetStatus(s EmployeeStatus) {
	e.Status = s
	e.clearExtra(ColStatus)
}
