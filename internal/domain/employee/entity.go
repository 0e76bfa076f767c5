package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	EmployeeCode  string
	ECNumber      string
	Surname       string
	FirstName     string
	MiddleName    string
	FullName      string
	DOB           *time.Time
	Email         string
	JoiningDate   *time.Time
	BankName      string
	AccountNumber string
	IFSCCode      string
	PFNumber      string
	BasicSalary   decimal.Decimal
	DA            decimal.Decimal
	TA            decimal.Decimal
	OA            decimal.Decimal
	LTA           decimal.Decimal
	HRA           decimal.Decimal
	PF            decimal.Decimal
	ESCI          decimal.Decimal
	GrandTotal    decimal.Decimal
	Status        EmployeeStatus

	// Extra holds cells that have no typed field: columns outside Schema and
	// schema cells that could not be parsed. They are written back verbatim.
	Extra map[string]string

	// source keeps the loaded text of typed cells whose canonical form differs,
	// so untouched rows serialize byte-for-byte.
	source map[string]string
}

type EmployeeStatus string

const (
	StatusActive    EmployeeStatus = "Active"
	StatusProbation EmployeeStatus = "Probation"
	StatusResigned  EmployeeStatus = "Resigned"
	StatusRetired   EmployeeStatus = "Retired"
	StatusInactive  EmployeeStatus = "Inactive"
)

// Statuses lists the accepted values in selection order.
var Statuses = []EmployeeStatus{StatusActive, StatusProbation, StatusResigned, StatusRetired, StatusInactive}

func (s EmployeeStatus) IsValid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// ComposeFullName builds "Name of Employee" the same way the entry form does.
func ComposeFullName(surname, firstName, middleName string) string {
	return trimSpace(surname + " " + firstName + " " + middleName)
}

// clearExtra drops raw overrides for the given columns once typed values are set.
func (e *Employee) clearExtra(columns ...string) {
	for _, c := range columns {
		delete(e.Extra, c)
		delete(e.source, c)
	}
}

// Clone returns a copy that shares no mutable state with e.
func (e Employee) Clone() Employee {
	out := e
	if e.DOB != nil {
		d := *e.DOB
		out.DOB = &d
	}
	if e.JoiningDate != nil {
		d := *e.JoiningDate
		out.JoiningDate = &d
	}
	if e.Extra != nil {
		out.Extra = make(map[string]string, len(e.Extra))
		for k, v := range e.Extra {
			out.Extra[k] = v
		}
	}
	if e.source != nil {
		out.source = make(map[string]string, len(e.source))
		for k, v := range e.source {
			out.source[k] = v
		}
	}
	return out
}
