package employee

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const DateLayout = "2006-01-02"

func trimSpace(s string) string {
	return strings.TrimSpace(s)
}

// FromCells builds a record from a header->cell mapping without validating it.
// Cells that do not parse into their typed field are kept in Extra unchanged.
// Dates must already be in DateLayout; lenient parsing is an import concern.
func FromCells(cells map[string]string) Employee {
	var e Employee
	for name, raw := range cells {
		col, ok := LookupColumn(name)
		if !ok {
			e.setExtra(name, raw)
			continue
		}
		if !e.setCell(col, raw) {
			e.setExtra(name, raw)
			continue
		}
		if canonical := e.typedCell(name); canonical != raw {
			if e.source == nil {
				e.source = make(map[string]string)
			}
			e.source[name] = raw
		}
	}
	return e
}

func (e *Employee) setExtra(name, raw string) {
	if e.Extra == nil {
		e.Extra = make(map[string]string)
	}
	e.Extra[name] = raw
}

// setCell reports false when raw cannot be represented by the typed field.
func (e *Employee) setCell(col Column, raw string) bool {
	switch col.Kind {
	case KindDate:
		if trimSpace(raw) == "" {
			return true
		}
		t, err := time.Parse(DateLayout, trimSpace(raw))
		if err != nil {
			return false
		}
		e.setDate(col.Name, &t)
		return true
	case KindDecimal:
		if trimSpace(raw) == "" {
			// keep the blank so it round-trips as blank instead of "0"
			return false
		}
		d, err := decimal.NewFromString(trimSpace(raw))
		if err != nil {
			return false
		}
		e.setDecimal(col.Name, d)
		return true
	case KindStatus:
		e.Status = EmployeeStatus(trimSpace(raw))
		return true
	default:
		e.setString(col.Name, raw)
		return true
	}
}

func (e *Employee) setDate(name string, t *time.Time) {
	switch name {
	case ColDOB:
		e.DOB = t
	case ColJoiningDate:
		e.JoiningDate = t
	}
}

func (e *Employee) setDecimal(name string, d decimal.Decimal) {
	switch name {
	case ColBasicSalary:
		e.BasicSalary = d
	case ColDA:
		e.DA = d
	case ColTA:
		e.TA = d
	case ColOA:
		e.OA = d
	case ColLTA:
		e.LTA = d
	case ColHRA:
		e.HRA = d
	case ColPF:
		e.PF = d
	case ColESCI:
		e.ESCI = d
	case ColGrandTotal:
		e.GrandTotal = d
	}
}

func (e *Employee) setString(name, v string) {
	switch name {
	case ColEmployeeCode:
		e.EmployeeCode = v
	case ColECNumber:
		e.ECNumber = v
	case ColSurname:
		e.Surname = v
	case ColFirstName:
		e.FirstName = v
	case ColMiddleName:
		e.MiddleName = v
	case ColFullName:
		e.FullName = v
	case ColEmail:
		e.Email = v
	case ColBankName:
		e.BankName = v
	case ColAccountNumber:
		e.AccountNumber = v
	case ColIFSCCode:
		e.IFSCCode = v
	case ColPFNumber:
		e.PFNumber = v
	}
}

// Cell returns the serialized value of column for this record.
func (e Employee) Cell(column string) string {
	if raw, ok := e.Extra[column]; ok {
		return raw
	}
	if raw, ok := e.source[column]; ok {
		return raw
	}
	return e.typedCell(column)
}

// Decimal returns the typed value of a salary column, false when the cell is
// outside Schema, not a decimal column or held raw in Extra.
func (e Employee) Decimal(column string) (decimal.Decimal, bool) {
	col, ok := LookupColumn(column)
	if !ok || col.Kind != KindDecimal {
		return decimal.Zero, false
	}
	if _, unparsed := e.Extra[column]; unparsed {
		return decimal.Zero, false
	}
	return decimal.RequireFromString(e.typedCell(column)), true
}

func (e Employee) typedCell(column string) string {
	switch column {
	case ColEmployeeCode:
		return e.EmployeeCode
	case ColECNumber:
		return e.ECNumber
	case ColSurname:
		return e.Surname
	case ColFirstName:
		return e.FirstName
	case ColMiddleName:
		return e.MiddleName
	case ColFullName:
		return e.FullName
	case ColDOB:
		return formatDate(e.DOB)
	case ColEmail:
		return e.Email
	case ColJoiningDate:
		return formatDate(e.JoiningDate)
	case ColBankName:
		return e.BankName
	case ColAccountNumber:
		return e.AccountNumber
	case ColIFSCCode:
		return e.IFSCCode
	case ColPFNumber:
		return e.PFNumber
	case ColBasicSalary:
		return e.BasicSalary.String()
	case ColDA:
		return e.DA.String()
	case ColTA:
		return e.TA.String()
	case ColOA:
		return e.OA.String()
	case ColLTA:
		return e.LTA.String()
	case ColHRA:
		return e.HRA.String()
	case ColPF:
		return e.PF.String()
	case ColESCI:
		return e.ESCI.String()
	case ColGrandTotal:
		return e.GrandTotal.String()
	case ColStatus:
		return string(e.Status)
	}
	return ""
}

// Cells serializes the record in the given column order.
func (e Employee) Cells(columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = e.Cell(c)
	}
	return out
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}
