package payroll

import "github.com/shopspring/decimal"

// SalaryCalculator derives allowances and contributions from Basic Salary.
type SalaryCalculator interface {
	Derive(basic decimal.Decimal) (SalaryBreakdown, error)
}
