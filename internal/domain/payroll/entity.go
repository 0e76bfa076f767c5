package payroll

import "github.com/shopspring/decimal"

// Allowance and contribution ratios applied to Basic Salary.
var (
	RatioDA   = decimal.RequireFromString("0.5")
	RatioTA   = decimal.RequireFromString("0.2")
	RatioOA   = decimal.RequireFromString("0.2")
	RatioLTA  = decimal.RequireFromString("0.0833")
	RatioHRA  = decimal.RequireFromString("0.5")
	RatioPF   = decimal.RequireFromString("0.24")
	RatioESCI = decimal.RequireFromString("0.0325")
)

// GrandTotalMultiplier is 1 plus the sum of all ratios.
var GrandTotalMultiplier = decimal.RequireFromString("2.7558")

// SalaryBreakdown is every salary figure derived from one Basic Salary.
type SalaryBreakdown struct {
	Basic      decimal.Decimal
	DA         decimal.Decimal
	TA         decimal.Decimal
	OA         decimal.Decimal
	LTA        decimal.Decimal
	HRA        decimal.Decimal
	PF         decimal.Decimal
	ESCI       decimal.Decimal
	GrandTotal decimal.Decimal
}
