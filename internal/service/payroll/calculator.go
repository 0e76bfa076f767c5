package payroll

import (
	"github.com/balsons/erp-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

type Calculator struct {
}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// Derive computes every allowance and contribution as a fixed ratio of basic.
// Grand Total is basic plus all components, i.e. basic * 2.7558.
func (c *Calculator) Derive(basic decimal.Decimal) (payroll.SalaryBreakdown, error) {
	if basic.IsNegative() {
		return payroll.SalaryBreakdown{}, payroll.ErrNegativeBasicSalary
	}

	b := payroll.SalaryBreakdown{
		Basic: basic,
		DA:    basic.Mul(payroll.RatioDA),
		TA:    basic.Mul(payroll.RatioTA),
		OA:    basic.Mul(payroll.RatioOA),
		LTA:   basic.Mul(payroll.RatioLTA),
		HRA:   basic.Mul(payroll.RatioHRA),
		PF:    basic.Mul(payroll.RatioPF),
		ESCI:  basic.Mul(payroll.RatioESCI),
	}
	b.GrandTotal = decimal.Sum(b.Basic, b.DA, b.TA, b.OA, b.LTA, b.HRA, b.PF, b.ESCI)

	return b, nil
}
