package payroll

import "errors"

var (
	ErrNegativeBasicSalary = errors.New("basic salary must not be negative")
)
