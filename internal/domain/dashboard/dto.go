package dashboard

import "github.com/shopspring/decimal"

// ========== EMPLOYEE SUMMARY ==========

// SummaryResponse is recomputed from the current employee table on every call
type SummaryResponse struct {
	TotalEmployee     int             `json:"total_employee"`
	ActiveEmployee    int             `json:"active_employee"`
	ProbationEmployee int             `json:"probation_employee"`
	ResignedEmployee  int             `json:"resigned_employee"`
	RetiredEmployee   int             `json:"retired_employee"`
	InactiveEmployee  int             `json:"inactive_employee"`
	TotalGrandTotal   decimal.Decimal `json:"total_grand_total"` // sum of Grand Total over all rows
	UnparsedCells     int             `json:"unparsed_grand_total_cells,omitempty"`
	UpdatedAt         string          `json:"updated_at"`
}
