package dashboard

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/balsons/erp-backend-go/internal/domain/dashboard"
	"github.com/balsons/erp-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
)

type DashboardServiceImpl struct {
	employeeService employee.EmployeeService
}

func NewDashboardService(employeeService employee.EmployeeService) dashboard.DashboardService {
	return &DashboardServiceImpl{
		employeeService: employeeService,
	}
}

// GetSummary implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetSummary(ctx context.Context) (dashboard.SummaryResponse, error) {
	t, err := s.employeeService.LoadTable(ctx)
	if err != nil {
		return dashboard.SummaryResponse{}, err
	}

	summary := Summarize(t)
	summary.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	if summary.UnparsedCells > 0 {
		slog.Warn("Grand Total cells could not be parsed", "count", summary.UnparsedCells)
	}
	return summary, nil
}

// Summarize counts rows per status and sums Grand Total. A Grand Total cell
// that is not a number contributes zero and is reported in UnparsedCells.
func Summarize(t employee.Table) dashboard.SummaryResponse {
	summary := dashboard.SummaryResponse{
		TotalEmployee:   len(t.Records),
		TotalGrandTotal: decimal.Zero,
	}

	for _, e := range t.Records {
		switch e.Status {
		case employee.StatusActive:
			summary.ActiveEmployee++
		case employee.StatusProbation:
			summary.ProbationEmployee++
		case employee.StatusResigned:
			summary.ResignedEmployee++
		case employee.StatusRetired:
			summary.RetiredEmployee++
		case employee.StatusInactive:
			summary.InactiveEmployee++
		}

		if raw, ok := e.Extra[employee.ColGrandTotal]; ok {
			if strings.TrimSpace(raw) != "" {
				summary.UnparsedCells++
			}
			continue
		}
		summary.TotalGrandTotal = summary.TotalGrandTotal.Add(e.GrandTotal)
	}

	return summary
}
