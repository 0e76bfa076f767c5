package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetSummary returns status counts and the Grand Total sum of the current table
	GetSummary(ctx context.Context) (SummaryResponse, error)
}
