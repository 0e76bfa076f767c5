package http

import (
	"net/http"

	"github.com/balsons/erp-backend-go/internal/domain/dashboard"
	"github.com/balsons/erp-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	// GetSummary returns status counts and the Grand Total sum
	GetSummary(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// GetSummary handles GET /dashboard
func (h *dashboardHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetSummary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
