package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/mithuncards/cardpos/internal/application/service"
	"github.com/mithuncards/cardpos/internal/presentation/http/dto/response"
)

// DashboardHandler serves the landing-page summary
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetStats handles building the dashboard summary
func (h *DashboardHandler) GetStats(c *gin.Context) {
	response.OK(c, "Dashboard retrieved successfully", h.dashboardService.Build())
}
