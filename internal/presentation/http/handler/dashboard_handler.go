package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/nywele/salon-api/internal/application/service"
	"github.com/nywele/salon-api/internal/presentation/http/dto/response"
)

// DashboardHandler handles dashboard overview requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetStats returns the salon-wide overview
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardService.GetDashboardStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard stats retrieved successfully", stats)
}
