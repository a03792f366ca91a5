package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nywele/salon-api/internal/application/service"
	"github.com/nywele/salon-api/internal/presentation/http/dto/response"
)

const reportDateLayout = "2006-01-02"

// ReportHandler handles staff performance report requests
type ReportHandler struct {
	reportService *service.StaffReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.StaffReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetStaffReport handles a staff performance report request
// @Summary Staff performance report
// @Description Build the performance report for one staff member over a date range
// @Tags reports
// @Produce json
// @Param id path string true "Staff ID"
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /reports/staff/{id} [get]
func (h *ReportHandler) GetStaffReport(c *gin.Context) {
	staffID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid staff ID")
		return
	}

	from, err := time.Parse(reportDateLayout, c.Query("from"))
	if err != nil {
		response.BadRequest(c, "Invalid or missing 'from' date, expected YYYY-MM-DD")
		return
	}

	to, err := time.Parse(reportDateLayout, c.Query("to"))
	if err != nil {
		response.BadRequest(c, "Invalid or missing 'to' date, expected YYYY-MM-DD")
		return
	}

	report, err := h.reportService.BuildReport(c.Request.Context(), staffID, from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Report built successfully", report)
}
