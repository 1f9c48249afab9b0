package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mithuncards/cardpos/internal/application/service"
	"github.com/mithuncards/cardpos/internal/presentation/http/dto/response"
)

// ReportHandler handles sales report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Get handles building a sales report for one period. The period
// defaults to today's daily report.
func (h *ReportHandler) Get(c *gin.Context) {
	kind := c.DefaultQuery("period", "daily")
	date := c.Query("date")
	if date == "" {
		switch kind {
		case "monthly":
			date = time.Now().Format("2006-01")
		case "yearly":
			date = time.Now().Format("2006")
		default:
			date = time.Now().Format("2006-01-02")
		}
	}

	period, err := service.ParsePeriod(kind, date)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Report generated successfully", h.reportService.BuildReport(period))
}
