package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/bussnote/bussnote_backend/internal/core/ports/services"
	"github.com/bussnote/bussnote_backend/internal/dto"
	"github.com/bussnote/bussnote_backend/internal/middleware"
)

// reportingHandler handles HTTP requests for dashboard and chart-data reads.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to reporting.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/dashboard", h.getDashboard)
		reports.GET("/monthly", h.getMonthlyTotals)
	}
}

// getDashboard godoc
// @Summary Dashboard summary
// @Description Aggregates outstanding totals and invoice status counts; overdue is derived against the current date
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.DashboardResponse
// @Failure 500 {object} map[string]string "Failed to build dashboard"
// @Router /reports/dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.reportingService.GetDashboard(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build dashboard summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(summary))
}

// getMonthlyTotals godoc
// @Summary Monthly invoice volume
// @Description Per-month subtotal/brokerage/count series for charting, oldest first
// @Tags reports
// @Produce  json
// @Param   months query int false "Number of calendar months" default(12)
// @Success 200 {object} dto.MonthlyReportResponse
// @Failure 500 {object} map[string]string "Failed to build monthly report"
// @Router /reports/monthly [get]
func (h *reportingHandler) getMonthlyTotals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	months, _ := strconv.Atoi(c.DefaultQuery("months", "12"))

	totals, err := h.reportingService.GetMonthlyTotals(c.Request.Context(), months)
	if err != nil {
		logger.Error("Failed to build monthly report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build monthly report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthlyReportResponse(totals))
}
