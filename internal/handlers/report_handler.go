package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"expenso/internal/services"
)

// ReportHandler serves the reporting views.
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetMonthlyReport returns the full report of a month.
// @Summary     Monthly report
// @Description Statistics, daily and cumulative series, budget usage, daily average, top category and cycle for a month (default: current)
// @Tags        reports
// @Produce     json
// @Param       month query int false "Month 1-12 (default current)"
// @Param       year  query int false "Year (default current)"
// @Success     200 {object} response.Envelope{result=services.MonthlyReport} "Monthly report"
// @Failure     400 {object} response.Envelope "Invalid input"
// @Failure     500 {object} response.Envelope "Server error"
// @Router      /reports/monthly [get]
func (h *ReportHandler) GetMonthlyReport(c *gin.Context) {
	var q MonthQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, bindError(err), "Failed to build monthly report")
		return
	}

	report, err := h.reportService.GetMonthlyReport(c.Request.Context(), q.Month, q.Year)
	if err != nil {
		respondWithError(c, err, "Failed to build monthly report")
		return
	}

	respondOK(c, http.StatusOK, report, "Monthly report built successfully")
}
