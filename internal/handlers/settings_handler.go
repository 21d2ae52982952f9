package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"expenso/internal/services"
)

// SettingsHandler handles the global settings record.
type SettingsHandler struct {
	settingsService services.SettingsServicer
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settingsService services.SettingsServicer) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// SettingsRequest represents the payload for creating or updating settings.
// Omitted fields keep their current (or default) value.
type SettingsRequest struct {
	CycleStartDay      *int             `json:"cycle_start_day" binding:"omitempty,min=1,max=28" example:"1"`
	MonthlyBudget      *decimal.Decimal `json:"monthly_budget" binding:"omitempty,money" swaggertype:"number"`
	ClearMonthlyBudget bool             `json:"clear_monthly_budget"`
	Currency           *string          `json:"currency" binding:"omitempty,iso4217" example:"USD"`
}

func (r SettingsRequest) input() services.SettingsInput {
	return services.SettingsInput{
		CycleStartDay:      r.CycleStartDay,
		MonthlyBudget:      r.MonthlyBudget,
		ClearMonthlyBudget: r.ClearMonthlyBudget,
		Currency:           r.Currency,
	}
}

// GetSettings returns the settings.
// @Summary     Get settings
// @Tags        settings
// @Produce     json
// @Success     200 {object} response.Envelope{result=models.Settings} "Settings"
// @Failure     404 {object} response.Envelope "Settings were never saved"
// @Failure     500 {object} response.Envelope "Server error"
// @Router      /settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Failed to fetch settings")
		return
	}

	respondOK(c, http.StatusOK, settings, "Settings fetched successfully")
}

// CreateSettings saves the settings for the first time.
// @Summary     Create settings
// @Tags        settings
// @Accept      json
// @Produce     json
// @Param       request body SettingsRequest true "Settings"
// @Success     201 {object} response.Envelope{result=models.Settings} "Settings created"
// @Failure     400 {object} response.Envelope "Invalid input"
// @Failure     409 {object} response.Envelope "Settings already exist"
// @Failure     500 {object} response.Envelope "Server error"
// @Router      /settings [post]
func (h *SettingsHandler) CreateSettings(c *gin.Context) {
	var req SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err), "Failed to create settings")
		return
	}

	settings, err := h.settingsService.CreateSettings(c.Request.Context(), req.input())
	if err != nil {
		respondWithError(c, err, "Failed to create settings")
		return
	}

	respondOK(c, http.StatusCreated, settings, "Settings created successfully")
}

// UpdateSettings creates or updates the settings.
// @Summary     Update settings
// @Description Upsert: creates the settings on first use, otherwise changes only the supplied fields
// @Tags        settings
// @Accept      json
// @Produce     json
// @Param       request body SettingsRequest true "Fields to change"
// @Success     200 {object} response.Envelope{result=models.Settings} "Settings saved"
// @Failure     400 {object} response.Envelope "Invalid input"
// @Failure     500 {object} response.Envelope "Server error"
// @Router      /settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err), "Failed to update settings")
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), req.input())
	if err != nil {
		respondWithError(c, err, "Failed to update settings")
		return
	}

	respondOK(c, http.StatusOK, settings, "Settings updated successfully")
}

// GetCycle returns the current budgeting cycle.
// @Summary     Current budgeting cycle
// @Description Start date, next reset and days remaining of the cycle containing today
// @Tags        settings
// @Produce     json
// @Success     200 {object} response.Envelope{result=period.Cycle} "Cycle"
// @Failure     500 {object} response.Envelope "Server error"
// @Router      /settings/cycle [get]
func (h *SettingsHandler) GetCycle(c *gin.Context) {
	cycle, err := h.settingsService.GetCycle(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Failed to fetch budgeting cycle")
		return
	}

	respondOK(c, http.StatusOK, cycle, "Budgeting cycle fetched successfully")
}
