package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"expenso/internal/services"
)

// ExpenseHandler handles expense-related requests.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService services.ExpenseServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// CreateExpenseRequest represents the request payload for creating an expense.
type CreateExpenseRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required,money" swaggertype:"number" example:"12.5"`
	Description string          `json:"description" binding:"required,notblank,max=255"`
	Date        string          `json:"date" binding:"required" example:"2025-03-14"`
	CategoryID  string          `json:"category_id" binding:"required,uuid"`
}

// UpdateExpenseRequest represents the request payload for updating an expense.
// Omitted fields are left unchanged.
type UpdateExpenseRequest struct {
	Amount      *decimal.Decimal `json:"amount" binding:"omitempty,money" swaggertype:"number"`
	Description *string          `json:"description" binding:"omitempty,notblank,max=255"`
	Date        *string          `json:"date"`
	CategoryID  *string          `json:"category_id" binding:"omitempty,uuid"`
}

// ListExpensesQuery holds the listing filters.
type ListExpensesQuery struct {
	MonthQuery
	CategoryID string `form:"category_id" binding:"omitempty,uuid"`
}

// ListExpenses lists the expenses of a month.
// @Summary     List expenses
// @Description List the expenses of one month (default: current), most recent first, each with its category
// @Tags        expenses
// @Produce     json
// @Param       month       query int    false "Month 1-12 (default current)"
// @Param       year        query int    false "Year (default current)"
// @Param       category_id query string false "Only expenses of this category"
// @Success     200 {object} response.Envelope{result=[]models.Expense} "Expenses"
// @Failure     400 {object} response.Envelope "Invalid input"
// @Failure     500 {object} response.Envelope "Server error"
// @Router      /expenses [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	var q ListExpensesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, bindError(err), "Failed to fetch expenses")
		return
	}

	expenses, err := h.expenseService.ListExpenses(c.Request.Context(), services.ExpenseFilter{
		Month:      q.Month,
		Year:       q.Year,
		CategoryID: q.CategoryID,
	})
	if err != nil {
		respondWithError(c, err, "Failed to fetch expenses")
		return
	}

	respondOK(c, http.StatusOK, expenses, "Expenses fetched successfully")
}

// GetMonthlyStats returns the aggregate statistics of a month.
// @Summary     Monthly statistics
// @Description Total spent, expense count and per-category totals for a month (default: current)
// @Tags        expenses
// @Produce     json
// @Param       month query int false "Month 1-12 (default current)"
// @Param       year  query int false "Year (default current)"
// @Success     200 {object} response.Envelope{result=reports.MonthlyStats} "Monthly statistics"
// @Failure     400 {object} response.Envelope "Invalid input"
// @Failure     500 {object} response.Envelope "Server error"
// @Router      /expenses/stats [get]
func (h *ExpenseHandler) GetMonthlyStats(c *gin.Context) {
	var q MonthQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, bindError(err), "Failed to fetch monthly stats")
		return
	}

	stats, err := h.expenseService.GetMonthlyStats(c.Request.Context(), q.Month, q.Year)
	if err != nil {
		respondWithError(c, err, "Failed to fetch monthly stats")
		return
	}

	respondOK(c, http.StatusOK, stats, "Monthly stats fetched successfully")
}

// GetExpense returns a single expense.
// @Summary     Get expense by ID
// @Tags        expenses
// @Produce     json
// @Param       id path string true "Expense ID"
// @Success     200 {object} response.Envelope{result=models.Expense} "Expense"
// @Failure     400 {object} response.Envelope "Invalid ID"
// @Failure     404 {object} response.Envelope "Expense not found"
// @Failure     500 {object} response.Envelope "Server error"
// @Router      /expenses/{id} [get]
func (h *ExpenseHandler) GetExpense(c *gin.Context) {
	id, err := parsePathID(c)
	if err != nil {
		respondWithError(c, err, "Failed to fetch expense")
		return
	}

	expense, err := h.expenseService.GetExpenseByID(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err, "Failed to fetch expense")
		return
	}

	respondOK(c, http.StatusOK, expense, "Expense fetched successfully")
}

// CreateExpense handles the creation of a new expense.
// @Summary     Create an expense
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Param       request body CreateExpenseRequest true "Expense details"
// @Success     201 {object} response.Envelope{result=models.Expense} "Expense created"
// @Failure     400 {object} response.Envelope "Invalid input"
// @Failure     404 {object} response.Envelope "Category not found"
// @Failure     500 {object} response.Envelope "Server error"
// @Router      /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err), "Failed to create expense")
		return
	}

	date, err := parseDate("date", req.Date)
	if err != nil {
		respondWithError(c, err, "Failed to create expense")
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), services.ExpenseInput{
		Amount:      req.Amount,
		Description: req.Description,
		Date:        date,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		respondWithError(c, err, "Failed to create expense")
		return
	}

	respondOK(c, http.StatusCreated, expense, "Expense created successfully")
}

// UpdateExpense handles a partial update of an expense.
// @Summary     Update an expense
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Param       id      path string               true "Expense ID"
// @Param       request body UpdateExpenseRequest true "Fields to change"
// @Success     200 {object} response.Envelope{result=models.Expense} "Expense updated"
// @Failure     400 {object} response.Envelope "Invalid input"
// @Failure     404 {object} response.Envelope "Expense or category not found"
// @Failure     500 {object} response.Envelope "Server error"
// @Router      /expenses/{id} [put]
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	id, err := parsePathID(c)
	if err != nil {
		respondWithError(c, err, "Failed to update expense")
		return
	}

	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err), "Failed to update expense")
		return
	}

	patch := services.ExpensePatch{
		Amount:      req.Amount,
		Description: req.Description,
		CategoryID:  req.CategoryID,
	}
	if req.Date != nil {
		var date time.Time
		if date, err = parseDate("date", *req.Date); err != nil {
			respondWithError(c, err, "Failed to update expense")
			return
		}
		patch.Date = &date
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), id, patch)
	if err != nil {
		respondWithError(c, err, "Failed to update expense")
		return
	}

	respondOK(c, http.StatusOK, expense, "Expense updated successfully")
}

// DeleteExpense handles the deletion of an expense.
// @Summary     Delete an expense
// @Tags        expenses
// @Produce     json
// @Param       id path string true "Expense ID"
// @Success     200 {object} response.Envelope "Expense deleted"
// @Failure     400 {object} response.Envelope "Invalid ID"
// @Failure     404 {object} response.Envelope "Expense not found"
// @Failure     500 {object} response.Envelope "Server error"
// @Router      /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	id, err := parsePathID(c)
	if err != nil {
		respondWithError(c, err, "Failed to delete expense")
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), id); err != nil {
		respondWithError(c, err, "Failed to delete expense")
		return
	}

	respondOK(c, http.StatusOK, gin.H{"id": id}, "Expense deleted successfully")
}
