package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"expenso/internal/services"
)

// CategoryHandler handles category-related requests.
type CategoryHandler struct {
	categoryService services.CategoryServicer
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService services.CategoryServicer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CreateCategoryRequest represents the request payload for creating a category.
type CreateCategoryRequest struct {
	Name        string           `json:"name" binding:"required,notblank,max=100"`
	Description string           `json:"description" binding:"max=500"`
	Color       string           `json:"color" binding:"omitempty,hex_color"`
	Icon        string           `json:"icon" binding:"max=32"`
	Budget      *decimal.Decimal `json:"budget" binding:"omitempty,money" swaggertype:"number"`
}

// UpdateCategoryRequest represents the request payload for updating a category.
// Omitted fields are left unchanged; clear_budget removes the budget.
type UpdateCategoryRequest struct {
	Name        *string          `json:"name" binding:"omitempty,notblank,max=100"`
	Description *string          `json:"description" binding:"omitempty,max=500"`
	Color       *string          `json:"color" binding:"omitempty,hex_color"`
	Icon        *string          `json:"icon" binding:"omitempty,max=32"`
	Budget      *decimal.Decimal `json:"budget" binding:"omitempty,money" swaggertype:"number"`
	ClearBudget bool             `json:"clear_budget"`
}

// GetCategories lists all categories.
// @Summary     List categories
// @Description List all categories, newest first, with their current-month expenses, expense count and budget usage
// @Tags        categories
// @Produce     json
// @Success     200 {object} response.Envelope{result=[]services.CategoryOverview} "Categories"
// @Failure     500 {object} response.Envelope "Server error"
// @Router      /categories [get]
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryService.GetCategories(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Failed to fetch categories")
		return
	}

	respondOK(c, http.StatusOK, categories, "Categories fetched successfully")
}

// GetCategory returns a single category.
// @Summary     Get category by ID
// @Tags        categories
// @Produce     json
// @Param       id path string true "Category ID"
// @Success     200 {object} response.Envelope{result=models.Category} "Category"
// @Failure     400 {object} response.Envelope "Invalid ID"
// @Failure     404 {object} response.Envelope "Category not found"
// @Failure     500 {object} response.Envelope "Server error"
// @Router      /categories/{id} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, err := parsePathID(c)
	if err != nil {
		respondWithError(c, err, "Failed to fetch category")
		return
	}

	category, err := h.categoryService.GetCategoryByID(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err, "Failed to fetch category")
		return
	}

	respondOK(c, http.StatusOK, category, "Category fetched successfully")
}

// CreateCategory handles the creation of a new category.
// @Summary     Create a category
// @Description Create a category; color and icon fall back to defaults when omitted
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       request body CreateCategoryRequest true "Category details"
// @Success     201 {object} response.Envelope{result=models.Category} "Category created"
// @Failure     400 {object} response.Envelope "Invalid input"
// @Failure     500 {object} response.Envelope "Server error"
// @Router      /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err), "Failed to create category")
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), services.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		Icon:        req.Icon,
		Budget:      req.Budget,
	})
	if err != nil {
		respondWithError(c, err, "Failed to create category")
		return
	}

	respondOK(c, http.StatusCreated, category, "Category created successfully")
}

// UpdateCategory handles a partial update of a category.
// @Summary     Update a category
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       id      path string                true "Category ID"
// @Param       request body UpdateCategoryRequest true "Fields to change"
// @Success     200 {object} response.Envelope{result=models.Category} "Category updated"
// @Failure     400 {object} response.Envelope "Invalid input"
// @Failure     404 {object} response.Envelope "Category not found"
// @Failure     500 {object} response.Envelope "Server error"
// @Router      /categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, err := parsePathID(c)
	if err != nil {
		respondWithError(c, err, "Failed to update category")
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err), "Failed to update category")
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), id, services.CategoryPatch{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		Icon:        req.Icon,
		Budget:      req.Budget,
		ClearBudget: req.ClearBudget,
	})
	if err != nil {
		respondWithError(c, err, "Failed to update category")
		return
	}

	respondOK(c, http.StatusOK, category, "Category updated successfully")
}

// DeleteCategory handles the deletion of a category.
// @Summary     Delete a category
// @Description Delete a category. Depending on server configuration a category with expenses is refused (409) or deleted together with its expenses.
// @Tags        categories
// @Produce     json
// @Param       id path string true "Category ID"
// @Success     200 {object} response.Envelope "Category deleted"
// @Failure     400 {object} response.Envelope "Invalid ID"
// @Failure     404 {object} response.Envelope "Category not found"
// @Failure     409 {object} response.Envelope "Category has expenses"
// @Failure     500 {object} response.Envelope "Server error"
// @Router      /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, err := parsePathID(c)
	if err != nil {
		respondWithError(c, err, "Failed to delete category")
		return
	}

	if err := h.categoryService.DeleteCategory(c.Request.Context(), id); err != nil {
		respondWithError(c, err, "Failed to delete category")
		return
	}

	respondOK(c, http.StatusOK, gin.H{"id": id}, "Category deleted successfully")
}
