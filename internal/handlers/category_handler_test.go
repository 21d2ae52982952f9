package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "expenso/internal/errors"
	"expenso/internal/models"
	"expenso/internal/services"
)

// --- mock category service ---

type mockCategoryService struct {
	getCategoriesFn   func(ctx context.Context) ([]services.CategoryOverview, error)
	getCategoryByIDFn func(ctx context.Context, id string) (*models.Category, error)
	createCategoryFn  func(ctx context.Context, input services.CategoryInput) (*models.Category, error)
	updateCategoryFn  func(ctx context.Context, id string, patch services.CategoryPatch) (*models.Category, error)
	deleteCategoryFn  func(ctx context.Context, id string) error
}

func (m *mockCategoryService) GetCategories(ctx context.Context) ([]services.CategoryOverview, error) {
	if m.getCategoriesFn != nil {
		return m.getCategoriesFn(ctx)
	}
	return []services.CategoryOverview{}, nil
}

func (m *mockCategoryService) GetCategoryByID(ctx context.Context, id string) (*models.Category, error) {
	if m.getCategoryByIDFn != nil {
		return m.getCategoryByIDFn(ctx, id)
	}
	return &models.Category{Base: models.Base{ID: id}}, nil
}

func (m *mockCategoryService) CreateCategory(ctx context.Context, input services.CategoryInput) (*models.Category, error) {
	if m.createCategoryFn != nil {
		return m.createCategoryFn(ctx, input)
	}
	return &models.Category{}, nil
}

func (m *mockCategoryService) UpdateCategory(ctx context.Context, id string, patch services.CategoryPatch) (*models.Category, error) {
	if m.updateCategoryFn != nil {
		return m.updateCategoryFn(ctx, id, patch)
	}
	return &models.Category{Base: models.Base{ID: id}}, nil
}

func (m *mockCategoryService) DeleteCategory(ctx context.Context, id string) error {
	if m.deleteCategoryFn != nil {
		return m.deleteCategoryFn(ctx, id)
	}
	return nil
}

var _ services.CategoryServicer = (*mockCategoryService)(nil)

func setupCategoryRouter(handler *CategoryHandler) *gin.Engine {
	r := gin.New()
	r.GET("/categories", handler.GetCategories)
	r.POST("/categories", handler.CreateCategory)
	r.GET("/categories/:id", handler.GetCategory)
	r.PUT("/categories/:id", handler.UpdateCategory)
	r.DELETE("/categories/:id", handler.DeleteCategory)
	return r
}

func TestCategoryHandler_GetCategories(t *testing.T) {
	t.Run("returns 200 with categories", func(t *testing.T) {
		svc := &mockCategoryService{
			getCategoriesFn: func(_ context.Context) ([]services.CategoryOverview, error) {
				return []services.CategoryOverview{{
					Category:     models.Category{Base: models.Base{ID: testCategoryID}, Name: "Food"},
					ExpenseCount: 3,
					MonthSpent:   decimal.NewFromInt(42),
				}}, nil
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(svc))

		rec := doRequest(r, "GET", "/categories", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		list := resultOf(t, rec).([]interface{})
		if len(list) != 1 {
			t.Fatalf("expected 1 category, got %d", len(list))
		}
		cat := list[0].(map[string]interface{})
		if cat["name"] != "Food" || cat["expense_count"].(float64) != 3 {
			t.Errorf("unexpected category %v", cat)
		}
		if cat["month_spent"].(float64) != 42 {
			t.Errorf("expected month_spent as a JSON number, got %v", cat["month_spent"])
		}
	})

	t.Run("returns 500 envelope on store failure", func(t *testing.T) {
		svc := &mockCategoryService{
			getCategoriesFn: func(_ context.Context) ([]services.CategoryOverview, error) {
				return nil, apperrors.Wrap(apperrors.ErrInternalServer, context.DeadlineExceeded)
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(svc))

		rec := doRequest(r, "GET", "/categories", "")

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		result := assertErrorCode(t, rec, "INTERNAL_ERROR")
		if result["message"] != "Failed to fetch categories" {
			t.Errorf("unexpected message %v", result["message"])
		}
		errObj := result["error"].(map[string]interface{})
		if errObj["message"] != apperrors.ErrInternalServer.Message {
			t.Errorf("internal details must not leak, got %v", errObj["message"])
		}
	})
}

func TestCategoryHandler_CreateCategory(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		var got services.CategoryInput
		svc := &mockCategoryService{
			createCategoryFn: func(_ context.Context, input services.CategoryInput) (*models.Category, error) {
				got = input
				return &models.Category{
					Base:   models.Base{ID: testCategoryID},
					Name:   input.Name,
					Color:  models.DefaultCategoryColor,
					Icon:   models.DefaultCategoryIcon,
					Budget: input.Budget,
				}, nil
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(svc))

		rec := doRequest(r, "POST", "/categories", `{"name":"Food","budget":150.5}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		cat := resultOf(t, rec).(map[string]interface{})
		if cat["id"] != testCategoryID {
			t.Errorf("expected id %s, got %v", testCategoryID, cat["id"])
		}
		if cat["budget"].(float64) != 150.5 {
			t.Errorf("expected budget 150.5, got %v", cat["budget"])
		}
		if got.Budget == nil || !got.Budget.Equal(decimal.RequireFromString("150.5")) {
			t.Errorf("expected budget to reach the service, got %v", got.Budget)
		}
	})

	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"color":"#FFFFFF"}`},
		{"blank name", `{"name":"   "}`},
		{"invalid color", `{"name":"Food","color":"blue"}`},
		{"zero budget", `{"name":"Food","budget":0}`},
		{"negative budget", `{"name":"Food","budget":-10}`},
		{"malformed json", `{"name":`},
	}
	for _, tt := range tests {
		t.Run("returns 400 on "+tt.name, func(t *testing.T) {
			called := false
			svc := &mockCategoryService{
				createCategoryFn: func(_ context.Context, _ services.CategoryInput) (*models.Category, error) {
					called = true
					return &models.Category{}, nil
				},
			}
			r := setupCategoryRouter(NewCategoryHandler(svc))

			rec := doRequest(r, "POST", "/categories", tt.body)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
			assertErrorCode(t, rec, "INVALID_INPUT")
			if called {
				t.Error("service must not be called for invalid input")
			}
		})
	}
}

func TestCategoryHandler_GetCategory(t *testing.T) {
	t.Run("returns 400 on invalid id", func(t *testing.T) {
		r := setupCategoryRouter(NewCategoryHandler(&mockCategoryService{}))

		rec := doRequest(r, "GET", "/categories/abc", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, rec, "INVALID_INPUT")
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		svc := &mockCategoryService{
			getCategoryByIDFn: func(_ context.Context, _ string) (*models.Category, error) {
				return nil, apperrors.ErrCategoryNotFound
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(svc))

		rec := doRequest(r, "GET", "/categories/"+testCategoryID, "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, rec, "CATEGORY_NOT_FOUND")
	})
}

func TestCategoryHandler_UpdateCategory(t *testing.T) {
	t.Run("passes partial patch", func(t *testing.T) {
		var gotID string
		var got services.CategoryPatch
		svc := &mockCategoryService{
			updateCategoryFn: func(_ context.Context, id string, patch services.CategoryPatch) (*models.Category, error) {
				gotID, got = id, patch
				return &models.Category{Base: models.Base{ID: id}, Name: *patch.Name}, nil
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(svc))

		rec := doRequest(r, "PUT", "/categories/"+testCategoryID, `{"name":"Groceries","clear_budget":true}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotID != testCategoryID {
			t.Errorf("expected id %s, got %s", testCategoryID, gotID)
		}
		if got.Name == nil || *got.Name != "Groceries" || !got.ClearBudget {
			t.Errorf("unexpected patch %+v", got)
		}
		if got.Description != nil || got.Color != nil || got.Budget != nil {
			t.Errorf("omitted fields must stay nil, got %+v", got)
		}
	})

	t.Run("returns 404 envelope with null result", func(t *testing.T) {
		svc := &mockCategoryService{
			updateCategoryFn: func(_ context.Context, _ string, _ services.CategoryPatch) (*models.Category, error) {
				return nil, apperrors.ErrCategoryNotFound
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(svc))

		rec := doRequest(r, "PUT", "/categories/"+testCategoryID, `{"name":"X"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		result := assertErrorCode(t, rec, "CATEGORY_NOT_FOUND")
		if result["message"] != "Failed to update category" {
			t.Errorf("unexpected message %v", result["message"])
		}
	})
}

func TestCategoryHandler_DeleteCategory(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		r := setupCategoryRouter(NewCategoryHandler(&mockCategoryService{}))

		rec := doRequest(r, "DELETE", "/categories/"+testCategoryID, "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		res := resultOf(t, rec).(map[string]interface{})
		if res["id"] != testCategoryID {
			t.Errorf("expected deleted id, got %v", res["id"])
		}
	})

	t.Run("returns 409 when category in use", func(t *testing.T) {
		svc := &mockCategoryService{
			deleteCategoryFn: func(_ context.Context, _ string) error {
				return apperrors.ErrCategoryInUse
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(svc))

		rec := doRequest(r, "DELETE", "/categories/"+testCategoryID, "")

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, rec, "CATEGORY_IN_USE")
	})
}
