package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "expenso/internal/errors"
	"expenso/internal/models"
	"expenso/internal/reports"
	"expenso/internal/services"
)

// --- mock expense service ---

type mockExpenseService struct {
	createExpenseFn   func(ctx context.Context, input services.ExpenseInput) (*models.Expense, error)
	getExpenseByIDFn  func(ctx context.Context, id string) (*models.Expense, error)
	listExpensesFn    func(ctx context.Context, filter services.ExpenseFilter) ([]models.Expense, error)
	updateExpenseFn   func(ctx context.Context, id string, patch services.ExpensePatch) (*models.Expense, error)
	deleteExpenseFn   func(ctx context.Context, id string) error
	getMonthlyStatsFn func(ctx context.Context, month, year *int) (*reports.MonthlyStats, error)
}

func (m *mockExpenseService) CreateExpense(ctx context.Context, input services.ExpenseInput) (*models.Expense, error) {
	if m.createExpenseFn != nil {
		return m.createExpenseFn(ctx, input)
	}
	return &models.Expense{}, nil
}

func (m *mockExpenseService) GetExpenseByID(ctx context.Context, id string) (*models.Expense, error) {
	if m.getExpenseByIDFn != nil {
		return m.getExpenseByIDFn(ctx, id)
	}
	return &models.Expense{Base: models.Base{ID: id}}, nil
}

func (m *mockExpenseService) ListExpenses(ctx context.Context, filter services.ExpenseFilter) ([]models.Expense, error) {
	if m.listExpensesFn != nil {
		return m.listExpensesFn(ctx, filter)
	}
	return []models.Expense{}, nil
}

func (m *mockExpenseService) UpdateExpense(ctx context.Context, id string, patch services.ExpensePatch) (*models.Expense, error) {
	if m.updateExpenseFn != nil {
		return m.updateExpenseFn(ctx, id, patch)
	}
	return &models.Expense{Base: models.Base{ID: id}}, nil
}

func (m *mockExpenseService) DeleteExpense(ctx context.Context, id string) error {
	if m.deleteExpenseFn != nil {
		return m.deleteExpenseFn(ctx, id)
	}
	return nil
}

func (m *mockExpenseService) GetMonthlyStats(ctx context.Context, month, year *int) (*reports.MonthlyStats, error) {
	if m.getMonthlyStatsFn != nil {
		return m.getMonthlyStatsFn(ctx, month, year)
	}
	stats := reports.Summarize(nil)
	return &stats, nil
}

var _ services.ExpenseServicer = (*mockExpenseService)(nil)

func setupExpenseRouter(handler *ExpenseHandler) *gin.Engine {
	r := gin.New()
	r.GET("/expenses", handler.ListExpenses)
	r.POST("/expenses", handler.CreateExpense)
	r.GET("/expenses/stats", handler.GetMonthlyStats)
	r.GET("/expenses/:id", handler.GetExpense)
	r.PUT("/expenses/:id", handler.UpdateExpense)
	r.DELETE("/expenses/:id", handler.DeleteExpense)
	return r
}

func TestExpenseHandler_CreateExpense(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		var got services.ExpenseInput
		svc := &mockExpenseService{
			createExpenseFn: func(_ context.Context, input services.ExpenseInput) (*models.Expense, error) {
				got = input
				return &models.Expense{
					Base:        models.Base{ID: testExpenseID},
					Amount:      input.Amount,
					Description: input.Description,
					Date:        input.Date,
					CategoryID:  input.CategoryID,
				}, nil
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc))

		rec := doRequest(r, "POST", "/expenses",
			`{"amount":12.5,"description":"Lunch","date":"2025-03-14","category_id":"`+testCategoryID+`"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		expense := resultOf(t, rec).(map[string]interface{})
		if expense["amount"].(float64) != 12.5 {
			t.Errorf("expected amount 12.5, got %v", expense["amount"])
		}
		if !got.Date.Equal(time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("expected parsed date 2025-03-14, got %v", got.Date)
		}
		if got.CategoryID != testCategoryID {
			t.Errorf("expected category id to reach the service, got %s", got.CategoryID)
		}
	})

	t.Run("accepts RFC 3339 dates", func(t *testing.T) {
		var got services.ExpenseInput
		svc := &mockExpenseService{
			createExpenseFn: func(_ context.Context, input services.ExpenseInput) (*models.Expense, error) {
				got = input
				return &models.Expense{}, nil
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc))

		rec := doRequest(r, "POST", "/expenses",
			`{"amount":"3","description":"Bus","date":"2025-03-14T23:30:00+09:00","category_id":"`+testCategoryID+`"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if y, m, d := got.Date.Date(); y != 2025 || m != time.March || d != 14 {
			t.Errorf("expected the date as written, got %v", got.Date)
		}
	})

	tests := []struct {
		name string
		body string
	}{
		{"missing amount", `{"description":"Lunch","date":"2025-03-14","category_id":"` + testCategoryID + `"}`},
		{"negative amount", `{"amount":-1,"description":"Lunch","date":"2025-03-14","category_id":"` + testCategoryID + `"}`},
		{"sub cent amount", `{"amount":0.001,"description":"Lunch","date":"2025-03-14","category_id":"` + testCategoryID + `"}`},
		{"three decimal amount", `{"amount":"12.345","description":"Lunch","date":"2025-03-14","category_id":"` + testCategoryID + `"}`},
		{"missing description", `{"amount":5,"date":"2025-03-14","category_id":"` + testCategoryID + `"}`},
		{"missing date", `{"amount":5,"description":"Lunch","category_id":"` + testCategoryID + `"}`},
		{"bad date", `{"amount":5,"description":"Lunch","date":"14/03/2025","category_id":"` + testCategoryID + `"}`},
		{"bad category id", `{"amount":5,"description":"Lunch","date":"2025-03-14","category_id":"c1"}`},
	}
	for _, tt := range tests {
		t.Run("returns 400 on "+tt.name, func(t *testing.T) {
			r := setupExpenseRouter(NewExpenseHandler(&mockExpenseService{}))

			rec := doRequest(r, "POST", "/expenses", tt.body)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
			assertErrorCode(t, rec, "INVALID_INPUT")
		})
	}

	t.Run("returns 404 for unknown category", func(t *testing.T) {
		svc := &mockExpenseService{
			createExpenseFn: func(_ context.Context, _ services.ExpenseInput) (*models.Expense, error) {
				return nil, apperrors.ErrCategoryNotFound
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc))

		rec := doRequest(r, "POST", "/expenses",
			`{"amount":5,"description":"Lunch","date":"2025-03-14","category_id":"`+testCategoryID+`"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, rec, "CATEGORY_NOT_FOUND")
	})
}

func TestExpenseHandler_ListExpenses(t *testing.T) {
	t.Run("passes filters", func(t *testing.T) {
		var got services.ExpenseFilter
		svc := &mockExpenseService{
			listExpensesFn: func(_ context.Context, filter services.ExpenseFilter) ([]models.Expense, error) {
				got = filter
				return []models.Expense{}, nil
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc))

		rec := doRequest(r, "GET", "/expenses?month=2&year=2024&category_id="+testCategoryID, "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.Month == nil || *got.Month != 2 || got.Year == nil || *got.Year != 2024 {
			t.Errorf("unexpected month filter %+v", got)
		}
		if got.CategoryID != testCategoryID {
			t.Errorf("expected category filter, got %q", got.CategoryID)
		}
		if list, ok := resultOf(t, rec).([]interface{}); !ok || len(list) != 0 {
			t.Errorf("expected empty list result, got %v", list)
		}
	})

	t.Run("defaults leave month unset", func(t *testing.T) {
		var got services.ExpenseFilter
		svc := &mockExpenseService{
			listExpensesFn: func(_ context.Context, filter services.ExpenseFilter) ([]models.Expense, error) {
				got = filter
				return []models.Expense{}, nil
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc))

		rec := doRequest(r, "GET", "/expenses", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got.Month != nil || got.Year != nil || got.CategoryID != "" {
			t.Errorf("expected no filters, got %+v", got)
		}
	})

	for _, query := range []string{"month=0", "month=13", "month=abc", "year=10", "category_id=nope"} {
		t.Run("returns 400 on "+query, func(t *testing.T) {
			r := setupExpenseRouter(NewExpenseHandler(&mockExpenseService{}))

			rec := doRequest(r, "GET", "/expenses?"+query, "")

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			assertErrorCode(t, rec, "INVALID_INPUT")
		})
	}
}

func TestExpenseHandler_GetMonthlyStats(t *testing.T) {
	t.Run("empty month is a success with zeros", func(t *testing.T) {
		r := setupExpenseRouter(NewExpenseHandler(&mockExpenseService{}))

		rec := doRequest(r, "GET", "/expenses/stats?month=3&year=2025", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		stats := resultOf(t, rec).(map[string]interface{})
		if stats["total_spent"].(float64) != 0 || stats["expense_count"].(float64) != 0 {
			t.Errorf("expected zero totals, got %v", stats)
		}
		if list, ok := stats["category_stats"].([]interface{}); !ok || len(list) != 0 {
			t.Errorf("expected empty category_stats array, got %v", stats["category_stats"])
		}
	})

	t.Run("returns stats", func(t *testing.T) {
		svc := &mockExpenseService{
			getMonthlyStatsFn: func(_ context.Context, _, _ *int) (*reports.MonthlyStats, error) {
				food := &models.Category{Base: models.Base{ID: testCategoryID}, Name: "Food"}
				stats := reports.Summarize([]models.Expense{
					{Amount: decimal.NewFromInt(40), CategoryID: food.ID, Category: food},
					{Amount: decimal.NewFromInt(70), CategoryID: food.ID, Category: food},
				})
				return &stats, nil
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc))

		rec := doRequest(r, "GET", "/expenses/stats", "")

		stats := resultOf(t, rec).(map[string]interface{})
		if stats["total_spent"].(float64) != 110 || stats["expense_count"].(float64) != 2 {
			t.Errorf("unexpected stats %v", stats)
		}
		first := stats["category_stats"].([]interface{})[0].(map[string]interface{})
		if first["total"].(float64) != 110 || first["count"].(float64) != 2 {
			t.Errorf("unexpected category stat %v", first)
		}
	})

	t.Run("store failure is a 500 envelope", func(t *testing.T) {
		svc := &mockExpenseService{
			getMonthlyStatsFn: func(_ context.Context, _, _ *int) (*reports.MonthlyStats, error) {
				return nil, apperrors.Wrap(apperrors.ErrInternalServer, context.Canceled)
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc))

		rec := doRequest(r, "GET", "/expenses/stats", "")

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		assertErrorCode(t, rec, "INTERNAL_ERROR")
	})
}

func TestExpenseHandler_UpdateExpense(t *testing.T) {
	t.Run("passes partial patch", func(t *testing.T) {
		var got services.ExpensePatch
		svc := &mockExpenseService{
			updateExpenseFn: func(_ context.Context, id string, patch services.ExpensePatch) (*models.Expense, error) {
				got = patch
				return &models.Expense{Base: models.Base{ID: id}}, nil
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc))

		rec := doRequest(r, "PUT", "/expenses/"+testExpenseID, `{"amount":"9.99","date":"2025-04-01"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.Amount == nil || !got.Amount.Equal(decimal.RequireFromString("9.99")) {
			t.Errorf("expected amount 9.99, got %v", got.Amount)
		}
		if got.Date == nil || !got.Date.Equal(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("expected date 2025-04-01, got %v", got.Date)
		}
		if got.Description != nil || got.CategoryID != nil {
			t.Errorf("omitted fields must stay nil, got %+v", got)
		}
	})

	t.Run("returns 404 for unknown expense", func(t *testing.T) {
		svc := &mockExpenseService{
			updateExpenseFn: func(_ context.Context, _ string, _ services.ExpensePatch) (*models.Expense, error) {
				return nil, apperrors.ErrExpenseNotFound
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc))

		rec := doRequest(r, "PUT", "/expenses/"+testExpenseID, `{"description":"x"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, rec, "EXPENSE_NOT_FOUND")
	})

	t.Run("returns 400 on bad date", func(t *testing.T) {
		r := setupExpenseRouter(NewExpenseHandler(&mockExpenseService{}))

		rec := doRequest(r, "PUT", "/expenses/"+testExpenseID, `{"date":"yesterday"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, rec, "INVALID_INPUT")
	})
}

func TestExpenseHandler_GetAndDelete(t *testing.T) {
	t.Run("get returns 404 for unknown expense", func(t *testing.T) {
		svc := &mockExpenseService{
			getExpenseByIDFn: func(_ context.Context, _ string) (*models.Expense, error) {
				return nil, apperrors.ErrExpenseNotFound
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc))

		rec := doRequest(r, "GET", "/expenses/"+testExpenseID, "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, rec, "EXPENSE_NOT_FOUND")
	})

	t.Run("delete returns 200", func(t *testing.T) {
		var gotID string
		svc := &mockExpenseService{
			deleteExpenseFn: func(_ context.Context, id string) error {
				gotID = id
				return nil
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc))

		rec := doRequest(r, "DELETE", "/expenses/"+testExpenseID, "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotID != testExpenseID {
			t.Errorf("expected id %s, got %s", testExpenseID, gotID)
		}
	})
}
