package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"expenso/internal/validator"
)

const (
	testCategoryID = "0190b6b4-1111-7000-8000-000000000001"
	testExpenseID  = "0190b6b4-2222-7000-8000-000000000002"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// assertErrorCode checks a failure envelope: null result, the error code and
// the status echoed in the body.
func assertErrorCode(t *testing.T, rec *httptest.ResponseRecorder, code string) map[string]interface{} {
	t.Helper()
	result := parseJSON(t, rec)
	if result["result"] != nil {
		t.Errorf("expected null result on failure, got %v", result["result"])
	}
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
	if status, _ := result["status"].(float64); int(status) != rec.Code {
		t.Errorf("expected status %d in body, got %v", rec.Code, result["status"])
	}
	return result
}

// resultOf checks a success envelope and returns its result member.
func resultOf(t *testing.T, rec *httptest.ResponseRecorder) interface{} {
	t.Helper()
	result := parseJSON(t, rec)
	if result["error"] != nil {
		t.Fatalf("expected null error on success, got %v", result["error"])
	}
	if status, _ := result["status"].(float64); int(status) != rec.Code {
		t.Errorf("expected status %d in body, got %v", rec.Code, result["status"])
	}
	if msg, _ := result["message"].(string); msg == "" {
		t.Error("expected a message")
	}
	return result["result"]
}
