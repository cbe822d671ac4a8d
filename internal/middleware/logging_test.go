package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MEDLAO/graphql-project-1/internal/model"
)

func captureLog(t *testing.T, status int, prepare func(r *http.Request) *http.Request) map[string]interface{} {
	t.Helper()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	mw := NewLoggingMiddleware(logger)
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))

	req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
	if prepare != nil {
		req = prepare(req)
	}
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v (%q)", err, buf.String())
	}
	return entry
}

func TestLoggingMiddleware_RecordsRequestFields(t *testing.T) {
	entry := captureLog(t, http.StatusOK, nil)

	if entry["msg"] != "http_request" {
		t.Errorf("msg = %v, want http_request", entry["msg"])
	}
	if entry["method"] != "POST" {
		t.Errorf("method = %v, want POST", entry["method"])
	}
	if entry["path"] != "/graphql" {
		t.Errorf("path = %v, want /graphql", entry["path"])
	}
	if entry["status"] != float64(http.StatusOK) {
		t.Errorf("status = %v, want 200", entry["status"])
	}
	if _, ok := entry["duration_ms"]; !ok {
		t.Error("duration_ms should be recorded")
	}
	if entry["level"] != "INFO" {
		t.Errorf("level = %v, want INFO", entry["level"])
	}
}

func TestLoggingMiddleware_WarnLevelForClientErrors(t *testing.T) {
	entry := captureLog(t, http.StatusUnauthorized, nil)

	if entry["level"] != "WARN" {
		t.Errorf("level = %v, want WARN", entry["level"])
	}
}

func TestLoggingMiddleware_ErrorLevelForServerErrors(t *testing.T) {
	entry := captureLog(t, http.StatusInternalServerError, nil)

	if entry["level"] != "ERROR" {
		t.Errorf("level = %v, want ERROR", entry["level"])
	}
}

func TestLoggingMiddleware_IncludesUserIDWhenAuthenticated(t *testing.T) {
	entry := captureLog(t, http.StatusOK, func(r *http.Request) *http.Request {
		ctx := ContextWithUser(r.Context(), &model.User{ID: 42, Email: "demo@example.com"})
		return r.WithContext(ctx)
	})

	if entry["user_id"] != float64(42) {
		t.Errorf("user_id = %v, want 42", entry["user_id"])
	}
}

func TestLoggingMiddleware_OmitsUserIDWhenAnonymous(t *testing.T) {
	entry := captureLog(t, http.StatusOK, nil)

	if _, ok := entry["user_id"]; ok {
		t.Error("user_id should not be logged for anonymous requests")
	}
}
