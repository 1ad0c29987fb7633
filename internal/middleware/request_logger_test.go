package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"

	"animal-shelter/internal/platform/logger"
)

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	base := logger.New(logger.Options{Level: logger.Info, Format: logger.FormatJSON, Output: &buf})

	var inner logger.Logger
	h := chimw.RequestID(RequestLogger(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inner = logger.FromContext(r.Context())
		w.WriteHeader(http.StatusCreated)
	})))

	req := httptest.NewRequest(http.MethodPost, "/animals", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if inner == nil {
		t.Fatalf("expected a request logger in context")
	}

	var entry map[string]any
	line := strings.TrimSpace(buf.String())
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("expected one json line, got %q: %v", line, err)
	}
	if entry["path"] != "/animals" || entry["method"] != http.MethodPost {
		t.Fatalf("unexpected entry %#v", entry)
	}
	if entry["status"] != float64(http.StatusCreated) {
		t.Fatalf("expected status 201, got %#v", entry["status"])
	}
	if id, _ := entry["request_id"].(string); id == "" {
		t.Fatalf("expected request_id in entry %#v", entry)
	}
}

func TestRequestLogger_DefaultStatus(t *testing.T) {
	var buf bytes.Buffer
	base := logger.New(logger.Options{Level: logger.Info, Output: &buf})

	h := RequestLogger(base)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	if !strings.Contains(buf.String(), "status=200") {
		t.Fatalf("expected status=200, got %q", buf.String())
	}
}
