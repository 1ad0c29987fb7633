package httpjson

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"animal-shelter/internal/domain/errs"
)

func TestWriteError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{"validation", errs.Validation("malformed email"), http.StatusUnprocessableEntity, "malformed email"},
		{"duplicate", errs.Duplicate("user already registered"), http.StatusBadRequest, "user already registered"},
		{"conflict", errs.Conflict("animal not available"), http.StatusBadRequest, "animal not available"},
		{"internal", errors.New("database is locked"), http.StatusInternalServerError, "internal error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/users/", nil)

			WriteError(rec, req, tc.err)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
			var body ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid body %q: %v", rec.Body.String(), err)
			}
			if body.Detail != tc.wantDetail {
				t.Fatalf("detail = %q, want %q", body.Detail, tc.wantDetail)
			}
			if body.Error != errs.KindOf(tc.err) {
				t.Fatalf("error kind = %q", body.Error)
			}
		})
	}
}
