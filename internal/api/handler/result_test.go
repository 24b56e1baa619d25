package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/peopledesk/workforce-api/internal/core/domain"
)

func renderResult(t *testing.T, result domain.OperationResult) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPatch, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := processOperationResult(c, result); err != nil {
		t.Fatalf("process result: %v", err)
	}
	return rec
}

func TestProcessOperationResult_Success(t *testing.T) {
	rec := renderResult(t, domain.OK())
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestProcessOperationResult_NotFound(t *testing.T) {
	rec := renderResult(t, domain.Fail("User not found", http.StatusNotFound))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var body messageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body.Message != "User not found" {
		t.Fatalf("expected message to surface verbatim, got %q", body.Message)
	}
}

func TestProcessOperationResult_ValidationAndConflictPassThrough(t *testing.T) {
	cases := []struct {
		code    int
		message string
	}{
		{http.StatusBadRequest, "Email is missing."},
		{http.StatusConflict, "An employee with this email already exists."},
	}

	for _, tc := range cases {
		rec := renderResult(t, domain.Fail(tc.message, tc.code))
		if rec.Code != tc.code {
			t.Fatalf("expected %d, got %d", tc.code, rec.Code)
		}

		var body problemResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body.Title != tc.message {
			t.Fatalf("expected title %q, got %q", tc.message, body.Title)
		}
	}
}

func TestProcessOperationResult_InternalIsScrubbed(t *testing.T) {
	rec := renderResult(t, domain.Fail("pq: connection refused on 10.0.0.3", http.StatusInternalServerError))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var body problemResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body.Title != genericErrorTitle {
		t.Fatalf("internal message leaked: %q", body.Title)
	}
}

func TestProcessCreationResult(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := processCreationResult(c, domain.OK()); err != nil {
		t.Fatalf("process result: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	if err := processCreationResult(c, domain.Fail("Email is missing.", http.StatusBadRequest)); err != nil {
		t.Fatalf("process result: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
