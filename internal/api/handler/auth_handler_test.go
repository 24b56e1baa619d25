package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/peopledesk/workforce-api/internal/core/domain"
)

type stubAuthService struct {
	validateFn func(ctx context.Context, email, password string) bool
	tokenFn    func(ctx context.Context, email string) (string, error)
	registerFn func(ctx context.Context, firstName, lastName, email, password string, role int) error
}

func (s *stubAuthService) ValidateLogin(ctx context.Context, email, password string) bool {
	return s.validateFn(ctx, email, password)
}

func (s *stubAuthService) GenerateToken(ctx context.Context, email string) (string, error) {
	return s.tokenFn(ctx, email)
}

func (s *stubAuthService) Register(ctx context.Context, firstName, lastName, email, password string, role int) error {
	return s.registerFn(ctx, firstName, lastName, email, password, role)
}

func newAuthContext(t *testing.T, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		validateFn: func(_ context.Context, email, password string) bool {
			return email == "jane@x.com" && password == "pw123"
		},
		tokenFn: func(context.Context, string) (string, error) {
			return "signed-token", nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthContext(t, "/auth/login", `{"email":"jane@x.com","password":"pw123"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Token != "signed-token" {
		t.Fatalf("unexpected token %q", resp.Token)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		validateFn: func(context.Context, string, string) bool { return false },
		tokenFn: func(context.Context, string) (string, error) {
			t.Fatalf("token must not be issued for invalid credentials")
			return "", nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthContext(t, "/auth/login", `{"email":"jane@x.com","password":"wrong"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		validateFn: func(context.Context, string, string) bool {
			t.Fatalf("service must not be called on invalid payload")
			return false
		},
	})

	c, rec := newAuthContext(t, "/auth/login", `{"email":"jane@x.com"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_Success(t *testing.T) {
	registered := false
	stub := &stubAuthService{
		registerFn: func(_ context.Context, firstName, lastName, email, password string, role int) error {
			registered = true
			if firstName != "Jane" || lastName != "Doe" || email != "jane@x.com" || role != domain.RoleRegular {
				t.Fatalf("unexpected args: %s %s %s %d", firstName, lastName, email, role)
			}
			return nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthContext(t, "/auth/register",
		`{"first_name":"Jane","last_name":"Doe","email":"jane@x.com","password":"pw123","role":"Regular"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if !registered {
		t.Fatalf("register not called")
	}
}

func TestAuthHandler_Register_UnknownRole(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		registerFn: func(context.Context, string, string, string, string, int) error {
			t.Fatalf("service must not be called for an unknown role")
			return nil
		},
	})

	c, rec := newAuthContext(t, "/auth/register",
		`{"first_name":"Jane","last_name":"Doe","email":"jane@x.com","password":"pw123","role":"Root"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
