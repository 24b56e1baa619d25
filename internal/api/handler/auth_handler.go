package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/peopledesk/workforce-api/internal/api/metrics"
	"github.com/peopledesk/workforce-api/internal/core/domain"
	"github.com/peopledesk/workforce-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type registerRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required"`
	Password  string `json:"password" validate:"required"`
	Role      string `json:"role" validate:"required,oneof=Admin Regular"`
}

// Login authenticates a user and returns a signed JWT.
//
// A failed login is always a bare 401: the response does not reveal whether
// the email exists or the password was wrong.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	ctx := c.Request().Context()
	if !h.authService.ValidateLogin(ctx, req.Email, req.Password) {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
	}

	token, err := h.authService.GenerateToken(ctx, req.Email)
	if err != nil {
		// The account vanished between validation and issuance; stay uniform.
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	metrics.TokensIssuedTotal.Inc()
	return c.JSON(http.StatusOK, loginResponse{Token: token})
}

// Register creates a new system user.
//
// @Summary      Register a new system user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  registerRequest  true  "User registration details"
// @Success      201
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	role, ok := domain.RoleFromLabel(req.Role)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid role"})
	}

	if err := h.authService.Register(c.Request().Context(), req.FirstName, req.LastName, req.Email, req.Password, role); err != nil {
		if errors.Is(err, domain.ErrInvalidRole) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid role"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to register user"})
	}

	metrics.LifecycleOpsTotal.WithLabelValues("system_user", domain.AuditCreated).Inc()
	return c.NoContent(http.StatusCreated)
}
