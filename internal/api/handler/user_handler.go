package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/peopledesk/workforce-api/internal/api/metrics"
	"github.com/peopledesk/workforce-api/internal/core/domain"
	"github.com/peopledesk/workforce-api/internal/core/ports"
)

// SystemUserHandler handles HTTP requests for system user operations.
type SystemUserHandler struct {
	service ports.SystemUserService
}

func NewSystemUserHandler(service ports.SystemUserService) *SystemUserHandler {
	return &SystemUserHandler{service: service}
}

// List returns all system users, including soft-deleted ones.
//
// @Summary      List all system users
// @Tags         users
// @Produce      json
// @Success      200  {array}  ports.SystemUserView
// @Router       /api/users [get]
func (h *SystemUserHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.GetUsers(c.Request().Context()))
}

// ListActive returns system users that have not been soft-deleted.
//
// @Summary      List active system users
// @Tags         users
// @Produce      json
// @Success      200  {array}  ports.SystemUserView
// @Router       /api/users/active [get]
func (h *SystemUserHandler) ListActive(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.GetActiveUsers(c.Request().Context()))
}

// Deactivate soft-deletes a system user by id.
//
// @Summary      Deactivate a system user by id
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "User id"
// @Success      204
// @Failure      404  {object}  messageResponse
// @Router       /api/users/{id}/deactivate [patch]
func (h *SystemUserHandler) Deactivate(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid user id"})
	}

	result := h.service.SoftDeleteUserByID(c.Request().Context(), id)
	if result.Success {
		metrics.LifecycleOpsTotal.WithLabelValues("system_user", domain.AuditDeactivated).Inc()
	}
	return processOperationResult(c, result)
}

// DeactivateByMail soft-deletes a system user by email.
//
// @Summary      Deactivate a system user by email
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        mail  query  string  true  "User email"
// @Success      204
// @Failure      404  {object}  messageResponse
// @Router       /api/users/deactivate [patch]
func (h *SystemUserHandler) DeactivateByMail(c echo.Context) error {
	result := h.service.SoftDeleteUserByMail(c.Request().Context(), c.QueryParam("mail"))
	if result.Success {
		metrics.LifecycleOpsTotal.WithLabelValues("system_user", domain.AuditDeactivated).Inc()
	}
	return processOperationResult(c, result)
}

// Delete removes a system user entirely. Admin only.
//
// @Summary      Hard-delete a system user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "User id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  messageResponse
// @Router       /api/users/{id} [delete]
func (h *SystemUserHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid user id"})
	}

	result := h.service.HardDeleteUser(c.Request().Context(), id)
	if result.Success {
		metrics.LifecycleOpsTotal.WithLabelValues("system_user", domain.AuditDeleted).Inc()
	}
	return processOperationResult(c, result)
}
