package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/peopledesk/workforce-api/internal/api/metrics"
	"github.com/peopledesk/workforce-api/internal/core/domain"
	"github.com/peopledesk/workforce-api/internal/core/ports"
)

// EmployeeHandler handles HTTP requests for employee directory operations.
type EmployeeHandler struct {
	service ports.EmployeeService
}

func NewEmployeeHandler(service ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

type addEmployeeRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Add creates a new employee.
//
// @Summary      Add a new employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  addEmployeeRequest  true  "Employee details"
// @Success      201
// @Failure      400   {object}  problemResponse
// @Failure      409   {object}  problemResponse
// @Router       /api/employees [post]
func (h *EmployeeHandler) Add(c echo.Context) error {
	var req addEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	// Field presence errors come back as OperationResult failures so the
	// field-specific messages surface through the uniform mapping.
	result := h.service.AddEmployee(c.Request().Context(), req.Email, req.FirstName, req.LastName)
	if result.Success {
		metrics.LifecycleOpsTotal.WithLabelValues("employee", domain.AuditCreated).Inc()
	}
	return processCreationResult(c, result)
}

// Get returns a single employee by id.
//
// @Summary      Get an employee by id
// @Tags         employees
// @Produce      json
// @Param        id   path      int  true  "Employee id"
// @Success      200  {object}  ports.EmployeeView
// @Failure      404  {object}  messageResponse
// @Router       /api/employees/{id} [get]
func (h *EmployeeHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid employee id"})
	}

	employee := h.service.GetEmployee(c.Request().Context(), id)
	if employee == nil {
		return c.JSON(http.StatusNotFound, messageResponse{
			Message: fmt.Sprintf("Couldn't find employee with id: %d.", id),
		})
	}
	return c.JSON(http.StatusOK, employee)
}

// List returns all employees, including soft-deleted ones.
//
// @Summary      List all employees
// @Tags         employees
// @Produce      json
// @Success      200  {array}  ports.EmployeeView
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.GetEmployees(c.Request().Context()))
}

// ListActive returns employees that have not been soft-deleted.
//
// @Summary      List active employees
// @Tags         employees
// @Produce      json
// @Success      200  {array}  ports.EmployeeView
// @Router       /api/employees/active [get]
func (h *EmployeeHandler) ListActive(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.GetActiveEmployees(c.Request().Context()))
}

// Reactivate clears the deleted timestamp of an employee by id.
//
// @Summary      Reactivate an employee by id
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Employee id"
// @Success      204
// @Failure      404  {object}  messageResponse
// @Router       /api/employees/{id}/reactivate [patch]
func (h *EmployeeHandler) Reactivate(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid employee id"})
	}

	result := h.service.ReactivateEmployeeByID(c.Request().Context(), id)
	if result.Success {
		metrics.LifecycleOpsTotal.WithLabelValues("employee", domain.AuditReactivated).Inc()
	}
	return processOperationResult(c, result)
}

// ReactivateByMail clears the deleted timestamp of an employee by email.
//
// @Summary      Reactivate an employee by email
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        mail  query  string  true  "Employee email"
// @Success      204
// @Failure      404  {object}  messageResponse
// @Router       /api/employees/reactivate [patch]
func (h *EmployeeHandler) ReactivateByMail(c echo.Context) error {
	result := h.service.ReactivateEmployeeByMail(c.Request().Context(), c.QueryParam("mail"))
	if result.Success {
		metrics.LifecycleOpsTotal.WithLabelValues("employee", domain.AuditReactivated).Inc()
	}
	return processOperationResult(c, result)
}

// Deactivate soft-deletes an employee by id.
//
// @Summary      Deactivate an employee by id
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Employee id"
// @Success      204
// @Failure      404  {object}  messageResponse
// @Router       /api/employees/{id}/deactivate [patch]
func (h *EmployeeHandler) Deactivate(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid employee id"})
	}

	result := h.service.DeactivateEmployeeByID(c.Request().Context(), id)
	if result.Success {
		metrics.LifecycleOpsTotal.WithLabelValues("employee", domain.AuditDeactivated).Inc()
	}
	return processOperationResult(c, result)
}

// DeactivateByMail soft-deletes an employee by email.
//
// @Summary      Deactivate an employee by email
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        mail  query  string  true  "Employee email"
// @Success      204
// @Failure      404  {object}  messageResponse
// @Router       /api/employees/deactivate [patch]
func (h *EmployeeHandler) DeactivateByMail(c echo.Context) error {
	result := h.service.DeactivateEmployeeByMail(c.Request().Context(), c.QueryParam("mail"))
	if result.Success {
		metrics.LifecycleOpsTotal.WithLabelValues("employee", domain.AuditDeactivated).Inc()
	}
	return processOperationResult(c, result)
}

// Delete removes an employee entirely. Admin only.
//
// @Summary      Hard-delete an employee
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Employee id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  messageResponse
// @Router       /api/employees/{id} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid employee id"})
	}

	result := h.service.DeleteEmployee(c.Request().Context(), id)
	if result.Success {
		metrics.LifecycleOpsTotal.WithLabelValues("employee", domain.AuditDeleted).Inc()
	}
	return processOperationResult(c, result)
}
