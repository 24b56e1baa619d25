package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/peopledesk/workforce-api/internal/core/domain"
)

// genericErrorTitle is the scrubbed title for unexpected failures. Internal
// messages never reach the client on a 500.
const genericErrorTitle = "An unexpected error occurred."

// messageResponse is the body for 404 responses.
type messageResponse struct {
	Message string `json:"message"`
}

// problemResponse is the problem-style body for 400/409/500 responses.
type problemResponse struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
}

// processOperationResult renders an OperationResult as an HTTP response.
// Business messages for 404, 400 and 409 surface verbatim with their own
// status; every other failure collapses to a scrubbed 500. Success is
// 204 No Content.
func processOperationResult(c echo.Context, result domain.OperationResult) error {
	switch {
	case result.StatusCode == http.StatusNotFound:
		return c.JSON(http.StatusNotFound, messageResponse{Message: result.Errors})
	case result.StatusCode == http.StatusBadRequest, result.StatusCode == http.StatusConflict:
		return c.JSON(result.StatusCode, problemResponse{Title: result.Errors, Status: result.StatusCode})
	case result.Errors != "":
		return c.JSON(http.StatusInternalServerError, problemResponse{
			Title:  genericErrorTitle,
			Status: http.StatusInternalServerError,
		})
	}
	return c.NoContent(http.StatusNoContent)
}

// processCreationResult is processOperationResult for creation endpoints:
// success is 201 Created.
func processCreationResult(c echo.Context, result domain.OperationResult) error {
	if result.Success {
		return c.NoContent(http.StatusCreated)
	}
	return processOperationResult(c, result)
}
