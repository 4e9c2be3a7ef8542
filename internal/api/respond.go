package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"genesis-backend-go/internal/core"
	"genesis-backend-go/internal/models"
)

// mapErrorToStatus converts service-layer errors to HTTP status codes
// and the uniform error envelope. Unknown errors become a generic 500;
// the detail is logged server-side only.
func mapErrorToStatus(c *gin.Context, err error) {
	var statusCode int
	var message string

	switch {
	case errors.Is(err, core.ErrMissingScheme),
		errors.Is(err, core.ErrInvalidToken),
		errors.Is(err, core.ErrExpiredToken),
		errors.Is(err, core.ErrAuthBackend):
		statusCode = http.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, core.ErrAdminRequired):
		statusCode = http.StatusForbidden
		message = core.ErrAdminRequired.Error()
	case errors.Is(err, core.ErrEmptyMessage):
		statusCode = http.StatusBadRequest
		message = core.ErrEmptyMessage.Error()
	case errors.Is(err, core.ErrInvalidFile):
		statusCode = http.StatusBadRequest
		message = core.ErrInvalidFile.Error()
	case errors.Is(err, core.ErrFileTooLarge):
		statusCode = http.StatusRequestEntityTooLarge
		message = core.ErrFileTooLarge.Error()
	default:
		log.Printf("Internal Server Error: %v", err)
		statusCode = http.StatusInternalServerError
		message = "An unexpected internal server error occurred."
	}

	c.JSON(statusCode, models.NewErrorResponse(message))
}

// badRequest answers a malformed payload with the standard envelope.
func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, models.NewErrorResponse(message))
}
