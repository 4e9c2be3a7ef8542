package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"genesis-backend-go/internal/core"
	"genesis-backend-go/internal/middleware"
	"genesis-backend-go/internal/models"
)

// AdminHandler handles administrator-only API endpoints.
type AdminHandler struct {
	settingsService core.SettingsService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(ss core.SettingsService) *AdminHandler {
	return &AdminHandler{settingsService: ss}
}

// ToggleRoot handles POST /toggleRoot.
func (h *AdminHandler) ToggleRoot(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.NewErrorResponse("authentication required"))
		return
	}

	var req models.RootToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload: 'enabled' boolean field is required")
		return
	}

	if err := h.settingsService.ToggleRoot(c.Request.Context(), identity, *req.Enabled); err != nil {
		mapErrorToStatus(c, err)
		return
	}

	c.JSON(http.StatusOK, models.RootToggleResponse{
		Status:  "success",
		Enabled: *req.Enabled,
	})
}
