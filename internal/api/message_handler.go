package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"genesis-backend-go/internal/core"
	"genesis-backend-go/internal/middleware"
	"genesis-backend-go/internal/models"
)

// MessageHandler handles message related API endpoints.
type MessageHandler struct {
	messageService core.MessageService
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(ms core.MessageService) *MessageHandler {
	return &MessageHandler{messageService: ms}
}

// SendMessage handles POST /sendMessage.
func (h *MessageHandler) SendMessage(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.NewErrorResponse("authentication required"))
		return
	}

	var req models.MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	message, err := h.messageService.SendMessage(c.Request.Context(), identity.UID, req)
	if err != nil {
		mapErrorToStatus(c, err)
		return
	}

	c.JSON(http.StatusCreated, message)
}
