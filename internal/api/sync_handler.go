package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"genesis-backend-go/internal/core"
	"genesis-backend-go/internal/metrics"
	"genesis-backend-go/internal/middleware"
	"genesis-backend-go/internal/models"
)

// SyncHandler handles the task synchronization endpoint.
type SyncHandler struct {
	syncService core.SyncService
	collector   *metrics.Collector
}

// NewSyncHandler creates a new SyncHandler. The collector may be nil in
// tests.
func NewSyncHandler(ss core.SyncService, collector *metrics.Collector) *SyncHandler {
	return &SyncHandler{syncService: ss, collector: collector}
}

// SyncTasks handles POST /syncTasks. The calling user is taken from the
// authenticated identity; the user_id field in the body is ignored so a
// client can never sync against another user's collection.
func (h *SyncHandler) SyncTasks(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.NewErrorResponse("authentication required"))
		return
	}

	var req models.SyncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	resp, err := h.syncService.SyncTasks(c.Request.Context(), identity.UID, req)
	if err != nil {
		mapErrorToStatus(c, err)
		return
	}

	if h.collector != nil {
		h.collector.RecordTasksSynced(len(resp.SyncedTasks))
	}
	c.JSON(http.StatusOK, resp)
}
