package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"genesis-backend-go/internal/core"
	"genesis-backend-go/internal/middleware"
	"genesis-backend-go/internal/models"
)

// FileHandler handles file import API endpoints.
type FileHandler struct {
	fileService core.FileService
	maxBytes    int64
	logger      *zap.Logger
}

// NewFileHandler creates a new FileHandler. maxBytes caps the accepted
// upload size before the body is read into memory.
func NewFileHandler(fs core.FileService, maxBytes int64, logger *zap.Logger) *FileHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileHandler{fileService: fs, maxBytes: maxBytes, logger: logger}
}

// ImportFile handles POST /importFile. The file is expected as a
// multipart form field named "file".
func (h *FileHandler) ImportFile(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.NewErrorResponse("authentication required"))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		badRequest(c, "No file provided in the 'file' form field")
		return
	}

	if h.maxBytes > 0 && fileHeader.Size > h.maxBytes {
		c.JSON(http.StatusRequestEntityTooLarge, models.NewErrorResponse("uploaded file exceeds the maximum allowed size"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("Failed to open uploaded file", zap.Error(err))
		badRequest(c, "Could not read uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("Failed to read uploaded file", zap.Error(err))
		badRequest(c, "Could not read uploaded file")
		return
	}

	upload := core.FileUpload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	}

	resp, err := h.fileService.ImportFile(c.Request.Context(), identity.UID, upload)
	if err != nil {
		mapErrorToStatus(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}
