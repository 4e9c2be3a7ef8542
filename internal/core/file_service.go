package core

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"genesis-backend-go/internal/db"
	"genesis-backend-go/internal/models"
)

// Validation errors for file imports.
var (
	ErrInvalidFile  = errors.New("invalid file")
	ErrFileTooLarge = errors.New("file size exceeds the maximum upload limit")
)

const defaultContentType = "application/octet-stream"

// fileService implements the FileService interface on top of a blob
// store.
type fileService struct {
	store        db.FileStore
	auditService AuditService
	maxBytes     int64
	logger       *zap.Logger
	now          func() time.Time
	newID        func() string
}

// NewFileService creates a new FileService instance. maxBytes caps the
// accepted upload size.
func NewFileService(store db.FileStore, auditService AuditService, maxBytes int64, logger *zap.Logger) FileService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &fileService{
		store:        store,
		auditService: auditService,
		maxBytes:     maxBytes,
		logger:       logger,
		now:          time.Now,
		newID:        uuid.NewString,
	}
}

// ImportFile stores an uploaded blob under the calling user's uploads
// prefix with a collision-free generated name, and returns its public
// URL.
func (s *fileService) ImportFile(ctx context.Context, userID string, upload FileUpload) (*models.ImportResponse, error) {
	if upload.Filename == "" {
		return nil, ErrInvalidFile
	}
	if int64(len(upload.Data)) > s.maxBytes {
		return nil, fmt.Errorf("%w: limit is %d bytes", ErrFileTooLarge, s.maxBytes)
	}

	ext := strings.ToLower(filepath.Ext(upload.Filename))
	if ext == "" {
		ext = ".bin"
	}
	contentType := upload.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}

	now := s.now().UTC()
	objectName := fmt.Sprintf("%s_%s%s", now.Format("20060102-150405"), strings.ReplaceAll(s.newID(), "-", ""), ext)
	objectPath := fmt.Sprintf("users/%s/uploads/%s", userID, objectName)

	url, err := s.store.Save(ctx, &db.StoredObject{
		Path:        objectPath,
		ContentType: contentType,
		Data:        upload.Data,
		Metadata: map[string]string{
			"originalName": upload.Filename,
			"contentType":  contentType,
			"size":         strconv.Itoa(len(upload.Data)),
			"uploadedBy":   userID,
			"uploadedAt":   now.Format(time.RFC3339),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload file to storage: %w", err)
	}

	s.logger.Info("File uploaded", zap.String("uid", userID), zap.String("path", objectPath))

	if s.auditService != nil {
		auditLogEntry := models.AuditLog{
			UserID:   userID,
			Action:   "FILE_IMPORT",
			TargetID: objectPath,
			Details: map[string]interface{}{
				"originalName": upload.Filename,
				"size":         len(upload.Data),
			},
		}
		if auditErr := s.auditService.CreateAuditLog(ctx, auditLogEntry); auditErr != nil {
			s.logger.Warn("Failed to create audit log for FILE_IMPORT", zap.Error(auditErr))
		}
	}

	return &models.ImportResponse{
		Status:  "success",
		Message: "File uploaded successfully",
		URL:     url,
		Path:    objectPath,
	}, nil
}
