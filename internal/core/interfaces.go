package core

import (
	"context"

	"genesis-backend-go/internal/models"
)

// VerifiedToken is the decoded identity returned by a TokenVerifier.
type VerifiedToken struct {
	UID           string
	Email         string
	EmailVerified bool
}

// TokenVerifier abstracts the identity provider. Implementations must
// translate provider failures into the sentinel errors of this package
// (ErrExpiredToken, ErrInvalidToken, ErrAuthBackend).
type TokenVerifier interface {
	Verify(ctx context.Context, idToken string) (*VerifiedToken, error)
}

// AuthService builds the request-scoped identity context from a raw
// Authorization header value. It is the sole gate in front of every
// protected endpoint.
type AuthService interface {
	BuildContext(ctx context.Context, authorizationHeader string) (*models.Identity, error)
}

// SyncService reconciles a client's task list with server state.
type SyncService interface {
	SyncTasks(ctx context.Context, userID string, req models.SyncRequest) (*models.SyncResponse, error)
}

// MessageService handles message creation.
type MessageService interface {
	SendMessage(ctx context.Context, userID string, req models.MessageRequest) (*models.Message, error)
}

// FileUpload carries an uploaded file's content and client-supplied
// attributes into the FileService.
type FileUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// FileService handles blob imports into the storage bucket.
type FileService interface {
	ImportFile(ctx context.Context, userID string, upload FileUpload) (*models.ImportResponse, error)
}

// SettingsService handles the admin-only root access toggle.
type SettingsService interface {
	ToggleRoot(ctx context.Context, identity *models.Identity, enabled bool) error
}

// QuestionService serves the generated sample questions.
type QuestionService interface {
	Questions(limit int) []models.AskQuestion
}

// AuditService defines the interface for audit logging operations.
type AuditService interface {
	CreateAuditLog(ctx context.Context, logEntry models.AuditLog) error
}
