package db

import (
	"context"
	"time"

	"genesis-backend-go/internal/models"
)

// UserRepository defines the interface for user profile reads. Profiles
// are written by the account system, so this service only reads them.
type UserRepository interface {
	GetByID(ctx context.Context, userID string) (*models.UserProfile, error)
}

// TaskRepository defines the interface for per-user task storage.
// Tasks are partitioned strictly by user: every method operates only on
// the given user's subcollection.
type TaskRepository interface {
	// ListModifiedSince returns the user's tasks with updatedAt > since,
	// descending by updatedAt. A nil since returns all tasks.
	ListModifiedSince(ctx context.Context, userID string, since *int64) ([]*models.Task, error)
	// GetByIDs fetches the given task documents in one round trip.
	// Missing ids are simply absent from the result map.
	GetByIDs(ctx context.Context, userID string, ids []string) (map[string]*models.Task, error)
	// UpsertBatch writes all tasks atomically: either every task in the
	// batch is committed or none are.
	UpsertBatch(ctx context.Context, userID string, tasks []*models.Task) error
}

// MessageRepository defines the interface for message record storage.
type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) (*models.Message, error)
}

// SettingsRepository defines the interface for process-wide settings
// documents.
type SettingsRepository interface {
	SetRootEnabled(ctx context.Context, enabled bool, updatedBy string, at time.Time) error
}

// AuditRepository defines the interface for audit log storage.
type AuditRepository interface {
	Create(ctx context.Context, logEntry models.AuditLog) error
}

// StoredObject is a blob plus the descriptive metadata persisted
// alongside it.
type StoredObject struct {
	Path        string
	ContentType string
	Data        []byte
	Metadata    map[string]string
}

// FileStore defines the interface for blob storage. Save persists the
// object, makes it publicly readable, and returns its public URL.
type FileStore interface {
	Save(ctx context.Context, obj *StoredObject) (string, error)
}
