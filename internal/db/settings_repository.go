package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/firestore"
)

const (
	settingsCollection = "settings"
	rootSettingsDoc    = "root"
)

// firestoreSettingsRepository implements the SettingsRepository
// interface using Firestore.
type firestoreSettingsRepository struct {
	client *firestore.Client
}

// NewFirestoreSettingsRepository creates a new instance of firestoreSettingsRepository.
func NewFirestoreSettingsRepository(client *firestore.Client) SettingsRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for SettingsRepository.")
	}
	return &firestoreSettingsRepository{client: client}
}

// SetRootEnabled merges the root-access flag into the settings/root
// document along with who changed it and when.
func (r *firestoreSettingsRepository) SetRootEnabled(ctx context.Context, enabled bool, updatedBy string, at time.Time) error {
	_, err := r.client.Collection(settingsCollection).Doc(rootSettingsDoc).Set(ctx, map[string]interface{}{
		"enabled":   enabled,
		"updatedBy": updatedBy,
		"updatedAt": at.UnixMilli(),
	}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update root setting: %w", err)
	}
	return nil
}
