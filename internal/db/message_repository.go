package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"

	"genesis-backend-go/internal/models"
)

const messagesCollection = "messages"

// firestoreMessageRepository implements the MessageRepository interface
// using Firestore.
type firestoreMessageRepository struct {
	client *firestore.Client
}

// NewFirestoreMessageRepository creates a new instance of firestoreMessageRepository.
func NewFirestoreMessageRepository(client *firestore.Client) MessageRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for MessageRepository.")
	}
	return &firestoreMessageRepository{client: client}
}

// Create stores a new message document with an auto-generated ID inside
// a transaction and returns the message with its ID populated.
func (r *firestoreMessageRepository) Create(ctx context.Context, message *models.Message) (*models.Message, error) {
	if message == nil {
		return nil, errors.New("message cannot be nil for Create operation")
	}

	ref := r.client.Collection(messagesCollection).NewDoc()
	err := r.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		return tx.Create(ref, message)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	message.ID = ref.ID
	return message, nil
}
