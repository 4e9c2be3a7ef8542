package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"genesis-backend-go/internal/models"
)

const tasksCollection = "tasks"

// firestoreTaskRepository implements the TaskRepository interface using
// Firestore. Tasks live under users/{uid}/tasks.
type firestoreTaskRepository struct {
	client *firestore.Client
}

// NewFirestoreTaskRepository creates a new instance of firestoreTaskRepository.
func NewFirestoreTaskRepository(client *firestore.Client) TaskRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for TaskRepository.")
	}
	return &firestoreTaskRepository{client: client}
}

func (r *firestoreTaskRepository) tasks(userID string) *firestore.CollectionRef {
	return r.client.Collection(usersCollection).Doc(userID).Collection(tasksCollection)
}

// ListModifiedSince returns the user's tasks modified after since,
// ordered descending by updatedAt. A nil since means "everything".
func (r *firestoreTaskRepository) ListModifiedSince(ctx context.Context, userID string, since *int64) ([]*models.Task, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty for ListModifiedSince operation")
	}

	query := r.tasks(userID).OrderBy("updatedAt", firestore.Desc)
	if since != nil {
		query = query.Where("updatedAt", ">", *since)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var tasks []*models.Task
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate tasks for user '%s': %w", userID, err)
		}

		var task models.Task
		if err := doc.DataTo(&task); err != nil {
			log.Printf("Error decoding task data (ID: %s) for user '%s': %v. Skipping.", doc.Ref.ID, userID, err)
			continue
		}
		task.ID = doc.Ref.ID
		tasks = append(tasks, &task)
	}

	return tasks, nil
}

// GetByIDs fetches the given task documents in a single GetAll round
// trip. Documents that do not exist are omitted from the result.
func (r *firestoreTaskRepository) GetByIDs(ctx context.Context, userID string, ids []string) (map[string]*models.Task, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty for GetByIDs operation")
	}
	if len(ids) == 0 {
		return map[string]*models.Task{}, nil
	}

	refs := make([]*firestore.DocumentRef, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, r.tasks(userID).Doc(id))
	}

	snaps, err := r.client.GetAll(ctx, refs)
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks by ids for user '%s': %w", userID, err)
	}

	existing := make(map[string]*models.Task, len(snaps))
	for _, snap := range snaps {
		if !snap.Exists() {
			continue
		}
		var task models.Task
		if err := snap.DataTo(&task); err != nil {
			return nil, fmt.Errorf("failed to decode task data for ID '%s': %w", snap.Ref.ID, err)
		}
		task.ID = snap.Ref.ID
		existing[task.ID] = &task
	}
	return existing, nil
}

// UpsertBatch writes all tasks in one Firestore write batch. The batch
// commits atomically, so a failure leaves the collection untouched.
func (r *firestoreTaskRepository) UpsertBatch(ctx context.Context, userID string, tasks []*models.Task) error {
	if userID == "" {
		return errors.New("userID cannot be empty for UpsertBatch operation")
	}
	if len(tasks) == 0 {
		return nil
	}

	batch := r.client.Batch()
	for _, task := range tasks {
		if task.ID == "" {
			return errors.New("task ID cannot be empty for UpsertBatch operation")
		}
		batch.Set(r.tasks(userID).Doc(task.ID), task)
	}

	if _, err := batch.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit task batch for user '%s': %w", userID, err)
	}
	return nil
}
