package core

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"genesis-backend-go/internal/db"
	"genesis-backend-go/internal/models"
)

// syncService implements the SyncService interface. It is the one
// stateful reconciliation algorithm in the system: last-write-wins by
// arrival order, with the server clock as the sole authority for
// updated_at stamps.
type syncService struct {
	taskRepo db.TaskRepository
	logger   *zap.Logger
	now      func() time.Time
	newID    func() string
}

// NewSyncService creates a new SyncService instance.
func NewSyncService(taskRepo db.TaskRepository, logger *zap.Logger) SyncService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &syncService{
		taskRepo: taskRepo,
		logger:   logger,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// SyncTasks runs one reconciliation pass for the given user:
//
//  1. Snapshot the server-side tasks modified after req.LastSyncTime
//     (all of them when absent), descending by updated_at. The snapshot
//     is taken before any write so the caller never gets its own
//     submission echoed back.
//  2. Upsert the client batch atomically, stamping every record's
//     updated_at with the server clock and preserving created_at for
//     records that already exist.
//  3. Return the snapshot plus a post-commit server_time the client
//     stores as its next last_sync_time.
//
// A failed batch leaves server state untouched; the caller retries the
// whole call.
func (s *syncService) SyncTasks(ctx context.Context, userID string, req models.SyncRequest) (*models.SyncResponse, error) {
	serverChanges, err := s.taskRepo.ListModifiedSince(ctx, userID, normalizeSyncTime(req.LastSyncTime))
	if err != nil {
		return nil, fmt.Errorf("failed to read server changes for user '%s': %w", userID, err)
	}
	if serverChanges == nil {
		serverChanges = []*models.Task{}
	}

	if len(req.Tasks) > 0 {
		batch := s.dedupeBatch(req.Tasks)

		ids := make([]string, 0, len(batch))
		for _, task := range batch {
			ids = append(ids, task.ID)
		}
		existing, err := s.taskRepo.GetByIDs(ctx, userID, ids)
		if err != nil {
			return nil, fmt.Errorf("failed to look up existing tasks for user '%s': %w", userID, err)
		}

		// One clock snapshot for the whole batch. Client-supplied
		// updated_at values are ignored: the server clock decides
		// conflicts.
		writeTime := s.now().UnixMilli()
		for _, task := range batch {
			task.UpdatedAt = writeTime
			if prev, ok := existing[task.ID]; ok {
				task.CreatedAt = prev.CreatedAt
			} else {
				task.CreatedAt = writeTime
			}
		}

		if err := s.taskRepo.UpsertBatch(ctx, userID, batch); err != nil {
			return nil, fmt.Errorf("failed to commit task batch for user '%s': %w", userID, err)
		}

		s.logger.Info("Applied client task batch",
			zap.String("uid", userID),
			zap.Int("submitted", len(req.Tasks)),
			zap.Int("written", len(batch)))
	}

	return &models.SyncResponse{
		Status:      "success",
		Message:     fmt.Sprintf("synced %d task(s)", len(serverChanges)),
		SyncedTasks: serverChanges,
		ServerTime:  s.now().UnixMilli(),
	}, nil
}

// dedupeBatch copies the submitted tasks, assigns server-generated ids
// to entries without one, and collapses duplicate ids so that the last
// occurrence in submission order wins.
func (s *syncService) dedupeBatch(submitted []models.Task) []*models.Task {
	batch := make([]*models.Task, 0, len(submitted))
	position := make(map[string]int, len(submitted))
	for i := range submitted {
		task := submitted[i]
		if task.ID == "" {
			task.ID = s.newID()
		}
		if pos, seen := position[task.ID]; seen {
			batch[pos] = &task
			continue
		}
		position[task.ID] = len(batch)
		batch = append(batch, &task)
	}
	return batch
}

// normalizeSyncTime treats absent and non-positive watermarks alike as
// "full resync", matching the client contract.
func normalizeSyncTime(since *int64) *int64 {
	if since == nil || *since <= 0 {
		return nil
	}
	return since
}
