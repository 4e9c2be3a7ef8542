package models

// Task is a single to-do item owned by one user. Tasks live in the
// per-user subcollection users/{uid}/tasks and are never physically
// removed; deletion sets the IsDeleted tombstone instead.
//
// All timestamps are millisecond epoch integers, both on the wire and
// in Firestore, so that incremental sync queries can compare them
// directly against a client's last_sync_time.
type Task struct {
	ID          string `json:"id" firestore:"-"` // Firestore document ID
	Title       string `json:"title" firestore:"title"`
	Description string `json:"description,omitempty" firestore:"description,omitempty"`
	IsCompleted bool   `json:"is_completed" firestore:"isCompleted"`
	CreatedAt   int64  `json:"created_at" firestore:"createdAt"`
	UpdatedAt   int64  `json:"updated_at" firestore:"updatedAt"`
	IsDeleted   bool   `json:"is_deleted" firestore:"isDeleted"`
}
