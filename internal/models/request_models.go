package models

// Wire field names follow the mobile client's contract: snake_case for
// the task sync payloads, camelCase for the message payloads.

// SyncRequest is the body of POST /syncTasks. A nil (or non-positive)
// LastSyncTime requests a full resync; an empty Tasks slice is a pure
// pull of server-side changes.
type SyncRequest struct {
	UserID       string `json:"user_id"`
	LastSyncTime *int64 `json:"last_sync_time,omitempty"`
	Tasks        []Task `json:"tasks"`
}

// SyncResponse is the body returned by POST /syncTasks. SyncedTasks
// holds the server-side tasks the client has not seen yet, descending
// by updated_at. ServerTime is the high-watermark the client should
// store as its next last_sync_time.
type SyncResponse struct {
	Status      string  `json:"status"`
	Message     string  `json:"message"`
	SyncedTasks []*Task `json:"synced_tasks"`
	ServerTime  int64   `json:"server_time"`
}

// MessageRequest is the body of POST /sendMessage. UserID and Timestamp
// are accepted for client convenience but always overridden server-side.
type MessageRequest struct {
	Message   string `json:"message" binding:"required"`
	UserID    string `json:"userId,omitempty"`
	Timestamp int64  `json:"timestamp,omitempty"`
}

// RootToggleRequest is the body of POST /toggleRoot.
type RootToggleRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// RootToggleResponse is returned by POST /toggleRoot.
type RootToggleResponse struct {
	Status  string `json:"status"`
	Enabled bool   `json:"enabled"`
}

// AskQuestion is a single generated question entry.
type AskQuestion struct {
	ID       string `json:"id"`
	Question string `json:"question"`
}

// AskResponse is returned by GET /getAIQuestions.
type AskResponse struct {
	Questions []AskQuestion `json:"questions"`
	Status    string        `json:"status"`
}

// ImportResponse is returned by POST /importFile.
type ImportResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	URL     string `json:"url,omitempty"`
	Path    string `json:"path,omitempty"`
}

// ErrorResponse is the uniform error envelope every endpoint uses.
// It is deliberately free of internal detail: specifics are logged
// server-side only.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// NewErrorResponse builds the standard error envelope.
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Status: "error", Message: message}
}
