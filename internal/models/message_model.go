package models

// Message represents a chat message record in the top-level messages
// collection. The UserID is always the authenticated caller's UID; any
// client-supplied value is overridden before the write.
type Message struct {
	ID        string `json:"id" firestore:"-"` // Document ID, auto-generated
	Message   string `json:"message" firestore:"message"`
	UserID    string `json:"userId" firestore:"userId"`
	Timestamp int64  `json:"timestamp" firestore:"timestamp"` // Millisecond epoch, server clock
	Status    string `json:"status" firestore:"status"`       // e.g. "sent"
}
