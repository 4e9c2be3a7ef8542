package models

// UserProfile is the users/{uid} document. Profiles are provisioned by
// the account system, not by this service; here they are read-only and
// only consulted for authorization attributes. A missing profile is not
// an error and yields the zero-value attributes (non-admin, no
// permissions).
type UserProfile struct {
	ID          string   `json:"id" firestore:"-"` // Firebase Auth UID, the document ID
	Email       string   `json:"email,omitempty" firestore:"email,omitempty"`
	DisplayName string   `json:"displayName,omitempty" firestore:"displayName,omitempty"`
	IsAdmin     bool     `json:"isAdmin" firestore:"isAdmin"`
	Permissions []string `json:"permissions,omitempty" firestore:"permissions,omitempty"`
}

// Identity is the request-scoped authentication context. It is built
// once per request from a verified bearer token plus a best-effort
// profile lookup, and discarded at request end.
type Identity struct {
	UID           string   `json:"uid"`
	Email         string   `json:"email,omitempty"`
	EmailVerified bool     `json:"email_verified"`
	IsAdmin       bool     `json:"is_admin"`
	Permissions   []string `json:"permissions,omitempty"`
}
