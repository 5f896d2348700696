package domain

import "time"

// AuthEventKind classifies audit-trail entries.
type AuthEventKind string

const (
	AuthEventSignIn  AuthEventKind = "sign_in"
	AuthEventSignOut AuthEventKind = "sign_out"
)

// AuthEvent records a sign-in or sign-out for the audit trail. Events are
// persisted asynchronously; per-user ordering is preserved by the dispatcher.
type AuthEvent struct {
	UserID   string        `json:"user_id"`
	Email    string        `json:"email"`
	Role     string        `json:"role"`
	Provider string        `json:"provider"`
	Kind     AuthEventKind `json:"kind"`
	At       time.Time     `json:"at"`
}
