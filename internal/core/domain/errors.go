package domain

import "errors"

// AuthenticationError is a login failure with a message safe to show the
// user. Raw transport errors never reach callers through this type.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	if e.Message == "" {
		return "invalid email or password"
	}
	return e.Message
}

var (
	// ErrTokenInvalid covers malformed, forged and expired session tokens.
	// It is always treated as "not authenticated" and never surfaced verbatim.
	ErrTokenInvalid = errors.New("invalid session token")

	// ErrBackendUnavailable is a network or HTTP failure talking to the
	// backend during login. Surfaced to the user as a generic retry message.
	ErrBackendUnavailable = errors.New("authentication backend unavailable")

	// ErrReconciliationFailed means the federated-profile lookup against the
	// backend failed. Recovered locally with a default role, never surfaced.
	ErrReconciliationFailed = errors.New("federated account reconciliation failed")

	ErrCourseNotFound = errors.New("course not found")
	ErrForbidden      = errors.New("access forbidden")
)
