package service

import (
	"time"

	"github.com/learnhub/course-portal/internal/core/domain"
	"github.com/learnhub/course-portal/internal/core/ports"
)

// SessionState is the tri-state lifecycle of session resolution within one
// request cycle.
type SessionState int

const (
	// StateLoading is the zero value: resolution not yet attempted.
	StateLoading SessionState = iota
	StateAuthenticated
	StateUnauthenticated
)

func (s SessionState) String() string {
	switch s {
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return "loading"
	}
}

// Session is a read model of the current request's session. It is not an
// enforcement point — the gate is.
type Session struct {
	State    SessionState
	Identity *domain.Identity
}

// SessionProvider resolves the session cookie into a Session exactly once per
// request. A fresh request always starts from StateLoading (the zero value)
// and Resolve transitions it to exactly one of the resolved states.
type SessionProvider struct {
	codec ports.SessionCodec
}

func NewSessionProvider(codec ports.SessionCodec) *SessionProvider {
	return &SessionProvider{codec: codec}
}

func (p *SessionProvider) Resolve(rawToken string, now time.Time) Session {
	if rawToken == "" {
		return Session{State: StateUnauthenticated}
	}
	tok, err := p.codec.Verify(rawToken, now)
	if err != nil {
		return Session{State: StateUnauthenticated}
	}
	identity := tok.Identity
	return Session{State: StateAuthenticated, Identity: &identity}
}
