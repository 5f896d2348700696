package domain

import "time"

// SessionToken is the decoded form of a verified session cookie: the embedded
// identity plus issuance metadata. It is self-contained — reconstructing it
// never requires a backend round-trip.
type SessionToken struct {
	Identity  Identity
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
