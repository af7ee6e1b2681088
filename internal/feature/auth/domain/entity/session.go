package entity

import "time"

// Session represents a server-side login session.
// The client only ever holds the signed token wrapping the session ID;
// all state lives in this record.
type Session struct {
	ID         string     // Session ID (UUID), embedded in the signed token
	AccountID  uint       // Owning account
	Remember   bool       // Persisted across restarts / long idle
	FreshUntil time.Time  // Until this instant the session counts as fresh
	CreatedAt  time.Time  // Session creation time
	ExpiresAt  time.Time  // Session expiration time
	RevokedAt  *time.Time // Revocation time (nil if active)
}

// IsExpired returns true if the session has passed its expiration time.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// IsRevoked returns true if the session has been revoked.
func (s *Session) IsRevoked() bool {
	return s.RevokedAt != nil
}

// IsValid returns true if the session is neither expired nor revoked.
func (s *Session) IsValid() bool {
	return !s.IsExpired() && !s.IsRevoked()
}

// IsFresh returns true if the session was established (or re-established)
// with credentials recently enough to allow sensitive operations.
func (s *Session) IsFresh() bool {
	return s.IsValid() && time.Now().Before(s.FreshUntil)
}
