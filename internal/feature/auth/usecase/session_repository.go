package usecase

import (
	"context"
	"time"

	"contact_backend/internal/feature/auth/domain/entity"
)

// SessionRepository abstracts the persistence layer for session records.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters / platform).
type SessionRepository interface {
	// Create persists a new session to the storage.
	Create(ctx context.Context, session *entity.Session) error

	// FindByID retrieves a session by its ID.
	// It returns ErrSessionNotFound if no such session exists.
	FindByID(ctx context.Context, id string) (*entity.Session, error)

	// Refresh re-stamps the freshness deadline of an existing session.
	Refresh(ctx context.Context, id string, freshUntil time.Time) error

	// Revoke marks a session as revoked. Revoking a session that does not
	// exist returns ErrSessionNotFound; callers decide whether that matters.
	Revoke(ctx context.Context, id string) error
}
