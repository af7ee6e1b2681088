package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"contact_backend/internal/feature/auth/domain/entity"
	"contact_backend/internal/feature/auth/usecase"
)

// sessionMySQL is a MySQL implementation of the SessionRepository interface.
type sessionMySQL struct {
	db *gorm.DB
}

// Compile-time check that sessionMySQL implements SessionRepository.
var _ usecase.SessionRepository = (*sessionMySQL)(nil)

// NewSessionMySQL creates a new sessionMySQL instance.
func NewSessionMySQL(db *gorm.DB) *sessionMySQL {
	return &sessionMySQL{db: db}
}

// Create persists a new session row.
func (r *sessionMySQL) Create(ctx context.Context, session *entity.Session) error {
	model := SessionModelFromEntity(session)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByID retrieves a session by its ID.
func (r *sessionMySQL) FindByID(ctx context.Context, id string) (*entity.Session, error) {
	var model SessionModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrSessionNotFound
		}
		return nil, err
	}
	return model.ToEntity(), nil
}

// Refresh re-stamps the freshness deadline as a single UPDATE.
func (r *sessionMySQL) Refresh(ctx context.Context, id string, freshUntil time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&SessionModel{}).
		Where("id = ?", id).
		Update("fresh_until", freshUntil)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrSessionNotFound
	}
	return nil
}

// Revoke marks a session as revoked. A single UPDATE keeps the operation
// atomic per token; revoking twice leaves the first revocation time.
func (r *sessionMySQL) Revoke(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Model(&SessionModel{}).
		Where("id = ? AND revoked_at IS NULL", id).
		Update("revoked_at", time.Now())
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Either unknown or already revoked; distinguish for the caller.
		var model SessionModel
		if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usecase.ErrSessionNotFound
			}
			return err
		}
	}
	return nil
}
