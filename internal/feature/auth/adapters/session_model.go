package adapters

import (
	"time"

	"contact_backend/internal/feature/auth/domain/entity"
)

// SessionModel is the GORM model for the sessions table, used when Redis
// is unavailable and sessions fall back to SQL storage.
type SessionModel struct {
	ID         string     `gorm:"primaryKey;size:36"`
	AccountID  uint       `gorm:"index;not null"`
	Remember   bool       `gorm:"not null"`
	FreshUntil time.Time  `gorm:"not null"`
	CreatedAt  time.Time  `gorm:"not null"`
	ExpiresAt  time.Time  `gorm:"index;not null"`
	RevokedAt  *time.Time `gorm:"index"`
}

// TableName returns the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}

// ToEntity converts the GORM model to a domain entity.
func (m *SessionModel) ToEntity() *entity.Session {
	return &entity.Session{
		ID:         m.ID,
		AccountID:  m.AccountID,
		Remember:   m.Remember,
		FreshUntil: m.FreshUntil,
		CreatedAt:  m.CreatedAt,
		ExpiresAt:  m.ExpiresAt,
		RevokedAt:  m.RevokedAt,
	}
}

// SessionModelFromEntity converts a domain entity to a GORM model.
func SessionModelFromEntity(s *entity.Session) *SessionModel {
	return &SessionModel{
		ID:         s.ID,
		AccountID:  s.AccountID,
		Remember:   s.Remember,
		FreshUntil: s.FreshUntil,
		CreatedAt:  s.CreatedAt,
		ExpiresAt:  s.ExpiresAt,
		RevokedAt:  s.RevokedAt,
	}
}
