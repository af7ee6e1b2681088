// Package adapters provides repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"contact_backend/internal/feature/auth/domain/entity"
	"contact_backend/internal/feature/auth/usecase"
)

// accountMySQL is a MySQL implementation of the AccountRepository interface.
// It uses GORM for database operations.
type accountMySQL struct {
	db *gorm.DB
}

// Compile-time check that accountMySQL implements AccountRepository.
var _ usecase.AccountRepository = (*accountMySQL)(nil)

// NewAccountMySQL creates a new accountMySQL with the given gorm.DB connection.
func NewAccountMySQL(db *gorm.DB) *accountMySQL {
	return &accountMySQL{db: db}
}

// Create inserts the account. When the unique index on email fires it
// returns usecase.ErrEmailTaken; the index, not the usecase pre-check, is
// the authoritative guard under concurrent registration.
func (r *accountMySQL) Create(ctx context.Context, a *entity.Account) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		// MySQL error 1062: duplicate entry for a unique key.
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return usecase.ErrEmailTaken
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrEmailTaken
		}
		return err
	}
	return nil
}

// FindByEmail retrieves an account by email address.
// It returns usecase.ErrAccountNotFound if the account does not exist.
func (r *accountMySQL) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var a entity.Account
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrAccountNotFound
		}
		return nil, err
	}
	return &a, nil
}

// FindByID retrieves an account by ID.
// It returns usecase.ErrAccountNotFound if the account does not exist.
func (r *accountMySQL) FindByID(ctx context.Context, id uint) (*entity.Account, error) {
	var a entity.Account
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrAccountNotFound
		}
		return nil, err
	}
	return &a, nil
}

// Update persists the account's name and email. Only those two columns
// are written; the password hash never changes through this path.
func (r *accountMySQL) Update(ctx context.Context, a *entity.Account) error {
	if err := r.db.WithContext(ctx).
		Model(&entity.Account{}).
		Where("id = ?", a.ID).
		Updates(map[string]any{"name": a.Name, "email": a.Email}).Error; err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return usecase.ErrEmailTaken
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrEmailTaken
		}
		return err
	}
	return nil
}
