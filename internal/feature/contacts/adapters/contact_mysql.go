// Package adapters provides repository implementations for the contacts feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"contact_backend/internal/feature/contacts/domain/entity"
	"contact_backend/internal/feature/contacts/usecase"
)

// contactMySQL is a MySQL implementation of the ContactRepository interface.
type contactMySQL struct {
	db *gorm.DB
}

// Compile-time check that contactMySQL implements ContactRepository.
var _ usecase.ContactRepository = (*contactMySQL)(nil)

// NewContactMySQL creates a new contactMySQL with the given gorm.DB connection.
func NewContactMySQL(db *gorm.DB) *contactMySQL {
	return &contactMySQL{db: db}
}

// Insert persists a new contact.
func (r *contactMySQL) Insert(ctx context.Context, contact *entity.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

// FindByID retrieves a contact by ID.
// It returns usecase.ErrContactNotFound if the contact does not exist.
func (r *contactMySQL) FindByID(ctx context.Context, id uint) (*entity.Contact, error) {
	var contact entity.Contact
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&contact).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrContactNotFound
		}
		return nil, err
	}
	return &contact, nil
}

// UpdateOwned updates the contact's fields in a single statement scoped to
// the owner. The ownership check and the write cannot race: a contact that
// is missing or owned by someone else simply matches zero rows.
// RowsAffected must count matched rows, not changed ones (clientFoundRows
// in the MySQL DSN), so an owner re-submitting identical values still
// reports true.
func (r *contactMySQL) UpdateOwned(ctx context.Context, id, ownerID uint, name, email, mobile string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&entity.Contact{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Updates(map[string]any{"name": name, "email": email, "mobile": mobile})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// DeleteOwned removes the contact in a single owner-scoped statement, with
// the same zero-rows semantics as UpdateOwned.
func (r *contactMySQL) DeleteOwned(ctx context.Context, id, ownerID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&entity.Contact{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ListByOwner returns all contacts owned by the account, oldest first.
func (r *contactMySQL) ListByOwner(ctx context.Context, ownerID uint) ([]entity.Contact, error) {
	var contacts []entity.Contact
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}
