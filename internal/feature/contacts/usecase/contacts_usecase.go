// Package usecase implements the business logic for the contacts feature.
package usecase

import (
	"context"
	"errors"
	"log/slog"

	"contact_backend/internal/feature/contacts/domain/entity"
)

// ErrContactNotFound is returned by repositories when no contact matches
// the given ID. The usecase swallows it on mutation paths.
var ErrContactNotFound = errors.New("contact not found")

// ContactRepository abstracts the persistence layer for contact entities.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type ContactRepository interface {
	// Insert persists a new contact.
	Insert(ctx context.Context, contact *entity.Contact) error

	// FindByID retrieves a contact by ID.
	// It returns ErrContactNotFound if no such contact exists.
	FindByID(ctx context.Context, id uint) (*entity.Contact, error)

	// UpdateOwned updates a contact's fields if and only if it is owned by
	// ownerID, as one atomic statement. It reports whether a row changed.
	UpdateOwned(ctx context.Context, id, ownerID uint, name, email, mobile string) (bool, error)

	// DeleteOwned deletes a contact if and only if it is owned by ownerID,
	// as one atomic statement. It reports whether a row was removed.
	DeleteOwned(ctx context.Context, id, ownerID uint) (bool, error)

	// ListByOwner retrieves all contacts owned by the account.
	ListByOwner(ctx context.Context, ownerID uint) ([]entity.Contact, error)
}

// ContactsUsecase implements owner-scoped contact management.
//
// Two inherited behaviors are deliberate, not gaps to fix here:
// Create and Edit validate no fields beyond storage caps (unlike account
// registration), and an edit or delete against a contact the caller does
// not own completes silently without mutating anything, so the caller
// cannot tell "not yours" from "does not exist".
type ContactsUsecase struct {
	repo ContactRepository
}

// NewContactsUsecase creates a new ContactsUsecase with the given repository.
func NewContactsUsecase(repo ContactRepository) *ContactsUsecase {
	return &ContactsUsecase{repo: repo}
}

// Create adds a contact owned by ownerID. It always succeeds for an
// authenticated owner; only store failures surface.
func (u *ContactsUsecase) Create(ctx context.Context, ownerID uint, name, email, mobile string) (*entity.Contact, error) {
	contact := &entity.Contact{
		Name:    name,
		Email:   email,
		Mobile:  mobile,
		OwnerID: ownerID,
	}
	if err := u.repo.Insert(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// Edit updates a contact's fields when the caller owns it. A missing
// contact or an ownership mismatch is a silent no-op; the skip is logged
// server-side only.
func (u *ContactsUsecase) Edit(ctx context.Context, callerID, contactID uint, name, email, mobile string) error {
	changed, err := u.repo.UpdateOwned(ctx, contactID, callerID, name, email, mobile)
	if err != nil {
		return err
	}
	if !changed {
		slog.Debug("contact edit skipped", "contact_id", contactID, "caller_id", callerID)
	}
	return nil
}

// Delete removes a contact when the caller owns it, with the same
// silent-skip semantics as Edit.
func (u *ContactsUsecase) Delete(ctx context.Context, callerID, contactID uint) error {
	removed, err := u.repo.DeleteOwned(ctx, contactID, callerID)
	if err != nil {
		return err
	}
	if !removed {
		slog.Debug("contact delete skipped", "contact_id", contactID, "caller_id", callerID)
	}
	return nil
}

// Get returns a single contact when the caller owns it. A contact owned
// by someone else reads as ErrContactNotFound, so the caller cannot tell
// "not yours" from "does not exist" here either.
func (u *ContactsUsecase) Get(ctx context.Context, callerID, contactID uint) (*entity.Contact, error) {
	contact, err := u.repo.FindByID(ctx, contactID)
	if err != nil {
		return nil, err
	}
	if contact.OwnerID != callerID {
		return nil, ErrContactNotFound
	}
	return contact, nil
}

// ListByOwner returns every contact owned by the account.
func (u *ContactsUsecase) ListByOwner(ctx context.Context, ownerID uint) ([]entity.Contact, error) {
	return u.repo.ListByOwner(ctx, ownerID)
}
