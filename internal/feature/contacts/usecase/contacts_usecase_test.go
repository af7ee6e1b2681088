package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contact_backend/internal/feature/contacts/domain/entity"
)

// mockContactRepository is a mock implementation of ContactRepository.
type mockContactRepository struct {
	InsertFunc      func(ctx context.Context, contact *entity.Contact) error
	FindByIDFunc    func(ctx context.Context, id uint) (*entity.Contact, error)
	UpdateOwnedFunc func(ctx context.Context, id, ownerID uint, name, email, mobile string) (bool, error)
	DeleteOwnedFunc func(ctx context.Context, id, ownerID uint) (bool, error)
	ListByOwnerFunc func(ctx context.Context, ownerID uint) ([]entity.Contact, error)
}

func (m *mockContactRepository) Insert(ctx context.Context, contact *entity.Contact) error {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, contact)
	}
	contact.ID = 1
	return nil
}

func (m *mockContactRepository) FindByID(ctx context.Context, id uint) (*entity.Contact, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrContactNotFound
}

func (m *mockContactRepository) UpdateOwned(ctx context.Context, id, ownerID uint, name, email, mobile string) (bool, error) {
	if m.UpdateOwnedFunc != nil {
		return m.UpdateOwnedFunc(ctx, id, ownerID, name, email, mobile)
	}
	return false, nil
}

func (m *mockContactRepository) DeleteOwned(ctx context.Context, id, ownerID uint) (bool, error) {
	if m.DeleteOwnedFunc != nil {
		return m.DeleteOwnedFunc(ctx, id, ownerID)
	}
	return false, nil
}

func (m *mockContactRepository) ListByOwner(ctx context.Context, ownerID uint) ([]entity.Contact, error) {
	if m.ListByOwnerFunc != nil {
		return m.ListByOwnerFunc(ctx, ownerID)
	}
	return nil, nil
}

func TestContactsUsecase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("stamps the owner and persists", func(t *testing.T) {
		repo := &mockContactRepository{
			InsertFunc: func(ctx context.Context, contact *entity.Contact) error {
				assert.Equal(t, uint(7), contact.OwnerID, "owner must come from the caller identity")
				contact.ID = 11
				return nil
			},
		}
		uc := NewContactsUsecase(repo)

		contact, err := uc.Create(ctx, 7, "Bob", "bob@x.com", "5551234")
		require.NoError(t, err)
		assert.Equal(t, uint(11), contact.ID)
		assert.Equal(t, "Bob", contact.Name)
	})

	t.Run("accepts any field values", func(t *testing.T) {
		// No validation beyond storage caps: empty and odd values pass.
		uc := NewContactsUsecase(&mockContactRepository{
			InsertFunc: func(ctx context.Context, contact *entity.Contact) error { return nil },
		})

		_, err := uc.Create(ctx, 7, "", "", "")
		assert.NoError(t, err)
		_, err = uc.Create(ctx, 7, "x", "not-an-email", "not-a-number")
		assert.NoError(t, err)
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		wantErr := errors.New("database error")
		uc := NewContactsUsecase(&mockContactRepository{
			InsertFunc: func(ctx context.Context, contact *entity.Contact) error { return wantErr },
		})

		_, err := uc.Create(ctx, 7, "Bob", "bob@x.com", "5551234")
		assert.ErrorIs(t, err, wantErr)
	})
}

func TestContactsUsecase_Edit(t *testing.T) {
	ctx := context.Background()

	t.Run("owned contact is updated", func(t *testing.T) {
		var gotID, gotOwner uint
		uc := NewContactsUsecase(&mockContactRepository{
			UpdateOwnedFunc: func(ctx context.Context, id, ownerID uint, name, email, mobile string) (bool, error) {
				gotID, gotOwner = id, ownerID
				return true, nil
			},
		})

		require.NoError(t, uc.Edit(ctx, 7, 11, "Bob", "bob@x.com", "5551234"))
		assert.Equal(t, uint(11), gotID)
		assert.Equal(t, uint(7), gotOwner)
	})

	t.Run("ownership mismatch and missing contact are silent no-ops", func(t *testing.T) {
		uc := NewContactsUsecase(&mockContactRepository{
			UpdateOwnedFunc: func(ctx context.Context, id, ownerID uint, name, email, mobile string) (bool, error) {
				return false, nil
			},
		})

		// The caller sees success either way.
		assert.NoError(t, uc.Edit(ctx, 7, 11, "Bob", "bob@x.com", "5551234"))
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		wantErr := errors.New("database error")
		uc := NewContactsUsecase(&mockContactRepository{
			UpdateOwnedFunc: func(ctx context.Context, id, ownerID uint, name, email, mobile string) (bool, error) {
				return false, wantErr
			},
		})

		assert.ErrorIs(t, uc.Edit(ctx, 7, 11, "Bob", "bob@x.com", "5551234"), wantErr)
	})
}

func TestContactsUsecase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("owned contact is deleted", func(t *testing.T) {
		uc := NewContactsUsecase(&mockContactRepository{
			DeleteOwnedFunc: func(ctx context.Context, id, ownerID uint) (bool, error) {
				assert.Equal(t, uint(11), id)
				assert.Equal(t, uint(7), ownerID)
				return true, nil
			},
		})

		assert.NoError(t, uc.Delete(ctx, 7, 11))
	})

	t.Run("ownership mismatch is a silent no-op", func(t *testing.T) {
		uc := NewContactsUsecase(&mockContactRepository{
			DeleteOwnedFunc: func(ctx context.Context, id, ownerID uint) (bool, error) {
				return false, nil
			},
		})

		assert.NoError(t, uc.Delete(ctx, 7, 11))
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		wantErr := errors.New("database error")
		uc := NewContactsUsecase(&mockContactRepository{
			DeleteOwnedFunc: func(ctx context.Context, id, ownerID uint) (bool, error) {
				return false, wantErr
			},
		})

		assert.ErrorIs(t, uc.Delete(ctx, 7, 11), wantErr)
	})
}

func TestContactsUsecase_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("owned contact is returned", func(t *testing.T) {
		uc := NewContactsUsecase(&mockContactRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Contact, error) {
				return &entity.Contact{ID: id, OwnerID: 7, Name: "Bob"}, nil
			},
		})

		contact, err := uc.Get(ctx, 7, 11)
		require.NoError(t, err)
		assert.Equal(t, "Bob", contact.Name)
	})

	t.Run("someone else's contact reads as not found", func(t *testing.T) {
		uc := NewContactsUsecase(&mockContactRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Contact, error) {
				return &entity.Contact{ID: id, OwnerID: 8, Name: "Bob"}, nil
			},
		})

		_, err := uc.Get(ctx, 7, 11)
		assert.ErrorIs(t, err, ErrContactNotFound)
	})

	t.Run("missing contact reads as not found", func(t *testing.T) {
		uc := NewContactsUsecase(&mockContactRepository{})

		_, err := uc.Get(ctx, 7, 11)
		assert.ErrorIs(t, err, ErrContactNotFound)
	})
}

func TestContactsUsecase_ListByOwner(t *testing.T) {
	ctx := context.Background()

	want := []entity.Contact{{ID: 1, Name: "Bob", OwnerID: 7}}
	uc := NewContactsUsecase(&mockContactRepository{
		ListByOwnerFunc: func(ctx context.Context, ownerID uint) ([]entity.Contact, error) {
			assert.Equal(t, uint(7), ownerID)
			return want, nil
		},
	})

	got, err := uc.ListByOwner(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
