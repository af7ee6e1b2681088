package usecase

import (
	"context"
	"errors"
	"fmt"

	"contact_backend/internal/feature/auth/domain/entity"
)

const (
	// minNameLength is the minimum display-name length.
	minNameLength = 3

	// minEmailLength is the minimum email length.
	minEmailLength = 5

	// minPasswordLength is the minimum password length.
	minPasswordLength = 8
)

// dummyDigest is compared against when the login email is unknown so that
// every login attempt pays one bcrypt comparison regardless of outcome.
const dummyDigest = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AccountRepository abstracts the persistence layer for account entities.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type AccountRepository interface {
	// Create persists a new account to the storage. The storage-level unique
	// index on email is the authoritative duplicate guard; Create returns
	// ErrEmailTaken when it fires.
	Create(ctx context.Context, account *entity.Account) error

	// FindByEmail retrieves the account matching the email address.
	// It returns ErrAccountNotFound if no such account exists.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// FindByID retrieves the account matching the ID.
	// It returns ErrAccountNotFound if no such account exists.
	FindByID(ctx context.Context, id uint) (*entity.Account, error)

	// Update persists changes to an existing account's name and email.
	Update(ctx context.Context, account *entity.Account) error
}

// SessionGrant is the result of a successful login: the authenticated
// account and the signed session token to hand to the client.
type SessionGrant struct {
	Account *entity.Account
	Token   string
}

// AuthUsecase implements registration, login, logout, and profile updates.
type AuthUsecase struct {
	accounts AccountRepository
	hasher   PasswordHasher
	sessions *SessionAuthority
}

// NewAuthUsecase creates a new AuthUsecase.
func NewAuthUsecase(accounts AccountRepository, hasher PasswordHasher, sessions *SessionAuthority) *AuthUsecase {
	return &AuthUsecase{
		accounts: accounts,
		hasher:   hasher,
		sessions: sessions,
	}
}

// Register validates and creates a new account. Checks run in a fixed
// order and the first failure wins: duplicate email, name length, email
// length, password length, confirmation match. On success the password is
// hashed and the account persisted in a single insert.
func (u *AuthUsecase) Register(ctx context.Context, name, email, password, confirm string) (*entity.Account, error) {
	_, err := u.accounts.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, ErrEmailTaken
	case !errors.Is(err, ErrAccountNotFound):
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if len(name) < minNameLength {
		return nil, ErrNameTooShort
	}
	if len(email) < minEmailLength {
		return nil, ErrEmailTooShort
	}
	if len(password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}
	if password != confirm {
		return nil, ErrPasswordMismatch
	}

	digest, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	account := &entity.Account{Name: name, Email: email, PasswordHash: digest}
	// The unique index backstops the pre-check: under concurrent
	// registration exactly one insert wins and the other maps to
	// ErrEmailTaken here.
	if err := u.accounts.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// Login authenticates an account and issues a fresh, remembered session.
// Unknown email and wrong password are reported distinctly for user
// feedback. A dummy bcrypt comparison runs when the email is unknown so
// both paths cost the same.
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (*SessionGrant, error) {
	account, err := u.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			u.hasher.Verify(password, dummyDigest)
			return nil, ErrEmailNotRegistered
		}
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	if !u.hasher.Verify(password, account.PasswordHash) {
		return nil, ErrWrongPassword
	}
	token, err := u.sessions.CreateSession(ctx, account.ID, true)
	if err != nil {
		return nil, err
	}
	return &SessionGrant{Account: account, Token: token}, nil
}

// Logout destroys the session behind the token. Logging out an already
// destroyed or unknown session is a no-op, not an error.
func (u *AuthUsecase) Logout(ctx context.Context, token string) error {
	return u.sessions.DestroySession(ctx, token)
}

// Reauthenticate verifies the session account's password and re-stamps
// the session's freshness window, moving it back to fully fresh.
func (u *AuthUsecase) Reauthenticate(ctx context.Context, token, password string) error {
	accountID, err := u.sessions.RequireAuthenticated(ctx, token)
	if err != nil {
		return err
	}
	account, err := u.accounts.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return ErrNotAuthenticated
		}
		return fmt.Errorf("failed to load account: %w", err)
	}
	if !u.hasher.Verify(password, account.PasswordHash) {
		return ErrWrongPassword
	}
	return u.sessions.RefreshSession(ctx, token)
}

// UpdateProfile changes the name and email of the caller's own account.
// It requires a fresh session, and the session identity must match the
// target account; a mismatch is reported generically, never ignored.
// A new email already held by a different account is a conflict; keeping
// one's own email is not.
func (u *AuthUsecase) UpdateProfile(ctx context.Context, token string, accountID uint, newName, newEmail string) (*entity.Account, error) {
	callerID, err := u.sessions.RequireFresh(ctx, token)
	if err != nil {
		return nil, err
	}
	if callerID != accountID {
		return nil, ErrForbidden
	}
	if len(newName) < minNameLength {
		return nil, ErrNameTooShort
	}
	owner, err := u.accounts.FindByEmail(ctx, newEmail)
	switch {
	case err == nil && owner.ID != accountID:
		return nil, ErrEmailTaken
	case err != nil && !errors.Is(err, ErrAccountNotFound):
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if len(newEmail) < minEmailLength {
		return nil, ErrEmailTooShort
	}

	account, err := u.accounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	account.Name = newName
	account.Email = newEmail
	if err := u.accounts.Update(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// CurrentAccount resolves the token and returns the session's account.
func (u *AuthUsecase) CurrentAccount(ctx context.Context, token string) (*entity.Account, error) {
	accountID, err := u.sessions.RequireAuthenticated(ctx, token)
	if err != nil {
		return nil, err
	}
	account, err := u.accounts.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	return account, nil
}
