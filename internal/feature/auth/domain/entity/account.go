// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// Account represents a registered account in the system.
// It contains authentication credentials and the profile fields a user may edit.
type Account struct {
	// ID is the unique identifier for the account.
	ID uint `gorm:"primaryKey"`

	// Name is the account's display name.
	Name string `gorm:"size:150;not null"`

	// Email is the account's email address used as the login identifier.
	// It must be unique across all accounts.
	Email string `gorm:"uniqueIndex;size:150;not null"`

	// PasswordHash is the bcrypt digest of the account's password.
	// Plaintext passwords are never persisted.
	PasswordHash string `gorm:"size:255;not null"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the account was last updated.
	UpdatedAt time.Time
}
