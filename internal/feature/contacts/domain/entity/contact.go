// Package entity defines the domain entities for the contacts feature.
package entity

import "time"

// Contact is a single entry in an account's personal contact list.
type Contact struct {
	// ID is the unique identifier for the contact.
	ID uint `gorm:"primaryKey"`

	// Name, Email, and Mobile are free-form fields; only storage caps apply.
	Name   string `gorm:"size:150"`
	Email  string `gorm:"size:150"`
	Mobile string `gorm:"size:15"`

	// OwnerID references the account that created the contact.
	// It is set once at creation and never changes.
	OwnerID uint `gorm:"index;not null"`

	// CreatedAt is the timestamp when the contact was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the contact was last updated.
	UpdatedAt time.Time
}
