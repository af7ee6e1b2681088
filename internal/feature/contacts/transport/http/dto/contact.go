// Package dto defines data transfer objects for the contacts feature's HTTP transport layer.
package dto

import "contact_backend/internal/feature/contacts/domain/entity"

// ContactReq is the request body for creating or editing a contact.
// Fields are free-form on purpose; only storage caps apply.
type ContactReq struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Mobile string `json:"mobile" binding:"max=15"`
}

// ContactItem is the public projection of a contact.
type ContactItem struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Mobile string `json:"mobile"`
}

// ContactItemFromEntity converts a contact entity to its public projection.
func ContactItemFromEntity(c *entity.Contact) ContactItem {
	return ContactItem{ID: c.ID, Name: c.Name, Email: c.Email, Mobile: c.Mobile}
}
