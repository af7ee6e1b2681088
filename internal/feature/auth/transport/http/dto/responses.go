package dto

import "contact_backend/internal/feature/auth/domain/entity"

// ErrorResponse is the uniform error envelope for all endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is a success envelope carrying a human-readable message.
type MessageResponse struct {
	Message string `json:"message"`
}

// AccountItem is the public projection of an account. The password hash
// never leaves the server.
type AccountItem struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SessionResponse is returned on successful login: the session token and
// the authenticated account.
type SessionResponse struct {
	Token   string      `json:"token"`
	Account AccountItem `json:"account"`
}

// AccountItemFromEntity converts an account entity to its public projection.
func AccountItemFromEntity(a *entity.Account) AccountItem {
	return AccountItem{ID: a.ID, Name: a.Name, Email: a.Email}
}
