// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// SignupReq represents the request body for the /signup endpoint.
// Field-level checks (lengths, confirmation match) are deliberately left to
// the usecase so each failure keeps its distinct reason; binding only
// rejects missing fields.
type SignupReq struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Password        string `json:"password" binding:"required"`
	PasswordConfirm string `json:"password_confirm" binding:"required"`
}
