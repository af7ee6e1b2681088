package dto

// ProfileUpdateReq represents the request body for the /profile endpoint.
// Name and email only; passwords change through re-authentication flows,
// never here.
type ProfileUpdateReq struct {
	// ID is the target account as claimed by the client form. The usecase
	// rejects it when it differs from the session identity.
	ID    uint   `json:"id" binding:"required"`
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

// ReauthReq represents the request body for the /reauth endpoint, which
// upgrades an authenticated session back to fresh.
type ReauthReq struct {
	Password string `json:"password" binding:"required"`
}
