// Package handler provides HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"contact_backend/internal/feature/auth/domain/entity"
	"contact_backend/internal/feature/auth/transport/http/dto"
	"contact_backend/internal/feature/auth/usecase"
	"contact_backend/internal/platform/sessionmw"
	"contact_backend/internal/shared/ratelimiter"
)

// AuthUsecase defines the auth operations the handlers invoke.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type AuthUsecase interface {
	Register(ctx context.Context, name, email, password, confirm string) (*entity.Account, error)
	Login(ctx context.Context, email, password string) (*usecase.SessionGrant, error)
	Logout(ctx context.Context, token string) error
	Reauthenticate(ctx context.Context, token, password string) error
	UpdateProfile(ctx context.Context, token string, accountID uint, newName, newEmail string) (*entity.Account, error)
	CurrentAccount(ctx context.Context, token string) (*entity.Account, error)
}

// AuthHandler handles HTTP requests for authentication and profile operations.
type AuthHandler struct {
	auth    AuthUsecase
	limiter *ratelimiter.Limiter
}

// NewAuthHandler creates a new AuthHandler. The limiter throttles login
// attempts per client IP and may be nil to disable throttling.
func NewAuthHandler(auth AuthUsecase, limiter *ratelimiter.Limiter) *AuthHandler {
	return &AuthHandler{auth: auth, limiter: limiter}
}

// Signup handles the user registration endpoint.
// - 400 with a reason for validation failures
// - 409 for a duplicate email
// - 201 on success
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}
	account, err := h.auth.Register(c.Request.Context(), req.Name, req.Email, req.Password, req.PasswordConfirm)
	if err != nil {
		status, msg := registerStatus(err)
		slog.Warn("signup failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(status, dto.ErrorResponse{Error: msg})
		return
	}
	slog.Info("account created", "account_id", account.ID, "email", account.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.AccountItemFromEntity(account))
}

// Login handles the login endpoint.
// - 429 when the client IP is over the attempt limit
// - 401 with a reason code for unknown email or wrong password
// - 200 with the session token on success
func (h *AuthHandler) Login(c *gin.Context) {
	if h.limiter != nil && !h.limiter.Allow(c.ClientIP()) {
		slog.Warn("login throttled", "remote_addr", c.ClientIP())
		c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{Error: "too many login attempts"})
		return
	}
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}
	grant, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailNotRegistered), errors.Is(err, usecase.ErrWrongPassword):
			slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})
		default:
			slog.Error("login error", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal error"})
		}
		return
	}
	slog.Info("login successful", "account_id", grant.Account.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.SessionResponse{
		Token:   grant.Token,
		Account: dto.AccountItemFromEntity(grant.Account),
	})
}

// Logout destroys the caller's session. Idempotent: logging out an
// already dead session still reports success.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := c.GetString(sessionmw.ContextToken)
	if err := h.auth.Logout(c.Request.Context(), token); err != nil {
		slog.Error("logout error", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal error"})
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "logged out"})
}

// Me returns the account behind the caller's session.
func (h *AuthHandler) Me(c *gin.Context) {
	token := c.GetString(sessionmw.ContextToken)
	account, err := h.auth.CurrentAccount(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, usecase.ErrNotAuthenticated) {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
			return
		}
		slog.Error("account lookup error", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal error"})
		return
	}
	c.JSON(http.StatusOK, dto.AccountItemFromEntity(account))
}

// Reauth re-verifies the caller's password and restores session freshness.
func (h *AuthHandler) Reauth(c *gin.Context) {
	var req dto.ReauthReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}
	token := c.GetString(sessionmw.ContextToken)
	if err := h.auth.Reauthenticate(c.Request.Context(), token, req.Password); err != nil {
		switch {
		case errors.Is(err, usecase.ErrWrongPassword), errors.Is(err, usecase.ErrNotAuthenticated):
			slog.Warn("reauth failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid password"})
		default:
			slog.Error("reauth error", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal error"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "session refreshed"})
}

// UpdateProfile changes the caller's own name and email. Requires a fresh
// session; a stale one gets a 403 telling the client to log in again.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req dto.ProfileUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("profile validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}
	token := c.GetString(sessionmw.ContextToken)
	account, err := h.auth.UpdateProfile(c.Request.Context(), token, req.ID, req.Name, req.Email)
	if err != nil {
		status, msg := profileStatus(err)
		if status == http.StatusInternalServerError {
			slog.Error("profile update error", "error", err, "remote_addr", c.ClientIP())
		} else {
			slog.Warn("profile update rejected", "error", err, "remote_addr", c.ClientIP())
		}
		c.JSON(status, dto.ErrorResponse{Error: msg})
		return
	}
	slog.Info("profile updated", "account_id", account.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.AccountItemFromEntity(account))
}

// registerStatus maps a Register failure to an HTTP status and message.
func registerStatus(err error) (int, string) {
	switch {
	case errors.Is(err, usecase.ErrEmailTaken):
		return http.StatusConflict, err.Error()
	case errors.Is(err, usecase.ErrNameTooShort),
		errors.Is(err, usecase.ErrEmailTooShort),
		errors.Is(err, usecase.ErrPasswordTooShort),
		errors.Is(err, usecase.ErrPasswordMismatch):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

// profileStatus maps an UpdateProfile failure to an HTTP status and message.
func profileStatus(err error) (int, string) {
	switch {
	case errors.Is(err, usecase.ErrSessionNotFresh):
		return http.StatusForbidden, "fresh login required"
	case errors.Is(err, usecase.ErrNotAuthenticated):
		return http.StatusUnauthorized, "authentication required"
	case errors.Is(err, usecase.ErrForbidden):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, usecase.ErrEmailTaken):
		return http.StatusConflict, err.Error()
	case errors.Is(err, usecase.ErrNameTooShort), errors.Is(err, usecase.ErrEmailTooShort):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "internal error"
	}
}
