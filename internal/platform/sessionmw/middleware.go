// Package sessionmw provides Gin middleware that resolves the caller's
// session before any core operation runs. Guarding is an explicit call to
// the session authority returning a typed result, not an ambient check.
package sessionmw

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"contact_backend/internal/feature/auth/usecase"
)

// Context keys set by SessionRequired.
const (
	ContextAccountID = "accountID"
	ContextFresh     = "sessionFresh"
	ContextToken     = "sessionToken"
)

// SessionResolver resolves a raw token to a session state.
// Following Go convention: interfaces are defined by the consumer
// (middleware), not the provider (usecase).
type SessionResolver interface {
	ResolveSession(ctx context.Context, token string) (usecase.SessionState, error)
}

// BearerToken extracts the bearer token from the Authorization header.
// It returns the empty string when the header is missing or malformed.
func BearerToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}

// SessionRequired returns a middleware that resolves the bearer token and
// restricts access to authenticated sessions. Invalid, expired, tampered,
// and revoked tokens all read as anonymous and get a 401; only a store
// failure yields a 500.
func SessionRequired(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		state, err := resolver.ResolveSession(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		if !state.Authenticated {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Set(ContextAccountID, state.AccountID)
		c.Set(ContextFresh, state.Fresh)
		c.Set(ContextToken, token)
		c.Next()
	}
}

// AccountID returns the authenticated account ID stashed by SessionRequired.
func AccountID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextAccountID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
