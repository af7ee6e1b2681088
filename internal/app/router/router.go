// Package router assembles the HTTP route table.
package router

import (
	"github.com/gin-gonic/gin"

	authhandler "contact_backend/internal/feature/auth/transport/handler"
	contacthandler "contact_backend/internal/feature/contacts/transport/handler"
	platformhandler "contact_backend/internal/platform/http/handler"
	"contact_backend/internal/platform/sessionmw"
)

// NewRouter builds the Gin engine. Anonymous routes come first; everything
// owner-scoped sits behind the session middleware, which resolves the
// bearer token once per request before any core operation runs.
func NewRouter(authH *authhandler.AuthHandler, contactH *contacthandler.ContactHandler,
	resolver sessionmw.SessionResolver) *gin.Engine {
	r := gin.Default()

	// No session required
	r.GET("/healthz", platformhandler.Health)
	r.POST("/signup", authH.Signup)
	r.POST("/login", authH.Login)

	// Session-scoped routes
	auth := r.Group("/")
	auth.Use(sessionmw.SessionRequired(resolver))
	{
		auth.POST("/logout", authH.Logout)
		auth.GET("/me", authH.Me)
		auth.POST("/reauth", authH.Reauth)
		// Profile edits require a fresh session; the usecase enforces it
		// via the token, the middleware only guarantees authentication.
		auth.PUT("/profile", authH.UpdateProfile)

		auth.GET("/contacts", contactH.List)
		auth.POST("/contacts", contactH.Create)
		auth.GET("/contacts/:id", contactH.Get)
		auth.PUT("/contacts/:id", contactH.Edit)
		auth.DELETE("/contacts/:id", contactH.Delete)
	}

	return r
}
