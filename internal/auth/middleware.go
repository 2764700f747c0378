package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/bookhaven/bookhaven/internal/config"
)

// Context keys for user data
const (
	ContextKeyUserID   = "auth_user_id"
	ContextKeyUserName = "auth_user_name"
)

// Middleware resolves the session user, if any, and exposes it on the Gin
// context. It never rejects requests: the catalog's read surface is public,
// and handlers that need an identity check it themselves via CurrentUserName.
type Middleware struct {
	sessionManager *SessionManager
	config         config.Auth
}

// NewMiddleware creates a new authentication middleware.
func NewMiddleware(sessionManager *SessionManager, cfg config.Auth) *Middleware {
	return &Middleware{
		sessionManager: sessionManager,
		config:         cfg,
	}
}

// Handler returns a Gin middleware handler that resolves the current user.
func (m *Middleware) Handler() gin.HandlerFunc {
	if m.config.Mode == config.AuthModeNone || m.sessionManager == nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		if id, name, ok := m.sessionManager.SessionUser(c.Request); ok {
			c.Set(ContextKeyUserID, id)
			c.Set(ContextKeyUserName, name)
		}
		c.Next()
	}
}

// CurrentUserName returns the signed-in user's display name, if any.
func CurrentUserName(c *gin.Context) (string, bool) {
	name := c.GetString(ContextKeyUserName)
	return name, name != ""
}
