package http

import (
	"github.com/bookhaven/bookhaven/internal/auth"
	"github.com/bookhaven/bookhaven/internal/catalog"
	"github.com/bookhaven/bookhaven/internal/config"
	"github.com/bookhaven/bookhaven/internal/covers"
	"github.com/bookhaven/bookhaven/internal/database"
	"github.com/bookhaven/bookhaven/internal/notify"
	"github.com/bookhaven/bookhaven/internal/tasks"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router. This replaces a long parameter list
// in NewRouter for better maintainability.
type RouterConfig struct {
	// Core dependencies
	Catalog  *catalog.Store
	Database *database.Database
	Notifier notify.Notifier

	// Authentication
	AuthService    *auth.Service
	AuthMiddleware *auth.Middleware
	SessionManager *auth.SessionManager
	AuthConfig     config.Auth
	CSRFSecret     []byte
	SecureCookies  bool

	// Cover caching
	CoverCache *covers.Cache

	// Task queue client (optional)
	TaskClient *tasks.Client

	// Application info
	Version string
}
