package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookhaven/bookhaven/internal/auth"
	"github.com/bookhaven/bookhaven/internal/catalog"
	"github.com/bookhaven/bookhaven/internal/config"
	"github.com/bookhaven/bookhaven/internal/database"
)

// newAuthRouter wires a full router with real sessions against a temp
// database, the way the entrypoint does in local auth mode.
func newAuthRouter(t *testing.T) (*gin.Engine, *catalog.Store, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_authflow_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}

	authCfg := config.Auth{
		Mode:            config.AuthModeLocal,
		SessionLifetime: time.Hour,
		BcryptCost:      4, // keep tests fast
		SecureCookies:   false,
	}

	service := auth.NewService(db.DB, authCfg)

	sqlDB, err := db.SQLDB()
	require.NoError(t, err)
	sessionManager, err := auth.NewSessionManager(sqlDB, authCfg)
	require.NoError(t, err)

	store := newTestCatalog(t)

	router := NewRouter(RouterConfig{
		Catalog:        store,
		Database:       db,
		AuthService:    service,
		AuthMiddleware: auth.NewMiddleware(sessionManager, authCfg),
		SessionManager: sessionManager,
		AuthConfig:     authCfg,
	})
	return router, store, cleanup
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "session" {
			return cookie
		}
	}
	return nil
}

func TestAuthFlow_SessionRoundTrip(t *testing.T) {
	router, store, cleanup := newAuthRouter(t)
	defer cleanup()

	// Register issues a session cookie with the response
	register := `{"name":"Alice","email":"alice@example.com","password":"correct horse"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/auth/register", strings.NewReader(register))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	cookie := sessionCookie(t, w)
	require.NotNil(t, cookie, "register response must carry the session cookie")
	require.NotEmpty(t, cookie.Value)

	// The cookie authenticates a review post and supplies the reviewer name
	review := `{"rating":5,"comment":"Loved it"}`
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("POST", "/api/books/1/reviews", strings.NewReader(review))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(cookie)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var created map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Alice", created["userName"])

	book, ok := store.BookByID("1")
	require.True(t, ok)
	assert.Equal(t, "Loved it", book.Reviews[len(book.Reviews)-1].Comment)

	// Without the cookie the same post is anonymous and rejected
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("POST", "/api/books/1/reviews", strings.NewReader(review))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthFlow_LoginIssuesCookie(t *testing.T) {
	router, _, cleanup := newAuthRouter(t)
	defer cleanup()

	register := `{"name":"Bilal","email":"bilal@example.com","password":"correct horse"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/auth/register", strings.NewReader(register))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	login := `{"email":"bilal@example.com","password":"correct horse"}`
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("POST", "/api/auth/login", strings.NewReader(login))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	cookie := sessionCookie(t, w)
	require.NotNil(t, cookie, "login response must carry the session cookie")

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/auth/me", nil)
	req.AddCookie(cookie)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Bilal")
}

func TestRouter_CSRFRejectionBlocksWrites(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := newTestCatalog(t)

	router := NewRouter(RouterConfig{
		Catalog:    store,
		CSRFSecret: []byte("0123456789abcdef0123456789abcdef"),
	})

	// Safe methods pass through untouched
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/books", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// A mutation without a token is rejected and must not reach the store
	payload := `{"title":"Piranesi","author":"Susanna Clarke"}`
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("POST", "/api/books", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Len(t, store.Books(), 8, "rejected request must not create a book")
}
