package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookhaven/bookhaven/internal/entities"
	"github.com/bookhaven/bookhaven/internal/notify"
)

// Controller handles authentication-related HTTP endpoints.
type Controller struct {
	service        *Service
	sessionManager *SessionManager
	notifier       notify.Notifier
}

// NewController creates a new authentication controller.
func NewController(service *Service, sessionManager *SessionManager, notifier notify.Notifier) *Controller {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &Controller{
		service:        service,
		sessionManager: sessionManager,
		notifier:       notifier,
	}
}

// RegisterRoutes registers authentication routes on the router.
func (ac *Controller) RegisterRoutes(router *gin.Engine) {
	router.POST("/api/auth/register", ac.Register)
	router.POST("/api/auth/login", ac.Login)
	router.POST("/api/auth/logout", ac.Logout)
	router.GET("/api/auth/me", ac.Me)
}

type userResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func toUserResponse(user *entities.User) userResponse {
	return userResponse{ID: user.ID, Name: user.Name, Email: user.Email}
}

// Register creates an account and signs the new user in.
// POST /api/auth/register
func (ac *Controller) Register(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, email, and password are required"})
		return
	}

	user, err := ac.service.Register(req.Name, req.Email, req.Password)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, ErrUserExists) {
			status = http.StatusConflict
			ac.notifier.Notify(notify.KindError, "Registration failed", "This email is already registered")
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	if err := ac.sessionManager.CreateSession(c.Request, user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	ac.notifier.Notify(notify.KindInfo, "Registration successful", "Welcome to BookHaven, "+user.Name+"!")
	c.JSON(http.StatusCreated, gin.H{"user": toUserResponse(user)})
}

// Login verifies credentials and starts a session.
// POST /api/auth/login
func (ac *Controller) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	user, err := ac.service.Login(req.Email, req.Password)
	if err != nil {
		ac.notifier.Notify(notify.KindError, "Login failed", "Invalid email or password.")
		c.JSON(http.StatusUnauthorized, gin.H{"error": ErrInvalidCredentials.Error()})
		return
	}

	if err := ac.sessionManager.CreateSession(c.Request, user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	ac.notifier.Notify(notify.KindInfo, "Login successful", "Welcome back, "+user.Name+"!")
	c.JSON(http.StatusOK, gin.H{"user": toUserResponse(user)})
}

// Logout destroys the current session.
// POST /api/auth/logout
func (ac *Controller) Logout(c *gin.Context) {
	if err := ac.sessionManager.DestroySession(c.Request); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to destroy session"})
		return
	}
	ac.notifier.Notify(notify.KindInfo, "Logged out", "You have been successfully logged out")
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Me returns the signed-in user's identity, or 401.
// GET /api/auth/me
func (ac *Controller) Me(c *gin.Context) {
	id, name, ok := ac.sessionManager.SessionUser(c.Request)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not signed in"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": gin.H{"id": id, "name": name}})
}
