package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/splitwing/splitwing/api"
	"github.com/splitwing/splitwing/core"
	"github.com/splitwing/splitwing/service"
)

// SessionHandlers contains HTTP handlers for the session facade
type SessionHandlers struct {
	sessions  *service.SessionService
	resources *api.Client
}

// NewSessionHandlers creates new session handlers
func NewSessionHandlers(sessions *service.SessionService, resources *api.Client) *SessionHandlers {
	return &SessionHandlers{
		sessions:  sessions,
		resources: resources,
	}
}

// Login handles the login request. Failures answer with one generic
// message: the response never says which of username or password was wrong.
func (h *SessionHandlers) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	if username == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if err := h.sessions.Login(c.Request.Context(), username, password); err != nil {
		statusCode := http.StatusBadGateway
		if errors.Is(err, core.ErrInvalidCredentials) {
			statusCode = http.StatusUnauthorized
		}

		c.JSON(statusCode, gin.H{"error": "Authentication failed"})
		return
	}

	session := h.sessions.Current()
	c.JSON(http.StatusOK, gin.H{
		"message":  "Logged in",
		"username": session.Identity.Subject(),
	})
}

// Register handles the registration request. Registration never logs the
// account in; the caller has to log in explicitly afterwards.
func (h *SessionHandlers) Register(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if err := h.sessions.Register(c.Request.Context(), req.Username, req.Password); err != nil {
		statusCode := http.StatusBadGateway
		if errors.Is(err, core.ErrUsernameTaken) {
			statusCode = http.StatusConflict
		}

		c.JSON(statusCode, gin.H{"error": "Registration failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Registered"})
}

// Logout handles session logout
func (h *SessionHandlers) Logout(c *gin.Context) {
	if err := h.sessions.Logout(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to logout"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Me returns the identity of the current session
func (h *SessionHandlers) Me(c *gin.Context) {
	session := h.sessions.Current()
	if session.Identity == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"username": session.Identity.Subject(),
		"claims":   session.Identity,
	})
}

// Products lists the products visible to the current session
func (h *SessionHandlers) Products(c *gin.Context) {
	products, err := h.resources.ListProducts(c.Request.Context())
	if err != nil {
		h.resourceError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// Creatives lists the ad variants visible to the current session
func (h *SessionHandlers) Creatives(c *gin.Context) {
	creatives, err := h.resources.ListCreatives(c.Request.Context())
	if err != nil {
		h.resourceError(c, err)
		return
	}
	c.JSON(http.StatusOK, creatives)
}

// ABTests lists the A/B tests visible to the current session
func (h *SessionHandlers) ABTests(c *gin.Context) {
	tests, err := h.resources.ListABTests(c.Request.Context())
	if err != nil {
		h.resourceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tests)
}

// Performance lists the performance records of one A/B test
func (h *SessionHandlers) Performance(c *gin.Context) {
	testID, err := strconv.Atoi(c.Param("testID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid test id"})
		return
	}

	records, err := h.resources.PerformanceByTest(c.Request.Context(), testID)
	if err != nil {
		h.resourceError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *SessionHandlers) resourceError(c *gin.Context, err error) {
	if errors.Is(err, core.ErrUnauthorized) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired"})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"error": "Upstream request failed"})
}
