package handlers

import (
	"errors"
	"log"
	"net/http"

	"finance-api/middleware"
	"finance-api/models"
	"finance-api/services"
	"finance-api/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	Identity Identity
}

func NewAuthHandler(identity Identity) *AuthHandler {
	return &AuthHandler{Identity: identity}
}

// Register creates a new account. Duplicate emails answer 400 so the
// response body, not the status, is what clients should check.
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := h.Identity.Register(ctx, req.Email, req.Password, req.FullName)
	if errors.Is(err, services.ErrEmailTaken) {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Email already registered"})
		return
	}
	if err != nil {
		log.Printf("Registration failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Registration failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Token exchanges email/password for a bearer token.
func (h *AuthHandler) Token(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := h.Identity.Authenticate(ctx, req.Email, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect email or password"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	accessToken, err := utils.GenerateAccessToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, models.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
	})
}

// Me returns the user behind the bearer token. A token whose subject no
// longer exists is treated as unauthorized, not as a missing resource.
func (h *AuthHandler) Me(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := h.Identity.GetUser(ctx, middleware.GetUserID(c))
	if errors.Is(err, services.ErrNotFound) {
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, user)
}
