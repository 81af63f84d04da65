package middleware

import (
	"net/http"
	"strings"

	"finance-api/utils"

	"github.com/gin-gonic/gin"
)

const userIDKey = "user_id"

// AuthMiddleware validates the bearer token and stores the authenticated
// user id in the request context. Failures answer 401 with a Bearer
// challenge header.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, "Authorization header required")
			return
		}

		tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || tokenStr == "" {
			unauthorized(c, "Invalid Authorization header format")
			return
		}

		userID, err := utils.ParseAccessToken(tokenStr)
		if err != nil {
			unauthorized(c, "Invalid or expired token")
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// GetUserID returns the authenticated user id, or "" outside an
// authenticated request.
func GetUserID(c *gin.Context) string {
	id, _ := c.Get(userIDKey)
	userID, _ := id.(string)
	return userID
}

func unauthorized(c *gin.Context, msg string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
}
