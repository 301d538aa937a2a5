package auth

import (
	"net/http"
	"strings"

	"app-builder-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey = "user_id"
	emailKey  = "email"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	tokens *TokenService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(tokens *TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// RequireAuth validates JWT tokens and sets user context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		claims, err := m.tokens.ValidateJWT(tokenString)
		if err != nil {
			logger.WithContext(c.Request.Context()).WithError(err).Debug("Rejected bearer token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(userIDKey, claims.UserID())
		c.Set(emailKey, claims.Email)
		c.Request = c.Request.WithContext(logger.ContextWithUser(c.Request.Context(), claims.UserID()))

		c.Next()
	}
}

// GetUserID extracts the authenticated user ID from context
func GetUserID(c *gin.Context) (string, bool) {
	id := c.GetString(userIDKey)
	return id, id != ""
}

// GetUserEmail extracts the authenticated user's email from context
func GetUserEmail(c *gin.Context) (string, bool) {
	email := c.GetString(emailKey)
	return email, email != ""
}

// SetUser stores an authenticated user on the context. Intended for tests.
func SetUser(c *gin.Context, userID, email string) {
	c.Set(userIDKey, userID)
	c.Set(emailKey, email)
}
