package users_middleware

import (
	"net/http"
	"strings"

	users_models "clientbase-backend/internal/features/users/models"
	users_services "clientbase-backend/internal/features/users/services"

	"github.com/gin-gonic/gin"
)

const userContextKey = "currentUser"

// AuthMiddleware resolves the authenticated caller from the bearer token.
// Failure is fatal for protected routes: the request never reaches handlers.
func AuthMiddleware(userService *users_services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		if token == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header"})
			return
		}

		user, err := userService.GetUserFromToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// OptionalAuthMiddleware tolerates anonymous callers: the marketing surface
// renders for signed-out users, so a missing or bad token is not an error.
func OptionalAuthMiddleware(userService *users_services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		if token == header {
			c.Next()
			return
		}

		if user, err := userService.GetUserFromToken(token); err == nil {
			c.Set(userContextKey, user)
		}

		c.Next()
	}
}

func GetUserFromContext(c *gin.Context) (*users_models.User, bool) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}

	user, ok := value.(*users_models.User)
	return user, ok
}
