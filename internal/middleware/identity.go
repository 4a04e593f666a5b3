package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserIDHeader is the header the deployment's front door sets after
// authenticating the caller. The engine only uses it for audit stamping;
// authentication itself is outside this service.
const UserIDHeader = "X-User-ID"

// IdentityMiddleware copies the caller-supplied user id into the request
// context and rejects requests that carry none, since every mutating
// operation stamps its audit fields with it.
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(UserIDHeader)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "missing " + UserIDHeader + " header"})
			return
		}

		ctx := context.WithValue(c.Request.Context(), userIDKey, userID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// GetUserIDFromContext retrieves the caller's user id from the request
// context. It returns the user id and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}
