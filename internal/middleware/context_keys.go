package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// userIDKey is the key used to store the caller's user ID in the context.
const userIDKey = contextKey("userID")

// CallerIDHeader is set by the external auth layer in front of this service.
const CallerIDHeader = "X-User-ID"

// systemUserID attributes mutations when no caller header is present.
const systemUserID = "system"

// CallerIDMiddleware extracts the caller's user ID from the request header
// and stores it in both contexts for audit attribution.
func CallerIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(CallerIDHeader)
		if userID == "" {
			userID = systemUserID
		}
		c.Set(string(userIDKey), userID)
		ctx := context.WithValue(c.Request.Context(), userIDKey, userID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// GetUserIDFromContext retrieves the caller's user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get(string(userIDKey))
	if !exists {
		// check in the request context as well
		userIDVal := c.Request.Context().Value(userIDKey)
		if userIDVal != nil {
			return userIDVal.(string), true
		}
		return "", false
	}

	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}

	return userID, true
}
