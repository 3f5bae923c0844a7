package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

const (
	// moderatorKey holds the authenticated moderator name.
	moderatorKey = contextKey("moderator")
	// sessionKey holds the visitor session id issued by SessionMiddleware.
	sessionKey = contextKey("sessionID")
)

// GetModeratorFromContext retrieves the authenticated moderator from the Gin context.
// It returns the name and a boolean indicating if it was found.
func GetModeratorFromContext(c *gin.Context) (string, bool) {
	if val, exists := c.Get(string(moderatorKey)); exists {
		moderator, ok := val.(string)
		return moderator, ok
	}
	return GetModeratorFromCtx(c.Request.Context())
}

// GetModeratorFromCtx retrieves the authenticated moderator from a standard context.
func GetModeratorFromCtx(ctx context.Context) (string, bool) {
	moderator, ok := ctx.Value(moderatorKey).(string)
	return moderator, ok && moderator != ""
}

// GetSessionIDFromContext retrieves the visitor session id set by SessionMiddleware.
func GetSessionIDFromContext(c *gin.Context) string {
	if val, exists := c.Get(string(sessionKey)); exists {
		if sessionID, ok := val.(string); ok {
			return sessionID
		}
	}
	return ""
}
