package middleware

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/customer_reviews_app/internal/utils"
	"github.com/gin-gonic/gin"
)

const sessionIDBytes = 24

// SessionMiddleware makes sure every visitor carries a session cookie.
// The session id is what review nonces are bound to.
func SessionMiddleware(cookieName string, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(cookieName)
		if err != nil || len(sessionID) != sessionIDBytes*2 {
			sessionID, err = utils.RandomHex(sessionIDBytes)
			if err != nil {
				GetLoggerFromCtx(c.Request.Context()).Error("Failed to generate session id", slog.String("error", err.Error()))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
				return
			}
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(cookieName, sessionID, 0, "/", "", secure, true)
		}
		c.Set(string(sessionKey), sessionID)
		c.Next()
	}
}
