package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionCookie carries the browser's opaque session token. The token only
// exists to look up the session's cart ID; there is no account attached.
const SessionCookie = "storefront_session"

// SessionHeader lets non-browser clients pass the token explicitly
const SessionHeader = "X-Session-ID"

const sessionContextKey = "session_id"

const cookieMaxAge = 30 * 24 * 60 * 60

// SessionMiddleware reads the session token from the header or cookie and
// mints a new one when absent
func SessionMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(SessionHeader)
		if sessionID == "" {
			if cookie, err := c.Cookie(SessionCookie); err == nil {
				sessionID = cookie
			}
		}
		if sessionID == "" {
			sessionID = uuid.NewString()
			c.SetCookie(SessionCookie, sessionID, cookieMaxAge, "/", "", false, true)
			logger.Debug("Minted new storefront session", zap.String(sessionContextKey, sessionID))
		}
		c.Set(sessionContextKey, sessionID)
		c.Next()
	}
}

// GetSessionID retrieves the session token from the gin context
func GetSessionID(c *gin.Context) (string, bool) {
	val, exists := c.Get(sessionContextKey)
	if !exists {
		return "", false
	}
	sessionID, ok := val.(string)
	return sessionID, ok && sessionID != ""
}
