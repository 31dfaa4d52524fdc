package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CtxSessionID keys the per-visitor session used for pending-review overlays
// and persisted filter state.
const CtxSessionID = "sessionID"

const sessionHeader = "X-Session-Id"

// SessionMiddleware resolves the caller's session identifier from the
// X-Session-Id header, minting a fresh one when absent. The resolved value is
// echoed back so clients can persist it.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(sessionHeader)
		if sessionID == "" {
			sessionID = uuid.NewString()
		}
		c.Set(CtxSessionID, sessionID)
		c.Header(sessionHeader, sessionID)
		c.Next()
	}
}

// SessionID returns the session identifier resolved by SessionMiddleware.
func SessionID(c *gin.Context) string {
	if v, ok := c.Get(CtxSessionID); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
