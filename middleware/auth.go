package middleware

import (
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware.
const (
	CtxUserID    = "userID"
	CtxUserEmail = "userEmail"
	CtxIsAdmin   = "isAdmin"
)

// FirebaseAuthMiddleware verifies the bearer ID token against Firebase and
// places the caller's identity and isAdmin claim in the context. With
// required=false the request proceeds anonymously when no token is present.
func FirebaseAuthMiddleware(client *auth.Client, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			if required {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
				return
			}
			c.Next()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := client.VerifyIDToken(c.Request.Context(), tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(CtxUserID, token.UID)
		if email, ok := token.Claims["email"].(string); ok {
			c.Set(CtxUserEmail, email)
		}
		if isAdmin, ok := token.Claims["isAdmin"].(bool); ok && isAdmin {
			c.Set(CtxIsAdmin, true)
		}
		c.Next()
	}
}

// ModeratorOnly gates moderation endpoints on the isAdmin custom claim.
func ModeratorOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if isAdmin, ok := c.Get(CtxIsAdmin); !ok || isAdmin != true {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Moderator privileges required"})
			return
		}
		c.Next()
	}
}

// UserEmail returns the authenticated caller's email, if any.
func UserEmail(c *gin.Context) string {
	if email, ok := c.Get(CtxUserEmail); ok {
		if s, ok := email.(string); ok {
			return s
		}
	}
	return ""
}
