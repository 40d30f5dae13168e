package middleware

import (
	"strings"

	"courtsync/model"
	"courtsync/usecase"
	"courtsync/utils"

	"github.com/gin-gonic/gin"
)

const sessionKey = "session"

// AuthMiddleware gates every protected route on a resolved admin session.
// Unauthenticated callers get 401 and the SPA redirects them to /signin.
func AuthMiddleware(resolver *usecase.SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.Unauthorized(c, "Missing or invalid token")
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")

		session, err := resolver.Resolve(c.Request.Context(), token)
		if err != nil {
			utils.Unauthorized(c, "Session could not be verified")
			c.Abort()
			return
		}
		if session == nil {
			utils.Unauthorized(c, "Missing or invalid token")
			c.Abort()
			return
		}
		if !session.IsAdmin() {
			utils.Forbidden(c, "Administrator access required")
			c.Abort()
			return
		}

		c.Set(sessionKey, session)
		c.Set("user_id", session.UserID)
		c.Set("access_token", token)

		c.Next()
	}
}

// SessionFromContext returns the resolved session set by AuthMiddleware.
func SessionFromContext(c *gin.Context) *model.AuthSession {
	value, exists := c.Get(sessionKey)
	if !exists {
		return nil
	}
	session, ok := value.(*model.AuthSession)
	if !ok {
		return nil
	}
	return session
}
