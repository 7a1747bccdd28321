package auth

import (
	"strings"

	"github.com/gin-gonic/gin"

	"codeberg.org/zenfocus/server/internal/errors"
	"codeberg.org/zenfocus/server/internal/logger"
)

const (
	identityKey  = "identity"
	userIDKey    = "user_id"
	userEmailKey = "user_email"
)

// validates the bearer token on protected routes and attaches the
// decoded identity to the request context. Rejection is terminal: the
// downstream handler never runs.
func Middleware(codec *Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			errors.Unauthorized(c, "authorization header required")
			c.Abort()
			return
		}

		// accept both "Bearer <token>" and a bare token value
		token := authHeader
		if strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		}

		if token == "" {
			errors.Unauthorized(c, "no token, authorization denied")
			c.Abort()
			return
		}

		claims, err := codec.Decode(token)
		if err != nil {
			// log the failure kind server-side; the response stays uniform
			logger.Debug("rejected token",
				"reason", err,
				"path", c.Request.URL.Path,
			)
			errors.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(identityKey, claims)
		c.Set(userIDKey, claims.UserID)
		c.Set(userEmailKey, claims.Email)

		c.Next()
	}
}

// returns the authenticated identity attached by Middleware
func Identity(c *gin.Context) (*Claims, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return nil, false
	}

	claims, ok := value.(*Claims)
	return claims, ok
}

// extracts the authenticated user id from the context after Middleware
func UserID(c *gin.Context) (string, bool) {
	claims, ok := Identity(c)
	if !ok {
		return "", false
	}

	return claims.UserID, true
}
