package middleware

import (
	"Chronicle/internal/pkg/security"

	"github.com/gin-gonic/gin"
)

// AuthOptionalMiddleware resolves the viewer when a token is present and
// falls back to viewer id 0 for anonymous requests.
func AuthOptionalMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.Set("user_id", uint64(0))
			c.Next()
			return
		}

		claims, err := security.ValidateToken(tokenString)
		if err != nil {
			c.Set("user_id", uint64(0))
		} else {
			setViewer(c, claims)
		}

		c.Next()
	}
}
