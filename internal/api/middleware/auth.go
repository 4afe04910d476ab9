package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"faultmesh/pkg/utils"
)

// AuthMiddleware validates a Bearer access token and stores its claims
// in the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.Error(c, utils.UNAUTHORIZED, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			utils.Error(c, utils.UNAUTHORIZED, "malformed authorization header")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(parts[1])
		if err != nil {
			utils.Error(c, utils.UNAUTHORIZED, "invalid token")
			c.Abort()
			return
		}

		if claims.TokenType != "access" {
			utils.Error(c, utils.UNAUTHORIZED, "wrong token type")
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// AdminMiddleware must run after AuthMiddleware; it rejects non-admins.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			utils.Error(c, utils.UNAUTHORIZED, "not logged in")
			c.Abort()
			return
		}

		if role.(string) != "admin" {
			utils.Error(c, utils.FORBIDDEN, "admin privileges required")
			c.Abort()
			return
		}

		c.Next()
	}
}
