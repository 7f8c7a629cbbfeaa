package middleware

import (
	"strings"

	"naac_backend/internal/config"
	"naac_backend/internal/model"
	"naac_backend/internal/service"
	"naac_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token, rejects denylisted tokens and
// stores the claims on the request context.
func AuthMiddleware(cfg *config.Config, auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}
		if tokenString == "" {
			tokenString = c.Query("token")
		}
		if tokenString == "" {
			util.Unauthorized(c, "missing authentication token")
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(cfg, tokenString)
		if err != nil {
			util.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		if auth.IsRevoked(c.Request.Context(), tokenString) {
			util.Unauthorized(c, "token has been revoked")
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Set("token", tokenString)
		c.Next()
	}
}

// RoleMiddleware allows only the listed roles. Admins pass everywhere.
func RoleMiddleware(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := util.GetUserFromContext(c)
		if !ok {
			util.Unauthorized(c, "authentication required")
			c.Abort()
			return
		}

		allowed := claims.Role == model.RoleAdmin
		for _, role := range roles {
			if claims.Role == role {
				allowed = true
				break
			}
		}
		if !allowed {
			util.Forbidden(c, "insufficient role for this operation")
			c.Abort()
			return
		}
		c.Next()
	}
}
