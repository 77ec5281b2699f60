package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gymdesk/backend/internal/domain/identity"
)

// RequireRole gates a route group behind a role claim. Admins pass
// every gate.
func RequireRole(required identity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := identity.Role(GetJWTRole(c))
		if role == identity.RoleAdmin || role == required {
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "ERR_FORBIDDEN",
				"message": "Insufficient role",
			},
		})
	}
}

// RequireAdmin gates a route group behind the admin role
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(identity.RoleAdmin)
}
