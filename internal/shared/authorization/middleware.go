package authorization

import (
	"github.com/gin-gonic/gin"
)

// ContextKeyUserRole is the gin context key under which the auth middleware
// stores the subject's role.
const ContextKeyUserRole = "user_role"

// RequireAdmin gates admin-only surfaces: user management, role assignment,
// dashboard and statistics views.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString(ContextKeyUserRole)
		if userRole != string(RoleAdmin) {
			c.JSON(403, gin.H{
				"error": "admin access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
