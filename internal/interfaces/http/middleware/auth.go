package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/supportsync-io/supportsync/internal/domain/user"
	"github.com/supportsync-io/supportsync/internal/infrastructure/auth"
	"github.com/supportsync-io/supportsync/internal/shared/authorization"
	"github.com/supportsync-io/supportsync/internal/shared/logger"
	"github.com/supportsync-io/supportsync/internal/shared/utils"
)

// Gin context keys populated by RequireAuth.
const (
	ContextKeyUserID    = "user_id"
	ContextKeyUserEmail = "user_email"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	userRepo   user.Repository
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, userRepo user.Repository, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// RequireAuth verifies the bearer token and re-resolves the subject against
// the user store on every request. A token whose account has been deactivated
// or removed since issuance is rejected; the middleware fails closed.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		u, err := m.userRepo.GetByEmail(c.Request.Context(), claims.Subject)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "account no longer exists")
			c.Abort()
			return
		}

		if !u.IsActive() {
			utils.ErrorResponse(c, http.StatusUnauthorized, "account is deactivated")
			c.Abort()
			return
		}

		// role comes from the store, not the token, so a role change takes
		// effect without waiting for token expiry
		c.Set(ContextKeyUserID, u.ID())
		c.Set(ContextKeyUserEmail, u.Email().String())
		c.Set(authorization.ContextKeyUserRole, u.Role().String())

		c.Next()
	}
}

// SubjectFromContext reads the identity placed by RequireAuth.
func SubjectFromContext(c *gin.Context) (uint, authorization.UserRole) {
	id, _ := c.Get(ContextKeyUserID)
	userID, _ := id.(uint)
	role := authorization.UserRole(c.GetString(authorization.ContextKeyUserRole))
	return userID, role
}
