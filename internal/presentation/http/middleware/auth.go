package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/zaiqahq/zaiqa-dashboard/internal/domain/entity"
	"github.com/zaiqahq/zaiqa-dashboard/internal/domain/enum"
	"github.com/zaiqahq/zaiqa-dashboard/internal/presentation/http/dto/response"
	"github.com/zaiqahq/zaiqa-dashboard/pkg/utils"
)

// ActorKey is the gin context key holding the authenticated actor.
const ActorKey = "actor"

// AuthMiddleware validates the session token and builds the explicit actor
// passed into the order subsystem. Handlers and services never read ambient
// auth state beyond this one boundary.
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateAccessToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		actor := entity.Actor{
			UserID:   claims.UserID,
			Email:    claims.Email,
			Role:     enum.ParseRole(claims.Role),
			TenantID: claims.TenantID,
		}

		// Tenant-bound roles must carry a tenant; super-admins roam.
		if actor.TenantID == uuid.Nil && !actor.Privileged() {
			response.Forbidden(c, "Token is not bound to a tenant")
			c.Abort()
			return
		}

		c.Set(ActorKey, actor)
		c.Next()
	}
}
