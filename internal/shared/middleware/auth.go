package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"dacosta-backend/internal/shared/response"
	"dacosta-backend/pkg/jwt"
)

// Context keys set by the auth middlewares.
const (
	ContextKeyUserID = "userID"
	ContextKeyEmail  = "email"
	ContextKeyRole   = "role"
)

// AuthMiddleware validates the Bearer access token and puts the identity
// into the request context. Requests without a valid token are rejected.
func AuthMiddleware(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearer(c, manager)
		if !ok {
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			response.Unauthorized(c, "invalid user id in token")
			c.Abort()
			return
		}

		c.Set(ContextKeyUserID, userID)
		c.Set(ContextKeyEmail, claims.Email)
		c.Set(ContextKeyRole, claims.Role)

		c.Next()
	}
}

// OptionalAuthMiddleware sets the identity when a valid token is present
// but lets anonymous requests through. The shop cart uses it: logged-in
// users and anonymous sessions share the same endpoints.
func OptionalAuthMiddleware(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}

		claims, ok := parseBearer(c, manager)
		if !ok {
			c.Abort()
			return
		}

		if userID, err := uuid.Parse(claims.UserID); err == nil {
			c.Set(ContextKeyUserID, userID)
			c.Set(ContextKeyEmail, claims.Email)
			c.Set(ContextKeyRole, claims.Role)
		}

		c.Next()
	}
}

func parseBearer(c *gin.Context, manager *jwt.Manager) (*jwt.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c, "missing authorization header")
		return nil, false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		response.Unauthorized(c, "invalid authorization header format")
		return nil, false
	}

	claims, err := manager.ValidateAccessToken(parts[1])
	if err != nil {
		response.Unauthorized(c, "invalid token")
		return nil, false
	}

	return claims, true
}

// GetUserID pulls the authenticated user id out of the context.
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ContextKeyUserID)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
