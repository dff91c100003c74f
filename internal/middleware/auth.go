// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"strings"

	"ultihub/pkg/auth"
	"ultihub/pkg/response"

	"github.com/gin-gonic/gin"
)

// Context keys for storing user data
const (
	UserIDKey = "userID"
	RoleKey   = "role"
)

// Auth returns a middleware that validates JWT tokens and stores the caller's
// identity and role in the request context.
func Auth(jwtManager auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFromHeader(c, jwtManager)
		if !ok {
			c.Abort()
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(RoleKey, claims.Role)

		c.Next()
	}
}

// OptionalAuth parses a bearer token when one is present but lets
// unauthenticated requests through with no identity set. Endpoints behind the
// public-read gate use this: an anonymous visitor is a valid caller there.
func OptionalAuth(jwtManager auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}

		claims, ok := claimsFromHeader(c, jwtManager)
		if !ok {
			c.Abort()
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(RoleKey, claims.Role)

		c.Next()
	}
}

// claimsFromHeader validates the Authorization header and writes the error
// response on failure.
func claimsFromHeader(c *gin.Context, jwtManager auth.TokenManager) (*auth.Claims, bool) {
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

	claims, err := jwtManager.ValidateToken(parts[1])
	if err != nil {
		response.Unauthorized(c, "invalid or expired token")
		return nil, false
	}
	return claims, true
}

// GetUserID retrieves the user ID from the context.
// Returns empty string if not found.
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return ""
	}
	return userID.(string)
}

// GetRole retrieves the caller's role from the context. Returns empty string
// for unauthenticated requests.
func GetRole(c *gin.Context) string {
	role, exists := c.Get(RoleKey)
	if !exists {
		return ""
	}
	return role.(string)
}
