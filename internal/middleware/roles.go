package middleware

import (
	"ultihub/internal/authz"
	"ultihub/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequirePermission returns a middleware that denies callers whose role does
// not hold the permission token. Runs after Auth; a missing role denies.
func RequirePermission(engine *authz.Engine, permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !engine.HasPermission(GetRole(c), permission) {
			response.Forbidden(c, "insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAccessLevel returns a middleware that denies callers whose role ranks
// below the required access level. Admin permission does not bypass this gate.
func RequireAccessLevel(engine *authz.Engine, level authz.AccessLevel) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !engine.HasAccessLevel(GetRole(c), level) {
			response.Forbidden(c, "insufficient access level")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRoles returns a middleware that restricts an operation to an exact
// set of roles. There is no admin fallback.
func RequireRoles(engine *authz.Engine, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !engine.IsRoleAllowed(GetRole(c), roles...) {
			response.Forbidden(c, "operation restricted to specific roles")
			c.Abort()
			return
		}
		c.Next()
	}
}

// PublicRead returns a middleware guarding public-facing content. Anonymous
// visitors pass; authenticated callers need a public-facing role or the admin
// permission. Runs after OptionalAuth.
func PublicRead(engine *authz.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !engine.PublicReadAllowed(GetRole(c)) {
			response.Forbidden(c, "content not available to this role")
			c.Abort()
			return
		}
		c.Next()
	}
}
