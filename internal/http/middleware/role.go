package middleware

import (
	"github.com/gofiber/fiber/v2"

	"constructdocs/internal/rbac"
)

const (
	// RoleHeader carries the caller's role, set by the authenticating
	// gateway in front of this service.
	RoleHeader = "X-User-Role"
	// RoleLocalKey is the key used to store the normalized role in Fiber's
	// context locals.
	RoleLocalKey = "caller_role"
)

// Role reads the caller's role header once per request, normalizes it, and
// stores it in context locals. Unknown or absent roles normalize to the empty
// role, which holds no capabilities — the policy check downstream fails
// closed rather than this middleware rejecting the request, so read-only
// endpoints and health checks stay reachable.
func Role() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(RoleLocalKey, rbac.Normalize(c.Get(RoleHeader)))
		return c.Next()
	}
}

// RoleFromCtx extracts the role stored by Role. Missing middleware yields the
// empty role.
func RoleFromCtx(c *fiber.Ctx) rbac.Role {
	if v := c.Locals(RoleLocalKey); v != nil {
		if r, ok := v.(rbac.Role); ok {
			return r
		}
	}
	return rbac.Role("")
}
