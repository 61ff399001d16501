package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/service/permission"
	pasetotoken "github.com/AndrejDratschuk/citadels-investor-portal-sub003/pkg/paseto"
)

// RequirePermission resolves the caller's role against one permission path.
// When the route carries a :did deal parameter, the check is scoped to that
// deal so per-deal overrides apply.
//
// A resolver error is returned as-is, never converted to a deny: a storage
// outage must surface as a 500, not silently lock everyone out as 403s.
func RequirePermission(resolver permission.Resolver, path permission.Path, t permission.PermissionType) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := pasetotoken.ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		var dealID *uuid.UUID
		if raw := c.Params("did"); raw != "" {
			did, err := uuid.Parse(raw)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "invalid deal id")
			}
			dealID = &did
		}

		allowed, err := resolver.HasPermission(c.Context(), claims.RoleID, path, t, dealID)
		if err != nil {
			return err
		}
		if !allowed {
			return fiber.ErrForbidden
		}

		return c.Next()
	}
}
