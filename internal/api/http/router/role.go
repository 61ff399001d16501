package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/api/http/handler"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/service/permission"
)

func (r *Router) registerRoleRoutes(
	api fiber.Router,
	roleH *handler.RoleHandler,
	permH *handler.PermissionHandler,
	authRequired fiber.Handler,
	requirePerm func(permission.Path, permission.PermissionType) fiber.Handler,
) {
	roles := api.Group("/roles/:id", authRequired)

	roles.Get("/", requirePerm(permission.PathSettings, permission.PermView), roleH.Get)
	roles.Patch("/", requirePerm(permission.PathSettings, permission.PermEdit), roleH.Rename)
	roles.Delete("/", requirePerm(permission.PathSettings, permission.PermDelete), roleH.Delete)
	roles.Post("/reset", requirePerm(permission.PathSettings, permission.PermEdit), roleH.Reset)

	roles.Get("/permissions", requirePerm(permission.PathSettings, permission.PermView), permH.Effective)
	roles.Put("/permissions", requirePerm(permission.PathSettings, permission.PermEdit), roleH.UpdatePermissions)
	roles.Post("/permissions/copy", requirePerm(permission.PathSettings, permission.PermEdit), roleH.CopyPermissions)
	roles.Get("/check", requirePerm(permission.PathSettings, permission.PermView), permH.CheckRole)

	deals := roles.Group("/deals/:did")
	deals.Get("/overrides", requirePerm(permission.PathSettings, permission.PermView), roleH.ListOverrides)
	deals.Put("/overrides", requirePerm(permission.PathSettings, permission.PermEdit), roleH.UpdateOverrides)
	deals.Delete("/overrides", requirePerm(permission.PathSettings, permission.PermEdit), roleH.ClearOverrides)
}
