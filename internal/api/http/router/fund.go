package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/api/http/handler"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/service/permission"
)

func (r *Router) registerFundRoutes(
	api fiber.Router,
	fundH *handler.FundHandler,
	roleH *handler.RoleHandler,
	authRequired fiber.Handler,
	requirePerm func(permission.Path, permission.PermissionType) fiber.Handler,
) {
	funds := api.Group("/funds", authRequired)

	funds.Get("/", fundH.List)
	funds.Get("/slug/:slug", fundH.GetBySlug)
	funds.Get("/:id", fundH.Get)
	funds.Post("/", fundH.Create)
	funds.Delete("/:id", requirePerm(permission.PathSettings, permission.PermDelete), fundH.Archive)

	// Role management is a settings surface; fund admins reach it through
	// the settings section of the portal.
	funds.Get("/:id/roles", requirePerm(permission.PathSettings, permission.PermView), roleH.List)
	funds.Post("/:id/roles", requirePerm(permission.PathSettings, permission.PermCreate), roleH.CreateCustom)
	funds.Post("/:id/roles/initialize", requirePerm(permission.PathSettings, permission.PermCreate), roleH.Initialize)
}
