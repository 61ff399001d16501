package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/api/http/handler"
)

func (r *Router) registerPermissionRoutes(
	api fiber.Router,
	permH *handler.PermissionHandler,
	authRequired fiber.Handler,
	fundHeader fiber.Handler,
) {
	perms := api.Group("/permissions", authRequired)
	perms.Get("/catalog", permH.Catalog)
	perms.Post("/check", fundHeader, permH.Check)

	me := api.Group("/me", authRequired)
	me.Get("/permissions", fundHeader, permH.MyPermissions)
}
