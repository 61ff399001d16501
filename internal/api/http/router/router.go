package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/config"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/api/http/handler"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/api/http/middleware"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/repo"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/service/fund"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/service/permission"
	pasetotoken "github.com/AndrejDratschuk/citadels-investor-portal-sub003/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg       *config.Config
	Redis     *redis.Client
	DB        *repo.Client
	FundSvc   fund.Service
	RoleSvc   permission.Service
	Resolver  permission.Resolver
	PasetoMgr *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Middlewares
	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)
	fundHeader := middleware.FundHeader(r.p.DB)

	// Permission helper
	requirePerm := func(path permission.Path, t permission.PermissionType) fiber.Handler {
		return middleware.RequirePermission(r.p.Resolver, path, t)
	}

	// 3. Initialize Handlers
	fundH := handler.NewFundHandler(r.p.FundSvc)
	roleH := handler.NewRoleHandler(r.p.RoleSvc)
	permH := handler.NewPermissionHandler(r.p.Resolver)

	api := app.Group("/api/v1")

	// 4. Delegate to sub-files
	r.registerFundRoutes(api, fundH, roleH, authRequired, requirePerm)
	r.registerRoleRoutes(api, roleH, permH, authRequired, requirePerm)
	r.registerPermissionRoutes(api, permH, authRequired, fundHeader)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New())
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
