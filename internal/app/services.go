package app

import (
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/config"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/repo"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/service/fund"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/service/permission"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/store/entstore"
	pasetotoken "github.com/AndrejDratschuk/citadels-investor-portal-sub003/pkg/paseto"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideStores,
		ProvideResolver,
		ProvidePermissionService,
		ProvideFundService,
		ProvidePasetoManager,
	),
)

func ProvideStores(db *repo.Client) (permission.RoleStore, permission.GrantStore, permission.OverrideStore, fund.Store) {
	return entstore.NewRoleStore(db),
		entstore.NewGrantStore(db),
		entstore.NewOverrideStore(db),
		entstore.NewFundStore(db)
}

// ProvideResolver builds the resolution chain: the engine at the core,
// decision audit logging around it, and optionally the Redis decision
// cache outermost so audited entries reflect real resolutions, not cache
// hits. The returned Invalidator is the cache when enabled, otherwise a
// no-op.
func ProvideResolver(
	cfg *config.Config,
	grants permission.GrantStore,
	overrides permission.OverrideStore,
	rdb *redis.Client,
) (permission.Resolver, permission.Invalidator) {
	var resolver permission.Resolver = permission.NewEngine(grants, overrides)

	if cfg.Authorization.EnableAudit {
		resolver = permission.NewAuditedResolver(resolver, slog.Default())
	}

	if cfg.Authorization.CacheEnabled {
		cached := permission.NewCachedResolver(
			resolver,
			rdb,
			time.Duration(cfg.Authorization.CacheTTLSeconds)*time.Second,
		)
		return cached, cached
	}

	return resolver, permission.NopInvalidator{}
}

func ProvidePermissionService(
	roles permission.RoleStore,
	grants permission.GrantStore,
	overrides permission.OverrideStore,
	inval permission.Invalidator,
) permission.Service {
	return permission.NewService(roles, grants, overrides, inval)
}

func ProvideFundService(store fund.Store, perms permission.Service) fund.Service {
	return fund.NewService(store, perms)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
