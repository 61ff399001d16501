package permission_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/service/permission"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/store/memstore"
)

func newCachedResolver(t *testing.T) (*permission.CachedResolver, *memstore.Store, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	st := memstore.New()
	eng := permission.NewEngine(st.Grants(), st.Overrides())
	return permission.NewCachedResolver(eng, rdb, time.Minute), st, mr
}

func TestCachedResolverServesCachedDecision(t *testing.T) {
	cached, st, _ := newCachedResolver(t)
	roleID := uuid.Must(uuid.NewV7())
	ctx := context.Background()

	mustGrant(t, st, roleID,
		permission.GrantSpec{Path: "deals", Type: permission.PermView, Granted: true},
	)

	allowed, err := cached.HasPermission(ctx, roleID, "deals", permission.PermView, nil)
	if err != nil {
		t.Fatalf("HasPermission() error = %v", err)
	}
	if !allowed {
		t.Fatal("first resolution should be allowed")
	}

	// Flip the grant behind the cache's back; without invalidation the old
	// decision keeps being served.
	mustGrant(t, st, roleID,
		permission.GrantSpec{Path: "deals", Type: permission.PermView, Granted: false},
	)

	allowed, err = cached.HasPermission(ctx, roleID, "deals", permission.PermView, nil)
	if err != nil {
		t.Fatalf("HasPermission() error = %v", err)
	}
	if !allowed {
		t.Error("stale decision expected until the role is invalidated")
	}

	if err := cached.InvalidateRole(ctx, roleID); err != nil {
		t.Fatalf("InvalidateRole() error = %v", err)
	}

	allowed, err = cached.HasPermission(ctx, roleID, "deals", permission.PermView, nil)
	if err != nil {
		t.Fatalf("HasPermission() error = %v", err)
	}
	if allowed {
		t.Error("invalidation should expose the revoked grant")
	}
}

func TestCachedResolverCachesDenies(t *testing.T) {
	cached, st, mr := newCachedResolver(t)
	roleID := uuid.Must(uuid.NewV7())
	ctx := context.Background()

	allowed, err := cached.HasPermission(ctx, roleID, "reports", permission.PermView, nil)
	if err != nil {
		t.Fatalf("HasPermission() error = %v", err)
	}
	if allowed {
		t.Fatal("empty role should be denied")
	}
	if got := len(mr.Keys()); got != 1 {
		t.Fatalf("cache holds %d keys after a deny, want 1", got)
	}

	// A grant added later is invisible until the TTL runs out.
	mustGrant(t, st, roleID,
		permission.GrantSpec{Path: "reports", Type: permission.PermView, Granted: true},
	)

	allowed, err = cached.HasPermission(ctx, roleID, "reports", permission.PermView, nil)
	if err != nil {
		t.Fatalf("HasPermission() error = %v", err)
	}
	if allowed {
		t.Error("cached deny should still be served")
	}

	mr.FastForward(2 * time.Minute)

	allowed, err = cached.HasPermission(ctx, roleID, "reports", permission.PermView, nil)
	if err != nil {
		t.Fatalf("HasPermission() error = %v", err)
	}
	if !allowed {
		t.Error("expired entry should be re-resolved against the store")
	}
}

func TestInvalidateRoleIsScoped(t *testing.T) {
	cached, st, mr := newCachedResolver(t)
	roleA := uuid.Must(uuid.NewV7())
	roleB := uuid.Must(uuid.NewV7())
	dealID := uuid.Must(uuid.NewV7())
	ctx := context.Background()

	mustGrant(t, st, roleA, permission.GrantSpec{Path: "deals", Type: permission.PermView, Granted: true})
	mustGrant(t, st, roleB, permission.GrantSpec{Path: "deals", Type: permission.PermView, Granted: true})

	for _, roleID := range []uuid.UUID{roleA, roleB} {
		for _, deal := range []*uuid.UUID{nil, &dealID} {
			if _, err := cached.HasPermission(ctx, roleID, "deals", permission.PermView, deal); err != nil {
				t.Fatalf("HasPermission() error = %v", err)
			}
		}
	}
	if got := len(mr.Keys()); got != 4 {
		t.Fatalf("cache holds %d keys, want 4", got)
	}

	if err := cached.InvalidateRole(ctx, roleA); err != nil {
		t.Fatalf("InvalidateRole() error = %v", err)
	}

	if got := len(mr.Keys()); got != 2 {
		t.Errorf("cache holds %d keys after invalidating one role, want the other role's 2", got)
	}
	for _, key := range mr.Keys() {
		if !mr.Exists(key) {
			continue
		}
		if want := "perm:v1:" + roleB.String(); len(key) < len(want) || key[:len(want)] != want {
			t.Errorf("surviving key %q does not belong to the untouched role", key)
		}
	}
}

func TestCachedResolverSurvivesRedisOutage(t *testing.T) {
	cached, st, mr := newCachedResolver(t)
	roleID := uuid.Must(uuid.NewV7())
	ctx := context.Background()

	mustGrant(t, st, roleID, permission.GrantSpec{Path: "deals", Type: permission.PermView, Granted: true})

	mr.Close()

	// Cache reads and writes fail, the decision still comes from the engine.
	allowed, err := cached.HasPermission(ctx, roleID, "deals", permission.PermView, nil)
	if err != nil {
		t.Fatalf("HasPermission() error = %v", err)
	}
	if !allowed {
		t.Error("engine decision should be served despite the cache outage")
	}
}
