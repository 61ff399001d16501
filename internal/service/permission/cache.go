package permission

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "perm:v1:"

// CachedResolver is a read-through decision cache in front of a Resolver.
// Only boolean decisions are cached; EffectivePermissions always goes to
// the store. Errors from the inner resolver are never cached.
//
// It implements Invalidator so the role service can drop a role's entries
// after any grant or override mutation.
type CachedResolver struct {
	inner Resolver
	rdb   *redis.Client
	ttl   time.Duration
}

func NewCachedResolver(inner Resolver, rdb *redis.Client, ttl time.Duration) *CachedResolver {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &CachedResolver{inner: inner, rdb: rdb, ttl: ttl}
}

func (c *CachedResolver) HasPermission(ctx context.Context, roleID uuid.UUID, path Path, t PermissionType, dealID *uuid.UUID) (bool, error) {
	key := decisionKey(roleID, path, t, dealID)

	if v, err := c.rdb.Get(ctx, key).Result(); err == nil {
		return v == "1", nil
	} else if !errors.Is(err, redis.Nil) {
		// Cache trouble must not flip a decision; fall through to the engine.
		slog.Warn("decision cache read failed", "key", key, "error", err)
	}

	allowed, err := c.inner.HasPermission(ctx, roleID, path, t, dealID)
	if err != nil {
		return false, err
	}

	val := "0"
	if allowed {
		val = "1"
	}
	if err := c.rdb.Set(ctx, key, val, c.ttl).Err(); err != nil {
		slog.Warn("decision cache write failed", "key", key, "error", err)
	}

	return allowed, nil
}

func (c *CachedResolver) EffectivePermissions(ctx context.Context, roleID uuid.UUID) (map[Path]map[PermissionType]bool, error) {
	return c.inner.EffectivePermissions(ctx, roleID)
}

// InvalidateRole removes every cached decision for the role, across all
// deals, paths and types.
func (c *CachedResolver) InvalidateRole(ctx context.Context, roleID uuid.UUID) error {
	pattern := cacheKeyPrefix + roleID.String() + ":*"

	var cursor uint64
	for {
		keys, next, err := c.rdb.Scan(ctx, cursor, pattern, 256).Result()
		if err != nil {
			return fmt.Errorf("scan decision cache: %w", err)
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("drop decision cache entries: %w", err)
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

func decisionKey(roleID uuid.UUID, path Path, t PermissionType, dealID *uuid.UUID) string {
	deal := "-"
	if dealID != nil {
		deal = dealID.String()
	}
	return fmt.Sprintf("%s%s:%s:%s:%s", cacheKeyPrefix, roleID, deal, path, t)
}
