package permission

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/pkg/reqctx"
)

// AuditedResolver wraps a Resolver with structured decision logging.
type AuditedResolver struct {
	inner  Resolver
	logger *slog.Logger
}

func NewAuditedResolver(inner Resolver, logger *slog.Logger) Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditedResolver{inner: inner, logger: logger}
}

func (a *AuditedResolver) HasPermission(ctx context.Context, roleID uuid.UUID, path Path, t PermissionType, dealID *uuid.UUID) (bool, error) {
	start := time.Now()
	allowed, err := a.inner.HasPermission(ctx, roleID, path, t, dealID)
	duration := time.Since(start)

	attrs := []any{
		"role_id", roleID.String(),
		"path", string(path),
		"type", string(t),
		"allowed", allowed,
		"duration_ms", duration.Milliseconds(),
	}
	if dealID != nil {
		attrs = append(attrs, "deal_id", dealID.String())
	}
	if rid := reqctx.RequestIDFromContext(ctx); rid != "" {
		attrs = append(attrs, "request_id", rid)
	}

	if err != nil {
		attrs = append(attrs, "error", err.Error())
		a.logger.Error("permission_decision", attrs...)
	} else if allowed {
		a.logger.Info("permission_decision", attrs...)
	} else {
		a.logger.Warn("permission_decision", attrs...)
	}

	return allowed, err
}

func (a *AuditedResolver) EffectivePermissions(ctx context.Context, roleID uuid.UUID) (map[Path]map[PermissionType]bool, error) {
	return a.inner.EffectivePermissions(ctx, roleID)
}
