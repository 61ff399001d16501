package permission

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Resolver answers permission questions for a role. Implementations must
// be safe for concurrent use; resolution performs reads only.
type Resolver interface {
	// HasPermission decides whether roleID may perform t at path, optionally
	// within dealID. A role that does not exist resolves to false with a nil
	// error: absence of a role is equivalent to absence of any grant.
	HasPermission(ctx context.Context, roleID uuid.UUID, path Path, t PermissionType, dealID *uuid.UUID) (bool, error)

	// EffectivePermissions materializes every explicit grant for a role,
	// keyed path -> type -> granted. No inheritance is applied; this is a
	// snapshot for presentation and export, not a resolved tree.
	EffectivePermissions(ctx context.Context, roleID uuid.UUID) (map[Path]map[PermissionType]bool, error)
}

// Engine is the stateless resolution core. It holds no mutable state of
// its own; every call is a small number of store reads.
type Engine struct {
	grants    GrantStore
	overrides OverrideStore
}

func NewEngine(grants GrantStore, overrides OverrideStore) *Engine {
	return &Engine{grants: grants, overrides: overrides}
}

// HasPermission resolves in strict precedence order:
//
//  1. exact deal override (roleID, dealID, path, t) — always wins, never
//     subject to inheritance or further fallback
//  2. exact role-level grant (roleID, path, t)
//  3. ancestor walk toward the root; the first ancestor with an explicit
//     entry wins and its value is returned verbatim
//  4. deny
//
// Any string is a valid node: syntactically odd paths and unknown types
// simply never match an explicit entry and fall through to deny. Shape
// validation happens at the write boundary (validateSpecs), not here.
func (e *Engine) HasPermission(ctx context.Context, roleID uuid.UUID, path Path, t PermissionType, dealID *uuid.UUID) (bool, error) {
	if dealID != nil {
		ov, err := e.overrides.Get(ctx, roleID, *dealID, path, t)
		switch {
		case err == nil:
			return ov.Granted, nil
		case !errors.Is(err, ErrOverrideNotFound):
			return false, fmt.Errorf("lookup deal override: %w", err)
		}
	}

	g, err := e.grants.Get(ctx, roleID, path, t)
	switch {
	case err == nil:
		return g.Granted, nil
	case !errors.Is(err, ErrGrantNotFound):
		return false, fmt.Errorf("lookup grant: %w", err)
	}

	for _, ancestor := range path.Ancestors() {
		g, err := e.grants.Get(ctx, roleID, ancestor, t)
		switch {
		case err == nil:
			return g.Granted, nil
		case !errors.Is(err, ErrGrantNotFound):
			return false, fmt.Errorf("lookup grant at %q: %w", ancestor, err)
		}
	}

	// No explicit entry anywhere on the chain.
	return false, nil
}

func (e *Engine) EffectivePermissions(ctx context.Context, roleID uuid.UUID) (map[Path]map[PermissionType]bool, error) {
	grants, err := e.grants.ListByRole(ctx, roleID)
	if err != nil {
		return nil, fmt.Errorf("list grants: %w", err)
	}

	out := make(map[Path]map[PermissionType]bool, len(grants))
	for _, g := range grants {
		m, ok := out[g.Path]
		if !ok {
			m = make(map[PermissionType]bool, len(AllPermissionTypes))
			out[g.Path] = m
		}
		m[g.Type] = g.Granted
	}
	return out, nil
}
