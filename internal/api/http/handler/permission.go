package handler

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/service/permission"
	pasetotoken "github.com/AndrejDratschuk/citadels-investor-portal-sub003/pkg/paseto"
)

type PermissionHandler struct {
	resolver permission.Resolver
}

func NewPermissionHandler(resolver permission.Resolver) *PermissionHandler {
	return &PermissionHandler{resolver: resolver}
}

// POST /api/v1/permissions/check
//
// Answers for the caller's own role, taken from the access token.
func (h *PermissionHandler) Check(c fiber.Ctx) error {
	claims, okc := pasetotoken.ClaimsFromFiber(c)
	if !okc {
		return unauthorized(c)
	}

	var body struct {
		Path   string  `json:"path"`
		Type   string  `json:"type"`
		DealID *string `json:"deal_id"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	dealID, err := parseOptionalDealID(body.DealID)
	if err != nil {
		return badRequest(c, "invalid deal_id")
	}

	allowed, err := h.resolver.HasPermission(
		c.Context(),
		claims.RoleID,
		permission.Path(body.Path),
		permission.PermissionType(body.Type),
		dealID,
	)
	if err != nil {
		return mapRoleError(c, err)
	}

	return ok(c, fiber.Map{"allowed": allowed})
}

// GET /api/v1/roles/:id/check?path=...&type=...&deal_id=...
//
// Admin variant: answers for an arbitrary role.
func (h *PermissionHandler) CheckRole(c fiber.Ctx) error {
	roleID, err := parseRoleID(c)
	if err != nil {
		return badRequest(c, "invalid role id")
	}

	var dealID *uuid.UUID
	if q := c.Query("deal_id"); q != "" {
		did, err := uuid.Parse(q)
		if err != nil {
			return badRequest(c, "invalid deal_id")
		}
		dealID = &did
	}

	allowed, err := h.resolver.HasPermission(
		c.Context(),
		roleID,
		permission.Path(c.Query("path")),
		permission.PermissionType(c.Query("type")),
		dealID,
	)
	if err != nil {
		return mapRoleError(c, err)
	}

	return ok(c, fiber.Map{"allowed": allowed})
}

// GET /api/v1/roles/:id/permissions
func (h *PermissionHandler) Effective(c fiber.Ctx) error {
	roleID, err := parseRoleID(c)
	if err != nil {
		return badRequest(c, "invalid role id")
	}

	perms, err := h.resolver.EffectivePermissions(c.Context(), roleID)
	if err != nil {
		return mapRoleError(c, err)
	}
	return ok(c, perms)
}

// GET /api/v1/me/permissions
func (h *PermissionHandler) MyPermissions(c fiber.Ctx) error {
	claims, okc := pasetotoken.ClaimsFromFiber(c)
	if !okc {
		return unauthorized(c)
	}

	perms, err := h.resolver.EffectivePermissions(c.Context(), claims.RoleID)
	if err != nil {
		return mapRoleError(c, err)
	}
	return ok(c, perms)
}

func parseOptionalDealID(s *string) (*uuid.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// Catalog lists every known permission path with the resolvable types,
// for building permission matrices in the portal UI.
//
// GET /api/v1/permissions/catalog
func (h *PermissionHandler) Catalog(c fiber.Ctx) error {
	type entry struct {
		Path  string   `json:"path"`
		Types []string `json:"types"`
	}

	types := make([]string, 0, len(permission.AllPermissionTypes))
	for _, t := range permission.AllPermissionTypes {
		types = append(types, string(t))
	}

	out := make([]entry, 0, len(permission.CatalogPaths))
	for _, p := range permission.CatalogPaths {
		out = append(out, entry{Path: string(p), Types: types})
	}
	return ok(c, out)
}
