package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/service/permission"
)

type RoleHandler struct {
	svc permission.Service
}

func NewRoleHandler(svc permission.Service) *RoleHandler {
	return &RoleHandler{svc: svc}
}

// grantSpecBody is the wire shape of a single permission decision.
type grantSpecBody struct {
	Path    string `json:"path"`
	Type    string `json:"type"`
	Granted bool   `json:"granted"`
}

func toGrantSpecs(in []grantSpecBody) []permission.GrantSpec {
	out := make([]permission.GrantSpec, 0, len(in))
	for _, b := range in {
		out = append(out, permission.GrantSpec{
			Path:    permission.Path(b.Path),
			Type:    permission.PermissionType(b.Type),
			Granted: b.Granted,
		})
	}
	return out
}

// GET /api/v1/funds/:id/roles
func (h *RoleHandler) List(c fiber.Ctx) error {
	fundID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid fund id")
	}

	roles, err := h.svc.ListRoles(c.Context(), fundID)
	if err != nil {
		return internalError(c)
	}
	return ok(c, roles)
}

// POST /api/v1/funds/:id/roles/initialize
//
// Idempotent: roles that already exist are returned untouched.
func (h *RoleHandler) Initialize(c fiber.Ctx) error {
	fundID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid fund id")
	}

	roles, err := h.svc.InitializeRolesForFund(c.Context(), fundID)
	if err != nil {
		return mapRoleError(c, err)
	}
	return ok(c, roles)
}

// POST /api/v1/funds/:id/roles
func (h *RoleHandler) CreateCustom(c fiber.Ctx) error {
	fundID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid fund id")
	}

	var body struct {
		Name           string  `json:"name"`
		CopyFromRoleID *string `json:"copy_from_role_id"`
		BaseType       *string `json:"base_type"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	var src permission.CustomRoleSource
	if body.CopyFromRoleID != nil {
		srcID, err := uuid.Parse(*body.CopyFromRoleID)
		if err != nil {
			return badRequest(c, "invalid copy_from_role_id")
		}
		src.CopyFromRoleID = &srcID
	}
	if body.BaseType != nil {
		t := permission.StakeholderType(*body.BaseType)
		src.BaseType = &t
	}

	role, err := h.svc.CreateCustomRole(c.Context(), fundID, body.Name, src)
	if err != nil {
		return mapRoleError(c, err)
	}
	return created(c, role)
}

// GET /api/v1/roles/:id
func (h *RoleHandler) Get(c fiber.Ctx) error {
	roleID, err := parseRoleID(c)
	if err != nil {
		return badRequest(c, "invalid role id")
	}

	role, err := h.svc.GetRole(c.Context(), roleID)
	if err != nil {
		return mapRoleError(c, err)
	}
	return ok(c, role)
}

// PATCH /api/v1/roles/:id
func (h *RoleHandler) Rename(c fiber.Ctx) error {
	roleID, err := parseRoleID(c)
	if err != nil {
		return badRequest(c, "invalid role id")
	}

	var body struct {
		Name string `json:"name"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	role, err := h.svc.RenameRole(c.Context(), roleID, body.Name)
	if err != nil {
		return mapRoleError(c, err)
	}
	return ok(c, role)
}

// DELETE /api/v1/roles/:id
func (h *RoleHandler) Delete(c fiber.Ctx) error {
	roleID, err := parseRoleID(c)
	if err != nil {
		return badRequest(c, "invalid role id")
	}

	if err := h.svc.DeleteRole(c.Context(), roleID); err != nil {
		return mapRoleError(c, err)
	}
	return noContent(c)
}

// POST /api/v1/roles/:id/reset
func (h *RoleHandler) Reset(c fiber.Ctx) error {
	roleID, err := parseRoleID(c)
	if err != nil {
		return badRequest(c, "invalid role id")
	}

	if err := h.svc.ResetRoleToDefaults(c.Context(), roleID); err != nil {
		return mapRoleError(c, err)
	}
	return noContent(c)
}

// PUT /api/v1/roles/:id/permissions
func (h *RoleHandler) UpdatePermissions(c fiber.Ctx) error {
	roleID, err := parseRoleID(c)
	if err != nil {
		return badRequest(c, "invalid role id")
	}

	var body struct {
		Grants []grantSpecBody `json:"grants"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.svc.UpdateRolePermissions(c.Context(), roleID, toGrantSpecs(body.Grants)); err != nil {
		return mapRoleError(c, err)
	}
	return noContent(c)
}

// POST /api/v1/roles/:id/permissions/copy
func (h *RoleHandler) CopyPermissions(c fiber.Ctx) error {
	roleID, err := parseRoleID(c)
	if err != nil {
		return badRequest(c, "invalid role id")
	}

	var body struct {
		SourceRoleID string `json:"source_role_id"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	srcID, err := uuid.Parse(body.SourceRoleID)
	if err != nil {
		return badRequest(c, "invalid source_role_id")
	}

	if err := h.svc.CopyPermissions(c.Context(), srcID, roleID); err != nil {
		return mapRoleError(c, err)
	}
	return noContent(c)
}

// GET /api/v1/roles/:id/deals/:did/overrides
func (h *RoleHandler) ListOverrides(c fiber.Ctx) error {
	roleID, dealID, err := parseRoleAndDealID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	overrides, err := h.svc.ListDealOverrides(c.Context(), roleID, dealID)
	if err != nil {
		return mapRoleError(c, err)
	}
	return ok(c, overrides)
}

// PUT /api/v1/roles/:id/deals/:did/overrides
func (h *RoleHandler) UpdateOverrides(c fiber.Ctx) error {
	roleID, dealID, err := parseRoleAndDealID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	var body struct {
		Overrides []grantSpecBody `json:"overrides"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.svc.UpdateDealOverrides(c.Context(), roleID, dealID, toGrantSpecs(body.Overrides)); err != nil {
		return mapRoleError(c, err)
	}
	return noContent(c)
}

// DELETE /api/v1/roles/:id/deals/:did/overrides
func (h *RoleHandler) ClearOverrides(c fiber.Ctx) error {
	roleID, dealID, err := parseRoleAndDealID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.svc.ClearDealOverrides(c.Context(), roleID, dealID); err != nil {
		return mapRoleError(c, err)
	}
	return noContent(c)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func parseRoleID(c fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("id"))
}

func parseRoleAndDealID(c fiber.Ctx) (uuid.UUID, uuid.UUID, error) {
	roleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, errors.New("invalid role id")
	}
	dealID, err := uuid.Parse(c.Params("did"))
	if err != nil {
		return uuid.Nil, uuid.Nil, errors.New("invalid deal id")
	}
	return roleID, dealID, nil
}

func mapRoleError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, permission.ErrRoleNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, permission.ErrDuplicateRole):
		return conflict(c, err.Error())
	case errors.Is(err, permission.ErrImmutableRole):
		return forbidden(c)
	case errors.Is(err, permission.ErrInvalidRoleName),
		errors.Is(err, permission.ErrInvalidRoleSource),
		errors.Is(err, permission.ErrUnknownType),
		errors.Is(err, permission.ErrInvalidPath),
		errors.Is(err, permission.ErrInvalidPermType):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}
