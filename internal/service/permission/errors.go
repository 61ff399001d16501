package permission

import "errors"

var (
	ErrRoleNotFound      = errors.New("stakeholder role not found")
	ErrGrantNotFound     = errors.New("permission grant not found")
	ErrOverrideNotFound  = errors.New("deal permission override not found")
	ErrImmutableRole     = errors.New("system roles cannot be renamed or deleted")
	ErrUnknownType       = errors.New("unknown stakeholder type")
	ErrDuplicateRole     = errors.New("a role with this name already exists in the fund")
	ErrInvalidPath       = errors.New("invalid permission path")
	ErrInvalidPermType   = errors.New("unknown permission type")
	ErrInvalidRoleName   = errors.New("role name must not be empty")
	ErrInvalidRoleSource = errors.New("custom role needs exactly one of copy-from-role or base type")
)
