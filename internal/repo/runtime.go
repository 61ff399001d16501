// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/repo/dealpermissionoverride"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/repo/fund"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/repo/permissiongrant"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/repo/stakeholderrole"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/schema"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	dealpermissionoverrideMixin := schema.DealPermissionOverride{}.Mixin()
	dealpermissionoverrideMixinFields0 := dealpermissionoverrideMixin[0].Fields()
	_ = dealpermissionoverrideMixinFields0
	dealpermissionoverrideMixinFields1 := dealpermissionoverrideMixin[1].Fields()
	_ = dealpermissionoverrideMixinFields1
	dealpermissionoverrideFields := schema.DealPermissionOverride{}.Fields()
	_ = dealpermissionoverrideFields
	// dealpermissionoverrideDescCreatedAt is the schema descriptor for created_at field.
	dealpermissionoverrideDescCreatedAt := dealpermissionoverrideMixinFields1[0].Descriptor()
	// dealpermissionoverride.DefaultCreatedAt holds the default value on creation for the created_at field.
	dealpermissionoverride.DefaultCreatedAt = dealpermissionoverrideDescCreatedAt.Default.(func() time.Time)
	// dealpermissionoverrideDescUpdatedAt is the schema descriptor for updated_at field.
	dealpermissionoverrideDescUpdatedAt := dealpermissionoverrideMixinFields1[1].Descriptor()
	// dealpermissionoverride.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	dealpermissionoverride.DefaultUpdatedAt = dealpermissionoverrideDescUpdatedAt.Default.(func() time.Time)
	// dealpermissionoverride.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	dealpermissionoverride.UpdateDefaultUpdatedAt = dealpermissionoverrideDescUpdatedAt.UpdateDefault.(func() time.Time)
	// dealpermissionoverrideDescPath is the schema descriptor for path field.
	dealpermissionoverrideDescPath := dealpermissionoverrideFields[2].Descriptor()
	// dealpermissionoverride.PathValidator is a validator for the "path" field. It is called by the builders before save.
	dealpermissionoverride.PathValidator = func() func(string) error {
		validators := dealpermissionoverrideDescPath.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(_path string) error {
			for _, fn := range fns {
				if err := fn(_path); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// dealpermissionoverrideDescPermissionType is the schema descriptor for permission_type field.
	dealpermissionoverrideDescPermissionType := dealpermissionoverrideFields[3].Descriptor()
	// dealpermissionoverride.PermissionTypeValidator is a validator for the "permission_type" field. It is called by the builders before save.
	dealpermissionoverride.PermissionTypeValidator = func() func(string) error {
		validators := dealpermissionoverrideDescPermissionType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(permission_type string) error {
			for _, fn := range fns {
				if err := fn(permission_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// dealpermissionoverrideDescID is the schema descriptor for id field.
	dealpermissionoverrideDescID := dealpermissionoverrideMixinFields0[0].Descriptor()
	// dealpermissionoverride.DefaultID holds the default value on creation for the id field.
	dealpermissionoverride.DefaultID = dealpermissionoverrideDescID.Default.(func() uuid.UUID)
	fundMixin := schema.Fund{}.Mixin()
	fundMixinFields0 := fundMixin[0].Fields()
	_ = fundMixinFields0
	fundMixinFields1 := fundMixin[1].Fields()
	_ = fundMixinFields1
	fundFields := schema.Fund{}.Fields()
	_ = fundFields
	// fundDescCreatedAt is the schema descriptor for created_at field.
	fundDescCreatedAt := fundMixinFields1[0].Descriptor()
	// fund.DefaultCreatedAt holds the default value on creation for the created_at field.
	fund.DefaultCreatedAt = fundDescCreatedAt.Default.(func() time.Time)
	// fundDescUpdatedAt is the schema descriptor for updated_at field.
	fundDescUpdatedAt := fundMixinFields1[1].Descriptor()
	// fund.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	fund.DefaultUpdatedAt = fundDescUpdatedAt.Default.(func() time.Time)
	// fund.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	fund.UpdateDefaultUpdatedAt = fundDescUpdatedAt.UpdateDefault.(func() time.Time)
	// fundDescName is the schema descriptor for name field.
	fundDescName := fundFields[0].Descriptor()
	// fund.NameValidator is a validator for the "name" field. It is called by the builders before save.
	fund.NameValidator = func() func(string) error {
		validators := fundDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// fundDescSlug is the schema descriptor for slug field.
	fundDescSlug := fundFields[1].Descriptor()
	// fund.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	fund.SlugValidator = func() func(string) error {
		validators := fundDescSlug.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(slug string) error {
			for _, fn := range fns {
				if err := fn(slug); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// fundDescIsActive is the schema descriptor for is_active field.
	fundDescIsActive := fundFields[2].Descriptor()
	// fund.DefaultIsActive holds the default value on creation for the is_active field.
	fund.DefaultIsActive = fundDescIsActive.Default.(bool)
	// fundDescID is the schema descriptor for id field.
	fundDescID := fundMixinFields0[0].Descriptor()
	// fund.DefaultID holds the default value on creation for the id field.
	fund.DefaultID = fundDescID.Default.(func() uuid.UUID)
	permissiongrantMixin := schema.PermissionGrant{}.Mixin()
	permissiongrantMixinFields0 := permissiongrantMixin[0].Fields()
	_ = permissiongrantMixinFields0
	permissiongrantMixinFields1 := permissiongrantMixin[1].Fields()
	_ = permissiongrantMixinFields1
	permissiongrantFields := schema.PermissionGrant{}.Fields()
	_ = permissiongrantFields
	// permissiongrantDescCreatedAt is the schema descriptor for created_at field.
	permissiongrantDescCreatedAt := permissiongrantMixinFields1[0].Descriptor()
	// permissiongrant.DefaultCreatedAt holds the default value on creation for the created_at field.
	permissiongrant.DefaultCreatedAt = permissiongrantDescCreatedAt.Default.(func() time.Time)
	// permissiongrantDescUpdatedAt is the schema descriptor for updated_at field.
	permissiongrantDescUpdatedAt := permissiongrantMixinFields1[1].Descriptor()
	// permissiongrant.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	permissiongrant.DefaultUpdatedAt = permissiongrantDescUpdatedAt.Default.(func() time.Time)
	// permissiongrant.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	permissiongrant.UpdateDefaultUpdatedAt = permissiongrantDescUpdatedAt.UpdateDefault.(func() time.Time)
	// permissiongrantDescPath is the schema descriptor for path field.
	permissiongrantDescPath := permissiongrantFields[1].Descriptor()
	// permissiongrant.PathValidator is a validator for the "path" field. It is called by the builders before save.
	permissiongrant.PathValidator = func() func(string) error {
		validators := permissiongrantDescPath.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(_path string) error {
			for _, fn := range fns {
				if err := fn(_path); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// permissiongrantDescPermissionType is the schema descriptor for permission_type field.
	permissiongrantDescPermissionType := permissiongrantFields[2].Descriptor()
	// permissiongrant.PermissionTypeValidator is a validator for the "permission_type" field. It is called by the builders before save.
	permissiongrant.PermissionTypeValidator = func() func(string) error {
		validators := permissiongrantDescPermissionType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(permission_type string) error {
			for _, fn := range fns {
				if err := fn(permission_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// permissiongrantDescID is the schema descriptor for id field.
	permissiongrantDescID := permissiongrantMixinFields0[0].Descriptor()
	// permissiongrant.DefaultID holds the default value on creation for the id field.
	permissiongrant.DefaultID = permissiongrantDescID.Default.(func() uuid.UUID)
	stakeholderroleMixin := schema.StakeholderRole{}.Mixin()
	stakeholderroleMixinFields0 := stakeholderroleMixin[0].Fields()
	_ = stakeholderroleMixinFields0
	stakeholderroleMixinFields1 := stakeholderroleMixin[1].Fields()
	_ = stakeholderroleMixinFields1
	stakeholderroleFields := schema.StakeholderRole{}.Fields()
	_ = stakeholderroleFields
	// stakeholderroleDescCreatedAt is the schema descriptor for created_at field.
	stakeholderroleDescCreatedAt := stakeholderroleMixinFields1[0].Descriptor()
	// stakeholderrole.DefaultCreatedAt holds the default value on creation for the created_at field.
	stakeholderrole.DefaultCreatedAt = stakeholderroleDescCreatedAt.Default.(func() time.Time)
	// stakeholderroleDescUpdatedAt is the schema descriptor for updated_at field.
	stakeholderroleDescUpdatedAt := stakeholderroleMixinFields1[1].Descriptor()
	// stakeholderrole.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	stakeholderrole.DefaultUpdatedAt = stakeholderroleDescUpdatedAt.Default.(func() time.Time)
	// stakeholderrole.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	stakeholderrole.UpdateDefaultUpdatedAt = stakeholderroleDescUpdatedAt.UpdateDefault.(func() time.Time)
	// stakeholderroleDescRoleName is the schema descriptor for role_name field.
	stakeholderroleDescRoleName := stakeholderroleFields[1].Descriptor()
	// stakeholderrole.RoleNameValidator is a validator for the "role_name" field. It is called by the builders before save.
	stakeholderrole.RoleNameValidator = func() func(string) error {
		validators := stakeholderroleDescRoleName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(role_name string) error {
			for _, fn := range fns {
				if err := fn(role_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// stakeholderroleDescBaseType is the schema descriptor for base_type field.
	stakeholderroleDescBaseType := stakeholderroleFields[3].Descriptor()
	// stakeholderrole.BaseTypeValidator is a validator for the "base_type" field. It is called by the builders before save.
	stakeholderrole.BaseTypeValidator = stakeholderroleDescBaseType.Validators[0].(func(string) error)
	// stakeholderroleDescIsDefault is the schema descriptor for is_default field.
	stakeholderroleDescIsDefault := stakeholderroleFields[4].Descriptor()
	// stakeholderrole.DefaultIsDefault holds the default value on creation for the is_default field.
	stakeholderrole.DefaultIsDefault = stakeholderroleDescIsDefault.Default.(bool)
	// stakeholderroleDescID is the schema descriptor for id field.
	stakeholderroleDescID := stakeholderroleMixinFields0[0].Descriptor()
	// stakeholderrole.DefaultID holds the default value on creation for the id field.
	stakeholderrole.DefaultID = stakeholderroleDescID.Default.(func() uuid.UUID)
}
