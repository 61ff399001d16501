// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DealPermissionOverridesColumns holds the columns for the "deal_permission_overrides" table.
	DealPermissionOverridesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deal_id", Type: field.TypeUUID},
		{Name: "path", Type: field.TypeString, Size: 255},
		{Name: "permission_type", Type: field.TypeString, Size: 20},
		{Name: "granted", Type: field.TypeBool},
		{Name: "role_id", Type: field.TypeUUID},
	}
	// DealPermissionOverridesTable holds the schema information for the "deal_permission_overrides" table.
	DealPermissionOverridesTable = &schema.Table{
		Name:       "deal_permission_overrides",
		Columns:    DealPermissionOverridesColumns,
		PrimaryKey: []*schema.Column{DealPermissionOverridesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "deal_permission_overrides_stakeholder_roles_overrides",
				Columns:    []*schema.Column{DealPermissionOverridesColumns[7]},
				RefColumns: []*schema.Column{StakeholderRolesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "dealpermissionoverride_role_id_deal_id_path_permission_type",
				Unique:  true,
				Columns: []*schema.Column{DealPermissionOverridesColumns[7], DealPermissionOverridesColumns[3], DealPermissionOverridesColumns[4], DealPermissionOverridesColumns[5]},
			},
			{
				Name:    "dealpermissionoverride_role_id_deal_id",
				Unique:  false,
				Columns: []*schema.Column{DealPermissionOverridesColumns[7], DealPermissionOverridesColumns[3]},
			},
		},
	}
	// FundsColumns holds the columns for the "funds" table.
	FundsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 200},
		{Name: "slug", Type: field.TypeString, Unique: true, Size: 100},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// FundsTable holds the schema information for the "funds" table.
	FundsTable = &schema.Table{
		Name:       "funds",
		Columns:    FundsColumns,
		PrimaryKey: []*schema.Column{FundsColumns[0]},
	}
	// PermissionGrantsColumns holds the columns for the "permission_grants" table.
	PermissionGrantsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "path", Type: field.TypeString, Size: 255},
		{Name: "permission_type", Type: field.TypeString, Size: 20},
		{Name: "granted", Type: field.TypeBool},
		{Name: "role_id", Type: field.TypeUUID},
	}
	// PermissionGrantsTable holds the schema information for the "permission_grants" table.
	PermissionGrantsTable = &schema.Table{
		Name:       "permission_grants",
		Columns:    PermissionGrantsColumns,
		PrimaryKey: []*schema.Column{PermissionGrantsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "permission_grants_stakeholder_roles_grants",
				Columns:    []*schema.Column{PermissionGrantsColumns[6]},
				RefColumns: []*schema.Column{StakeholderRolesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "permissiongrant_role_id_path_permission_type",
				Unique:  true,
				Columns: []*schema.Column{PermissionGrantsColumns[6], PermissionGrantsColumns[3], PermissionGrantsColumns[4]},
			},
		},
	}
	// StakeholderRolesColumns holds the columns for the "stakeholder_roles" table.
	StakeholderRolesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "role_name", Type: field.TypeString, Size: 100},
		{Name: "role_kind", Type: field.TypeEnum, Enums: []string{"system", "custom"}},
		{Name: "base_type", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "is_default", Type: field.TypeBool, Default: false},
		{Name: "fund_id", Type: field.TypeUUID},
	}
	// StakeholderRolesTable holds the schema information for the "stakeholder_roles" table.
	StakeholderRolesTable = &schema.Table{
		Name:       "stakeholder_roles",
		Columns:    StakeholderRolesColumns,
		PrimaryKey: []*schema.Column{StakeholderRolesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "stakeholder_roles_funds_roles",
				Columns:    []*schema.Column{StakeholderRolesColumns[7]},
				RefColumns: []*schema.Column{FundsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "stakeholderrole_fund_id_base_type",
				Unique:  true,
				Columns: []*schema.Column{StakeholderRolesColumns[7], StakeholderRolesColumns[5]},
				Annotation: &entsql.IndexAnnotation{
					Where: "role_kind = 'system'",
				},
			},
			{
				Name:    "stakeholderrole_fund_id_role_name",
				Unique:  true,
				Columns: []*schema.Column{StakeholderRolesColumns[7], StakeholderRolesColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DealPermissionOverridesTable,
		FundsTable,
		PermissionGrantsTable,
		StakeholderRolesTable,
	}
)

func init() {
	DealPermissionOverridesTable.ForeignKeys[0].RefTable = StakeholderRolesTable
	PermissionGrantsTable.ForeignKeys[0].RefTable = StakeholderRolesTable
	StakeholderRolesTable.ForeignKeys[0].RefTable = FundsTable
}
