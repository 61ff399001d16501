// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/repo/dealpermissionoverride"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/repo/fund"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/repo/permissiongrant"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/repo/predicate"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/repo/stakeholderrole"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDealPermissionOverride = "DealPermissionOverride"
	TypeFund                   = "Fund"
	TypePermissionGrant        = "PermissionGrant"
	TypeStakeholderRole        = "StakeholderRole"
)

// DealPermissionOverrideMutation represents an operation that mutates the DealPermissionOverride nodes in the graph.
type DealPermissionOverrideMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	created_at      *time.Time
	updated_at      *time.Time
	deal_id         *uuid.UUID
	_path           *string
	permission_type *string
	granted         *bool
	clearedFields   map[string]struct{}
	role            *uuid.UUID
	clearedrole     bool
	done            bool
	oldValue        func(context.Context) (*DealPermissionOverride, error)
	predicates      []predicate.DealPermissionOverride
}

var _ ent.Mutation = (*DealPermissionOverrideMutation)(nil)

// dealpermissionoverrideOption allows management of the mutation configuration using functional options.
type dealpermissionoverrideOption func(*DealPermissionOverrideMutation)

// newDealPermissionOverrideMutation creates new mutation for the DealPermissionOverride entity.
func newDealPermissionOverrideMutation(c config, op Op, opts ...dealpermissionoverrideOption) *DealPermissionOverrideMutation {
	m := &DealPermissionOverrideMutation{
		config:        c,
		op:            op,
		typ:           TypeDealPermissionOverride,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDealPermissionOverrideID sets the ID field of the mutation.
func withDealPermissionOverrideID(id uuid.UUID) dealpermissionoverrideOption {
	return func(m *DealPermissionOverrideMutation) {
		var (
			err   error
			once  sync.Once
			value *DealPermissionOverride
		)
		m.oldValue = func(ctx context.Context) (*DealPermissionOverride, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DealPermissionOverride.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDealPermissionOverride sets the old DealPermissionOverride of the mutation.
func withDealPermissionOverride(node *DealPermissionOverride) dealpermissionoverrideOption {
	return func(m *DealPermissionOverrideMutation) {
		m.oldValue = func(context.Context) (*DealPermissionOverride, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DealPermissionOverrideMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DealPermissionOverrideMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DealPermissionOverride entities.
func (m *DealPermissionOverrideMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DealPermissionOverrideMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DealPermissionOverrideMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DealPermissionOverride.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *DealPermissionOverrideMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DealPermissionOverrideMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DealPermissionOverride entity.
// If the DealPermissionOverride object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DealPermissionOverrideMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DealPermissionOverrideMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DealPermissionOverrideMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DealPermissionOverrideMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the DealPermissionOverride entity.
// If the DealPermissionOverride object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DealPermissionOverrideMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DealPermissionOverrideMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetRoleID sets the "role_id" field.
func (m *DealPermissionOverrideMutation) SetRoleID(u uuid.UUID) {
	m.role = &u
}

// RoleID returns the value of the "role_id" field in the mutation.
func (m *DealPermissionOverrideMutation) RoleID() (r uuid.UUID, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRoleID returns the old "role_id" field's value of the DealPermissionOverride entity.
// If the DealPermissionOverride object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DealPermissionOverrideMutation) OldRoleID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoleID: %w", err)
	}
	return oldValue.RoleID, nil
}

// ResetRoleID resets all changes to the "role_id" field.
func (m *DealPermissionOverrideMutation) ResetRoleID() {
	m.role = nil
}

// SetDealID sets the "deal_id" field.
func (m *DealPermissionOverrideMutation) SetDealID(u uuid.UUID) {
	m.deal_id = &u
}

// DealID returns the value of the "deal_id" field in the mutation.
func (m *DealPermissionOverrideMutation) DealID() (r uuid.UUID, exists bool) {
	v := m.deal_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDealID returns the old "deal_id" field's value of the DealPermissionOverride entity.
// If the DealPermissionOverride object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DealPermissionOverrideMutation) OldDealID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDealID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDealID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDealID: %w", err)
	}
	return oldValue.DealID, nil
}

// ResetDealID resets all changes to the "deal_id" field.
func (m *DealPermissionOverrideMutation) ResetDealID() {
	m.deal_id = nil
}

// SetPath sets the "path" field.
func (m *DealPermissionOverrideMutation) SetPath(s string) {
	m._path = &s
}

// Path returns the value of the "path" field in the mutation.
func (m *DealPermissionOverrideMutation) Path() (r string, exists bool) {
	v := m._path
	if v == nil {
		return
	}
	return *v, true
}

// OldPath returns the old "path" field's value of the DealPermissionOverride entity.
// If the DealPermissionOverride object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DealPermissionOverrideMutation) OldPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPath: %w", err)
	}
	return oldValue.Path, nil
}

// ResetPath resets all changes to the "path" field.
func (m *DealPermissionOverrideMutation) ResetPath() {
	m._path = nil
}

// SetPermissionType sets the "permission_type" field.
func (m *DealPermissionOverrideMutation) SetPermissionType(s string) {
	m.permission_type = &s
}

// PermissionType returns the value of the "permission_type" field in the mutation.
func (m *DealPermissionOverrideMutation) PermissionType() (r string, exists bool) {
	v := m.permission_type
	if v == nil {
		return
	}
	return *v, true
}

// OldPermissionType returns the old "permission_type" field's value of the DealPermissionOverride entity.
// If the DealPermissionOverride object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DealPermissionOverrideMutation) OldPermissionType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPermissionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPermissionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPermissionType: %w", err)
	}
	return oldValue.PermissionType, nil
}

// ResetPermissionType resets all changes to the "permission_type" field.
func (m *DealPermissionOverrideMutation) ResetPermissionType() {
	m.permission_type = nil
}

// SetGranted sets the "granted" field.
func (m *DealPermissionOverrideMutation) SetGranted(b bool) {
	m.granted = &b
}

// Granted returns the value of the "granted" field in the mutation.
func (m *DealPermissionOverrideMutation) Granted() (r bool, exists bool) {
	v := m.granted
	if v == nil {
		return
	}
	return *v, true
}

// OldGranted returns the old "granted" field's value of the DealPermissionOverride entity.
// If the DealPermissionOverride object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DealPermissionOverrideMutation) OldGranted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGranted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGranted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGranted: %w", err)
	}
	return oldValue.Granted, nil
}

// ResetGranted resets all changes to the "granted" field.
func (m *DealPermissionOverrideMutation) ResetGranted() {
	m.granted = nil
}

// ClearRole clears the "role" edge to the StakeholderRole entity.
func (m *DealPermissionOverrideMutation) ClearRole() {
	m.clearedrole = true
	m.clearedFields[dealpermissionoverride.FieldRoleID] = struct{}{}
}

// RoleCleared reports if the "role" edge to the StakeholderRole entity was cleared.
func (m *DealPermissionOverrideMutation) RoleCleared() bool {
	return m.clearedrole
}

// RoleIDs returns the "role" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RoleID instead. It exists only for internal usage by the builders.
func (m *DealPermissionOverrideMutation) RoleIDs() (ids []uuid.UUID) {
	if id := m.role; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRole resets all changes to the "role" edge.
func (m *DealPermissionOverrideMutation) ResetRole() {
	m.role = nil
	m.clearedrole = false
}

// Where appends a list predicates to the DealPermissionOverrideMutation builder.
func (m *DealPermissionOverrideMutation) Where(ps ...predicate.DealPermissionOverride) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DealPermissionOverrideMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DealPermissionOverrideMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DealPermissionOverride, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DealPermissionOverrideMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DealPermissionOverrideMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DealPermissionOverride).
func (m *DealPermissionOverrideMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DealPermissionOverrideMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, dealpermissionoverride.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, dealpermissionoverride.FieldUpdatedAt)
	}
	if m.role != nil {
		fields = append(fields, dealpermissionoverride.FieldRoleID)
	}
	if m.deal_id != nil {
		fields = append(fields, dealpermissionoverride.FieldDealID)
	}
	if m._path != nil {
		fields = append(fields, dealpermissionoverride.FieldPath)
	}
	if m.permission_type != nil {
		fields = append(fields, dealpermissionoverride.FieldPermissionType)
	}
	if m.granted != nil {
		fields = append(fields, dealpermissionoverride.FieldGranted)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DealPermissionOverrideMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case dealpermissionoverride.FieldCreatedAt:
		return m.CreatedAt()
	case dealpermissionoverride.FieldUpdatedAt:
		return m.UpdatedAt()
	case dealpermissionoverride.FieldRoleID:
		return m.RoleID()
	case dealpermissionoverride.FieldDealID:
		return m.DealID()
	case dealpermissionoverride.FieldPath:
		return m.Path()
	case dealpermissionoverride.FieldPermissionType:
		return m.PermissionType()
	case dealpermissionoverride.FieldGranted:
		return m.Granted()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DealPermissionOverrideMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case dealpermissionoverride.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case dealpermissionoverride.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case dealpermissionoverride.FieldRoleID:
		return m.OldRoleID(ctx)
	case dealpermissionoverride.FieldDealID:
		return m.OldDealID(ctx)
	case dealpermissionoverride.FieldPath:
		return m.OldPath(ctx)
	case dealpermissionoverride.FieldPermissionType:
		return m.OldPermissionType(ctx)
	case dealpermissionoverride.FieldGranted:
		return m.OldGranted(ctx)
	}
	return nil, fmt.Errorf("unknown DealPermissionOverride field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DealPermissionOverrideMutation) SetField(name string, value ent.Value) error {
	switch name {
	case dealpermissionoverride.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case dealpermissionoverride.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case dealpermissionoverride.FieldRoleID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoleID(v)
		return nil
	case dealpermissionoverride.FieldDealID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDealID(v)
		return nil
	case dealpermissionoverride.FieldPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPath(v)
		return nil
	case dealpermissionoverride.FieldPermissionType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPermissionType(v)
		return nil
	case dealpermissionoverride.FieldGranted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGranted(v)
		return nil
	}
	return fmt.Errorf("unknown DealPermissionOverride field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DealPermissionOverrideMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DealPermissionOverrideMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DealPermissionOverrideMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown DealPermissionOverride numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DealPermissionOverrideMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DealPermissionOverrideMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DealPermissionOverrideMutation) ClearField(name string) error {
	return fmt.Errorf("unknown DealPermissionOverride nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DealPermissionOverrideMutation) ResetField(name string) error {
	switch name {
	case dealpermissionoverride.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case dealpermissionoverride.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case dealpermissionoverride.FieldRoleID:
		m.ResetRoleID()
		return nil
	case dealpermissionoverride.FieldDealID:
		m.ResetDealID()
		return nil
	case dealpermissionoverride.FieldPath:
		m.ResetPath()
		return nil
	case dealpermissionoverride.FieldPermissionType:
		m.ResetPermissionType()
		return nil
	case dealpermissionoverride.FieldGranted:
		m.ResetGranted()
		return nil
	}
	return fmt.Errorf("unknown DealPermissionOverride field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DealPermissionOverrideMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.role != nil {
		edges = append(edges, dealpermissionoverride.EdgeRole)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DealPermissionOverrideMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case dealpermissionoverride.EdgeRole:
		if id := m.role; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DealPermissionOverrideMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DealPermissionOverrideMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DealPermissionOverrideMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrole {
		edges = append(edges, dealpermissionoverride.EdgeRole)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DealPermissionOverrideMutation) EdgeCleared(name string) bool {
	switch name {
	case dealpermissionoverride.EdgeRole:
		return m.clearedrole
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DealPermissionOverrideMutation) ClearEdge(name string) error {
	switch name {
	case dealpermissionoverride.EdgeRole:
		m.ClearRole()
		return nil
	}
	return fmt.Errorf("unknown DealPermissionOverride unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DealPermissionOverrideMutation) ResetEdge(name string) error {
	switch name {
	case dealpermissionoverride.EdgeRole:
		m.ResetRole()
		return nil
	}
	return fmt.Errorf("unknown DealPermissionOverride edge %s", name)
}

// FundMutation represents an operation that mutates the Fund nodes in the graph.
type FundMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	updated_at    *time.Time
	name          *string
	slug          *string
	is_active     *bool
	clearedFields map[string]struct{}
	roles         map[uuid.UUID]struct{}
	removedroles  map[uuid.UUID]struct{}
	clearedroles  bool
	done          bool
	oldValue      func(context.Context) (*Fund, error)
	predicates    []predicate.Fund
}

var _ ent.Mutation = (*FundMutation)(nil)

// fundOption allows management of the mutation configuration using functional options.
type fundOption func(*FundMutation)

// newFundMutation creates new mutation for the Fund entity.
func newFundMutation(c config, op Op, opts ...fundOption) *FundMutation {
	m := &FundMutation{
		config:        c,
		op:            op,
		typ:           TypeFund,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFundID sets the ID field of the mutation.
func withFundID(id uuid.UUID) fundOption {
	return func(m *FundMutation) {
		var (
			err   error
			once  sync.Once
			value *Fund
		)
		m.oldValue = func(ctx context.Context) (*Fund, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Fund.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFund sets the old Fund of the mutation.
func withFund(node *Fund) fundOption {
	return func(m *FundMutation) {
		m.oldValue = func(context.Context) (*Fund, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FundMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FundMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Fund entities.
func (m *FundMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FundMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FundMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Fund.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *FundMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FundMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Fund entity.
// If the Fund object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FundMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FundMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *FundMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *FundMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Fund entity.
// If the Fund object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FundMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *FundMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *FundMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *FundMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Fund entity.
// If the Fund object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FundMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *FundMutation) ResetName() {
	m.name = nil
}

// SetSlug sets the "slug" field.
func (m *FundMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *FundMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the Fund entity.
// If the Fund object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FundMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *FundMutation) ResetSlug() {
	m.slug = nil
}

// SetIsActive sets the "is_active" field.
func (m *FundMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *FundMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the Fund entity.
// If the Fund object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FundMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *FundMutation) ResetIsActive() {
	m.is_active = nil
}

// AddRoleIDs adds the "roles" edge to the StakeholderRole entity by ids.
func (m *FundMutation) AddRoleIDs(ids ...uuid.UUID) {
	if m.roles == nil {
		m.roles = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.roles[ids[i]] = struct{}{}
	}
}

// ClearRoles clears the "roles" edge to the StakeholderRole entity.
func (m *FundMutation) ClearRoles() {
	m.clearedroles = true
}

// RolesCleared reports if the "roles" edge to the StakeholderRole entity was cleared.
func (m *FundMutation) RolesCleared() bool {
	return m.clearedroles
}

// RemoveRoleIDs removes the "roles" edge to the StakeholderRole entity by IDs.
func (m *FundMutation) RemoveRoleIDs(ids ...uuid.UUID) {
	if m.removedroles == nil {
		m.removedroles = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.roles, ids[i])
		m.removedroles[ids[i]] = struct{}{}
	}
}

// RemovedRoles returns the removed IDs of the "roles" edge to the StakeholderRole entity.
func (m *FundMutation) RemovedRolesIDs() (ids []uuid.UUID) {
	for id := range m.removedroles {
		ids = append(ids, id)
	}
	return
}

// RolesIDs returns the "roles" edge IDs in the mutation.
func (m *FundMutation) RolesIDs() (ids []uuid.UUID) {
	for id := range m.roles {
		ids = append(ids, id)
	}
	return
}

// ResetRoles resets all changes to the "roles" edge.
func (m *FundMutation) ResetRoles() {
	m.roles = nil
	m.clearedroles = false
	m.removedroles = nil
}

// Where appends a list predicates to the FundMutation builder.
func (m *FundMutation) Where(ps ...predicate.Fund) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FundMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FundMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Fund, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FundMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FundMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Fund).
func (m *FundMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FundMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, fund.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, fund.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, fund.FieldName)
	}
	if m.slug != nil {
		fields = append(fields, fund.FieldSlug)
	}
	if m.is_active != nil {
		fields = append(fields, fund.FieldIsActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FundMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case fund.FieldCreatedAt:
		return m.CreatedAt()
	case fund.FieldUpdatedAt:
		return m.UpdatedAt()
	case fund.FieldName:
		return m.Name()
	case fund.FieldSlug:
		return m.Slug()
	case fund.FieldIsActive:
		return m.IsActive()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FundMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case fund.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case fund.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case fund.FieldName:
		return m.OldName(ctx)
	case fund.FieldSlug:
		return m.OldSlug(ctx)
	case fund.FieldIsActive:
		return m.OldIsActive(ctx)
	}
	return nil, fmt.Errorf("unknown Fund field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FundMutation) SetField(name string, value ent.Value) error {
	switch name {
	case fund.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case fund.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case fund.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case fund.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case fund.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	}
	return fmt.Errorf("unknown Fund field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FundMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FundMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FundMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Fund numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FundMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FundMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FundMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Fund nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FundMutation) ResetField(name string) error {
	switch name {
	case fund.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case fund.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case fund.FieldName:
		m.ResetName()
		return nil
	case fund.FieldSlug:
		m.ResetSlug()
		return nil
	case fund.FieldIsActive:
		m.ResetIsActive()
		return nil
	}
	return fmt.Errorf("unknown Fund field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FundMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.roles != nil {
		edges = append(edges, fund.EdgeRoles)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FundMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case fund.EdgeRoles:
		ids := make([]ent.Value, 0, len(m.roles))
		for id := range m.roles {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FundMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedroles != nil {
		edges = append(edges, fund.EdgeRoles)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FundMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case fund.EdgeRoles:
		ids := make([]ent.Value, 0, len(m.removedroles))
		for id := range m.removedroles {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FundMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedroles {
		edges = append(edges, fund.EdgeRoles)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FundMutation) EdgeCleared(name string) bool {
	switch name {
	case fund.EdgeRoles:
		return m.clearedroles
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FundMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Fund unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FundMutation) ResetEdge(name string) error {
	switch name {
	case fund.EdgeRoles:
		m.ResetRoles()
		return nil
	}
	return fmt.Errorf("unknown Fund edge %s", name)
}

// PermissionGrantMutation represents an operation that mutates the PermissionGrant nodes in the graph.
type PermissionGrantMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	created_at      *time.Time
	updated_at      *time.Time
	_path           *string
	permission_type *string
	granted         *bool
	clearedFields   map[string]struct{}
	role            *uuid.UUID
	clearedrole     bool
	done            bool
	oldValue        func(context.Context) (*PermissionGrant, error)
	predicates      []predicate.PermissionGrant
}

var _ ent.Mutation = (*PermissionGrantMutation)(nil)

// permissiongrantOption allows management of the mutation configuration using functional options.
type permissiongrantOption func(*PermissionGrantMutation)

// newPermissionGrantMutation creates new mutation for the PermissionGrant entity.
func newPermissionGrantMutation(c config, op Op, opts ...permissiongrantOption) *PermissionGrantMutation {
	m := &PermissionGrantMutation{
		config:        c,
		op:            op,
		typ:           TypePermissionGrant,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPermissionGrantID sets the ID field of the mutation.
func withPermissionGrantID(id uuid.UUID) permissiongrantOption {
	return func(m *PermissionGrantMutation) {
		var (
			err   error
			once  sync.Once
			value *PermissionGrant
		)
		m.oldValue = func(ctx context.Context) (*PermissionGrant, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PermissionGrant.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPermissionGrant sets the old PermissionGrant of the mutation.
func withPermissionGrant(node *PermissionGrant) permissiongrantOption {
	return func(m *PermissionGrantMutation) {
		m.oldValue = func(context.Context) (*PermissionGrant, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PermissionGrantMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PermissionGrantMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PermissionGrant entities.
func (m *PermissionGrantMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PermissionGrantMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PermissionGrantMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PermissionGrant.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PermissionGrantMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PermissionGrantMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PermissionGrant entity.
// If the PermissionGrant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PermissionGrantMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PermissionGrantMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PermissionGrantMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PermissionGrantMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PermissionGrant entity.
// If the PermissionGrant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PermissionGrantMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PermissionGrantMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetRoleID sets the "role_id" field.
func (m *PermissionGrantMutation) SetRoleID(u uuid.UUID) {
	m.role = &u
}

// RoleID returns the value of the "role_id" field in the mutation.
func (m *PermissionGrantMutation) RoleID() (r uuid.UUID, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRoleID returns the old "role_id" field's value of the PermissionGrant entity.
// If the PermissionGrant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PermissionGrantMutation) OldRoleID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoleID: %w", err)
	}
	return oldValue.RoleID, nil
}

// ResetRoleID resets all changes to the "role_id" field.
func (m *PermissionGrantMutation) ResetRoleID() {
	m.role = nil
}

// SetPath sets the "path" field.
func (m *PermissionGrantMutation) SetPath(s string) {
	m._path = &s
}

// Path returns the value of the "path" field in the mutation.
func (m *PermissionGrantMutation) Path() (r string, exists bool) {
	v := m._path
	if v == nil {
		return
	}
	return *v, true
}

// OldPath returns the old "path" field's value of the PermissionGrant entity.
// If the PermissionGrant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PermissionGrantMutation) OldPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPath: %w", err)
	}
	return oldValue.Path, nil
}

// ResetPath resets all changes to the "path" field.
func (m *PermissionGrantMutation) ResetPath() {
	m._path = nil
}

// SetPermissionType sets the "permission_type" field.
func (m *PermissionGrantMutation) SetPermissionType(s string) {
	m.permission_type = &s
}

// PermissionType returns the value of the "permission_type" field in the mutation.
func (m *PermissionGrantMutation) PermissionType() (r string, exists bool) {
	v := m.permission_type
	if v == nil {
		return
	}
	return *v, true
}

// OldPermissionType returns the old "permission_type" field's value of the PermissionGrant entity.
// If the PermissionGrant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PermissionGrantMutation) OldPermissionType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPermissionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPermissionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPermissionType: %w", err)
	}
	return oldValue.PermissionType, nil
}

// ResetPermissionType resets all changes to the "permission_type" field.
func (m *PermissionGrantMutation) ResetPermissionType() {
	m.permission_type = nil
}

// SetGranted sets the "granted" field.
func (m *PermissionGrantMutation) SetGranted(b bool) {
	m.granted = &b
}

// Granted returns the value of the "granted" field in the mutation.
func (m *PermissionGrantMutation) Granted() (r bool, exists bool) {
	v := m.granted
	if v == nil {
		return
	}
	return *v, true
}

// OldGranted returns the old "granted" field's value of the PermissionGrant entity.
// If the PermissionGrant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PermissionGrantMutation) OldGranted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGranted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGranted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGranted: %w", err)
	}
	return oldValue.Granted, nil
}

// ResetGranted resets all changes to the "granted" field.
func (m *PermissionGrantMutation) ResetGranted() {
	m.granted = nil
}

// ClearRole clears the "role" edge to the StakeholderRole entity.
func (m *PermissionGrantMutation) ClearRole() {
	m.clearedrole = true
	m.clearedFields[permissiongrant.FieldRoleID] = struct{}{}
}

// RoleCleared reports if the "role" edge to the StakeholderRole entity was cleared.
func (m *PermissionGrantMutation) RoleCleared() bool {
	return m.clearedrole
}

// RoleIDs returns the "role" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RoleID instead. It exists only for internal usage by the builders.
func (m *PermissionGrantMutation) RoleIDs() (ids []uuid.UUID) {
	if id := m.role; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRole resets all changes to the "role" edge.
func (m *PermissionGrantMutation) ResetRole() {
	m.role = nil
	m.clearedrole = false
}

// Where appends a list predicates to the PermissionGrantMutation builder.
func (m *PermissionGrantMutation) Where(ps ...predicate.PermissionGrant) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PermissionGrantMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PermissionGrantMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PermissionGrant, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PermissionGrantMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PermissionGrantMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PermissionGrant).
func (m *PermissionGrantMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PermissionGrantMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, permissiongrant.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, permissiongrant.FieldUpdatedAt)
	}
	if m.role != nil {
		fields = append(fields, permissiongrant.FieldRoleID)
	}
	if m._path != nil {
		fields = append(fields, permissiongrant.FieldPath)
	}
	if m.permission_type != nil {
		fields = append(fields, permissiongrant.FieldPermissionType)
	}
	if m.granted != nil {
		fields = append(fields, permissiongrant.FieldGranted)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PermissionGrantMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case permissiongrant.FieldCreatedAt:
		return m.CreatedAt()
	case permissiongrant.FieldUpdatedAt:
		return m.UpdatedAt()
	case permissiongrant.FieldRoleID:
		return m.RoleID()
	case permissiongrant.FieldPath:
		return m.Path()
	case permissiongrant.FieldPermissionType:
		return m.PermissionType()
	case permissiongrant.FieldGranted:
		return m.Granted()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PermissionGrantMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case permissiongrant.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case permissiongrant.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case permissiongrant.FieldRoleID:
		return m.OldRoleID(ctx)
	case permissiongrant.FieldPath:
		return m.OldPath(ctx)
	case permissiongrant.FieldPermissionType:
		return m.OldPermissionType(ctx)
	case permissiongrant.FieldGranted:
		return m.OldGranted(ctx)
	}
	return nil, fmt.Errorf("unknown PermissionGrant field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PermissionGrantMutation) SetField(name string, value ent.Value) error {
	switch name {
	case permissiongrant.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case permissiongrant.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case permissiongrant.FieldRoleID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoleID(v)
		return nil
	case permissiongrant.FieldPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPath(v)
		return nil
	case permissiongrant.FieldPermissionType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPermissionType(v)
		return nil
	case permissiongrant.FieldGranted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGranted(v)
		return nil
	}
	return fmt.Errorf("unknown PermissionGrant field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PermissionGrantMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PermissionGrantMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PermissionGrantMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PermissionGrant numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PermissionGrantMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PermissionGrantMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PermissionGrantMutation) ClearField(name string) error {
	return fmt.Errorf("unknown PermissionGrant nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PermissionGrantMutation) ResetField(name string) error {
	switch name {
	case permissiongrant.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case permissiongrant.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case permissiongrant.FieldRoleID:
		m.ResetRoleID()
		return nil
	case permissiongrant.FieldPath:
		m.ResetPath()
		return nil
	case permissiongrant.FieldPermissionType:
		m.ResetPermissionType()
		return nil
	case permissiongrant.FieldGranted:
		m.ResetGranted()
		return nil
	}
	return fmt.Errorf("unknown PermissionGrant field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PermissionGrantMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.role != nil {
		edges = append(edges, permissiongrant.EdgeRole)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PermissionGrantMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case permissiongrant.EdgeRole:
		if id := m.role; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PermissionGrantMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PermissionGrantMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PermissionGrantMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrole {
		edges = append(edges, permissiongrant.EdgeRole)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PermissionGrantMutation) EdgeCleared(name string) bool {
	switch name {
	case permissiongrant.EdgeRole:
		return m.clearedrole
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PermissionGrantMutation) ClearEdge(name string) error {
	switch name {
	case permissiongrant.EdgeRole:
		m.ClearRole()
		return nil
	}
	return fmt.Errorf("unknown PermissionGrant unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PermissionGrantMutation) ResetEdge(name string) error {
	switch name {
	case permissiongrant.EdgeRole:
		m.ResetRole()
		return nil
	}
	return fmt.Errorf("unknown PermissionGrant edge %s", name)
}

// StakeholderRoleMutation represents an operation that mutates the StakeholderRole nodes in the graph.
type StakeholderRoleMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	created_at       *time.Time
	updated_at       *time.Time
	role_name        *string
	role_kind        *stakeholderrole.RoleKind
	base_type        *string
	is_default       *bool
	clearedFields    map[string]struct{}
	fund             *uuid.UUID
	clearedfund      bool
	grants           map[uuid.UUID]struct{}
	removedgrants    map[uuid.UUID]struct{}
	clearedgrants    bool
	overrides        map[uuid.UUID]struct{}
	removedoverrides map[uuid.UUID]struct{}
	clearedoverrides bool
	done             bool
	oldValue         func(context.Context) (*StakeholderRole, error)
	predicates       []predicate.StakeholderRole
}

var _ ent.Mutation = (*StakeholderRoleMutation)(nil)

// stakeholderroleOption allows management of the mutation configuration using functional options.
type stakeholderroleOption func(*StakeholderRoleMutation)

// newStakeholderRoleMutation creates new mutation for the StakeholderRole entity.
func newStakeholderRoleMutation(c config, op Op, opts ...stakeholderroleOption) *StakeholderRoleMutation {
	m := &StakeholderRoleMutation{
		config:        c,
		op:            op,
		typ:           TypeStakeholderRole,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStakeholderRoleID sets the ID field of the mutation.
func withStakeholderRoleID(id uuid.UUID) stakeholderroleOption {
	return func(m *StakeholderRoleMutation) {
		var (
			err   error
			once  sync.Once
			value *StakeholderRole
		)
		m.oldValue = func(ctx context.Context) (*StakeholderRole, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StakeholderRole.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStakeholderRole sets the old StakeholderRole of the mutation.
func withStakeholderRole(node *StakeholderRole) stakeholderroleOption {
	return func(m *StakeholderRoleMutation) {
		m.oldValue = func(context.Context) (*StakeholderRole, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StakeholderRoleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StakeholderRoleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StakeholderRole entities.
func (m *StakeholderRoleMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StakeholderRoleMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StakeholderRoleMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StakeholderRole.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *StakeholderRoleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StakeholderRoleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StakeholderRole entity.
// If the StakeholderRole object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StakeholderRoleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StakeholderRoleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StakeholderRoleMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StakeholderRoleMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the StakeholderRole entity.
// If the StakeholderRole object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StakeholderRoleMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *StakeholderRoleMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetFundID sets the "fund_id" field.
func (m *StakeholderRoleMutation) SetFundID(u uuid.UUID) {
	m.fund = &u
}

// FundID returns the value of the "fund_id" field in the mutation.
func (m *StakeholderRoleMutation) FundID() (r uuid.UUID, exists bool) {
	v := m.fund
	if v == nil {
		return
	}
	return *v, true
}

// OldFundID returns the old "fund_id" field's value of the StakeholderRole entity.
// If the StakeholderRole object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StakeholderRoleMutation) OldFundID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFundID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFundID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFundID: %w", err)
	}
	return oldValue.FundID, nil
}

// ResetFundID resets all changes to the "fund_id" field.
func (m *StakeholderRoleMutation) ResetFundID() {
	m.fund = nil
}

// SetRoleName sets the "role_name" field.
func (m *StakeholderRoleMutation) SetRoleName(s string) {
	m.role_name = &s
}

// RoleName returns the value of the "role_name" field in the mutation.
func (m *StakeholderRoleMutation) RoleName() (r string, exists bool) {
	v := m.role_name
	if v == nil {
		return
	}
	return *v, true
}

// OldRoleName returns the old "role_name" field's value of the StakeholderRole entity.
// If the StakeholderRole object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StakeholderRoleMutation) OldRoleName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoleName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoleName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoleName: %w", err)
	}
	return oldValue.RoleName, nil
}

// ResetRoleName resets all changes to the "role_name" field.
func (m *StakeholderRoleMutation) ResetRoleName() {
	m.role_name = nil
}

// SetRoleKind sets the "role_kind" field.
func (m *StakeholderRoleMutation) SetRoleKind(sk stakeholderrole.RoleKind) {
	m.role_kind = &sk
}

// RoleKind returns the value of the "role_kind" field in the mutation.
func (m *StakeholderRoleMutation) RoleKind() (r stakeholderrole.RoleKind, exists bool) {
	v := m.role_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldRoleKind returns the old "role_kind" field's value of the StakeholderRole entity.
// If the StakeholderRole object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StakeholderRoleMutation) OldRoleKind(ctx context.Context) (v stakeholderrole.RoleKind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoleKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoleKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoleKind: %w", err)
	}
	return oldValue.RoleKind, nil
}

// ResetRoleKind resets all changes to the "role_kind" field.
func (m *StakeholderRoleMutation) ResetRoleKind() {
	m.role_kind = nil
}

// SetBaseType sets the "base_type" field.
func (m *StakeholderRoleMutation) SetBaseType(s string) {
	m.base_type = &s
}

// BaseType returns the value of the "base_type" field in the mutation.
func (m *StakeholderRoleMutation) BaseType() (r string, exists bool) {
	v := m.base_type
	if v == nil {
		return
	}
	return *v, true
}

// OldBaseType returns the old "base_type" field's value of the StakeholderRole entity.
// If the StakeholderRole object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StakeholderRoleMutation) OldBaseType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBaseType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBaseType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBaseType: %w", err)
	}
	return oldValue.BaseType, nil
}

// ClearBaseType clears the value of the "base_type" field.
func (m *StakeholderRoleMutation) ClearBaseType() {
	m.base_type = nil
	m.clearedFields[stakeholderrole.FieldBaseType] = struct{}{}
}

// BaseTypeCleared returns if the "base_type" field was cleared in this mutation.
func (m *StakeholderRoleMutation) BaseTypeCleared() bool {
	_, ok := m.clearedFields[stakeholderrole.FieldBaseType]
	return ok
}

// ResetBaseType resets all changes to the "base_type" field.
func (m *StakeholderRoleMutation) ResetBaseType() {
	m.base_type = nil
	delete(m.clearedFields, stakeholderrole.FieldBaseType)
}

// SetIsDefault sets the "is_default" field.
func (m *StakeholderRoleMutation) SetIsDefault(b bool) {
	m.is_default = &b
}

// IsDefault returns the value of the "is_default" field in the mutation.
func (m *StakeholderRoleMutation) IsDefault() (r bool, exists bool) {
	v := m.is_default
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDefault returns the old "is_default" field's value of the StakeholderRole entity.
// If the StakeholderRole object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StakeholderRoleMutation) OldIsDefault(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDefault is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDefault requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDefault: %w", err)
	}
	return oldValue.IsDefault, nil
}

// ResetIsDefault resets all changes to the "is_default" field.
func (m *StakeholderRoleMutation) ResetIsDefault() {
	m.is_default = nil
}

// ClearFund clears the "fund" edge to the Fund entity.
func (m *StakeholderRoleMutation) ClearFund() {
	m.clearedfund = true
	m.clearedFields[stakeholderrole.FieldFundID] = struct{}{}
}

// FundCleared reports if the "fund" edge to the Fund entity was cleared.
func (m *StakeholderRoleMutation) FundCleared() bool {
	return m.clearedfund
}

// FundIDs returns the "fund" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FundID instead. It exists only for internal usage by the builders.
func (m *StakeholderRoleMutation) FundIDs() (ids []uuid.UUID) {
	if id := m.fund; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFund resets all changes to the "fund" edge.
func (m *StakeholderRoleMutation) ResetFund() {
	m.fund = nil
	m.clearedfund = false
}

// AddGrantIDs adds the "grants" edge to the PermissionGrant entity by ids.
func (m *StakeholderRoleMutation) AddGrantIDs(ids ...uuid.UUID) {
	if m.grants == nil {
		m.grants = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.grants[ids[i]] = struct{}{}
	}
}

// ClearGrants clears the "grants" edge to the PermissionGrant entity.
func (m *StakeholderRoleMutation) ClearGrants() {
	m.clearedgrants = true
}

// GrantsCleared reports if the "grants" edge to the PermissionGrant entity was cleared.
func (m *StakeholderRoleMutation) GrantsCleared() bool {
	return m.clearedgrants
}

// RemoveGrantIDs removes the "grants" edge to the PermissionGrant entity by IDs.
func (m *StakeholderRoleMutation) RemoveGrantIDs(ids ...uuid.UUID) {
	if m.removedgrants == nil {
		m.removedgrants = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.grants, ids[i])
		m.removedgrants[ids[i]] = struct{}{}
	}
}

// RemovedGrants returns the removed IDs of the "grants" edge to the PermissionGrant entity.
func (m *StakeholderRoleMutation) RemovedGrantsIDs() (ids []uuid.UUID) {
	for id := range m.removedgrants {
		ids = append(ids, id)
	}
	return
}

// GrantsIDs returns the "grants" edge IDs in the mutation.
func (m *StakeholderRoleMutation) GrantsIDs() (ids []uuid.UUID) {
	for id := range m.grants {
		ids = append(ids, id)
	}
	return
}

// ResetGrants resets all changes to the "grants" edge.
func (m *StakeholderRoleMutation) ResetGrants() {
	m.grants = nil
	m.clearedgrants = false
	m.removedgrants = nil
}

// AddOverrideIDs adds the "overrides" edge to the DealPermissionOverride entity by ids.
func (m *StakeholderRoleMutation) AddOverrideIDs(ids ...uuid.UUID) {
	if m.overrides == nil {
		m.overrides = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.overrides[ids[i]] = struct{}{}
	}
}

// ClearOverrides clears the "overrides" edge to the DealPermissionOverride entity.
func (m *StakeholderRoleMutation) ClearOverrides() {
	m.clearedoverrides = true
}

// OverridesCleared reports if the "overrides" edge to the DealPermissionOverride entity was cleared.
func (m *StakeholderRoleMutation) OverridesCleared() bool {
	return m.clearedoverrides
}

// RemoveOverrideIDs removes the "overrides" edge to the DealPermissionOverride entity by IDs.
func (m *StakeholderRoleMutation) RemoveOverrideIDs(ids ...uuid.UUID) {
	if m.removedoverrides == nil {
		m.removedoverrides = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.overrides, ids[i])
		m.removedoverrides[ids[i]] = struct{}{}
	}
}

// RemovedOverrides returns the removed IDs of the "overrides" edge to the DealPermissionOverride entity.
func (m *StakeholderRoleMutation) RemovedOverridesIDs() (ids []uuid.UUID) {
	for id := range m.removedoverrides {
		ids = append(ids, id)
	}
	return
}

// OverridesIDs returns the "overrides" edge IDs in the mutation.
func (m *StakeholderRoleMutation) OverridesIDs() (ids []uuid.UUID) {
	for id := range m.overrides {
		ids = append(ids, id)
	}
	return
}

// ResetOverrides resets all changes to the "overrides" edge.
func (m *StakeholderRoleMutation) ResetOverrides() {
	m.overrides = nil
	m.clearedoverrides = false
	m.removedoverrides = nil
}

// Where appends a list predicates to the StakeholderRoleMutation builder.
func (m *StakeholderRoleMutation) Where(ps ...predicate.StakeholderRole) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StakeholderRoleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StakeholderRoleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StakeholderRole, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StakeholderRoleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StakeholderRoleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StakeholderRole).
func (m *StakeholderRoleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StakeholderRoleMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, stakeholderrole.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, stakeholderrole.FieldUpdatedAt)
	}
	if m.fund != nil {
		fields = append(fields, stakeholderrole.FieldFundID)
	}
	if m.role_name != nil {
		fields = append(fields, stakeholderrole.FieldRoleName)
	}
	if m.role_kind != nil {
		fields = append(fields, stakeholderrole.FieldRoleKind)
	}
	if m.base_type != nil {
		fields = append(fields, stakeholderrole.FieldBaseType)
	}
	if m.is_default != nil {
		fields = append(fields, stakeholderrole.FieldIsDefault)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StakeholderRoleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stakeholderrole.FieldCreatedAt:
		return m.CreatedAt()
	case stakeholderrole.FieldUpdatedAt:
		return m.UpdatedAt()
	case stakeholderrole.FieldFundID:
		return m.FundID()
	case stakeholderrole.FieldRoleName:
		return m.RoleName()
	case stakeholderrole.FieldRoleKind:
		return m.RoleKind()
	case stakeholderrole.FieldBaseType:
		return m.BaseType()
	case stakeholderrole.FieldIsDefault:
		return m.IsDefault()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StakeholderRoleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stakeholderrole.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case stakeholderrole.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case stakeholderrole.FieldFundID:
		return m.OldFundID(ctx)
	case stakeholderrole.FieldRoleName:
		return m.OldRoleName(ctx)
	case stakeholderrole.FieldRoleKind:
		return m.OldRoleKind(ctx)
	case stakeholderrole.FieldBaseType:
		return m.OldBaseType(ctx)
	case stakeholderrole.FieldIsDefault:
		return m.OldIsDefault(ctx)
	}
	return nil, fmt.Errorf("unknown StakeholderRole field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StakeholderRoleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stakeholderrole.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case stakeholderrole.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case stakeholderrole.FieldFundID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFundID(v)
		return nil
	case stakeholderrole.FieldRoleName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoleName(v)
		return nil
	case stakeholderrole.FieldRoleKind:
		v, ok := value.(stakeholderrole.RoleKind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoleKind(v)
		return nil
	case stakeholderrole.FieldBaseType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBaseType(v)
		return nil
	case stakeholderrole.FieldIsDefault:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDefault(v)
		return nil
	}
	return fmt.Errorf("unknown StakeholderRole field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StakeholderRoleMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StakeholderRoleMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StakeholderRoleMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown StakeholderRole numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StakeholderRoleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(stakeholderrole.FieldBaseType) {
		fields = append(fields, stakeholderrole.FieldBaseType)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StakeholderRoleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StakeholderRoleMutation) ClearField(name string) error {
	switch name {
	case stakeholderrole.FieldBaseType:
		m.ClearBaseType()
		return nil
	}
	return fmt.Errorf("unknown StakeholderRole nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StakeholderRoleMutation) ResetField(name string) error {
	switch name {
	case stakeholderrole.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case stakeholderrole.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case stakeholderrole.FieldFundID:
		m.ResetFundID()
		return nil
	case stakeholderrole.FieldRoleName:
		m.ResetRoleName()
		return nil
	case stakeholderrole.FieldRoleKind:
		m.ResetRoleKind()
		return nil
	case stakeholderrole.FieldBaseType:
		m.ResetBaseType()
		return nil
	case stakeholderrole.FieldIsDefault:
		m.ResetIsDefault()
		return nil
	}
	return fmt.Errorf("unknown StakeholderRole field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StakeholderRoleMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.fund != nil {
		edges = append(edges, stakeholderrole.EdgeFund)
	}
	if m.grants != nil {
		edges = append(edges, stakeholderrole.EdgeGrants)
	}
	if m.overrides != nil {
		edges = append(edges, stakeholderrole.EdgeOverrides)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StakeholderRoleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case stakeholderrole.EdgeFund:
		if id := m.fund; id != nil {
			return []ent.Value{*id}
		}
	case stakeholderrole.EdgeGrants:
		ids := make([]ent.Value, 0, len(m.grants))
		for id := range m.grants {
			ids = append(ids, id)
		}
		return ids
	case stakeholderrole.EdgeOverrides:
		ids := make([]ent.Value, 0, len(m.overrides))
		for id := range m.overrides {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StakeholderRoleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedgrants != nil {
		edges = append(edges, stakeholderrole.EdgeGrants)
	}
	if m.removedoverrides != nil {
		edges = append(edges, stakeholderrole.EdgeOverrides)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StakeholderRoleMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case stakeholderrole.EdgeGrants:
		ids := make([]ent.Value, 0, len(m.removedgrants))
		for id := range m.removedgrants {
			ids = append(ids, id)
		}
		return ids
	case stakeholderrole.EdgeOverrides:
		ids := make([]ent.Value, 0, len(m.removedoverrides))
		for id := range m.removedoverrides {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StakeholderRoleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedfund {
		edges = append(edges, stakeholderrole.EdgeFund)
	}
	if m.clearedgrants {
		edges = append(edges, stakeholderrole.EdgeGrants)
	}
	if m.clearedoverrides {
		edges = append(edges, stakeholderrole.EdgeOverrides)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StakeholderRoleMutation) EdgeCleared(name string) bool {
	switch name {
	case stakeholderrole.EdgeFund:
		return m.clearedfund
	case stakeholderrole.EdgeGrants:
		return m.clearedgrants
	case stakeholderrole.EdgeOverrides:
		return m.clearedoverrides
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StakeholderRoleMutation) ClearEdge(name string) error {
	switch name {
	case stakeholderrole.EdgeFund:
		m.ClearFund()
		return nil
	}
	return fmt.Errorf("unknown StakeholderRole unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StakeholderRoleMutation) ResetEdge(name string) error {
	switch name {
	case stakeholderrole.EdgeFund:
		m.ResetFund()
		return nil
	case stakeholderrole.EdgeGrants:
		m.ResetGrants()
		return nil
	case stakeholderrole.EdgeOverrides:
		m.ResetOverrides()
		return nil
	}
	return fmt.Errorf("unknown StakeholderRole edge %s", name)
}
