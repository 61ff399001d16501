// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/repo/dealpermissionoverride"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/repo/fund"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/repo/permissiongrant"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/repo/predicate"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/repo/stakeholderrole"
	"github.com/google/uuid"
)

// StakeholderRoleQuery is the builder for querying StakeholderRole entities.
type StakeholderRoleQuery struct {
	config
	ctx           *QueryContext
	order         []stakeholderrole.OrderOption
	inters        []Interceptor
	predicates    []predicate.StakeholderRole
	withFund      *FundQuery
	withGrants    *PermissionGrantQuery
	withOverrides *DealPermissionOverrideQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the StakeholderRoleQuery builder.
func (_q *StakeholderRoleQuery) Where(ps ...predicate.StakeholderRole) *StakeholderRoleQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *StakeholderRoleQuery) Limit(limit int) *StakeholderRoleQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *StakeholderRoleQuery) Offset(offset int) *StakeholderRoleQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *StakeholderRoleQuery) Unique(unique bool) *StakeholderRoleQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *StakeholderRoleQuery) Order(o ...stakeholderrole.OrderOption) *StakeholderRoleQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryFund chains the current query on the "fund" edge.
func (_q *StakeholderRoleQuery) QueryFund() *FundQuery {
	query := (&FundClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(stakeholderrole.Table, stakeholderrole.FieldID, selector),
			sqlgraph.To(fund.Table, fund.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, stakeholderrole.FundTable, stakeholderrole.FundColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryGrants chains the current query on the "grants" edge.
func (_q *StakeholderRoleQuery) QueryGrants() *PermissionGrantQuery {
	query := (&PermissionGrantClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(stakeholderrole.Table, stakeholderrole.FieldID, selector),
			sqlgraph.To(permissiongrant.Table, permissiongrant.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, stakeholderrole.GrantsTable, stakeholderrole.GrantsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryOverrides chains the current query on the "overrides" edge.
func (_q *StakeholderRoleQuery) QueryOverrides() *DealPermissionOverrideQuery {
	query := (&DealPermissionOverrideClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(stakeholderrole.Table, stakeholderrole.FieldID, selector),
			sqlgraph.To(dealpermissionoverride.Table, dealpermissionoverride.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, stakeholderrole.OverridesTable, stakeholderrole.OverridesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first StakeholderRole entity from the query.
// Returns a *NotFoundError when no StakeholderRole was found.
func (_q *StakeholderRoleQuery) First(ctx context.Context) (*StakeholderRole, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{stakeholderrole.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *StakeholderRoleQuery) FirstX(ctx context.Context) *StakeholderRole {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first StakeholderRole ID from the query.
// Returns a *NotFoundError when no StakeholderRole ID was found.
func (_q *StakeholderRoleQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{stakeholderrole.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *StakeholderRoleQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single StakeholderRole entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one StakeholderRole entity is found.
// Returns a *NotFoundError when no StakeholderRole entities are found.
func (_q *StakeholderRoleQuery) Only(ctx context.Context) (*StakeholderRole, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{stakeholderrole.Label}
	default:
		return nil, &NotSingularError{stakeholderrole.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *StakeholderRoleQuery) OnlyX(ctx context.Context) *StakeholderRole {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only StakeholderRole ID in the query.
// Returns a *NotSingularError when more than one StakeholderRole ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *StakeholderRoleQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{stakeholderrole.Label}
	default:
		err = &NotSingularError{stakeholderrole.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *StakeholderRoleQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of StakeholderRoles.
func (_q *StakeholderRoleQuery) All(ctx context.Context) ([]*StakeholderRole, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*StakeholderRole, *StakeholderRoleQuery]()
	return withInterceptors[[]*StakeholderRole](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *StakeholderRoleQuery) AllX(ctx context.Context) []*StakeholderRole {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of StakeholderRole IDs.
func (_q *StakeholderRoleQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(stakeholderrole.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *StakeholderRoleQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *StakeholderRoleQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*StakeholderRoleQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *StakeholderRoleQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *StakeholderRoleQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("repo: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *StakeholderRoleQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the StakeholderRoleQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *StakeholderRoleQuery) Clone() *StakeholderRoleQuery {
	if _q == nil {
		return nil
	}
	return &StakeholderRoleQuery{
		config:        _q.config,
		ctx:           _q.ctx.Clone(),
		order:         append([]stakeholderrole.OrderOption{}, _q.order...),
		inters:        append([]Interceptor{}, _q.inters...),
		predicates:    append([]predicate.StakeholderRole{}, _q.predicates...),
		withFund:      _q.withFund.Clone(),
		withGrants:    _q.withGrants.Clone(),
		withOverrides: _q.withOverrides.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithFund tells the query-builder to eager-load the nodes that are connected to
// the "fund" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *StakeholderRoleQuery) WithFund(opts ...func(*FundQuery)) *StakeholderRoleQuery {
	query := (&FundClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withFund = query
	return _q
}

// WithGrants tells the query-builder to eager-load the nodes that are connected to
// the "grants" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *StakeholderRoleQuery) WithGrants(opts ...func(*PermissionGrantQuery)) *StakeholderRoleQuery {
	query := (&PermissionGrantClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withGrants = query
	return _q
}

// WithOverrides tells the query-builder to eager-load the nodes that are connected to
// the "overrides" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *StakeholderRoleQuery) WithOverrides(opts ...func(*DealPermissionOverrideQuery)) *StakeholderRoleQuery {
	query := (&DealPermissionOverrideClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withOverrides = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.StakeholderRole.Query().
//		GroupBy(stakeholderrole.FieldCreatedAt).
//		Aggregate(repo.Count()).
//		Scan(ctx, &v)
func (_q *StakeholderRoleQuery) GroupBy(field string, fields ...string) *StakeholderRoleGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &StakeholderRoleGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = stakeholderrole.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//	}
//
//	client.StakeholderRole.Query().
//		Select(stakeholderrole.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *StakeholderRoleQuery) Select(fields ...string) *StakeholderRoleSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &StakeholderRoleSelect{StakeholderRoleQuery: _q}
	sbuild.label = stakeholderrole.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a StakeholderRoleSelect configured with the given aggregations.
func (_q *StakeholderRoleQuery) Aggregate(fns ...AggregateFunc) *StakeholderRoleSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *StakeholderRoleQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("repo: uninitialized interceptor (forgotten import repo/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !stakeholderrole.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *StakeholderRoleQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*StakeholderRole, error) {
	var (
		nodes       = []*StakeholderRole{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withFund != nil,
			_q.withGrants != nil,
			_q.withOverrides != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*StakeholderRole).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &StakeholderRole{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withFund; query != nil {
		if err := _q.loadFund(ctx, query, nodes, nil,
			func(n *StakeholderRole, e *Fund) { n.Edges.Fund = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withGrants; query != nil {
		if err := _q.loadGrants(ctx, query, nodes,
			func(n *StakeholderRole) { n.Edges.Grants = []*PermissionGrant{} },
			func(n *StakeholderRole, e *PermissionGrant) { n.Edges.Grants = append(n.Edges.Grants, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withOverrides; query != nil {
		if err := _q.loadOverrides(ctx, query, nodes,
			func(n *StakeholderRole) { n.Edges.Overrides = []*DealPermissionOverride{} },
			func(n *StakeholderRole, e *DealPermissionOverride) { n.Edges.Overrides = append(n.Edges.Overrides, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *StakeholderRoleQuery) loadFund(ctx context.Context, query *FundQuery, nodes []*StakeholderRole, init func(*StakeholderRole), assign func(*StakeholderRole, *Fund)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*StakeholderRole)
	for i := range nodes {
		fk := nodes[i].FundID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(fund.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "fund_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *StakeholderRoleQuery) loadGrants(ctx context.Context, query *PermissionGrantQuery, nodes []*StakeholderRole, init func(*StakeholderRole), assign func(*StakeholderRole, *PermissionGrant)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*StakeholderRole)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(permissiongrant.FieldRoleID)
	}
	query.Where(predicate.PermissionGrant(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(stakeholderrole.GrantsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.RoleID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "role_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *StakeholderRoleQuery) loadOverrides(ctx context.Context, query *DealPermissionOverrideQuery, nodes []*StakeholderRole, init func(*StakeholderRole), assign func(*StakeholderRole, *DealPermissionOverride)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*StakeholderRole)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(dealpermissionoverride.FieldRoleID)
	}
	query.Where(predicate.DealPermissionOverride(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(stakeholderrole.OverridesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.RoleID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "role_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *StakeholderRoleQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *StakeholderRoleQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(stakeholderrole.Table, stakeholderrole.Columns, sqlgraph.NewFieldSpec(stakeholderrole.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stakeholderrole.FieldID)
		for i := range fields {
			if fields[i] != stakeholderrole.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withFund != nil {
			_spec.Node.AddColumnOnce(stakeholderrole.FieldFundID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *StakeholderRoleQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(stakeholderrole.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = stakeholderrole.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// StakeholderRoleGroupBy is the group-by builder for StakeholderRole entities.
type StakeholderRoleGroupBy struct {
	selector
	build *StakeholderRoleQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *StakeholderRoleGroupBy) Aggregate(fns ...AggregateFunc) *StakeholderRoleGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *StakeholderRoleGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*StakeholderRoleQuery, *StakeholderRoleGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *StakeholderRoleGroupBy) sqlScan(ctx context.Context, root *StakeholderRoleQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// StakeholderRoleSelect is the builder for selecting fields of StakeholderRole entities.
type StakeholderRoleSelect struct {
	*StakeholderRoleQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *StakeholderRoleSelect) Aggregate(fns ...AggregateFunc) *StakeholderRoleSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *StakeholderRoleSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*StakeholderRoleQuery, *StakeholderRoleSelect](ctx, _s.StakeholderRoleQuery, _s, _s.inters, v)
}

func (_s *StakeholderRoleSelect) sqlScan(ctx context.Context, root *StakeholderRoleQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
