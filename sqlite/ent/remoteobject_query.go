// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/yumine/versia/sqlite/ent/predicate"
	"github.com/yumine/versia/sqlite/ent/remoteobject"
)

// RemoteObjectQuery is the builder for querying RemoteObject entities.
type RemoteObjectQuery struct {
	config
	ctx        *QueryContext
	order      []remoteobject.OrderOption
	inters     []Interceptor
	predicates []predicate.RemoteObject
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the RemoteObjectQuery builder.
func (roq *RemoteObjectQuery) Where(ps ...predicate.RemoteObject) *RemoteObjectQuery {
	roq.predicates = append(roq.predicates, ps...)
	return roq
}

// Limit the number of records to be returned by this query.
func (roq *RemoteObjectQuery) Limit(limit int) *RemoteObjectQuery {
	roq.ctx.Limit = &limit
	return roq
}

// Offset to start from.
func (roq *RemoteObjectQuery) Offset(offset int) *RemoteObjectQuery {
	roq.ctx.Offset = &offset
	return roq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (roq *RemoteObjectQuery) Unique(unique bool) *RemoteObjectQuery {
	roq.ctx.Unique = &unique
	return roq
}

// Order specifies how the records should be ordered.
func (roq *RemoteObjectQuery) Order(o ...remoteobject.OrderOption) *RemoteObjectQuery {
	roq.order = append(roq.order, o...)
	return roq
}

// First returns the first RemoteObject entity from the query.
// Returns a *NotFoundError when no RemoteObject was found.
func (roq *RemoteObjectQuery) First(ctx context.Context) (*RemoteObject, error) {
	nodes, err := roq.Limit(1).All(setContextOp(ctx, roq.ctx, "First"))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{remoteobject.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (roq *RemoteObjectQuery) FirstX(ctx context.Context) *RemoteObject {
	node, err := roq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first RemoteObject ID from the query.
// Returns a *NotFoundError when no RemoteObject ID was found.
func (roq *RemoteObjectQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = roq.Limit(1).IDs(setContextOp(ctx, roq.ctx, "FirstID")); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{remoteobject.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (roq *RemoteObjectQuery) FirstIDX(ctx context.Context) string {
	id, err := roq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single RemoteObject entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one RemoteObject entity is found.
// Returns a *NotFoundError when no RemoteObject entities are found.
func (roq *RemoteObjectQuery) Only(ctx context.Context) (*RemoteObject, error) {
	nodes, err := roq.Limit(2).All(setContextOp(ctx, roq.ctx, "Only"))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{remoteobject.Label}
	default:
		return nil, &NotSingularError{remoteobject.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (roq *RemoteObjectQuery) OnlyX(ctx context.Context) *RemoteObject {
	node, err := roq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only RemoteObject ID in the query.
// Returns a *NotSingularError when more than one RemoteObject ID is found.
// Returns a *NotFoundError when no entities are found.
func (roq *RemoteObjectQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = roq.Limit(2).IDs(setContextOp(ctx, roq.ctx, "OnlyID")); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{remoteobject.Label}
	default:
		err = &NotSingularError{remoteobject.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (roq *RemoteObjectQuery) OnlyIDX(ctx context.Context) string {
	id, err := roq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of RemoteObjects.
func (roq *RemoteObjectQuery) All(ctx context.Context) ([]*RemoteObject, error) {
	ctx = setContextOp(ctx, roq.ctx, "All")
	if err := roq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*RemoteObject, *RemoteObjectQuery]()
	return withInterceptors[[]*RemoteObject](ctx, roq, qr, roq.inters)
}

// AllX is like All, but panics if an error occurs.
func (roq *RemoteObjectQuery) AllX(ctx context.Context) []*RemoteObject {
	nodes, err := roq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of RemoteObject IDs.
func (roq *RemoteObjectQuery) IDs(ctx context.Context) (ids []string, err error) {
	if roq.ctx.Unique == nil && roq.path != nil {
		roq.Unique(true)
	}
	ctx = setContextOp(ctx, roq.ctx, "IDs")
	if err = roq.Select(remoteobject.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (roq *RemoteObjectQuery) IDsX(ctx context.Context) []string {
	ids, err := roq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (roq *RemoteObjectQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, roq.ctx, "Count")
	if err := roq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, roq, querierCount[*RemoteObjectQuery](), roq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (roq *RemoteObjectQuery) CountX(ctx context.Context) int {
	count, err := roq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (roq *RemoteObjectQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, roq.ctx, "Exist")
	switch _, err := roq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (roq *RemoteObjectQuery) ExistX(ctx context.Context) bool {
	exist, err := roq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the RemoteObjectQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (roq *RemoteObjectQuery) Clone() *RemoteObjectQuery {
	if roq == nil {
		return nil
	}
	return &RemoteObjectQuery{
		config:     roq.config,
		ctx:        roq.ctx.Clone(),
		order:      append([]remoteobject.OrderOption{}, roq.order...),
		inters:     append([]Interceptor{}, roq.inters...),
		predicates: append([]predicate.RemoteObject{}, roq.predicates...),
		// clone intermediate query.
		sql:  roq.sql.Clone(),
		path: roq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		RemoteID string `json:"remote_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.RemoteObject.Query().
//		GroupBy(remoteobject.FieldRemoteID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (roq *RemoteObjectQuery) GroupBy(field string, fields ...string) *RemoteObjectGroupBy {
	roq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &RemoteObjectGroupBy{build: roq}
	grbuild.flds = &roq.ctx.Fields
	grbuild.label = remoteobject.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		RemoteID string `json:"remote_id,omitempty"`
//	}
//
//	client.RemoteObject.Query().
//		Select(remoteobject.FieldRemoteID).
//		Scan(ctx, &v)
func (roq *RemoteObjectQuery) Select(fields ...string) *RemoteObjectSelect {
	roq.ctx.Fields = append(roq.ctx.Fields, fields...)
	sbuild := &RemoteObjectSelect{RemoteObjectQuery: roq}
	sbuild.label = remoteobject.Label
	sbuild.flds, sbuild.scan = &roq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a RemoteObjectSelect configured with the given aggregations.
func (roq *RemoteObjectQuery) Aggregate(fns ...AggregateFunc) *RemoteObjectSelect {
	return roq.Select().Aggregate(fns...)
}

func (roq *RemoteObjectQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range roq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, roq); err != nil {
				return err
			}
		}
	}
	for _, f := range roq.ctx.Fields {
		if !remoteobject.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if roq.path != nil {
		prev, err := roq.path(ctx)
		if err != nil {
			return err
		}
		roq.sql = prev
	}
	return nil
}

func (roq *RemoteObjectQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*RemoteObject, error) {
	var (
		nodes = []*RemoteObject{}
		_spec = roq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*RemoteObject).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &RemoteObject{config: roq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, roq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (roq *RemoteObjectQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := roq.querySpec()
	_spec.Node.Columns = roq.ctx.Fields
	if len(roq.ctx.Fields) > 0 {
		_spec.Unique = roq.ctx.Unique != nil && *roq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, roq.driver, _spec)
}

func (roq *RemoteObjectQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(remoteobject.Table, remoteobject.Columns, sqlgraph.NewFieldSpec(remoteobject.FieldID, field.TypeString))
	_spec.From = roq.sql
	if unique := roq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if roq.path != nil {
		_spec.Unique = true
	}
	if fields := roq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, remoteobject.FieldID)
		for i := range fields {
			if fields[i] != remoteobject.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := roq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := roq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := roq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := roq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (roq *RemoteObjectQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(roq.driver.Dialect())
	t1 := builder.Table(remoteobject.Table)
	columns := roq.ctx.Fields
	if len(columns) == 0 {
		columns = remoteobject.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if roq.sql != nil {
		selector = roq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if roq.ctx.Unique != nil && *roq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range roq.predicates {
		p(selector)
	}
	for _, p := range roq.order {
		p(selector)
	}
	if offset := roq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := roq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// RemoteObjectGroupBy is the group-by builder for RemoteObject entities.
type RemoteObjectGroupBy struct {
	selector
	build *RemoteObjectQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (rogb *RemoteObjectGroupBy) Aggregate(fns ...AggregateFunc) *RemoteObjectGroupBy {
	rogb.fns = append(rogb.fns, fns...)
	return rogb
}

// Scan applies the selector query and scans the result into the given value.
func (rogb *RemoteObjectGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, rogb.build.ctx, "GroupBy")
	if err := rogb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*RemoteObjectQuery, *RemoteObjectGroupBy](ctx, rogb.build, rogb, rogb.build.inters, v)
}

func (rogb *RemoteObjectGroupBy) sqlScan(ctx context.Context, root *RemoteObjectQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(rogb.fns))
	for _, fn := range rogb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*rogb.flds)+len(rogb.fns))
		for _, f := range *rogb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*rogb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := rogb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// RemoteObjectSelect is the builder for selecting fields of RemoteObject entities.
type RemoteObjectSelect struct {
	*RemoteObjectQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (ros *RemoteObjectSelect) Aggregate(fns ...AggregateFunc) *RemoteObjectSelect {
	ros.fns = append(ros.fns, fns...)
	return ros
}

// Scan applies the selector query and scans the result into the given value.
func (ros *RemoteObjectSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ros.ctx, "Select")
	if err := ros.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*RemoteObjectQuery, *RemoteObjectSelect](ctx, ros.RemoteObjectQuery, ros, ros.inters, v)
}

func (ros *RemoteObjectSelect) sqlScan(ctx context.Context, root *RemoteObjectQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(ros.fns))
	for _, fn := range ros.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*ros.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ros.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
