// Package managers provides high-level fluent APIs for building SQL ASTs.
// Every chain step returns a new manager value; the receiver is never
// mutated, so plans behave as immutable values. Compilation happens only
// at ToSQL.
package managers

import (
	"github.com/samarjit/drizzle-orm/nodes"
	"github.com/samarjit/drizzle-orm/plugins"
)

// SelectManager provides a fluent API for building SELECT queries.
type SelectManager struct {
	treeManager
	core *nodes.SelectCore
}

// NewSelectManager creates a new SelectManager with the given relation as
// FROM. If from is nil, the FROM clause is left unset.
func NewSelectManager(from nodes.Node) *SelectManager {
	return &SelectManager{core: &nodes.SelectCore{From: from}}
}

// clone copies the manager and its core so the next step can modify freely.
func (m *SelectManager) clone() *SelectManager {
	core := &nodes.SelectCore{
		From:        m.core.From,
		Projections: cloneNodes(m.core.Projections),
		Wheres:      cloneNodes(m.core.Wheres),
		Groups:      cloneNodes(m.core.Groups),
		Havings:     cloneNodes(m.core.Havings),
		Orders:      cloneNodes(m.core.Orders),
		Limit:       m.core.Limit,
		Offset:      m.core.Offset,
		Distinct:    m.core.Distinct,
		DistinctOn:  cloneNodes(m.core.DistinctOn),
	}
	core.Joins = make([]*nodes.JoinNode, len(m.core.Joins))
	copy(core.Joins, m.core.Joins)
	core.CTEs = make([]*nodes.CTENode, len(m.core.CTEs))
	copy(core.CTEs, m.core.CTEs)
	return &SelectManager{treeManager: m.cloneBase(), core: core}
}

// Select sets the projection list, replacing any existing projections.
// Pass column attributes, stars, raw fragments, or any Node; omit entirely
// for * semantics. Label computed expressions with .As(name).
func (m *SelectManager) Select(projections ...nodes.Node) *SelectManager {
	c := m.clone()
	c.core.Projections = projections
	return c
}

// Distinct enables the DISTINCT modifier on the SELECT clause.
func (m *SelectManager) Distinct() *SelectManager {
	c := m.clone()
	c.core.Distinct = true
	return c
}

// DistinctOn sets the DISTINCT ON columns (PostgreSQL).
func (m *SelectManager) DistinctOn(cols ...nodes.Node) *SelectManager {
	c := m.clone()
	c.core.DistinctOn = cols
	return c
}

// From sets or changes the FROM source.
func (m *SelectManager) From(relation nodes.Node) *SelectManager {
	c := m.clone()
	c.core.From = relation
	return c
}

// Where appends one or more conditions to the WHERE clause.
// Multiple conditions are combined with AND at compile time.
func (m *SelectManager) Where(conditions ...nodes.Node) *SelectManager {
	c := m.clone()
	c.core.Wheres = append(c.core.Wheres, conditions...)
	return c
}

func (m *SelectManager) join(relation nodes.Node, on nodes.Node, jt nodes.JoinType) *SelectManager {
	c := m.clone()
	c.core.Joins = append(c.core.Joins, &nodes.JoinNode{
		Left:  c.core.From,
		Right: relation,
		Type:  jt,
		On:    on,
	})
	return c
}

// Join adds an inner join with the given on condition.
func (m *SelectManager) Join(relation nodes.Node, on nodes.Node) *SelectManager {
	return m.join(relation, on, nodes.InnerJoin)
}

// LeftJoin adds a left join with the given on condition.
func (m *SelectManager) LeftJoin(relation nodes.Node, on nodes.Node) *SelectManager {
	return m.join(relation, on, nodes.LeftJoin)
}

// RightJoin adds a right join with the given on condition.
func (m *SelectManager) RightJoin(relation nodes.Node, on nodes.Node) *SelectManager {
	return m.join(relation, on, nodes.RightJoin)
}

// FullJoin adds a full join with the given on condition.
func (m *SelectManager) FullJoin(relation nodes.Node, on nodes.Node) *SelectManager {
	return m.join(relation, on, nodes.FullJoin)
}

// CrossJoin adds a cross join (no on condition).
func (m *SelectManager) CrossJoin(relation nodes.Node) *SelectManager {
	return m.join(relation, nil, nodes.CrossJoin)
}

// Group appends one or more expressions to the GROUP BY clause.
func (m *SelectManager) Group(columns ...nodes.Node) *SelectManager {
	c := m.clone()
	c.core.Groups = append(c.core.Groups, columns...)
	return c
}

// Having appends one or more conditions to the HAVING clause.
func (m *SelectManager) Having(conditions ...nodes.Node) *SelectManager {
	c := m.clone()
	c.core.Havings = append(c.core.Havings, conditions...)
	return c
}

// Order appends ordering expressions, e.g. table.Col("name").Desc().
func (m *SelectManager) Order(orderings ...nodes.Node) *SelectManager {
	c := m.clone()
	c.core.Orders = append(c.core.Orders, orderings...)
	return c
}

// Limit sets the LIMIT value.
func (m *SelectManager) Limit(n int) *SelectManager {
	c := m.clone()
	c.core.Limit = nodes.Literal(n)
	return c
}

// Offset sets the OFFSET value.
func (m *SelectManager) Offset(n int) *SelectManager {
	c := m.clone()
	c.core.Offset = nodes.Literal(n)
	return c
}

func (m *SelectManager) with(name string, query nodes.Node, mat nodes.Materialization, recursive bool) *SelectManager {
	if qm, ok := query.(*SelectManager); ok {
		if qm.err != nil {
			c := m.clone()
			c.fail(qm.err)
			return c
		}
		query = qm.core
	}
	c := m.clone()
	c.core.CTEs = append(c.core.CTEs, &nodes.CTENode{
		Name:            name,
		Query:           query,
		Recursive:       recursive,
		Materialization: mat,
	})
	return c
}

// With adds a common table expression, referenced by name in the main from
// (see nodes.CTETable). Materialization is left to the database.
func (m *SelectManager) With(name string, query nodes.Node) *SelectManager {
	return m.with(name, query, nodes.MaterializeDefault, false)
}

// WithMaterialized adds a CTE forced to materialize.
func (m *SelectManager) WithMaterialized(name string, query nodes.Node) *SelectManager {
	return m.with(name, query, nodes.Materialized, false)
}

// WithNotMaterialized adds a CTE forced to inline.
func (m *SelectManager) WithNotMaterialized(name string, query nodes.Node) *SelectManager {
	return m.with(name, query, nodes.NotMaterialized, false)
}

// WithRecursive adds a recursive CTE.
func (m *SelectManager) WithRecursive(name string, query nodes.Node) *SelectManager {
	return m.with(name, query, nodes.MaterializeDefault, true)
}

// Union combines this query with another; duplicate rows collapse.
func (m *SelectManager) Union(other *SelectManager) *SetManager {
	return newSetManager(nodes.Union, m, other)
}

// UnionAll combines this query with another, keeping duplicates.
func (m *SelectManager) UnionAll(other *SelectManager) *SetManager {
	return newSetManager(nodes.UnionAll, m, other)
}

// Intersect keeps rows present in both queries.
func (m *SelectManager) Intersect(other *SelectManager) *SetManager {
	return newSetManager(nodes.Intersect, m, other)
}

// IntersectAll keeps rows present in both queries, with duplicates.
func (m *SelectManager) IntersectAll(other *SelectManager) *SetManager {
	return newSetManager(nodes.IntersectAll, m, other)
}

// Except keeps rows of this query absent from the other.
func (m *SelectManager) Except(other *SelectManager) *SetManager {
	return newSetManager(nodes.Except, m, other)
}

// ExceptAll keeps rows of this query absent from the other, with duplicates.
func (m *SelectManager) ExceptAll(other *SelectManager) *SetManager {
	return newSetManager(nodes.ExceptAll, m, other)
}

// Use registers a transformer plugin to be applied before SQL generation.
func (m *SelectManager) Use(t plugins.Transformer) *SelectManager {
	c := m.clone()
	c.transformers = append(c.transformers, t)
	return c
}

// QueryCore returns the underlying query AST. Exposed for subquery
// embedding (raw fragments, CTE bodies); treat it as read-only.
func (m *SelectManager) QueryCore() *nodes.SelectCore {
	return m.core
}

// Accept implements the Node interface so that a SelectManager can be used
// as a subquery. It delegates to the underlying SelectCore.
func (m *SelectManager) Accept(v nodes.Visitor) string {
	return m.core.Accept(v)
}

// As wraps the query in a TableAlias, enabling it to be used as a named
// subquery in FROM or JOIN clauses.
func (m *SelectManager) As(name string) *nodes.TableAlias {
	return &nodes.TableAlias{Relation: m.core, AliasName: name}
}

func (m *SelectManager) toSQLCore(v nodes.Visitor) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	core := m.core
	for _, t := range m.transformers {
		var err error
		core, err = t.TransformSelect(core)
		if err != nil {
			return "", err
		}
	}
	return core.Accept(v), nil
}

// ToSQL compiles the plan with the given dialect visitor, returning the SQL
// string and the bound parameter values in placeholder order. This is the
// only point at which the casing cache is consulted.
func (m *SelectManager) ToSQL(v nodes.Visitor) (string, []any, error) {
	return toSQLParams(v, m.toSQLCore)
}
