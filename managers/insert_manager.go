package managers

import (
	"fmt"

	"github.com/samarjit/drizzle-orm/nodes"
	"github.com/samarjit/drizzle-orm/plugins"
)

// InsertManager provides a fluent API for building INSERT statements.
// The emitted column list always follows the table's declaration order;
// columns omitted from a supplied row are filled with the default marker.
type InsertManager struct {
	treeManager
	stmt *nodes.InsertStatement
}

// NewInsertManager creates a new InsertManager targeting the given table.
func NewInsertManager(into *nodes.Table) *InsertManager {
	return &InsertManager{
		stmt: &nodes.InsertStatement{
			Into:    into,
			Columns: into.Columns(),
		},
	}
}

func (m *InsertManager) clone() *InsertManager {
	rows := make([][]nodes.Node, len(m.stmt.Rows))
	for i, row := range m.stmt.Rows {
		rows[i] = cloneNodes(row)
	}
	return &InsertManager{
		treeManager: m.cloneBase(),
		stmt: &nodes.InsertStatement{
			Into:       m.stmt.Into,
			Columns:    m.stmt.Columns,
			Rows:       rows,
			Returning:  cloneNodes(m.stmt.Returning),
			OnConflict: m.stmt.OnConflict,
		},
	}
}

// Values appends one row, mapping logical column keys to values. Values may
// be raw Go values (bound as parameters) or nodes (e.g. raw fragments).
// Keys not declared on the table are a construction error. Map order is
// irrelevant: the row aligns with the table's declaration order.
func (m *InsertManager) Values(row map[string]any) *InsertManager {
	c := m.clone()
	for key := range row {
		if _, ok := c.stmt.Into.Column(key); !ok {
			c.fail(fmt.Errorf("drizzle: unknown column %q in insert values for table %q", key, c.stmt.Into.Name))
			return c
		}
	}
	aligned := make([]nodes.Node, len(c.stmt.Columns))
	for i, col := range c.stmt.Columns {
		if v, ok := row[col.Key()]; ok {
			aligned[i] = nodes.Literal(v)
		} else {
			aligned[i] = nodes.Default()
		}
	}
	c.stmt.Rows = append(c.stmt.Rows, aligned)
	return c
}

// OnConflictDoNothing adds an on conflict do nothing clause, optionally
// scoped to target columns. Targets must belong to the insert's table.
func (m *InsertManager) OnConflictDoNothing(targets ...*nodes.Attribute) *InsertManager {
	c := m.clone()
	if err := c.checkTargets(targets); err != nil {
		c.fail(err)
		return c
	}
	c.stmt.OnConflict = &nodes.OnConflictNode{Targets: targets, Action: nodes.DoNothing}
	return c
}

// OnConflictDoUpdate adds an on conflict do update clause. The set mapping
// follows the same declaration-order and casing rules as a standalone
// update of the same table.
func (m *InsertManager) OnConflictDoUpdate(target *nodes.Attribute, set map[string]any) *InsertManager {
	c := m.clone()
	var targets []*nodes.Attribute
	if target != nil {
		targets = []*nodes.Attribute{target}
	}
	if err := c.checkTargets(targets); err != nil {
		c.fail(err)
		return c
	}
	assignments, err := buildAssignments(c.stmt.Into, set)
	if err != nil {
		c.fail(err)
		return c
	}
	c.stmt.OnConflict = &nodes.OnConflictNode{
		Targets:     targets,
		Action:      nodes.DoUpdate,
		Assignments: assignments,
	}
	return c
}

func (m *InsertManager) checkTargets(targets []*nodes.Attribute) error {
	for _, t := range targets {
		if t == nil || t.Column == nil {
			return fmt.Errorf("drizzle: nil conflict target on table %q", m.stmt.Into.Name)
		}
		if t.Column.Table() != m.stmt.Into {
			return fmt.Errorf("drizzle: conflict target %q is not a column of table %q", t.Column.Key(), m.stmt.Into.Name)
		}
	}
	return nil
}

// Returning sets the returning clause columns.
func (m *InsertManager) Returning(cols ...nodes.Node) *InsertManager {
	c := m.clone()
	c.stmt.Returning = cols
	return c
}

// Use registers a transformer plugin.
func (m *InsertManager) Use(t plugins.Transformer) *InsertManager {
	c := m.clone()
	c.transformers = append(c.transformers, t)
	return c
}

// ToSQL compiles the plan with the given dialect visitor.
func (m *InsertManager) ToSQL(v nodes.Visitor) (string, []any, error) {
	return toSQLParams(v, func(v nodes.Visitor) (string, error) {
		if m.err != nil {
			return "", m.err
		}
		if len(m.stmt.Rows) == 0 {
			return "", fmt.Errorf("drizzle: insert into %q has no value rows", m.stmt.Into.Name)
		}
		stmt := m.stmt
		for _, t := range m.transformers {
			var err error
			stmt, err = t.TransformInsert(stmt)
			if err != nil {
				return "", err
			}
		}
		return stmt.Accept(v), nil
	})
}

// buildAssignments maps logical keys to assignment nodes in the table's
// declaration order, rejecting unknown keys.
func buildAssignments(table *nodes.Table, set map[string]any) ([]*nodes.AssignmentNode, error) {
	for key := range set {
		if _, ok := table.Column(key); !ok {
			return nil, fmt.Errorf("drizzle: unknown column %q in set clause for table %q", key, table.Name)
		}
	}
	var assignments []*nodes.AssignmentNode
	for _, col := range table.Columns() {
		v, ok := set[col.Key()]
		if !ok {
			continue
		}
		assignments = append(assignments, &nodes.AssignmentNode{
			Column: table.Col(col.Key()),
			Value:  nodes.Literal(v),
		})
	}
	return assignments, nil
}
