package managers

import (
	"fmt"

	"github.com/samarjit/drizzle-orm/nodes"
	"github.com/samarjit/drizzle-orm/plugins"
)

// UpdateManager provides a fluent API for building UPDATE statements.
// Set clauses follow the table's column declaration order regardless of
// the order keys appear in the supplied map.
type UpdateManager struct {
	treeManager
	stmt *nodes.UpdateStatement
}

// NewUpdateManager creates a new UpdateManager targeting the given table.
func NewUpdateManager(table *nodes.Table) *UpdateManager {
	return &UpdateManager{stmt: &nodes.UpdateStatement{Table: table}}
}

func (m *UpdateManager) clone() *UpdateManager {
	assignments := make([]*nodes.AssignmentNode, len(m.stmt.Assignments))
	copy(assignments, m.stmt.Assignments)
	return &UpdateManager{
		treeManager: m.cloneBase(),
		stmt: &nodes.UpdateStatement{
			Table:       m.stmt.Table,
			Assignments: assignments,
			Wheres:      cloneNodes(m.stmt.Wheres),
			Returning:   cloneNodes(m.stmt.Returning),
		},
	}
}

// Set merges column assignments, mapping logical keys to new values. Keys
// not declared on the table are a construction error.
func (m *UpdateManager) Set(set map[string]any) *UpdateManager {
	c := m.clone()
	assignments, err := buildAssignments(c.stmt.Table, set)
	if err != nil {
		c.fail(err)
		return c
	}
	c.stmt.Assignments = append(c.stmt.Assignments, assignments...)
	return c
}

// Where appends conditions to the WHERE clause.
func (m *UpdateManager) Where(conditions ...nodes.Node) *UpdateManager {
	c := m.clone()
	c.stmt.Wheres = append(c.stmt.Wheres, conditions...)
	return c
}

// Returning sets the returning clause columns.
func (m *UpdateManager) Returning(cols ...nodes.Node) *UpdateManager {
	c := m.clone()
	c.stmt.Returning = cols
	return c
}

// Use registers a transformer plugin.
func (m *UpdateManager) Use(t plugins.Transformer) *UpdateManager {
	c := m.clone()
	c.transformers = append(c.transformers, t)
	return c
}

// ToSQL compiles the plan with the given dialect visitor.
func (m *UpdateManager) ToSQL(v nodes.Visitor) (string, []any, error) {
	return toSQLParams(v, func(v nodes.Visitor) (string, error) {
		if m.err != nil {
			return "", m.err
		}
		if len(m.stmt.Assignments) == 0 {
			return "", fmt.Errorf("drizzle: update of %q has no set clause", m.stmt.Table.Name)
		}
		stmt := m.stmt
		for _, t := range m.transformers {
			var err error
			stmt, err = t.TransformUpdate(stmt)
			if err != nil {
				return "", err
			}
		}
		return stmt.Accept(v), nil
	})
}
