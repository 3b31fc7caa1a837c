package managers

import (
	"github.com/samarjit/drizzle-orm/nodes"
	"github.com/samarjit/drizzle-orm/plugins"
)

// DeleteManager provides a fluent API for building DELETE statements.
type DeleteManager struct {
	treeManager
	stmt *nodes.DeleteStatement
}

// NewDeleteManager creates a new DeleteManager targeting the given table.
func NewDeleteManager(from *nodes.Table) *DeleteManager {
	return &DeleteManager{stmt: &nodes.DeleteStatement{From: from}}
}

func (m *DeleteManager) clone() *DeleteManager {
	return &DeleteManager{
		treeManager: m.cloneBase(),
		stmt: &nodes.DeleteStatement{
			From:      m.stmt.From,
			Wheres:    cloneNodes(m.stmt.Wheres),
			Returning: cloneNodes(m.stmt.Returning),
		},
	}
}

// Where appends conditions to the WHERE clause. A delete with no
// conditions compiles to an unfiltered statement; callers that want a
// guard should use a transformer.
func (m *DeleteManager) Where(conditions ...nodes.Node) *DeleteManager {
	c := m.clone()
	c.stmt.Wheres = append(c.stmt.Wheres, conditions...)
	return c
}

// Returning sets the returning clause columns.
func (m *DeleteManager) Returning(cols ...nodes.Node) *DeleteManager {
	c := m.clone()
	c.stmt.Returning = cols
	return c
}

// Use registers a transformer plugin.
func (m *DeleteManager) Use(t plugins.Transformer) *DeleteManager {
	c := m.clone()
	c.transformers = append(c.transformers, t)
	return c
}

// ToSQL compiles the plan with the given dialect visitor.
func (m *DeleteManager) ToSQL(v nodes.Visitor) (string, []any, error) {
	return toSQLParams(v, func(v nodes.Visitor) (string, error) {
		if m.err != nil {
			return "", m.err
		}
		stmt := m.stmt
		for _, t := range m.transformers {
			var err error
			stmt, err = t.TransformDelete(stmt)
			if err != nil {
				return "", err
			}
		}
		return stmt.Accept(v), nil
	})
}
