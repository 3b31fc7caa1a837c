package managers

import (
	"fmt"

	"github.com/samarjit/drizzle-orm/nodes"
)

// SetManager holds a set operation over two or more select plans. It is
// produced by the set-operation methods on SelectManager and by the free
// functions below; both construction paths compile to identical SQL.
type SetManager struct {
	treeManager
	node *nodes.SetOperationNode
}

// projectionArity reports the projection width of a set operand. A bare
// star projection has unknown width and is reported as 0.
func projectionArity(n nodes.Node) int {
	switch op := n.(type) {
	case *nodes.SelectCore:
		return len(op.Projections)
	case *nodes.SetOperationNode:
		return projectionArity(op.Left)
	default:
		return 0
	}
}

func newSetManager(t nodes.SetOpType, left, right *SelectManager) *SetManager {
	m := &SetManager{node: &nodes.SetOperationNode{
		Left:  left.core,
		Right: right.core,
		Type:  t,
	}}
	if left.err != nil {
		m.fail(left.err)
	}
	if right.err != nil {
		m.fail(right.err)
	}
	m.checkArity(left.core, right.core)
	return m
}

func (m *SetManager) checkArity(left, right nodes.Node) {
	la, ra := projectionArity(left), projectionArity(right)
	if la != 0 && ra != 0 && la != ra {
		m.fail(fmt.Errorf("drizzle: set operation operands have mismatched projection arity: %d vs %d", la, ra))
	}
}

func (m *SetManager) combine(t nodes.SetOpType, other *SelectManager) *SetManager {
	c := &SetManager{
		treeManager: m.cloneBase(),
		node: &nodes.SetOperationNode{
			Left:  m.node,
			Right: other.core,
			Type:  t,
		},
	}
	if other.err != nil {
		c.fail(other.err)
	}
	c.checkArity(m.node, other.core)
	return c
}

// Union appends another operand with union semantics.
func (m *SetManager) Union(other *SelectManager) *SetManager {
	return m.combine(nodes.Union, other)
}

// UnionAll appends another operand with union all semantics.
func (m *SetManager) UnionAll(other *SelectManager) *SetManager {
	return m.combine(nodes.UnionAll, other)
}

// Intersect appends another operand with intersect semantics.
func (m *SetManager) Intersect(other *SelectManager) *SetManager {
	return m.combine(nodes.Intersect, other)
}

// IntersectAll appends another operand with intersect all semantics.
func (m *SetManager) IntersectAll(other *SelectManager) *SetManager {
	return m.combine(nodes.IntersectAll, other)
}

// Except appends another operand with except semantics.
func (m *SetManager) Except(other *SelectManager) *SetManager {
	return m.combine(nodes.Except, other)
}

// ExceptAll appends another operand with except all semantics.
func (m *SetManager) ExceptAll(other *SelectManager) *SetManager {
	return m.combine(nodes.ExceptAll, other)
}

// Accept implements the Node interface so a set operation can itself be
// embedded as a subquery.
func (m *SetManager) Accept(v nodes.Visitor) string {
	return m.node.Accept(v)
}

// As wraps the set operation in a TableAlias for use in FROM clauses.
func (m *SetManager) As(name string) *nodes.TableAlias {
	return &nodes.TableAlias{Relation: m.node, AliasName: name}
}

// ToSQL compiles the set operation.
func (m *SetManager) ToSQL(v nodes.Visitor) (string, []any, error) {
	return toSQLParams(v, func(v nodes.Visitor) (string, error) {
		if m.err != nil {
			return "", m.err
		}
		return m.node.Accept(v), nil
	})
}

func setOp(t nodes.SetOpType, first *SelectManager, rest ...*SelectManager) *SetManager {
	if len(rest) == 0 {
		m := &SetManager{node: &nodes.SetOperationNode{Left: first.core, Type: t}}
		m.fail(fmt.Errorf("drizzle: set operation requires at least two operands"))
		return m
	}
	m := newSetManager(t, first, rest[0])
	for _, next := range rest[1:] {
		m = m.combine(t, next)
	}
	return m
}

// Union combines two or more select plans with union semantics. Equivalent
// to chaining SelectManager.Union.
func Union(first *SelectManager, rest ...*SelectManager) *SetManager {
	return setOp(nodes.Union, first, rest...)
}

// UnionAll combines two or more select plans with union all semantics.
func UnionAll(first *SelectManager, rest ...*SelectManager) *SetManager {
	return setOp(nodes.UnionAll, first, rest...)
}

// Intersect combines two or more select plans with intersect semantics.
func Intersect(first *SelectManager, rest ...*SelectManager) *SetManager {
	return setOp(nodes.Intersect, first, rest...)
}

// IntersectAll combines two or more select plans with intersect all semantics.
func IntersectAll(first *SelectManager, rest ...*SelectManager) *SetManager {
	return setOp(nodes.IntersectAll, first, rest...)
}

// Except combines two or more select plans with except semantics.
func Except(first *SelectManager, rest ...*SelectManager) *SetManager {
	return setOp(nodes.Except, first, rest...)
}

// ExceptAll combines two or more select plans with except all semantics.
func ExceptAll(first *SelectManager, rest ...*SelectManager) *SetManager {
	return setOp(nodes.ExceptAll, first, rest...)
}
