// Package nodes defines the schema descriptors and AST node types used to
// represent SQL query elements.
package nodes

// Node is the interface that all AST nodes implement.
type Node interface {
	Accept(visitor Visitor) string
}

// Visitor defines the interface for walking the AST and producing output.
// Concrete visitors (e.g., Postgres, SQLite) implement this interface.
// The node set is closed: adding a kind extends this interface, so every
// dialect is checked at compile time.
type Visitor interface {
	VisitTable(node *Table) string
	VisitTableAlias(node *TableAlias) string
	VisitAttribute(node *Attribute) string
	VisitLiteral(node *LiteralNode) string
	VisitDefault(node *DefaultNode) string
	VisitStar(node *StarNode) string
	VisitRaw(node *RawNode) string
	VisitComparison(node *ComparisonNode) string
	VisitUnary(node *UnaryNode) string
	VisitAnd(node *AndNode) string
	VisitOr(node *OrNode) string
	VisitNot(node *NotNode) string
	VisitIn(node *InNode) string
	VisitBetween(node *BetweenNode) string
	VisitGrouping(node *GroupingNode) string
	VisitJoin(node *JoinNode) string
	VisitOrdering(node *OrderingNode) string
	VisitSelectCore(node *SelectCore) string
	VisitInsertStatement(node *InsertStatement) string
	VisitUpdateStatement(node *UpdateStatement) string
	VisitDeleteStatement(node *DeleteStatement) string
	VisitAssignment(node *AssignmentNode) string
	VisitOnConflict(node *OnConflictNode) string
	VisitInfix(node *InfixNode) string
	VisitAggregate(node *AggregateNode) string
	VisitNamedFunction(node *NamedFunctionNode) string
	VisitExists(node *ExistsNode) string
	VisitSetOperation(node *SetOperationNode) string
	VisitCTE(node *CTENode) string
	VisitAlias(node *AliasNode) string
}

// Parameterizer is implemented by visitors that collect bind parameters.
// Callers extract the collected values after SQL generation.
type Parameterizer interface {
	Params() []any
	Reset()
}

// Literal wraps a raw Go value into a LiteralNode. If val already
// implements Node, it is returned as-is.
func Literal(val any) Node {
	if n, ok := val.(Node); ok {
		return n
	}
	lit := &LiteralNode{Value: val}
	lit.Predications.self = lit
	lit.Combinable.self = lit
	return lit
}

// OnConflictAction specifies the action for ON CONFLICT clauses.
type OnConflictAction int

const (
	DoNothing OnConflictAction = iota
	DoUpdate
)

// AssignmentNode represents a column = value pair in SET clauses.
// The column side is always emitted unqualified.
type AssignmentNode struct {
	Column *Attribute
	Value  Node
}

func (n *AssignmentNode) Accept(v Visitor) string { return v.VisitAssignment(n) }

// InsertStatement represents INSERT INTO ... VALUES.
// Columns holds the target table's columns in declaration order; every row
// in Rows is aligned with Columns, using DefaultNode for omitted values.
type InsertStatement struct {
	Into       *Table
	Columns    []*Column
	Rows       [][]Node
	Returning  []Node
	OnConflict *OnConflictNode
}

func (n *InsertStatement) Accept(v Visitor) string { return v.VisitInsertStatement(n) }

// UpdateStatement represents UPDATE ... SET ... WHERE, with assignments in
// the target table's column declaration order.
type UpdateStatement struct {
	Table       *Table
	Assignments []*AssignmentNode
	Wheres      []Node
	Returning   []Node
}

func (n *UpdateStatement) Accept(v Visitor) string { return v.VisitUpdateStatement(n) }

// DeleteStatement represents DELETE FROM ... WHERE.
type DeleteStatement struct {
	From      *Table
	Wheres    []Node
	Returning []Node
}

func (n *DeleteStatement) Accept(v Visitor) string { return v.VisitDeleteStatement(n) }

// OnConflictNode represents ON CONFLICT (...) DO NOTHING / DO UPDATE SET ...
type OnConflictNode struct {
	Targets     []*Attribute // conflict target columns, optional
	Action      OnConflictAction
	Assignments []*AssignmentNode // SET for DO UPDATE
	Wheres      []Node            // WHERE for DO UPDATE
}

func (n *OnConflictNode) Accept(v Visitor) string { return v.VisitOnConflict(n) }
