package nodes

// LiteralNode wraps a raw Go value (string, int, float, bool, etc.) as an
// AST node. Values are never inlined into SQL text: compilation binds them
// as positional parameters, except nil, which renders as the null keyword.
type LiteralNode struct {
	Predications
	Combinable
	Value any
}

func (n *LiteralNode) Accept(v Visitor) string { return v.VisitLiteral(n) }

// DefaultNode renders the SQL default marker, used for insert columns the
// caller omitted.
type DefaultNode struct{}

func (n *DefaultNode) Accept(v Visitor) string { return v.VisitDefault(n) }

// Default returns the shared default marker node.
func Default() *DefaultNode { return defaultMarker }

var defaultMarker = &DefaultNode{}

// StarNode represents a SQL star (*) or qualified star (relation.*).
type StarNode struct {
	Relation Node // nil for unqualified *
}

func (n *StarNode) Accept(v Visitor) string { return v.VisitStar(n) }

// Star returns an unqualified StarNode representing SQL *.
func Star() *StarNode {
	return &StarNode{}
}
