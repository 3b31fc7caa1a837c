package nodes

// Boolean connective nodes. and/or render infix without parentheses of
// their own; precedence is expressed structurally through GroupingNode,
// which is why Combinable.Or wraps its result.

// AndNode compiles as `left and right`.
type AndNode struct {
	Combinable
	Left  Node
	Right Node
}

// NewAndNode creates an AndNode with its embedded method set initialised.
func NewAndNode(left, right Node) *AndNode {
	n := &AndNode{Left: left, Right: right}
	n.Combinable.self = n
	return n
}

func (n *AndNode) Accept(v Visitor) string { return v.VisitAnd(n) }

// OrNode compiles as `left or right`.
type OrNode struct {
	Combinable
	Left  Node
	Right Node
}

// NewOrNode creates an OrNode with its embedded method set initialised.
func NewOrNode(left, right Node) *OrNode {
	n := &OrNode{Left: left, Right: right}
	n.Combinable.self = n
	return n
}

func (n *OrNode) Accept(v Visitor) string { return v.VisitOr(n) }

// NotNode compiles as `not (expr)`.
type NotNode struct {
	Combinable
	Expr Node
}

// NewNotNode creates a NotNode with its embedded method set initialised.
func NewNotNode(expr Node) *NotNode {
	n := &NotNode{Expr: expr}
	n.Combinable.self = n
	return n
}

func (n *NotNode) Accept(v Visitor) string { return v.VisitNot(n) }
