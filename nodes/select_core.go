package nodes

// SelectCore is the data container for a SELECT query. The fluent API for
// building queries lives in the managers package.
type SelectCore struct {
	From        Node
	Projections []Node
	Wheres      []Node
	Joins       []*JoinNode
	Groups      []Node // GROUP BY expressions
	Havings     []Node // HAVING conditions
	Orders      []Node // OrderingNode values
	Limit       Node   // nil or LiteralNode
	Offset      Node   // nil or LiteralNode
	Distinct    bool
	DistinctOn  []Node     // DISTINCT ON columns (PostgreSQL)
	CTEs        []*CTENode // WITH clause
}

func (n *SelectCore) Accept(v Visitor) string { return v.VisitSelectCore(n) }
