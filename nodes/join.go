package nodes

// JoinType represents the type of SQL JOIN.
type JoinType int

const (
	InnerJoin JoinType = iota
	LeftJoin
	RightJoin
	FullJoin
	CrossJoin
)

// String returns the display name for this join type.
func (t JoinType) String() string {
	switch t {
	case InnerJoin:
		return "inner join"
	case LeftJoin:
		return "left join"
	case RightJoin:
		return "right join"
	case FullJoin:
		return "full join"
	case CrossJoin:
		return "cross join"
	default:
		return "join"
	}
}

// JoinNode represents a SQL JOIN clause.
type JoinNode struct {
	Left  Node     // source relation
	Right Node     // target table, alias, or subquery
	Type  JoinType // join type
	On    Node     // join condition (nil for cross join)
}

func (n *JoinNode) Accept(v Visitor) string { return v.VisitJoin(n) }
