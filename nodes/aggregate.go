package nodes

// AggregateFunc identifies the aggregate function.
type AggregateFunc int

const (
	AggCount AggregateFunc = iota
	AggSum
	AggAvg
	AggMin
	AggMax
)

// AggregateNode represents an aggregate function call.
type AggregateNode struct {
	Predications
	Arithmetics
	Combinable
	Func     AggregateFunc
	Expr     Node // argument (nil for count(*))
	Distinct bool
	Filter   Node // filter (where ...) clause, nil if not used
}

func (n *AggregateNode) Accept(v Visitor) string { return v.VisitAggregate(n) }

// NewAggregateNode creates an AggregateNode with properly initialised embedded structs.
func NewAggregateNode(fn AggregateFunc, expr Node) *AggregateNode {
	n := &AggregateNode{Func: fn, Expr: expr}
	n.Predications.self = n
	n.Arithmetics.self = n
	n.Combinable.self = n
	return n
}

// Count creates a count aggregate. Pass nil for count(*).
func Count(expr Node) *AggregateNode { return NewAggregateNode(AggCount, expr) }

// Sum creates a sum aggregate.
func Sum(expr Node) *AggregateNode { return NewAggregateNode(AggSum, expr) }

// Avg creates an avg aggregate.
func Avg(expr Node) *AggregateNode { return NewAggregateNode(AggAvg, expr) }

// Min creates a min aggregate.
func Min(expr Node) *AggregateNode { return NewAggregateNode(AggMin, expr) }

// Max creates a max aggregate.
func Max(expr Node) *AggregateNode { return NewAggregateNode(AggMax, expr) }

// CountDistinct creates a count(distinct expr) aggregate.
func CountDistinct(expr Node) *AggregateNode {
	n := NewAggregateNode(AggCount, expr)
	n.Distinct = true
	return n
}

// WithFilter returns a copy of the aggregate with a filter (where ...) clause.
func (n *AggregateNode) WithFilter(condition Node) *AggregateNode {
	out := NewAggregateNode(n.Func, n.Expr)
	out.Distinct = n.Distinct
	out.Filter = condition
	return out
}
