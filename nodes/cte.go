package nodes

// Materialization controls whether a CTE body is materialized. Resolved
// independently per CTE name.
type Materialization int

const (
	MaterializeDefault Materialization = iota
	Materialized
	NotMaterialized
)

// CTENode represents one common table expression in a WITH clause.
type CTENode struct {
	Name            string
	Query           Node
	Recursive       bool
	Materialization Materialization
	Columns         []string // optional column list
}

func (n *CTENode) Accept(v Visitor) string { return v.VisitCTE(n) }
