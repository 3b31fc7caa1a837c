package nodes

// SetOpType represents the type of set operation.
type SetOpType int

const (
	Union SetOpType = iota
	UnionAll
	Intersect
	IntersectAll
	Except
	ExceptAll
)

// String returns the SQL keyword for this set operation type.
func (t SetOpType) String() string {
	switch t {
	case Union:
		return "union"
	case UnionAll:
		return "union all"
	case Intersect:
		return "intersect"
	case IntersectAll:
		return "intersect all"
	case Except:
		return "except"
	case ExceptAll:
		return "except all"
	default:
		return "union"
	}
}

// SetOperationNode represents a set operation between two queries. Operands
// are SelectCore values or nested SetOperationNode values.
type SetOperationNode struct {
	Left  Node
	Right Node
	Type  SetOpType
}

func (n *SetOperationNode) Accept(v Visitor) string { return v.VisitSetOperation(n) }
