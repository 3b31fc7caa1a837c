package nodes

// NamedFunctionNode represents a named SQL function call like coalesce or lower.
type NamedFunctionNode struct {
	Predications
	Arithmetics
	Combinable
	Name     string
	Args     []Node
	Distinct bool
}

func (n *NamedFunctionNode) Accept(v Visitor) string { return v.VisitNamedFunction(n) }

// Function creates a NamedFunctionNode. Raw Go argument values are wrapped
// with Literal and thus bound as parameters.
func Function(name string, args ...any) *NamedFunctionNode {
	wrapped := make([]Node, len(args))
	for i, a := range args {
		wrapped[i] = Literal(a)
	}
	n := &NamedFunctionNode{Name: name, Args: wrapped}
	n.Predications.self = n
	n.Arithmetics.self = n
	n.Combinable.self = n
	return n
}
