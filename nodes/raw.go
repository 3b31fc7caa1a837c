package nodes

// RawNode mixes verbatim SQL text with interpolated sub-expressions.
// Compilation flattens the parts depth-first, left-to-right: string parts
// are copied verbatim, column references resolve through the casing cache,
// values become bound parameters, and subqueries compile parenthesized
// inline.
//
// SECURITY: string parts are injected verbatim into SQL output. Never pass
// user-controlled input as a string part; wrap it with Literal instead.
type RawNode struct {
	Predications
	Combinable
	Parts []any // string or Node, normalized by Raw
}

// Raw builds a raw fragment from parts. Strings stay verbatim SQL text,
// nodes compile in place, and any other value is bound as a parameter.
// A select builder passed directly is unwrapped to its query core.
func Raw(parts ...any) *RawNode {
	n := &RawNode{Parts: make([]any, len(parts))}
	for i, p := range parts {
		switch v := p.(type) {
		case string:
			n.Parts[i] = v
		case interface{ QueryCore() *SelectCore }:
			n.Parts[i] = v.QueryCore()
		case Node:
			n.Parts[i] = v
		default:
			n.Parts[i] = Literal(v)
		}
	}
	n.Predications.self = n
	n.Combinable.self = n
	return n
}

func (n *RawNode) Accept(v Visitor) string { return v.VisitRaw(n) }
