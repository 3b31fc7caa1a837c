package nodes

// Combinable gives predicates their boolean connectives. Embedding types
// set self to themselves so a chain reads left to right:
// a.And(b).Or(c) builds ((a and b) or c).
type Combinable struct {
	self Node
}

// And joins self and other with the and keyword.
func (c Combinable) And(other Node) *AndNode {
	return NewAndNode(c.self, other)
}

// Or joins self and other with the or keyword. The result comes back
// parenthesized: or binds weaker than and, and a bare or appended to a
// where clause's and-joined conditions would change their meaning.
func (c Combinable) Or(other Node) *GroupingNode {
	g := &GroupingNode{Expr: NewOrNode(c.self, other)}
	g.Combinable.self = g
	return g
}

// Not negates self, compiling as `not (expr)`.
func (c Combinable) Not() *NotNode {
	return NewNotNode(c.self)
}
