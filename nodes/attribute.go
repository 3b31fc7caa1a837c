package nodes

// Attribute represents a column reference bound to a table or table alias.
// It carries the column descriptor so the compiler can resolve the display
// name through the casing cache.
type Attribute struct {
	Predications
	Arithmetics
	Combinable
	Column   *Column
	Relation Node // *Table or *TableAlias the reference was created through
}

// NewAttribute creates an Attribute with Predications, Arithmetics and
// Combinable properly initialized to reference the new Attribute as self.
func NewAttribute(relation Node, col *Column) *Attribute {
	a := &Attribute{Column: col, Relation: relation}
	a.Predications.self = a
	a.Arithmetics.self = a
	a.Combinable.self = a
	return a
}

func (a *Attribute) Accept(v Visitor) string { return v.VisitAttribute(a) }
