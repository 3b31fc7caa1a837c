package nodes

import "fmt"

// DefaultSchema is the schema assumed when none is given. Tables in the
// default schema emit unqualified.
const DefaultSchema = "public"

// Table describes a SQL table: its schema, name, and ordered columns.
// Tables are constructed once and are read-only thereafter.
type Table struct {
	Schema string
	Name   string

	columns []*Column
	byKey   map[string]*Column
}

// NewTable constructs a table in the default "public" schema.
func NewTable(name string, specs ...*ColumnSpec) (*Table, error) {
	return NewTableInSchema(DefaultSchema, name, specs...)
}

// NewTableInSchema constructs a table descriptor. It fails fast on an empty
// schema or table name, a duplicate logical key, or a malformed foreign-key
// target; no partially built descriptor is returned.
func NewTableInSchema(schema, name string, specs ...*ColumnSpec) (*Table, error) {
	if schema == "" {
		return nil, fmt.Errorf("drizzle: table %q: empty schema name", name)
	}
	if name == "" {
		return nil, fmt.Errorf("drizzle: empty table name")
	}
	t := &Table{
		Schema:  schema,
		Name:    name,
		columns: make([]*Column, 0, len(specs)),
		byKey:   make(map[string]*Column, len(specs)),
	}
	for _, s := range specs {
		if s == nil {
			return nil, fmt.Errorf("drizzle: table %q: nil column spec", name)
		}
		if s.key == "" {
			return nil, fmt.Errorf("drizzle: table %q: empty column key", name)
		}
		if _, ok := t.byKey[s.key]; ok {
			return nil, fmt.Errorf("drizzle: table %q: duplicate column %q", name, s.key)
		}
		if s.hasRef && s.ref == nil {
			return nil, fmt.Errorf("drizzle: table %q: column %q references a nil column", name, s.key)
		}
		physical := s.physical
		if !s.overridden {
			physical = s.key
		}
		col := &Column{
			table:      t,
			key:        s.key,
			physical:   physical,
			overridden: s.overridden,
			primaryKey: s.primaryKey,
			notNull:    s.notNull,
			hasDefault: s.hasDefault,
			ref:        s.ref,
		}
		t.columns = append(t.columns, col)
		t.byKey[s.key] = col
	}
	return t, nil
}

// MustTable is NewTable that panics on a schema-definition error.
// Intended for package-level table declarations.
func MustTable(name string, specs ...*ColumnSpec) *Table {
	t, err := NewTable(name, specs...)
	if err != nil {
		panic(err)
	}
	return t
}

// CTETable builds a lightweight table descriptor for referencing a common
// table expression by name. The listed column keys become plain columns
// (physical name equal to the key, no flags).
func CTETable(name string, cols ...string) *Table {
	specs := make([]*ColumnSpec, len(cols))
	for i, c := range cols {
		specs[i] = Col(c)
	}
	t, err := NewTable(name, specs...)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Table) Accept(v Visitor) string { return v.VisitTable(t) }

// Columns returns the columns in declaration order. The returned slice is a
// copy; the descriptor itself stays immutable.
func (t *Table) Columns() []*Column {
	out := make([]*Column, len(t.columns))
	copy(out, t.columns)
	return out
}

// Column looks up a column by logical key.
func (t *Table) Column(key string) (*Column, bool) {
	c, ok := t.byKey[key]
	return c, ok
}

// Col creates an Attribute (column reference) bound to this table.
// Referencing an unknown key is a programming error and panics.
func (t *Table) Col(key string) *Attribute {
	c, ok := t.byKey[key]
	if !ok {
		panic(fmt.Sprintf("drizzle: unknown column %q on table %q", key, t.Name))
	}
	return NewAttribute(t, c)
}

// As creates an aliased view of this table. The alias shares the table's
// column storage; only the qualifying name differs.
func (t *Table) As(name string) *TableAlias {
	return &TableAlias{Relation: t, AliasName: name}
}

// Star creates a qualified star (table.*) for this table.
func (t *Table) Star() *StarNode {
	return &StarNode{Relation: t}
}

// TableAlias represents an aliased reference to a table or subquery.
type TableAlias struct {
	Relation  Node // *Table or *SelectCore
	AliasName string
}

func (ta *TableAlias) Accept(v Visitor) string { return v.VisitTableAlias(ta) }

// Col creates an Attribute bound to this alias. The underlying column
// descriptor is shared with the base table; only the qualifier differs.
// For subquery aliases the column key names the subquery's output label.
func (ta *TableAlias) Col(key string) *Attribute {
	if tbl, ok := ta.Relation.(*Table); ok {
		c, found := tbl.byKey[key]
		if !found {
			panic(fmt.Sprintf("drizzle: unknown column %q on alias %q of table %q", key, ta.AliasName, tbl.Name))
		}
		return NewAttribute(ta, c)
	}
	// Subquery alias: synthesize a loose column for the output label.
	return NewAttribute(ta, &Column{key: key, physical: key})
}

// Star creates a qualified star (alias.*) for this alias.
func (ta *TableAlias) Star() *StarNode {
	return &StarNode{Relation: ta}
}

// RelationName returns the qualifying name of a relation node: the table
// name for a Table, the alias name for a TableAlias.
func RelationName(n Node) string {
	switch r := n.(type) {
	case *Table:
		return r.Name
	case *TableAlias:
		return r.AliasName
	default:
		return ""
	}
}

// SchemaName returns the schema a relation's columns live in. Aliases over
// subqueries fall back to the default schema.
func SchemaName(n Node) string {
	switch r := n.(type) {
	case *Table:
		return r.Schema
	case *TableAlias:
		if tbl, ok := r.Relation.(*Table); ok {
			return tbl.Schema
		}
		return DefaultSchema
	default:
		return DefaultSchema
	}
}
