package nodes

// Column describes one column of a Table: the logical key used in source
// code, the physical name stored in the database, and constraint flags.
// Columns are immutable once their table is constructed.
type Column struct {
	table      *Table // owning table, non-owning back-reference
	key        string
	physical   string
	overridden bool
	primaryKey bool
	notNull    bool
	hasDefault bool
	ref        *Column // foreign-key target, nil if none
}

// Table returns the owning table descriptor.
func (c *Column) Table() *Table { return c.table }

// Key returns the logical column key.
func (c *Column) Key() string { return c.key }

// Physical returns the physical column name. It equals the logical key
// unless the column was declared with an explicit override.
func (c *Column) Physical() string { return c.physical }

// Overridden reports whether the physical name was explicitly declared.
// Overridden names are emitted verbatim, never case-transformed.
func (c *Column) Overridden() bool { return c.overridden }

// PrimaryKey reports whether the column is part of the primary key.
func (c *Column) PrimaryKey() bool { return c.primaryKey }

// NotNull reports whether the column carries a NOT NULL constraint.
func (c *Column) NotNull() bool { return c.notNull }

// HasDefault reports whether the column is generated or carries a database
// default, making it safe to omit from inserts.
func (c *Column) HasDefault() bool { return c.hasDefault }

// Ref returns the foreign-key target column, or nil.
func (c *Column) Ref() *Column { return c.ref }

// ColumnSpec is the fluent descriptor used to declare a column when
// constructing a Table. Specs are consumed by NewTable and must not be
// reused across tables.
type ColumnSpec struct {
	key        string
	physical   string
	overridden bool
	primaryKey bool
	notNull    bool
	hasDefault bool
	ref        *Column
	hasRef     bool
}

// Col starts a column declaration with the given logical key. The physical
// name defaults to the key.
func Col(key string) *ColumnSpec {
	return &ColumnSpec{key: key}
}

// Physical overrides the physical column name. The override is emitted and
// cached exactly as written, bypassing any casing strategy.
func (s *ColumnSpec) Physical(name string) *ColumnSpec {
	s.physical = name
	s.overridden = true
	return s
}

// PrimaryKey marks the column as part of the primary key.
func (s *ColumnSpec) PrimaryKey() *ColumnSpec {
	s.primaryKey = true
	return s
}

// NotNull marks the column NOT NULL.
func (s *ColumnSpec) NotNull() *ColumnSpec {
	s.notNull = true
	return s
}

// Default marks the column as generated or defaulted, so inserts may omit it.
func (s *ColumnSpec) Default() *ColumnSpec {
	s.hasDefault = true
	return s
}

// References declares a foreign key to a column of an already-constructed
// table. Passing nil is a schema-definition error reported by NewTable.
func (s *ColumnSpec) References(target *Column) *ColumnSpec {
	s.ref = target
	// A nil target must still fail construction; record the intent.
	s.hasRef = true
	return s
}
