package visitors

import (
	"github.com/samarjit/drizzle-orm/internal/quoting"
	"github.com/samarjit/drizzle-orm/nodes"
)

// SQLiteVisitor compiles SQLite-dialect SQL.
// Identifiers are quoted with double quotes (ANSI SQL); parameters bind as ?.
type SQLiteVisitor struct {
	*baseVisitor
}

// NewSQLiteVisitor creates a SQLiteVisitor.
func NewSQLiteVisitor(opts ...Option) *SQLiteVisitor {
	v := &SQLiteVisitor{}
	v.baseVisitor = &baseVisitor{
		outer:       v,
		quoteIdent:  quoting.DoubleQuote,
		placeholder: func(int) string { return "?" },
	}
	v.applyOptions(opts)
	return v
}

// VisitTable emits bare table names: SQLite has no schema namespaces in the
// PostgreSQL sense.
func (v *SQLiteVisitor) VisitTable(n *nodes.Table) string {
	return v.quoteIdent(n.Name)
}
