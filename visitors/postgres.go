package visitors

import (
	"fmt"

	"github.com/samarjit/drizzle-orm/internal/quoting"
)

// PostgresVisitor compiles PostgreSQL-dialect SQL.
// Identifiers are quoted with double quotes and parameters bind as $1, $2, ...
type PostgresVisitor struct {
	*baseVisitor
}

// NewPostgresVisitor creates a PostgresVisitor. Pass WithCasing or
// WithCache to control identifier casing; the default preserves physical
// names.
func NewPostgresVisitor(opts ...Option) *PostgresVisitor {
	v := &PostgresVisitor{}
	v.baseVisitor = &baseVisitor{
		outer:       v,
		quoteIdent:  quoting.DoubleQuote,
		placeholder: func(i int) string { return fmt.Sprintf("$%d", i) },
	}
	v.applyOptions(opts)
	return v
}
