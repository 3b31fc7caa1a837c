package visitors

import (
	"github.com/samarjit/drizzle-orm/internal/quoting"
	"github.com/samarjit/drizzle-orm/nodes"
)

// MySQLVisitor compiles MySQL-dialect SQL.
// Identifiers are quoted with backticks; parameters bind as ?.
type MySQLVisitor struct {
	*baseVisitor
}

// NewMySQLVisitor creates a MySQLVisitor.
func NewMySQLVisitor(opts ...Option) *MySQLVisitor {
	v := &MySQLVisitor{}
	v.baseVisitor = &baseVisitor{
		outer:       v,
		quoteIdent:  quoting.Backtick,
		placeholder: func(int) string { return "?" },
	}
	v.applyOptions(opts)
	return v
}

// VisitInfix renders || as concat(): MySQL treats || as logical OR by default.
func (v *MySQLVisitor) VisitInfix(n *nodes.InfixNode) string {
	if n.Op == nodes.OpConcat {
		return "concat(" + n.Left.Accept(v) + ", " + n.Right.Accept(v) + ")"
	}
	return v.baseVisitor.VisitInfix(n)
}
