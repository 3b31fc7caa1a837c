package visitors

import (
	"strings"

	"github.com/samarjit/drizzle-orm/casing"
	"github.com/samarjit/drizzle-orm/nodes"
)

// FormattingVisitor wraps a dialect visitor and produces human-readable
// multi-line SQL: each major clause of a statement renders on its own line.
// Expression-level nodes delegate to the wrapped dialect unchanged, so
// placeholders, params, and identifier casing behave identically.
type FormattingVisitor struct {
	inner nodes.Visitor
}

var _ nodes.Visitor = (*FormattingVisitor)(nil)
var _ nodes.Parameterizer = (*FormattingVisitor)(nil)

// base exposes the shared state of a dialect visitor constructed in this
// package, letting the formatter keep qualification handling consistent.
func (b *baseVisitor) base() *baseVisitor { return b }

type baseProvider interface {
	base() *baseVisitor
}

// NewFormattingVisitor constructs a FormattingVisitor wrapping the given
// dialect visitor.
func NewFormattingVisitor(inner nodes.Visitor) *FormattingVisitor {
	if inner == nil {
		panic("drizzle: FormattingVisitor requires a non-nil inner visitor")
	}
	return &FormattingVisitor{inner: inner}
}

// Params delegates to the inner visitor if it collects parameters.
func (f *FormattingVisitor) Params() []any {
	if p, ok := f.inner.(nodes.Parameterizer); ok {
		return p.Params()
	}
	return nil
}

// Reset delegates to the inner visitor if it collects parameters.
func (f *FormattingVisitor) Reset() {
	if p, ok := f.inner.(nodes.Parameterizer); ok {
		p.Reset()
	}
}

// Cache exposes the inner visitor's casing cache, if any.
func (f *FormattingVisitor) Cache() *casing.Cache {
	if bp, ok := f.inner.(baseProvider); ok {
		return bp.base().Cache()
	}
	return nil
}

// setScope adjusts the inner visitor's qualification state while the
// formatter renders a statement's clauses itself.
func (f *FormattingVisitor) setScope(qualify bool, scope nodes.Node) func() {
	if bp, ok := f.inner.(baseProvider); ok {
		return bp.base().setScope(qualify, scope)
	}
	return func() {}
}

// --- multi-line statement rendering ---

func (f *FormattingVisitor) VisitSelectCore(n *nodes.SelectCore) string {
	restore := f.setScope(len(n.Joins) > 0, n.From)
	defer restore()

	var lines []string
	if len(n.CTEs) > 0 {
		ctes := make([]string, len(n.CTEs))
		recursive := false
		for i, cte := range n.CTEs {
			ctes[i] = cte.Accept(f)
			recursive = recursive || cte.Recursive
		}
		keyword := "with "
		if recursive {
			keyword = "with recursive "
		}
		lines = append(lines, keyword+strings.Join(ctes, ", "))
	}

	var sel strings.Builder
	sel.WriteString("select ")
	if len(n.DistinctOn) > 0 {
		sel.WriteString("distinct on (")
		for i, c := range n.DistinctOn {
			if i > 0 {
				sel.WriteString(", ")
			}
			sel.WriteString(c.Accept(f))
		}
		sel.WriteString(") ")
	} else if n.Distinct {
		sel.WriteString("distinct ")
	}
	if len(n.Projections) == 0 {
		sel.WriteString("*")
	} else {
		for i, p := range n.Projections {
			if i > 0 {
				sel.WriteString(", ")
			}
			sel.WriteString(p.Accept(f))
		}
	}
	lines = append(lines, sel.String())

	if n.From != nil {
		lines = append(lines, "from "+n.From.Accept(f))
	}
	for _, j := range n.Joins {
		lines = append(lines, j.Accept(f))
	}
	lines = appendJoined(lines, "where ", n.Wheres, " and ", f)
	lines = appendJoined(lines, "group by ", n.Groups, ", ", f)
	lines = appendJoined(lines, "having ", n.Havings, " and ", f)
	lines = appendJoined(lines, "order by ", n.Orders, ", ", f)
	if n.Limit != nil {
		lines = append(lines, "limit "+n.Limit.Accept(f))
	}
	if n.Offset != nil {
		lines = append(lines, "offset "+n.Offset.Accept(f))
	}
	return strings.Join(lines, "\n")
}

func appendJoined(lines []string, keyword string, items []nodes.Node, sep string, v nodes.Visitor) []string {
	if len(items) == 0 {
		return lines
	}
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = item.Accept(v)
	}
	return append(lines, keyword+strings.Join(parts, sep))
}

func (f *FormattingVisitor) VisitInsertStatement(n *nodes.InsertStatement) string {
	restore := f.setScope(false, n.Into)
	defer restore()

	// Reuse the dialect's single-line insert, splitting at clause seams.
	sql := f.inner.VisitInsertStatement(n)
	for _, seam := range []string{" values ", " on conflict", " returning "} {
		sql = strings.Replace(sql, seam, "\n"+strings.TrimPrefix(seam, " "), 1)
	}
	return sql
}

func (f *FormattingVisitor) VisitUpdateStatement(n *nodes.UpdateStatement) string {
	restore := f.setScope(false, n.Table)
	defer restore()

	var lines []string
	lines = append(lines, "update "+n.Table.Accept(f))
	lines = appendJoined(lines, "set ", assignmentNodes(n.Assignments), ", ", f)
	lines = appendJoined(lines, "where ", n.Wheres, " and ", f)
	lines = appendJoined(lines, "returning ", n.Returning, ", ", f)
	return strings.Join(lines, "\n")
}

func (f *FormattingVisitor) VisitDeleteStatement(n *nodes.DeleteStatement) string {
	restore := f.setScope(false, n.From)
	defer restore()

	var lines []string
	lines = append(lines, "delete from "+n.From.Accept(f))
	lines = appendJoined(lines, "where ", n.Wheres, " and ", f)
	lines = appendJoined(lines, "returning ", n.Returning, ", ", f)
	return strings.Join(lines, "\n")
}

func (f *FormattingVisitor) VisitSetOperation(n *nodes.SetOperationNode) string {
	return "(" + n.Left.Accept(f) + ")\n" + n.Type.String() + "\n(" + n.Right.Accept(f) + ")"
}

func assignmentNodes(assignments []*nodes.AssignmentNode) []nodes.Node {
	out := make([]nodes.Node, len(assignments))
	for i, a := range assignments {
		out[i] = a
	}
	return out
}

// --- delegation for all remaining node kinds ---

func (f *FormattingVisitor) VisitTable(n *nodes.Table) string       { return f.inner.VisitTable(n) }
func (f *FormattingVisitor) VisitTableAlias(n *nodes.TableAlias) string {
	return f.inner.VisitTableAlias(n)
}
func (f *FormattingVisitor) VisitAttribute(n *nodes.Attribute) string {
	return f.inner.VisitAttribute(n)
}
func (f *FormattingVisitor) VisitLiteral(n *nodes.LiteralNode) string {
	return f.inner.VisitLiteral(n)
}
func (f *FormattingVisitor) VisitDefault(n *nodes.DefaultNode) string {
	return f.inner.VisitDefault(n)
}
func (f *FormattingVisitor) VisitStar(n *nodes.StarNode) string { return f.inner.VisitStar(n) }
func (f *FormattingVisitor) VisitRaw(n *nodes.RawNode) string   { return f.inner.VisitRaw(n) }
func (f *FormattingVisitor) VisitComparison(n *nodes.ComparisonNode) string {
	return f.inner.VisitComparison(n)
}
func (f *FormattingVisitor) VisitUnary(n *nodes.UnaryNode) string { return f.inner.VisitUnary(n) }
func (f *FormattingVisitor) VisitAnd(n *nodes.AndNode) string     { return f.inner.VisitAnd(n) }
func (f *FormattingVisitor) VisitOr(n *nodes.OrNode) string       { return f.inner.VisitOr(n) }
func (f *FormattingVisitor) VisitNot(n *nodes.NotNode) string     { return f.inner.VisitNot(n) }
func (f *FormattingVisitor) VisitIn(n *nodes.InNode) string       { return f.inner.VisitIn(n) }
func (f *FormattingVisitor) VisitBetween(n *nodes.BetweenNode) string {
	return f.inner.VisitBetween(n)
}
func (f *FormattingVisitor) VisitGrouping(n *nodes.GroupingNode) string {
	return f.inner.VisitGrouping(n)
}
func (f *FormattingVisitor) VisitJoin(n *nodes.JoinNode) string { return f.inner.VisitJoin(n) }
func (f *FormattingVisitor) VisitOrdering(n *nodes.OrderingNode) string {
	return f.inner.VisitOrdering(n)
}
func (f *FormattingVisitor) VisitAssignment(n *nodes.AssignmentNode) string {
	return f.inner.VisitAssignment(n)
}
func (f *FormattingVisitor) VisitOnConflict(n *nodes.OnConflictNode) string {
	return f.inner.VisitOnConflict(n)
}
func (f *FormattingVisitor) VisitInfix(n *nodes.InfixNode) string { return f.inner.VisitInfix(n) }
func (f *FormattingVisitor) VisitAggregate(n *nodes.AggregateNode) string {
	return f.inner.VisitAggregate(n)
}
func (f *FormattingVisitor) VisitNamedFunction(n *nodes.NamedFunctionNode) string {
	return f.inner.VisitNamedFunction(n)
}
func (f *FormattingVisitor) VisitExists(n *nodes.ExistsNode) string { return f.inner.VisitExists(n) }
func (f *FormattingVisitor) VisitCTE(n *nodes.CTENode) string       { return f.inner.VisitCTE(n) }
func (f *FormattingVisitor) VisitAlias(n *nodes.AliasNode) string   { return f.inner.VisitAlias(n) }
