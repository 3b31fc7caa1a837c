// Package visitors provides SQL dialect compilers that walk the AST.
package visitors

import (
	"fmt"
	"strings"

	"github.com/samarjit/drizzle-orm/casing"
	"github.com/samarjit/drizzle-orm/nodes"
)

// Operator SQL strings for InfixOp values.
var infixOpSQL = [...]string{
	nodes.OpPlus:     "+",
	nodes.OpMinus:    "-",
	nodes.OpMultiply: "*",
	nodes.OpDivide:   "/",
	nodes.OpConcat:   "||",
}

// Operator SQL strings for ComparisonOp values.
var comparisonOpSQL = [...]string{
	nodes.OpEq:      "=",
	nodes.OpNotEq:   "!=",
	nodes.OpGt:      ">",
	nodes.OpGtEq:    ">=",
	nodes.OpLt:      "<",
	nodes.OpLtEq:    "<=",
	nodes.OpLike:    "like",
	nodes.OpNotLike: "not like",
}

// Aggregate function SQL names.
var aggregateFuncSQL = [...]string{
	nodes.AggCount: "count",
	nodes.AggSum:   "sum",
	nodes.AggAvg:   "avg",
	nodes.AggMin:   "min",
	nodes.AggMax:   "max",
}

// needsParens returns true if the node should be wrapped in parentheses
// when used as a child of an infix expression.
func needsParens(n nodes.Node) bool {
	_, ok := n.(*nodes.InfixNode)
	return ok
}

// Option configures a visitor at construction time.
type Option func(*baseVisitor)

// WithCasing selects the identifier casing strategy. The visitor gets its
// own private cache bound to the strategy.
func WithCasing(s casing.Strategy) Option {
	return func(b *baseVisitor) {
		b.caser = casing.NewCache(s)
	}
}

// WithCache injects a shared casing cache, e.g. a process-wide instance or
// one constructed per test for isolation.
func WithCache(c *casing.Cache) Option {
	return func(b *baseVisitor) {
		b.caser = c
	}
}

// baseVisitor implements the shared SQL generation logic used by all
// dialects. Dialect visitors embed *baseVisitor and set the outer field to
// themselves, enabling correct virtual dispatch through the Visitor
// interface.
type baseVisitor struct {
	// outer is the concrete dialect visitor. All recursive Accept calls
	// go through outer so that dialect overrides are respected.
	outer nodes.Visitor

	// quoteIdent quotes a SQL identifier (table name, column name).
	quoteIdent func(string) string

	// placeholder returns the bind placeholder for a given parameter index.
	// PostgreSQL uses $1, $2; MySQL/SQLite use ?.
	placeholder func(int) string

	// caser resolves physical column names into display names, memoized
	// per fully-qualified identifier.
	caser *casing.Cache

	// qualify is true while compiling a statement that references more
	// than one relation; attributes on base tables are then emitted
	// qualified. Attributes on aliases always qualify.
	qualify bool

	// scope is the statement's sole FROM relation while qualify is
	// false. An attribute bound to any other relation (a correlated
	// reference to an enclosing statement's table) still qualifies, or
	// the database would rebind it to the inner relation.
	scope nodes.Node

	// params accumulates bind parameter values during SQL generation.
	params []any

	// paramIndex tracks the next parameter number (1-based).
	paramIndex int
}

// applyOptions applies functional options to the baseVisitor.
func (b *baseVisitor) applyOptions(opts []Option) {
	for _, o := range opts {
		o(b)
	}
	if b.caser == nil {
		b.caser = casing.NewCache(casing.Preserve)
	}
}

// Params returns the collected bind parameters from the last SQL generation.
func (b *baseVisitor) Params() []any {
	return b.params
}

// Reset clears collected parameters for reuse. The casing cache is not
// touched; clear it explicitly via Cache().Clear() when isolation matters.
func (b *baseVisitor) Reset() {
	b.params = nil
	b.paramIndex = 0
}

// Cache exposes the visitor's casing cache.
func (b *baseVisitor) Cache() *casing.Cache {
	return b.caser
}

// bindValue appends val to the parameter list and returns its placeholder.
func (b *baseVisitor) bindValue(val any) string {
	b.paramIndex++
	b.params = append(b.params, val)
	return b.placeholder(b.paramIndex)
}

// columnDisplay resolves a column's display name through the casing cache,
// keyed by schema, qualifier, and physical name.
func (b *baseVisitor) columnDisplay(schema, qualifier string, col *nodes.Column) string {
	key := casing.Key(schema, qualifier, col.Physical())
	return b.caser.Resolve(key, col.Physical(), col.Overridden())
}

// tableColumn resolves a column referenced directly through its table
// (insert column lists, set clauses, conflict targets).
func (b *baseVisitor) tableColumn(t *nodes.Table, col *nodes.Column) string {
	return b.columnDisplay(t.Schema, t.Name, col)
}

// setScope switches qualification state for one statement and returns a
// restore function for the enclosing statement. scope is only consulted
// while qualify is false.
func (b *baseVisitor) setScope(qualify bool, scope nodes.Node) func() {
	prevQ, prevS := b.qualify, b.scope
	b.qualify, b.scope = qualify, scope
	return func() { b.qualify, b.scope = prevQ, prevS }
}

func (b *baseVisitor) VisitTable(n *nodes.Table) string {
	if n.Schema != "" && n.Schema != nodes.DefaultSchema {
		return b.quoteIdent(n.Schema) + "." + b.quoteIdent(n.Name)
	}
	return b.quoteIdent(n.Name)
}

func (b *baseVisitor) VisitTableAlias(n *nodes.TableAlias) string {
	if _, ok := n.Relation.(*nodes.Table); ok {
		return n.Relation.Accept(b.outer) + " " + b.quoteIdent(n.AliasName)
	}
	return "(" + n.Relation.Accept(b.outer) + ") " + b.quoteIdent(n.AliasName)
}

func (b *baseVisitor) VisitAttribute(n *nodes.Attribute) string {
	schema := nodes.SchemaName(n.Relation)
	qualifier := nodes.RelationName(n.Relation)
	display := b.columnDisplay(schema, qualifier, n.Column)

	_, aliased := n.Relation.(*nodes.TableAlias)
	if aliased || b.qualify || (b.scope != nil && n.Relation != b.scope) {
		return b.quoteIdent(qualifier) + "." + b.quoteIdent(display)
	}
	return b.quoteIdent(display)
}

func (b *baseVisitor) VisitLiteral(n *nodes.LiteralNode) string {
	// nil always renders as the null keyword, never parameterized.
	if n.Value == nil {
		return "null"
	}
	return b.bindValue(n.Value)
}

func (b *baseVisitor) VisitDefault(*nodes.DefaultNode) string {
	return "default"
}

func (b *baseVisitor) VisitStar(n *nodes.StarNode) string {
	if n.Relation != nil {
		return b.quoteIdent(nodes.RelationName(n.Relation)) + ".*"
	}
	return "*"
}

func (b *baseVisitor) VisitRaw(n *nodes.RawNode) string {
	var sb strings.Builder
	for _, part := range n.Parts {
		switch p := part.(type) {
		case string:
			sb.WriteString(p)
		case *nodes.SelectCore:
			sb.WriteString("(")
			sb.WriteString(p.Accept(b.outer))
			sb.WriteString(")")
		case *nodes.SetOperationNode:
			sb.WriteString("(")
			sb.WriteString(p.Accept(b.outer))
			sb.WriteString(")")
		case nodes.Node:
			sb.WriteString(p.Accept(b.outer))
		default:
			panic(fmt.Sprintf("drizzle: unsupported raw fragment part %T", part))
		}
	}
	return sb.String()
}

func (b *baseVisitor) VisitComparison(n *nodes.ComparisonNode) string {
	left := n.Left.Accept(b.outer)
	right := n.Right.Accept(b.outer)
	return left + " " + comparisonOpSQL[n.Op] + " " + right
}

func (b *baseVisitor) VisitUnary(n *nodes.UnaryNode) string {
	expr := n.Expr.Accept(b.outer)
	switch n.Op {
	case nodes.OpIsNull:
		return expr + " is null"
	case nodes.OpIsNotNull:
		return expr + " is not null"
	default:
		panic(fmt.Sprintf("drizzle: unknown unary operator %d", n.Op))
	}
}

func (b *baseVisitor) VisitAnd(n *nodes.AndNode) string {
	return n.Left.Accept(b.outer) + " and " + n.Right.Accept(b.outer)
}

func (b *baseVisitor) VisitOr(n *nodes.OrNode) string {
	return n.Left.Accept(b.outer) + " or " + n.Right.Accept(b.outer)
}

func (b *baseVisitor) VisitNot(n *nodes.NotNode) string {
	return "not (" + n.Expr.Accept(b.outer) + ")"
}

func (b *baseVisitor) VisitIn(n *nodes.InNode) string {
	expr := n.Expr.Accept(b.outer)
	vals := make([]string, len(n.Vals))
	for i, v := range n.Vals {
		vals[i] = v.Accept(b.outer)
	}
	keyword := "in"
	if n.Negate {
		keyword = "not in"
	}
	return expr + " " + keyword + " (" + strings.Join(vals, ", ") + ")"
}

func (b *baseVisitor) VisitBetween(n *nodes.BetweenNode) string {
	keyword := "between"
	if n.Negate {
		keyword = "not between"
	}
	return n.Expr.Accept(b.outer) + " " + keyword + " " +
		n.Low.Accept(b.outer) + " and " + n.High.Accept(b.outer)
}

func (b *baseVisitor) VisitGrouping(n *nodes.GroupingNode) string {
	return "(" + n.Expr.Accept(b.outer) + ")"
}

func (b *baseVisitor) VisitJoin(n *nodes.JoinNode) string {
	rightSQL := n.Right.Accept(b.outer)
	if _, ok := n.Right.(*nodes.SelectCore); ok {
		rightSQL = "(" + rightSQL + ")"
	}

	var sb strings.Builder
	sb.WriteString(n.Type.String())
	sb.WriteString(" ")
	sb.WriteString(rightSQL)
	if n.On != nil {
		sb.WriteString(" on ")
		sb.WriteString(n.On.Accept(b.outer))
	}
	return sb.String()
}

func (b *baseVisitor) VisitOrdering(n *nodes.OrderingNode) string {
	expr := n.Expr.Accept(b.outer)
	if n.Direction == nodes.Desc {
		expr += " desc"
	} else {
		expr += " asc"
	}
	switch n.Nulls {
	case nodes.NullsFirst:
		expr += " nulls first"
	case nodes.NullsLast:
		expr += " nulls last"
	}
	return expr
}

func (b *baseVisitor) VisitSelectCore(n *nodes.SelectCore) string {
	restore := b.setScope(len(n.Joins) > 0, n.From)
	defer restore()

	var sb strings.Builder
	b.writeCTEs(&sb, n.CTEs)
	sb.WriteString("select ")
	b.writeDistinct(&sb, n.Distinct, n.DistinctOn)
	b.writeProjections(&sb, n.Projections)
	if n.From != nil {
		sb.WriteString(" from ")
		sb.WriteString(n.From.Accept(b.outer))
	}
	for _, j := range n.Joins {
		sb.WriteString(" ")
		sb.WriteString(j.Accept(b.outer))
	}
	b.writeClause(&sb, " where ", n.Wheres, " and ")
	b.writeClause(&sb, " group by ", n.Groups, ", ")
	b.writeClause(&sb, " having ", n.Havings, " and ")
	b.writeClause(&sb, " order by ", n.Orders, ", ")
	b.writeNodeClause(&sb, " limit ", n.Limit)
	b.writeNodeClause(&sb, " offset ", n.Offset)
	return sb.String()
}

// writeClause writes "keyword item1 sep item2 sep ..." if items is non-empty.
func (b *baseVisitor) writeClause(sb *strings.Builder, keyword string, items []nodes.Node, sep string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(keyword)
	for i, item := range items {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(item.Accept(b.outer))
	}
}

// writeNodeClause writes "keyword node" if node is non-nil.
func (b *baseVisitor) writeNodeClause(sb *strings.Builder, keyword string, n nodes.Node) {
	if n != nil {
		sb.WriteString(keyword)
		sb.WriteString(n.Accept(b.outer))
	}
}

func (b *baseVisitor) writeCTEs(sb *strings.Builder, ctes []*nodes.CTENode) {
	if len(ctes) == 0 {
		return
	}
	hasRecursive := false
	for _, cte := range ctes {
		if cte.Recursive {
			hasRecursive = true
			break
		}
	}
	if hasRecursive {
		sb.WriteString("with recursive ")
	} else {
		sb.WriteString("with ")
	}
	for i, cte := range ctes {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(cte.Accept(b.outer))
	}
	sb.WriteString(" ")
}

func (b *baseVisitor) writeDistinct(sb *strings.Builder, distinct bool, distinctOn []nodes.Node) {
	if len(distinctOn) > 0 {
		sb.WriteString("distinct on (")
		for i, c := range distinctOn {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(c.Accept(b.outer))
		}
		sb.WriteString(") ")
	} else if distinct {
		sb.WriteString("distinct ")
	}
}

func (b *baseVisitor) writeProjections(sb *strings.Builder, projections []nodes.Node) {
	if len(projections) == 0 {
		sb.WriteString("*")
		return
	}
	for i, p := range projections {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.Accept(b.outer))
	}
}

func (b *baseVisitor) VisitInsertStatement(n *nodes.InsertStatement) string {
	restore := b.setScope(false, n.Into)
	defer restore()

	var sb strings.Builder
	sb.WriteString("insert into ")
	sb.WriteString(n.Into.Accept(b.outer))

	if len(n.Columns) > 0 {
		sb.WriteString(" (")
		for i, c := range n.Columns {
			if i > 0 {
				sb.WriteString(",")
			}
			sb.WriteString(b.quoteIdent(b.tableColumn(n.Into, c)))
		}
		sb.WriteString(")")
	}

	if len(n.Rows) > 0 {
		sb.WriteString(" values ")
		for i, row := range n.Rows {
			if i > 0 {
				sb.WriteString(",")
			}
			sb.WriteString("(")
			for j, v := range row {
				if j > 0 {
					sb.WriteString(",")
				}
				sb.WriteString(v.Accept(b.outer))
			}
			sb.WriteString(")")
		}
	}

	if n.OnConflict != nil {
		sb.WriteString(" ")
		sb.WriteString(n.OnConflict.Accept(b.outer))
	}
	b.writeClause(&sb, " returning ", n.Returning, ", ")
	return sb.String()
}

func (b *baseVisitor) VisitUpdateStatement(n *nodes.UpdateStatement) string {
	restore := b.setScope(false, n.Table)
	defer restore()

	var sb strings.Builder
	sb.WriteString("update ")
	sb.WriteString(n.Table.Accept(b.outer))
	if len(n.Assignments) > 0 {
		sb.WriteString(" set ")
		for i, a := range n.Assignments {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(a.Accept(b.outer))
		}
	}
	b.writeClause(&sb, " where ", n.Wheres, " and ")
	b.writeClause(&sb, " returning ", n.Returning, ", ")
	return sb.String()
}

func (b *baseVisitor) VisitDeleteStatement(n *nodes.DeleteStatement) string {
	restore := b.setScope(false, n.From)
	defer restore()

	var sb strings.Builder
	sb.WriteString("delete from ")
	sb.WriteString(n.From.Accept(b.outer))
	b.writeClause(&sb, " where ", n.Wheres, " and ")
	b.writeClause(&sb, " returning ", n.Returning, ", ")
	return sb.String()
}

func (b *baseVisitor) VisitAssignment(n *nodes.AssignmentNode) string {
	schema := nodes.SchemaName(n.Column.Relation)
	qualifier := nodes.RelationName(n.Column.Relation)
	display := b.columnDisplay(schema, qualifier, n.Column.Column)
	return b.quoteIdent(display) + " = " + n.Value.Accept(b.outer)
}

func (b *baseVisitor) VisitOnConflict(n *nodes.OnConflictNode) string {
	var sb strings.Builder
	sb.WriteString("on conflict")

	if len(n.Targets) > 0 {
		sb.WriteString(" (")
		for i, t := range n.Targets {
			if i > 0 {
				sb.WriteString(",")
			}
			schema := nodes.SchemaName(t.Relation)
			qualifier := nodes.RelationName(t.Relation)
			sb.WriteString(b.quoteIdent(b.columnDisplay(schema, qualifier, t.Column)))
		}
		sb.WriteString(")")
	}

	if n.Action == nodes.DoNothing {
		sb.WriteString(" do nothing")
		return sb.String()
	}

	sb.WriteString(" do update set ")
	for i, a := range n.Assignments {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.Accept(b.outer))
	}
	b.writeClause(&sb, " where ", n.Wheres, " and ")
	return sb.String()
}

func (b *baseVisitor) VisitInfix(n *nodes.InfixNode) string {
	left := n.Left.Accept(b.outer)
	if needsParens(n.Left) {
		left = "(" + left + ")"
	}
	right := n.Right.Accept(b.outer)
	if needsParens(n.Right) {
		right = "(" + right + ")"
	}
	return left + " " + infixOpSQL[n.Op] + " " + right
}

func (b *baseVisitor) VisitAggregate(n *nodes.AggregateNode) string {
	var sb strings.Builder
	sb.WriteString(aggregateFuncSQL[n.Func])
	sb.WriteString("(")
	if n.Distinct {
		sb.WriteString("distinct ")
	}
	if n.Expr == nil {
		sb.WriteString("*")
	} else {
		sb.WriteString(n.Expr.Accept(b.outer))
	}
	sb.WriteString(")")
	if n.Filter != nil {
		sb.WriteString(" filter (where ")
		sb.WriteString(n.Filter.Accept(b.outer))
		sb.WriteString(")")
	}
	return sb.String()
}

func (b *baseVisitor) VisitNamedFunction(n *nodes.NamedFunctionNode) string {
	validateSQLFunctionName(n.Name)
	var sb strings.Builder
	sb.WriteString(n.Name)
	sb.WriteString("(")
	if n.Distinct {
		sb.WriteString("distinct ")
	}
	for i, arg := range n.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(arg.Accept(b.outer))
	}
	sb.WriteString(")")
	return sb.String()
}

func (b *baseVisitor) VisitExists(n *nodes.ExistsNode) string {
	var sb strings.Builder
	if n.Negated {
		sb.WriteString("not ")
	}
	sb.WriteString("exists (")
	sb.WriteString(n.Subquery.Accept(b.outer))
	sb.WriteString(")")
	return sb.String()
}

func (b *baseVisitor) VisitSetOperation(n *nodes.SetOperationNode) string {
	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(n.Left.Accept(b.outer))
	sb.WriteString(") ")
	sb.WriteString(n.Type.String())
	sb.WriteString(" (")
	sb.WriteString(n.Right.Accept(b.outer))
	sb.WriteString(")")
	return sb.String()
}

func (b *baseVisitor) VisitCTE(n *nodes.CTENode) string {
	var sb strings.Builder
	sb.WriteString(b.quoteIdent(n.Name))
	if len(n.Columns) > 0 {
		sb.WriteString(" (")
		for i, c := range n.Columns {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(b.quoteIdent(c))
		}
		sb.WriteString(")")
	}
	sb.WriteString(" as ")
	switch n.Materialization {
	case nodes.Materialized:
		sb.WriteString("materialized ")
	case nodes.NotMaterialized:
		sb.WriteString("not materialized ")
	}
	sb.WriteString("(")
	sb.WriteString(n.Query.Accept(b.outer))
	sb.WriteString(")")
	return sb.String()
}

func (b *baseVisitor) VisitAlias(n *nodes.AliasNode) string {
	return n.Expr.Accept(b.outer) + " as " + b.quoteIdent(n.Name)
}

// validateSQLFunctionName panics if the function name contains characters
// outside the set of letters, digits, and underscores.
// This prevents SQL injection through crafted function names.
func validateSQLFunctionName(name string) {
	for _, c := range name {
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') &&
			(c < '0' || c > '9') && c != '_' {
			panic(fmt.Sprintf("drizzle: invalid SQL function name character %q in %q", string(c), name))
		}
	}
}
