// Package drizzle provides a fluent SQL compilation engine for Go.
//
// This package re-exports commonly used types and functions from subpackages
// for convenience. Advanced users can import subpackages directly:
//   - github.com/samarjit/drizzle-orm/managers (query builders)
//   - github.com/samarjit/drizzle-orm/nodes (AST nodes and schema model)
//   - github.com/samarjit/drizzle-orm/visitors (dialect SQL generation)
//   - github.com/samarjit/drizzle-orm/casing (identifier casing engine)
//   - github.com/samarjit/drizzle-orm/plugins (query transformers)
package drizzle

import (
	"github.com/samarjit/drizzle-orm/casing"
	"github.com/samarjit/drizzle-orm/managers"
	"github.com/samarjit/drizzle-orm/nodes"
	"github.com/samarjit/drizzle-orm/visitors"
)

// --- Manager Types ---

// SelectManager provides a fluent API for building SELECT queries.
type SelectManager = managers.SelectManager

// InsertManager provides a fluent API for building INSERT statements.
type InsertManager = managers.InsertManager

// UpdateManager provides a fluent API for building UPDATE statements.
type UpdateManager = managers.UpdateManager

// DeleteManager provides a fluent API for building DELETE statements.
type DeleteManager = managers.DeleteManager

// SetManager provides a fluent API for chaining set operations.
type SetManager = managers.SetManager

// --- Manager Constructors ---

// NewSelect creates a new SelectManager with the given relation as FROM.
func NewSelect(from nodes.Node) *managers.SelectManager {
	return managers.NewSelectManager(from)
}

// NewInsert creates a new InsertManager for inserting into the given table.
func NewInsert(into *nodes.Table) *managers.InsertManager {
	return managers.NewInsertManager(into)
}

// NewUpdate creates a new UpdateManager for updating the given table.
func NewUpdate(table *nodes.Table) *managers.UpdateManager {
	return managers.NewUpdateManager(table)
}

// NewDelete creates a new DeleteManager for deleting from the given table.
func NewDelete(from *nodes.Table) *managers.DeleteManager {
	return managers.NewDeleteManager(from)
}

// --- Set Operations ---

// Union combines two or more selects with UNION.
func Union(first *managers.SelectManager, rest ...*managers.SelectManager) *managers.SetManager {
	return managers.Union(first, rest...)
}

// UnionAll combines two or more selects with UNION ALL.
func UnionAll(first *managers.SelectManager, rest ...*managers.SelectManager) *managers.SetManager {
	return managers.UnionAll(first, rest...)
}

// Intersect combines two or more selects with INTERSECT.
func Intersect(first *managers.SelectManager, rest ...*managers.SelectManager) *managers.SetManager {
	return managers.Intersect(first, rest...)
}

// IntersectAll combines two or more selects with INTERSECT ALL.
func IntersectAll(first *managers.SelectManager, rest ...*managers.SelectManager) *managers.SetManager {
	return managers.IntersectAll(first, rest...)
}

// Except combines two or more selects with EXCEPT.
func Except(first *managers.SelectManager, rest ...*managers.SelectManager) *managers.SetManager {
	return managers.Except(first, rest...)
}

// ExceptAll combines two or more selects with EXCEPT ALL.
func ExceptAll(first *managers.SelectManager, rest ...*managers.SelectManager) *managers.SetManager {
	return managers.ExceptAll(first, rest...)
}

// --- Core Node Types ---

// Table represents a SQL table with its declared columns.
type Table = nodes.Table

// Column is a declared table column.
type Column = nodes.Column

// ColumnSpec declares a column when building a table.
type ColumnSpec = nodes.ColumnSpec

// Attribute represents a column reference (e.g. table.column).
type Attribute = nodes.Attribute

// Node is the base interface all AST nodes implement.
type Node = nodes.Node

// --- Schema Constructors ---

// NewTable creates a table in the default schema with the given columns.
func NewTable(name string, cols ...*nodes.ColumnSpec) (*nodes.Table, error) {
	return nodes.NewTable(name, cols...)
}

// NewTableInSchema creates a table in an explicit schema.
func NewTableInSchema(schema, name string, cols ...*nodes.ColumnSpec) (*nodes.Table, error) {
	return nodes.NewTableInSchema(schema, name, cols...)
}

// MustTable is like NewTable but panics on a definition error. Intended
// for package-level schema declarations.
func MustTable(name string, cols ...*nodes.ColumnSpec) *nodes.Table {
	return nodes.MustTable(name, cols...)
}

// Col declares a column with the given logical key.
func Col(key string) *nodes.ColumnSpec {
	return nodes.Col(key)
}

// CTETable builds a lightweight table descriptor for referencing a common
// table expression by name.
func CTETable(name string, cols ...string) *nodes.Table {
	return nodes.CTETable(name, cols...)
}

// --- Common Node Constructors ---

// Literal wraps a Go value as a parameter-bound literal node.
func Literal(value any) nodes.Node {
	return nodes.Literal(value)
}

// Raw builds an opaque SQL fragment from strings, nodes, and values.
// Strings pass through verbatim; values become bound parameters.
func Raw(parts ...any) *nodes.RawNode {
	return nodes.Raw(parts...)
}

// Star creates an unqualified star (*) projection.
func Star() *nodes.StarNode {
	return nodes.Star()
}

// Function creates a named SQL function call node.
func Function(name string, args ...any) *nodes.NamedFunctionNode {
	return nodes.Function(name, args...)
}

// Exists wraps a subquery in an EXISTS predicate.
func Exists(subquery nodes.Node) *nodes.ExistsNode {
	return nodes.Exists(subquery)
}

// NotExists wraps a subquery in a NOT EXISTS predicate.
func NotExists(subquery nodes.Node) *nodes.ExistsNode {
	return nodes.NotExists(subquery)
}

// --- Aggregate Functions ---

// Count creates a COUNT(expr) aggregate.
func Count(expr nodes.Node) *nodes.AggregateNode {
	return nodes.Count(expr)
}

// Sum creates a SUM(expr) aggregate.
func Sum(expr nodes.Node) *nodes.AggregateNode {
	return nodes.Sum(expr)
}

// Avg creates an AVG(expr) aggregate.
func Avg(expr nodes.Node) *nodes.AggregateNode {
	return nodes.Avg(expr)
}

// Min creates a MIN(expr) aggregate.
func Min(expr nodes.Node) *nodes.AggregateNode {
	return nodes.Min(expr)
}

// Max creates a MAX(expr) aggregate.
func Max(expr nodes.Node) *nodes.AggregateNode {
	return nodes.Max(expr)
}

// CountDistinct creates a COUNT(DISTINCT expr) aggregate.
func CountDistinct(expr nodes.Node) *nodes.AggregateNode {
	return nodes.CountDistinct(expr)
}

// --- Visitor Types ---

// SQLiteVisitor generates SQLite-compatible SQL.
type SQLiteVisitor = visitors.SQLiteVisitor

// PostgresVisitor generates PostgreSQL-compatible SQL.
type PostgresVisitor = visitors.PostgresVisitor

// MySQLVisitor generates MySQL-compatible SQL.
type MySQLVisitor = visitors.MySQLVisitor

// FormattingVisitor pretty-prints the SQL produced by an inner visitor.
type FormattingVisitor = visitors.FormattingVisitor

// --- Visitor Constructors ---

// NewSQLiteVisitor creates a new SQLite visitor.
func NewSQLiteVisitor(opts ...visitors.Option) *visitors.SQLiteVisitor {
	return visitors.NewSQLiteVisitor(opts...)
}

// NewPostgresVisitor creates a new PostgreSQL visitor.
func NewPostgresVisitor(opts ...visitors.Option) *visitors.PostgresVisitor {
	return visitors.NewPostgresVisitor(opts...)
}

// NewMySQLVisitor creates a new MySQL visitor.
func NewMySQLVisitor(opts ...visitors.Option) *visitors.MySQLVisitor {
	return visitors.NewMySQLVisitor(opts...)
}

// NewFormattingVisitor wraps an inner dialect visitor with multi-line
// clause formatting.
func NewFormattingVisitor(inner nodes.Visitor) *visitors.FormattingVisitor {
	return visitors.NewFormattingVisitor(inner)
}

// --- Visitor Options ---

// WithCasing sets the identifier casing strategy for a visitor.
func WithCasing(s casing.Strategy) visitors.Option {
	return visitors.WithCasing(s)
}

// WithCache supplies a shared casing cache, so several visitors can reuse
// resolved identifiers.
func WithCache(c *casing.Cache) visitors.Option {
	return visitors.WithCache(c)
}

// --- Casing Re-exports ---

// Strategy selects how logical identifiers map to SQL identifiers.
type Strategy = casing.Strategy

// Casing strategies.
const (
	Preserve  = casing.Preserve
	CamelCase = casing.CamelCase
	SnakeCase = casing.SnakeCase
)

// NewCasingCache creates a memoizing identifier cache for the strategy.
func NewCasingCache(s casing.Strategy) *casing.Cache {
	return casing.NewCache(s)
}
