package nodes

import (
	"strings"
	"testing"
)

func usersTable(t *testing.T) *Table {
	t.Helper()
	tbl, err := NewTable("users",
		Col("id").PrimaryKey().Default(),
		Col("first_name").NotNull(),
		Col("last_name"),
		Col("age").Physical("AGE"),
	)
	if err != nil {
		t.Fatalf("table construction: %v", err)
	}
	return tbl
}

// --- NewTable ---

func TestNewTableColumnsInDeclarationOrder(t *testing.T) {
	t.Parallel()
	tbl := usersTable(t)
	cols := tbl.Columns()
	want := []string{"id", "first_name", "last_name", "age"}
	if len(cols) != len(want) {
		t.Fatalf("expected %d columns, got %d", len(want), len(cols))
	}
	for i, key := range want {
		if cols[i].Key() != key {
			t.Errorf("column %d: expected %q, got %q", i, key, cols[i].Key())
		}
	}
}

func TestNewTableDefaultSchema(t *testing.T) {
	t.Parallel()
	tbl := usersTable(t)
	if tbl.Schema != DefaultSchema {
		t.Errorf("expected schema %q, got %q", DefaultSchema, tbl.Schema)
	}
}

func TestNewTableInSchema(t *testing.T) {
	t.Parallel()
	tbl, err := NewTableInSchema("audit", "events", Col("id"))
	if err != nil {
		t.Fatal(err)
	}
	if tbl.Schema != "audit" {
		t.Errorf("expected schema audit, got %q", tbl.Schema)
	}
}

func TestNewTableEmptyNameFails(t *testing.T) {
	t.Parallel()
	if _, err := NewTable(""); err == nil {
		t.Error("expected error for empty table name")
	}
}

func TestNewTableEmptySchemaFails(t *testing.T) {
	t.Parallel()
	if _, err := NewTableInSchema("", "users"); err == nil {
		t.Error("expected error for empty schema name")
	}
}

func TestNewTableDuplicateKeyFails(t *testing.T) {
	t.Parallel()
	_, err := NewTable("users", Col("id"), Col("id"))
	if err == nil {
		t.Fatal("expected duplicate-key error")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestNewTableEmptyColumnKeyFails(t *testing.T) {
	t.Parallel()
	if _, err := NewTable("users", Col("")); err == nil {
		t.Error("expected error for empty column key")
	}
}

func TestNewTableNilReferenceFails(t *testing.T) {
	t.Parallel()
	_, err := NewTable("posts", Col("author_id").References(nil))
	if err == nil {
		t.Fatal("expected error for nil foreign-key target")
	}
	if !strings.Contains(err.Error(), "references a nil column") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestNewTableReference(t *testing.T) {
	t.Parallel()
	users := usersTable(t)
	id, _ := users.Column("id")
	posts, err := NewTable("posts", Col("id").PrimaryKey(), Col("author_id").References(id))
	if err != nil {
		t.Fatal(err)
	}
	author, _ := posts.Column("author_id")
	if author.Ref() != id {
		t.Error("expected author_id to reference users.id")
	}
}

func TestMustTablePanicsOnError(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Error("expected panic from MustTable")
		}
	}()
	MustTable("users", Col("id"), Col("id"))
}

// --- Column flags ---

func TestColumnFlags(t *testing.T) {
	t.Parallel()
	tbl := usersTable(t)

	id, _ := tbl.Column("id")
	if !id.PrimaryKey() || !id.HasDefault() {
		t.Error("id should be a primary key with a default")
	}
	first, _ := tbl.Column("first_name")
	if !first.NotNull() {
		t.Error("first_name should be not null")
	}
	if first.Overridden() {
		t.Error("first_name has no physical override")
	}
	if first.Physical() != "first_name" {
		t.Errorf("physical defaults to the key, got %q", first.Physical())
	}

	age, _ := tbl.Column("age")
	if !age.Overridden() || age.Physical() != "AGE" {
		t.Errorf("age override lost: overridden=%v physical=%q", age.Overridden(), age.Physical())
	}
	if age.Table() != tbl {
		t.Error("column lost its owning table")
	}
}

func TestColumnsReturnsCopy(t *testing.T) {
	t.Parallel()
	tbl := usersTable(t)
	cols := tbl.Columns()
	cols[0] = nil
	if tbl.Columns()[0] == nil {
		t.Error("mutating the returned slice affected the descriptor")
	}
}

// --- Col / attributes ---

func TestColBindsRelationAndColumn(t *testing.T) {
	t.Parallel()
	tbl := usersTable(t)
	attr := tbl.Col("first_name")
	if attr.Relation != tbl {
		t.Error("attribute lost its relation")
	}
	if attr.Column.Key() != "first_name" {
		t.Errorf("attribute bound to wrong column %q", attr.Column.Key())
	}
}

func TestColPanicsOnUnknownKey(t *testing.T) {
	t.Parallel()
	tbl := usersTable(t)
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown column")
		}
	}()
	tbl.Col("nope")
}

// --- Aliases ---

func TestAliasSharesColumns(t *testing.T) {
	t.Parallel()
	tbl := usersTable(t)
	u := tbl.As("u")

	attr := u.Col("first_name")
	base, _ := tbl.Column("first_name")
	if attr.Column != base {
		t.Error("alias must share the base table's column descriptors")
	}
	if attr.Relation != u {
		t.Error("alias attribute must qualify through the alias")
	}
}

func TestAliasColPanicsOnUnknownKey(t *testing.T) {
	t.Parallel()
	u := usersTable(t).As("u")
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown column on alias")
		}
	}()
	u.Col("nope")
}

func TestSubqueryAliasSynthesizesColumns(t *testing.T) {
	t.Parallel()
	sub := &TableAlias{Relation: &SelectCore{}, AliasName: "sq"}
	attr := sub.Col("total")
	if attr.Column.Key() != "total" || attr.Column.Physical() != "total" {
		t.Error("subquery alias columns use the output label verbatim")
	}
}

// --- Relation helpers ---

func TestRelationName(t *testing.T) {
	t.Parallel()
	tbl := usersTable(t)
	if RelationName(tbl) != "users" {
		t.Error("table relation name")
	}
	if RelationName(tbl.As("u")) != "u" {
		t.Error("alias relation name")
	}
	if RelationName(Literal(1)) != "" {
		t.Error("non-relation nodes have no name")
	}
}

func TestSchemaName(t *testing.T) {
	t.Parallel()
	events, err := NewTableInSchema("audit", "events", Col("id"))
	if err != nil {
		t.Fatal(err)
	}
	if SchemaName(events) != "audit" {
		t.Error("table schema")
	}
	if SchemaName(events.As("e")) != "audit" {
		t.Error("alias inherits the base table's schema")
	}
	sub := &TableAlias{Relation: &SelectCore{}, AliasName: "sq"}
	if SchemaName(sub) != DefaultSchema {
		t.Error("subquery alias falls back to the default schema")
	}
}

// --- CTETable ---

func TestCTETable(t *testing.T) {
	t.Parallel()
	sales := CTETable("regional_sales", "region", "total")
	cols := sales.Columns()
	if len(cols) != 2 || cols[0].Key() != "region" || cols[1].Key() != "total" {
		t.Fatalf("unexpected columns %v", cols)
	}
	if cols[0].Overridden() {
		t.Error("cte columns carry no overrides")
	}
}
