package visitors

import (
	"testing"

	"github.com/samarjit/drizzle-orm/internal/testutil"
	"github.com/samarjit/drizzle-orm/managers"
	"github.com/samarjit/drizzle-orm/nodes"
)

func fmtPg() *FormattingVisitor {
	return NewFormattingVisitor(NewPostgresVisitor())
}

func TestNewFormattingVisitorRequiresInner(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Error("expected panic for nil inner visitor")
		}
	}()
	NewFormattingVisitor(nil)
}

func TestFormattedSelectOneClausePerLine(t *testing.T) {
	t.Parallel()
	users := usersTable(t)
	m := managers.NewSelectManager(users).
		Select(users.Col("first_name")).
		Where(users.Col("age").GtEq(18)).
		Order(users.Col("last_name").Asc()).
		Limit(10).
		Offset(5)

	sql, params, err := m.ToSQL(fmtPg())
	testutil.AssertNoError(t, err)
	want := `select "first_name"` + "\n" +
		`from "users"` + "\n" +
		`where "AGE" >= $1` + "\n" +
		`order by "last_name" asc` + "\n" +
		`limit $2` + "\n" +
		`offset $3`
	testutil.AssertEqual(t, sql, want)
	if len(params) != 3 {
		t.Errorf("expected 3 params, got %v", params)
	}
}

func TestFormattedSelectJoinLineAndGrouping(t *testing.T) {
	t.Parallel()
	users := usersTable(t)
	u2 := users.As("u2")
	m := managers.NewSelectManager(users).
		Select(users.Col("first_name"), nodes.Count(nil).As("n")).
		Join(u2, users.Col("id").Eq(u2.Col("id"))).
		Group(users.Col("first_name")).
		Having(nodes.Count(nil).Gt(1))

	sql, _, err := m.ToSQL(fmtPg())
	testutil.AssertNoError(t, err)
	want := `select "users"."first_name", count(*) as "n"` + "\n" +
		`from "users"` + "\n" +
		`inner join "users" "u2" on "users"."id" = "u2"."id"` + "\n" +
		`group by "users"."first_name"` + "\n" +
		`having count(*) > $1`
	testutil.AssertEqual(t, sql, want)
}

func TestFormattedSelectCTELine(t *testing.T) {
	t.Parallel()
	users := usersTable(t)
	adults := nodes.CTETable("adults")
	inner := managers.NewSelectManager(users).
		Select(users.Col("id")).
		Where(users.Col("age").GtEq(18))
	m := managers.NewSelectManager(adults).With("adults", inner)

	sql, _, err := m.ToSQL(fmtPg())
	testutil.AssertNoError(t, err)
	want := `with "adults" as (select "id" from "users" where "AGE" >= $1)` + "\n" +
		`select *` + "\n" +
		`from "adults"`
	testutil.AssertEqual(t, sql, want)
}

func TestFormattedInsertSplitsAtClauseSeams(t *testing.T) {
	t.Parallel()
	users := usersTable(t)
	m := managers.NewInsertManager(users).
		Values(map[string]any{"first_name": "Ada", "last_name": "Lovelace"}).
		OnConflictDoNothing(users.Col("id")).
		Returning(users.Col("id"))

	sql, _, err := m.ToSQL(fmtPg())
	testutil.AssertNoError(t, err)
	want := `insert into "users" ("id","first_name","last_name","AGE")` + "\n" +
		`values (default,$1,$2,default)` + "\n" +
		`on conflict ("id") do nothing` + "\n" +
		`returning "id"`
	testutil.AssertEqual(t, sql, want)
}

func TestFormattedUpdatePerLine(t *testing.T) {
	t.Parallel()
	users := usersTable(t)
	m := managers.NewUpdateManager(users).
		Set(map[string]any{"first_name": "Ada"}).
		Where(users.Col("id").Eq(7)).
		Returning(users.Col("id"))

	sql, _, err := m.ToSQL(fmtPg())
	testutil.AssertNoError(t, err)
	want := `update "users"` + "\n" +
		`set "first_name" = $1` + "\n" +
		`where "id" = $2` + "\n" +
		`returning "id"`
	testutil.AssertEqual(t, sql, want)
}

func TestFormattedDeletePerLine(t *testing.T) {
	t.Parallel()
	users := usersTable(t)
	m := managers.NewDeleteManager(users).Where(users.Col("age").Lt(0))

	sql, _, err := m.ToSQL(fmtPg())
	testutil.AssertNoError(t, err)
	want := `delete from "users"` + "\n" +
		`where "AGE" < $1`
	testutil.AssertEqual(t, sql, want)
}

func TestFormattedSetOperation(t *testing.T) {
	t.Parallel()
	users := usersTable(t)
	left := managers.NewSelectManager(users).Select(users.Col("first_name"))
	right := managers.NewSelectManager(users).Select(users.Col("last_name"))
	m := left.Union(right)

	sql, _, err := m.ToSQL(fmtPg())
	testutil.AssertNoError(t, err)
	want := `(select "first_name"` + "\n" +
		`from "users")` + "\n" +
		`union` + "\n" +
		`(select "last_name"` + "\n" +
		`from "users")`
	testutil.AssertEqual(t, sql, want)
}

func TestFormattingDelegatesParamsAndReset(t *testing.T) {
	t.Parallel()
	inner := NewPostgresVisitor()
	f := NewFormattingVisitor(inner)

	nodes.Literal("x").Accept(f)
	if len(f.Params()) != 1 || len(inner.Params()) != 1 {
		t.Fatalf("params must accumulate on the inner visitor, got %v / %v", f.Params(), inner.Params())
	}
	f.Reset()
	if len(inner.Params()) != 0 {
		t.Error("reset must propagate to the inner visitor")
	}
}

func TestFormattingSharesInnerCache(t *testing.T) {
	t.Parallel()
	inner := NewPostgresVisitor()
	f := NewFormattingVisitor(inner)
	if f.Cache() != inner.Cache() {
		t.Error("formatter must expose the inner visitor's casing cache")
	}
}
