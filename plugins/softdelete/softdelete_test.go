package softdelete

import (
	"strings"
	"testing"

	"github.com/samarjit/drizzle-orm/managers"
	"github.com/samarjit/drizzle-orm/nodes"
	"github.com/samarjit/drizzle-orm/visitors"
)

func usersTable(t *testing.T) *nodes.Table {
	t.Helper()
	tbl, err := nodes.NewTable("users",
		nodes.Col("id").PrimaryKey(),
		nodes.Col("first_name"),
		nodes.Col("deleted_at"),
	)
	if err != nil {
		t.Fatalf("table construction: %v", err)
	}
	return tbl
}

func postsTable(t *testing.T) *nodes.Table {
	t.Helper()
	tbl, err := nodes.NewTable("posts",
		nodes.Col("id").PrimaryKey(),
		nodes.Col("author_id"),
		nodes.Col("removed_at"),
	)
	if err != nil {
		t.Fatalf("table construction: %v", err)
	}
	return tbl
}

func pg() *visitors.PostgresVisitor {
	return visitors.NewPostgresVisitor()
}

func TestSelectGetsIsNullGuard(t *testing.T) {
	t.Parallel()
	users := usersTable(t)
	m := managers.NewSelectManager(users).Use(New())

	sql, _, err := m.ToSQL(pg())
	if err != nil {
		t.Fatal(err)
	}
	want := `select * from "users" where "deleted_at" is null`
	if sql != want {
		t.Errorf("expected %s, got %s", want, sql)
	}
}

func TestGuardAppendsToExistingConditions(t *testing.T) {
	t.Parallel()
	users := usersTable(t)
	m := managers.NewSelectManager(users).
		Where(users.Col("id").Eq(1)).
		Use(New())

	sql, _, err := m.ToSQL(pg())
	if err != nil {
		t.Fatal(err)
	}
	want := `select * from "users" where "id" = $1 and "deleted_at" is null`
	if sql != want {
		t.Errorf("expected %s, got %s", want, sql)
	}
}

func TestJoinedTablesGuardedToo(t *testing.T) {
	t.Parallel()
	users := usersTable(t)
	posts := postsTable(t)
	m := managers.NewSelectManager(users).
		Select(users.Col("first_name")).
		Join(posts, posts.Col("author_id").Eq(users.Col("id"))).
		Use(New(WithTableColumn("users", "deleted_at"), WithTableColumn("posts", "removed_at")))

	sql, _, err := m.ToSQL(pg())
	if err != nil {
		t.Fatal(err)
	}
	want := `select "users"."first_name" from "users"` +
		` inner join "posts" on "posts"."author_id" = "users"."id"` +
		` where "users"."deleted_at" is null and "posts"."removed_at" is null`
	if sql != want {
		t.Errorf("expected:\n  %s\ngot:\n  %s", want, sql)
	}
}

func TestWithColumnOverridesKey(t *testing.T) {
	t.Parallel()
	posts := postsTable(t)
	m := managers.NewSelectManager(posts).Use(New(WithColumn("removed_at")))

	sql, _, err := m.ToSQL(pg())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(sql, `where "removed_at" is null`) {
		t.Errorf("expected removed_at guard, got %s", sql)
	}
}

func TestWithTablesRestrictsScope(t *testing.T) {
	t.Parallel()
	users := usersTable(t)
	posts := postsTable(t)
	m := managers.NewSelectManager(users).
		Select(users.Col("first_name")).
		Join(posts, posts.Col("author_id").Eq(users.Col("id"))).
		Use(New(WithTables("users")))

	sql, _, err := m.ToSQL(pg())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(sql, `where "users"."deleted_at" is null`) {
		t.Errorf("expected only the users guard, got %s", sql)
	}
	if strings.Contains(sql, "removed_at") {
		t.Errorf("posts must not be guarded, got %s", sql)
	}
}

func TestTablesWithoutTheColumnAreSkipped(t *testing.T) {
	t.Parallel()
	// posts has no deleted_at column, so the default guard must not apply.
	posts := postsTable(t)
	m := managers.NewSelectManager(posts).Use(New())

	sql, _, err := m.ToSQL(pg())
	if err != nil {
		t.Fatal(err)
	}
	if sql != `select * from "posts"` {
		t.Errorf("expected untouched query, got %s", sql)
	}
}

func TestAliasedTableGuardUsesAlias(t *testing.T) {
	t.Parallel()
	users := usersTable(t)
	u := users.As("u")
	m := managers.NewSelectManager(u).Select(u.Col("first_name")).Use(New())

	sql, _, err := m.ToSQL(pg())
	if err != nil {
		t.Fatal(err)
	}
	want := `select "u"."first_name" from "users" "u" where "u"."deleted_at" is null`
	if sql != want {
		t.Errorf("expected %s, got %s", want, sql)
	}
}

func TestUpdateGuarded(t *testing.T) {
	t.Parallel()
	users := usersTable(t)
	m := managers.NewUpdateManager(users).
		Set(map[string]any{"first_name": "Ada"}).
		Where(users.Col("id").Eq(1)).
		Use(New())

	sql, params, err := m.ToSQL(pg())
	if err != nil {
		t.Fatal(err)
	}
	want := `update "users" set "first_name" = $1 where "id" = $2 and "deleted_at" is null`
	if sql != want {
		t.Errorf("expected %s, got %s", want, sql)
	}
	if len(params) != 2 {
		t.Errorf("expected 2 params, got %v", params)
	}
}

func TestDeleteGuarded(t *testing.T) {
	t.Parallel()
	users := usersTable(t)
	m := managers.NewDeleteManager(users).
		Where(users.Col("id").Eq(1)).
		Use(New())

	sql, _, err := m.ToSQL(pg())
	if err != nil {
		t.Fatal(err)
	}
	want := `delete from "users" where "id" = $1 and "deleted_at" is null`
	if sql != want {
		t.Errorf("expected %s, got %s", want, sql)
	}
}
