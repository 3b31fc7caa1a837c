package drizzle

import (
	"testing"
)

var users = MustTable("users",
	Col("id").PrimaryKey().Default(),
	Col("first_name").NotNull(),
	Col("last_name"),
	Col("age").Physical("AGE"),
)

func TestSelectThroughFacade(t *testing.T) {
	t.Parallel()
	v := NewPostgresVisitor(WithCasing(CamelCase))
	proj := Raw(users.Col("first_name"), ` || ' ' || `, users.Col("last_name")).As("name")

	sql, params, err := NewSelect(users).Select(proj).ToSQL(v)
	if err != nil {
		t.Fatal(err)
	}
	want := `select "firstName" || ' ' || "lastName" as "name" from "users"`
	if sql != want {
		t.Errorf("expected %s, got %s", want, sql)
	}
	if len(params) != 0 {
		t.Errorf("expected no params, got %v", params)
	}
}

func TestInsertThroughFacade(t *testing.T) {
	t.Parallel()
	sql, params, err := NewInsert(users).
		Values(map[string]any{"first_name": "John", "last_name": "Doe", "age": 30}).
		OnConflictDoNothing(users.Col("id")).
		ToSQL(NewPostgresVisitor())
	if err != nil {
		t.Fatal(err)
	}
	want := `insert into "users" ("id","first_name","last_name","AGE") values (default,$1,$2,$3) on conflict ("id") do nothing`
	if sql != want {
		t.Errorf("expected %s, got %s", want, sql)
	}
	if len(params) != 3 {
		t.Errorf("expected 3 params, got %v", params)
	}
}

func TestUpdateAndDeleteThroughFacade(t *testing.T) {
	t.Parallel()
	sql, _, err := NewUpdate(users).
		Set(map[string]any{"last_name": "Smith"}).
		Where(users.Col("id").Eq(1)).
		ToSQL(NewPostgresVisitor())
	if err != nil {
		t.Fatal(err)
	}
	if sql != `update "users" set "last_name" = $1 where "id" = $2` {
		t.Errorf("unexpected update sql: %s", sql)
	}

	sql, _, err = NewDelete(users).
		Where(users.Col("age").Lt(0)).
		ToSQL(NewSQLiteVisitor())
	if err != nil {
		t.Fatal(err)
	}
	if sql != `delete from "users" where "AGE" < ?` {
		t.Errorf("unexpected delete sql: %s", sql)
	}
}

func TestSetOperationThroughFacade(t *testing.T) {
	t.Parallel()
	first := NewSelect(users).Select(users.Col("first_name"))
	second := NewSelect(users).Select(users.Col("first_name"))

	sql, _, err := Union(first, second).ToSQL(NewPostgresVisitor())
	if err != nil {
		t.Fatal(err)
	}
	want := `(select "first_name" from "users") union (select "first_name" from "users")`
	if sql != want {
		t.Errorf("expected %s, got %s", want, sql)
	}
}

func TestAggregatesAndFunctionsThroughFacade(t *testing.T) {
	t.Parallel()
	sql, _, err := NewSelect(users).
		Select(Count(nil).As("n"), Function("coalesce", users.Col("last_name"), "n/a")).
		ToSQL(NewPostgresVisitor())
	if err != nil {
		t.Fatal(err)
	}
	want := `select count(*) as "n", coalesce("last_name", $1) from "users"`
	if sql != want {
		t.Errorf("expected %s, got %s", want, sql)
	}
}

func TestSharedCasingCacheThroughFacade(t *testing.T) {
	t.Parallel()
	cache := NewCasingCache(SnakeCase)
	v1 := NewPostgresVisitor(WithCache(cache))
	v2 := NewSQLiteVisitor(WithCache(cache))

	if _, _, err := NewSelect(users).Select(users.Col("first_name")).ToSQL(v1); err != nil {
		t.Fatal(err)
	}
	before := cache.Len()
	if _, _, err := NewSelect(users).Select(users.Col("first_name")).ToSQL(v2); err != nil {
		t.Fatal(err)
	}
	if cache.Len() != before {
		t.Errorf("second visitor must reuse cached entries, cache grew from %d to %d", before, cache.Len())
	}
}
