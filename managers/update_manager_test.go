package managers

import (
	"strings"
	"testing"

	"github.com/samarjit/drizzle-orm/internal/testutil"
)

// --- Set ---

func TestUpdateSetFollowsDeclarationOrder(t *testing.T) {
	t.Parallel()
	users := usersTable(t)
	sql, params, err := NewUpdateManager(users).
		Set(map[string]any{"age": 31, "last_name": "Lovelace", "first_name": "Ada", "id": 7}).
		Where(users.Col("id").Eq(7)).
		Returning(users.Col("id"), users.Col("age")).
		ToSQL(pg())
	testutil.AssertNoError(t, err)
	// Four placeholders in declared-column order, then one for the
	// predicate, params in the same order.
	testutil.AssertEqual(t, sql,
		`update "users" set "id" = $1, "first_name" = $2, "last_name" = $3, "AGE" = $4 where "id" = $5 returning "id", "AGE"`)
	want := []any{7, "Ada", "Lovelace", 31, 7}
	if len(params) != len(want) {
		t.Fatalf("expected %v, got %v", want, params)
	}
	for i := range want {
		if params[i] != want[i] {
			t.Errorf("param %d: expected %v, got %v", i, want[i], params[i])
		}
	}
}

func TestUpdateSetMerges(t *testing.T) {
	t.Parallel()
	users := usersTable(t)
	sql, _, err := NewUpdateManager(users).
		Set(map[string]any{"first_name": "Ada"}).
		Set(map[string]any{"last_name": "Lovelace"}).
		ToSQL(pg())
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, sql,
		`update "users" set "first_name" = $1, "last_name" = $2`)
}

func TestUpdateUnknownColumnFails(t *testing.T) {
	t.Parallel()
	users := usersTable(t)
	_, _, err := NewUpdateManager(users).
		Set(map[string]any{"nickname": "ada"}).
		ToSQL(pg())
	testutil.AssertError(t, err)
	if !strings.Contains(err.Error(), "nickname") {
		t.Errorf("error should name the offending key: %v", err)
	}
}

func TestUpdateWithoutSetFails(t *testing.T) {
	t.Parallel()
	users := usersTable(t)
	_, _, err := NewUpdateManager(users).
		Where(users.Col("id").Eq(1)).
		ToSQL(pg())
	testutil.AssertError(t, err)
}

func TestUpdateNilValueRendersNull(t *testing.T) {
	t.Parallel()
	users := usersTable(t)
	sql, params, err := NewUpdateManager(users).
		Set(map[string]any{"last_name": nil}).
		ToSQL(pg())
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, sql, `update "users" set "last_name" = null`)
	if len(params) != 0 {
		t.Errorf("nil must not join the parameter list, got %v", params)
	}
}

// --- Where ---

func TestUpdateMultipleConditionsJoinWithAnd(t *testing.T) {
	t.Parallel()
	users := usersTable(t)
	sql, _, err := NewUpdateManager(users).
		Set(map[string]any{"first_name": "X"}).
		Where(users.Col("age").Gt(18), users.Col("last_name").IsNotNull()).
		ToSQL(pg())
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, sql,
		`update "users" set "first_name" = $1 where "AGE" > $2 and "last_name" is not null`)
}

// --- Immutability ---

func TestUpdateChainDoesNotMutateReceiver(t *testing.T) {
	t.Parallel()
	users := usersTable(t)
	base := NewUpdateManager(users).Set(map[string]any{"first_name": "Ada"})
	_ = base.Where(users.Col("id").Eq(1))
	if len(base.stmt.Wheres) != 0 {
		t.Error("Where mutated the receiver")
	}
	_ = base.Set(map[string]any{"last_name": "L"})
	if len(base.stmt.Assignments) != 1 {
		t.Error("Set mutated the receiver")
	}
}

// --- Node values ---

func TestUpdateSetAcceptsExpressionValues(t *testing.T) {
	t.Parallel()
	users := usersTable(t)
	sql, params, err := NewUpdateManager(users).
		Set(map[string]any{"age": users.Col("age").Plus(1)}).
		ToSQL(pg())
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, sql, `update "users" set "AGE" = "AGE" + $1`)
	if len(params) != 1 || params[0] != 1 {
		t.Errorf("expected [1], got %v", params)
	}
}
