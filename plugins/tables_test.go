package plugins

import (
	"testing"

	"github.com/samarjit/drizzle-orm/nodes"
)

func usersTable(t *testing.T) *nodes.Table {
	t.Helper()
	tbl, err := nodes.NewTable("users", nodes.Col("id").PrimaryKey(), nodes.Col("deleted_at"))
	if err != nil {
		t.Fatalf("table construction: %v", err)
	}
	return tbl
}

func postsTable(t *testing.T) *nodes.Table {
	t.Helper()
	tbl, err := nodes.NewTable("posts", nodes.Col("id").PrimaryKey(), nodes.Col("author_id"))
	if err != nil {
		t.Fatalf("table construction: %v", err)
	}
	return tbl
}

func TestCollectTablesFromOnly(t *testing.T) {
	t.Parallel()
	users := usersTable(t)
	core := &nodes.SelectCore{From: users}

	refs := CollectTables(core)
	if len(refs) != 1 {
		t.Fatalf("expected 1 ref, got %d", len(refs))
	}
	if refs[0].Name != "users" || refs[0].Relation != nodes.Node(users) {
		t.Errorf("unexpected ref %+v", refs[0])
	}
}

func TestCollectTablesIncludesJoinTargets(t *testing.T) {
	t.Parallel()
	users := usersTable(t)
	posts := postsTable(t)
	core := &nodes.SelectCore{
		From: users,
		Joins: []*nodes.JoinNode{{
			Left:  users,
			Right: posts,
			Type:  nodes.InnerJoin,
			On:    posts.Col("author_id").Eq(users.Col("id")),
		}},
	}

	refs := CollectTables(core)
	if len(refs) != 2 {
		t.Fatalf("expected 2 refs, got %d", len(refs))
	}
	if refs[0].Name != "users" || refs[1].Name != "posts" {
		t.Errorf("unexpected names %q, %q", refs[0].Name, refs[1].Name)
	}
}

func TestCollectTablesAliasKeepsBaseTableName(t *testing.T) {
	t.Parallel()
	users := usersTable(t)
	u := users.As("u")
	core := &nodes.SelectCore{From: u}

	refs := CollectTables(core)
	if len(refs) != 1 {
		t.Fatalf("expected 1 ref, got %d", len(refs))
	}
	// The name matches the base table so filters hit, while the relation
	// stays the alias so generated conditions stay qualified correctly.
	if refs[0].Name != "users" {
		t.Errorf("expected base table name, got %q", refs[0].Name)
	}
	if refs[0].Relation != nodes.Node(u) {
		t.Error("expected the alias as the relation")
	}
}

func TestCollectTablesSkipsSubqueryRelations(t *testing.T) {
	t.Parallel()
	users := usersTable(t)
	sub := &nodes.SelectCore{From: users}
	core := &nodes.SelectCore{
		From: users,
		Joins: []*nodes.JoinNode{{
			Left:  users,
			Right: sub,
			Type:  nodes.InnerJoin,
		}},
	}

	refs := CollectTables(core)
	if len(refs) != 1 {
		t.Fatalf("expected only the FROM table, got %d refs", len(refs))
	}
}

func TestBaseTransformerIsIdentity(t *testing.T) {
	t.Parallel()
	users := usersTable(t)
	var bt BaseTransformer

	core := &nodes.SelectCore{From: users}
	gotCore, err := bt.TransformSelect(core)
	if err != nil || gotCore != core {
		t.Errorf("TransformSelect changed the tree: %v, %v", gotCore, err)
	}

	ins := &nodes.InsertStatement{Into: users}
	gotIns, err := bt.TransformInsert(ins)
	if err != nil || gotIns != ins {
		t.Errorf("TransformInsert changed the tree: %v, %v", gotIns, err)
	}

	upd := &nodes.UpdateStatement{Table: users}
	gotUpd, err := bt.TransformUpdate(upd)
	if err != nil || gotUpd != upd {
		t.Errorf("TransformUpdate changed the tree: %v, %v", gotUpd, err)
	}

	del := &nodes.DeleteStatement{From: users}
	gotDel, err := bt.TransformDelete(del)
	if err != nil || gotDel != del {
		t.Errorf("TransformDelete changed the tree: %v, %v", gotDel, err)
	}
}
