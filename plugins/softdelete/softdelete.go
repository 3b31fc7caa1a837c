// Package softdelete provides a Transformer that automatically injects
// "column is null" conditions, filtering out soft-deleted rows.
//
// By default it appends a deleted_at is-null predicate for every table
// referenced in the FROM and JOIN clauses of a select, and for the target
// table of an update or delete. Both the column key and the set of tables
// can be customised via options.
//
// # Basic usage
//
//	sd := softdelete.New()
//	query := managers.NewSelectManager(users).Use(sd)
//	// select * from "users" where "deleted_at" is null
//
// # Custom column
//
//	sd := softdelete.New(softdelete.WithColumn("removedAt"))
//
// # Restrict to specific tables
//
// When a query joins multiple tables but only some use soft-delete:
//
//	sd := softdelete.New(softdelete.WithTables("users"))
//
// # Per-table columns
//
//	sd := softdelete.New(
//	    softdelete.WithTableColumn("users", "deletedAt"),
//	    softdelete.WithTableColumn("posts", "removedAt"),
//	)
//
// Column names are logical keys; tables that do not declare the key are
// left untouched.
package softdelete

import (
	"github.com/samarjit/drizzle-orm/nodes"
	"github.com/samarjit/drizzle-orm/plugins"
)

// SoftDelete is a Transformer that appends is-null conditions for a
// soft-delete column on every referenced table (or a configured subset).
type SoftDelete struct {
	plugins.BaseTransformer
	Column  string
	Columns map[string]string // per-table column overrides (table name to column key)
	tables  map[string]bool   // nil means apply to all tables
}

// Option configures a SoftDelete transformer.
type Option func(*SoftDelete)

// WithColumn sets the soft-delete column key. Default is "deleted_at".
func WithColumn(key string) Option {
	return func(sd *SoftDelete) { sd.Column = key }
}

// WithTables restricts the plugin to only the named tables.
// By default, the plugin applies to every table in the query.
func WithTables(names ...string) Option {
	return func(sd *SoftDelete) {
		sd.tables = make(map[string]bool, len(names))
		for _, n := range names {
			sd.tables[n] = true
		}
	}
}

// WithTableColumn sets a per-table column override. The table is
// automatically added to the whitelist, restricting the plugin's scope.
func WithTableColumn(table, column string) Option {
	return func(sd *SoftDelete) {
		if sd.Columns == nil {
			sd.Columns = make(map[string]string)
		}
		sd.Columns[table] = column
		if sd.tables == nil {
			sd.tables = make(map[string]bool)
		}
		sd.tables[table] = true
	}
}

// New creates a SoftDelete transformer with the given options.
func New(opts ...Option) *SoftDelete {
	sd := &SoftDelete{Column: "deleted_at"}
	for _, o := range opts {
		o(sd)
	}
	return sd
}

// TransformSelect appends an is-null condition to the WHERE clause for
// each matching table referenced in the query (FROM and JOINs).
func (sd *SoftDelete) TransformSelect(core *nodes.SelectCore) (*nodes.SelectCore, error) {
	for _, ref := range plugins.CollectTables(core) {
		if attr, ok := sd.attributeFor(ref); ok {
			core.Wheres = append(core.Wheres, attr.IsNull())
		}
	}
	return core, nil
}

// TransformUpdate guards the target table of an update the same way.
func (sd *SoftDelete) TransformUpdate(stmt *nodes.UpdateStatement) (*nodes.UpdateStatement, error) {
	ref := plugins.TableRef{Relation: stmt.Table, Name: stmt.Table.Name}
	if attr, ok := sd.attributeFor(ref); ok {
		stmt.Wheres = append(stmt.Wheres, attr.IsNull())
	}
	return stmt, nil
}

// TransformDelete guards the target table of a delete the same way.
func (sd *SoftDelete) TransformDelete(stmt *nodes.DeleteStatement) (*nodes.DeleteStatement, error) {
	ref := plugins.TableRef{Relation: stmt.From, Name: stmt.From.Name}
	if attr, ok := sd.attributeFor(ref); ok {
		stmt.Wheres = append(stmt.Wheres, attr.IsNull())
	}
	return stmt, nil
}

// attributeFor resolves the soft-delete column on a referenced relation.
// Tables that do not declare the column key are skipped.
func (sd *SoftDelete) attributeFor(ref plugins.TableRef) (*nodes.Attribute, bool) {
	if !sd.appliesTo(ref.Name) {
		return nil, false
	}
	key := sd.columnFor(ref.Name)
	switch r := ref.Relation.(type) {
	case *nodes.Table:
		if col, ok := r.Column(key); ok {
			return nodes.NewAttribute(r, col), true
		}
	case *nodes.TableAlias:
		if tbl, ok := r.Relation.(*nodes.Table); ok {
			if col, ok := tbl.Column(key); ok {
				return nodes.NewAttribute(r, col), true
			}
		}
	}
	return nil, false
}

func (sd *SoftDelete) appliesTo(tableName string) bool {
	if sd.tables == nil {
		return true
	}
	return sd.tables[tableName]
}

// columnFor returns the column key to use for the given table, preferring
// a per-table override.
func (sd *SoftDelete) columnFor(tableName string) string {
	if sd.Columns != nil {
		if col, ok := sd.Columns[tableName]; ok {
			return col
		}
	}
	return sd.Column
}
