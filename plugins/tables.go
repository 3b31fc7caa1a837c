package plugins

import "github.com/samarjit/drizzle-orm/nodes"

// TableRef pairs a relation node with the logical name of the table behind
// it. Relation is the node to build column references against (so aliases
// stay aliased), Name is what plugins match and filter on.
type TableRef struct {
	Relation nodes.Node // *nodes.Table or *nodes.TableAlias
	Name     string
}

// CollectTables returns every table relation a SelectCore references: the
// FROM relation plus all join targets. Subqueries and raw fragments are
// skipped since they carry no schema to inspect.
func CollectTables(core *nodes.SelectCore) []TableRef {
	var refs []TableRef
	if ref, ok := extractTableRef(core.From); ok {
		refs = append(refs, ref)
	}
	for _, j := range core.Joins {
		if ref, ok := extractTableRef(j.Right); ok {
			refs = append(refs, ref)
		}
	}
	return refs
}

func extractTableRef(n nodes.Node) (TableRef, bool) {
	switch r := n.(type) {
	case *nodes.Table:
		return TableRef{Relation: r, Name: r.Name}, true
	case *nodes.TableAlias:
		if tbl, ok := r.Relation.(*nodes.Table); ok {
			return TableRef{Relation: r, Name: tbl.Name}, true
		}
		return TableRef{Relation: r, Name: r.AliasName}, true
	default:
		return TableRef{}, false
	}
}
