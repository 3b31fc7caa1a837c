package managers

import (
	"github.com/samarjit/drizzle-orm/nodes"
	"github.com/samarjit/drizzle-orm/plugins"
)

// treeManager is the shared base for all manager types: the transformer
// pipeline and the first construction error recorded by a chain step.
// Chain steps never mutate their receiver; they copy, so partially built
// plans can be shared and extended independently.
type treeManager struct {
	transformers []plugins.Transformer
	err          error
}

// fail records a construction error. The first error wins and is reported
// by ToSQL; later chain steps keep it.
func (tm *treeManager) fail(err error) {
	if tm.err == nil {
		tm.err = err
	}
}

// Err returns the construction error recorded so far, if any.
func (tm *treeManager) Err() error {
	return tm.err
}

// Transformers returns the registered transformer pipeline.
func (tm *treeManager) Transformers() []plugins.Transformer {
	return tm.transformers
}

func (tm treeManager) cloneBase() treeManager {
	transformers := make([]plugins.Transformer, len(tm.transformers))
	copy(transformers, tm.transformers)
	return treeManager{transformers: transformers, err: tm.err}
}

// toSQLParams resets the visitor's parameter collector (if present), calls
// the provided generate function, and returns SQL + params.
func toSQLParams(v nodes.Visitor, generate func(nodes.Visitor) (string, error)) (string, []any, error) {
	p, _ := v.(nodes.Parameterizer)
	if p != nil {
		p.Reset()
	}

	sql, err := generate(v)
	if err != nil {
		return "", nil, err
	}

	if p != nil {
		return sql, p.Params(), nil
	}
	return sql, nil, nil
}

// cloneNodes copies a node slice for copy-on-write chain steps.
func cloneNodes(src []nodes.Node) []nodes.Node {
	out := make([]nodes.Node, len(src))
	copy(out, src)
	return out
}
