package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samarjit/drizzle-orm/nodes"
)

// attrFor resolves a column key on a table, returning an error instead of
// panicking for unknown keys typed at the prompt.
func attrFor(tbl *nodes.Table, key string) (*nodes.Attribute, error) {
	if _, ok := tbl.Column(key); !ok {
		return nil, fmt.Errorf("table %q has no column %q", tbl.Name, key)
	}
	return tbl.Col(key), nil
}

// condition operators, longest first so >= wins over >.
var condOps = []string{"!=", ">=", "<=", "=", ">", "<", "~"}

// parseCondition parses a single k<op>v token into a predicate node.
// The value null with = or != becomes an is-null test. k~v matches
// rows whose value contains v as a literal substring.
func parseCondition(tbl *nodes.Table, tok string) (nodes.Node, error) {
	for _, op := range condOps {
		idx := strings.Index(tok, op)
		if idx <= 0 {
			continue
		}
		key, rawVal := tok[:idx], tok[idx+len(op):]
		attr, err := attrFor(tbl, key)
		if err != nil {
			return nil, err
		}
		val := coerceValue(rawVal)
		switch op {
		case "=":
			if val == nil {
				return attr.IsNull(), nil
			}
			return attr.Eq(val), nil
		case "!=":
			if val == nil {
				return attr.IsNotNull(), nil
			}
			return attr.NotEq(val), nil
		case ">":
			return attr.Gt(val), nil
		case ">=":
			return attr.GtEq(val), nil
		case "<":
			return attr.Lt(val), nil
		case "<=":
			return attr.LtEq(val), nil
		case "~":
			s, ok := val.(string)
			if !ok {
				return nil, fmt.Errorf("contains needs a string value in %q", tok)
			}
			return attr.Contains(s), nil
		}
	}
	return nil, fmt.Errorf("cannot parse condition %q (expected k=v, k!=v, k>v, ...)", tok)
}

// parseAssignments turns k=v tokens into a value map for insert and update.
func parseAssignments(args []string) (map[string]any, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("no assignments given")
	}
	set := make(map[string]any, len(args))
	for _, tok := range args {
		key, rawVal, ok := strings.Cut(tok, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("cannot parse assignment %q (expected k=v)", tok)
		}
		set[key] = coerceValue(rawVal)
	}
	return set, nil
}

// coerceValue interprets a prompt token as null, bool, int, float, or a
// quoted or bare string.
func coerceValue(raw string) any {
	switch strings.ToLower(raw) {
	case "null":
		return nil
	case "true":
		return true
	case "false":
		return false
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	if len(raw) >= 2 && raw[0] == '\'' && raw[len(raw)-1] == '\'' {
		return raw[1 : len(raw)-1]
	}
	return raw
}
