package main

import (
	"sort"
	"strings"
)

var commandNames = []string{
	"casing", "columns", "connect", "delete", "disconnect", "engine",
	"exit", "format", "help", "insert", "plugin", "quit", "select",
	"table", "tables", "update",
}

var engineNames = []string{"mysql", "postgres", "sqlite"}
var casingNames = []string{"camel", "preserve", "snake"}
var clauseKeywords = []string{"limit", "order", "where"}

// replCompleter implements readline's AutoCompleter interface over the
// session's command verbs, known table names, and their column keys.
type replCompleter struct {
	sess *Session
}

// Do returns completion candidates for the current line and cursor
// position. newLine holds the suffixes to append; length is the rune
// count of the prefix being completed.
func (c *replCompleter) Do(line []rune, pos int) (newLine [][]rune, length int) {
	lineStr := string(line[:pos])
	prefix := lastToken(lineStr)

	for _, cand := range c.candidates(lineStr, prefix) {
		newLine = append(newLine, []rune(cand[len(prefix):]+" "))
	}
	length = len([]rune(prefix))
	return
}

func (c *replCompleter) candidates(line, prefix string) []string {
	fields := strings.Fields(strings.ToLower(line))
	typing := prefix != ""
	if typing && len(fields) > 0 {
		fields = fields[:len(fields)-1]
	}

	if len(fields) == 0 {
		return filterPrefix(commandNames, prefix)
	}

	switch fields[0] {
	case "engine":
		return filterPrefix(engineNames, prefix)
	case "casing":
		return filterPrefix(casingNames, prefix)
	case "format":
		return filterPrefix([]string{"off", "on"}, prefix)
	case "plugin":
		return filterPrefix([]string{"off", "softdelete"}, prefix)
	case "columns":
		return filterPrefix(c.tableNames(), prefix)
	case "select", "insert", "update", "delete":
		if len(fields) == 1 {
			return filterPrefix(c.tableNames(), prefix)
		}
		candidates := c.columnKeys(fields[1])
		if fields[0] == "select" {
			candidates = append(candidates, clauseKeywords...)
		}
		if fields[0] == "update" && len(fields) == 2 {
			candidates = append(candidates, "set")
		}
		sort.Strings(candidates)
		return filterPrefix(candidates, prefix)
	}
	return nil
}

func (c *replCompleter) tableNames() []string {
	names := make([]string, 0, len(c.sess.tables))
	for name := range c.sess.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *replCompleter) columnKeys(table string) []string {
	tbl, ok := c.sess.tables[table]
	if !ok {
		return nil
	}
	cols := tbl.Columns()
	keys := make([]string, 0, len(cols))
	for _, col := range cols {
		keys = append(keys, col.Key())
	}
	return keys
}

// filterPrefix returns items starting with prefix, case-insensitively.
func filterPrefix(items []string, prefix string) []string {
	if prefix == "" {
		out := make([]string, len(items))
		copy(out, items)
		return out
	}
	lower := strings.ToLower(prefix)
	var out []string
	for _, item := range items {
		if strings.HasPrefix(strings.ToLower(item), lower) {
			out = append(out, item)
		}
	}
	return out
}

// lastToken returns the token being typed at the end of the line.
func lastToken(s string) string {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == ' ' || s[i] == '\t' {
			return s[i+1:]
		}
	}
	return s
}
