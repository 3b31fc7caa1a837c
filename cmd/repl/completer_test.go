package main

import (
	"strings"
	"testing"
)

func newTestCompleter(t *testing.T) *replCompleter {
	t.Helper()
	sess := NewSession("postgres", "preserve")
	sess.tables["users"] = usersTable(t)
	return &replCompleter{sess: sess}
}

func complete(c *replCompleter, line string) []string {
	newLine, length := c.Do([]rune(line), len([]rune(line)))
	prefix := line[len(line)-length:]
	out := make([]string, len(newLine))
	for i, suffix := range newLine {
		out[i] = strings.TrimSuffix(prefix+string(suffix), " ")
	}
	return out
}

func contains(items []string, want string) bool {
	for _, item := range items {
		if item == want {
			return true
		}
	}
	return false
}

func TestCompleteCommands(t *testing.T) {
	t.Parallel()
	c := newTestCompleter(t)
	got := complete(c, "se")
	if !contains(got, "select") {
		t.Errorf("expected select in %v", got)
	}
	if contains(got, "insert") {
		t.Errorf("insert does not match prefix se, got %v", got)
	}
}

func TestCompleteEmptyLineListsAllCommands(t *testing.T) {
	t.Parallel()
	c := newTestCompleter(t)
	got := complete(c, "")
	if len(got) != len(commandNames) {
		t.Errorf("expected %d commands, got %v", len(commandNames), got)
	}
}

func TestCompleteTableNameAfterVerb(t *testing.T) {
	t.Parallel()
	c := newTestCompleter(t)
	got := complete(c, "select u")
	if !contains(got, "users") {
		t.Errorf("expected users in %v", got)
	}
}

func TestCompleteColumnsAfterTable(t *testing.T) {
	t.Parallel()
	c := newTestCompleter(t)
	got := complete(c, "select users fir")
	if !contains(got, "first_name") {
		t.Errorf("expected first_name in %v", got)
	}
}

func TestCompleteClauseKeywords(t *testing.T) {
	t.Parallel()
	c := newTestCompleter(t)
	got := complete(c, "select users first_name wh")
	if !contains(got, "where") {
		t.Errorf("expected where in %v", got)
	}
}

func TestCompleteEngineNames(t *testing.T) {
	t.Parallel()
	c := newTestCompleter(t)
	got := complete(c, "engine my")
	if !contains(got, "mysql") {
		t.Errorf("expected mysql in %v", got)
	}
}

func TestCompleteUnknownTableGivesNothing(t *testing.T) {
	t.Parallel()
	c := newTestCompleter(t)
	if got := complete(c, "insert missing co"); len(got) != 0 {
		t.Errorf("expected no candidates, got %v", got)
	}
}
