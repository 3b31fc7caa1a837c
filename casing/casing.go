// Package casing converts physical column identifiers into the display
// form emitted in SQL, memoizing results per fully-qualified identifier.
package casing

import (
	"strings"
	"sync"
)

// Strategy selects how physical column names are rewritten for emission.
type Strategy int

const (
	// Preserve emits physical names unchanged.
	Preserve Strategy = iota
	// CamelCase rewrites snake_case physical names as camelCase.
	CamelCase
	// SnakeCase rewrites camelCase physical names as snake_case.
	// Already-snake input passes through unchanged.
	SnakeCase
)

// String returns the configuration name for this strategy.
func (s Strategy) String() string {
	switch s {
	case CamelCase:
		return "camel"
	case SnakeCase:
		return "snake"
	default:
		return "preserve"
	}
}

// Transform applies the strategy to a physical identifier. It is pure:
// the same input always yields the same output.
func Transform(s Strategy, physical string) string {
	switch s {
	case CamelCase:
		return toCamel(physical)
	case SnakeCase:
		return toSnake(physical)
	default:
		return physical
	}
}

func toCamel(s string) string {
	if !strings.ContainsAny(s, "-_") {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	upperNext := false
	for _, r := range s {
		switch {
		case r == '_' || r == '-':
			upperNext = true
		case upperNext:
			if r >= 'a' && r <= 'z' {
				r -= 'a' - 'A'
			}
			sb.WriteRune(r)
			upperNext = false
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func toSnake(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 4)
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				sb.WriteByte('_')
			}
			sb.WriteRune(r + ('a' - 'A'))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// Key builds the cache key for a column: schema, qualifying table or alias
// name, and physical column name. Aliases key separately from their base
// table even though they describe the same underlying column.
func Key(schema, qualifier, physical string) string {
	return schema + "." + qualifier + "." + physical
}

// Cache memoizes display names per fully-qualified identifier. It is safe
// for concurrent use; entries are idempotent, so a racing recomputation is
// wasteful but never wrong.
type Cache struct {
	strategy Strategy

	mu      sync.Mutex
	entries map[string]string
}

// NewCache creates a cache bound to a strategy. The strategy cannot change
// for the life of the cache.
func NewCache(s Strategy) *Cache {
	return &Cache{strategy: s, entries: make(map[string]string)}
}

// Strategy reports the strategy the cache was constructed with.
func (c *Cache) Strategy() Strategy {
	return c.strategy
}

// Resolve returns the display name for the identifier keyed by key.
// On a miss the physical name is transformed and stored — unless override
// is set, in which case the physical name is stored verbatim, preserving
// whatever casing the override was declared with.
func (c *Cache) Resolve(key, physical string, override bool) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if display, ok := c.entries[key]; ok {
		return display
	}
	display := physical
	if !override {
		display = Transform(c.strategy, physical)
	}
	c.entries[key] = display
	return display
}

// Clear empties the cache without affecting the strategy. Intended for
// isolation between independent compilation runs; must not race with
// in-flight resolutions from the same logical run.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]string)
}

// Len reports the number of cached identifiers.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Lookup reports the cached display name for key, if present. It never
// computes or stores.
func (c *Cache) Lookup(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	display, ok := c.entries[key]
	return display, ok
}
