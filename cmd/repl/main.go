// REPL binary for interactively compiling and executing SQL plans.
//
// Configuration (env vars):
//
//	DRIZZLE_ENGINE=postgres|mysql|sqlite  (optional, default postgres)
//	DRIZZLE_CASING=preserve|camel|snake   (optional, default preserve)
//	DATABASE_URL=<dsn>                    (optional, auto-connects if set)
//
// Usage:
//
//	go run ./cmd/repl
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ergochat/readline"
)

func main() {
	sess := NewSession(loadEngine(), loadCasing())

	rl, err := readline.NewFromConfig(&readline.Config{
		Prompt:          "drizzle> ",
		HistoryFile:     historyPath(),
		HistoryLimit:    500,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    &replCompleter{sess: sess},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "readline init: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = rl.Close() }()

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		fmt.Println("[config] connecting via DATABASE_URL...")
		if err := sess.Execute("connect " + dsn); err != nil {
			fmt.Fprintf(os.Stderr, "  warning: DATABASE_URL connect failed: %v\n", err)
		}
	}

	fmt.Println()
	fmt.Println("drizzle REPL — type 'help' for commands, 'exit' to quit")
	fmt.Println()

	for {
		line, err := rl.ReadLine()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) || err != nil {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)
		if lower == "exit" || lower == "quit" {
			break
		}
		if err := sess.Execute(line); err != nil {
			fmt.Fprintf(os.Stderr, "  error: %v\n", err)
		}
	}
	if sess.conn != nil {
		_ = sess.conn.close()
	}
	fmt.Println()
}

func loadEngine() string {
	engine := strings.TrimSpace(strings.ToLower(os.Getenv("DRIZZLE_ENGINE")))
	switch engine {
	case "":
		return "postgres"
	case "postgres", "mysql", "sqlite":
		fmt.Printf("[config] engine: %s\n", engine)
		return engine
	default:
		fmt.Fprintf(os.Stderr, "warning: invalid DRIZZLE_ENGINE=%q, defaulting to postgres\n", engine)
		return "postgres"
	}
}

func loadCasing() string {
	strategy := strings.TrimSpace(strings.ToLower(os.Getenv("DRIZZLE_CASING")))
	switch strategy {
	case "":
		return "preserve"
	case "preserve", "camel", "snake":
		fmt.Printf("[config] casing: %s\n", strategy)
		return strategy
	default:
		fmt.Fprintf(os.Stderr, "warning: invalid DRIZZLE_CASING=%q, defaulting to preserve\n", strategy)
		return "preserve"
	}
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".drizzle_history")
}
