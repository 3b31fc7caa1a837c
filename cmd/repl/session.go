package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/samarjit/drizzle-orm/casing"
	"github.com/samarjit/drizzle-orm/managers"
	"github.com/samarjit/drizzle-orm/nodes"
	"github.com/samarjit/drizzle-orm/plugins"
	"github.com/samarjit/drizzle-orm/plugins/softdelete"
	"github.com/samarjit/drizzle-orm/visitors"
)

// Session holds the REPL state: the selected engine, the shared casing
// cache, declared and introspected tables, and the optional live
// connection.
type Session struct {
	engine     string
	strategy   casing.Strategy
	cache      *casing.Cache
	formatting bool
	conn       *dbConn
	tables     map[string]*nodes.Table
	plugin     plugins.Transformer // nil when no plugin is active
}

// NewSession creates a session for the given engine and casing strategy
// names (already validated by the config loader).
func NewSession(engine, strategy string) *Session {
	s := &Session{
		engine: engine,
		tables: make(map[string]*nodes.Table),
	}
	s.setCasing(strategy)
	return s
}

func (s *Session) setCasing(name string) {
	switch name {
	case "camel":
		s.strategy = casing.CamelCase
	case "snake":
		s.strategy = casing.SnakeCase
	default:
		s.strategy = casing.Preserve
	}
	s.cache = casing.NewCache(s.strategy)
}

// visitor builds a fresh dialect visitor sharing the session's casing
// cache, optionally wrapped for multi-line output.
func (s *Session) visitor() nodes.Visitor {
	var v nodes.Visitor
	switch s.engine {
	case "mysql":
		v = visitors.NewMySQLVisitor(visitors.WithCache(s.cache))
	case "sqlite":
		v = visitors.NewSQLiteVisitor(visitors.WithCache(s.cache))
	default:
		v = visitors.NewPostgresVisitor(visitors.WithCache(s.cache))
	}
	if s.formatting {
		v = visitors.NewFormattingVisitor(v)
	}
	return v
}

// Execute runs one REPL command line.
func (s *Session) Execute(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "help":
		fmt.Print(helpText)
		return nil
	case "engine":
		return s.cmdEngine(args)
	case "casing":
		return s.cmdCasing(args)
	case "format":
		return s.cmdFormat(args)
	case "connect":
		return s.cmdConnect(args)
	case "disconnect":
		return s.cmdDisconnect()
	case "tables":
		return s.cmdTables()
	case "columns":
		return s.cmdColumns(args)
	case "table":
		return s.cmdDeclareTable(args)
	case "plugin":
		return s.cmdPlugin(args)
	case "select":
		return s.cmdSelect(args)
	case "insert":
		return s.cmdInsert(args)
	case "update":
		return s.cmdUpdate(args)
	case "delete":
		return s.cmdDelete(args)
	default:
		return fmt.Errorf("unknown command %q (try 'help')", cmd)
	}
}

const helpText = `Commands:
  engine <postgres|mysql|sqlite>      switch SQL dialect
  casing <preserve|camel|snake>       switch identifier casing
  format <on|off>                     toggle multi-line SQL output
  connect <dsn>                       connect and introspect the schema
  disconnect                          close the connection
  tables                              list known tables
  columns <table>                     list a table's columns
  table <name> <col>[:physical] ...   declare a table by hand
  plugin softdelete [column]          filter soft-deleted rows
  plugin off                          deactivate the plugin
  select <table> [col ...] [where k=v ...] [order col [desc]] [limit n]
                                      where also takes k!=v k>v k>=v k<v k<=v
                                      and k~v (contains, wildcards literal)
  insert <table> k=v ...
  update <table> set k=v ... where k=v ...
  delete <table> [where k=v ...]
  exit
`

func (s *Session) cmdEngine(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: engine <postgres|mysql|sqlite>")
	}
	engine := strings.ToLower(args[0])
	if _, ok := driverName[engine]; !ok {
		return fmt.Errorf("unknown engine %q", engine)
	}
	if s.conn != nil && s.conn.engine != engine {
		return fmt.Errorf("disconnect before switching engines")
	}
	s.engine = engine
	fmt.Printf("  engine: %s\n", engine)
	return nil
}

func (s *Session) cmdCasing(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: casing <preserve|camel|snake>")
	}
	name := strings.ToLower(args[0])
	switch name {
	case "preserve", "camel", "snake":
		s.setCasing(name)
		fmt.Printf("  casing: %s\n", name)
		return nil
	}
	return fmt.Errorf("unknown casing strategy %q", name)
}

func (s *Session) cmdFormat(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: format <on|off>")
	}
	switch strings.ToLower(args[0]) {
	case "on":
		s.formatting = true
	case "off":
		s.formatting = false
	default:
		return fmt.Errorf("usage: format <on|off>")
	}
	fmt.Printf("  format: %s\n", args[0])
	return nil
}

func (s *Session) cmdConnect(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: connect <dsn>")
	}
	conn, err := connect(s.engine, args[0])
	if err != nil {
		return err
	}
	if s.conn != nil {
		_ = s.conn.close()
	}
	s.conn = conn
	fmt.Printf("  connected: %s\n", sanitizeDSN(args[0]))

	tables, err := conn.introspectTables()
	if err != nil {
		fmt.Printf("  note: schema introspection failed: %v\n", err)
		return nil
	}
	for name, tbl := range tables {
		s.tables[name] = tbl
	}
	fmt.Printf("  loaded %d tables\n", len(tables))
	return nil
}

func (s *Session) cmdDisconnect() error {
	if s.conn == nil {
		return fmt.Errorf("not connected")
	}
	err := s.conn.close()
	s.conn = nil
	fmt.Println("  disconnected")
	return err
}

func (s *Session) cmdTables() error {
	if len(s.tables) == 0 {
		fmt.Println("  (no tables; use 'table' to declare or 'connect' to introspect)")
		return nil
	}
	names := make([]string, 0, len(s.tables))
	for name := range s.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s\n", name)
	}
	return nil
}

func (s *Session) cmdColumns(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: columns <table>")
	}
	tbl, err := s.lookupTable(args[0])
	if err != nil {
		return err
	}
	for _, col := range tbl.Columns() {
		if col.Overridden() {
			fmt.Printf("  %s (physical: %s)\n", col.Key(), col.Physical())
		} else {
			fmt.Printf("  %s\n", col.Key())
		}
	}
	return nil
}

// cmdDeclareTable declares a table by hand, e.g.
// table users id name age:AGE
func (s *Session) cmdDeclareTable(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: table <name> <col>[:physical] ...")
	}
	name := args[0]
	specs := make([]*nodes.ColumnSpec, 0, len(args)-1)
	for _, arg := range args[1:] {
		key, physical, hasPhysical := strings.Cut(arg, ":")
		spec := nodes.Col(key)
		if hasPhysical {
			spec = spec.Physical(physical)
		}
		specs = append(specs, spec)
	}
	tbl, err := nodes.NewTable(name, specs...)
	if err != nil {
		return err
	}
	s.tables[name] = tbl
	fmt.Printf("  declared %s (%d columns)\n", name, len(specs))
	return nil
}

func (s *Session) cmdPlugin(args []string) error {
	if len(args) == 0 {
		if s.plugin == nil {
			fmt.Println("  (no plugin active)")
		} else {
			fmt.Println("  softdelete")
		}
		return nil
	}
	switch strings.ToLower(args[0]) {
	case "off":
		s.plugin = nil
		fmt.Println("  plugin off")
		return nil
	case "softdelete":
		var opts []softdelete.Option
		if len(args) > 1 {
			opts = append(opts, softdelete.WithColumn(args[1]))
		}
		s.plugin = softdelete.New(opts...)
		fmt.Println("  plugin: softdelete")
		return nil
	}
	return fmt.Errorf("unknown plugin %q", args[0])
}

func (s *Session) lookupTable(name string) (*nodes.Table, error) {
	if tbl, ok := s.tables[name]; ok {
		return tbl, nil
	}
	return nil, fmt.Errorf("unknown table %q", name)
}

// cmdSelect compiles (and runs, when connected) a select plan, e.g.
// select users name age where age>=30 order name limit 10
func (s *Session) cmdSelect(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: select <table> [col ...] [where k=v ...] [order col [desc]] [limit n]")
	}
	tbl, err := s.lookupTable(args[0])
	if err != nil {
		return err
	}
	q := managers.NewSelectManager(tbl)
	if s.plugin != nil {
		q = q.Use(s.plugin)
	}

	rest := args[1:]
	var projections []nodes.Node
	for len(rest) > 0 && !isKeyword(rest[0]) {
		attr, err := attrFor(tbl, rest[0])
		if err != nil {
			return err
		}
		projections = append(projections, attr)
		rest = rest[1:]
	}
	if len(projections) > 0 {
		q = q.Select(projections...)
	} else {
		q = q.Select(tbl.Star())
	}

	for len(rest) > 0 {
		switch strings.ToLower(rest[0]) {
		case "where":
			rest = rest[1:]
			for len(rest) > 0 && !isKeyword(rest[0]) {
				cond, err := parseCondition(tbl, rest[0])
				if err != nil {
					return err
				}
				q = q.Where(cond)
				rest = rest[1:]
			}
		case "order":
			if len(rest) < 2 {
				return fmt.Errorf("order needs a column")
			}
			attr, err := attrFor(tbl, rest[1])
			if err != nil {
				return err
			}
			rest = rest[2:]
			if len(rest) > 0 && strings.EqualFold(rest[0], "desc") {
				q = q.Order(attr.Desc())
				rest = rest[1:]
			} else {
				if len(rest) > 0 && strings.EqualFold(rest[0], "asc") {
					rest = rest[1:]
				}
				q = q.Order(attr.Asc())
			}
		case "limit":
			if len(rest) < 2 {
				return fmt.Errorf("limit needs a number")
			}
			n, err := strconv.Atoi(rest[1])
			if err != nil {
				return fmt.Errorf("limit: %w", err)
			}
			q = q.Limit(n)
			rest = rest[2:]
		default:
			return fmt.Errorf("unexpected token %q", rest[0])
		}
	}

	sqlStr, params, err := q.ToSQL(s.visitor())
	if err != nil {
		return err
	}
	s.printPlan(sqlStr, params)
	if s.conn != nil {
		out, err := s.conn.execQuery(sqlStr, params)
		if err != nil {
			return err
		}
		fmt.Print(out)
	}
	return nil
}

// cmdInsert compiles an insert plan, e.g. insert users name=Ada age=36
func (s *Session) cmdInsert(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: insert <table> k=v ...")
	}
	tbl, err := s.lookupTable(args[0])
	if err != nil {
		return err
	}
	row, err := parseAssignments(args[1:])
	if err != nil {
		return err
	}
	m := managers.NewInsertManager(tbl).Values(row)
	sqlStr, params, err := m.ToSQL(s.visitor())
	if err != nil {
		return err
	}
	s.printPlan(sqlStr, params)
	return s.runStatement(sqlStr, params)
}

// cmdUpdate compiles an update plan, e.g. update users set age=37 where name=Ada
func (s *Session) cmdUpdate(args []string) error {
	if len(args) < 3 || !strings.EqualFold(args[1], "set") {
		return fmt.Errorf("usage: update <table> set k=v ... where k=v ...")
	}
	tbl, err := s.lookupTable(args[0])
	if err != nil {
		return err
	}

	rest := args[2:]
	var setArgs []string
	for len(rest) > 0 && !strings.EqualFold(rest[0], "where") {
		setArgs = append(setArgs, rest[0])
		rest = rest[1:]
	}
	set, err := parseAssignments(setArgs)
	if err != nil {
		return err
	}
	m := managers.NewUpdateManager(tbl).Set(set)
	if s.plugin != nil {
		m = m.Use(s.plugin)
	}
	if len(rest) > 0 {
		for _, tok := range rest[1:] {
			cond, err := parseCondition(tbl, tok)
			if err != nil {
				return err
			}
			m = m.Where(cond)
		}
	}

	sqlStr, params, err := m.ToSQL(s.visitor())
	if err != nil {
		return err
	}
	s.printPlan(sqlStr, params)
	return s.runStatement(sqlStr, params)
}

// cmdDelete compiles a delete plan, e.g. delete users where age<18
func (s *Session) cmdDelete(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: delete <table> [where k=v ...]")
	}
	tbl, err := s.lookupTable(args[0])
	if err != nil {
		return err
	}
	m := managers.NewDeleteManager(tbl)
	if s.plugin != nil {
		m = m.Use(s.plugin)
	}
	if len(args) > 1 {
		if !strings.EqualFold(args[1], "where") {
			return fmt.Errorf("expected 'where', got %q", args[1])
		}
		for _, tok := range args[2:] {
			cond, err := parseCondition(tbl, tok)
			if err != nil {
				return err
			}
			m = m.Where(cond)
		}
	}

	sqlStr, params, err := m.ToSQL(s.visitor())
	if err != nil {
		return err
	}
	s.printPlan(sqlStr, params)
	return s.runStatement(sqlStr, params)
}

func (s *Session) runStatement(sqlStr string, params []any) error {
	if s.conn == nil {
		return nil
	}
	out, err := s.conn.execStatement(sqlStr, params)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

func (s *Session) printPlan(sqlStr string, params []any) {
	fmt.Printf("  sql: %s\n", sqlStr)
	if len(params) > 0 {
		fmt.Printf("  params: %v\n", params)
	}
}

func isKeyword(tok string) bool {
	switch strings.ToLower(tok) {
	case "where", "order", "limit":
		return true
	}
	return false
}
