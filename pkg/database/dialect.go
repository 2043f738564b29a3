package database

import (
	"fmt"

	"github.com/pseudomuto/sqlshell/pkg/utils"
)

type (
	// Query is a statement together with its bind arguments.
	Query struct {
		SQL  string
		Args []any
	}

	// ColumnTypes are the type names used when Import creates a table.
	ColumnTypes struct {
		Integer string
		Real    string
		Text    string
	}

	// Dialect describes how sqlshell talks to one database engine.
	Dialect struct {
		// Name is the engine name shown in the prompt
		Name string

		// Quoting is the identifier quoting style
		Quoting utils.Quoting

		// Placeholder returns the n-th (1-based) bind parameter
		Placeholder func(n int) string

		// Tables lists the user tables of the current database/schema
		Tables string

		// Schema, Indexes and ForeignKeys build the introspection query for a
		// table. A nil ForeignKeys means the engine has no foreign keys.
		Schema      func(d *Dialect, table string) Query
		Indexes     func(d *Dialect, table string) Query
		ForeignKeys func(d *Dialect, table string) Query

		// Types are the column types for tables created by Import
		Types ColumnTypes

		// CreateSuffix is appended to CREATE TABLE statements
		CreateSuffix string
	}
)

func questionMark(int) string { return "?" }

func dollar(n int) string { return fmt.Sprintf("$%d", n) }

func atP(n int) string { return fmt.Sprintf("@p%d", n) }

// bound builds a Query whose single argument is the table name.
func bound(sql string) func(*Dialect, string) Query {
	return func(d *Dialect, table string) Query {
		return Query{SQL: fmt.Sprintf(sql, d.Placeholder(1)), Args: []any{table}}
	}
}

var (
	sqliteDialect = &Dialect{
		Name:        "sqlite",
		Quoting:     utils.DoubleQuotes,
		Placeholder: questionMark,
		Tables:      `SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%'`,
		Schema:      bound(`SELECT * FROM pragma_table_info(%s)`),
		Indexes:     bound(`SELECT * FROM sqlite_master WHERE type = 'index' AND tbl_name = %s`),
		ForeignKeys: bound(`SELECT * FROM pragma_foreign_key_list(%s)`),
		Types:       ColumnTypes{Integer: "INTEGER", Real: "REAL", Text: "TEXT"},
	}

	postgresDialect = &Dialect{
		Name:        "postgresql",
		Quoting:     utils.DoubleQuotes,
		Placeholder: dollar,
		Tables: `SELECT table_name FROM information_schema.tables ` +
			`WHERE table_schema = current_schema() AND table_type = 'BASE TABLE'`,
		Schema: bound(`SELECT column_name, data_type, character_maximum_length, is_nullable, column_default ` +
			`FROM information_schema.columns WHERE table_schema = current_schema() AND table_name = %s ` +
			`ORDER BY ordinal_position`),
		Indexes: bound(`SELECT * FROM pg_indexes WHERE schemaname = current_schema() AND tablename = %s`),
		ForeignKeys: bound(`SELECT c.conname AS constraint_name, c.conrelid::regclass AS table_name, ` +
			`a.attname AS column_name, c.confrelid::regclass AS foreign_table_name, af.attname AS foreign_column_name ` +
			`FROM pg_constraint AS c ` +
			`JOIN pg_attribute AS a ON a.attnum = ANY(c.conkey) AND a.attrelid = c.conrelid ` +
			`JOIN pg_class AS cl ON cl.oid = c.conrelid ` +
			`JOIN pg_namespace AS nsp ON nsp.oid = cl.relnamespace ` +
			`JOIN pg_attribute AS af ON af.attnum = ANY(c.confkey) AND af.attrelid = c.confrelid ` +
			`WHERE c.contype = 'f' AND cl.relname = %s AND nsp.nspname = current_schema()`),
		Types: ColumnTypes{Integer: "BIGINT", Real: "DOUBLE PRECISION", Text: "TEXT"},
	}

	mysqlDialect = &Dialect{
		Name:        "mysql",
		Quoting:     utils.Backticks,
		Placeholder: questionMark,
		Tables: `SELECT table_name FROM information_schema.tables ` +
			`WHERE table_schema = DATABASE() AND table_type = 'BASE TABLE'`,
		Schema: func(d *Dialect, table string) Query {
			return Query{SQL: "DESC " + d.Quoting.Identifier(table)}
		},
		Indexes: func(d *Dialect, table string) Query {
			return Query{SQL: "SHOW INDEX FROM " + d.Quoting.Identifier(table)}
		},
		ForeignKeys: bound(`SELECT constraint_name AS name, constraint_schema AS "database", ` +
			`table_name AS "table", column_name AS "column", ` +
			`referenced_table_schema AS referenced_database, referenced_table_name AS references_table, ` +
			`referenced_column_name AS references_column ` +
			`FROM information_schema.key_column_usage ` +
			`WHERE referenced_table_schema = DATABASE() AND table_name = %s`),
		Types: ColumnTypes{Integer: "BIGINT", Real: "DOUBLE", Text: "TEXT"},
	}

	mssqlDialect = &Dialect{
		Name:        "mssql",
		Quoting:     utils.Brackets,
		Placeholder: atP,
		Tables:      `SELECT table_name FROM information_schema.tables WHERE table_type = 'BASE TABLE'`,
		Schema: bound(`SELECT column_name, data_type, character_maximum_length, is_nullable, column_default ` +
			`FROM information_schema.columns WHERE table_name = %s ORDER BY ordinal_position`),
		Indexes: bound(`SELECT i.name, i.type_desc, i.is_unique, i.is_primary_key, c.name AS column_name ` +
			`FROM sys.indexes AS i ` +
			`JOIN sys.index_columns AS ic ON ic.object_id = i.object_id AND ic.index_id = i.index_id ` +
			`JOIN sys.columns AS c ON c.object_id = ic.object_id AND c.column_id = ic.column_id ` +
			`WHERE i.object_id = OBJECT_ID(%s) ORDER BY i.name, ic.key_ordinal`),
		ForeignKeys: bound(`SELECT fk.name, OBJECT_NAME(fk.parent_object_id) AS table_name, cp.name AS column_name, ` +
			`OBJECT_NAME(fk.referenced_object_id) AS references_table, cr.name AS references_column ` +
			`FROM sys.foreign_keys AS fk ` +
			`JOIN sys.foreign_key_columns AS fkc ON fkc.constraint_object_id = fk.object_id ` +
			`JOIN sys.columns AS cp ON cp.object_id = fkc.parent_object_id AND cp.column_id = fkc.parent_column_id ` +
			`JOIN sys.columns AS cr ON cr.object_id = fkc.referenced_object_id AND cr.column_id = fkc.referenced_column_id ` +
			`WHERE fk.parent_object_id = OBJECT_ID(%s)`),
		Types: ColumnTypes{Integer: "BIGINT", Real: "FLOAT", Text: "NVARCHAR(MAX)"},
	}

	clickhouseDialect = &Dialect{
		Name:        "clickhouse",
		Quoting:     utils.Backticks,
		Placeholder: questionMark,
		Tables: `SELECT name FROM system.tables ` +
			`WHERE database = currentDatabase() AND is_temporary = 0 ` +
			`AND engine NOT IN ('View', 'MaterializedView') ` +
			`AND name NOT LIKE '.inner_id.%' AND name NOT LIKE '.inner.%'`,
		Schema: bound(`SELECT name, type, default_kind, default_expression, comment ` +
			`FROM system.columns WHERE database = currentDatabase() AND table = %s ORDER BY position`),
		Indexes: bound(`SELECT name, type, expr, granularity ` +
			`FROM system.data_skipping_indices WHERE database = currentDatabase() AND table = %s`),
		Types: ColumnTypes{
			Integer: "Nullable(Int64)",
			Real:    "Nullable(Float64)",
			Text:    "Nullable(String)",
		},
		CreateSuffix: "ENGINE = MergeTree ORDER BY tuple()",
	}
)
