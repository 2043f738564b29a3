package utils

import "strings"

// SQLBuilder provides a fluent interface for building the DDL and DML issued by
// the shell itself. Identifiers are quoted with the builder's Quoting.
//
// Example usage:
//
//	sql := NewSQLBuilder(Backticks).
//		InsertInto("events").
//		Columns("id", "name").
//		Values("?", "?").
//		String()
//	// Output: INSERT INTO `events` (`id`, `name`) VALUES (?, ?)
type SQLBuilder struct {
	quoting Quoting
	parts   []string
}

// NewSQLBuilder creates a new SQLBuilder instance quoting identifiers with q.
//
// Example:
//
//	builder := utils.NewSQLBuilder(utils.DoubleQuotes)
func NewSQLBuilder(q Quoting) *SQLBuilder {
	return &SQLBuilder{
		quoting: q,
		parts:   make([]string, 0, 10),
	}
}

// Create adds a CREATE clause with the specified object type.
//
// Example:
//
//	builder.Create("TABLE")  // CREATE TABLE
func (b *SQLBuilder) Create(objectType string) *SQLBuilder {
	b.parts = append(b.parts, "CREATE", objectType)
	return b
}

// InsertInto adds an INSERT INTO clause for the named table.
//
// Example:
//
//	builder.InsertInto("db.events")  // INSERT INTO "db"."events"
func (b *SQLBuilder) InsertInto(table string) *SQLBuilder {
	b.parts = append(b.parts, "INSERT", "INTO", b.quoting.Identifier(table))
	return b
}

// Name adds a quoted object name.
//
// Example:
//
//	builder.Name("analytics")  // "analytics"
//	builder.Name("db.table")   // "db"."table"
func (b *SQLBuilder) Name(name string) *SQLBuilder {
	if name != "" {
		b.parts = append(b.parts, b.quoting.Identifier(name))
	}
	return b
}

// Definitions adds a parenthesised list of column definitions. names and types
// are paired by index.
//
// Example:
//
//	builder.Definitions([]string{"id", "name"}, []string{"INTEGER", "TEXT"})
//	// ("id" INTEGER, "name" TEXT)
func (b *SQLBuilder) Definitions(names, types []string) *SQLBuilder {
	defs := make([]string, len(names))
	for i, n := range names {
		defs[i] = b.quoting.quote(n) + " " + types[i]
	}
	b.parts = append(b.parts, "("+strings.Join(defs, ", ")+")")
	return b
}

// Columns adds a parenthesised list of quoted column names.
//
// Example:
//
//	builder.Columns("id", "name")  // ("id", "name")
func (b *SQLBuilder) Columns(names ...string) *SQLBuilder {
	b.parts = append(b.parts, "("+strings.Join(b.quoting.Identifiers(names...), ", ")+")")
	return b
}

// Values adds a VALUES clause with the given placeholders.
//
// Example:
//
//	builder.Values("$1", "$2")  // VALUES ($1, $2)
func (b *SQLBuilder) Values(placeholders ...string) *SQLBuilder {
	b.parts = append(b.parts, "VALUES", "("+strings.Join(placeholders, ", ")+")")
	return b
}

// Raw adds raw SQL text to the builder. Use sparingly for engine specific
// constructs that don't fit the fluent pattern.
//
// Example:
//
//	builder.Raw("ENGINE = MergeTree ORDER BY tuple()")
func (b *SQLBuilder) Raw(sql string) *SQLBuilder {
	if sql != "" {
		b.parts = append(b.parts, sql)
	}
	return b
}

// String builds and returns the final SQL statement. No delimiter is appended
// since statements built here are handed straight to a driver.
func (b *SQLBuilder) String() string {
	return strings.Join(b.parts, " ")
}
