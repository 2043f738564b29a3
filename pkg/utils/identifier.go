package utils

import "strings"

// Quoting is an identifier quoting style: the opening and closing delimiter.
type Quoting struct {
	Open  byte
	Close byte
}

var (
	// DoubleQuotes is the ANSI style used by SQLite and PostgreSQL.
	DoubleQuotes = Quoting{Open: '"', Close: '"'}

	// Backticks is used by MySQL and ClickHouse.
	Backticks = Quoting{Open: '`', Close: '`'}

	// Brackets is used by SQL Server.
	Brackets = Quoting{Open: '[', Close: ']'}
)

// Identifier quotes an identifier, handling qualified names.
// Each dot separated part is quoted on its own.
//
// Examples (DoubleQuotes):
//   - "table" -> "\"table\""
//   - "schema.table" -> "\"schema\".\"table\""
//   - "\"table\"" -> "\"table\"" (already quoted, not double-quoted)
//   - "my\"table" -> "\"my\"\"table\""
//   - "" -> ""
func (q Quoting) Identifier(name string) string {
	if name == "" {
		return ""
	}

	// A single quoted identifier may legitimately contain dots.
	if q.IsQuoted(name) {
		return name
	}

	parts := strings.Split(name, ".")
	for i, part := range parts {
		if q.IsQuoted(part) {
			continue
		}
		parts[i] = q.quote(part)
	}
	return strings.Join(parts, ".")
}

// Identifiers quotes every name in turn.
func (q Quoting) Identifiers(names ...string) []string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = q.quote(n)
	}
	return quoted
}

// IsQuoted checks if a string is a single identifier wrapped in this style's delimiters.
//
// Examples (Backticks):
//   - "`table`" -> true
//   - "table" -> false
//   - "`db`.`table`" -> false (qualified name, not a single quoted identifier)
//   - "" -> false
func (q Quoting) IsQuoted(s string) bool {
	if len(s) < 2 || s[0] != q.Open || s[len(s)-1] != q.Close {
		return false
	}

	inner := s[1 : len(s)-1]
	closer := string(q.Close)
	return !strings.Contains(strings.ReplaceAll(inner, closer+closer, ""), closer)
}

// Strip removes the delimiters from a quoted identifier, undoing doubled closers.
//
// Examples (Brackets):
//   - "[table]" -> "table"
//   - "table" -> "table"
//   - "[a]]b]" -> "a]b"
func (q Quoting) Strip(s string) string {
	if !q.IsQuoted(s) {
		return s
	}

	closer := string(q.Close)
	return strings.ReplaceAll(s[1:len(s)-1], closer+closer, closer)
}

func (q Quoting) quote(part string) string {
	closer := string(q.Close)
	return string(q.Open) + strings.ReplaceAll(part, closer, closer+closer) + closer
}
