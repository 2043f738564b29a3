package parser

import (
	"strings"

	"github.com/pseudomuto/sqlshell/pkg/consts"
)

// State describes a (possibly partial) SQL buffer.
type State struct {
	// Complete is set when the last significant token is the delimiter and
	// nothing is left open.
	Complete bool

	// Open is the character that opened an unterminated literal ("'", "\"",
	// "`" or "[") or "/*" for an unterminated block comment. Empty when
	// nothing is open.
	Open string
}

// Analyze reports whether sql is a complete statement and whether it ends
// inside a literal or comment.
//
// Example:
//
//	parser.Analyze("select ';'")   // State{Complete: false}
//	parser.Analyze("select ';';")  // State{Complete: true}
//	parser.Analyze("select 'abc")  // State{Open: "'"}
func Analyze(sql string) State {
	tokens, err := tokenize(sql)
	if err != nil {
		return State{}
	}

	var last token
	for _, t := range tokens {
		if t.open() {
			if t.kind == "OpenComment" {
				return State{Open: "/*"}
			}
			return State{Open: t.value[:1]}
		}

		if t.significant() {
			last = t
		}
	}

	return State{Complete: last.kind == "Delim"}
}

// IsComplete is shorthand for Analyze(sql).Complete.
func IsComplete(sql string) bool {
	return Analyze(sql).Complete
}

// Split cuts sql on its top-level delimiters. Each returned statement is
// trimmed and has no trailing delimiter. Empty statements and trailing
// comments are dropped.
//
// Example:
//
//	parser.Split("insert into t values (';'); select * from t;")
//	// []string{"insert into t values (';')", "select * from t"}
func Split(sql string) []string {
	tokens, err := tokenize(sql)
	if err != nil {
		return nil
	}

	var (
		stmts       []string
		cur         strings.Builder
		significant bool
	)

	flush := func() {
		if significant {
			stmts = append(stmts, strings.TrimSpace(cur.String()))
		}
		cur.Reset()
		significant = false
	}

	for _, t := range tokens {
		if t.kind == "Delim" {
			flush()
			continue
		}

		cur.WriteString(t.value)
		if t.significant() {
			significant = true
		}
	}

	flush()
	return stmts
}

// ReturnsRows guesses whether stmt produces a result set, based on its first
// keyword or the presence of a RETURNING clause. Procedure calls count as
// returning rows since they may.
func ReturnsRows(stmt string) bool {
	tokens, err := tokenize(stmt)
	if err != nil {
		return false
	}

	first := ""
	for _, t := range tokens {
		if t.kind != "Word" {
			if first == "" && t.significant() && t.value != "(" {
				return false
			}
			continue
		}

		word := strings.ToLower(t.value)
		if first == "" {
			first = word
			switch first {
			case "select", "with", "show", "pragma", "desc", "describe", "explain", "values", "table",
				"exec", "execute", "call", "fetch":
				return true
			}
			continue
		}

		if word == "returning" {
			return true
		}
	}

	return false
}

// stripLineComment removes a trailing "--" comment from a line that starts
// outside any literal.
func stripLineComment(line string) string {
	if !strings.Contains(line, consts.LineCommentPrefix) {
		return line
	}

	tokens, err := tokenize(line)
	if err != nil {
		return line
	}

	var b strings.Builder
	for _, t := range tokens {
		if t.kind == "Comment" {
			continue
		}
		b.WriteString(t.value)
	}

	return b.String()
}
