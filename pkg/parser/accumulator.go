package parser

import (
	"strings"

	"github.com/pseudomuto/sqlshell/pkg/consts"
)

// Accumulator collects the lines of a multi-line SQL statement until the
// statement is complete.
//
// Outside of a literal, blank lines and "--" comment lines are dropped and
// every other line is trimmed and joined to the buffer with a single space.
// Inside an open literal lines are appended verbatim, so the literal's
// content is preserved. The result is a single line, suitable for history.
//
// The zero value is ready to use.
type Accumulator struct {
	buf string
}

// Add appends line to the buffer and reports whether the buffer now holds a
// complete statement.
func (a *Accumulator) Add(line string) bool {
	inQuote := a.InQuote()
	if !Keep(line, inQuote) {
		return false
	}

	if !inQuote {
		line = strings.TrimSpace(stripLineComment(line))
		if line == "" {
			return false
		}
	}

	switch {
	case a.buf == "", inQuote:
		a.buf += line
	default:
		a.buf += " " + line
	}

	return IsComplete(a.buf)
}

// InQuote reports whether the buffer ends inside a literal or block comment.
func (a *Accumulator) InQuote() bool {
	return a.buf != "" && Analyze(a.buf).Open != ""
}

// Pending reports whether a partial statement has been collected.
func (a *Accumulator) Pending() bool {
	return a.buf != ""
}

// String returns the collected text.
func (a *Accumulator) String() string {
	return a.buf
}

// Reset discards the collected text.
func (a *Accumulator) Reset() {
	a.buf = ""
}

// Keep reports whether line contributes to a statement. Inside a literal
// every line does; otherwise blank and "--" comment lines are skipped.
func Keep(line string, inQuote bool) bool {
	if inQuote {
		return true
	}

	line = strings.TrimSpace(line)
	return line != "" && !strings.HasPrefix(line, consts.LineCommentPrefix)
}
