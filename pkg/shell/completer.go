package shell

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"unicode"
)

// tableCommands take a table name argument that can be completed.
var tableCommands = []string{".schema", ".indexes", ".fk"}

// Completer provides tab-completion candidates for meta-command names and,
// after ".schema", ".indexes" or ".fk", table names. SQL is never completed.
type Completer struct {
	names  []string
	tables func(context.Context) ([]string, error)
}

// NewCompleter creates a Completer over the given command names. tables
// lists the tables of the current connection.
func NewCompleter(names []string, tables func(context.Context) ([]string, error)) *Completer {
	return &Completer{names: names, tables: tables}
}

// Candidates returns the full words that could complete the last word of
// line, which is the input up to the cursor.
func (c *Completer) Candidates(ctx context.Context, line string) []string {
	fields := strings.Fields(line)
	trailingSpace := line != "" && unicode.IsSpace(rune(line[len(line)-1]))

	if len(fields) == 0 {
		return slices.Clone(c.names)
	}

	first := fields[0]
	switch {
	case slices.Contains(tableCommands, first) && (len(fields) > 1 || trailingSpace):
		if len(fields) > 2 || (len(fields) == 2 && trailingSpace) {
			return nil
		}
		return c.tableCandidates(ctx, word(fields, trailingSpace))

	case (first == ".help" || first == "?") && (len(fields) > 1 || trailingSpace):
		if len(fields) > 2 || (len(fields) == 2 && trailingSpace) {
			return nil
		}
		return c.nameCandidates(word(fields, trailingSpace))

	case len(fields) == 1 && !trailingSpace && strings.HasPrefix(first, "."):
		return c.nameCandidates(first)
	}

	return nil
}

// Do implements readline.AutoCompleter. It returns the part of each
// candidate past the word being typed, and the length of that word.
func (c *Completer) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])
	prefix := []rune(text[strings.LastIndexFunc(text, unicode.IsSpace)+1:])

	var suffixes [][]rune
	for _, candidate := range c.Candidates(context.Background(), text) {
		r := []rune(candidate)
		if len(r) < len(prefix) {
			continue
		}
		suffixes = append(suffixes, r[len(prefix):])
	}

	return suffixes, len(prefix)
}

func (c *Completer) nameCandidates(prefix string) []string {
	var out []string
	for _, n := range c.names {
		if strings.HasPrefix(n, prefix) {
			out = append(out, n)
		}
	}
	return out
}

func (c *Completer) tableCandidates(ctx context.Context, prefix string) []string {
	tables, err := c.tables(ctx)
	if err != nil {
		slog.Debug("Failed to list tables for completion", "err", err)
		return nil
	}

	prefix = strings.ToLower(prefix)

	var out []string
	for _, t := range tables {
		if strings.HasPrefix(strings.ToLower(t), prefix) {
			out = append(out, t)
		}
	}
	return out
}

// word returns the word under the cursor, "" when a new word is starting.
func word(fields []string, trailingSpace bool) string {
	if trailingSpace {
		return ""
	}
	return fields[len(fields)-1]
}
