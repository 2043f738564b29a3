package shell

import (
	"context"
	"slices"
	"sort"
	"strings"

	"github.com/pseudomuto/sqlshell/pkg/parser"
)

// Kind tells meta-commands from SQL.
type Kind int

const (
	// KindSQL is a complete SQL buffer, possibly holding several statements
	KindSQL Kind = iota

	// KindMeta is a meta-command such as ".tables"
	KindMeta
)

func (k Kind) String() string {
	if k == KindMeta {
		return "meta"
	}
	return "sql"
}

// Command is one unit of input.
type Command struct {
	Kind Kind

	// Name is the meta-command as typed, e.g. ".tab"
	Name string

	// Args are the meta-command arguments
	Args []string

	// SQL is the statement text of a KindSQL command, on a single line
	SQL string
}

// ParseCommand tokenizes a meta-command line.
func ParseCommand(line string) (Command, error) {
	meta, err := parser.ParseMeta(line)
	if err != nil {
		return Command{}, err
	}

	return Command{Kind: KindMeta, Name: meta.Name, Args: meta.Args}, nil
}

// SQLCommand wraps a complete SQL buffer.
func SQLCommand(sql string) Command {
	return Command{Kind: KindSQL, SQL: sql}
}

type (
	handler func(ctx context.Context, s *Shell, args []string) error

	// metaCommand is an entry in the command registry.
	metaCommand struct {
		names   []string
		usage   string
		help    string
		minArgs int
		maxArgs int
		run     handler
	}

	registry []*metaCommand
)

// names returns every command name, sorted.
func (r registry) names() []string {
	var names []string
	for _, c := range r {
		names = append(names, c.names...)
	}

	sort.Strings(names)
	return names
}

// find returns the command named exactly name.
func (r registry) find(name string) *metaCommand {
	for _, c := range r {
		for _, n := range c.names {
			if n == name {
				return c
			}
		}
	}

	return nil
}

// lookup resolves name to a command: an exact name wins, otherwise the name
// must be the prefix of exactly one command's names.
func (r registry) lookup(name string) (*metaCommand, error) {
	if c := r.find(name); c != nil {
		return c, nil
	}

	var (
		found   []*metaCommand
		matches []string
	)

	for _, n := range r.names() {
		if !strings.HasPrefix(n, name) {
			continue
		}

		matches = append(matches, n)
		if c := r.find(n); !slices.Contains(found, c) {
			found = append(found, c)
		}
	}

	switch len(found) {
	case 0:
		return nil, &UnknownCommandError{Name: name}
	case 1:
		return found[0], nil
	}

	return nil, &AmbiguousCommandError{Name: name, Matches: matches}
}

// check validates the number of arguments.
func (c *metaCommand) check(args []string) error {
	if len(args) < c.minArgs || len(args) > c.maxArgs {
		return &UsageError{Usage: c.usage}
	}

	return nil
}
