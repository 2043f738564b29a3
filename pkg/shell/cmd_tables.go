package shell

import (
	"context"
	"fmt"
	"regexp"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlshell/pkg/database"
)

// tablesCmd lists the tables, optionally only those matching a case-blind
// regular expression.
func tablesCmd(ctx context.Context, s *Shell, args []string) error {
	var pattern *regexp.Regexp
	if len(args) == 1 {
		re, err := regexp.Compile("(?i)" + args[0])
		if err != nil {
			return errors.Wrap(err, "bad regular expression")
		}
		pattern = re
	}

	tables, err := s.session.db.Tables(ctx)
	if err != nil {
		return err
	}

	for _, t := range tables {
		if pattern == nil || pattern.MatchString(t) {
			fmt.Fprintln(s.out, t)
		}
	}

	return nil
}

func schemaCmd(ctx context.Context, s *Shell, args []string) error {
	return s.introspect(ctx, args[0], s.session.db.Schema, "No columns.")
}

func indexesCmd(ctx context.Context, s *Shell, args []string) error {
	return s.introspect(ctx, args[0], s.session.db.Indexes, "No indexes.")
}

func foreignKeysCmd(ctx context.Context, s *Shell, args []string) error {
	return s.introspect(ctx, args[0], s.session.db.ForeignKeys, "No foreign keys.")
}

func (s *Shell) introspect(
	ctx context.Context,
	table string,
	fetch func(context.Context, string) (*database.Result, error),
	empty string,
) error {
	res, err := fetch(ctx, table)
	if err != nil {
		return err
	}

	return s.display(res, s.formatter.WithEmptyMessage(empty), 0)
}
