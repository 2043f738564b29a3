package shell

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/pseudomuto/sqlshell/pkg/config"
)

const newTableOnly = "-n"

func exportCmd(ctx context.Context, s *Shell, args []string) error {
	table, path := args[0], config.ExpandHome(args[1])

	n, err := s.session.db.Export(ctx, table, path)
	if err != nil {
		return err
	}

	fmt.Fprintf(s.out, "Exported %s from %s to %s.\n", rows(n), table, path)
	return nil
}

// importCmd takes "[-n] <table> <path>".
func importCmd(ctx context.Context, s *Shell, args []string) error {
	newOnly := false
	if len(args) == 3 {
		if args[0] != newTableOnly {
			return &UsageError{Usage: ".import [-n] <table> <path>"}
		}
		newOnly, args = true, args[1:]
	}

	if args[0] == newTableOnly {
		return &UsageError{Usage: ".import [-n] <table> <path>"}
	}

	table, path := args[0], config.ExpandHome(args[1])

	n, err := s.session.db.Import(ctx, table, path, newOnly)
	if err != nil {
		return err
	}

	fmt.Fprintf(s.out, "Imported %s from %s into %s.\n", rows(n), path, table)
	return nil
}

func rows(n int) string {
	if n == 1 {
		return "1 row"
	}
	return humanize.Comma(int64(n)) + " rows"
}
