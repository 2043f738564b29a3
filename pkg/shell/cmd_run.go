package shell

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlshell/pkg/config"
	"github.com/pseudomuto/sqlshell/pkg/parser"
)

// runCmd runs a script of ";" terminated statements, echoing each one, and
// stops at the first failure.
func runCmd(ctx context.Context, s *Shell, args []string) error {
	path := config.ExpandHome(args[0])

	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return errors.Errorf("File %q does not exist or is not a regular file.", path)
	}

	if !strings.EqualFold(filepath.Ext(path), ".sql") {
		return errors.Errorf("File %q does not end with \".sql\".", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	var (
		acc        parser.Accumulator
		lno, start int
		statements int
	)

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		lno++
		line := scanner.Text()
		if !acc.Pending() {
			start = lno
		}

		if !acc.Add(line) {
			continue
		}

		sql := acc.String()
		acc.Reset()
		statements++

		if err := s.runSQL(ctx, sql, true); err != nil {
			return errors.Wrapf(err, "%q, line %d", path, start)
		}
	}

	if err := scanner.Err(); err != nil {
		return errors.Wrapf(err, "failed to read %s", path)
	}

	if acc.Pending() {
		return errors.Errorf("%q, line %d: File ended with an incomplete SQL statement.", path, start)
	}

	if statements == 0 {
		return errors.Errorf("%q contains no SQL statements.", path)
	}

	return nil
}
