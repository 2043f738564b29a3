package shell

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlshell/pkg/config"
	"github.com/pseudomuto/sqlshell/pkg/database"
	"github.com/pseudomuto/sqlshell/pkg/utils"
)

func exitCmd(context.Context, *Shell, []string) error {
	return errExit
}

// connectCmd replaces the session's database. The new connection (and
// history, when the section names one) is opened before anything is
// released, so a failure leaves the session as it was.
func connectCmd(ctx context.Context, s *Shell, args []string) error {
	target, err := s.config.Resolve(args[0])
	if err != nil {
		return err
	}

	db, err := s.connect(ctx, target.URL)
	if err != nil {
		return err
	}

	history := s.session.history
	if target.HistoryFile != "" && config.ExpandHome(target.HistoryFile) != history.Path() {
		if history, err = OpenHistory(target.HistoryFile); err != nil {
			_ = db.Close()
			return err
		}
	}

	old := s.session
	s.session = &Session{db: db, limit: old.limit, history: history}

	if err := old.db.Close(); err != nil {
		slog.Debug("Failed to close previous connection", "err", err)
	}

	if history != old.history {
		slog.Debug("Switching history", "from", old.history.Path(), "to", history.Path())
		if err := old.history.Close(); err != nil {
			slog.Debug("Failed to close previous history", "err", err)
		}

		fmt.Fprintf(s.out, "Loaded history from %q.\n", history.Path())
		if err := s.editor.ResetHistory(history.Entries()); err != nil {
			return errors.Wrap(err, "failed to load history")
		}
	}

	return nil
}

func limitCmd(_ context.Context, s *Shell, args []string) error {
	if len(args) == 0 {
		s.session.limit = 0
		fmt.Fprintln(s.out, "Row limit cleared.")
		return nil
	}

	if !utils.IsIntegerValue(args[0]) {
		return errors.New(".limit takes a non-negative integer")
	}

	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		return errors.New(".limit takes a non-negative integer")
	}

	s.session.limit = n
	if n == 0 {
		fmt.Fprintln(s.out, "Row limit cleared.")
		return nil
	}

	fmt.Fprintf(s.out, "Row limit set to %s.\n", humanize.Comma(int64(n)))
	return nil
}

func urlCmd(_ context.Context, s *Shell, _ []string) error {
	_, err := fmt.Fprintln(s.out, database.Redact(s.session.db.URL()))
	return err
}
