package shell

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlshell/pkg/config"
	"github.com/pseudomuto/sqlshell/pkg/consts"
	"github.com/pseudomuto/sqlshell/pkg/database"
	"github.com/pseudomuto/sqlshell/pkg/format"
	"github.com/pseudomuto/sqlshell/pkg/parser"
)

var (
	bannerColor = color.New(color.FgBlue, color.Bold)
	promptColor = color.New(color.FgCyan, color.Bold)
	errorColor  = color.New(color.FgRed)
)

type (
	// Options configure a Shell. Zero values get sensible defaults.
	Options struct {
		// Config holds the sections ".connect" can refer to
		Config *config.Config

		// Open connects to a database URL (default: OpenDatabase)
		Open Opener

		// Out and Err receive normal and error output (default: stdout, stderr)
		Out io.Writer
		Err io.Writer

		// Width is the screen width help is wrapped to (default: format.ScreenWidth)
		Width int

		// Version is shown in the start-up banner
		Version string
	}

	// Shell is the interactive loop.
	Shell struct {
		config    *config.Config
		open      Opener
		out       io.Writer
		err       io.Writer
		width     int
		version   string
		formatter *format.Formatter
		commands  registry
		session   *Session
		editor    LineEditor
	}
)

// New creates a Shell. Call Start to connect before calling Run.
func New(opts Options) *Shell {
	s := &Shell{
		config:    opts.Config,
		open:      opts.Open,
		out:       opts.Out,
		err:       opts.Err,
		width:     opts.Width,
		version:   opts.Version,
		formatter: format.New(format.Defaults),
	}

	if s.config == nil {
		s.config = &config.Config{}
	}
	if s.open == nil {
		s.open = OpenDatabase
	}
	if s.out == nil {
		s.out = os.Stdout
	}
	if s.err == nil {
		s.err = os.Stderr
	}
	if s.width <= 0 {
		s.width = format.ScreenWidth()
	}

	s.commands = commands()
	return s
}

// Start prints the banner, resolves spec to a URL, connects, and opens the
// history. The history file named by a config section wins over
// historyFile. A history file that can't be opened is only an error when it
// was required (given explicitly or by a section); otherwise the session
// keeps its history in memory.
func (s *Shell) Start(ctx context.Context, spec, historyFile string, required bool) error {
	_, _ = bannerColor.Fprintf(s.out, "%s, version %s\n\n", consts.Name, s.version)

	target, err := s.config.Resolve(spec)
	if err != nil {
		return err
	}

	if target.HistoryFile != "" {
		historyFile = target.HistoryFile
		required = true
	}

	db, err := s.connect(ctx, target.URL)
	if err != nil {
		return err
	}

	history, err := OpenHistory(historyFile)
	if err != nil {
		if required {
			_ = db.Close()
			return err
		}

		slog.Warn("History will not be saved", "err", err)
		history = NewMemoryHistory()
	}

	s.session = &Session{db: db, history: history}
	return nil
}

// Session returns the current session, nil before Start.
func (s *Shell) Session() *Session {
	return s.session
}

// Completer returns the completion provider for the shell's line editor.
func (s *Shell) Completer() *Completer {
	return NewCompleter(s.commands.names(), func(ctx context.Context) ([]string, error) {
		if s.session == nil {
			return nil, nil
		}
		return s.session.db.Tables(ctx)
	})
}

// Close ends the session.
func (s *Shell) Close() error {
	if s.session == nil {
		return nil
	}

	err := s.session.Close()
	s.session = nil
	return err
}

// Run reads and runs input until end of input or ".exit". Errors from
// commands and statements are reported and the loop goes on; only a failing
// editor ends it with an error.
func (s *Shell) Run(ctx context.Context, editor LineEditor) error {
	if s.session == nil {
		return errors.New("shell is not connected")
	}

	s.editor = editor
	if err := editor.ResetHistory(s.session.history.Entries()); err != nil {
		return errors.Wrap(err, "failed to load history")
	}

	fmt.Fprintf(s.out, "\nType .help for help on %s commands\n", consts.Name)

	var acc parser.Accumulator
	for {
		line, err := editor.Readline(s.prompt(!acc.Pending()))
		switch {
		case errors.Is(err, io.EOF):
			fmt.Fprintln(s.out)
			return nil
		case errors.Is(err, ErrInterrupt):
			acc.Reset()
			continue
		case err != nil:
			return errors.Wrap(err, "failed to read input")
		}

		var cmd Command
		switch {
		case !acc.Pending() && parser.IsMeta(line):
			cmd, err = ParseCommand(line)
			s.record(strings.TrimSpace(line))
			if err != nil {
				s.printError(err)
				continue
			}
		case acc.Add(line):
			cmd = SQLCommand(acc.String())
			acc.Reset()
			s.record(cmd.SQL)
		default:
			continue
		}

		if err := s.dispatch(ctx, cmd); err != nil {
			if errors.Is(err, errExit) {
				return nil
			}
			s.printError(err)
		}
	}
}

func (s *Shell) dispatch(ctx context.Context, cmd Command) error {
	slog.Debug("Dispatching input", "kind", cmd.Kind.String(), "command", cmd.Name, "args", cmd.Args)
	if cmd.Kind == KindSQL {
		return s.runSQL(ctx, cmd.SQL, false)
	}

	mc, err := s.commands.lookup(cmd.Name)
	if err != nil {
		return err
	}

	if err := mc.check(cmd.Args); err != nil {
		return err
	}

	return mc.run(ctx, s, cmd.Args)
}

// runSQL runs the statements in sql in order, stopping at the first failure.
// With echo set each statement is printed before it runs.
func (s *Shell) runSQL(ctx context.Context, sql string, echo bool) error {
	for _, stmt := range parser.Split(sql) {
		if echo {
			fmt.Fprintf(s.out, "%s\n\n", stmt)
		}

		res, err := s.session.db.Execute(ctx, stmt, s.session.limit)
		if err != nil {
			return err
		}

		if err := s.display(res, s.formatter, s.session.limit); err != nil {
			return err
		}
	}

	return nil
}

// display prints a statement result: a table for a result set, otherwise the
// number of affected rows when the driver knows it.
func (s *Shell) display(res *database.Result, f *format.Formatter, limit int) error {
	if !res.HasRows() {
		if res.RowsAffected < 0 {
			return nil
		}
		return f.Affected(s.out, res.RowsAffected)
	}

	return f.Results(s.out, &format.ResultSet{
		Columns: res.Columns,
		Rows:    res.Rows,
		Total:   res.Total,
		Limit:   limit,
		Elapsed: res.Elapsed,
	})
}

// connect opens url, reporting progress.
func (s *Shell) connect(ctx context.Context, url string) (Database, error) {
	fmt.Fprintf(s.out, "Connecting to %s ...\n", database.Redact(url))
	return s.open(ctx, url)
}

func (s *Shell) record(entry string) {
	if entry == "" {
		return
	}

	if err := s.session.history.Add(entry); err != nil {
		slog.Warn("Failed to save history", "err", err)
	}

	if err := s.editor.AddHistory(entry); err != nil {
		slog.Debug("Failed to add editor history", "err", err)
	}
}

func (s *Shell) prompt(primary bool) string {
	suffix := ">"
	if !primary {
		suffix = "?"
	}

	return promptColor.Sprintf("(%s) %s ", s.session.db.Name(), suffix)
}

func (s *Shell) printError(err error) {
	fmt.Fprintf(s.err, "%s %s\n", errorColor.Sprint("Error:"), err)
}
