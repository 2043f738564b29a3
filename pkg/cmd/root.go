package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlshell/pkg/config"
	"github.com/pseudomuto/sqlshell/pkg/consts"
	"github.com/pseudomuto/sqlshell/pkg/shell"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

type (
	Params struct {
		fx.In

		Args       []string
		Ctx        context.Context
		Editor     EditorFactory
		Lifecycle  fx.Lifecycle
		Loader     *config.Loader
		Shutdowner fx.Shutdowner
		Version    *Version
	}

	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}

	// EditorFactory creates the line editor the shell reads from.
	EditorFactory func(*shell.Completer) (shell.LineEditor, error)
)

// Run registers a start hook that executes the sqlshell CLI with p.Args and
// shuts the application down with exit code 1 when it fails.
//
// Start hooks are bounded by fx's start timeout, so the CLI runs on its own
// goroutine.
func Run(p Params) {
	cli.VersionPrinter = printVersion(p.Version)
	app := root(p.Loader, p.Editor, p.Version)

	p.Lifecycle.Append(fx.StartHook(func() {
		go func() {
			if err := app.Run(p.Ctx, p.Args); err != nil {
				slog.Error("Error running sqlshell", "err", err)
				_ = p.Shutdowner.Shutdown(fx.ExitCode(1))
				return
			}

			_ = p.Shutdowner.Shutdown(fx.ExitCode(0))
		}()
	}))
}

func root(loader *config.Loader, editor EditorFactory, version *Version) *cli.Command {
	return &cli.Command{
		Name:      consts.Name,
		Usage:     "An interactive SQL shell for any database/sql driver",
		ArgsUsage: "<url|section>",
		Description: `sqlshell connects to the database named by a URL, or by a (prefix of a)
section in the configuration file, and reads SQL statements and dot
commands from the terminal. Type .help inside the shell for a list of
commands.`,
		Version: version.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "the sqlshell config file",
				Sources:     cli.EnvVars("SQLSHELL_CONFIG"),
				DefaultText: consts.DefaultConfigFile,
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
			&cli.StringFlag{
				Name:    "history",
				Aliases: []string{"H"},
				Usage:   "the file command history is kept in",
				Value:   consts.DefaultHistoryFile,
			},
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "a .env file loaded into the environment before the config is read",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "log debug messages to stderr",
			},
		},
		Before: setupLogging,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return errors.New("exactly one database URL or config section is required")
			}

			cfg, err := loader.Load(cmd.String("config"), cmd.String("env-file"))
			if err != nil {
				return err
			}

			sh := shell.New(shell.Options{
				Config:  cfg,
				Out:     cmd.Root().Writer,
				Err:     cmd.Root().ErrWriter,
				Version: version.Version,
			})

			err = sh.Start(ctx, cmd.Args().First(), cmd.String("history"), cmd.IsSet("history"))
			if err != nil {
				return err
			}
			defer func() { _ = sh.Close() }()

			ed, err := editor(sh.Completer())
			if err != nil {
				return errors.Wrap(err, "failed to initialize line editor")
			}
			defer func() { _ = ed.Close() }()

			return sh.Run(ctx, ed)
		},
	}
}

func printVersion(v *Version) func(*cli.Command) {
	return func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Root().Writer, "Version:", v.Version)
		fmt.Fprintln(cmd.Root().Writer, "Commit:", v.Commit)
		fmt.Fprintln(cmd.Root().Writer, "Date:", v.Timestamp)
	}
}

func readlineEditor(c *shell.Completer) (shell.LineEditor, error) {
	ed, err := shell.NewReadlineEditor(c)
	if err != nil {
		return nil, err
	}

	return ed, nil
}

func newEditorFactory() EditorFactory {
	return readlineEditor
}
