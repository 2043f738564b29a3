package cmd

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"
)

// setupLogging installs the default slog logger, writing text records to the
// root command's error stream. --debug lowers the level to debug.
func setupLogging(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	level := slog.LevelInfo
	if cmd.Bool("debug") {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(cmd.Root().ErrWriter, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))

	slog.Debug("Logging configured", "level", level.String())
	return ctx, nil
}
