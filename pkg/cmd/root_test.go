package cmd

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/pseudomuto/sqlshell/pkg/cmd/testutil"
	"github.com/pseudomuto/sqlshell/pkg/config"
	"github.com/pseudomuto/sqlshell/pkg/shell"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

var testVersion = &Version{Version: "1.2.3", Commit: "abc123", Timestamp: "2025-01-02"}

func testRoot(t *testing.T, editor *testutil.ScriptEditor) *cli.Command {
	t.Helper()

	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	loader := &config.Loader{DefaultPath: filepath.Join(t.TempDir(), "missing.yaml")}
	factory := func(*shell.Completer) (shell.LineEditor, error) { return editor, nil }
	return root(loader, factory, testVersion)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRootRunsShell(t *testing.T) {
	history := filepath.Join(t.TempDir(), "history")
	editor := testutil.NewScriptEditor(
		"CREATE TABLE t (n INTEGER);",
		"INSERT INTO t VALUES (1);",
		"SELECT n",
		"FROM t;",
	)

	out, err := testutil.RunCommand(t, testRoot(t, editor), "--history", history, "sqlite://")
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(out.Stdout.String(), "sqlshell, version 1.2.3\n\n"))
	require.Contains(t, out.Stdout.String(), "Connecting to sqlite:// ...")
	require.Contains(t, out.Stdout.String(), "| n |\n+---+\n| 1 |")
	require.Empty(t, out.Stderr.String())
	require.True(t, editor.Closed)

	data, err := os.ReadFile(history)
	require.NoError(t, err)
	require.Equal(t, "CREATE TABLE t (n INTEGER);\nINSERT INTO t VALUES (1);\nSELECT n FROM t;\n", string(data))
}

func TestRootArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "none", args: nil},
		{name: "too many", args: []string{"sqlite://", "sqlite://"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := testutil.RunCommand(t, testRoot(t, testutil.NewScriptEditor()), tt.args...)
			require.EqualError(t, err, "exactly one database URL or config section is required")
		})
	}
}

func TestRootConfigSection(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "app.db")
	history := filepath.Join(dir, "app-history")

	const name = "SQLSHELL_CMD_TEST_DIR"
	t.Cleanup(func() { _ = os.Unsetenv(name) })

	envFile := writeFile(t, ".env", name+"="+dir+"\n")
	cfg := writeFile(t, "config.yaml", `
application:
  url: sqlite:///${SQLSHELL_CMD_TEST_DIR}/app.db
  history: $SQLSHELL_CMD_TEST_DIR/app-history
archive:
  url: sqlite://
`)

	editor := testutil.NewScriptEditor("CREATE TABLE things (id INTEGER);", ".url")
	out, err := testutil.RunCommand(t, testRoot(t, editor), "-c", cfg, "--env-file", envFile, "app")
	require.NoError(t, err)
	require.Contains(t, out.Stdout.String(), "sqlite:///"+db)

	_, err = os.Stat(db)
	require.NoError(t, err)

	data, err := os.ReadFile(history)
	require.NoError(t, err)
	require.Equal(t, "CREATE TABLE things (id INTEGER);\n.url\n", string(data))
}

func TestRootConfigFromEnvironment(t *testing.T) {
	cfg := writeFile(t, "config.yaml", "memory:\n  url: sqlite://\n")
	t.Setenv("SQLSHELL_CONFIG", cfg)

	history := filepath.Join(t.TempDir(), "history")
	out, err := testutil.RunCommand(t, testRoot(t, testutil.NewScriptEditor(".url")), "-H", history, "mem")
	require.NoError(t, err)
	require.Contains(t, out.Stdout.String(), "sqlite://\n")
}

func TestRootStartupErrors(t *testing.T) {
	history := filepath.Join(t.TempDir(), "history")

	t.Run("missing config file", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "nope.yaml")
		_, err := testutil.RunCommand(t, testRoot(t, testutil.NewScriptEditor()), "-c", missing, "sqlite://")
		require.Error(t, err)
	})

	t.Run("missing env file", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), ".env")
		_, err := testutil.RunCommand(t, testRoot(t, testutil.NewScriptEditor()), "--env-file", missing, "sqlite://")
		require.ErrorContains(t, err, "failed to load env file")
	})

	t.Run("unknown section", func(t *testing.T) {
		_, err := testutil.RunCommand(t, testRoot(t, testutil.NewScriptEditor()), "-H", history, "nope")
		require.EqualError(t, err, `unknown section "nope"`)
	})

	t.Run("unsupported url", func(t *testing.T) {
		_, err := testutil.RunCommand(t, testRoot(t, testutil.NewScriptEditor()), "-H", history, "oracle://db")
		require.Error(t, err)
	})
}

func TestRootDebugLogging(t *testing.T) {
	history := filepath.Join(t.TempDir(), "history")
	_, err := testutil.RunCommand(t, testRoot(t, testutil.NewScriptEditor()), "--debug", "-H", history, "sqlite://")
	require.NoError(t, err)
	require.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
}

func TestPrintVersion(t *testing.T) {
	out, err := testutil.RunCommand(t, &cli.Command{
		Name:   "sqlshell",
		Action: func(context.Context, *cli.Command) error { return nil },
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			printVersion(testVersion)(cmd)
			return ctx, nil
		},
	})
	require.NoError(t, err)
	require.Equal(t, "Version: 1.2.3\nCommit: abc123\nDate: 2025-01-02\n", out.Stdout.String())
}
