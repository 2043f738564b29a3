package format_test

import (
	"bytes"
	"testing"

	. "github.com/pseudomuto/sqlshell/pkg/format"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/golden"
)

func TestHelp(t *testing.T) {
	topics := []Topic{
		{Usage: ".exit", Help: "Exit sqlshell."},
		{Usage: ".tables [<re>]", Help: "List the names of all tables in the database.\n   Matching is case-blind."},
	}
	epilog := []string{
		"Anything else is interpreted as SQL.",
		"",
		"Completion for SQL statements is not available.",
	}

	var buf bytes.Buffer
	require.NoError(t, New(Defaults).Help(&buf, topics, epilog, 40))
	golden.Assert(t, buf.String(), "help.golden")

	t.Run("without epilog", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, New(Defaults).Help(&buf, topics[:1], nil, 40))
		require.Equal(t, ".exit - Exit sqlshell.\n", buf.String())
	})

	t.Run("narrow screen", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, New(Defaults).Help(&buf, topics[1:], nil, 10))
		require.Contains(t, buf.String(), ".tables [<re>] - List the names of all tables in the\n")
	})
}

func TestWrap(t *testing.T) {
	require.Equal(t, []string{"a b", "c"}, Wrap("a   b\n c", 3))
	require.Equal(t, []string{"short", "averyveryverylongword", "x"}, Wrap("short averyveryverylongword x", 10))
	require.Empty(t, Wrap("  ", 10))
}

func TestScreenWidth(t *testing.T) {
	t.Setenv("COLUMNS", "120")
	require.Equal(t, 120, ScreenWidth())

	t.Setenv("COLUMNS", "wide")
	require.Positive(t, ScreenWidth())

	t.Setenv("COLUMNS", "0")
	require.Positive(t, ScreenWidth())
}
