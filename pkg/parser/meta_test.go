package parser_test

import (
	"testing"

	. "github.com/pseudomuto/sqlshell/pkg/parser"
	"github.com/stretchr/testify/require"
)

func TestIsMeta(t *testing.T) {
	require.True(t, IsMeta(".tables"))
	require.True(t, IsMeta("  .exit"))
	require.True(t, IsMeta("?"))
	require.True(t, IsMeta("? .tables"))
	require.False(t, IsMeta("select 1;"))
	require.False(t, IsMeta("?x"))
	require.False(t, IsMeta(""))
}

func TestParseMeta(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected *Meta
	}{
		{name: "no args", line: ".tables", expected: &Meta{Name: ".tables"}},
		{name: "help alias", line: "? .tables", expected: &Meta{Name: "?", Args: []string{".tables"}}},
		{name: "args", line: "  .export users /tmp/u.csv ", expected: &Meta{Name: ".export", Args: []string{"users", "/tmp/u.csv"}}},
		{name: "single quoted", line: `.tables '^user_\d+'`, expected: &Meta{Name: ".tables", Args: []string{`^user_\d+`}}},
		{name: "double quoted with spaces", line: `.history "select .* from"`, expected: &Meta{Name: ".history", Args: []string{"select .* from"}}},
		{name: "flag", line: ".import -n t f.csv", expected: &Meta{Name: ".import", Args: []string{"-n", "t", "f.csv"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, err := ParseMeta(tt.line)
			require.NoError(t, err)
			require.Equal(t, tt.expected, meta)
		})
	}

	t.Run("unterminated quote", func(t *testing.T) {
		_, err := ParseMeta(`.tables 'abc`)
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to parse command")
	})
}
