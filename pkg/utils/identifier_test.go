package utils_test

import (
	"testing"

	"github.com/pseudomuto/sqlshell/pkg/utils"
	"github.com/stretchr/testify/require"
)

func TestQuotingIdentifier(t *testing.T) {
	tests := []struct {
		name     string
		quoting  utils.Quoting
		input    string
		expected string
	}{
		{name: "simple identifier", quoting: utils.DoubleQuotes, input: "table", expected: `"table"`},
		{name: "qualified identifier", quoting: utils.DoubleQuotes, input: "public.table", expected: `"public"."table"`},
		{name: "already quoted", quoting: utils.DoubleQuotes, input: `"table"`, expected: `"table"`},
		{name: "quoted with dots", quoting: utils.DoubleQuotes, input: `"a.b"`, expected: `"a.b"`},
		{name: "embedded closer", quoting: utils.DoubleQuotes, input: `my"table`, expected: `"my""table"`},
		{name: "empty string", quoting: utils.DoubleQuotes, input: "", expected: ""},
		{name: "backticks qualified", quoting: utils.Backticks, input: "analytics.events", expected: "`analytics`.`events`"},
		{name: "partially backticked", quoting: utils.Backticks, input: "`analytics`.events", expected: "`analytics`.`events`"},
		{name: "brackets with spaces", quoting: utils.Brackets, input: "dbo.Order Items", expected: "[dbo].[Order Items]"},
		{name: "brackets embedded closer", quoting: utils.Brackets, input: "a]b", expected: "[a]]b]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.quoting.Identifier(tt.input))
		})
	}
}

func TestQuotingIdentifiers(t *testing.T) {
	require.Equal(t, []string{"`a`", "`b.c`"}, utils.Backticks.Identifiers("a", "b.c"))
}

func TestQuotingIsQuoted(t *testing.T) {
	require.True(t, utils.Backticks.IsQuoted("`table`"))
	require.True(t, utils.DoubleQuotes.IsQuoted(`"a""b"`))
	require.False(t, utils.Backticks.IsQuoted("table"))
	require.False(t, utils.Backticks.IsQuoted("`db`.`table`"))
	require.False(t, utils.Backticks.IsQuoted(""))
	require.False(t, utils.Brackets.IsQuoted(`"table"`))
}

func TestQuotingStrip(t *testing.T) {
	require.Equal(t, "table", utils.Brackets.Strip("[table]"))
	require.Equal(t, "table", utils.Brackets.Strip("table"))
	require.Equal(t, "a]b", utils.Brackets.Strip("[a]]b]"))
	require.Equal(t, `a"b`, utils.DoubleQuotes.Strip(`"a""b"`))
}
