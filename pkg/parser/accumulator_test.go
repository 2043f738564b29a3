package parser_test

import (
	"testing"

	. "github.com/pseudomuto/sqlshell/pkg/parser"
	"github.com/stretchr/testify/require"
)

func addLines(t *testing.T, acc *Accumulator, lines ...string) bool {
	t.Helper()

	complete := false
	for _, line := range lines {
		require.False(t, complete, "statement completed before %q", line)
		complete = acc.Add(line)
	}

	return complete
}

func TestAccumulator(t *testing.T) {
	t.Run("joins lines with a single space", func(t *testing.T) {
		var acc Accumulator
		require.True(t, addLines(t, &acc, "select *", "  from users   ", "\twhere id = 1;"))
		require.Equal(t, "select * from users where id = 1;", acc.String())
	})

	t.Run("single line", func(t *testing.T) {
		var acc Accumulator
		require.True(t, acc.Add("  select 1;  "))
		require.Equal(t, "select 1;", acc.String())
	})

	t.Run("skips blank and comment lines", func(t *testing.T) {
		var acc Accumulator
		require.False(t, acc.Add(""))
		require.False(t, acc.Pending())
		require.True(t, addLines(t, &acc, "select 1", "", "-- a comment", "   ", ";"))
		require.Equal(t, "select 1 ;", acc.String())
	})

	t.Run("drops trailing line comments", func(t *testing.T) {
		var acc Accumulator
		require.True(t, addLines(t, &acc, "select a, -- the a", "b from t;"))
		require.Equal(t, "select a, b from t;", acc.String())
	})

	t.Run("keeps lines inside quotes verbatim", func(t *testing.T) {
		var acc Accumulator
		require.True(t, addLines(t, &acc, "insert into t values ('a", "", "  -- not a comment", "b');"))
		require.Equal(t, "insert into t values ('a  -- not a commentb');", acc.String())
	})

	t.Run("in quote", func(t *testing.T) {
		var acc Accumulator
		require.False(t, acc.InQuote())
		acc.Add("select 'abc")
		require.True(t, acc.InQuote())
		require.True(t, acc.Pending())
		acc.Reset()
		require.False(t, acc.Pending())
		require.Empty(t, acc.String())
	})

	t.Run("multiple statements", func(t *testing.T) {
		var acc Accumulator
		require.True(t, acc.Add("create table t (id int); insert into t values (1);"))
		require.Equal(t, []string{"create table t (id int)", "insert into t values (1)"}, Split(acc.String()))
	})
}

func TestKeep(t *testing.T) {
	require.True(t, Keep("select 1", false))
	require.False(t, Keep("", false))
	require.False(t, Keep("   ", false))
	require.False(t, Keep("  -- comment", false))
	require.True(t, Keep("", true))
	require.True(t, Keep("-- comment", true))
}
