package parser_test

import (
	"testing"

	. "github.com/pseudomuto/sqlshell/pkg/parser"
	"github.com/stretchr/testify/require"
)

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name     string
		sql      string
		expected State
	}{
		{name: "complete", sql: "select 1;", expected: State{Complete: true}},
		{name: "no delimiter", sql: "select 1", expected: State{}},
		{name: "trailing whitespace", sql: "select 1;  \n", expected: State{Complete: true}},
		{name: "trailing comment", sql: "select 1; -- done", expected: State{Complete: true}},
		{name: "trailing block comment", sql: "select 1; /* done */", expected: State{Complete: true}},
		{name: "delimiter in string", sql: "select ';'", expected: State{}},
		{name: "delimiter after string", sql: "select ';';", expected: State{Complete: true}},
		{name: "delimiter in identifier", sql: `select "a;"`, expected: State{}},
		{name: "delimiter in backticks", sql: "select `a;`", expected: State{}},
		{name: "delimiter in brackets", sql: "select [a;]", expected: State{}},
		{name: "delimiter in line comment", sql: "select 1 -- ;", expected: State{}},
		{name: "delimiter in block comment", sql: "select 1 /* ; */", expected: State{}},
		{name: "open single quote", sql: "select 'abc;", expected: State{Open: "'"}},
		{name: "open double quote", sql: `select "abc;`, expected: State{Open: `"`}},
		{name: "open backtick", sql: "select `abc;", expected: State{Open: "`"}},
		{name: "open block comment", sql: "select 1; /* ", expected: State{Open: "/*"}},
		{name: "doubled quote", sql: "select 'it''s';", expected: State{Complete: true}},
		{name: "multi line string", sql: "select 'a\nb;\n';", expected: State{Complete: true}},
		{name: "empty", sql: "", expected: State{}},
		{name: "only delimiter", sql: ";", expected: State{Complete: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Analyze(tt.sql))
			require.Equal(t, tt.expected.Complete, IsComplete(tt.sql))
		})
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		sql      string
		expected []string
	}{
		{name: "single", sql: "select 1;", expected: []string{"select 1"}},
		{name: "multiple", sql: "select 1; select 2;", expected: []string{"select 1", "select 2"}},
		{
			name:     "delimiter in literal",
			sql:      "insert into t values (';'); select * from t;",
			expected: []string{"insert into t values (';')", "select * from t"},
		},
		{name: "empty statements", sql: ";; select 1;;", expected: []string{"select 1"}},
		{name: "trailing comment", sql: "select 1; -- done", expected: []string{"select 1"}},
		{name: "no delimiter", sql: "select 1", expected: []string{"select 1"}},
		{name: "blank", sql: "  ", expected: nil},
		{name: "keeps inner comments", sql: "select /* x */ 1;", expected: []string{"select /* x */ 1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Split(tt.sql))
		})
	}
}

func TestReturnsRows(t *testing.T) {
	tests := []struct {
		sql      string
		expected bool
	}{
		{"select 1", true},
		{"SELECT 1", true},
		{"  with x as (select 1) select * from x", true},
		{"(select 1)", true},
		{"pragma table_info(t)", true},
		{"show tables", true},
		{"explain select 1", true},
		{"values (1), (2)", true},
		{"EXEC sp_help", true},
		{"execute sp_columns 'people'", true},
		{"call refresh_totals()", true},
		{"fetch next from cur", true},
		{"insert into t values (1)", false},
		{"insert into t values (1) returning id", true},
		{"update t set a = 'returning'", false},
		{"create table t (id integer)", false},
		{"delete from t", false},
		{"-- comment\nselect 1", true},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.sql, func(t *testing.T) {
			require.Equal(t, tt.expected, ReturnsRows(tt.sql))
		})
	}
}
