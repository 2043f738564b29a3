// Package format renders sqlshell output: query results as a bordered table and
// help topics wrapped to the terminal width.
//
// Usage:
//
//	// Object-oriented API with default options
//	formatter := format.New(format.Defaults)
//
//	var buf bytes.Buffer
//	err := formatter.Results(&buf, &format.ResultSet{
//		Columns: []string{"id", "name"},
//		Rows:    [][]any{{1, "alice"}, {2, nil}},
//		Total:   2,
//	})
//
//	// Functional API
//	err := format.Results(&buf, format.Defaults, rs)
//
// The table looks like this:
//
//	+----+-------+
//	| id | name  |
//	+----+-------+
//	| 1  | alice |
//	| 2  | NULL  |
//	+----+-------+
//	2 rows (0.003 seconds)
//
// Help is rendered as a column of usages, a " - " separator, and the help
// text wrapped to the remaining width:
//
//	err := formatter.Help(&buf, topics, epilog, format.ScreenWidth())
package format
