package format

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
)

// ResultSet is the data displayed for a query.
type ResultSet struct {
	// Columns are the column names, in order
	Columns []string

	// Rows hold at most Limit rows (all of them when Limit is 0)
	Rows [][]any

	// Total is the number of rows the query produced
	Total int

	// Limit is the row limit in effect, 0 for none
	Limit int

	// Elapsed is the query time. It is omitted from the footer when zero.
	Elapsed time.Duration
}

// Results writes rs as a bordered table followed by a footer such as
// "1,204 rows (0.031 seconds)", or "5 of 10 rows" when a limit is in effect.
// An empty result prints the EmptyMessage instead. Columns are sized by
// display width, so wide (e.g. CJK) characters stay aligned.
func (f *Formatter) Results(w io.Writer, rs *ResultSet) error {
	if len(rs.Rows) == 0 {
		_, err := fmt.Fprintln(w, f.options.EmptyMessage)
		return err
	}

	widths := make([]int, len(rs.Columns))
	cells := make([][]string, len(rs.Rows))
	for i, col := range rs.Columns {
		widths[i] = runewidth.StringWidth(col)
	}

	for r, row := range rs.Rows {
		cells[r] = make([]string, len(rs.Columns))
		for i := range rs.Columns {
			var v any
			if i < len(row) {
				v = row[i]
			}

			cells[r][i] = f.Value(v)
			widths[i] = max(widths[i], runewidth.StringWidth(cells[r][i]))
		}
	}

	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}

	var b strings.Builder
	b.WriteString(line(sep, "+", "-"))
	b.WriteString(line(pad(rs.Columns, widths), "|", " "))
	b.WriteString(line(sep, "+", "-"))
	for _, row := range cells {
		b.WriteString(line(pad(row, widths), "|", " "))
	}
	b.WriteString(line(sep, "+", "-"))
	b.WriteString(footer(rs))
	b.WriteString("\n\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// Value renders a single column value the way it appears in the table.
func (f *Formatter) Value(v any) string {
	switch val := v.(type) {
	case nil:
		return f.options.NullText
	case []byte:
		return string(val)
	case string:
		return val
	case time.Time:
		return FormatTime(val)
	case fmt.Stringer:
		return val.String()
	}

	return fmt.Sprint(v)
}

// FormatTime renders a timestamp without a zone, dropping an empty time of day
// or fractional part.
func FormatTime(t time.Time) string {
	switch {
	case t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0:
		return t.Format(time.DateOnly)
	case t.Nanosecond() == 0:
		return t.Format(time.DateTime)
	}

	return t.Format("2006-01-02 15:04:05.999999999")
}

func footer(rs *ResultSet) string {
	shown := int64(len(rs.Rows))
	total := int64(rs.Total)

	var epilog string
	if rs.Limit > 0 {
		epilog = fmt.Sprintf("%s of %s %s", humanize.Comma(shown), humanize.Comma(total), plural(total, "row"))
	} else {
		epilog = fmt.Sprintf("%s %s", humanize.Comma(shown), plural(shown, "row"))
	}

	if rs.Elapsed > 0 {
		epilog = fmt.Sprintf("%s (%.3f seconds)", epilog, rs.Elapsed.Seconds())
	}

	return epilog
}

func pad(fields []string, widths []int) []string {
	padded := make([]string, len(fields))
	for i, field := range fields {
		padded[i] = field + strings.Repeat(" ", widths[i]-runewidth.StringWidth(field))
	}
	return padded
}

func line(fields []string, delim, padChar string) string {
	return delim + padChar + strings.Join(fields, padChar+delim+padChar) + padChar + delim + "\n"
}
