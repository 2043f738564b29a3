package format

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/pseudomuto/sqlshell/pkg/consts"
	"golang.org/x/term"
)

// Defaults are the standard formatting options.
var Defaults = FormatterOptions{
	NullText:     "NULL",
	EmptyMessage: "No data.",
}

type (
	// FormatterOptions controls formatting behavior
	FormatterOptions struct {
		// NullText is displayed for NULL values
		NullText string

		// EmptyMessage is displayed instead of a table when there are no rows
		EmptyMessage string
	}

	// Formatter renders results and help with configurable options
	Formatter struct {
		options FormatterOptions
	}
)

// New creates a new Formatter with the specified options
func New(options FormatterOptions) *Formatter {
	if options.NullText == "" {
		options.NullText = Defaults.NullText
	}
	if options.EmptyMessage == "" {
		options.EmptyMessage = Defaults.EmptyMessage
	}
	return &Formatter{options: options}
}

// WithEmptyMessage returns a copy of the formatter that reports an empty
// result with msg, e.g. "No indexes.".
func (f *Formatter) WithEmptyMessage(msg string) *Formatter {
	opts := f.options
	opts.EmptyMessage = msg
	return New(opts)
}

// Affected reports the row count of a statement that returned no result set.
func (f *Formatter) Affected(w io.Writer, n int64) error {
	_, err := fmt.Fprintf(w, "%s %s affected.\n", humanize.Comma(n), plural(n, "row"))
	return err
}

// Results formats a result set (convenience function)
func Results(w io.Writer, options FormatterOptions, rs *ResultSet) error {
	return New(options).Results(w, rs)
}

// ScreenWidth returns the width to wrap help text to. COLUMNS wins when it is
// a valid number, then the width of the terminal on stdout, then
// consts.DefaultScreenWidth.
func ScreenWidth() int {
	if cols, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && cols > 0 {
		return cols
	}

	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}

	return consts.DefaultScreenWidth
}

func plural(n int64, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
