package database

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlshell/pkg/consts"
)

// FileFormat is the format of an export or import file.
type FileFormat int

const (
	// CSV is comma separated values with a header row
	CSV FileFormat = iota + 1

	// JSONLines is one JSON object per line
	JSONLines
)

// FormatOf picks the file format from the extension of path: ".csv" or ".json".
func FormatOf(path string) (FileFormat, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return CSV, nil
	case ".json":
		return JSONLines, nil
	default:
		return 0, errors.Errorf("%q is not a valid file extension, use \".csv\" or \".json\"", ext)
	}
}

// Export writes every row of table to path, which is overwritten. The format
// is chosen from the extension of path. It returns the number of rows written.
//
// CSV files start with a header row and represent NULL as an empty field;
// empty strings are written quoted ("") so they stay distinct.
// JSON Lines files hold one object per row with keys in column order; DATE
// columns are written as YYYY-MM-DD and other timestamps in RFC 3339.
func (d *DB) Export(ctx context.Context, table, path string) (int, error) {
	format, err := FormatOf(path)
	if err != nil {
		return 0, err
	}

	name, err := d.FindTable(ctx, table)
	if err != nil {
		return 0, err
	}

	rows, err := d.db.QueryContext(ctx, "SELECT * FROM "+d.dialect.Quoting.Identifier(name))
	if err != nil {
		return 0, errors.Wrapf(err, "failed to read %s", name)
	}
	defer func() { _ = rows.Close() }()

	types, err := rows.ColumnTypes()
	if err != nil {
		return 0, errors.Wrap(err, "failed to read columns")
	}

	columns := make([]string, len(types))
	dates := make([]bool, len(types))
	for i, ct := range types {
		columns[i] = ct.Name()
		dates[i] = strings.EqualFold(ct.DatabaseTypeName(), "DATE")
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, consts.ModeFile)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to create file: %s", path)
	}
	defer func() { _ = f.Close() }()

	var w rowWriter
	switch format {
	case CSV:
		w = newCSVWriter(f, columns)
	case JSONLines:
		w = &jsonWriter{w: f, columns: columns}
	}

	if err := w.header(); err != nil {
		return 0, errors.Wrapf(err, "failed to write %s", path)
	}

	count := 0
	for rows.Next() {
		row, err := scanRow(rows, len(columns))
		if err != nil {
			return count, err
		}

		for i, v := range row {
			if t, ok := v.(time.Time); ok {
				row[i] = formatTimestamp(t, dates[i])
			}
		}

		if err := w.row(row); err != nil {
			return count, errors.Wrapf(err, "failed to write %s", path)
		}
		count++
	}

	if err := rows.Err(); err != nil {
		return count, err
	}

	if err := w.flush(); err != nil {
		return count, errors.Wrapf(err, "failed to write %s", path)
	}

	return count, f.Close()
}

type rowWriter interface {
	header() error
	row([]any) error
	flush() error
}

type csvWriter struct {
	w       *bufio.Writer
	columns []string
}

func newCSVWriter(w io.Writer, columns []string) *csvWriter {
	return &csvWriter{w: bufio.NewWriter(w), columns: columns}
}

func (c *csvWriter) header() error {
	fields := make([]string, len(c.columns))
	for i, col := range c.columns {
		fields[i] = csvField(col)
	}
	return c.line(fields)
}

func (c *csvWriter) row(values []any) error {
	fields := make([]string, len(values))
	for i, v := range values {
		if v != nil {
			fields[i] = csvField(text(v))
		}
	}
	return c.line(fields)
}

func (c *csvWriter) line(fields []string) error {
	_, err := c.w.WriteString(strings.Join(fields, ",") + "\n")
	return err
}

func (c *csvWriter) flush() error {
	return c.w.Flush()
}

// csvField quotes s where encoding/csv would, and also when it is empty: NULL
// is the only value written as a bare empty field.
func csvField(s string) string {
	if s != "" && s != `\.` && !strings.ContainsAny(s, ",\"\r\n") {
		if r, _ := utf8.DecodeRuneInString(s); !unicode.IsSpace(r) {
			return s
		}
	}

	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

type jsonWriter struct {
	w       io.Writer
	columns []string
}

func (j *jsonWriter) header() error { return nil }

func (j *jsonWriter) row(values []any) error {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, v := range values {
		if i > 0 {
			b.WriteString(", ")
		}

		if err := encodeJSON(&b, j.columns[i]); err != nil {
			return err
		}
		b.WriteString(": ")
		if err := encodeJSON(&b, v); err != nil {
			return err
		}
	}
	b.WriteString("}\n")

	_, err := j.w.Write(b.Bytes())
	return err
}

func (j *jsonWriter) flush() error { return nil }

func encodeJSON(b *bytes.Buffer, v any) error {
	enc := json.NewEncoder(b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}

	// Encode terminates every value with a newline.
	b.Truncate(b.Len() - 1)
	return nil
}

func formatTimestamp(t time.Time, date bool) string {
	if date {
		return t.Format(time.DateOnly)
	}
	return t.Format(time.RFC3339Nano)
}

// text renders a value for a CSV field.
func text(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(val)
	}

	return fmt.Sprint(v)
}
