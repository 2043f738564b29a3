package database

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlshell/pkg/utils"
)

// kind is the inferred type of an imported value or column. Kinds are ordered
// so that a column takes the widest kind of its values.
type kind int

const (
	kindNull kind = iota
	kindInteger
	kindReal
	kindText
)

type cell struct {
	kind kind
	text string
}

// dataset is an import file read into memory.
type dataset struct {
	columns []string
	rows    [][]cell
}

// Import loads path into table and returns the number of rows inserted.
//
// Column names are lower-cased. When the table does not exist it is created
// with INTEGER, REAL or TEXT columns (in the dialect's spelling) inferred from
// the data. Otherwise rows are appended and values are bound according to the
// table's declared column types. With newOnly set an existing table is an
// error. Rows are inserted in a single transaction.
func (d *DB) Import(ctx context.Context, table, path string, newOnly bool) (int, error) {
	format, err := FormatOf(path)
	if err != nil {
		return 0, err
	}

	data, err := readDataset(path, format)
	if err != nil {
		return 0, err
	}

	if len(data.columns) == 0 {
		return 0, errors.Errorf("%s contains no columns", path)
	}

	name, err := d.FindTable(ctx, table)
	var notFound *TableNotFoundError
	switch {
	case errors.As(err, &notFound):
		name = notFound.Table
	case err != nil:
		return 0, err
	case newOnly:
		return 0, &TableExistsError{Table: table}
	}

	var kinds []kind
	created := false
	if notFound == nil {
		if kinds, err = d.columnKinds(ctx, name, data.columns); err != nil {
			return 0, err
		}
	} else {
		kinds = data.kinds()
		if _, err := d.db.ExecContext(ctx, d.createTable(name, data.columns, kinds)); err != nil {
			return 0, errors.Wrapf(err, "failed to create table %s", name)
		}
		created = true
		slog.Debug("Created table for import", "table", name, "columns", data.columns)
	}

	count, err := d.insertRows(ctx, name, data, kinds)
	if err != nil && created {
		drop := "DROP TABLE " + d.dialect.Quoting.Identifier(name)
		if _, dropErr := d.db.ExecContext(ctx, drop); dropErr != nil {
			slog.Debug("Failed to drop table after failed import", "table", name, "err", dropErr)
		}
	}

	return count, err
}

func (d *DB) createTable(name string, columns []string, kinds []kind) string {
	types := make([]string, len(kinds))
	for i, k := range kinds {
		switch k {
		case kindInteger:
			types[i] = d.dialect.Types.Integer
		case kindReal:
			types[i] = d.dialect.Types.Real
		default:
			types[i] = d.dialect.Types.Text
		}
	}

	return utils.NewSQLBuilder(d.dialect.Quoting).
		Create("TABLE").
		Name(name).
		Definitions(columns, types).
		Raw(d.dialect.CreateSuffix).
		String()
}

// columnKinds maps the declared types of columns in table to the kinds their
// values are bound as.
func (d *DB) columnKinds(ctx context.Context, table string, columns []string) ([]kind, error) {
	q := d.dialect.Quoting
	query := fmt.Sprintf("SELECT %s FROM %s WHERE 1 = 0",
		strings.Join(q.Identifiers(columns...), ", "), q.Identifier(table))

	rows, err := d.db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read columns of %s", table)
	}
	defer func() { _ = rows.Close() }()

	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read columns of %s", table)
	}

	kinds := make([]kind, len(types))
	for i, ct := range types {
		kinds[i] = declaredKind(ct.DatabaseTypeName())
	}

	return kinds, rows.Err()
}

// declaredKind classifies a column type name. Exact numerics (NUMERIC,
// DECIMAL) are bound as text so no precision is lost on the way.
func declaredKind(typeName string) kind {
	name := strings.ToUpper(typeName)
	switch {
	case strings.Contains(name, "INT"):
		return kindInteger
	case strings.Contains(name, "REAL"), strings.Contains(name, "FLOAT"), strings.Contains(name, "DOUBLE"):
		return kindReal
	}
	return kindText
}

func (d *DB) insertRows(ctx context.Context, name string, data *dataset, kinds []kind) (int, error) {
	placeholders := make([]string, len(data.columns))
	for i := range placeholders {
		placeholders[i] = d.dialect.Placeholder(i + 1)
	}

	insert := utils.NewSQLBuilder(d.dialect.Quoting).
		InsertInto(name).
		Columns(data.columns...).
		Values(placeholders...).
		String()

	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, errors.Wrap(err, "failed to begin transaction")
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return 0, errors.Wrap(err, "failed to prepare insert")
	}
	defer func() { _ = stmt.Close() }()

	for n, row := range data.rows {
		args := make([]any, len(data.columns))
		for i := range args {
			if i < len(row) {
				args[i] = row[i].value(kinds[i])
			}
		}

		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return 0, errors.Wrapf(err, "failed to insert row %d", n+1)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, errors.Wrap(err, "failed to commit import")
	}

	return len(data.rows), nil
}

// kinds returns the widest kind of each column. Columns that only hold NULLs
// are TEXT.
func (ds *dataset) kinds() []kind {
	kinds := make([]kind, len(ds.columns))
	for _, row := range ds.rows {
		for i, c := range row {
			if i < len(kinds) {
				kinds[i] = max(kinds[i], c.kind)
			}
		}
	}
	return kinds
}

// value converts c to the Go value bound for a column of kind k.
func (c cell) value(k kind) any {
	if c.kind == kindNull {
		return nil
	}

	switch k {
	case kindInteger:
		if n, err := strconv.ParseInt(c.text, 10, 64); err == nil {
			return n
		}
	case kindReal:
		if f, err := strconv.ParseFloat(c.text, 64); err == nil {
			return f
		}
	}

	return c.text
}

func readDataset(path string, format FileFormat) (*dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	var ds *dataset
	switch format {
	case CSV:
		ds, err = readCSV(f)
	default:
		ds, err = readJSONLines(f)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	for i, c := range ds.columns {
		ds.columns[i] = strings.ToLower(c)
	}

	return ds, nil
}

// readCSV reads a header row followed by records. An unquoted empty field is
// NULL while a quoted one ("") is an empty string.
func readCSV(r io.Reader) (*dataset, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	lines := bytes.Split(raw, []byte("\n"))
	quoted := func(line, col int) bool {
		return line > 0 && line <= len(lines) && col > 0 && col <= len(lines[line-1]) &&
			lines[line-1][col-1] == '"'
	}

	cr := csv.NewReader(bytes.NewReader(raw))
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return &dataset{}, nil
	}
	if err != nil {
		return nil, err
	}

	ds := &dataset{columns: header}
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		row := make([]cell, len(record))
		for i, field := range record {
			if field == "" && quoted(cr.FieldPos(i)) {
				row[i] = cell{kind: kindText}
				continue
			}
			row[i] = textCell(field)
		}
		ds.rows = append(ds.rows, row)
	}

	return ds, nil
}

func textCell(s string) cell {
	switch {
	case s == "":
		return cell{kind: kindNull}
	case utils.IsIntegerValue(s):
		return cell{kind: kindInteger, text: s}
	case utils.IsNumericValue(s):
		return cell{kind: kindReal, text: s}
	}
	return cell{kind: kindText, text: s}
}

// readJSONLines reads a stream of JSON objects. Columns are ordered by first
// appearance; keys missing from an object are NULL.
func readJSONLines(r io.Reader) (*dataset, error) {
	dec := json.NewDecoder(bufio.NewReader(r))
	dec.UseNumber()

	ds := &dataset{}
	index := make(map[string]int)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		if delim, ok := tok.(json.Delim); !ok || delim != '{' {
			return nil, errors.Errorf("expected a JSON object, found %v", tok)
		}

		values := make(map[int]cell)
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, _ := keyTok.(string)

			var v any
			if err := dec.Decode(&v); err != nil {
				return nil, err
			}

			col, ok := index[key]
			if !ok {
				col = len(ds.columns)
				index[key] = col
				ds.columns = append(ds.columns, key)
			}

			c, err := jsonCell(v)
			if err != nil {
				return nil, err
			}
			values[col] = c
		}

		// closing '}'
		if _, err := dec.Token(); err != nil {
			return nil, err
		}

		row := make([]cell, len(ds.columns))
		for col, c := range values {
			row[col] = c
		}
		ds.rows = append(ds.rows, row)
	}

	return ds, nil
}

func jsonCell(v any) (cell, error) {
	switch val := v.(type) {
	case nil:
		return cell{kind: kindNull}, nil
	case json.Number:
		if utils.IsIntegerValue(val.String()) {
			return cell{kind: kindInteger, text: val.String()}, nil
		}
		return cell{kind: kindReal, text: val.String()}, nil
	case string:
		return cell{kind: kindText, text: val}, nil
	case bool:
		if val {
			return cell{kind: kindInteger, text: "1"}, nil
		}
		return cell{kind: kindInteger, text: "0"}, nil
	}

	b, err := json.Marshal(v)
	if err != nil {
		return cell{}, err
	}
	return cell{kind: kindText, text: string(b)}, nil
}
