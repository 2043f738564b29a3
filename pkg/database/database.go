package database

import (
	"context"
	"database/sql"
	"log/slog"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlshell/pkg/parser"
)

type (
	// DB is an open connection to one database.
	DB struct {
		db      *sql.DB
		dialect *Dialect
		url     string
	}

	// Result is the outcome of Execute.
	Result struct {
		// Columns is nil for statements without a result set
		Columns []string

		// Rows hold at most the requested limit of rows
		Rows [][]any

		// Total is the number of rows the statement produced
		Total int

		// RowsAffected is reported for statements without a result set, -1
		// when the driver cannot tell
		RowsAffected int64

		// Elapsed is the time spent running the statement and fetching rows
		Elapsed time.Duration
	}
)

// HasRows reports whether the statement produced a result set.
func (r *Result) HasRows() bool {
	return r.Columns != nil
}

// Open connects to the database at rawURL and verifies the connection by
// listing its tables, since some drivers don't complain about a bad URL
// until the first query.
//
// Example:
//
//	db, err := database.Open(ctx, "postgres://localhost/app?sslmode=disable")
//	if err != nil {
//		return errors.Wrap(err, "failed to connect")
//	}
//	defer db.Close()
func Open(ctx context.Context, rawURL string) (*DB, error) {
	dialect, connect, err := resolve(rawURL)
	if err != nil {
		return nil, err
	}

	conn, err := connect()
	if err != nil {
		return nil, errors.Wrapf(err, "unable to connect to %s", Redact(rawURL))
	}

	db := &DB{db: conn, dialect: dialect, url: rawURL}
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, errors.Wrapf(err, "unable to connect to %s", Redact(rawURL))
	}

	if _, err := db.Tables(ctx); err != nil {
		_ = conn.Close()
		return nil, errors.Wrapf(err, "unable to connect to %s", Redact(rawURL))
	}

	slog.Debug("Connected", "url", Redact(rawURL), "dialect", dialect.Name)
	return db, nil
}

// Close closes the connection.
func (d *DB) Close() error {
	slog.Debug("Closing connection", "url", Redact(d.url))
	return d.db.Close()
}

// Name returns the engine name, e.g. "sqlite".
func (d *DB) Name() string {
	return d.dialect.Name
}

// URL returns the URL the connection was opened with.
func (d *DB) URL() string {
	return d.url
}

// Dialect returns the dialect of the connection.
func (d *DB) Dialect() *Dialect {
	return d.dialect
}

// Execute runs a single statement. Statements that produce a result set have
// all their rows read so the total is known, but only the first limit rows
// (all of them when limit is 0) are kept.
func (d *DB) Execute(ctx context.Context, stmt string, limit int) (*Result, error) {
	start := time.Now()

	if !parser.ReturnsRows(stmt) {
		res, err := d.db.ExecContext(ctx, stmt)
		if err != nil {
			return nil, err
		}

		affected, err := res.RowsAffected()
		if err != nil {
			affected = -1
		}

		return &Result{RowsAffected: affected, Elapsed: time.Since(start)}, nil
	}

	res, err := d.query(ctx, Query{SQL: stmt}, limit)
	if err != nil {
		return nil, err
	}

	res.Elapsed = time.Since(start)
	return res, nil
}

// Tables returns the names of the user tables, sorted ignoring case.
func (d *DB) Tables(ctx context.Context) ([]string, error) {
	rows, err := d.db.QueryContext(ctx, d.dialect.Tables)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tables")
	}
	defer func() { _ = rows.Close() }()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, errors.Wrap(err, "failed to scan table name")
		}
		tables = append(tables, name)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "error iterating tables")
	}

	sort.Slice(tables, func(i, j int) bool {
		return strings.ToLower(tables[i]) < strings.ToLower(tables[j])
	})

	return tables, nil
}

// FindTable resolves name against the table list ignoring case, returning
// the table's actual name. name may be quoted in the dialect's identifier
// style. A *TableNotFoundError is returned when there is no such table.
func (d *DB) FindTable(ctx context.Context, name string) (string, error) {
	name = d.dialect.Quoting.Strip(name)

	tables, err := d.Tables(ctx)
	if err != nil {
		return "", err
	}

	for _, t := range tables {
		if t == name {
			return t, nil
		}
	}

	for _, t := range tables {
		if strings.EqualFold(t, name) {
			return t, nil
		}
	}

	return "", &TableNotFoundError{Table: name}
}

func (d *DB) query(ctx context.Context, q Query, limit int) (*Result, error) {
	rows, err := d.db.QueryContext(ctx, q.SQL, q.Args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	columns, err := rows.Columns()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read columns")
	}

	// Procedure calls may not produce a result set after all.
	if len(columns) == 0 {
		return &Result{RowsAffected: -1}, rows.Err()
	}

	res := &Result{Columns: columns, Rows: [][]any{}, RowsAffected: -1}
	for rows.Next() {
		res.Total++
		if limit > 0 && res.Total > limit {
			continue
		}

		row, err := scanRow(rows, len(columns))
		if err != nil {
			return nil, err
		}
		res.Rows = append(res.Rows, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return res, nil
}

func scanRow(rows *sql.Rows, n int) ([]any, error) {
	values := make([]any, n)
	ptrs := make([]any, n)
	for i := range values {
		ptrs[i] = &values[i]
	}

	if err := rows.Scan(ptrs...); err != nil {
		return nil, errors.Wrap(err, "failed to scan row")
	}

	for i, v := range values {
		values[i] = normalize(v)
	}

	return values, nil
}

// normalize copies byte slices, which drivers may reuse between rows, and
// dereferences the pointers some drivers (ClickHouse) return for nullable
// columns.
func normalize(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case []byte:
		return string(val)
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer {
		return v
	}

	if rv.IsNil() {
		return nil
	}
	return normalize(rv.Elem().Interface())
}
