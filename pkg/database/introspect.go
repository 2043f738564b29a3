package database

import (
	"context"
	"time"
)

// Schema describes the columns of table.
func (d *DB) Schema(ctx context.Context, table string) (*Result, error) {
	return d.introspect(ctx, table, d.dialect.Schema)
}

// Indexes lists the indexes of table.
func (d *DB) Indexes(ctx context.Context, table string) (*Result, error) {
	return d.introspect(ctx, table, d.dialect.Indexes)
}

// ForeignKeys lists the foreign keys defined on table (not the ones that
// reference it).
func (d *DB) ForeignKeys(ctx context.Context, table string) (*Result, error) {
	return d.introspect(ctx, table, d.dialect.ForeignKeys)
}

// introspect resolves table first, so every engine reports a missing table
// the same way; SQLite's pragmas would silently return nothing.
func (d *DB) introspect(ctx context.Context, table string, build func(*Dialect, string) Query) (*Result, error) {
	name, err := d.FindTable(ctx, table)
	if err != nil {
		return nil, err
	}

	if build == nil {
		return &Result{Columns: []string{}, Rows: [][]any{}, RowsAffected: -1}, nil
	}

	start := time.Now()
	res, err := d.query(ctx, build(d.dialect, name), 0)
	if err != nil {
		return nil, err
	}

	res.Elapsed = time.Since(start)
	return res, nil
}
