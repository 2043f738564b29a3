package database_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pseudomuto/sqlshell/pkg/consts"
	. "github.com/pseudomuto/sqlshell/pkg/database"
	"github.com/pseudomuto/sqlshell/pkg/docker"
	"github.com/stretchr/testify/require"
)

func TestClickHouse(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping ClickHouse integration test in short mode")
	}

	if !docker.Available() {
		t.Skip("Docker not available")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	container := docker.New(docker.Options{Version: "25.7"})
	require.NoError(t, container.Start(ctx))
	defer func() { _ = container.Stop(ctx) }()

	url, err := container.URL(ctx)
	require.NoError(t, err)

	db, err := Open(ctx, url)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	require.Equal(t, "clickhouse", db.Name())

	dir := t.TempDir()
	src := filepath.Join(dir, "events.csv")
	require.NoError(t, os.WriteFile(src, []byte("id,kind,weight\n1,click,0.5\n2,view,\n3,click,2\n"), consts.ModeFile))

	n, err := db.Import(ctx, "Events", src, true)
	require.NoError(t, err)
	require.Equal(t, 3, n)

	tables, err := db.Tables(ctx)
	require.NoError(t, err)
	require.Contains(t, tables, "Events")

	res, err := db.Execute(ctx, "SELECT id, kind, weight FROM Events ORDER BY id", 2)
	require.NoError(t, err)
	require.Equal(t, 3, res.Total)
	require.Len(t, res.Rows, 2)

	schema, err := db.Schema(ctx, "events")
	require.NoError(t, err)
	require.Len(t, schema.Rows, 3)
	require.Equal(t, "Nullable(Int64)", schema.Rows[0][1])

	fks, err := db.ForeignKeys(ctx, "events")
	require.NoError(t, err)
	require.Empty(t, fks.Rows)

	dst := filepath.Join(dir, "events.json")
	n, err = db.Export(ctx, "events", dst)
	require.NoError(t, err)
	require.Equal(t, 3, n)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Contains(t, string(data), `{"id": 2, "kind": "view", "weight": null}`)
}
