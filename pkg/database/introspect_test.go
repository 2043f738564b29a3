package database_test

import (
	"context"
	"testing"

	. "github.com/pseudomuto/sqlshell/pkg/database"
	"github.com/stretchr/testify/require"
)

func TestSchema(t *testing.T) {
	db := openMemory(t, 0)

	res, err := db.Schema(context.Background(), "PEOPLE")
	require.NoError(t, err)
	require.Contains(t, res.Columns, "name")
	require.Len(t, res.Rows, 3)

	names := make([]any, len(res.Rows))
	for i, row := range res.Rows {
		names[i] = row[1]
	}
	require.Equal(t, []any{"id", "name", "score"}, names)
}

func TestIndexes(t *testing.T) {
	ctx := context.Background()
	db := openMemory(t, 0)

	res, err := db.Indexes(ctx, "pets")
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	require.Contains(t, res.Rows[0], "pets_owner")

	res, err = db.Indexes(ctx, "people")
	require.NoError(t, err)
	require.Empty(t, res.Rows)
}

func TestForeignKeys(t *testing.T) {
	ctx := context.Background()
	db := openMemory(t, 0)

	res, err := db.ForeignKeys(ctx, "pets")
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	require.Contains(t, res.Rows[0], "People")
	require.Contains(t, res.Rows[0], "owner_id")

	res, err = db.ForeignKeys(ctx, "people")
	require.NoError(t, err)
	require.Empty(t, res.Rows)
}

func TestIntrospectMissingTable(t *testing.T) {
	ctx := context.Background()
	db := openMemory(t, 0)

	_, err := db.Schema(ctx, "owners")
	var notFound *TableNotFoundError
	require.ErrorAs(t, err, &notFound)

	_, err = db.Indexes(ctx, "owners")
	require.ErrorAs(t, err, &notFound)

	_, err = db.ForeignKeys(ctx, "owners")
	require.ErrorAs(t, err, &notFound)
}
