package utils_test

import (
	"testing"

	"github.com/pseudomuto/sqlshell/pkg/utils"
	"github.com/stretchr/testify/require"
)

func TestSQLBuilder(t *testing.T) {
	t.Run("create table", func(t *testing.T) {
		sql := utils.NewSQLBuilder(utils.DoubleQuotes).
			Create("TABLE").
			Name("people").
			Definitions([]string{"id", "name"}, []string{"INTEGER", "TEXT"}).
			String()
		require.Equal(t, `CREATE TABLE "people" ("id" INTEGER, "name" TEXT)`, sql)
	})

	t.Run("create table with engine", func(t *testing.T) {
		sql := utils.NewSQLBuilder(utils.Backticks).
			Create("TABLE").
			Name("db.events").
			Definitions([]string{"ts"}, []string{"Nullable(String)"}).
			Raw("ENGINE = MergeTree ORDER BY tuple()").
			String()
		require.Equal(t, "CREATE TABLE `db`.`events` (`ts` Nullable(String)) ENGINE = MergeTree ORDER BY tuple()", sql)
	})

	t.Run("insert", func(t *testing.T) {
		sql := utils.NewSQLBuilder(utils.Brackets).
			InsertInto("people").
			Columns("id", "full name").
			Values("@p1", "@p2").
			String()
		require.Equal(t, "INSERT INTO [people] ([id], [full name]) VALUES (@p1, @p2)", sql)
	})

	t.Run("raw skips empty", func(t *testing.T) {
		sql := utils.NewSQLBuilder(utils.DoubleQuotes).Create("TABLE").Name("t").Raw("").String()
		require.Equal(t, `CREATE TABLE "t"`, sql)
	})
}
