// Package utils provides small helpers shared by the database dialects.
//
// # Identifier Utilities (identifier.go)
//
// A Quoting describes the characters a database uses to delimit identifiers.
// Three styles cover the supported engines:
//
//	utils.DoubleQuotes.Identifier("users")        // "users"
//	utils.Backticks.Identifier("analytics.events") // `analytics`.`events`
//	utils.Brackets.Identifier("dbo.Order Items")   // [dbo].[Order Items]
//
// Quoting is idempotent: parts that are already quoted are left alone, and a
// closing character inside a name is doubled.
//
// # SQL Builder (sqlbuilder.go)
//
// SQLBuilder assembles the CREATE TABLE and INSERT statements issued by
// .import without hand-concatenating strings:
//
//	sql := utils.NewSQLBuilder(utils.DoubleQuotes).
//		Create("TABLE").
//		Name("people").
//		Definitions([]string{"id", "name"}, []string{"INTEGER", "TEXT"}).
//		String()
//	// CREATE TABLE "people" ("id" INTEGER, "name" TEXT)
//
// # Value Type Utilities (validation.go)
//
// IsIntegerValue and IsNumericValue classify imported text values so that a
// table created by .import gets sensible column types.
package utils
