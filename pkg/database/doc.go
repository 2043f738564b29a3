// Package database is sqlshell's database access layer. It maps connection
// URLs onto database/sql drivers and provides the handful of operations the
// shell needs on top of them: running a statement, listing tables, describing
// a table, and moving table data to and from CSV and JSON Lines files.
//
// Supported URLs:
//
//	sqlite://                       in-memory SQLite database
//	sqlite:///relative/path.db      SQLite file relative to the working directory
//	sqlite:////absolute/path.db     SQLite file with an absolute path
//	postgres://user:pw@host/db      PostgreSQL (postgresql:// works too)
//	mysql://user:pw@host:3306/db    MySQL or MariaDB (mariadb://)
//	sqlserver://user:pw@host/inst   SQL Server (mssql://)
//	clickhouse://user:pw@host:9000/db?tls_ca=ca.pem
//
// A "+driver" suffix on the scheme, such as postgresql+psycopg://, is ignored.
//
// Each engine is described by a Dialect which supplies the SQL used to list
// tables and describe them, the identifier quoting style, the bind parameter
// style and the column types used for tables created by Import.
//
// Example:
//
//	db, err := database.Open(ctx, "sqlite:///app.db")
//	if err != nil {
//		return err
//	}
//	defer db.Close()
//
//	res, err := db.Execute(ctx, "select * from users", 10)
package database
