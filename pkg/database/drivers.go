package database

import (
	// database/sql drivers for the supported URL schemes. MySQL and ClickHouse
	// are imported by url.go.
	_ "github.com/denisenkom/go-mssqldb"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)
