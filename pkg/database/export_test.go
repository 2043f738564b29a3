package database

// Unexported helpers exposed to the external test package.
var (
	SQLitePath = sqlitePath
	MySQLDSN   = mysqlDSN
)
