package database

import (
	"database/sql"
	"net"
	"net/url"
	"strings"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
)

// connector opens the *sql.DB for a parsed URL.
type connector func() (*sql.DB, error)

// Scheme returns the lower-cased scheme of rawURL without any "+driver"
// suffix, or "" when rawURL has no "://".
func Scheme(rawURL string) string {
	scheme, _, ok := strings.Cut(rawURL, "://")
	if !ok {
		return ""
	}

	scheme, _, _ = strings.Cut(strings.ToLower(scheme), "+")
	return scheme
}

// Redact hides the password in rawURL. URLs that cannot be parsed are
// returned unchanged.
func Redact(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.User == nil {
		return rawURL
	}

	return u.Redacted()
}

// resolve maps a URL onto its dialect and a connector for the driver.
func resolve(rawURL string) (*Dialect, connector, error) {
	scheme := Scheme(rawURL)
	_, rest, _ := strings.Cut(rawURL, "://")

	switch scheme {
	case "sqlite", "sqlite3":
		dsn := sqlitePath(rest)
		return sqliteDialect, func() (*sql.DB, error) {
			db, err := sql.Open("sqlite", dsn)
			if err != nil {
				return nil, err
			}

			// A :memory: database lives and dies with its connection.
			db.SetMaxOpenConns(1)
			return db, nil
		}, nil

	case "postgres", "postgresql":
		dsn := "postgres://" + rest
		return postgresDialect, func() (*sql.DB, error) { return sql.Open("postgres", dsn) }, nil

	case "mysql", "mariadb":
		dsn, err := mysqlDSN(rawURL)
		if err != nil {
			return nil, nil, err
		}
		return mysqlDialect, func() (*sql.DB, error) { return sql.Open("mysql", dsn) }, nil

	case "mssql", "sqlserver":
		dsn := "sqlserver://" + rest
		return mssqlDialect, func() (*sql.DB, error) { return sql.Open("sqlserver", dsn) }, nil

	case "clickhouse":
		opts, err := clickhouseOptions(rawURL)
		if err != nil {
			return nil, nil, err
		}
		return clickhouseDialect, func() (*sql.DB, error) { return clickhouse.OpenDB(opts), nil }, nil
	}

	return nil, nil, &UnsupportedURLError{Scheme: scheme}
}

// sqlitePath converts the part of a sqlite URL after "://" into a file name.
// One leading slash separates the (empty) host from a relative path, so
// "sqlite:///x.db" is relative and "sqlite:////tmp/x.db" is absolute.
func sqlitePath(rest string) string {
	path := strings.TrimPrefix(rest, "/")
	if path == "" || strings.HasPrefix(path, "?") {
		return ":memory:" + path
	}
	return path
}

func mysqlDSN(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", errors.Wrap(err, "invalid MySQL URL")
	}

	cfg := mysql.NewConfig()
	cfg.Net = "tcp"
	cfg.Addr = u.Host
	if u.Port() == "" && u.Hostname() != "" {
		cfg.Addr = net.JoinHostPort(u.Hostname(), "3306")
	}
	cfg.DBName = strings.TrimPrefix(u.Path, "/")
	cfg.ParseTime = true

	if u.User != nil {
		cfg.User = u.User.Username()
		cfg.Passwd, _ = u.User.Password()
	}

	for key, values := range u.Query() {
		if cfg.Params == nil {
			cfg.Params = make(map[string]string)
		}
		cfg.Params[key] = values[len(values)-1]
	}

	return cfg.FormatDSN(), nil
}

// clickhouseOptions parses a clickhouse URL. The tls_cert, tls_key and tls_ca
// query parameters are consumed here; everything else is left to the driver.
func clickhouseOptions(rawURL string) (*clickhouse.Options, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid ClickHouse URL")
	}

	q := u.Query()
	tlsOpts := TLSOptions{CertFile: q.Get("tls_cert"), KeyFile: q.Get("tls_key"), CAFile: q.Get("tls_ca")}
	q.Del("tls_cert")
	q.Del("tls_key")
	q.Del("tls_ca")
	u.RawQuery = q.Encode()

	opts, err := clickhouse.ParseDSN(u.String())
	if err != nil {
		return nil, errors.Wrap(err, "invalid ClickHouse URL")
	}

	if tlsOpts.Enabled() {
		if opts.TLS, err = TLSConfig(tlsOpts); err != nil {
			return nil, err
		}
	}

	return opts, nil
}
