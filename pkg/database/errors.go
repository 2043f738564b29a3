package database

import "fmt"

type (
	// TableNotFoundError is returned when a table argument matches no table.
	TableNotFoundError struct {
		Table string
	}

	// TableExistsError is returned by Import when a new table was requested
	// but one with that name exists.
	TableExistsError struct {
		Table string
	}

	// UnsupportedURLError is returned by Open for an unknown URL scheme.
	UnsupportedURLError struct {
		Scheme string
	}
)

func (e *TableNotFoundError) Error() string {
	return fmt.Sprintf("Table %q does not exist.", e.Table)
}

func (e *TableExistsError) Error() string {
	return fmt.Sprintf("Table %q already exists, and you specified -n.", e.Table)
}

func (e *UnsupportedURLError) Error() string {
	return fmt.Sprintf("unsupported database URL scheme %q", e.Scheme)
}
