package shell

import (
	"context"
	"io"

	"github.com/pseudomuto/sqlshell/pkg/database"
)

type (
	// Database is the connection a Session runs statements against.
	// *database.DB implements it.
	Database interface {
		io.Closer

		Name() string
		URL() string
		Execute(ctx context.Context, stmt string, limit int) (*database.Result, error)
		Tables(ctx context.Context) ([]string, error)
		Schema(ctx context.Context, table string) (*database.Result, error)
		Indexes(ctx context.Context, table string) (*database.Result, error)
		ForeignKeys(ctx context.Context, table string) (*database.Result, error)
		Export(ctx context.Context, table, path string) (int, error)
		Import(ctx context.Context, table, path string, newOnly bool) (int, error)
	}

	// Opener connects to a database URL.
	Opener func(ctx context.Context, url string) (Database, error)

	// LineEditor reads input lines. Readline returns io.EOF at the end of
	// input and ErrInterrupt when the user interrupts the line.
	LineEditor interface {
		io.Closer

		Readline(prompt string) (string, error)

		// AddHistory appends an entry to the editor's in-memory history.
		AddHistory(entry string) error

		// ResetHistory replaces the editor's history with entries.
		ResetHistory(entries []string) error
	}
)

// OpenDatabase is the default Opener, backed by database.Open.
func OpenDatabase(ctx context.Context, url string) (Database, error) {
	db, err := database.Open(ctx, url)
	if err != nil {
		return nil, err
	}

	return db, nil
}
