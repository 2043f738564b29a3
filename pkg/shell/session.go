package shell

import "github.com/pkg/errors"

// Session is the state of a shell: the open database, the row limit and the
// history.
type Session struct {
	db      Database
	limit   int
	history *History
}

// Database returns the open database.
func (s *Session) Database() Database {
	return s.db
}

// Limit returns the maximum number of rows shown for a query, 0 for no limit.
func (s *Session) Limit() int {
	return s.limit
}

// History returns the session's history.
func (s *Session) History() *History {
	return s.history
}

// Close releases the database and the history file. The first failure is
// returned.
func (s *Session) Close() error {
	var err error
	if s.db != nil {
		if cerr := s.db.Close(); cerr != nil {
			err = errors.Wrap(cerr, "failed to close database")
		}
	}

	if s.history != nil {
		if cerr := s.history.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}

	return err
}
