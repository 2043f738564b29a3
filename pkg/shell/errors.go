package shell

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrInterrupt is returned by a LineEditor when the user hits Ctrl-C.
var ErrInterrupt = errors.New("interrupt")

// errExit is returned by the .exit handler to leave the loop.
var errExit = errors.New("exit")

type (
	// UnknownCommandError is reported for a meta-command that matches no
	// command name.
	UnknownCommandError struct {
		Name string
	}

	// AmbiguousCommandError is reported for a meta-command prefix that
	// matches several commands.
	AmbiguousCommandError struct {
		Name    string
		Matches []string
	}

	// UsageError is reported when a meta-command gets the wrong arguments.
	UsageError struct {
		Usage string
	}
)

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command %q", e.Name)
}

func (e *AmbiguousCommandError) Error() string {
	return fmt.Sprintf("ambiguous command %q, matches: %s", e.Name, strings.Join(e.Matches, ", "))
}

func (e *UsageError) Error() string {
	return "Usage: " + e.Usage
}
