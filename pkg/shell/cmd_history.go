package shell

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlshell/pkg/utils"
)

// historyCmd lists the history, the last n entries, or the entries matching a
// regular expression. Entries are numbered from 1, oldest first.
func historyCmd(_ context.Context, s *Shell, args []string) error {
	// the last entry is this command
	entries := s.session.history.Entries()
	if len(entries) > 0 {
		entries = entries[:len(entries)-1]
	}

	var pattern *regexp.Regexp
	first := 0
	if len(args) == 1 {
		if utils.IsIntegerValue(args[0]) {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 0 {
				return errors.Errorf("%q is not a valid history count", args[0])
			}
			if n > 0 && n < len(entries) {
				first = len(entries) - n
			}
		} else {
			re, err := regexp.Compile(args[0])
			if err != nil {
				return errors.Wrap(err, "bad regular expression")
			}
			pattern = re
		}
	}

	for i := first; i < len(entries); i++ {
		if pattern != nil && !pattern.MatchString(entries[i]) {
			continue
		}

		fmt.Fprintf(s.out, "%5d. %s\n", i+1, entries[i])
	}

	return nil
}
