package shell

import (
	"context"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlshell/pkg/format"
)

// helpCmd shows every topic followed by the epilog, or the topic of one
// command. The command may be given with or without its leading ".".
func helpCmd(_ context.Context, s *Shell, args []string) error {
	if len(args) == 0 {
		return s.formatter.Help(s.out, s.topics(s.commands), helpEpilog, s.width)
	}

	name := args[0]
	c := s.commands.find(name)
	if c == nil {
		c = s.commands.find("." + name)
	}

	if c == nil {
		return errors.Errorf("Unknown command %q.", name)
	}

	return s.formatter.Help(s.out, s.topics(registry{c}), nil, s.width)
}

func (s *Shell) topics(r registry) []format.Topic {
	topics := make([]format.Topic, len(r))
	for i, c := range r {
		topics[i] = format.Topic{Usage: c.usage, Help: c.help}
	}
	return topics
}
