package shell

import (
	"io"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlshell/pkg/consts"
)

// ReadlineEditor is a LineEditor on top of github.com/chzyer/readline. The
// history file is managed by History, so readline only keeps history in
// memory.
type ReadlineEditor struct {
	rl *readline.Instance
}

// NewReadlineEditor creates a terminal line editor that completes with
// completer.
func NewReadlineEditor(completer readline.AutoCompleter) (*ReadlineEditor, error) {
	rl, err := readline.NewEx(&readline.Config{
		AutoComplete:           completer,
		HistoryLimit:           consts.HistoryLength,
		DisableAutoSaveHistory: true,
		HistorySearchFold:      true,
		InterruptPrompt:        "^C",
		FuncFilterInputRune:    filterInput,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize line editor")
	}

	return &ReadlineEditor{rl: rl}, nil
}

// Readline reads a line, translating readline's interrupt into ErrInterrupt.
func (e *ReadlineEditor) Readline(prompt string) (string, error) {
	e.rl.SetPrompt(prompt)

	line, err := e.rl.Readline()
	switch {
	case errors.Is(err, readline.ErrInterrupt):
		return "", ErrInterrupt
	case errors.Is(err, io.EOF):
		return "", io.EOF
	}

	return line, err
}

func (e *ReadlineEditor) AddHistory(entry string) error {
	return e.rl.SaveHistory(entry)
}

func (e *ReadlineEditor) ResetHistory(entries []string) error {
	e.rl.ResetHistory()
	for _, entry := range entries {
		if err := e.rl.SaveHistory(entry); err != nil {
			return err
		}
	}
	return nil
}

func (e *ReadlineEditor) Close() error {
	return e.rl.Close()
}

// filterInput drops Ctrl-Z, which would suspend the shell mid-line.
func filterInput(r rune) (rune, bool) {
	if r == readline.CharCtrlZ {
		return r, false
	}
	return r, true
}
