package testutil

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/pseudomuto/sqlshell/pkg/shell"
	"github.com/urfave/cli/v3"
)

// CtrlC, when scripted, makes ScriptEditor report an interrupt instead of a line.
const CtrlC = "\x03"

// ScriptEditor is a shell.LineEditor that replays a fixed list of input lines
// and then reports end of input.
type ScriptEditor struct {
	Lines   []string
	Prompts []string
	History []string
	Closed  bool
}

// NewScriptEditor returns a ScriptEditor for the given lines.
func NewScriptEditor(lines ...string) *ScriptEditor {
	return &ScriptEditor{Lines: lines}
}

func (e *ScriptEditor) Readline(prompt string) (string, error) {
	e.Prompts = append(e.Prompts, prompt)
	if len(e.Lines) == 0 {
		return "", io.EOF
	}

	line := e.Lines[0]
	e.Lines = e.Lines[1:]
	if line == CtrlC {
		return "", shell.ErrInterrupt
	}

	return line, nil
}

func (e *ScriptEditor) AddHistory(entry string) error {
	e.History = append(e.History, entry)
	return nil
}

func (e *ScriptEditor) ResetHistory(entries []string) error {
	e.History = append([]string(nil), entries...)
	return nil
}

func (e *ScriptEditor) Close() error {
	e.Closed = true
	return nil
}

// Output captures what a command wrote to its streams.
type Output struct {
	Stdout bytes.Buffer
	Stderr bytes.Buffer
}

// RunCommand runs command with args (not including the program name), with
// its output captured.
func RunCommand(t *testing.T, command *cli.Command, args ...string) (*Output, error) {
	t.Helper()
	return RunCommandWithContext(t.Context(), t, command, args...)
}

// RunCommandWithContext is RunCommand with a custom context.
func RunCommandWithContext(ctx context.Context, t *testing.T, command *cli.Command, args ...string) (*Output, error) {
	t.Helper()

	out := new(Output)
	command.Writer = &out.Stdout
	command.ErrWriter = &out.Stderr

	err := command.Run(ctx, append([]string{command.Name}, args...))
	return out, err
}
