// Package shell implements the interactive loop of sqlshell.
//
// A Shell reads lines from a LineEditor and sorts them into meta-commands
// (".tables", ".connect prod", "?") and SQL. SQL lines are accumulated until
// the statement is terminated with ";" outside of any quote or comment, then
// recorded in the history as a single line and run against the current
// Database. Meta-commands are looked up by name or unambiguous prefix in the
// shell's command registry and run immediately.
//
// The state of the loop (connection, row limit, history file) lives in a
// Session, which is replaced as a whole by ".connect".
//
// # Usage Example
//
//	sh := shell.New(shell.Options{Config: cfg})
//	if err := sh.Start(ctx, "prod", "~/.sqlshell-history", false); err != nil {
//		return err
//	}
//	defer sh.Close()
//
//	editor, err := shell.NewReadlineEditor(sh.Completer())
//	if err != nil {
//		return err
//	}
//	defer editor.Close()
//
//	return sh.Run(ctx, editor)
package shell
