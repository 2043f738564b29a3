package consts

import "os"

const (
	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// ModeHistory is the file mode for history files, which may contain credentials
	ModeHistory = os.FileMode(0o600)
)

const (
	// Name is the program name used in the banner, prompts, and help output
	Name = "sqlshell"

	// DefaultConfigFile is the configuration file read when --config is not given
	DefaultConfigFile = "~/.sqlshell.yaml"

	// DefaultHistoryFile is the history file used when neither --history nor a config
	// section names one
	DefaultHistoryFile = "~/.sqlshell-history"

	// HistoryLength is the maximum number of history entries kept on disk
	HistoryLength = 10000

	// DefaultScreenWidth is used for wrapping help text when the terminal width is unknown
	DefaultScreenWidth = 79

	// Delimiter terminates SQL statements
	Delimiter = ";"

	// LineCommentPrefix starts a SQL line comment
	LineCommentPrefix = "--"
)
