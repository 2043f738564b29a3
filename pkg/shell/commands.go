package shell

// commands builds the registry, in the order help lists the commands.
func commands() registry {
	return registry{
		{
			names: []string{".exit", ".quit"},
			usage: ".exit or .quit or Ctrl-D",
			help:  "Quit sqlshell.",
			run:   exitCmd,
		},
		{
			names:   []string{".connect"},
			usage:   ".connect <name>",
			help:    connectHelp,
			minArgs: 1,
			maxArgs: 1,
			run:     connectCmd,
		},
		{
			names:   []string{".export"},
			usage:   ".export <table> <path>",
			help:    exportHelp,
			minArgs: 2,
			maxArgs: 2,
			run:     exportCmd,
		},
		{
			names:   []string{".fk"},
			usage:   ".fk <table>",
			help:    fkHelp,
			minArgs: 1,
			maxArgs: 1,
			run:     foreignKeysCmd,
		},
		{
			names:   []string{".help", "?"},
			usage:   ".help or ? [<command>]",
			help:    "Show help for <command>. If <command> is omitted, show help for all commands.",
			maxArgs: 1,
			run:     helpCmd,
		},
		{
			names:   []string{".history"},
			usage:   ".history [<n> | <re>]",
			help:    historyHelp,
			maxArgs: 1,
			run:     historyCmd,
		},
		{
			names:   []string{".import"},
			usage:   ".import [-n] <table> <path>",
			help:    importHelp,
			minArgs: 2,
			maxArgs: 3,
			run:     importCmd,
		},
		{
			names:   []string{".indexes"},
			usage:   ".indexes <table>",
			help:    "Display the indexes of <table>, as reported by the database's own catalog.",
			minArgs: 1,
			maxArgs: 1,
			run:     indexesCmd,
		},
		{
			names:   []string{".limit"},
			usage:   ".limit [<n>]",
			help:    "Show only <n> rows from a query. 0 means unlimited. If <n> is omitted, the limit is cleared.",
			maxArgs: 1,
			run:     limitCmd,
		},
		{
			names:   []string{".run"},
			usage:   ".run <path>",
			help:    runHelp,
			minArgs: 1,
			maxArgs: 1,
			run:     runCmd,
		},
		{
			names:   []string{".schema"},
			usage:   ".schema <table>",
			help:    "Show the columns of table <table>.",
			minArgs: 1,
			maxArgs: 1,
			run:     schemaCmd,
		},
		{
			names:   []string{".tables"},
			usage:   ".tables [<re>]",
			help:    tablesHelp,
			maxArgs: 1,
			run:     tablesCmd,
		},
		{
			names: []string{".url"},
			usage: ".url",
			help:  "Show the URL of the current database, with the password hidden.",
			run:   urlCmd,
		},
	}
}

const (
	connectHelp = `
Connect to a different database. <name> is either a full database URL or the
name of a section in the configuration file. A section name only needs enough
of its leading characters to be unique. If it isn't unique, or the connection
fails, you'll see an error message and the current database stays in use.
`

	exportHelp = `
Export the contents of a table to a file. If <path> ends in ".csv", the table
is written as CSV with a header row. If <path> ends in ".json", the table is
written in JSON Lines format, one JSON object per row. In CSV files NULL is
an empty field and an empty string is written as "". You can use ~ in <path>
as a shorthand for your home directory (e.g., "~/table.json").
`

	fkHelp = `
Display the foreign keys of a table. Note: <table> is the table with the
foreign key constraints, not the table the foreign keys reference.
`

	historyHelp = `
Show the history. If <n>, an integer, is supplied, show the last <n> history
items. An <n> of 0 is the same as omitting <n>. If <re> is supplied, show all
history items that match the regular expression <re>. If your pattern contains
spaces, be sure to enclose it in quotes.
`

	importHelp = `
Import a CSV or JSON Lines file into a table. If the table exists, rows are
appended to it, with values converted to its column types. If it doesn't, it is created with INTEGER, REAL or TEXT
columns inferred from the data. With -n (for "new-only") the table must not
already exist. If <path> ends in ".csv", the file is read as CSV with a header
row. If <path> ends in ".json", it is read as JSON Lines, as written by
.export. You can use ~ as a shorthand for your home directory. Column names
are forced to lower case. No primary or foreign keys are created; create the
table first if you need them.
`

	runHelp = `
Run a SQL script file. The file can contain multiple SQL statements, each
ending with an unquoted ";" and on one line or spread over several. Each
statement is echoed as it is run, and the script stops at the first failing
statement. The path must end in ".sql". You can use ~ as a shorthand for your
home directory.
`

	tablesHelp = `
List the names of all tables in the database. If <re> is supplied, show only
the tables that match the regular expression. Matching is case-blind. If your
pattern contains spaces, be sure to enclose it in quotes.
`
)

var helpEpilog = []string{
	`Anything else is interpreted as SQL. SQL statements must end with a ";", ` +
		`and multi-line input is supported. Newlines are not preserved, and a ` +
		`multi-line statement is sent to the database and written to the history ` +
		`as a single line.`,
	"",
	`You can use tab-completion on the dot-commands. You can also tab-complete ` +
		`table names after typing ".schema", ".indexes" or ".fk". Completion for ` +
		`SQL statements is not available.`,
}
