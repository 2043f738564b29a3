package parser

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

var (
	// metaLexer tokenizes a meta-command line. Quoted arguments keep
	// backslashes as typed so regular expressions survive.
	metaLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "String", Pattern: `"[^"]*"|'[^']*'`},
		{Name: "Word", Pattern: `[^\s"']+`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	metaParser = participle.MustBuild[Meta](
		participle.Lexer(metaLexer),
		participle.Elide("Whitespace"),
		participle.Map(func(t lexer.Token) (lexer.Token, error) {
			t.Value = t.Value[1 : len(t.Value)-1]
			return t, nil
		}, "String"),
	)
)

// Meta is a tokenized meta-command line.
type Meta struct {
	// Name is the command as typed, including the leading "." (or "?")
	Name string `parser:"@Word"`

	// Args are the remaining arguments with surrounding quotes removed
	Args []string `parser:"@(String | Word)*"`
}

// IsMeta reports whether line is a meta-command rather than SQL: its first
// token is "?" or starts with ".".
func IsMeta(line string) bool {
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, ".") {
		return true
	}

	fields := strings.Fields(line)
	return len(fields) > 0 && fields[0] == "?"
}

// ParseMeta tokenizes a meta-command line into its name and arguments.
//
// Example:
//
//	cmd, err := parser.ParseMeta(`.history "^select .* from users"`)
//	if err != nil {
//		return err
//	}
//
//	fmt.Println(cmd.Name, cmd.Args) // .history [^select .* from users]
func ParseMeta(line string) (*Meta, error) {
	meta, err := metaParser.ParseString("", strings.TrimSpace(line))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse command")
	}

	return meta, nil
}
