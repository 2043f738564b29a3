package parser

import (
	"regexp"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlshell/pkg/consts"
)

var (
	// statementLexer splits SQL text into just enough tokens to find delimiters.
	// The Open* rules swallow the rest of the input when a literal or comment
	// is not terminated, which is how an incomplete statement is detected.
	statementLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `--[^\r\n]*`},
		{Name: "MultilineComment", Pattern: `/\*(?s:.*?)\*/`},
		{Name: "OpenComment", Pattern: `/\*(?s:.*)`},
		{Name: "String", Pattern: `'[^']*'`},
		{Name: "QuotedIdent", Pattern: `"[^"]*"|` + "`[^`]*`" + `|\[[^\]]*\]`},
		{Name: "OpenQuote", Pattern: `['"\[` + "`" + `](?s:.*)`},
		{Name: "Word", Pattern: `[a-zA-Z_][a-zA-Z0-9_$]*`},
		{Name: "Delim", Pattern: regexp.QuoteMeta(consts.Delimiter)},
		{Name: "Whitespace", Pattern: `\s+`},
		{Name: "Other", Pattern: `.`},
	})

	statementTokenNames = func() map[lexer.TokenType]string {
		names := make(map[lexer.TokenType]string)
		for name, typ := range statementLexer.Symbols() {
			names[typ] = name
		}
		return names
	}()
)

type token struct {
	kind  string
	value string
}

// tokenize lexes sql with statementLexer. The catch-all Other rule means any
// input can be tokenized.
func tokenize(sql string) ([]token, error) {
	lex, err := statementLexer.LexString("", sql)
	if err != nil {
		return nil, errors.Wrap(err, "failed to tokenize SQL")
	}

	raw, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil, errors.Wrap(err, "failed to tokenize SQL")
	}

	tokens := make([]token, 0, len(raw))
	for _, t := range raw {
		if t.EOF() {
			break
		}
		tokens = append(tokens, token{kind: statementTokenNames[t.Type], value: t.Value})
	}

	return tokens, nil
}

func (t token) significant() bool {
	switch t.kind {
	case "Comment", "MultilineComment", "Whitespace":
		return false
	}
	return true
}

func (t token) open() bool {
	return t.kind == "OpenQuote" || t.kind == "OpenComment"
}
