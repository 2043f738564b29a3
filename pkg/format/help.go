package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/pseudomuto/sqlshell/pkg/consts"
)

const helpSeparator = " - "

// Topic is one entry of the help output.
type Topic struct {
	// Usage is the synopsis shown in the left column, e.g. ".tables [<re>]"
	Usage string

	// Help is free text; whitespace, including newlines, is collapsed
	Help string
}

// Help writes topics as an aligned usage column followed by wrapped help
// text, then the epilog paragraphs (if any) wrapped to width. An empty
// paragraph produces a blank line.
func (f *Formatter) Help(w io.Writer, topics []Topic, epilog []string, width int) error {
	prefixWidth := 0
	for _, t := range topics {
		prefixWidth = max(prefixWidth, len(t.Usage))
	}

	// One character of right margin.
	textWidth := width - 1 - len(helpSeparator) - prefixWidth
	if textWidth <= 0 {
		textWidth = consts.DefaultScreenWidth / 2
	}

	var b strings.Builder
	indent := strings.Repeat(" ", prefixWidth+len(helpSeparator))
	for _, t := range topics {
		lines := Wrap(t.Help, textWidth)
		if len(lines) == 0 {
			lines = []string{""}
		}

		fmt.Fprintf(&b, "%-*s%s%s\n", prefixWidth, t.Usage, helpSeparator, lines[0])
		for _, l := range lines[1:] {
			b.WriteString(indent + l + "\n")
		}
	}

	if len(epilog) > 0 {
		b.WriteString("\n")
		for _, para := range epilog {
			for _, l := range Wrap(para, width) {
				b.WriteString(l + "\n")
			}
			if strings.TrimSpace(para) == "" {
				b.WriteString("\n")
			}
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Wrap collapses runs of whitespace in text and breaks it into lines of at
// most width characters. Words longer than width get a line of their own.
func Wrap(text string, width int) []string {
	var (
		lines []string
		cur   strings.Builder
	)

	for _, word := range strings.Fields(text) {
		if cur.Len() > 0 && cur.Len()+1+len(word) > width {
			lines = append(lines, cur.String())
			cur.Reset()
		}

		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(word)
	}

	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}

	return lines
}
