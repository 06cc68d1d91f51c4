// Package format renders parsed SQL back to text.
//
// Output is canonical: keywords upper case, one space between tokens and
// identifiers quoted only where the target dialect needs it. Formatting a
// parsed statement and parsing the result again yields an equal AST.
package format

import (
	"bytes"
	"strings"

	"github.com/leapstack-labs/sqldialect/pkg/dialect"
	"github.com/leapstack-labs/sqldialect/pkg/token"
)

const indentSize = 2

// Printer accumulates formatted SQL.
type Printer struct {
	dialect     dialect.Dialect // nil keeps identifiers as written
	pretty      bool
	output      *bytes.Buffer
	depth       int
	atLineStart bool
}

func newPrinter(o options) *Printer {
	return &Printer{
		dialect:     o.dialect,
		pretty:      o.pretty,
		output:      &bytes.Buffer{},
		atLineStart: true,
	}
}

// String returns the formatted output without trailing whitespace.
func (p *Printer) String() string {
	return strings.TrimRight(p.output.String(), " \n")
}

func (p *Printer) write(s string) {
	if p.atLineStart && len(s) > 0 && s[0] != '\n' {
		p.writeIndent()
	}
	p.output.WriteString(s)
	p.atLineStart = false
}

func (p *Printer) writeln() {
	p.output.WriteByte('\n')
	p.atLineStart = true
}

func (p *Printer) writeIndent() {
	for i := 0; i < p.depth*indentSize; i++ {
		p.output.WriteByte(' ')
	}
	p.atLineStart = false
}

func (p *Printer) indent() {
	p.depth++
}

func (p *Printer) dedent() {
	if p.depth > 0 {
		p.depth--
	}
}

func (p *Printer) space() {
	p.output.WriteByte(' ')
}

// newline breaks the line in pretty mode and separates with a space
// otherwise.
func (p *Printer) newline() {
	if p.pretty {
		p.writeln()
		return
	}
	p.space()
}

// kw prints keywords separated by spaces.
func (p *Printer) kw(tokens ...token.TokenType) {
	for i, t := range tokens {
		if i > 0 {
			p.space()
		}
		p.write(t.String())
	}
}

// clause starts a top-level clause: a line break in pretty mode, then its
// keywords.
func (p *Printer) clause(tokens ...token.TokenType) {
	p.newline()
	p.kw(tokens...)
}

// block prints body after a clause keyword. In pretty mode the body goes on
// the following lines, one level deeper.
func (p *Printer) block(body func()) {
	if !p.pretty {
		p.space()
		body()
		return
	}
	p.writeln()
	p.indent()
	body()
	p.dedent()
}

// formatList prints count items separated by commas. In pretty mode with
// multiline set each item gets its own line.
func (p *Printer) formatList(count int, format func(i int), multiline bool) {
	for i := 0; i < count; i++ {
		format(i)
		if i < count-1 {
			p.write(",")
			if multiline && p.pretty {
				p.writeln()
			} else {
				p.space()
			}
		}
	}
}

func (p *Printer) formatComments(comments []*token.Comment) {
	for _, c := range comments {
		p.write(c.Text)
		p.writeln()
	}
}

// formatTrailingComments appends comments to the current line. A line
// comment ends the line, so anything after it starts a new one.
func (p *Printer) formatTrailingComments(comments []*token.Comment) {
	lineOpen := false
	for _, c := range comments {
		if lineOpen {
			p.writeln()
		} else {
			p.space()
		}
		p.write(c.Text)
		lineOpen = c.Kind == token.LineComment
	}
}
