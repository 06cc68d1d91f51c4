// Package output renders CLI results as styled text, JSON or YAML.
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/sqldialect/pkg/parser"
	"github.com/leapstack-labs/sqldialect/pkg/token"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Mode selects the output format.
type Mode string

// Output modes
const (
	ModeAuto Mode = "auto"
	ModeText Mode = "text"
	ModeJSON Mode = "json"
	ModeYAML Mode = "yaml"
)

// Renderer writes command results in the configured mode.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	isTTY  bool
	styles *Styles
}

// NewRenderer creates a renderer, detecting whether out is a terminal.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	return NewRendererWithTTY(out, errOut, isTerminal(out), mode)
}

// NewRendererWithTTY creates a renderer with an explicit TTY state.
func NewRendererWithTTY(out, errOut io.Writer, isTTY bool, mode Mode) *Renderer {
	if mode == "" {
		mode = ModeAuto
	}
	return &Renderer{
		out:    out,
		errOut: errOut,
		mode:   mode,
		isTTY:  isTTY,
		styles: NewStyles(out, isTTY),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// EffectiveMode resolves ModeAuto. Auto always renders text; the TTY state
// only decides whether it is styled.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode == ModeAuto {
		return ModeText
	}
	return r.mode
}

// IsStructured reports whether output is JSON or YAML.
func (r *Renderer) IsStructured() bool {
	m := r.EffectiveMode()
	return m == ModeJSON || m == ModeYAML
}

// IsTTY reports whether output goes to a terminal.
func (r *Renderer) IsTTY() bool { return r.isTTY }

// Styles returns the renderer's styles.
func (r *Renderer) Styles() *Styles { return r.styles }

// Writer returns the standard output writer.
func (r *Renderer) Writer() io.Writer { return r.out }

// ErrWriter returns the error output writer.
func (r *Renderer) ErrWriter() io.Writer { return r.errOut }

// Println writes a line to standard output.
func (r *Renderer) Println(a ...any) {
	_, _ = fmt.Fprintln(r.out, a...)
}

// Printf writes formatted text to standard output.
func (r *Renderer) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(r.out, format, a...)
}

// Header writes a styled section title.
func (r *Renderer) Header(title string) {
	r.Println(r.styles.Header.Render(title))
}

// Muted writes a de-emphasised line.
func (r *Renderer) Muted(msg string) {
	r.Println(r.styles.Muted.Render(msg))
}

// Warning writes a warning to the error output.
func (r *Renderer) Warning(msg string) {
	_, _ = fmt.Fprintln(r.errOut, r.styles.Warning.Render("Warning: "+msg))
}

// Table writes rows under header using go-pretty.
func (r *Renderer) Table(header table.Row, rows []table.Row) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(header)
	t.AppendRows(rows)
	t.Render()
}

// Structured writes v as JSON or YAML depending on the mode. Text mode
// falls back to JSON.
func (r *Renderer) Structured(v any) error {
	if r.EffectiveMode() == ModeYAML {
		return r.YAML(v)
	}
	return r.JSON(v)
}

// JSON writes v as indented JSON.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// YAML writes v as YAML. Values go through JSON first so that field names
// and text marshalers match the JSON output.
func (r *Renderer) YAML(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return err
	}
	enc := yaml.NewEncoder(r.out)
	enc.SetIndent(2)
	if err := enc.Encode(generic); err != nil {
		return err
	}
	return enc.Close()
}

// errorOutput is the structured form of a failure.
type errorOutput struct {
	Error  string `json:"error"`
	Source string `json:"source,omitempty"`
	Line   int    `json:"line,omitempty"`
	Column int    `json:"column,omitempty"`
}

// Error reports err on the error output. Positioned errors carrying their
// source text get the offending line with a caret under the column.
func (r *Renderer) Error(err error) {
	if err == nil {
		return
	}
	var srcErr *SourceError
	hasSource := errors.As(err, &srcErr)
	pos, hasPos := parser.PositionOf(err)

	if r.IsStructured() {
		out := errorOutput{Error: err.Error()}
		if hasSource {
			out.Source = srcErr.Name
		}
		if hasPos {
			out.Line, out.Column = pos.Line, pos.Column
		}
		w := &Renderer{out: r.errOut, mode: r.mode}
		_ = w.Structured(out)
		return
	}

	_, _ = fmt.Fprintln(r.errOut, r.styles.Error.Render("Error:")+" "+err.Error())
	if !hasSource || !hasPos {
		return
	}
	snippet := SourceSnippet(srcErr.Input, pos)
	if snippet == nil {
		return
	}
	_, _ = fmt.Fprintln(r.errOut, r.styles.Muted.Render(snippet[0]))
	gutter, caret, _ := strings.Cut(snippet[1], "^")
	_, _ = fmt.Fprintln(r.errOut, r.styles.Muted.Render(gutter)+r.styles.Caret.Render("^"+caret))
}

// SourceSnippet returns the source line at pos and a caret line pointing
// at its column, both prefixed with a line-number gutter. It returns nil
// when pos is outside src.
func SourceSnippet(src string, pos token.Position) []string {
	lines := strings.Split(src, "\n")
	if pos.Line < 1 || pos.Line > len(lines) {
		return nil
	}
	line := strings.TrimRight(lines[pos.Line-1], "\r")
	number := fmt.Sprintf("%d", pos.Line)
	gutter := strings.Repeat(" ", len(number))

	// Tabs are kept so the caret lines up under tab-indented source.
	var pad strings.Builder
	col := 1
	for _, ch := range line {
		if col >= pos.Column {
			break
		}
		if ch == '\t' {
			pad.WriteRune('\t')
		} else {
			pad.WriteRune(' ')
		}
		col++
	}
	for ; col < pos.Column; col++ {
		pad.WriteRune(' ')
	}

	return []string{
		fmt.Sprintf(" %s | %s", number, line),
		fmt.Sprintf(" %s | %s^", gutter, pad.String()),
	}
}

// SourceError attaches the input text to an error so the renderer can
// point into it.
type SourceError struct {
	Name  string // file name, "<stdin>" or "<args>"
	Input string
	Err   error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }
