package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"regexp"
	"testing"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/sqldialect/pkg/dialects/generic"
	"github.com/leapstack-labs/sqldialect/pkg/dialects/mysql"
	"github.com/leapstack-labs/sqldialect/pkg/parser"
	"github.com/leapstack-labs/sqldialect/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func newTest(mode Mode) (*Renderer, *bytes.Buffer, *bytes.Buffer) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	return NewRendererWithTTY(out, errOut, false, mode), out, errOut
}

func TestEffectiveMode(t *testing.T) {
	tests := []struct {
		mode       Mode
		want       Mode
		structured bool
	}{
		{ModeAuto, ModeText, false},
		{"", ModeText, false},
		{ModeText, ModeText, false},
		{ModeJSON, ModeJSON, true},
		{ModeYAML, ModeYAML, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			r, _, _ := newTest(tt.mode)
			assert.Equal(t, tt.want, r.EffectiveMode())
			assert.Equal(t, tt.structured, r.IsStructured())
		})
	}
}

func TestNewRenderer_BufferIsNotTTY(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, &bytes.Buffer{}, ModeAuto)
	assert.False(t, r.IsTTY())
}

func TestSourceSnippet(t *testing.T) {
	tests := []struct {
		name string
		src  string
		pos  token.Position
		want []string
	}{
		{
			name: "first line",
			src:  "DELETE t",
			pos:  token.Position{Line: 1, Column: 8},
			want: []string{" 1 | DELETE t", "   |        ^"},
		},
		{
			name: "second line with tab",
			src:  "SELECT 1;\n\tDELETE t",
			pos:  token.Position{Line: 2, Column: 9},
			want: []string{" 2 | \tDELETE t", "   | \t       ^"},
		},
		{
			name: "past end of line",
			src:  "SELECT",
			pos:  token.Position{Line: 1, Column: 7},
			want: []string{" 1 | SELECT", "   |       ^"},
		},
		{
			name: "outside source",
			src:  "SELECT",
			pos:  token.Position{Line: 3, Column: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SourceSnippet(tt.src, tt.pos))
		})
	}
}

func TestError_TextWithCaret(t *testing.T) {
	src := "DELETE t"
	_, err := parser.Parse(src, mysql.MySQL)
	require.Error(t, err)

	r, out, errOut := newTest(ModeText)
	r.Error(&SourceError{Name: "<args>", Input: src, Err: err})

	assert.Empty(t, out.String())
	assert.Equal(t,
		"Error: <args>: parse error at line 1, column 8: unexpected identifier t, expected FROM\n"+
			" 1 | DELETE t\n"+
			"   |        ^\n",
		errOut.String())
	assert.False(t, ansi.MatchString(errOut.String()))
}

func TestError_WithoutSource(t *testing.T) {
	r, _, errOut := newTest(ModeAuto)
	r.Error(errors.New("boom"))
	assert.Equal(t, "Error: boom\n", errOut.String())

	errOut.Reset()
	r.Error(nil)
	assert.Empty(t, errOut.String())
}

func TestError_Structured(t *testing.T) {
	src := "DELETE t"
	_, err := parser.Parse(src, mysql.MySQL)
	require.Error(t, err)

	r, _, errOut := newTest(ModeJSON)
	r.Error(&SourceError{Name: "q.sql", Input: src, Err: err})

	var got map[string]any
	require.NoError(t, json.Unmarshal(errOut.Bytes(), &got))
	assert.Equal(t, "q.sql", got["source"])
	assert.EqualValues(t, 1, got["line"])
	assert.EqualValues(t, 8, got["column"])
	assert.Contains(t, got["error"], "expected FROM")
}

func TestStructured_YAMLUsesJSONNames(t *testing.T) {
	stmt, err := parser.Parse("DELETE FROM t LIMIT 1", mysql.MySQL)
	require.NoError(t, err)

	r, out, _ := newTest(ModeYAML)
	require.NoError(t, r.Structured(NewStatementInfo(stmt)))

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "delete", got["kind"])
	assert.Equal(t, "DELETE FROM t LIMIT 1", got["sql"])
	assert.Contains(t, got, "ast")
}

func TestTable(t *testing.T) {
	r, out, _ := newTest(ModeText)
	r.Table(table.Row{"Name", "Quote"}, []table.Row{{"mysql", "`"}})

	assert.Contains(t, out.String(), "NAME")
	assert.Contains(t, out.String(), "mysql")
}

func TestNewStatementInfo(t *testing.T) {
	stmts, err := parser.ParseStatements("SELECT 1;\n  UPDATE t SET a = 1", generic.Generic)
	require.NoError(t, err)

	first := NewStatementInfo(stmts[0])
	assert.Equal(t, "select", first.Kind)
	assert.Equal(t, 1, first.Line)

	second := NewStatementInfo(stmts[1])
	assert.Equal(t, "update", second.Kind)
	assert.Equal(t, "UPDATE t SET a = 1", second.SQL)
	assert.Equal(t, 2, second.Line)
	assert.Equal(t, 3, second.Column)
}

func TestNewTokenInfo(t *testing.T) {
	toks, err := parser.Tokenize("SELECT `a b`, 'x'", mysql.MySQL)
	require.NoError(t, err)

	got := make([]TokenInfo, 0, len(toks))
	for _, tok := range toks {
		got = append(got, NewTokenInfo(tok))
	}
	assert.Equal(t, []TokenInfo{
		{Type: "SELECT", Line: 1, Column: 1, Offset: 0},
		{Type: "IDENT", Literal: "a b", Quote: "`", Line: 1, Column: 8, Offset: 7},
		{Type: ",", Line: 1, Column: 13, Offset: 12},
		{Type: "STRING", Literal: "x", Line: 1, Column: 15, Offset: 14},
		{Type: "EOF", Line: 1, Column: 18, Offset: 17},
	}, got)
}

func TestNewDialectInfo(t *testing.T) {
	assert.Equal(t, DialectInfo{Name: "mysql", Quote: "``", Intercepts: true}, NewDialectInfo(mysql.MySQL))
	assert.Equal(t, DialectInfo{Name: "generic", Quote: `""`}, NewDialectInfo(generic.Generic))
}
