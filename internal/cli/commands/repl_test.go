package commands

import (
	"testing"

	"github.com/leapstack-labs/sqldialect/internal/cli/testutil"
	"github.com/leapstack-labs/sqldialect/pkg/dialects/generic"
	"github.com/leapstack-labs/sqldialect/pkg/dialects/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	logtest "github.com/leapstack-labs/sqldialect/internal/testutil"
)

func newTestSession(t *testing.T, tr *testutil.TestRenderer) *replSession {
	t.Helper()
	return newREPLSession(mysql.MySQL, logtest.NewTestLogger(t), tr.Renderer)
}

func TestREPL_MultiLineStatement(t *testing.T) {
	tr := testutil.NewTestRendererText()
	s := newTestSession(t, tr)

	assert.Equal(t, "sqldialect(mysql)> ", s.prompt())
	assert.False(t, s.handleLine("DELETE FROM t"))
	assert.Equal(t, continuationPrompt, s.prompt())
	assert.Empty(t, tr.Output())

	assert.False(t, s.handleLine("  ORDER BY id LIMIT 5;"))
	assert.Equal(t, "DELETE FROM t ORDER BY id LIMIT 5;\n-- delete\n", tr.Output())
	assert.Equal(t, "sqldialect(mysql)> ", s.prompt())
}

func TestREPL_ErrorShowsCaret(t *testing.T) {
	tr := testutil.NewTestRendererText()
	s := newTestSession(t, tr)

	s.handleLine("DELETE t;")
	assert.Empty(t, tr.Output())
	assert.Contains(t, tr.ErrorOutput(), "<repl>: parse error at line 1, column 8")
	assert.Contains(t, tr.ErrorOutput(), " 1 | DELETE t;\n   |        ^\n")
	testutil.AssertNoANSI(t, tr.ErrorOutput())

	// The session recovers after an error.
	tr.Reset()
	s.handleLine("SELECT 1;")
	assert.Equal(t, "SELECT 1;\n-- select\n", tr.Output())
}

func TestREPL_DotCommands(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		quit    bool
		wantOut string
		wantErr string
	}{
		{name: "quit", line: ".quit", quit: true},
		{name: "exit", line: ".EXIT", quit: true},
		{name: "help", line: ".help", wantOut: ".dialect [name]"},
		{name: "show dialect", line: ".dialect", wantOut: "dialect: mysql"},
		{name: "list dialects", line: ".dialects", wantOut: "ansi, databricks"},
		{name: "unknown dialect", line: ".dialect oracle", wantErr: `unknown dialect "oracle"`},
		{name: "unknown command", line: ".tables", wantErr: "Unknown command: .tables"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := testutil.NewTestRendererText()
			s := newTestSession(t, tr)

			assert.Equal(t, tt.quit, s.handleLine(tt.line))
			if tt.wantOut != "" {
				assert.Contains(t, tr.Output(), tt.wantOut)
			}
			if tt.wantErr != "" {
				assert.Contains(t, tr.ErrorOutput(), tt.wantErr)
			}
		})
	}
}

func TestREPL_SwitchDialect(t *testing.T) {
	tr := testutil.NewTestRendererText()
	s := newTestSession(t, tr)

	s.handleLine(".dialect generic")
	assert.Equal(t, generic.Generic, s.dialect)
	assert.Equal(t, "sqldialect(generic)> ", s.prompt())

	tr.Reset()
	s.handleLine("DELETE FROM t LIMIT 1;")
	assert.Contains(t, tr.ErrorOutput(), "unexpected keyword LIMIT, expected end of statement")
}

func TestREPL_Toggles(t *testing.T) {
	tr := testutil.NewTestRendererText()
	s := newTestSession(t, tr)

	s.handleLine(".tokens")
	s.handleLine(".pretty")
	assert.Equal(t, "tokens: on\npretty: on\n", tr.Output())

	tr.Reset()
	s.handleLine("DELETE FROM `t` WHERE a = 1;")
	out := tr.Output()
	assert.Contains(t, out, "t (quoted `)")
	assert.Contains(t, out, "DELETE FROM `t`\nWHERE\n  a = 1;\n")
}

func TestREPL_DotLinesInsideStatementAreSQL(t *testing.T) {
	tr := testutil.NewTestRendererText()
	s := newTestSession(t, tr)

	s.handleLine("SELECT a")
	assert.False(t, s.handleLine(".quit"), "a pending statement swallows dot lines")
	s.reset()
	assert.Equal(t, "sqldialect(mysql)> ", s.prompt())
}

func TestREPL_Structured(t *testing.T) {
	tr := testutil.NewTestRendererYAML()
	s := newTestSession(t, tr)

	s.handleLine("DELETE FROM t USING u;")

	var got []map[string]any
	require.NoError(t, yaml.Unmarshal(tr.Out.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "delete", got[0]["kind"])
	assert.Equal(t, "DELETE FROM t USING u", got[0]["sql"])
}
