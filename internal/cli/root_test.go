package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/sqldialect/internal/cli/config"
	"github.com/leapstack-labs/sqldialect/internal/cli/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	cmd := NewRootCmd()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)

	executed, err := cmd.ExecuteC()
	if err != nil {
		ReportError(executed, err)
	}
	return out.String(), errOut.String(), err
}

func TestRoot_Help(t *testing.T) {
	t.Chdir(t.TempDir())

	out, _, err := run(t, "--help")
	require.NoError(t, err)
	for _, name := range []string{"parse", "tokens", "format", "dialects", "repl", "version", "completion"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "--dialect")
}

func TestRoot_DialectFlag(t *testing.T) {
	t.Chdir(t.TempDir())

	out, _, err := run(t, "format", "-d", "mysql", "--to", "postgres", "DELETE FROM `t` LIMIT 1")
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM \"t\" LIMIT 1;\n", out)
}

func TestRoot_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sqldialect.yaml"), []byte("dialect: mysql\noutput: json\n"), 0600))

	out, _, err := run(t, "parse", "DELETE FROM t ORDER BY a LIMIT 2")
	require.NoError(t, err)
	assert.Contains(t, out, `"kind": "delete"`)
	assert.Contains(t, out, `"dialect": "mysql"`)
}

func TestRoot_ErrorReportedWithCaret(t *testing.T) {
	t.Chdir(t.TempDir())

	_, errOut, err := run(t, "parse", "-d", "mysql", "-o", "text", "DELETE t")
	require.Error(t, err)

	var srcErr *output.SourceError
	assert.True(t, errors.As(err, &srcErr))
	assert.Contains(t, errOut, "Error: <args>: parse error at line 1, column 8")
	assert.Contains(t, errOut, "   |        ^")
}

func TestRoot_InvalidConfig(t *testing.T) {
	t.Chdir(t.TempDir())

	_, errOut, err := run(t, "parse", "-d", "oracle", "SELECT 1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown dialect "oracle"`)
	assert.Contains(t, errOut, "Error: invalid dialect")
}

func TestRoot_VerboseLogsToStderr(t *testing.T) {
	t.Chdir(t.TempDir())

	_, errOut, err := run(t, "parse", "-v", "-d", "mysql", "DELETE FROM t")
	require.NoError(t, err)
	assert.Contains(t, errOut, "configuration loaded")
	assert.Contains(t, errOut, "statement claimed by dialect")
}

func TestRoot_Completion(t *testing.T) {
	out, _, err := run(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "sqldialect")

	_, _, err = run(t, "completion", "tcsh")
	require.Error(t, err)
}

func TestGetConfigAndRenderer_Defaults(t *testing.T) {
	assert.Equal(t, config.Default(), GetConfig(context.Background()))
	assert.NotNil(t, GetRenderer(context.Background()))
}
