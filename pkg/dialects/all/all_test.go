package all_test

import (
	"testing"

	"github.com/leapstack-labs/sqldialect/pkg/dialect"
	_ "github.com/leapstack-labs/sqldialect/pkg/dialects/all"
	"github.com/leapstack-labs/sqldialect/pkg/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllRegistered(t *testing.T) {
	want := []string{
		"ansi", "databricks", "duckdb", "generic", "mssql",
		"mysql", "postgres", "snowflake", "sqlite",
	}
	assert.Equal(t, want, dialect.List())
}

func TestIdentifierRulesHold(t *testing.T) {
	for _, name := range dialect.List() {
		t.Run(name, func(t *testing.T) {
			d, err := dialect.Lookup(name)
			require.NoError(t, err)
			assert.NoError(t, dialect.CheckIdentifierRules(d))
			assert.NotZero(t, dialect.PreferredQuote(d), "every dialect quotes identifiers somehow")
		})
	}
}

func TestOnlyMySQLIntercepts(t *testing.T) {
	for _, name := range dialect.List() {
		d, _ := dialect.Get(name)
		assert.Equal(t, name == "mysql", dialect.Intercepts(d), name)
	}
}

// Every dialect must be able to round-trip its own quoting.
func TestQuotedIdentifierLexes(t *testing.T) {
	for _, name := range dialect.List() {
		t.Run(name, func(t *testing.T) {
			d, _ := dialect.Get(name)
			quoted := dialect.QuoteIdentifier(d, `odd "name`)
			toks, err := parser.Tokenize(quoted, d)
			require.NoError(t, err)
			require.Len(t, toks, 2)
			assert.Equal(t, `odd "name`, toks[0].Literal)
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := dialect.Lookup("oracle")
	require.ErrorIs(t, err, dialect.ErrUnknownDialect)
	assert.Contains(t, err.Error(), "available: ansi, databricks")
}
