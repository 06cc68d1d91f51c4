package format_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/leapstack-labs/sqldialect/pkg/core"
	"github.com/leapstack-labs/sqldialect/pkg/dialect"
	"github.com/leapstack-labs/sqldialect/pkg/dialects/generic"
	"github.com/leapstack-labs/sqldialect/pkg/dialects/mssql"
	"github.com/leapstack-labs/sqldialect/pkg/dialects/mysql"
	"github.com/leapstack-labs/sqldialect/pkg/dialects/postgres"
	"github.com/leapstack-labs/sqldialect/pkg/format"
	"github.com/leapstack-labs/sqldialect/pkg/parser"
	"github.com/leapstack-labs/sqldialect/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_Canonical(t *testing.T) {
	tests := []struct {
		name     string
		d        dialect.Dialect
		input    string
		expected string
	}{
		{
			name:     "keywords upper cased",
			d:        generic.Generic,
			input:    "select a,b from t where x=1",
			expected: "SELECT a, b FROM t WHERE x = 1",
		},
		{
			name:     "full select",
			d:        generic.Generic,
			input:    "select distinct a as x, count(*) from s.t t1 left outer join u on t1.id = u.id group by a having count(*)>1 order by a desc nulls first limit 5 offset 10",
			expected: "SELECT DISTINCT a AS x, count(*) FROM s.t AS t1 LEFT JOIN u ON t1.id = u.id GROUP BY a HAVING count(*) > 1 ORDER BY a DESC NULLS FIRST LIMIT 5 OFFSET 10",
		},
		{
			name:     "predicates",
			d:        generic.Generic,
			input:    "SELECT * FROM t WHERE a NOT IN (1,2) AND b BETWEEN 1 AND 2 OR c IS NOT NULL AND d LIKE 'x''%'",
			expected: "SELECT * FROM t WHERE a NOT IN (1, 2) AND b BETWEEN 1 AND 2 OR c IS NOT NULL AND d LIKE 'x''%'",
		},
		{
			name:     "not equal is normalised",
			d:        generic.Generic,
			input:    "SELECT 1 FROM t WHERE a <> b",
			expected: "SELECT 1 FROM t WHERE a != b",
		},
		{
			name:     "subqueries and case",
			d:        generic.Generic,
			input:    "SELECT CASE WHEN a THEN 1 ELSE 2 END, (SELECT 1) FROM (SELECT a FROM t) d WHERE NOT EXISTS (SELECT 1 FROM u)",
			expected: "SELECT CASE WHEN a THEN 1 ELSE 2 END, (SELECT 1) FROM (SELECT a FROM t) AS d WHERE NOT EXISTS (SELECT 1 FROM u)",
		},
		{
			name:     "insert",
			d:        generic.Generic,
			input:    "insert into t (a,b) values (1,'x'),(2,null)",
			expected: "INSERT INTO t (a, b) VALUES (1, 'x'), (2, NULL)",
		},
		{
			name:     "update",
			d:        generic.Generic,
			input:    "update t set a=a+1 where b is null",
			expected: "UPDATE t SET a = a + 1 WHERE b IS NULL",
		},
		{
			name:     "mysql delete",
			d:        mysql.MySQL,
			input:    "delete from `t` using u where x=1 order by x limit 10",
			expected: "DELETE FROM `t` USING u WHERE x = 1 ORDER BY x LIMIT 10",
		},
		{
			name:     "double negation keeps its space",
			d:        generic.Generic,
			input:    "SELECT - -a",
			expected: "SELECT - -a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt, err := parser.Parse(tt.input, tt.d)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, format.SQL(stmt))
		})
	}
}

func TestFormat_Pretty(t *testing.T) {
	stmt, err := parser.Parse("SELECT a, b FROM t JOIN u ON t.id = u.id WHERE x = 1 ORDER BY a", generic.Generic)
	require.NoError(t, err)

	expected := `SELECT
  a,
  b
FROM t
JOIN u ON t.id = u.id
WHERE
  x = 1
ORDER BY
  a`
	assert.Equal(t, expected, format.SQL(stmt, format.Pretty()))

	stmt, err = parser.Parse("DELETE FROM t USING u WHERE a = 1 LIMIT 2", mysql.MySQL)
	require.NoError(t, err)
	expected = `DELETE FROM t
USING u
WHERE
  a = 1
LIMIT 2`
	assert.Equal(t, expected, format.SQL(stmt, format.Pretty()))
}

var ignoreSpans = cmpopts.IgnoreTypes(token.Span{})

func TestFormat_RoundTrip(t *testing.T) {
	tests := []struct {
		d   dialect.Dialect
		sql string
	}{
		{generic.Generic, "SELECT a + b * c - (d - e), -a * b, NOT a = b FROM t"},
		{generic.Generic, "SELECT * FROM a, b CROSS JOIN c FULL OUTER JOIN d ON a.x = d.x"},
		{generic.Generic, `SELECT "odd name", "x""y" FROM "t" WHERE "a" IN (SELECT b FROM c)`},
		{generic.Generic, "SELECT count(DISTINCT a), sum(b) FROM t GROUP BY c HAVING sum(b) > 0"},
		{generic.Generic, "SELECT a FROM t WHERE NOT a AND b OR c IS NULL"},
		{generic.Generic, "SELECT a || b FROM t ORDER BY a NULLS LAST LIMIT ALL"},
		{generic.Generic, "SELECT a = b IS NULL, a = NOT b AND c FROM t"},
		{generic.Generic, "UPDATE t AS x SET a = ?, b = 'q' WHERE c BETWEEN 1 + 1 AND 3"},
		{mysql.MySQL, "DELETE FROM `a b` AS x USING u WHERE x.id = u.id ORDER BY x.id DESC, x.k LIMIT ?"},
		{mysql.MySQL, "SELECT `select`, $v, @w FROM t"},
		{mssql.MSSQL, "SELECT [a]]b], #tmp FROM [dbo].[t]"},
	}

	for _, tt := range tests {
		t.Run(tt.sql, func(t *testing.T) {
			want, err := parser.Parse(tt.sql, tt.d)
			require.NoError(t, err)

			for _, opts := range [][]format.Option{nil, {format.Pretty()}} {
				out := format.SQL(want, opts...)
				got, err := parser.Parse(out, tt.d)
				require.NoError(t, err, "reparse of %q", out)
				if diff := cmp.Diff(want, got, ignoreSpans); diff != "" {
					t.Errorf("round trip of %q changed the AST (-want +got):\n%s", out, diff)
				}
			}
		})
	}
}

func TestFormat_WithDialect(t *testing.T) {
	tests := []struct {
		name     string
		from     dialect.Dialect
		to       dialect.Dialect
		input    string
		expected string
	}{
		{
			name:     "backticks to double quotes",
			from:     mysql.MySQL,
			to:       postgres.Postgres,
			input:    "DELETE FROM `my table` WHERE `id` = 1",
			expected: `DELETE FROM "my table" WHERE "id" = 1`,
		},
		{
			name:     "sigil identifiers get quoted",
			from:     mysql.MySQL,
			to:       postgres.Postgres,
			input:    "SELECT $total FROM t",
			expected: `SELECT "$total" FROM t`,
		},
		{
			name:     "reserved words get quoted",
			from:     generic.Generic,
			to:       postgres.Postgres,
			input:    "SELECT user FROM t",
			expected: `SELECT "user" FROM t`,
		},
		{
			name:     "mssql prefers double quotes",
			from:     generic.Generic,
			to:       mssql.MSSQL,
			input:    `SELECT "a" FROM t`,
			expected: `SELECT "a" FROM t`,
		},
		{
			name:     "embedded delimiters are doubled",
			from:     generic.Generic,
			to:       mysql.MySQL,
			input:    "SELECT \"a`b\" FROM t",
			expected: "SELECT `a``b` FROM t",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt, err := parser.Parse(tt.input, tt.from)
			require.NoError(t, err)
			out := format.SQL(stmt, format.WithDialect(tt.to))
			assert.Equal(t, tt.expected, out)

			_, err = parser.Parse(out, tt.to)
			require.NoError(t, err, "output lexes under the target dialect")
		})
	}
}

func TestFormat_Nodes(t *testing.T) {
	stmt, err := parser.Parse("DELETE FROM t AS x ORDER BY a DESC LIMIT 3", mysql.MySQL)
	require.NoError(t, err)
	del := stmt.(*core.DeleteStmt)

	assert.Equal(t, "t AS x", format.SQL(del.Table))
	assert.Equal(t, "a DESC", format.SQL(del.OrderBy[0]))
	assert.Equal(t, "3", format.SQL(del.Limit))
	assert.Equal(t, "ALL", format.SQL(&core.Limit{All: true}))
	assert.Equal(t, "a", format.SQL(del.OrderBy[0].Expr))
}

func TestFormat_Parenthesises(t *testing.T) {
	// (a OR b) AND c built by hand, without a ParenExpr
	expr := &core.BinaryExpr{
		Left: &core.BinaryExpr{
			Left:  &core.ColumnRef{Name: core.ObjectName{core.NewIdent("a")}},
			Op:    token.OR,
			Right: &core.ColumnRef{Name: core.ObjectName{core.NewIdent("b")}},
		},
		Op:    token.AND,
		Right: &core.ColumnRef{Name: core.ObjectName{core.NewIdent("c")}},
	}
	assert.Equal(t, "(a OR b) AND c", format.SQL(expr))

	// a - (b - c)
	sub := &core.BinaryExpr{
		Left: &core.ColumnRef{Name: core.ObjectName{core.NewIdent("a")}},
		Op:   token.MINUS,
		Right: &core.BinaryExpr{
			Left:  &core.ColumnRef{Name: core.ObjectName{core.NewIdent("b")}},
			Op:    token.MINUS,
			Right: &core.ColumnRef{Name: core.ObjectName{core.NewIdent("c")}},
		},
	}
	assert.Equal(t, "a - (b - c)", format.SQL(sub))
}

func TestStatements_Comments(t *testing.T) {
	sql := "-- header\nSELECT 1; /* inline */ DELETE FROM t -- why\n;\n-- tail"
	p, err := parser.NewParser(sql, mysql.MySQL)
	require.NoError(t, err)
	stmts, err := p.ParseStatements()
	require.NoError(t, err)

	expected := "-- header\nSELECT 1;\n/* inline */\nDELETE FROM t; -- why\n-- tail\n"
	assert.Equal(t, expected, format.Statements(stmts, p.Comments()))
}

func TestStatements_CommentsOnly(t *testing.T) {
	p, err := parser.NewParser("-- nothing here", generic.Generic)
	require.NoError(t, err)
	stmts, err := p.ParseStatements()
	require.NoError(t, err)
	assert.Equal(t, "-- nothing here\n", format.Statements(stmts, p.Comments()))
}
