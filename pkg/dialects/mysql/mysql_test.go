package mysql_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leapstack-labs/sqldialect/internal/testutil"
	"github.com/leapstack-labs/sqldialect/pkg/core"
	"github.com/leapstack-labs/sqldialect/pkg/dialect"
	"github.com/leapstack-labs/sqldialect/pkg/dialects/mysql"
	"github.com/leapstack-labs/sqldialect/pkg/parser"
	"github.com/leapstack-labs/sqldialect/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentifierRules(t *testing.T) {
	require.NoError(t, dialect.CheckIdentifierRules(mysql.MySQL))

	for ch := '0'; ch <= '9'; ch++ {
		assert.False(t, mysql.MySQL.IsIdentifierStart(ch), "digit %q must not start an identifier", ch)
		assert.True(t, mysql.MySQL.IsIdentifierPart(ch), "digit %q must continue an identifier", ch)
	}

	tests := []struct {
		ch        rune
		wantStart bool
		wantPart  bool
	}{
		{'a', true, true},
		{'Z', true, true},
		{'_', true, true},
		{'$', true, true},
		{'@', true, true},
		{'é', true, true},
		{'中', true, true},
		{'\uffff', true, true},
		{'\U00010000', false, false},
		{'#', false, false},
		{'-', false, false},
		{' ', false, false},
		{'`', false, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.wantStart, mysql.MySQL.IsIdentifierStart(tt.ch), "IsIdentifierStart(%q)", tt.ch)
		assert.Equal(t, tt.wantPart, mysql.MySQL.IsIdentifierPart(tt.ch), "IsIdentifierPart(%q)", tt.ch)
	}
}

func TestDelimitedIdentifierStart(t *testing.T) {
	assert.True(t, mysql.MySQL.IsDelimitedIdentifierStart('`'))
	assert.False(t, mysql.MySQL.IsDelimitedIdentifierStart('"'))
	assert.False(t, mysql.MySQL.IsDelimitedIdentifierStart('['))
}

func TestRegistered(t *testing.T) {
	d, ok := dialect.Get("MySQL")
	require.True(t, ok)
	assert.Equal(t, "mysql", d.Name())
	assert.True(t, dialect.Intercepts(d))
}

func TestReservedWords(t *testing.T) {
	assert.True(t, mysql.MySQL.IsReservedWord("KEY"))
	assert.True(t, mysql.MySQL.IsReservedWord("dual"))
	assert.False(t, mysql.MySQL.IsReservedWord("customer"))
}

func parseDelete(t *testing.T, sql string) *core.DeleteStmt {
	t.Helper()
	stmt, err := parser.Parse(sql, mysql.MySQL, parser.WithLogger(testutil.NewTestLogger(t)))
	require.NoError(t, err)
	del, ok := stmt.(*core.DeleteStmt)
	require.True(t, ok, "expected *core.DeleteStmt, got %T", stmt)
	return del
}

func tableName(t *testing.T, ref core.TableRef) string {
	t.Helper()
	tn, ok := ref.(*core.TableName)
	require.True(t, ok, "expected *core.TableName, got %T", ref)
	return tn.Name.String()
}

func TestDeleteWhereOnly(t *testing.T) {
	del := parseDelete(t, "DELETE FROM t WHERE x = 1")

	assert.Equal(t, "t", tableName(t, del.Table))
	assert.Nil(t, del.Using)
	assert.Nil(t, del.OrderBy)
	assert.Nil(t, del.Limit)

	where, ok := del.Where.(*core.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, token.EQ, where.Op)
	assert.Equal(t, "x", where.Left.(*core.ColumnRef).Column())
	assert.Equal(t, "1", where.Right.(*core.Literal).Value)
}

func TestDeleteUsingOrderByLimit(t *testing.T) {
	del := parseDelete(t, "DELETE FROM t USING u ORDER BY x LIMIT 10")

	assert.Equal(t, "t", tableName(t, del.Table))
	assert.Equal(t, "u", tableName(t, del.Using))
	assert.Nil(t, del.Where)

	require.Len(t, del.OrderBy, 1)
	assert.Equal(t, "x", del.OrderBy[0].Expr.(*core.ColumnRef).Column())
	assert.False(t, del.OrderBy[0].Desc)

	require.NotNil(t, del.Limit)
	assert.False(t, del.Limit.All)
	assert.Equal(t, "10", del.Limit.Count.(*core.Literal).Value)
}

func TestDeleteClauses(t *testing.T) {
	tests := []struct {
		name      string
		sql       string
		wantUsing bool
		wantWhere bool
		wantOrder int
		wantLimit bool
	}{
		{name: "bare", sql: "DELETE FROM t"},
		{name: "using", sql: "DELETE FROM t USING u", wantUsing: true},
		{name: "all clauses", sql: "DELETE FROM t USING u WHERE t.id = u.id ORDER BY t.id DESC, t.ts LIMIT 5",
			wantUsing: true, wantWhere: true, wantOrder: 2, wantLimit: true},
		{name: "order without limit", sql: "DELETE FROM t ORDER BY a", wantOrder: 1},
		{name: "limit without order", sql: "DELETE FROM t LIMIT ?", wantLimit: true},
		{name: "where and limit", sql: "DELETE FROM t WHERE a IN (1, 2) LIMIT 1", wantWhere: true, wantLimit: true},
		{name: "lower case keywords", sql: "delete from t using u where a = 1", wantUsing: true, wantWhere: true},
		{name: "trailing semicolon", sql: "DELETE FROM t;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			del := parseDelete(t, tt.sql)
			assert.Equal(t, tt.wantUsing, del.Using != nil, "using")
			assert.Equal(t, tt.wantWhere, del.Where != nil, "where")
			assert.Len(t, del.OrderBy, tt.wantOrder, "order by")
			assert.Equal(t, tt.wantLimit, del.Limit != nil, "limit")
		})
	}
}

func TestDeleteLimitAll(t *testing.T) {
	del := parseDelete(t, "DELETE FROM t LIMIT ALL")
	require.NotNil(t, del.Limit, "LIMIT ALL is present, not absent")
	assert.True(t, del.Limit.All)
	assert.Nil(t, del.Limit.Count)
}

func TestDeleteBacktickTable(t *testing.T) {
	del := parseDelete(t, "DELETE FROM `my db`.`order` AS o WHERE o.`id` = 1")
	tn := del.Table.(*core.TableName)
	require.Len(t, tn.Name, 2)
	assert.Equal(t, "my db", tn.Name[0].Value)
	assert.Equal(t, "order", tn.Name[1].Value)
	assert.Equal(t, '`', tn.Name[1].Quote)
	require.NotNil(t, tn.Alias)
	assert.Equal(t, "o", tn.Alias.Value)
}

func TestDeleteSpan(t *testing.T) {
	sql := "DELETE FROM t USING u WHERE a = 1 ORDER BY a LIMIT 3"
	del := parseDelete(t, sql)
	assert.Equal(t, sql, del.Span.Text(sql))

	sql = "  DELETE FROM t  ;"
	del = parseDelete(t, sql)
	assert.Equal(t, "DELETE FROM t", del.Span.Text(sql))
}

func TestDeleteErrors(t *testing.T) {
	tests := []struct {
		name    string
		sql     string
		wantMsg string
		wantPos token.Position
	}{
		{
			name:    "missing FROM",
			sql:     "DELETE t",
			wantMsg: "unexpected identifier t, expected FROM",
			wantPos: token.Position{Line: 1, Column: 8, Offset: 7},
		},
		{
			name:    "missing table",
			sql:     "DELETE FROM",
			wantMsg: "unexpected EOF, expected identifier",
			wantPos: token.Position{Line: 1, Column: 12, Offset: 11},
		},
		{
			name:    "missing USING table",
			sql:     "DELETE FROM t USING WHERE a = 1",
			wantMsg: "unexpected keyword WHERE, expected identifier",
			wantPos: token.Position{Line: 1, Column: 21, Offset: 20},
		},
		{
			name:    "empty ORDER BY",
			sql:     "DELETE FROM t ORDER BY LIMIT 1",
			wantMsg: "unexpected keyword LIMIT, expected an expression",
			wantPos: token.Position{Line: 1, Column: 24, Offset: 23},
		},
		{
			name:    "ORDER without BY",
			sql:     "DELETE FROM t ORDER x",
			wantMsg: "unexpected keyword ORDER, expected end of statement",
			wantPos: token.Position{Line: 1, Column: 15, Offset: 14},
		},
		{
			name:    "malformed WHERE",
			sql:     "DELETE FROM t WHERE",
			wantMsg: "unexpected EOF, expected an expression",
			wantPos: token.Position{Line: 1, Column: 20, Offset: 19},
		},
		{
			name:    "negative LIMIT",
			sql:     "DELETE FROM t LIMIT -1",
			wantMsg: `unexpected "-", expected a row count or ALL`,
			wantPos: token.Position{Line: 1, Column: 21, Offset: 20},
		},
		{
			name:    "WHERE after ORDER BY",
			sql:     "DELETE FROM t ORDER BY a WHERE a = 1",
			wantMsg: "unexpected keyword WHERE, expected end of statement",
			wantPos: token.Position{Line: 1, Column: 26, Offset: 25},
		},
		{
			name:    "USING after WHERE",
			sql:     "DELETE FROM t WHERE a = 1 USING u",
			wantMsg: "unexpected keyword USING, expected end of statement",
			wantPos: token.Position{Line: 1, Column: 27, Offset: 26},
		},
		{
			name:    "ORDER BY after LIMIT",
			sql:     "DELETE FROM t LIMIT 1 ORDER BY a",
			wantMsg: "unexpected keyword ORDER, expected end of statement",
			wantPos: token.Position{Line: 1, Column: 23, Offset: 22},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse(tt.sql, mysql.MySQL)
			require.Error(t, err)
			var pe *parser.ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.wantMsg, pe.Message)
			assert.Equal(t, tt.wantPos, pe.Pos)
		})
	}
}

func TestDeleteLimitOffsetShorthandRejected(t *testing.T) {
	_, err := parser.Parse("DELETE FROM t LIMIT 5, 10", mysql.MySQL)
	require.Error(t, err)
	require.ErrorIs(t, err, mysql.ErrLimitOffsetShorthand)

	pos, ok := parser.PositionOf(err)
	require.True(t, ok)
	assert.Equal(t, 22, pos.Column, "points at the comma")
}

// lexOnly hides the statement parser so the generic grammar handles every
// statement with the same lexical rules.
type lexOnly struct{ dialect.Dialect }

func TestDeclineIsLossless(t *testing.T) {
	inputs := []string{
		"SELECT a, `b c` FROM t WHERE a = 1 ORDER BY a LIMIT 3",
		"SELECT count(*) FROM t JOIN u ON t.id = u.id GROUP BY t.x HAVING count(*) > 1",
		"INSERT INTO t (a, b) VALUES (1, 'x')",
		"UPDATE t SET a = a + 1 WHERE b IS NOT NULL",
		"SELECT 1; UPDATE t SET a = 2; SELECT 3",
	}
	plain := lexOnly{mysql.MySQL}
	require.False(t, dialect.Intercepts(plain))

	for _, sql := range inputs {
		t.Run(sql, func(t *testing.T) {
			want, err := parser.ParseStatements(sql, plain)
			require.NoError(t, err)
			got, err := parser.ParseStatements(sql, mysql.MySQL)
			require.NoError(t, err)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("AST differs after decline (-generic +mysql):\n%s", diff)
			}
		})
	}
}

func TestDeclineErrorsMatchGeneric(t *testing.T) {
	sql := "SELECT FROM"
	plain := lexOnly{mysql.MySQL}

	_, wantErr := parser.Parse(sql, plain)
	require.Error(t, wantErr)
	_, gotErr := parser.Parse(sql, mysql.MySQL)
	require.Error(t, gotErr)
	assert.Equal(t, wantErr.Error(), gotErr.Error())
}

func TestMixedStatements(t *testing.T) {
	stmts, err := parser.ParseStatements(
		"SELECT 1; DELETE FROM t USING u LIMIT 1; UPDATE t SET a = 1; DELETE FROM v",
		mysql.MySQL)
	require.NoError(t, err)
	require.Len(t, stmts, 4)
	assert.IsType(t, &core.SelectStmt{}, stmts[0])
	assert.NotNil(t, stmts[1].(*core.DeleteStmt).Using)
	assert.IsType(t, &core.UpdateStmt{}, stmts[2])
	assert.Nil(t, stmts[3].(*core.DeleteStmt).Using)
}
