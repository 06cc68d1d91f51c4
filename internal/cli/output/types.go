package output

import (
	"github.com/leapstack-labs/sqldialect/pkg/core"
	"github.com/leapstack-labs/sqldialect/pkg/dialect"
	"github.com/leapstack-labs/sqldialect/pkg/format"
	"github.com/leapstack-labs/sqldialect/pkg/token"
)

// StatementInfo is the structured form of a parsed statement.
type StatementInfo struct {
	Kind   string    `json:"kind"`
	SQL    string    `json:"sql"`
	Line   int       `json:"line"`
	Column int       `json:"column"`
	AST    core.Stmt `json:"ast"`
}

// SourceResult groups the statements parsed from one input.
type SourceResult struct {
	Source     string          `json:"source"`
	Dialect    string          `json:"dialect"`
	Statements []StatementInfo `json:"statements"`
}

// TokenInfo is the structured form of a token.
type TokenInfo struct {
	Type    string `json:"type"`
	Literal string `json:"literal,omitempty"`
	Quote   string `json:"quote,omitempty"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Offset  int    `json:"offset"`
}

// DialectInfo describes a registered dialect.
type DialectInfo struct {
	Name       string `json:"name"`
	Quote      string `json:"quote"`
	Intercepts bool   `json:"intercepts"`
}

// FormatResult is the structured output of the format command.
type FormatResult struct {
	Source  string `json:"source"`
	Dialect string `json:"dialect"`
	SQL     string `json:"sql"`
}

// StatementKind names the statement type.
func StatementKind(stmt core.Stmt) string {
	switch stmt.(type) {
	case *core.SelectStmt:
		return "select"
	case *core.InsertStmt:
		return "insert"
	case *core.UpdateStmt:
		return "update"
	case *core.DeleteStmt:
		return "delete"
	}
	return "unknown"
}

// NewStatementInfo describes stmt with its canonical SQL.
func NewStatementInfo(stmt core.Stmt) StatementInfo {
	pos := stmt.Pos()
	return StatementInfo{
		Kind:   StatementKind(stmt),
		SQL:    format.SQL(stmt),
		Line:   pos.Line,
		Column: pos.Column,
		AST:    stmt,
	}
}

// NewTokenInfo describes tok.
func NewTokenInfo(tok token.Token) TokenInfo {
	info := TokenInfo{
		Type:   tok.Type.String(),
		Line:   tok.Pos.Line,
		Column: tok.Pos.Column,
		Offset: tok.Pos.Offset,
	}
	switch tok.Type {
	case token.IDENT, token.NUMBER, token.STRING, token.PLACEHOLDER:
		info.Literal = tok.Literal
	}
	if tok.Quote != 0 {
		info.Quote = string(tok.Quote)
	}
	return info
}

// NewDialectInfo describes d.
func NewDialectInfo(d dialect.Dialect) DialectInfo {
	info := DialectInfo{Name: d.Name(), Intercepts: dialect.Intercepts(d)}
	if q := dialect.PreferredQuote(d); q != 0 {
		info.Quote = string(q) + string(dialect.ClosingQuote(q))
	}
	return info
}
