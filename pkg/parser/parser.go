// Package parser provides dialect-aware SQL tokenizing and parsing.
//
// # Usage
//
//	stmt, err := parser.Parse("DELETE FROM t WHERE id = 1", mysql.MySQL)
//	if err != nil {
//	    // handle error
//	}
//
// A dialect is required. Use the dialect registry to get one by name:
//
//	d, err := dialect.Lookup("mysql")
//	stmts, err := parser.ParseStatements(sql, d)
//
// # Statement dispatch
//
// The input is tokenized up front with the dialect's lexical rules. At the
// start of every statement a dialect that implements
// dialect.StatementParser gets first refusal; if it declines, the generic
// grammar parses the statement:
//
//	statement → select | insert | update | delete
//	select    → SELECT [DISTINCT|ALL] select_list [FROM from_clause]
//	            [WHERE expr] [GROUP BY expr_list] [HAVING expr]
//	            [ORDER BY order_list] [LIMIT limit] [OFFSET expr]
//	insert    → INSERT INTO name ["(" ident_list ")"] VALUES row ("," row)*
//	update    → UPDATE table_factor SET assignment ("," assignment)* [WHERE expr]
//	delete    → DELETE FROM table_factor [WHERE expr]
//
// Statements are separated by semicolons; after each statement the next
// token must be a semicolon or the end of input.
//
// See each file for detailed grammar rules for that section.
package parser

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/sqldialect/pkg/core"
	"github.com/leapstack-labs/sqldialect/pkg/dialect"
	"github.com/leapstack-labs/sqldialect/pkg/spi"
	"github.com/leapstack-labs/sqldialect/pkg/token"
)

// Parser parses SQL into an AST. It implements spi.ParserOps, which is the
// view dialect statement parsers get of it.
type Parser struct {
	tokens   []token.Token // always ends with EOF
	index    int           // cursor into tokens
	comments []*token.Comment
	dialect  dialect.Dialect // required
	logger   *slog.Logger
}

var _ spi.ParserOps = (*Parser)(nil)

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger used for dispatch tracing at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewParser tokenizes sql with d's lexical rules and returns a parser
// positioned at the first token.
func NewParser(sql string, d dialect.Dialect, opts ...Option) (*Parser, error) {
	if d == nil {
		return nil, dialect.ErrDialectRequired
	}
	l := NewLexer(sql, d)
	var tokens []token.Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			break
		}
	}

	p := &Parser{
		tokens:   tokens,
		comments: l.Comments,
		dialect:  d,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Parse parses sql, which must hold exactly one statement (a trailing
// semicolon is allowed).
func Parse(sql string, d dialect.Dialect, opts ...Option) (core.Stmt, error) {
	stmts, err := ParseStatements(sql, d, opts...)
	if err != nil {
		return nil, err
	}
	switch len(stmts) {
	case 0:
		return nil, &ParseError{Pos: token.Position{Line: 1, Column: 1}, Message: ErrEmptyInput}
	case 1:
		return stmts[0], nil
	default:
		return nil, &ParseError{Pos: stmts[1].Pos(), Message: fmt.Sprintf(ErrMultipleStatements, len(stmts))}
	}
}

// ParseStatements parses a semicolon-separated list of statements.
func ParseStatements(sql string, d dialect.Dialect, opts ...Option) ([]core.Stmt, error) {
	p, err := NewParser(sql, d, opts...)
	if err != nil {
		return nil, err
	}
	return p.ParseStatements()
}

// Dialect returns the parser's dialect.
func (p *Parser) Dialect() dialect.Dialect {
	return p.dialect
}

// Comments returns the comments skipped while tokenizing.
func (p *Parser) Comments() []*token.Comment {
	return p.comments
}

// ParseStatements parses statements until end of input.
func (p *Parser) ParseStatements() ([]core.Stmt, error) {
	var stmts []core.Stmt
	expectDelimiter := false
	for {
		for p.ParseKeyword(token.SEMICOLON) {
			expectDelimiter = false
		}
		if p.PeekToken().Type == token.EOF {
			return stmts, nil
		}
		if expectDelimiter {
			return nil, p.unexpected("end of statement")
		}
		stmt, err := p.ParseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		expectDelimiter = true
	}
}

// ParseStatement parses one statement. The dialect's statement parser, if
// any, is consulted first.
func (p *Parser) ParseStatement() (core.Stmt, error) {
	sp, ok := p.dialect.(dialect.StatementParser)
	if !ok {
		return p.parseStatement()
	}

	start := p.index
	first := p.PeekToken()
	stmt, handled, err := sp.ParseStatement(p)
	if handled {
		if err != nil {
			return nil, err
		}
		if stmt == nil {
			return nil, fmt.Errorf("%w: %s claimed %s but returned no statement",
				ErrDialectContract, p.dialect.Name(), first)
		}
		p.logger.Debug("statement claimed by dialect",
			slog.String("dialect", p.dialect.Name()),
			slog.String("keyword", first.Type.String()),
			slog.String("pos", first.Pos.String()))
		return stmt, nil
	}

	if p.index != start {
		return nil, fmt.Errorf("%w: %s declined %s after moving the cursor by %d token(s)",
			ErrDialectContract, p.dialect.Name(), first, p.index-start)
	}
	if err != nil {
		return nil, err
	}
	p.logger.Debug("dialect declined statement",
		slog.String("dialect", p.dialect.Name()),
		slog.String("keyword", first.Type.String()))
	return p.parseStatement()
}

// ---------- Cursor (spi.ParserOps) ----------

func (p *Parser) tokenAt(i int) token.Token {
	if i < len(p.tokens) {
		return p.tokens[i]
	}
	return p.tokens[len(p.tokens)-1]
}

// NextToken returns the token at the cursor and advances.
func (p *Parser) NextToken() token.Token {
	tok := p.tokenAt(p.index)
	p.index++
	return tok
}

// PrevToken moves the cursor back one token.
func (p *Parser) PrevToken() {
	if p.index > 0 {
		p.index--
	}
}

// PeekToken returns the token at the cursor.
func (p *Parser) PeekToken() token.Token {
	return p.tokenAt(p.index)
}

// peekNth returns the token n positions past the cursor.
func (p *Parser) peekNth(n int) token.Token {
	return p.tokenAt(p.index + n)
}

// check returns true if the next token is of the given type.
func (p *Parser) check(t token.TokenType) bool {
	return p.PeekToken().Type == t
}

// ParseKeyword consumes the next token if it has type t.
func (p *Parser) ParseKeyword(t token.TokenType) bool {
	if p.check(t) {
		p.index++
		return true
	}
	return false
}

// ParseKeywords consumes ts if they all match in order, else nothing.
func (p *Parser) ParseKeywords(ts ...token.TokenType) bool {
	start := p.index
	for _, t := range ts {
		if !p.ParseKeyword(t) {
			p.index = start
			return false
		}
	}
	return true
}

// ExpectKeyword consumes keyword t or returns a parse error.
func (p *Parser) ExpectKeyword(t token.TokenType) error {
	if p.ParseKeyword(t) {
		return nil
	}
	return p.unexpected(t.String())
}

// Expect consumes punctuation t or returns a parse error.
func (p *Parser) Expect(t token.TokenType) error {
	if p.ParseKeyword(t) {
		return nil
	}
	return p.unexpected(fmt.Sprintf("%q", t.String()))
}

// ---------- Errors ----------

// Errorf returns a ParseError positioned at the next token.
func (p *Parser) Errorf(format string, args ...any) error {
	err := fmt.Errorf(format, args...)
	return &ParseError{
		Pos:     p.PeekToken().Pos,
		Message: err.Error(),
		Err:     errors.Unwrap(err),
	}
}

func (p *Parser) unexpected(expected string) error {
	return p.Errorf(ErrUnexpectedToken, p.PeekToken(), expected)
}

// ---------- Spans ----------

// spanFrom covers start up to the end of the last consumed token.
func (p *Parser) spanFrom(start token.Position) token.Span {
	end := start
	if p.index > 0 {
		end = p.tokenAt(p.index - 1).End
	}
	return token.Span{Start: start, End: end}
}
