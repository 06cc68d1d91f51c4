// Package spi provides the Service Provider Interface through which dialect
// statement parsers drive the parser without importing it.
//
// A dialect sees the parser only as ParserOps for the duration of one
// statement. The token cursor supports peek, advance and one-step push-back
// (NextToken followed by PrevToken leaves the cursor exactly where it was),
// which is what makes declining a statement lossless.
package spi

import (
	"github.com/leapstack-labs/sqldialect/pkg/core"
	"github.com/leapstack-labs/sqldialect/pkg/token"
)

// ParserOps exposes parser operations to dialect statement parsers.
type ParserOps interface {
	// Cursor

	// NextToken returns the token at the cursor and advances past it. At
	// end of input it keeps returning EOF, still advancing, so a following
	// PrevToken stays symmetric.
	NextToken() token.Token
	// PrevToken moves the cursor back one token.
	PrevToken()
	// PeekToken returns the token at the cursor without advancing.
	PeekToken() token.Token

	// Keywords and punctuation

	// ParseKeyword consumes the next token if it has type t.
	ParseKeyword(t token.TokenType) bool
	// ParseKeywords consumes the whole sequence if every token matches in
	// order; otherwise it consumes nothing.
	ParseKeywords(ts ...token.TokenType) bool
	// ExpectKeyword consumes keyword t or fails with a positioned error.
	ExpectKeyword(t token.TokenType) error
	// Expect consumes punctuation t or fails with a positioned error.
	Expect(t token.TokenType) error

	// Sub-parsers

	ParseExpr() (core.Expr, error)
	ParseTableFactor() (core.TableRef, error)
	ParseOrderByExpr() (*core.OrderByExpr, error)
	// ParseLimit parses the argument of LIMIT, after the keyword.
	ParseLimit() (*core.Limit, error)
	ParseObjectName() (core.ObjectName, error)

	// Errorf returns a parse error positioned at the next token. %w is
	// honoured, so callers can wrap sentinels for errors.Is.
	Errorf(format string, args ...any) error
}

// CommaSeparated parses one or more items separated by commas.
func CommaSeparated[T any](p ParserOps, parse func(ParserOps) (T, error)) ([]T, error) {
	var items []T
	for {
		item, err := parse(p)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if !p.ParseKeyword(token.COMMA) {
			return items, nil
		}
	}
}

// Precedence constants for operator precedence parsing.
const (
	PrecedenceNone       = 0
	PrecedenceOr         = 1
	PrecedenceAnd        = 2
	PrecedenceNot        = 3
	PrecedenceComparison = 4 // =, <>, <, >, <=, >=, LIKE, IN, BETWEEN, IS
	PrecedenceAddition   = 5 // +, -, ||
	PrecedenceMultiply   = 6 // *, /, %
	PrecedenceUnary      = 7 // -, +
)
