package parser

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/sqldialect/pkg/token"
)

// ParseError represents a parsing error with position information. Err,
// when set, is a sentinel the error wraps, reachable with errors.Is.
type ParseError struct {
	Pos     token.Position
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

func (e *ParseError) Unwrap() error { return e.Err }

// LexError represents a lexical analysis error.
type LexError struct {
	Pos     token.Position
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lexer error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// ErrDialectContract is wrapped by errors reporting a dialect statement
// parser that broke the interception protocol.
var ErrDialectContract = errors.New("dialect statement parser broke the interception contract")

// Common error messages
const (
	ErrUnexpectedToken     = "unexpected %s, expected %s"
	ErrUnterminatedString  = "unterminated string literal"
	ErrUnterminatedIdent   = "unterminated delimited identifier, expected closing %c"
	ErrUnterminatedComment = "unterminated block comment"
	ErrUnexpectedChar      = "unexpected character %q"
	ErrInvalidUTF8         = "invalid UTF-8 encoding"
	ErrInvalidLimit        = "LIMIT requires a non-negative integer, got %s"
	ErrEmptyInput          = "no statement found"
	ErrMultipleStatements  = "expected a single statement, found %d"
	ErrEmptyDelimitedIdent = "empty delimited identifier"
)

// PositionOf extracts the source position from a LexError or ParseError
// anywhere in err's chain.
func PositionOf(err error) (token.Position, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Pos, true
	}
	var le *LexError
	if errors.As(err, &le) {
		return le.Pos, true
	}
	return token.Position{}, false
}
