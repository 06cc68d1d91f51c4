// Package token defines the lexical vocabulary shared by the lexer, the
// generic grammar and dialect statement parsers.
//
// Keywords are a closed set assigned by the lexer through a table that is
// built once at package initialisation and never written afterwards, so
// lookups are safe from any goroutine. Dialect statement parsers match on
// TokenType values, never on literal text.
package token

import (
	"fmt"
	"strings"
)

// TokenType represents the type of a lexical token.
//
//nolint:revive // token.TokenType reads clearly at call sites
type TokenType int32

const (
	// Special tokens
	EOF TokenType = iota
	ILLEGAL

	// Literals
	IDENT       // identifier, bare or delimited
	NUMBER      // 123, 45.67, 1e10
	STRING      // 'hello'
	PLACEHOLDER // ?

	// Operators and punctuation
	PLUS      // +
	MINUS     // -
	STAR      // *
	SLASH     // /
	PERCENT   // %
	DPIPE     // ||
	EQ        // =
	NE        // != or <>
	LT        // <
	GT        // >
	LE        // <=
	GE        // >=
	DOT       // .
	COMMA     // ,
	SEMICOLON // ;
	LPAREN    // (
	RPAREN    // )
	LBRACKET  // [
	RBRACKET  // ]

	keywordBegin

	// Keywords (alphabetical)
	ALL
	AND
	AS
	ASC
	BETWEEN
	BY
	CASE
	CROSS
	DELETE
	DESC
	DISTINCT
	ELSE
	END
	EXISTS
	FALSE
	FIRST
	FROM
	FULL
	GROUP
	HAVING
	IN
	INNER
	INSERT
	INTO
	IS
	JOIN
	LAST
	LEFT
	LIKE
	LIMIT
	NOT
	NULL
	NULLS
	OFFSET
	ON
	OR
	ORDER
	OUTER
	RIGHT
	SELECT
	SET
	THEN
	TRUE
	UPDATE
	USING
	VALUES
	WHEN
	WHERE

	keywordEnd
)

// String returns a human-readable representation of the token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

// MarshalText renders the type by name in JSON and YAML output.
func (t TokenType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// IsKeyword reports whether t is a reserved keyword.
func (t TokenType) IsKeyword() bool {
	return t > keywordBegin && t < keywordEnd
}

var tokenNames = map[TokenType]string{
	EOF:     "EOF",
	ILLEGAL: "ILLEGAL",

	IDENT:       "IDENT",
	NUMBER:      "NUMBER",
	STRING:      "STRING",
	PLACEHOLDER: "?",

	PLUS:      "+",
	MINUS:     "-",
	STAR:      "*",
	SLASH:     "/",
	PERCENT:   "%",
	DPIPE:     "||",
	EQ:        "=",
	NE:        "!=",
	LT:        "<",
	GT:        ">",
	LE:        "<=",
	GE:        ">=",
	DOT:       ".",
	COMMA:     ",",
	SEMICOLON: ";",
	LPAREN:    "(",
	RPAREN:    ")",
	LBRACKET:  "[",
	RBRACKET:  "]",
}

// keywords maps upper-case keyword text to its token type. It is filled
// in init and read-only afterwards.
var keywords = map[string]TokenType{}

func init() {
	for _, kw := range []struct {
		t    TokenType
		name string
	}{
		{ALL, "ALL"}, {AND, "AND"}, {AS, "AS"}, {ASC, "ASC"},
		{BETWEEN, "BETWEEN"}, {BY, "BY"}, {CASE, "CASE"}, {CROSS, "CROSS"},
		{DELETE, "DELETE"}, {DESC, "DESC"}, {DISTINCT, "DISTINCT"},
		{ELSE, "ELSE"}, {END, "END"}, {EXISTS, "EXISTS"}, {FALSE, "FALSE"},
		{FIRST, "FIRST"}, {FROM, "FROM"}, {FULL, "FULL"}, {GROUP, "GROUP"},
		{HAVING, "HAVING"}, {IN, "IN"}, {INNER, "INNER"}, {INSERT, "INSERT"},
		{INTO, "INTO"}, {IS, "IS"}, {JOIN, "JOIN"}, {LAST, "LAST"},
		{LEFT, "LEFT"}, {LIKE, "LIKE"}, {LIMIT, "LIMIT"}, {NOT, "NOT"},
		{NULL, "NULL"}, {NULLS, "NULLS"}, {OFFSET, "OFFSET"}, {ON, "ON"},
		{OR, "OR"}, {ORDER, "ORDER"}, {OUTER, "OUTER"}, {RIGHT, "RIGHT"},
		{SELECT, "SELECT"}, {SET, "SET"}, {THEN, "THEN"}, {TRUE, "TRUE"},
		{UPDATE, "UPDATE"}, {USING, "USING"}, {VALUES, "VALUES"},
		{WHEN, "WHEN"}, {WHERE, "WHERE"},
	} {
		tokenNames[kw.t] = kw.name
		keywords[kw.name] = kw.t
	}
}

// LookupKeyword returns the keyword type for word, matched
// case-insensitively. The second result is false for non-keywords.
func LookupKeyword(word string) (TokenType, bool) {
	t, ok := keywords[strings.ToUpper(word)]
	return t, ok
}

// Keywords returns every keyword spelling in upper case. Callers get a
// fresh slice.
func Keywords() []string {
	out := make([]string, 0, len(keywords))
	for t := keywordBegin + 1; t < keywordEnd; t++ {
		out = append(out, tokenNames[t])
	}
	return out
}

// Token is a single lexical token.
type Token struct {
	Type    TokenType
	Literal string // identifier value with delimiters removed and escapes resolved
	Quote   rune   // opening delimiter of a delimited identifier, 0 otherwise
	Pos     Position
	End     Position
}

// Span returns the source range the token covers.
func (t Token) Span() Span {
	return Span{Start: t.Pos, End: t.End}
}

// IsDelimited reports whether t is a delimited identifier.
func (t Token) IsDelimited() bool {
	return t.Type == IDENT && t.Quote != 0
}

func (t Token) String() string {
	switch t.Type {
	case EOF:
		return "EOF"
	case IDENT:
		if t.Quote != 0 {
			return fmt.Sprintf("identifier %c%s%c", t.Quote, t.Literal, closing(t.Quote))
		}
		return fmt.Sprintf("identifier %s", t.Literal)
	case STRING:
		return fmt.Sprintf("string '%s'", t.Literal)
	case NUMBER:
		return fmt.Sprintf("number %s", t.Literal)
	}
	if t.Type.IsKeyword() {
		return "keyword " + t.Type.String()
	}
	return fmt.Sprintf("%q", t.Type.String())
}

func closing(open rune) rune {
	if open == '[' {
		return ']'
	}
	return open
}
