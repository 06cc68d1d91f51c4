// Package dialect defines the contract a SQL dialect implements to
// customise lexing and statement parsing.
//
// A dialect is a stateless capability object: one value per SQL variant,
// built once, shared read-only by every parse. The lexer asks it which
// runes may start or continue a bare identifier and which runes open a
// delimited identifier. A dialect may additionally implement
// StatementParser to claim statements before the generic grammar sees
// them. Concrete dialects live in pkg/dialects/* and register themselves
// from init.
package dialect

import (
	"strings"

	"github.com/leapstack-labs/sqldialect/pkg/core"
	"github.com/leapstack-labs/sqldialect/pkg/spi"
)

// Dialect customises the lexical rules of the tokenizer.
//
// Every predicate must be a pure, total function of its argument.
// Implementations must keep IsIdentifierStart a subset of
// IsIdentifierPart, never accept an ASCII digit as a start character and
// always accept ASCII digits as part characters. CheckIdentifierRules
// verifies this over the Basic Multilingual Plane.
type Dialect interface {
	// Name is the registry key, lower case.
	Name() string
	// IsDelimitedIdentifierStart reports whether ch opens a delimited
	// identifier such as "name", `name` or [name].
	IsDelimitedIdentifierStart(ch rune) bool
	// IsIdentifierStart reports whether ch may begin a bare identifier.
	IsIdentifierStart(ch rune) bool
	// IsIdentifierPart reports whether ch may continue a bare identifier.
	IsIdentifierPart(ch rune) bool
}

// StatementParser is implemented by dialects that intercept statement
// parsing. The driver calls ParseStatement before the generic grammar at
// the start of every statement.
//
// The implementation peeks one token with NextToken. If it does not claim
// the keyword it must call PrevToken and return (nil, false, nil), leaving
// the cursor where it found it. Once it claims a keyword it owns the
// statement: it returns (stmt, true, nil) on success or (nil, true, err),
// and never declines after consuming more than the peeked token.
type StatementParser interface {
	ParseStatement(p spi.ParserOps) (stmt core.Stmt, handled bool, err error)
}

// ClosingQuote returns the rune that closes a delimited identifier opened
// by open. Brackets pair; every other delimiter closes itself.
func ClosingQuote(open rune) rune {
	if open == '[' {
		return ']'
	}
	return open
}

// quoteCandidates is the preference order used when a dialect has to quote
// an identifier.
var quoteCandidates = []rune{'"', '`', '['}

// PreferredQuote returns the delimiter d uses when quoting identifiers, or
// 0 if d accepts none of the common delimiters.
func PreferredQuote(d Dialect) rune {
	for _, q := range quoteCandidates {
		if d.IsDelimitedIdentifierStart(q) {
			return q
		}
	}
	return 0
}

// IsBareIdentifier reports whether name lexes as a single bare identifier
// under d. Keywords are not checked.
func IsBareIdentifier(d Dialect, name string) bool {
	if name == "" {
		return false
	}
	for i, ch := range name {
		if i == 0 && !d.IsIdentifierStart(ch) {
			return false
		}
		if i > 0 && !d.IsIdentifierPart(ch) {
			return false
		}
	}
	return true
}

// QuoteIdentifier quotes name with d's preferred delimiter, doubling any
// embedded closing delimiter.
func QuoteIdentifier(d Dialect, name string) string {
	q := PreferredQuote(d)
	if q == 0 {
		return name
	}
	end := string(ClosingQuote(q))
	return string(q) + strings.ReplaceAll(name, end, end+end) + end
}

// ReservedWordChecker is implemented by dialects that reserve words
// beyond the shared keyword table. The formatter quotes such words when
// they are used as identifiers.
type ReservedWordChecker interface {
	IsReservedWord(word string) bool
}

// NewReservedWords builds a case-insensitive lookup set.
func NewReservedWords(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}
