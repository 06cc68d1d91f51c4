// Package ansi provides the ANSI SQL dialect: double-quoted identifiers and
// the strictest bare identifier rules. Other dialects relax them.
package ansi

import "github.com/leapstack-labs/sqldialect/pkg/dialect"

func init() {
	dialect.Register(ANSI)
}

// ANSI is the shared ANSI dialect value.
var ANSI = Dialect{}

// Dialect implements dialect.Dialect for ANSI SQL.
type Dialect struct{}

// Name implements dialect.Dialect.
func (Dialect) Name() string { return "ansi" }

// IsDelimitedIdentifierStart implements dialect.Dialect.
func (Dialect) IsDelimitedIdentifierStart(ch rune) bool { return ch == '"' }

// IsIdentifierStart implements dialect.Dialect.
func (Dialect) IsIdentifierStart(ch rune) bool { return dialect.IsASCIILetter(ch) }

// IsIdentifierPart implements dialect.Dialect.
func (Dialect) IsIdentifierPart(ch rune) bool {
	return dialect.IsASCIILetter(ch) || dialect.IsASCIIDigit(ch) || ch == '_'
}
