// Package sqlite provides the SQLite dialect. SQLite accepts every common
// identifier delimiter for compatibility with other engines.
package sqlite

import "github.com/leapstack-labs/sqldialect/pkg/dialect"

func init() {
	dialect.Register(SQLite)
}

// SQLite is the shared SQLite dialect value.
var SQLite = Dialect{}

// Dialect implements dialect.Dialect for SQLite.
type Dialect struct{}

// Name implements dialect.Dialect.
func (Dialect) Name() string { return "sqlite" }

// IsDelimitedIdentifierStart accepts '`', '"' and '['.
func (Dialect) IsDelimitedIdentifierStart(ch rune) bool {
	return ch == '`' || ch == '"' || ch == '['
}

// IsIdentifierStart accepts ASCII letters, '_', '$' and U+007F..U+FFFF.
func (Dialect) IsIdentifierStart(ch rune) bool {
	return dialect.IsASCIILetter(ch) || ch == '_' || ch == '$' ||
		(ch >= '\u007f' && ch <= '\uffff')
}

// IsIdentifierPart implements dialect.Dialect.
func (d Dialect) IsIdentifierPart(ch rune) bool {
	return d.IsIdentifierStart(ch) || dialect.IsASCIIDigit(ch)
}
