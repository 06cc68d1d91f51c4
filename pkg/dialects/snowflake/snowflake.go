// Package snowflake provides the Snowflake SQL dialect definition.
package snowflake

import "github.com/leapstack-labs/sqldialect/pkg/dialect"

func init() {
	dialect.Register(Snowflake)
}

// Snowflake is the shared Snowflake dialect value.
var Snowflake = Dialect{}

// Dialect implements dialect.Dialect for Snowflake.
type Dialect struct{}

// Name implements dialect.Dialect.
func (Dialect) Name() string { return "snowflake" }

// IsDelimitedIdentifierStart implements dialect.Dialect.
func (Dialect) IsDelimitedIdentifierStart(ch rune) bool { return ch == '"' }

// IsIdentifierStart implements dialect.Dialect.
func (Dialect) IsIdentifierStart(ch rune) bool {
	return dialect.IsASCIILetter(ch) || ch == '_'
}

// IsIdentifierPart allows '$' after the first character, as in
// Snowflake's unquoted object identifiers.
func (d Dialect) IsIdentifierPart(ch rune) bool {
	return d.IsIdentifierStart(ch) || dialect.IsASCIIDigit(ch) || ch == '$'
}
