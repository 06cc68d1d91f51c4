// Package generic provides a permissive dialect that accepts the union of
// common identifier conventions. It is the CLI default.
package generic

import "github.com/leapstack-labs/sqldialect/pkg/dialect"

func init() {
	dialect.Register(Generic)
}

// Generic is the shared generic dialect value.
var Generic = Dialect{}

// Dialect implements dialect.Dialect.
type Dialect struct{}

func (Dialect) Name() string { return "generic" }

func (Dialect) IsDelimitedIdentifierStart(ch rune) bool { return ch == '"' }

func (Dialect) IsIdentifierStart(ch rune) bool {
	return dialect.IsASCIILetter(ch) || ch == '_' || ch == '#' || ch == '@'
}

func (d Dialect) IsIdentifierPart(ch rune) bool {
	return d.IsIdentifierStart(ch) || dialect.IsASCIIDigit(ch) || ch == '$'
}
