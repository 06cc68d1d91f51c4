// Package databricks provides the Databricks SQL dialect definition.
// Databricks follows Spark SQL and delimits identifiers with backticks.
package databricks

import "github.com/leapstack-labs/sqldialect/pkg/dialect"

func init() {
	dialect.Register(Databricks)
}

// Databricks is the shared Databricks dialect value.
var Databricks = Dialect{}

// Dialect implements dialect.Dialect for Databricks.
type Dialect struct{}

// Name implements dialect.Dialect.
func (Dialect) Name() string { return "databricks" }

// IsDelimitedIdentifierStart implements dialect.Dialect.
func (Dialect) IsDelimitedIdentifierStart(ch rune) bool { return ch == '`' }

// IsIdentifierStart implements dialect.Dialect.
func (Dialect) IsIdentifierStart(ch rune) bool {
	return dialect.IsASCIILetter(ch) || ch == '_'
}

// IsIdentifierPart implements dialect.Dialect.
func (d Dialect) IsIdentifierPart(ch rune) bool {
	return d.IsIdentifierStart(ch) || dialect.IsASCIIDigit(ch)
}
