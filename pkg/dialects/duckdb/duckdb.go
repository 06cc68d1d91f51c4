// Package duckdb provides the DuckDB SQL dialect definition. Its lexical
// rules follow PostgreSQL, from which DuckDB inherits its parser.
package duckdb

import (
	"unicode"

	"github.com/leapstack-labs/sqldialect/pkg/dialect"
)

func init() {
	dialect.Register(DuckDB)
}

// DuckDB is the shared DuckDB dialect value.
var DuckDB = Dialect{}

// Dialect implements dialect.Dialect for DuckDB.
type Dialect struct{}

// Name implements dialect.Dialect.
func (Dialect) Name() string { return "duckdb" }

// IsDelimitedIdentifierStart implements dialect.Dialect.
func (Dialect) IsDelimitedIdentifierStart(ch rune) bool { return ch == '"' }

// IsIdentifierStart accepts any Unicode letter and '_'.
func (Dialect) IsIdentifierStart(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_'
}

// IsIdentifierPart implements dialect.Dialect.
func (d Dialect) IsIdentifierPart(ch rune) bool {
	return d.IsIdentifierStart(ch) || dialect.IsASCIIDigit(ch) || ch == '$'
}
