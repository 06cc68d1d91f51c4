// Package mssql provides the Microsoft SQL Server dialect. Identifiers may
// be delimited with double quotes or brackets, and may begin with the
// '@' and '#' sigils used for variables and temporary tables.
package mssql

import "github.com/leapstack-labs/sqldialect/pkg/dialect"

func init() {
	dialect.Register(MSSQL)
}

// MSSQL is the shared SQL Server dialect value.
var MSSQL = Dialect{}

// Dialect implements dialect.Dialect for SQL Server.
type Dialect struct{}

// Name implements dialect.Dialect.
func (Dialect) Name() string { return "mssql" }

// IsDelimitedIdentifierStart accepts '"' and '['; brackets close with ']'.
func (Dialect) IsDelimitedIdentifierStart(ch rune) bool {
	return ch == '"' || ch == '['
}

// IsIdentifierStart implements dialect.Dialect.
func (Dialect) IsIdentifierStart(ch rune) bool {
	return dialect.IsASCIILetter(ch) || ch == '_' || ch == '#' || ch == '@'
}

// IsIdentifierPart implements dialect.Dialect.
func (d Dialect) IsIdentifierPart(ch rune) bool {
	return d.IsIdentifierStart(ch) || dialect.IsASCIIDigit(ch) || ch == '$'
}
