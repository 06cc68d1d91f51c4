// Package postgres provides the PostgreSQL SQL dialect definition.
// This package is pure Go with no database driver dependencies.
package postgres

import (
	"strings"
	"unicode"

	"github.com/leapstack-labs/sqldialect/pkg/dialect"
)

func init() {
	dialect.Register(Postgres)
}

// Postgres is the shared PostgreSQL dialect value.
var Postgres = Dialect{}

// Dialect implements dialect.Dialect for PostgreSQL.
type Dialect struct{}

var _ dialect.ReservedWordChecker = Dialect{}

// Name implements dialect.Dialect.
func (Dialect) Name() string { return "postgres" }

// IsDelimitedIdentifierStart implements dialect.Dialect.
func (Dialect) IsDelimitedIdentifierStart(ch rune) bool { return ch == '"' }

// IsIdentifierStart accepts any Unicode letter and '_'.
func (Dialect) IsIdentifierStart(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_'
}

// IsIdentifierPart adds digits and '$'. '$' cannot start an identifier
// because $1 is a positional parameter.
func (d Dialect) IsIdentifierPart(ch rune) bool {
	return d.IsIdentifierStart(ch) || dialect.IsASCIIDigit(ch) || ch == '$'
}

// reservedWords contains common PostgreSQL reserved words.
// This is a manually maintained list of frequently problematic identifiers.
// For a complete list, use pg_get_keywords() at runtime.
var reservedWords = dialect.NewReservedWords(
	"user", "table", "index",
	"any", "array", "asymmetric", "authorization", "binary", "both", "cast",
	"check", "collate", "column", "constraint", "create", "current_catalog",
	"current_date", "current_role", "current_schema", "current_time",
	"current_timestamp", "current_user", "default", "deferrable", "do",
	"except", "fetch", "for", "foreign", "freeze", "grant", "ilike",
	"initially", "intersect", "isnull", "lateral", "leading", "localtime",
	"localtimestamp", "natural", "notnull", "only", "overlaps", "placing",
	"primary", "references", "returning", "session_user", "similar", "some",
	"symmetric", "to", "trailing", "union", "unique", "variadic", "verbose",
	"window", "with",
)

// IsReservedWord implements dialect.ReservedWordChecker.
func (Dialect) IsReservedWord(word string) bool {
	_, ok := reservedWords[strings.ToLower(word)]
	return ok
}
