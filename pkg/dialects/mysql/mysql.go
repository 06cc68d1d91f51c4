// Package mysql provides the MySQL SQL dialect: backtick-delimited
// identifiers, the MySQL identifier character set, and a statement parser
// for MySQL's DELETE syntax.
package mysql

import (
	"strings"

	"github.com/leapstack-labs/sqldialect/pkg/dialect"
)

func init() {
	dialect.Register(MySQL)
}

// MySQL is the shared MySQL dialect value.
var MySQL = Dialect{}

// Dialect implements dialect.Dialect and dialect.StatementParser for MySQL.
type Dialect struct{}

var (
	_ dialect.Dialect             = Dialect{}
	_ dialect.StatementParser     = Dialect{}
	_ dialect.ReservedWordChecker = Dialect{}
)

// Name implements dialect.Dialect.
func (Dialect) Name() string { return "mysql" }

// IsDelimitedIdentifierStart reports whether ch is a backtick.
func (Dialect) IsDelimitedIdentifierStart(ch rune) bool {
	return ch == '`'
}

// IsIdentifierStart accepts ASCII letters, '_', '$', '@' and everything
// from U+0080 to U+FFFF. MySQL allows identifiers to begin with a digit,
// but an unquoted identifier cannot be told apart from a number by looking
// at its first character, so digits are left to the number lexer.
func (Dialect) IsIdentifierStart(ch rune) bool {
	return dialect.IsASCIILetter(ch) ||
		ch == '_' || ch == '$' || ch == '@' ||
		(ch >= '\u0080' && ch <= '\uffff')
}

// IsIdentifierPart is IsIdentifierStart plus ASCII digits.
func (d Dialect) IsIdentifierPart(ch rune) bool {
	return d.IsIdentifierStart(ch) || dialect.IsASCIIDigit(ch)
}

var reservedWords = dialect.NewReservedWords(
	"accessible", "add", "alter", "analyze", "before", "bigint", "binary",
	"blob", "both", "call", "cascade", "change", "char", "check", "collate",
	"column", "condition", "constraint", "continue", "convert", "create",
	"current_date", "current_time", "current_timestamp", "current_user",
	"cursor", "database", "databases", "declare", "default", "delayed",
	"describe", "div", "double", "drop", "dual", "each", "escaped", "except",
	"exit", "explain", "fetch", "float", "for", "force", "foreign", "fulltext",
	"grant", "high_priority", "ignore", "index", "infile", "int", "integer",
	"interval", "key", "keys", "kill", "leading", "leave", "lines", "load",
	"lock", "long", "loop", "low_priority", "match", "mod", "natural",
	"option", "optionally", "out", "outfile", "partition", "primary",
	"procedure", "purge", "range", "read", "references", "regexp", "rename",
	"repeat", "replace", "require", "restrict", "return", "revoke", "rlike",
	"schema", "schemas", "separator", "show", "spatial", "sql", "table",
	"terminated", "to", "trailing", "trigger", "undo", "union", "unique",
	"unlock", "unsigned", "usage", "use", "varchar", "while", "with",
	"write", "xor", "zerofill",
)

// IsReservedWord implements dialect.ReservedWordChecker.
func (Dialect) IsReservedWord(word string) bool {
	_, ok := reservedWords[strings.ToLower(word)]
	return ok
}
