package format

import (
	"strings"

	"github.com/leapstack-labs/sqldialect/pkg/core"
	"github.com/leapstack-labs/sqldialect/pkg/dialect"
	"github.com/leapstack-labs/sqldialect/pkg/token"
)

type options struct {
	dialect dialect.Dialect
	pretty  bool
}

// Option configures formatting.
type Option func(*options)

// WithDialect re-quotes identifiers for d: delimited identifiers take d's
// preferred delimiter, and bare identifiers that d would not lex as a
// single identifier, or that d reserves, get quoted.
func WithDialect(d dialect.Dialect) Option {
	return func(o *options) { o.dialect = d }
}

// Pretty lays clauses out one per line with indented bodies.
func Pretty() Option {
	return func(o *options) { o.pretty = true }
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// SQL formats a single node: a statement, expression, table reference,
// ORDER BY item or LIMIT. Unknown nodes format as the empty string.
func SQL(node core.Node, opts ...Option) string {
	p := newPrinter(buildOptions(opts))
	p.formatNode(node)
	return p.String()
}

// Statements formats a statement list. Comments, as collected by the
// lexer, are placed before the statement they precede; comments inside a
// statement move to the end of its line.
func Statements(stmts []core.Stmt, comments []*token.Comment, opts ...Option) string {
	p := newPrinter(buildOptions(opts))
	for i, d := range decorate(stmts, comments) {
		if i > 0 && p.pretty {
			p.writeln()
		}
		p.formatComments(d.leading)
		if d.stmt != nil {
			p.formatNode(d.stmt)
			p.write(";")
		}
		p.formatTrailingComments(d.trailing)
		p.writeln()
	}
	return strings.TrimRight(p.output.String(), " \n") + "\n"
}

func (p *Printer) formatNode(node core.Node) {
	switch n := node.(type) {
	case core.Stmt:
		p.formatStmt(n)
	case core.Expr:
		p.formatExpr(n)
	case core.TableRef:
		p.formatTableRef(n)
	case *core.OrderByExpr:
		p.formatOrderByExpr(n)
	case *core.Limit:
		p.formatLimit(n)
	case *core.FromClause:
		p.formatFromClause(n)
	}
}
