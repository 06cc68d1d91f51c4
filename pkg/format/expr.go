package format

import (
	"strings"

	"github.com/leapstack-labs/sqldialect/pkg/core"
	"github.com/leapstack-labs/sqldialect/pkg/dialect"
	"github.com/leapstack-labs/sqldialect/pkg/spi"
	"github.com/leapstack-labs/sqldialect/pkg/token"
)

func (p *Printer) formatExpr(e core.Expr) {
	if e == nil {
		return
	}

	switch expr := e.(type) {
	case *core.Literal:
		p.formatLiteral(expr)
	case *core.ColumnRef:
		p.formatObjectName(expr.Name)
	case *core.BinaryExpr:
		p.formatBinaryExpr(expr)
	case *core.UnaryExpr:
		p.formatUnaryExpr(expr)
	case *core.FuncCall:
		p.formatFuncCall(expr)
	case *core.CaseExpr:
		p.formatCaseExpr(expr)
	case *core.InExpr:
		p.formatInExpr(expr)
	case *core.BetweenExpr:
		p.formatOperand(expr.Expr, spi.PrecedenceComparison)
		p.formatNot(expr.Not)
		p.kw(token.BETWEEN)
		p.space()
		p.formatOperand(expr.Low, spi.PrecedenceComparison+1)
		p.space()
		p.kw(token.AND)
		p.space()
		p.formatOperand(expr.High, spi.PrecedenceComparison+1)
	case *core.IsNullExpr:
		p.formatOperand(expr.Expr, spi.PrecedenceComparison)
		p.space()
		p.kw(token.IS)
		if expr.Not {
			p.space()
			p.kw(token.NOT)
		}
		p.space()
		p.kw(token.NULL)
	case *core.LikeExpr:
		p.formatOperand(expr.Expr, spi.PrecedenceComparison)
		p.formatNot(expr.Not)
		p.kw(token.LIKE)
		p.space()
		p.formatOperand(expr.Pattern, spi.PrecedenceComparison+1)
	case *core.ParenExpr:
		p.write("(")
		p.formatExpr(expr.Expr)
		p.write(")")
	case *core.SubqueryExpr:
		p.formatSubquery(expr.Query)
	case *core.ExistsExpr:
		if expr.Not {
			p.kw(token.NOT)
			p.space()
		}
		p.kw(token.EXISTS)
		p.space()
		p.formatSubquery(expr.Query)
	case *core.StarExpr:
		if len(expr.Table) > 0 {
			p.formatObjectName(expr.Table)
			p.write(".")
		}
		p.write("*")
	}
}

// formatNot prints " NOT " or " " ahead of a negatable operator.
func (p *Printer) formatNot(not bool) {
	p.space()
	if not {
		p.kw(token.NOT)
		p.space()
	}
}

func (p *Printer) formatExprList(exprs []core.Expr, multiline bool) {
	p.formatList(len(exprs), func(i int) { p.formatExpr(exprs[i]) }, multiline)
}

func (p *Printer) formatLiteral(lit *core.Literal) {
	switch lit.Type {
	case core.LiteralString:
		p.write("'" + strings.ReplaceAll(lit.Value, "'", "''") + "'")
	case core.LiteralNull:
		p.kw(token.NULL)
	case core.LiteralPlaceholder:
		if lit.Value == "" {
			p.write("?")
			return
		}
		p.write(lit.Value)
	default:
		p.write(lit.Value)
	}
}

// precedence returns the binding strength of e as an operand, matching the
// parser's levels. Atoms bind tightest.
func precedence(e core.Expr) int {
	switch expr := e.(type) {
	case *core.BinaryExpr:
		return binaryPrecedence(expr.Op)
	case *core.UnaryExpr:
		if expr.Op == token.NOT {
			return spi.PrecedenceNot
		}
		return spi.PrecedenceUnary
	case *core.IsNullExpr, *core.InExpr, *core.BetweenExpr, *core.LikeExpr:
		return spi.PrecedenceComparison
	case *core.ExistsExpr:
		if expr.Not {
			return spi.PrecedenceNot
		}
	}
	return spi.PrecedenceUnary + 1
}

// isPrefix reports whether e starts with a prefix operator. The parser
// gives a prefix operator in operand position everything up to its own
// level, so such operands print without parentheses.
func isPrefix(e core.Expr) bool {
	switch expr := e.(type) {
	case *core.UnaryExpr:
		return true
	case *core.ExistsExpr:
		return expr.Not
	}
	return false
}

func binaryPrecedence(op token.TokenType) int {
	switch op {
	case token.OR:
		return spi.PrecedenceOr
	case token.AND:
		return spi.PrecedenceAnd
	case token.PLUS, token.MINUS, token.DPIPE:
		return spi.PrecedenceAddition
	case token.STAR, token.SLASH, token.PERCENT:
		return spi.PrecedenceMultiply
	}
	return spi.PrecedenceComparison
}

// formatOperand prints e, parenthesised if it binds looser than minPrec.
func (p *Printer) formatOperand(e core.Expr, minPrec int) {
	if precedence(e) < minPrec && !isPrefix(e) {
		p.write("(")
		p.formatExpr(e)
		p.write(")")
		return
	}
	p.formatExpr(e)
}

func (p *Printer) formatBinaryExpr(expr *core.BinaryExpr) {
	prec := binaryPrecedence(expr.Op)
	p.formatOperand(expr.Left, prec)
	p.space()
	p.write(expr.Op.String())
	p.space()
	p.formatOperand(expr.Right, prec+1)
}

func (p *Printer) formatUnaryExpr(expr *core.UnaryExpr) {
	if expr.Op == token.NOT {
		p.kw(token.NOT)
		p.space()
		p.formatOperand(expr.Expr, spi.PrecedenceNot)
		return
	}
	p.write(expr.Op.String())
	// "- -x" must not become a "--" comment
	if u, ok := expr.Expr.(*core.UnaryExpr); ok && u.Op != token.NOT {
		p.space()
	}
	p.formatOperand(expr.Expr, spi.PrecedenceUnary)
}

func (p *Printer) formatFuncCall(fn *core.FuncCall) {
	p.formatObjectName(fn.Name)
	p.write("(")
	switch {
	case fn.Star:
		p.write("*")
	default:
		if fn.Distinct {
			p.kw(token.DISTINCT)
			p.space()
		}
		p.formatExprList(fn.Args, false)
	}
	p.write(")")
}

func (p *Printer) formatCaseExpr(c *core.CaseExpr) {
	p.kw(token.CASE)
	if c.Operand != nil {
		p.space()
		p.formatExpr(c.Operand)
	}
	for _, w := range c.Whens {
		p.space()
		p.kw(token.WHEN)
		p.space()
		p.formatExpr(w.Condition)
		p.space()
		p.kw(token.THEN)
		p.space()
		p.formatExpr(w.Result)
	}
	if c.Else != nil {
		p.space()
		p.kw(token.ELSE)
		p.space()
		p.formatExpr(c.Else)
	}
	p.space()
	p.kw(token.END)
}

func (p *Printer) formatInExpr(in *core.InExpr) {
	p.formatOperand(in.Expr, spi.PrecedenceComparison)
	p.formatNot(in.Not)
	p.kw(token.IN)
	p.space()
	if in.Query != nil {
		p.formatSubquery(in.Query)
		return
	}
	p.write("(")
	p.formatExprList(in.Values, false)
	p.write(")")
}

// ---------- Identifiers ----------

func (p *Printer) formatObjectName(name core.ObjectName) {
	for i, part := range name {
		if i > 0 {
			p.write(".")
		}
		p.formatIdent(part)
	}
}

// formatIdent prints id as written, or re-quoted for the target dialect.
func (p *Printer) formatIdent(id core.Ident) {
	if p.dialect == nil {
		p.write(id.String())
		return
	}
	if id.Quote != 0 || needsQuote(p.dialect, id.Value) {
		p.write(dialect.QuoteIdentifier(p.dialect, id.Value))
		return
	}
	p.write(id.Value)
}

// needsQuote reports whether a bare identifier would not survive lexing
// under d as the same identifier.
func needsQuote(d dialect.Dialect, name string) bool {
	if !dialect.IsBareIdentifier(d, name) {
		return true
	}
	if _, ok := token.LookupKeyword(name); ok {
		return true
	}
	if rw, ok := d.(dialect.ReservedWordChecker); ok && rw.IsReservedWord(name) {
		return true
	}
	return false
}
