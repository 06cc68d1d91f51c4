package parser

import (
	"strings"

	"github.com/leapstack-labs/sqldialect/pkg/core"
	"github.com/leapstack-labs/sqldialect/pkg/token"
)

// Primary expressions: literals, column references, function calls, CASE,
// EXISTS, subqueries and parenthesised expressions.
//
// Grammar:
//
//	primary   → NUMBER | STRING | TRUE | FALSE | NULL | "?" | "*"
//	          | column_ref | func_call | case_expr | exists
//	          | "(" select ")" | "(" expr ")"
//	column_ref→ identifier ("." identifier)* ["." "*"]
//	func_call → object_name "(" [DISTINCT] ("*" | expr_list)? ")"
//	case_expr → CASE [expr] (WHEN expr THEN expr)+ [ELSE expr] END
//	exists    → EXISTS "(" select ")"

// parsePrimary parses a primary expression.
func (p *Parser) parsePrimary() (core.Expr, error) {
	tok := p.PeekToken()
	info := core.NodeInfo{Span: tok.Span()}

	switch tok.Type {
	case token.NUMBER:
		p.NextToken()
		return &core.Literal{NodeInfo: info, Type: core.LiteralNumber, Value: tok.Literal}, nil
	case token.STRING:
		p.NextToken()
		return &core.Literal{NodeInfo: info, Type: core.LiteralString, Value: tok.Literal}, nil
	case token.TRUE, token.FALSE:
		p.NextToken()
		return &core.Literal{NodeInfo: info, Type: core.LiteralBool, Value: strings.ToUpper(tok.Literal)}, nil
	case token.NULL:
		p.NextToken()
		return &core.Literal{NodeInfo: info, Type: core.LiteralNull}, nil
	case token.PLACEHOLDER:
		p.NextToken()
		return &core.Literal{NodeInfo: info, Type: core.LiteralPlaceholder, Value: tok.Literal}, nil
	case token.STAR:
		p.NextToken()
		return &core.StarExpr{NodeInfo: info}, nil
	case token.CASE:
		return p.parseCase()
	case token.EXISTS:
		return p.parseExists(tok.Pos, false)
	case token.LPAREN:
		return p.parseParenOrSubquery()
	case token.IDENT:
		return p.parseNameExpr()
	}
	return nil, p.unexpected("an expression")
}

// parseNameExpr parses a column reference, qualified star or function call.
func (p *Parser) parseNameExpr() (core.Expr, error) {
	start := p.PeekToken().Pos
	var name core.ObjectName
	for {
		ident, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		name = append(name, ident)
		if !p.check(token.DOT) {
			break
		}
		if p.peekNth(1).Type == token.STAR {
			p.NextToken() // .
			p.NextToken() // *
			return &core.StarExpr{NodeInfo: core.NodeInfo{Span: p.spanFrom(start)}, Table: name}, nil
		}
		p.NextToken() // .
	}

	if p.check(token.LPAREN) {
		return p.parseFuncCall(start, name)
	}
	return &core.ColumnRef{NodeInfo: core.NodeInfo{Span: p.spanFrom(start)}, Name: name}, nil
}

func (p *Parser) parseFuncCall(start token.Position, name core.ObjectName) (core.Expr, error) {
	p.NextToken() // (
	fn := &core.FuncCall{Name: name}

	switch {
	case p.ParseKeyword(token.RPAREN):
		fn.Span = p.spanFrom(start)
		return fn, nil
	case p.check(token.STAR) && p.peekNth(1).Type == token.RPAREN:
		p.NextToken()
		fn.Star = true
	default:
		fn.Distinct = p.ParseKeyword(token.DISTINCT)
		args, err := p.parseExprList()
		if err != nil {
			return nil, err
		}
		fn.Args = args
	}

	if err := p.Expect(token.RPAREN); err != nil {
		return nil, err
	}
	fn.Span = p.spanFrom(start)
	return fn, nil
}

// parseCase parses simple and searched CASE expressions.
func (p *Parser) parseCase() (core.Expr, error) {
	start := p.NextToken().Pos // CASE
	c := &core.CaseExpr{}
	var err error

	if !p.check(token.WHEN) {
		if c.Operand, err = p.ParseExpr(); err != nil {
			return nil, err
		}
	}

	for p.ParseKeyword(token.WHEN) {
		cond, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.ExpectKeyword(token.THEN); err != nil {
			return nil, err
		}
		result, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		c.Whens = append(c.Whens, &core.WhenClause{Condition: cond, Result: result})
	}
	if len(c.Whens) == 0 {
		return nil, p.unexpected("WHEN")
	}

	if p.ParseKeyword(token.ELSE) {
		if c.Else, err = p.ParseExpr(); err != nil {
			return nil, err
		}
	}
	if err := p.ExpectKeyword(token.END); err != nil {
		return nil, err
	}

	c.Span = p.spanFrom(start)
	return c, nil
}

// parseExists parses EXISTS "(" select ")"; NOT, if any, is already consumed.
func (p *Parser) parseExists(start token.Position, not bool) (core.Expr, error) {
	if err := p.ExpectKeyword(token.EXISTS); err != nil {
		return nil, err
	}
	if err := p.Expect(token.LPAREN); err != nil {
		return nil, err
	}
	if !p.check(token.SELECT) {
		return nil, p.unexpected("SELECT")
	}
	query, err := p.parseSelect()
	if err != nil {
		return nil, err
	}
	if err := p.Expect(token.RPAREN); err != nil {
		return nil, err
	}
	return &core.ExistsExpr{NodeInfo: core.NodeInfo{Span: p.spanFrom(start)}, Not: not, Query: query}, nil
}

// parseParenOrSubquery parses "(" select ")" or "(" expr ")".
func (p *Parser) parseParenOrSubquery() (core.Expr, error) {
	start := p.NextToken().Pos // (

	if p.check(token.SELECT) {
		query, err := p.parseSelect()
		if err != nil {
			return nil, err
		}
		if err := p.Expect(token.RPAREN); err != nil {
			return nil, err
		}
		return &core.SubqueryExpr{NodeInfo: core.NodeInfo{Span: p.spanFrom(start)}, Query: query}, nil
	}

	expr, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.Expect(token.RPAREN); err != nil {
		return nil, err
	}
	return &core.ParenExpr{NodeInfo: core.NodeInfo{Span: p.spanFrom(start)}, Expr: expr}, nil
}
