package parser

import (
	"github.com/leapstack-labs/sqldialect/pkg/core"
	"github.com/leapstack-labs/sqldialect/pkg/spi"
	"github.com/leapstack-labs/sqldialect/pkg/token"
)

// Expression precedence parsing using a Pratt parser.
//
// Precedence levels (from spi package):
//
//	PrecedenceNone       = 0
//	PrecedenceOr         = 1
//	PrecedenceAnd        = 2
//	PrecedenceNot        = 3
//	PrecedenceComparison = 4  (=, !=, <, >, <=, >=, IS, IN, BETWEEN, LIKE)
//	PrecedenceAddition   = 5  (+, -, ||)
//	PrecedenceMultiply   = 6  (*, /, %)
//	PrecedenceUnary      = 7  (-, +)
//
// Binary operators are left-associative.

// ParseExpr parses a full expression.
func (p *Parser) ParseExpr() (core.Expr, error) {
	return p.parseExprPrec(spi.PrecedenceNone + 1)
}

// parseExprPrec parses an expression whose infix operators all bind at
// least as tightly as minPrecedence.
func (p *Parser) parseExprPrec(minPrecedence int) (core.Expr, error) {
	left, err := p.parsePrefixExpr()
	if err != nil {
		return nil, err
	}

	for {
		prec := p.infixPrecedence()
		if prec < minPrecedence {
			return left, nil
		}
		if left, err = p.parseInfixExpr(left, prec); err != nil {
			return nil, err
		}
	}
}

// parsePrefixExpr parses unary operators and primary expressions.
func (p *Parser) parsePrefixExpr() (core.Expr, error) {
	tok := p.PeekToken()
	switch tok.Type {
	case token.NOT:
		if p.peekNth(1).Type == token.EXISTS {
			p.NextToken()
			return p.parseExists(tok.Pos, true)
		}
		p.NextToken()
		return p.parseUnary(tok, spi.PrecedenceNot)
	case token.MINUS, token.PLUS:
		p.NextToken()
		return p.parseUnary(tok, spi.PrecedenceUnary)
	}
	return p.parsePrimary()
}

func (p *Parser) parseUnary(op token.Token, prec int) (core.Expr, error) {
	expr, err := p.parseExprPrec(prec)
	if err != nil {
		return nil, err
	}
	return &core.UnaryExpr{
		NodeInfo: core.NodeInfo{Span: p.spanFrom(op.Pos)},
		Op:       op.Type,
		Expr:     expr,
	}, nil
}

// infixPrecedence returns the precedence of the next token as an infix
// operator, or PrecedenceNone.
func (p *Parser) infixPrecedence() int {
	switch p.PeekToken().Type {
	case token.OR:
		return spi.PrecedenceOr
	case token.AND:
		return spi.PrecedenceAnd
	case token.EQ, token.NE, token.LT, token.GT, token.LE, token.GE,
		token.IS, token.IN, token.BETWEEN, token.LIKE:
		return spi.PrecedenceComparison
	case token.NOT:
		// NOT IN, NOT BETWEEN, NOT LIKE
		switch p.peekNth(1).Type {
		case token.IN, token.BETWEEN, token.LIKE:
			return spi.PrecedenceComparison
		}
	case token.PLUS, token.MINUS, token.DPIPE:
		return spi.PrecedenceAddition
	case token.STAR, token.SLASH, token.PERCENT:
		return spi.PrecedenceMultiply
	}
	return spi.PrecedenceNone
}

// parseInfixExpr parses the operator after left and its right side.
func (p *Parser) parseInfixExpr(left core.Expr, prec int) (core.Expr, error) {
	start := left.Pos()
	op := p.NextToken()

	switch op.Type {
	case token.IS:
		not := p.ParseKeyword(token.NOT)
		if err := p.ExpectKeyword(token.NULL); err != nil {
			return nil, err
		}
		return &core.IsNullExpr{NodeInfo: core.NodeInfo{Span: p.spanFrom(start)}, Expr: left, Not: not}, nil

	case token.NOT:
		op = p.NextToken() // IN, BETWEEN or LIKE, guaranteed by infixPrecedence
		return p.parseNegatable(left, op.Type, true)

	case token.IN, token.BETWEEN, token.LIKE:
		return p.parseNegatable(left, op.Type, false)
	}

	right, err := p.parseExprPrec(prec + 1)
	if err != nil {
		return nil, err
	}
	return &core.BinaryExpr{
		NodeInfo: core.NodeInfo{Span: p.spanFrom(start)},
		Left:     left,
		Op:       op.Type,
		Right:    right,
	}, nil
}

// parseNegatable parses the right side of [NOT] IN, [NOT] BETWEEN and
// [NOT] LIKE after the operator keyword.
func (p *Parser) parseNegatable(left core.Expr, op token.TokenType, not bool) (core.Expr, error) {
	start := left.Pos()
	switch op {
	case token.IN:
		return p.parseIn(left, not)

	case token.BETWEEN:
		low, err := p.parseExprPrec(spi.PrecedenceComparison + 1)
		if err != nil {
			return nil, err
		}
		if err := p.ExpectKeyword(token.AND); err != nil {
			return nil, err
		}
		high, err := p.parseExprPrec(spi.PrecedenceComparison + 1)
		if err != nil {
			return nil, err
		}
		return &core.BetweenExpr{
			NodeInfo: core.NodeInfo{Span: p.spanFrom(start)},
			Expr:     left,
			Not:      not,
			Low:      low,
			High:     high,
		}, nil

	default: // LIKE
		pattern, err := p.parseExprPrec(spi.PrecedenceComparison + 1)
		if err != nil {
			return nil, err
		}
		return &core.LikeExpr{
			NodeInfo: core.NodeInfo{Span: p.spanFrom(start)},
			Expr:     left,
			Not:      not,
			Pattern:  pattern,
		}, nil
	}
}

// parseIn parses "(" (select | expr_list) ")" after IN.
func (p *Parser) parseIn(left core.Expr, not bool) (core.Expr, error) {
	if err := p.Expect(token.LPAREN); err != nil {
		return nil, err
	}
	in := &core.InExpr{Expr: left, Not: not}
	var err error
	if p.check(token.SELECT) {
		in.Query, err = p.parseSelect()
	} else {
		in.Values, err = p.parseExprList()
	}
	if err != nil {
		return nil, err
	}
	if err := p.Expect(token.RPAREN); err != nil {
		return nil, err
	}
	in.Span = p.spanFrom(left.Pos())
	return in, nil
}
