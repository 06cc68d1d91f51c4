package parser

import (
	"github.com/leapstack-labs/sqldialect/pkg/core"
	"github.com/leapstack-labs/sqldialect/pkg/token"
)

// FROM clause parsing: table factors, derived tables, JOINs.
//
// Grammar:
//
//	from_clause   → table_factor (join)*
//	table_factor  → object_name [[AS] identifier]
//	              | "(" select ")" [[AS] identifier]
//	object_name   → identifier ("." identifier)*
//	join          → join_type JOIN table_factor ON expr
//	              | CROSS JOIN table_factor
//	              | "," table_factor
//	join_type     → [INNER] | LEFT [OUTER] | RIGHT [OUTER] | FULL [OUTER]

// parseFromClause parses the FROM clause.
func (p *Parser) parseFromClause() (*core.FromClause, error) {
	start := p.PeekToken().Pos
	source, err := p.ParseTableFactor()
	if err != nil {
		return nil, err
	}
	from := &core.FromClause{Source: source}

	for {
		join, err := p.parseJoin()
		if err != nil {
			return nil, err
		}
		if join == nil {
			break
		}
		from.Joins = append(from.Joins, join)
	}

	from.Span = p.spanFrom(start)
	return from, nil
}

// ParseTableFactor parses a single table reference with optional alias.
func (p *Parser) ParseTableFactor() (core.TableRef, error) {
	start := p.PeekToken().Pos

	if p.ParseKeyword(token.LPAREN) {
		if !p.check(token.SELECT) {
			return nil, p.unexpected("SELECT")
		}
		sel, err := p.parseSelect()
		if err != nil {
			return nil, err
		}
		if err := p.Expect(token.RPAREN); err != nil {
			return nil, err
		}
		alias, err := p.parseOptionalAlias()
		if err != nil {
			return nil, err
		}
		return &core.DerivedTable{
			NodeInfo: core.NodeInfo{Span: p.spanFrom(start)},
			Select:   sel,
			Alias:    alias,
		}, nil
	}

	name, err := p.ParseObjectName()
	if err != nil {
		return nil, err
	}
	alias, err := p.parseOptionalAlias()
	if err != nil {
		return nil, err
	}
	return &core.TableName{
		NodeInfo: core.NodeInfo{Span: p.spanFrom(start)},
		Name:     name,
		Alias:    alias,
	}, nil
}

// ParseObjectName parses identifier ("." identifier)*.
func (p *Parser) ParseObjectName() (core.ObjectName, error) {
	var name core.ObjectName
	for {
		ident, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		name = append(name, ident)
		if !p.ParseKeyword(token.DOT) {
			return name, nil
		}
	}
}

// parseIdent consumes one identifier token.
func (p *Parser) parseIdent() (core.Ident, error) {
	tok := p.PeekToken()
	if tok.Type != token.IDENT {
		return core.Ident{}, p.unexpected("identifier")
	}
	p.NextToken()
	return core.Ident{Value: tok.Literal, Quote: tok.Quote}, nil
}

// parseOptionalAlias parses [AS] identifier. Without AS, only an IDENT
// token is taken as an alias, so keywords that start the next clause are
// left alone.
func (p *Parser) parseOptionalAlias() (*core.Ident, error) {
	if p.ParseKeyword(token.AS) {
		ident, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		return &ident, nil
	}
	if p.check(token.IDENT) {
		ident, _ := p.parseIdent()
		return &ident, nil
	}
	return nil, nil
}

// parseJoin parses one join step, or returns nil if none follows.
func (p *Parser) parseJoin() (*core.Join, error) {
	start := p.PeekToken().Pos
	var typ core.JoinType

	switch {
	case p.ParseKeyword(token.COMMA):
		typ = core.JoinComma
	case p.ParseKeywords(token.CROSS, token.JOIN):
		typ = core.JoinCross
	case p.ParseKeyword(token.JOIN), p.ParseKeywords(token.INNER, token.JOIN):
		typ = core.JoinInner
	case p.check(token.LEFT), p.check(token.RIGHT), p.check(token.FULL):
		switch p.NextToken().Type {
		case token.LEFT:
			typ = core.JoinLeft
		case token.RIGHT:
			typ = core.JoinRight
		default:
			typ = core.JoinFull
		}
		p.ParseKeyword(token.OUTER)
		if err := p.ExpectKeyword(token.JOIN); err != nil {
			return nil, err
		}
	default:
		return nil, nil
	}

	right, err := p.ParseTableFactor()
	if err != nil {
		return nil, err
	}
	join := &core.Join{Type: typ, Right: right}

	if typ != core.JoinComma && typ != core.JoinCross {
		if err := p.ExpectKeyword(token.ON); err != nil {
			return nil, err
		}
		if join.Condition, err = p.ParseExpr(); err != nil {
			return nil, err
		}
	}

	join.Span = p.spanFrom(start)
	return join, nil
}
