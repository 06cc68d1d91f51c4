package parser

import (
	"github.com/leapstack-labs/sqldialect/pkg/core"
	"github.com/leapstack-labs/sqldialect/pkg/spi"
	"github.com/leapstack-labs/sqldialect/pkg/token"
)

// parseStatement dispatches on the leading keyword using the generic
// grammar.
func (p *Parser) parseStatement() (core.Stmt, error) {
	switch p.PeekToken().Type {
	case token.SELECT:
		return p.parseSelect()
	case token.INSERT:
		return p.parseInsert()
	case token.UPDATE:
		return p.parseUpdate()
	case token.DELETE:
		return p.parseDelete()
	}
	return nil, p.unexpected("a statement")
}

// ---------- SELECT ----------

// parseSelect parses:
//
//	SELECT [DISTINCT|ALL] select_item ("," select_item)*
//	[FROM from_clause] [WHERE expr] [GROUP BY expr_list] [HAVING expr]
//	[ORDER BY order_list] [LIMIT limit] [OFFSET expr]
func (p *Parser) parseSelect() (*core.SelectStmt, error) {
	start := p.NextToken() // SELECT
	stmt := &core.SelectStmt{}
	var err error

	if p.ParseKeyword(token.DISTINCT) {
		stmt.Distinct = true
	} else {
		p.ParseKeyword(token.ALL)
	}

	stmt.Columns, err = spi.CommaSeparated(p, func(spi.ParserOps) (core.SelectItem, error) {
		return p.parseSelectItem()
	})
	if err != nil {
		return nil, err
	}

	if p.ParseKeyword(token.FROM) {
		if stmt.From, err = p.parseFromClause(); err != nil {
			return nil, err
		}
	}

	if p.ParseKeyword(token.WHERE) {
		if stmt.Where, err = p.ParseExpr(); err != nil {
			return nil, err
		}
	}

	if p.ParseKeywords(token.GROUP, token.BY) {
		if stmt.GroupBy, err = p.parseExprList(); err != nil {
			return nil, err
		}
	}

	if p.ParseKeyword(token.HAVING) {
		if stmt.Having, err = p.ParseExpr(); err != nil {
			return nil, err
		}
	}

	if p.ParseKeywords(token.ORDER, token.BY) {
		if stmt.OrderBy, err = p.parseOrderByList(); err != nil {
			return nil, err
		}
	}

	if p.ParseKeyword(token.LIMIT) {
		if stmt.Limit, err = p.ParseLimit(); err != nil {
			return nil, err
		}
	}

	if p.ParseKeyword(token.OFFSET) {
		if stmt.Offset, err = p.ParseExpr(); err != nil {
			return nil, err
		}
	}

	stmt.Span = p.spanFrom(start.Pos)
	return stmt, nil
}

// parseSelectItem parses expr [[AS] alias].
func (p *Parser) parseSelectItem() (core.SelectItem, error) {
	expr, err := p.ParseExpr()
	if err != nil {
		return core.SelectItem{}, err
	}
	alias, err := p.parseOptionalAlias()
	if err != nil {
		return core.SelectItem{}, err
	}
	return core.SelectItem{Expr: expr, Alias: alias}, nil
}

// ---------- INSERT ----------

// parseInsert parses INSERT INTO name ["(" ident_list ")"] VALUES row ("," row)*.
func (p *Parser) parseInsert() (*core.InsertStmt, error) {
	start := p.NextToken() // INSERT
	if err := p.ExpectKeyword(token.INTO); err != nil {
		return nil, err
	}
	name, err := p.ParseObjectName()
	if err != nil {
		return nil, err
	}
	stmt := &core.InsertStmt{Table: name}

	if p.ParseKeyword(token.LPAREN) {
		stmt.Columns, err = spi.CommaSeparated(p, func(spi.ParserOps) (core.Ident, error) {
			return p.parseIdent()
		})
		if err != nil {
			return nil, err
		}
		if err := p.Expect(token.RPAREN); err != nil {
			return nil, err
		}
	}

	if err := p.ExpectKeyword(token.VALUES); err != nil {
		return nil, err
	}
	stmt.Rows, err = spi.CommaSeparated(p, func(spi.ParserOps) ([]core.Expr, error) {
		if err := p.Expect(token.LPAREN); err != nil {
			return nil, err
		}
		row, err := p.parseExprList()
		if err != nil {
			return nil, err
		}
		return row, p.Expect(token.RPAREN)
	})
	if err != nil {
		return nil, err
	}

	stmt.Span = p.spanFrom(start.Pos)
	return stmt, nil
}

// ---------- UPDATE ----------

// parseUpdate parses UPDATE table_factor SET assignment ("," assignment)* [WHERE expr].
func (p *Parser) parseUpdate() (*core.UpdateStmt, error) {
	start := p.NextToken() // UPDATE
	table, err := p.ParseTableFactor()
	if err != nil {
		return nil, err
	}
	if err := p.ExpectKeyword(token.SET); err != nil {
		return nil, err
	}
	stmt := &core.UpdateStmt{Table: table}

	stmt.Assignments, err = spi.CommaSeparated(p, func(spi.ParserOps) (*core.Assignment, error) {
		col, err := p.ParseObjectName()
		if err != nil {
			return nil, err
		}
		if err := p.Expect(token.EQ); err != nil {
			return nil, err
		}
		value, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		return &core.Assignment{Column: col, Value: value}, nil
	})
	if err != nil {
		return nil, err
	}

	if p.ParseKeyword(token.WHERE) {
		if stmt.Where, err = p.ParseExpr(); err != nil {
			return nil, err
		}
	}

	stmt.Span = p.spanFrom(start.Pos)
	return stmt, nil
}

// ---------- DELETE ----------

// parseDelete parses the portable DELETE FROM table_factor [WHERE expr].
// Dialects with a richer DELETE claim the statement before this runs.
func (p *Parser) parseDelete() (*core.DeleteStmt, error) {
	start := p.NextToken() // DELETE
	if err := p.ExpectKeyword(token.FROM); err != nil {
		return nil, err
	}
	table, err := p.ParseTableFactor()
	if err != nil {
		return nil, err
	}
	stmt := &core.DeleteStmt{Table: table}

	if p.ParseKeyword(token.WHERE) {
		if stmt.Where, err = p.ParseExpr(); err != nil {
			return nil, err
		}
	}

	stmt.Span = p.spanFrom(start.Pos)
	return stmt, nil
}

// ---------- Shared clause helpers ----------

func (p *Parser) parseExprList() ([]core.Expr, error) {
	return spi.CommaSeparated(p, func(spi.ParserOps) (core.Expr, error) {
		return p.ParseExpr()
	})
}

func (p *Parser) parseOrderByList() ([]*core.OrderByExpr, error) {
	return spi.CommaSeparated(p, func(spi.ParserOps) (*core.OrderByExpr, error) {
		return p.ParseOrderByExpr()
	})
}

// ParseOrderByExpr parses expr [ASC|DESC] [NULLS FIRST|NULLS LAST].
func (p *Parser) ParseOrderByExpr() (*core.OrderByExpr, error) {
	start := p.PeekToken().Pos
	expr, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	item := &core.OrderByExpr{Expr: expr}

	if p.ParseKeyword(token.DESC) {
		item.Desc = true
	} else {
		p.ParseKeyword(token.ASC)
	}

	if p.ParseKeyword(token.NULLS) {
		var first bool
		switch {
		case p.ParseKeyword(token.FIRST):
			first = true
		case p.ParseKeyword(token.LAST):
		default:
			return nil, p.unexpected("FIRST or LAST")
		}
		item.NullsFirst = &first
	}

	item.Span = p.spanFrom(start)
	return item, nil
}

// ParseLimit parses the argument of LIMIT: ALL, an unsigned integer or a
// placeholder. LIMIT ALL yields a Limit with All set and no Count.
func (p *Parser) ParseLimit() (*core.Limit, error) {
	tok := p.PeekToken()
	switch {
	case p.ParseKeyword(token.ALL):
		return &core.Limit{NodeInfo: core.NodeInfo{Span: tok.Span()}, All: true}, nil
	case tok.Type == token.NUMBER:
		if !isUnsignedInteger(tok.Literal) {
			return nil, p.Errorf(ErrInvalidLimit, tok.Literal)
		}
		p.NextToken()
		return &core.Limit{
			NodeInfo: core.NodeInfo{Span: tok.Span()},
			Count:    &core.Literal{NodeInfo: core.NodeInfo{Span: tok.Span()}, Type: core.LiteralNumber, Value: tok.Literal},
		}, nil
	case tok.Type == token.PLACEHOLDER:
		p.NextToken()
		return &core.Limit{
			NodeInfo: core.NodeInfo{Span: tok.Span()},
			Count:    &core.Literal{NodeInfo: core.NodeInfo{Span: tok.Span()}, Type: core.LiteralPlaceholder, Value: tok.Literal},
		}, nil
	}
	return nil, p.unexpected("a row count or ALL")
}

func isUnsignedInteger(s string) bool {
	if s == "" {
		return false
	}
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}
