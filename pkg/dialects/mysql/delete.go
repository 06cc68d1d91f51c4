package mysql

import (
	"errors"

	"github.com/leapstack-labs/sqldialect/pkg/core"
	"github.com/leapstack-labs/sqldialect/pkg/spi"
	"github.com/leapstack-labs/sqldialect/pkg/token"
)

// ErrLimitOffsetShorthand is wrapped by the error returned for
// DELETE ... LIMIT offset, count, which MySQL does not accept.
var ErrLimitOffsetShorthand = errors.New("LIMIT offset, count is not supported in DELETE")

// ParseStatement claims DELETE and declines everything else.
func (Dialect) ParseStatement(p spi.ParserOps) (core.Stmt, bool, error) {
	tok := p.NextToken()
	if tok.Type != token.DELETE {
		p.PrevToken()
		return nil, false, nil
	}
	stmt, err := parseDelete(p, tok)
	if err != nil {
		return nil, true, err
	}
	return stmt, true, nil
}

// parseDelete parses the remainder of a DELETE after the keyword:
//
//	FROM table_factor
//	[USING table_factor]
//	[WHERE expr]
//	[ORDER BY order_expr [, ...]]
//	[LIMIT limit]
//
// Clauses are only recognised in this order; anything left over is the
// driver's to reject.
func parseDelete(p spi.ParserOps, start token.Token) (*core.DeleteStmt, error) {
	if err := p.ExpectKeyword(token.FROM); err != nil {
		return nil, err
	}
	table, err := p.ParseTableFactor()
	if err != nil {
		return nil, err
	}
	stmt := &core.DeleteStmt{Table: table}
	end := table.End()

	if p.ParseKeyword(token.USING) {
		if stmt.Using, err = p.ParseTableFactor(); err != nil {
			return nil, err
		}
		end = stmt.Using.End()
	}

	if p.ParseKeyword(token.WHERE) {
		if stmt.Where, err = p.ParseExpr(); err != nil {
			return nil, err
		}
		end = stmt.Where.End()
	}

	if p.ParseKeywords(token.ORDER, token.BY) {
		stmt.OrderBy, err = spi.CommaSeparated(p, func(p spi.ParserOps) (*core.OrderByExpr, error) {
			return p.ParseOrderByExpr()
		})
		if err != nil {
			return nil, err
		}
		end = stmt.OrderBy[len(stmt.OrderBy)-1].End()
	}

	if p.ParseKeyword(token.LIMIT) {
		if stmt.Limit, err = p.ParseLimit(); err != nil {
			return nil, err
		}
		if p.PeekToken().Type == token.COMMA {
			return nil, p.Errorf("%w", ErrLimitOffsetShorthand)
		}
		end = stmt.Limit.End()
	}

	stmt.Span = token.Span{Start: start.Pos, End: end}
	return stmt, nil
}
