package format

import (
	"github.com/leapstack-labs/sqldialect/pkg/core"
	"github.com/leapstack-labs/sqldialect/pkg/token"
)

func (p *Printer) formatStmt(stmt core.Stmt) {
	switch s := stmt.(type) {
	case *core.SelectStmt:
		p.formatSelectStmt(s)
	case *core.InsertStmt:
		p.formatInsertStmt(s)
	case *core.UpdateStmt:
		p.formatUpdateStmt(s)
	case *core.DeleteStmt:
		p.formatDeleteStmt(s)
	}
}

// ---------- SELECT ----------

func (p *Printer) formatSelectStmt(stmt *core.SelectStmt) {
	if stmt == nil {
		return
	}

	p.kw(token.SELECT)
	if stmt.Distinct {
		p.space()
		p.kw(token.DISTINCT)
	}
	p.block(func() {
		p.formatList(len(stmt.Columns), func(i int) { p.formatSelectItem(stmt.Columns[i]) }, true)
	})

	if stmt.From != nil {
		p.clause(token.FROM)
		p.space()
		p.formatFromClause(stmt.From)
	}

	if stmt.Where != nil {
		p.clause(token.WHERE)
		p.block(func() { p.formatExpr(stmt.Where) })
	}

	if len(stmt.GroupBy) > 0 {
		p.clause(token.GROUP, token.BY)
		p.block(func() { p.formatExprList(stmt.GroupBy, true) })
	}

	if stmt.Having != nil {
		p.clause(token.HAVING)
		p.block(func() { p.formatExpr(stmt.Having) })
	}

	p.formatOrderByClause(stmt.OrderBy)
	p.formatLimitClause(stmt.Limit)

	if stmt.Offset != nil {
		p.clause(token.OFFSET)
		p.space()
		p.formatExpr(stmt.Offset)
	}
}

func (p *Printer) formatSelectItem(item core.SelectItem) {
	p.formatExpr(item.Expr)
	p.formatAlias(item.Alias)
}

func (p *Printer) formatAlias(alias *core.Ident) {
	if alias == nil {
		return
	}
	p.space()
	p.kw(token.AS)
	p.space()
	p.formatIdent(*alias)
}

// ---------- FROM ----------

func (p *Printer) formatFromClause(from *core.FromClause) {
	p.formatTableRef(from.Source)
	for _, j := range from.Joins {
		p.formatJoin(j)
	}
}

func (p *Printer) formatJoin(j *core.Join) {
	if j.Type == core.JoinComma {
		p.write(",")
		p.space()
		p.formatTableRef(j.Right)
		return
	}

	p.newline()
	switch j.Type {
	case core.JoinInner:
		p.kw(token.JOIN)
	case core.JoinCross:
		p.kw(token.CROSS, token.JOIN)
	default:
		p.write(string(j.Type))
		p.space()
		p.kw(token.JOIN)
	}
	p.space()
	p.formatTableRef(j.Right)

	if j.Condition != nil {
		p.space()
		p.kw(token.ON)
		p.space()
		p.formatExpr(j.Condition)
	}
}

func (p *Printer) formatTableRef(ref core.TableRef) {
	switch t := ref.(type) {
	case *core.TableName:
		p.formatObjectName(t.Name)
		p.formatAlias(t.Alias)
	case *core.DerivedTable:
		p.formatSubquery(t.Select)
		p.formatAlias(t.Alias)
	}
}

// formatSubquery prints "(select)". In pretty mode the query is indented
// on its own lines.
func (p *Printer) formatSubquery(sel *core.SelectStmt) {
	p.write("(")
	if !p.pretty {
		p.formatSelectStmt(sel)
		p.write(")")
		return
	}
	p.writeln()
	p.indent()
	p.formatSelectStmt(sel)
	p.dedent()
	p.writeln()
	p.write(")")
}

// ---------- ORDER BY / LIMIT ----------

func (p *Printer) formatOrderByClause(items []*core.OrderByExpr) {
	if len(items) == 0 {
		return
	}
	p.clause(token.ORDER, token.BY)
	p.block(func() {
		p.formatList(len(items), func(i int) { p.formatOrderByExpr(items[i]) }, true)
	})
}

func (p *Printer) formatOrderByExpr(item *core.OrderByExpr) {
	p.formatExpr(item.Expr)
	if item.Desc {
		p.space()
		p.kw(token.DESC)
	}
	if item.NullsFirst != nil {
		p.space()
		if *item.NullsFirst {
			p.kw(token.NULLS, token.FIRST)
		} else {
			p.kw(token.NULLS, token.LAST)
		}
	}
}

func (p *Printer) formatLimitClause(limit *core.Limit) {
	if limit == nil {
		return
	}
	p.clause(token.LIMIT)
	p.space()
	p.formatLimit(limit)
}

func (p *Printer) formatLimit(limit *core.Limit) {
	if limit.All {
		p.kw(token.ALL)
		return
	}
	p.formatExpr(limit.Count)
}

// ---------- DML ----------

func (p *Printer) formatInsertStmt(stmt *core.InsertStmt) {
	p.kw(token.INSERT, token.INTO)
	p.space()
	p.formatObjectName(stmt.Table)

	if len(stmt.Columns) > 0 {
		p.write(" (")
		p.formatList(len(stmt.Columns), func(i int) { p.formatIdent(stmt.Columns[i]) }, false)
		p.write(")")
	}

	p.clause(token.VALUES)
	p.block(func() {
		p.formatList(len(stmt.Rows), func(i int) {
			p.write("(")
			p.formatExprList(stmt.Rows[i], false)
			p.write(")")
		}, true)
	})
}

func (p *Printer) formatUpdateStmt(stmt *core.UpdateStmt) {
	p.kw(token.UPDATE)
	p.space()
	p.formatTableRef(stmt.Table)

	p.clause(token.SET)
	p.block(func() {
		p.formatList(len(stmt.Assignments), func(i int) {
			a := stmt.Assignments[i]
			p.formatObjectName(a.Column)
			p.write(" = ")
			p.formatExpr(a.Value)
		}, true)
	})

	if stmt.Where != nil {
		p.clause(token.WHERE)
		p.block(func() { p.formatExpr(stmt.Where) })
	}
}

func (p *Printer) formatDeleteStmt(stmt *core.DeleteStmt) {
	p.kw(token.DELETE, token.FROM)
	p.space()
	p.formatTableRef(stmt.Table)

	if stmt.Using != nil {
		p.clause(token.USING)
		p.space()
		p.formatTableRef(stmt.Using)
	}

	if stmt.Where != nil {
		p.clause(token.WHERE)
		p.block(func() { p.formatExpr(stmt.Where) })
	}

	p.formatOrderByClause(stmt.OrderBy)
	p.formatLimitClause(stmt.Limit)
}
