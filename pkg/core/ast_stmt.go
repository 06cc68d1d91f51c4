package core

// ---------- Statement Types ----------

// SelectStmt is a single SELECT query block.
type SelectStmt struct {
	NodeInfo
	Distinct bool           `json:"distinct,omitempty"`
	Columns  []SelectItem   `json:"columns"`
	From     *FromClause    `json:"from,omitempty"`
	Where    Expr           `json:"where,omitempty"`
	GroupBy  []Expr         `json:"group_by,omitempty"`
	Having   Expr           `json:"having,omitempty"`
	OrderBy  []*OrderByExpr `json:"order_by,omitempty"`
	Limit    *Limit         `json:"limit,omitempty"`
	Offset   Expr           `json:"offset,omitempty"`
}

func (*SelectStmt) stmtNode() {}

// SelectItem is one projection. Alias is nil when no alias was written.
type SelectItem struct {
	Expr  Expr   `json:"expr"`
	Alias *Ident `json:"alias,omitempty"`
}

// InsertStmt is INSERT INTO name [(cols)] VALUES (...), (...).
type InsertStmt struct {
	NodeInfo
	Table   ObjectName `json:"table"`
	Columns []Ident    `json:"columns,omitempty"`
	Rows    [][]Expr   `json:"rows"`
}

func (*InsertStmt) stmtNode() {}

// UpdateStmt is UPDATE table SET col = expr, ... [WHERE expr].
type UpdateStmt struct {
	NodeInfo
	Table       TableRef      `json:"table"`
	Assignments []*Assignment `json:"assignments"`
	Where       Expr          `json:"where,omitempty"`
}

func (*UpdateStmt) stmtNode() {}

// Assignment is one col = expr pair of an UPDATE.
type Assignment struct {
	Column ObjectName `json:"column"`
	Value  Expr       `json:"value"`
}

// DeleteStmt is a DELETE statement. The generic grammar fills Table and
// Where only; dialects with a richer DELETE (MySQL's USING, ORDER BY and
// LIMIT) fill the rest.
//
// Each optional field is non-nil exactly when its keyword appeared.
type DeleteStmt struct {
	NodeInfo
	Table   TableRef       `json:"table"`
	Using   TableRef       `json:"using,omitempty"`
	Where   Expr           `json:"where,omitempty"`
	OrderBy []*OrderByExpr `json:"order_by,omitempty"`
	Limit   *Limit         `json:"limit,omitempty"`
}

func (*DeleteStmt) stmtNode() {}

// OrderByExpr is one sort key. NullsFirst is nil when no NULLS clause was
// written.
type OrderByExpr struct {
	NodeInfo
	Expr       Expr  `json:"expr"`
	Desc       bool  `json:"desc,omitempty"`
	NullsFirst *bool `json:"nulls_first,omitempty"`
}

// Limit is the argument of a LIMIT clause. All is set for LIMIT ALL, in
// which case Count is nil.
type Limit struct {
	NodeInfo
	All   bool `json:"all,omitempty"`
	Count Expr `json:"count,omitempty"`
}
