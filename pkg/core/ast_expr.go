package core

import "github.com/leapstack-labs/sqldialect/pkg/token"

// ---------- Expression Types ----------

// ColumnRef is a possibly qualified column reference.
type ColumnRef struct {
	NodeInfo
	Name ObjectName `json:"name"`
}

func (*ColumnRef) exprNode() {}

// Column returns the unqualified column name.
func (c *ColumnRef) Column() string { return c.Name.Base() }

// Qualifier returns everything before the column name, or nil.
func (c *ColumnRef) Qualifier() ObjectName {
	if len(c.Name) < 2 {
		return nil
	}
	return c.Name[:len(c.Name)-1]
}

// LiteralType distinguishes literal kinds.
type LiteralType int

// LiteralType constants.
const (
	LiteralNull LiteralType = iota
	LiteralNumber
	LiteralString
	LiteralBool
	LiteralPlaceholder
)

func (t LiteralType) String() string {
	switch t {
	case LiteralNumber:
		return "number"
	case LiteralString:
		return "string"
	case LiteralBool:
		return "bool"
	case LiteralPlaceholder:
		return "placeholder"
	default:
		return "null"
	}
}

// MarshalText renders the literal kind by name.
func (t LiteralType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// Literal is a constant value. Value holds the source spelling for numbers,
// the unescaped contents for strings and TRUE/FALSE for booleans.
type Literal struct {
	NodeInfo
	Type  LiteralType `json:"type"`
	Value string      `json:"value,omitempty"`
}

func (*Literal) exprNode() {}

// BinaryExpr is a binary operation, including AND/OR and comparisons.
type BinaryExpr struct {
	NodeInfo
	Left  Expr            `json:"left"`
	Op    token.TokenType `json:"op"`
	Right Expr            `json:"right"`
}

func (*BinaryExpr) exprNode() {}

// UnaryExpr is a prefix operation: NOT, unary minus or plus.
type UnaryExpr struct {
	NodeInfo
	Op   token.TokenType `json:"op"`
	Expr Expr            `json:"expr"`
}

func (*UnaryExpr) exprNode() {}

// ParenExpr is a parenthesised expression, kept so formatting preserves
// the author's grouping.
type ParenExpr struct {
	NodeInfo
	Expr Expr `json:"expr"`
}

func (*ParenExpr) exprNode() {}

// FuncCall is a function call. Star is set for COUNT(*).
type FuncCall struct {
	NodeInfo
	Name     ObjectName `json:"name"`
	Distinct bool       `json:"distinct,omitempty"`
	Star     bool       `json:"star,omitempty"`
	Args     []Expr     `json:"args,omitempty"`
}

func (*FuncCall) exprNode() {}

// CaseExpr is a simple or searched CASE expression.
type CaseExpr struct {
	NodeInfo
	Operand Expr          `json:"operand,omitempty"` // nil for searched CASE
	Whens   []*WhenClause `json:"whens"`
	Else    Expr          `json:"else,omitempty"`
}

func (*CaseExpr) exprNode() {}

// WhenClause is one WHEN ... THEN ... arm.
type WhenClause struct {
	Condition Expr `json:"condition"`
	Result    Expr `json:"result"`
}

// IsNullExpr is expr IS [NOT] NULL.
type IsNullExpr struct {
	NodeInfo
	Expr Expr `json:"expr"`
	Not  bool `json:"not,omitempty"`
}

func (*IsNullExpr) exprNode() {}

// InExpr is expr [NOT] IN (list) or expr [NOT] IN (subquery). Exactly one
// of Values and Query is set.
type InExpr struct {
	NodeInfo
	Expr   Expr        `json:"expr"`
	Not    bool        `json:"not,omitempty"`
	Values []Expr      `json:"values,omitempty"`
	Query  *SelectStmt `json:"query,omitempty"`
}

func (*InExpr) exprNode() {}

// BetweenExpr is expr [NOT] BETWEEN low AND high.
type BetweenExpr struct {
	NodeInfo
	Expr Expr `json:"expr"`
	Not  bool `json:"not,omitempty"`
	Low  Expr `json:"low"`
	High Expr `json:"high"`
}

func (*BetweenExpr) exprNode() {}

// LikeExpr is expr [NOT] LIKE pattern.
type LikeExpr struct {
	NodeInfo
	Expr    Expr `json:"expr"`
	Not     bool `json:"not,omitempty"`
	Pattern Expr `json:"pattern"`
}

func (*LikeExpr) exprNode() {}

// ExistsExpr is [NOT] EXISTS (subquery).
type ExistsExpr struct {
	NodeInfo
	Not   bool        `json:"not,omitempty"`
	Query *SelectStmt `json:"query"`
}

func (*ExistsExpr) exprNode() {}

// SubqueryExpr is a scalar subquery in expression position.
type SubqueryExpr struct {
	NodeInfo
	Query *SelectStmt `json:"query"`
}

func (*SubqueryExpr) exprNode() {}

// StarExpr is * or t.* in a select list or function argument.
type StarExpr struct {
	NodeInfo
	Table ObjectName `json:"table,omitempty"`
}

func (*StarExpr) exprNode() {}
