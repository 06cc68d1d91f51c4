package core

// ---------- Table Reference Types ----------

// TableName is a named table with an optional alias.
type TableName struct {
	NodeInfo
	Name  ObjectName `json:"name"`
	Alias *Ident     `json:"alias,omitempty"`
}

func (*TableName) tableRefNode() {}

// DerivedTable is a parenthesised subquery in table position.
type DerivedTable struct {
	NodeInfo
	Select *SelectStmt `json:"select"`
	Alias  *Ident      `json:"alias,omitempty"`
}

func (*DerivedTable) tableRefNode() {}

// FromClause is the first FROM item followed by its joins.
type FromClause struct {
	NodeInfo
	Source TableRef `json:"source"`
	Joins  []*Join  `json:"joins,omitempty"`
}

// JoinType is the kind of join.
type JoinType string

// JoinType constants. JoinComma is the implicit cross join written as a
// comma between FROM items.
const (
	JoinInner JoinType = "INNER"
	JoinLeft  JoinType = "LEFT"
	JoinRight JoinType = "RIGHT"
	JoinFull  JoinType = "FULL"
	JoinCross JoinType = "CROSS"
	JoinComma JoinType = ","
)

// Join is one join step. Condition is nil for CROSS and comma joins.
type Join struct {
	NodeInfo
	Type      JoinType `json:"type"`
	Right     TableRef `json:"right"`
	Condition Expr     `json:"condition,omitempty"`
}
