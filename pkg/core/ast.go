package core

import (
	"strings"

	"github.com/leapstack-labs/sqldialect/pkg/token"
)

// Node is the base interface for all AST nodes.
type Node interface {
	// Pos returns the position of the first character of the node.
	Pos() token.Position
	// End returns the position immediately after the node.
	End() token.Position
}

// Expr is a marker interface for expression nodes.
type Expr interface {
	Node
	exprNode()
}

// Stmt is a marker interface for statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// TableRef is a marker interface for anything that can appear as a table
// factor: FROM items, DELETE and UPDATE targets, USING lists.
type TableRef interface {
	Node
	tableRefNode()
}

// NodeInfo carries the source span of a node. Embedding it implements Node.
type NodeInfo struct {
	Span token.Span `json:"-" yaml:"-"`
}

// Pos implements Node.
func (n NodeInfo) Pos() token.Position { return n.Span.Start }

// End implements Node.
func (n NodeInfo) End() token.Position { return n.Span.End }

// Ident is a single identifier. Quote is the opening delimiter for
// delimited identifiers and 0 for bare ones; Value never contains the
// delimiters.
type Ident struct {
	Value string `json:"value"`
	Quote rune   `json:"quote,omitempty" yaml:"quote,omitempty"`
}

// NewIdent returns a bare identifier.
func NewIdent(value string) Ident {
	return Ident{Value: value}
}

// String renders the identifier as written, re-adding delimiters and
// doubling any embedded closing delimiter.
func (i Ident) String() string {
	if i.Quote == 0 {
		return i.Value
	}
	end := closingQuote(i.Quote)
	escaped := strings.ReplaceAll(i.Value, string(end), string(end)+string(end))
	return string(i.Quote) + escaped + string(end)
}

// ObjectName is a possibly qualified name such as db.schema.table.
type ObjectName []Ident

// String joins the parts with dots.
func (n ObjectName) String() string {
	parts := make([]string, len(n))
	for i, p := range n {
		parts[i] = p.String()
	}
	return strings.Join(parts, ".")
}

// Base returns the unqualified last part.
func (n ObjectName) Base() string {
	if len(n) == 0 {
		return ""
	}
	return n[len(n)-1].Value
}

func closingQuote(open rune) rune {
	if open == '[' {
		return ']'
	}
	return open
}
