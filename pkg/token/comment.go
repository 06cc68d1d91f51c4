package token

// CommentKind distinguishes line from block comments.
type CommentKind int

const (
	LineComment  CommentKind = iota // -- comment
	BlockComment                    // /* comment */
)

func (k CommentKind) String() string {
	if k == BlockComment {
		return "block"
	}
	return "line"
}

// Comment is a comment skipped by the lexer. Comments never reach the
// token stream; the lexer keeps them on the side for tooling.
type Comment struct {
	Kind CommentKind
	Text string // includes the -- or /* */ delimiters
	Span Span
}
