package format

import (
	"github.com/leapstack-labs/sqldialect/pkg/core"
	"github.com/leapstack-labs/sqldialect/pkg/token"
)

// decorated is a statement with the comments printed around it.
type decorated struct {
	stmt     core.Stmt // nil for a comment-only tail
	leading  []*token.Comment
	trailing []*token.Comment
}

// decorate assigns each comment by source offset: comments ending before a
// statement starts lead it, comments inside it trail it, and comments after
// the last statement trail that one.
func decorate(stmts []core.Stmt, comments []*token.Comment) []decorated {
	out := make([]decorated, len(stmts))
	for i, s := range stmts {
		out[i].stmt = s
	}

	next := 0
	for _, c := range comments {
		for next < len(stmts) && c.Span.Start.Offset >= stmts[next].End().Offset {
			next++
		}
		switch {
		case len(stmts) == 0:
			if len(out) == 0 {
				out = append(out, decorated{})
			}
			out[0].leading = append(out[0].leading, c)
		case next == len(stmts):
			out[next-1].trailing = append(out[next-1].trailing, c)
		case c.Span.End.Offset <= stmts[next].Pos().Offset:
			out[next].leading = append(out[next].leading, c)
		default:
			out[next].trailing = append(out[next].trailing, c)
		}
	}
	return out
}
