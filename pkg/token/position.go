package token

import "fmt"

// Position is a location in SQL source.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column, counted in runes
	Offset int // 0-based byte offset
}

// IsValid reports whether the position was set (line > 0).
func (p Position) IsValid() bool {
	return p.Line > 0
}

func (p Position) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span is a half-open byte range [Start, End) in SQL source.
type Span struct {
	Start Position
	End   Position
}

// Contains reports whether offset falls inside the span.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start.Offset && offset < s.End.Offset
}

// IsValid reports whether both ends are set.
func (s Span) IsValid() bool {
	return s.Start.IsValid() && s.End.IsValid()
}

// Text slices the span out of src. It returns "" for spans that do not
// fit src.
func (s Span) Text(src string) string {
	if !s.IsValid() || s.Start.Offset > s.End.Offset || s.End.Offset > len(src) {
		return ""
	}
	return src[s.Start.Offset:s.End.Offset]
}
