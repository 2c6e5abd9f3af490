package token

import "fmt"

// Pos is a 1-based line/column position in source text. Columns count
// bytes, not runes; keys and values are treated as opaque byte strings
// throughout.
type Pos struct {
	Line int
	Col  int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// IsValid reports whether p refers to an actual source location.
func (p Pos) IsValid() bool {
	return p.Line > 0
}
