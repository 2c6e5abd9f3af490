package parse

import (
	"fmt"

	"github.com/ccl-format/go-ccl/token"
)

// ParseError reports a structural problem in source text, positioned at
// the offending line and column.
type ParseError struct {
	Pos token.Pos
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

func parseErrorf(pos token.Pos, format string, args ...any) *ParseError {
	return &ParseError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}
