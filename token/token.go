// Package token provides the line-level scanning primitives shared by the
// parser and the printers: physical line splitting, indentation
// measurement, delimiter detection, and the space-only trimming rules CCL
// uses around keys and values.
package token

import "strings"

// Delim is the key/value delimiter character.
const Delim = '='

// Line is one physical source line.
type Line struct {
	// Num is the 1-based line number in the original text.
	Num int
	// Indent is the number of leading whitespace bytes (spaces and tabs
	// both count one).
	Indent int
	// Text is the line with leading whitespace removed. It may still end
	// in whitespace; value trimming is delimiter-aware and happens later.
	Text string
	// Raw is the line exactly as read, leading whitespace included.
	// Continuation blocks carry raw lines so dedenting can see the
	// actual indent bytes.
	Raw string
}

// Split breaks src into physical lines on '\n'. A trailing newline does
// not produce a final empty line. Carriage returns are kept; callers that
// want LF-only text normalize first (see Normalize in opts.go).
func Split(src string) []Line {
	if src == "" {
		return nil
	}
	raw := strings.Split(src, "\n")
	if raw[len(raw)-1] == "" {
		raw = raw[:len(raw)-1]
	}
	lines := make([]Line, len(raw))
	for i, r := range raw {
		ind := Indent(r)
		lines[i] = Line{Num: i + 1, Indent: ind, Text: r[ind:], Raw: r}
	}
	return lines
}

// Indent counts the leading space and tab bytes of s.
func Indent(s string) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return i
}

// IsBlank reports whether s is empty or all whitespace (spaces, tabs,
// carriage returns).
func IsBlank(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\r':
		default:
			return false
		}
	}
	return true
}

// FindDelim locates the key/value delimiter in a line's trimmed text.
//
// In strict mode the delimiter must be spaced: the first " = " wins, or a
// trailing " =" when the value is empty. This lets '=' appear inside keys.
// A leading '=' is the bare list item shorthand and always counts. In
// loose mode the first '=' wins regardless of spacing.
//
// The returned index is the position of the '=' byte itself; ok is false
// when no acceptable delimiter exists.
func FindDelim(s string, loose bool) (idx int, ok bool) {
	if loose {
		i := strings.IndexByte(s, Delim)
		return i, i >= 0
	}
	if len(s) > 0 && s[0] == Delim {
		return 0, true
	}
	if i := strings.Index(s, " = "); i >= 0 {
		return i + 1, true
	}
	if strings.HasSuffix(s, " =") {
		return len(s) - 1, true
	}
	return -1, false
}

// TrimSpaces removes leading and trailing space bytes only, preserving
// tabs. Tab preservation is a dialect behavior decided elsewhere.
func TrimSpaces(s string) string {
	return strings.Trim(s, " ")
}
