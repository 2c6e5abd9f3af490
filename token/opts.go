package token

import "strings"

// Normalize rewrites CRLF sequences to LF. Lone carriage returns are left
// alone.
func Normalize(src string) string {
	return strings.ReplaceAll(src, "\r\n", "\n")
}

// ExpandTabs replaces each tab with a single space, matching the loose
// dialect's tab handling. It never widens to a tab stop; indentation in
// CCL counts bytes, not columns.
func ExpandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", " ")
}
