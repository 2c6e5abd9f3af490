// Package parse turns CCL text into flat entries and document trees.
//
// Parse produces the source-faithful flat form: an ordered sequence of
// (key, value) entries in which duplicates are meaningful, blank lines
// survive as empty entries, and comments survive as pseudo-entries. Build
// and Load produce the recursive ir.Node tree by re-parsing each entry's
// continuation block at the next indentation step.
package parse

import (
	"strings"

	"github.com/ccl-format/go-ccl/ir"
	"github.com/ccl-format/go-ccl/token"
)

// entry is the internal flat form, carrying the source line for error
// positions during hierarchy building.
type entry struct {
	key   string
	value string
	line  int
}

// Parse scans src into flat entries. It is total: any text has some
// key/value reading, so the only errors come from option misuse, never
// from content.
func Parse(src string, opts ...ParseOption) ([]ir.Entry, error) {
	o := &parseOpts{}
	for _, f := range opts {
		f(o)
	}
	ents := parseEntries(src, o)
	out := make([]ir.Entry, len(ents))
	for i, e := range ents {
		out[i] = ir.Entry{Key: e.key, Value: e.value}
	}
	return out, nil
}

func parseEntries(src string, o *parseOpts) []entry {
	if o.normalizeCRLF {
		src = token.Normalize(src)
	}
	lines := token.Split(src)

	var (
		entries    []entry
		valueLines []string
		openKey    string
		openIndent int
		openLine   int
		haveOpen   bool
	)
	flush := func() {
		if !haveOpen {
			return
		}
		value := strings.TrimRight(strings.Join(valueLines, "\n"), " \t\r\n")
		if o.tabsToSpaces {
			value = token.ExpandTabs(value)
		}
		entries = append(entries, entry{key: openKey, value: value, line: openLine})
		haveOpen = false
		valueLines = valueLines[:0]
	}
	open := func(key, val string, ln token.Line) {
		flush()
		openKey, openIndent, openLine = key, ln.Indent, ln.Num
		haveOpen = true
		valueLines = append(valueLines, val)
	}

	for i, ln := range lines {
		if token.IsBlank(ln.Text) {
			// A blank line continues the open entry only when deeper
			// content still follows it; otherwise it closes the entry
			// and stands alone so printing can reproduce it.
			if haveOpen && deeperContentFollows(lines, i+1, openIndent) {
				valueLines = append(valueLines, "")
				continue
			}
			flush()
			entries = append(entries, entry{line: ln.Num})
			continue
		}
		trimmed := strings.TrimRight(ln.Text, " \t\r")

		if haveOpen && ln.Indent > openIndent {
			valueLines = append(valueLines, ln.Raw)
			continue
		}
		if strings.HasPrefix(trimmed, ir.CommentPrefix) {
			flush()
			entries = append(entries, entry{key: trimmed, line: ln.Num})
			continue
		}
		if idx, ok := token.FindDelim(trimmed, o.loose); ok {
			// Trim the same byte set IsBlank recognizes so a key that
			// contains other whitespace survives a reparse of its own
			// printed form.
			key := strings.Trim(trimmed[:idx], " \t")
			val := token.TrimSpaces(trimmed[idx+1:])
			open(key, val, ln)
			continue
		}
		// No acceptable delimiter: the whole line is a key with an
		// empty value. In strict spacing this also covers key=value
		// written without spaces.
		open(trimmed, "", ln)
	}
	flush()
	return entries
}

// deeperContentFollows reports whether the next non-blank line at or
// after from is indented deeper than indent.
func deeperContentFollows(lines []token.Line, from, indent int) bool {
	for _, ln := range lines[from:] {
		if token.IsBlank(ln.Text) {
			continue
		}
		return ln.Indent > indent
	}
	return false
}
