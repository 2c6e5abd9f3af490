package parse

import (
	"strings"

	"github.com/ccl-format/go-ccl/ir"
	"github.com/ccl-format/go-ccl/token"
)

// Load parses src and builds its document tree.
func Load(src string, opts ...ParseOption) (*ir.Node, error) {
	o := &parseOpts{}
	for _, f := range opts {
		f(o)
	}
	return buildEntries(parseEntries(src, o), o)
}

// Build assembles a document tree from flat entries, re-parsing each
// entry's continuation block to discover its children.
func Build(entries []ir.Entry, opts ...ParseOption) (*ir.Node, error) {
	o := &parseOpts{}
	for _, f := range opts {
		f(o)
	}
	ents := make([]entry, len(entries))
	for i, e := range entries {
		ents[i] = entry{key: e.Key, value: e.Value}
	}
	return buildEntries(ents, o)
}

func buildEntries(ents []entry, o *parseOpts) (*ir.Node, error) {
	if len(ents) == 0 {
		return ir.Empty(), nil
	}
	pairs := make([]ir.Pair, 0, len(ents))
	for _, e := range ents {
		child, err := buildValue(e, o)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, ir.Pair{Key: e.key, Val: child})
	}
	if o.referenceOrder {
		pairs = reverseDuplicates(pairs)
	}
	return ir.FromPairs(pairs), nil
}

// buildValue turns one entry's value text into a child node. Single-line
// values are always scalars. A continuation block with an empty inline
// part is re-parsed as nested entries when it has its own structure, and
// read as a multi-line scalar otherwise. A non-empty inline part followed
// by continuation lines is a multi-line scalar.
func buildValue(e entry, o *parseOpts) (*ir.Node, error) {
	if e.value == "" {
		return ir.Empty(), nil
	}
	if !strings.Contains(e.value, "\n") {
		return ir.FromString(e.value), nil
	}
	inline, rest, _ := strings.Cut(e.value, "\n")
	block, err := dedent(rest, e.line, o)
	if err != nil {
		return nil, err
	}
	if inline != "" {
		return ir.FromString(inline + "\n" + strings.Join(block, "\n")), nil
	}
	if !hasStructure(block, o) {
		// Leading blank lines carry nothing at tree level; the flat
		// entry form still preserves them.
		text := strings.TrimLeft(strings.Join(block, "\n"), "\n")
		return ir.FromString(text), nil
	}
	sub := parseEntries(strings.Join(block, "\n"), o)
	for i := range sub {
		sub[i].line += e.line
	}
	return buildEntries(sub, o)
}

// hasStructure reports whether a dedented continuation block contains
// entries of its own: a base-level line with a delimiter, or a comment.
// Blocks without structure are multi-line scalar text.
func hasStructure(block []string, o *parseOpts) bool {
	for _, ln := range block {
		if token.Indent(ln) > 0 || token.IsBlank(ln) {
			continue
		}
		if strings.HasPrefix(ln, ir.CommentPrefix) {
			return true
		}
		if _, ok := token.FindDelim(strings.TrimRight(ln, " \t\r"), o.loose); ok {
			return true
		}
	}
	return false
}

// dedent strips the common leading whitespace from a continuation block.
// startLine is the source line of the entry owning the block; block line i
// sits at source line startLine+1+i. With tabs preserved, lines whose
// leading bytes disagree inside the common width cannot be dedented and
// raise a ParseError.
func dedent(rest string, startLine int, o *parseOpts) ([]string, error) {
	lines := strings.Split(rest, "\n")
	width := -1
	var prefix string
	for _, ln := range lines {
		if token.IsBlank(ln) {
			continue
		}
		if n := token.Indent(ln); width < 0 || n < width {
			width = n
			prefix = ln[:n]
		}
	}
	if width <= 0 {
		for i, ln := range lines {
			if token.IsBlank(ln) {
				lines[i] = ""
			}
		}
		return lines, nil
	}
	out := make([]string, len(lines))
	for i, ln := range lines {
		if token.IsBlank(ln) {
			continue
		}
		for j := 0; j < width; j++ {
			if ln[j] != prefix[j] {
				return nil, parseErrorf(
					token.Pos{Line: startLine + 1 + i, Col: j + 1},
					"inconsistent indentation: cannot dedent mixed tabs and spaces",
				)
			}
		}
		out[i] = ln[width:]
	}
	return out, nil
}

// reverseDuplicates reverses the children of each repeated key across that
// key's positions, matching the prepend-based reference ordering. Keys
// occurring once are untouched.
func reverseDuplicates(pairs []ir.Pair) []ir.Pair {
	byKey := make(map[string][]int)
	for i, p := range pairs {
		byKey[p.Key] = append(byKey[p.Key], i)
	}
	out := make([]ir.Pair, len(pairs))
	copy(out, pairs)
	for _, at := range byKey {
		for a, b := 0, len(at)-1; a < b; a, b = a+1, b-1 {
			out[at[a]].Val, out[at[b]].Val = out[at[b]].Val, out[at[a]].Val
		}
	}
	return out
}
