// Package encode prints CCL documents back to text.
//
// Encode is the canonical tree printer: deterministic output under a
// configurable indent width and list style, satisfying the round-trip law
// that reloading its output yields a structurally equivalent tree.
// EncodeEntries is the flat printer for entry sequences, which reproduces
// source order, blank lines and comments exactly.
package encode

import (
	"io"
	"strings"

	"github.com/ccl-format/go-ccl/ir"
)

// EncState carries printer configuration and position while encoding.
type EncState struct {
	depth  int
	indent int

	dupKeyLists bool

	Color func(ir.Kind, ColorAttr, string) string
}

// Encode writes node to w as canonical CCL. The node is printed as a
// document: its pairs at depth zero, each line terminated by a newline.
// Printing never fails on node content; the only errors are writer errors.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	if node == nil {
		return nil
	}
	if node.Kind == ir.KindScalar {
		// A scalar document is its text; a standalone key line reads
		// back as the same node. Comments and blank lines around it
		// still print.
		for _, p := range node.Pairs {
			switch {
			case p.IsComment():
				if err := writeLine(w, es, es.color(ir.KindScalar, CommentColor, p.Key)); err != nil {
					return err
				}
			case p.IsBlank():
				if err := writeBlank(w); err != nil {
					return err
				}
			default:
				if err := writeLine(w, es, es.color(ir.KindScalar, ValueColor, p.Key)); err != nil {
					return err
				}
			}
		}
		return nil
	}
	return encodePairs(node, w, es)
}

func encodePairs(n *ir.Node, w io.Writer, es *EncState) error {
	if n.Kind == ir.KindList {
		return encodeList(n, "", false, w, es)
	}
	for _, p := range n.Pairs {
		if err := encodePair(p, w, es); err != nil {
			return err
		}
	}
	return nil
}

func encodePair(p ir.Pair, w io.Writer, es *EncState) error {
	if p.IsComment() {
		return writeLine(w, es, es.color(ir.KindScalar, CommentColor, p.Key))
	}
	if p.IsBlank() {
		return writeBlank(w)
	}
	switch p.Val.Kind {
	case ir.KindScalar:
		s, _ := p.Val.Scalar()
		return encodeScalar(p.Key, s, w, es)
	case ir.KindList:
		return encodeList(p.Val, p.Key, true, w, es)
	default:
		if err := writeLine(w, es, es.keyEq(p.Key)); err != nil {
			return err
		}
		es.depth++
		defer func() { es.depth-- }()
		for _, c := range p.Val.Pairs {
			if err := encodePair(c, w, es); err != nil {
				return err
			}
		}
		return nil
	}
}

// encodeScalar prints key = text, continuing multi-line text one step
// deeper so it reads back as the same scalar.
func encodeScalar(key, text string, w io.Writer, es *EncState) error {
	first, rest, multi := strings.Cut(text, "\n")
	if multi && (strings.HasPrefix(first, " ") || strings.HasPrefix(first, "\t")) {
		// An inline first line would lose its leading whitespace to
		// value trimming on reload. Push every line into the
		// continuation block, where dedent keeps the relative indent.
		first, rest = "", text
	}
	line := es.keyEq(key)
	if first != "" {
		line += " " + es.color(ir.KindScalar, ValueColor, first)
	}
	if err := writeLine(w, es, line); err != nil {
		return err
	}
	if !multi {
		return nil
	}
	es.depth++
	defer func() { es.depth-- }()
	for _, ln := range strings.Split(rest, "\n") {
		if ln == "" {
			if err := writeBlank(w); err != nil {
				return err
			}
			continue
		}
		if err := writeLine(w, es, es.color(ir.KindScalar, ValueColor, ln)); err != nil {
			return err
		}
	}
	return nil
}

// encodeList prints a list node. With header set, a "key =" (or bare "=")
// line is written and the items go one step deeper; the document root
// prints its items in place. The default style is bare "= item" lines; the
// duplicate-key style repeats "key = item" lines at the current depth when
// every item is a single-line scalar.
func encodeList(n *ir.Node, key string, header bool, w io.Writer, es *EncState) error {
	if es.dupKeyLists && key != "" && allSingleLineScalars(n) {
		for _, p := range n.Pairs {
			if p.IsComment() {
				if err := writeLine(w, es, es.color(ir.KindScalar, CommentColor, p.Key)); err != nil {
					return err
				}
				continue
			}
			for _, it := range p.Items() {
				s, _ := it.Scalar()
				if err := encodeScalar(key, s, w, es); err != nil {
					return err
				}
			}
		}
		return nil
	}
	atDepth := es.depth
	if header {
		if err := writeLine(w, es, es.keyEq(key)); err != nil {
			return err
		}
		atDepth++
	}
	prev := es.depth
	es.depth = atDepth
	defer func() { es.depth = prev }()
	for _, p := range n.Pairs {
		if p.IsComment() {
			if err := writeLine(w, es, es.color(ir.KindScalar, CommentColor, p.Key)); err != nil {
				return err
			}
			continue
		}
		for _, it := range p.Items() {
			if err := encodeItem(it, w, es); err != nil {
				return err
			}
		}
	}
	return nil
}

func encodeItem(it *ir.Node, w io.Writer, es *EncState) error {
	return encodePair(ir.Pair{Key: "", Val: it}, w, es)
}

func allSingleLineScalars(n *ir.Node) bool {
	for _, it := range n.Items() {
		s, ok := it.Scalar()
		if !ok || strings.Contains(s, "\n") {
			return false
		}
	}
	return true
}

func (es *EncState) keyEq(key string) string {
	k := es.color(ir.KindMap, KeyColor, key)
	sep := es.color(ir.KindMap, SepColor, "=")
	if key == "" {
		return sep
	}
	return k + " " + sep
}

func (es *EncState) color(k ir.Kind, attr ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(k, attr, s)
}

func writeLine(w io.Writer, es *EncState, s string) error {
	pad := strings.Repeat(" ", es.indent*es.depth)
	_, err := io.WriteString(w, pad+s+"\n")
	return err
}

func writeBlank(w io.Writer) error {
	_, err := io.WriteString(w, "\n")
	return err
}
