package encode

type EncodeOption func(*EncState)

// Indent sets the indent width per nesting step. The default is 2.
func Indent(n int) EncodeOption {
	return func(es *EncState) {
		if n > 0 {
			es.indent = n
		}
	}
}

// Depth starts printing at the given nesting depth, for embedding output
// under an existing header.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

// DuplicateKeyLists prints keyed lists of single-line scalars as repeated
// "key = item" lines instead of a bare-item block.
func DuplicateKeyLists() EncodeOption {
	return func(es *EncState) { es.dupKeyLists = true }
}

// WithColors enables ANSI coloring of keys, values, separators and
// comments.
func WithColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
