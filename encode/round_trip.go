package encode

import (
	"github.com/ccl-format/go-ccl/ir"
	"github.com/ccl-format/go-ccl/parse"
)

// RoundTrip checks the flat round-trip law on src: parsing the printed
// form of its entries yields the same entries. Dialect options apply to
// both parses.
func RoundTrip(src string, opts ...parse.ParseOption) bool {
	first, err := parse.Parse(src, opts...)
	if err != nil {
		return false
	}
	second, err := parse.Parse(EntriesString(first), opts...)
	if err != nil {
		return false
	}
	return ir.EntriesEqual(first, second)
}

// RoundTripModel checks the tree-level law on src: reloading the canonical
// printing of its tree is structurally equivalent to the tree itself.
func RoundTripModel(src string, opts ...parse.ParseOption) bool {
	n, err := parse.Load(src, opts...)
	if err != nil {
		return false
	}
	m, err := parse.Load(String(n), opts...)
	if err != nil {
		return false
	}
	return ir.Equal(n, m)
}
