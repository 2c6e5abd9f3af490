package ir

import "strings"

// Compare orders nodes first by kind rank (empty < scalar < list < map)
// and then structurally: scalars by text, lists and maps lexicographically
// over their pairs. Comments and preserved blank lines do not participate.
func Compare(a, b *Node) int {
	ka, kb := a.kindOf(), b.kindOf()
	if ka != kb {
		if ka < kb {
			return -1
		}
		return 1
	}
	switch ka {
	case KindEmpty:
		return 0
	case KindScalar:
		sa, _ := a.Scalar()
		sb, _ := b.Scalar()
		return strings.Compare(sa, sb)
	case KindList:
		ia, ib := a.Items(), b.Items()
		for i := 0; i < len(ia) && i < len(ib); i++ {
			if c := Compare(ia[i], ib[i]); c != 0 {
				return c
			}
		}
		return cmpLen(len(ia), len(ib))
	default:
		pa, pb := dataPairs(a), dataPairs(b)
		for i := 0; i < len(pa) && i < len(pb); i++ {
			if c := strings.Compare(pa[i].Key, pb[i].Key); c != 0 {
				return c
			}
			if c := Compare(pa[i].Val, pb[i].Val); c != 0 {
				return c
			}
		}
		return cmpLen(len(pa), len(pb))
	}
}

// Equal reports structural equivalence: equal kinds, equal scalar text,
// pairwise-equal items or (key, child) pairs. Comments and blank lines are
// ignored, so a document and its comment-stripped form are equal.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

func dataPairs(n *Node) []Pair {
	if n == nil {
		return nil
	}
	var ps []Pair
	for _, p := range n.Pairs {
		if isMeta(p) {
			continue
		}
		ps = append(ps, p)
	}
	return ps
}

func cmpLen(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
