package ir

import "fmt"

// Kind classifies the structural shape of a Node. It is derived from the
// node's pairs at construction time.
type Kind int

const (
	// KindEmpty is a node with no pairs. It terminates scalars and
	// appears as the child of flag-style keys.
	KindEmpty Kind = iota

	// KindScalar is a node with exactly one pair whose child is empty.
	// The pair's key is the scalar text.
	KindScalar

	// KindList is a node whose pairs denote a sequence, either via the
	// bare `= item` syntax or via duplicate keys with empty children.
	KindList

	// KindMap is any other node: keyed pairs with at least one
	// structured child.
	KindMap
)

var kindNames = map[Kind]string{
	KindEmpty:  "empty",
	KindScalar: "scalar",
	KindList:   "list",
	KindMap:    "map",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	s, ok := kindNames[k]
	if !ok {
		return nil, fmt.Errorf("invalid kind %d", int(k))
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(d []byte) error {
	for kk, s := range kindNames {
		if s == string(d) {
			*k = kk
			return nil
		}
	}
	return fmt.Errorf("invalid kind %q", string(d))
}

// Kinds returns all kinds in rank order.
func Kinds() []Kind {
	return []Kind{KindEmpty, KindScalar, KindList, KindMap}
}

// classify computes the Kind of a node with the given pairs. The rules,
// in order:
//
//  1. no data pairs: empty
//  2. one data pair with an empty child: scalar (the key is the text)
//  3. all data pairs under the empty key with non-empty children: list
//     (bare items)
//  4. a single empty-key pair whose child's children are all empty: list
//     (the child's keys are the items)
//  5. two or more data pairs, all children empty: list (the keys are the
//     items; duplicates count, so this is checked on raw pairs)
//  6. otherwise: map
//
// Data pairs exclude comments and preserved blank lines.
func classify(pairs []Pair) Kind {
	data := pairs[:0:0]
	blanks := 0
	for _, p := range pairs {
		if isMeta(p) {
			if p.Key == "" {
				blanks++
			}
			continue
		}
		data = append(data, p)
	}
	if len(data) == 0 {
		// The empty-string scalar {"": {}} and a lone preserved blank
		// line have the same shape; a single such pair is the scalar.
		if blanks == 1 && len(pairs) == 1 {
			return KindScalar
		}
		return KindEmpty
	}
	if len(data) == 1 {
		p := data[0]
		if p.Val.isEmptyData() {
			return KindScalar
		}
		if p.Key == "" && p.Val.allChildrenEmpty() {
			return KindList
		}
	}
	allBare := true
	allEmpty := true
	for _, p := range data {
		if p.Key != "" || p.Val.isEmptyData() {
			allBare = false
		}
		if !p.Val.isEmptyData() {
			allEmpty = false
		}
	}
	if allBare {
		return KindList
	}
	if allEmpty && len(data) >= 2 {
		return KindList
	}
	return KindMap
}

func isMeta(p Pair) bool {
	if len(p.Key) >= len(CommentPrefix) && p.Key[:len(CommentPrefix)] == CommentPrefix {
		return true
	}
	return p.Key == "" && p.Val.isEmptyData()
}

// isEmptyData reports whether n has no data pairs. A nil node counts as
// empty.
func (n *Node) isEmptyData() bool {
	if n == nil {
		return true
	}
	for _, p := range n.Pairs {
		if !isMeta(p) {
			return false
		}
	}
	return true
}

// allChildrenEmpty reports whether every data pair of n has an empty
// child.
func (n *Node) allChildrenEmpty() bool {
	if n == nil {
		return true
	}
	for _, p := range n.Pairs {
		if isMeta(p) {
			continue
		}
		if !p.Val.isEmptyData() {
			return false
		}
	}
	return true
}
