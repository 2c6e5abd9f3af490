package ir

import "strings"

// Pair is one ordered (key, child) association of a Node.
type Pair struct {
	Key string
	Val *Node
}

// Node is a CCL document tree: an ordered multimap of keys to child nodes.
// Duplicate keys are preserved in Pairs and merged on access via Get. Kind
// is computed from the pairs at construction and must be treated as
// read-only, as must Pairs.
type Node struct {
	Kind  Kind
	Pairs []Pair
}

var emptyNode = &Node{Kind: KindEmpty}

// Empty returns the empty node.
func Empty() *Node {
	return emptyNode
}

// FromPairs builds a node from pairs, classifying its kind. The slice is
// retained; callers must not mutate it afterwards.
func FromPairs(pairs []Pair) *Node {
	if len(pairs) == 0 {
		return emptyNode
	}
	return &Node{Kind: classify(pairs), Pairs: pairs}
}

// FromString builds the scalar node for s, following the convention that a
// scalar is a single pair of the text to the empty node.
func FromString(s string) *Node {
	return &Node{Kind: KindScalar, Pairs: []Pair{{Key: s, Val: emptyNode}}}
}

// FromList builds a list node with the given scalar items, using the bare
// item form: each item becomes an empty-key pair to the item's scalar node.
func FromList(items []string) *Node {
	if len(items) == 0 {
		return emptyNode
	}
	pairs := make([]Pair, len(items))
	for i, it := range items {
		pairs[i] = Pair{Key: "", Val: FromString(it)}
	}
	return &Node{Kind: KindList, Pairs: pairs}
}

// FromNodes builds a list node from already-constructed item nodes.
func FromNodes(items []*Node) *Node {
	if len(items) == 0 {
		return emptyNode
	}
	pairs := make([]Pair, len(items))
	for i, it := range items {
		pairs[i] = Pair{Key: "", Val: it}
	}
	return FromPairs(pairs)
}

// FromMap builds a map node from keyed pairs, preserving the given order.
func FromMap(pairs []Pair) *Node {
	return FromPairs(pairs)
}

// Len returns the number of data pairs, excluding comments and preserved
// blank lines.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	c := 0
	for _, p := range n.Pairs {
		if !isMeta(p) {
			c++
		}
	}
	return c
}

// IsEmpty reports whether n has no data pairs.
func (n *Node) IsEmpty() bool {
	return n == nil || (n.Kind != KindScalar && n.isEmptyData())
}

// Get returns the merged child for key. When the key occurs once, its
// child is returned directly. When it occurs multiple times, the children's
// pairs are concatenated in document order into a fresh node, which is how
// repeated keys read as lists. A missing key returns a NotFoundError.
func (n *Node) Get(key string) (*Node, error) {
	if n == nil {
		return nil, &NotFoundError{Key: key}
	}
	var found []*Node
	for _, p := range n.Pairs {
		if isMeta(p) {
			continue
		}
		if p.Key == key {
			found = append(found, p.Val)
		}
	}
	switch len(found) {
	case 0:
		return nil, &NotFoundError{Key: key}
	case 1:
		return found[0], nil
	}
	var merged []Pair
	for _, c := range found {
		if c == nil {
			continue
		}
		if c.Kind == KindScalar || c.isEmptyData() {
			// A scalar occurrence contributes itself as one item.
			merged = append(merged, Pair{Key: "", Val: c})
			continue
		}
		merged = append(merged, c.Pairs...)
	}
	return FromPairs(merged), nil
}

// GetPath applies Get along each key in turn.
func (n *Node) GetPath(keys ...string) (*Node, error) {
	cur := n
	for i, k := range keys {
		c, err := cur.Get(k)
		if err != nil {
			if nf, ok := err.(*NotFoundError); ok {
				nf.Key = strings.Join(keys[:i+1], ".")
			}
			return nil, err
		}
		cur = c
	}
	return cur, nil
}

// Has reports whether key occurs in n.
func (n *Node) Has(key string) bool {
	_, err := n.Get(key)
	return err == nil
}

// Keys returns the data keys of n in document order, duplicates included.
func (n *Node) Keys() []string {
	if n == nil {
		return nil
	}
	var ks []string
	for _, p := range n.Pairs {
		if isMeta(p) {
			continue
		}
		ks = append(ks, p.Key)
	}
	return ks
}

// Items returns the elements of a list node. Bare items contribute their
// empty-key children; duplicate keys with empty children contribute the
// keys, read as scalars. Non-list callers should use AsList, which
// shape-checks first.
func (n *Node) Items() []*Node {
	if n == nil {
		return nil
	}
	var items []*Node
	for _, p := range n.Pairs {
		items = append(items, p.Items()...)
	}
	return items
}

// IsComment reports whether p is a comment pseudo-pair.
func (p Pair) IsComment() bool {
	return len(p.Key) >= len(CommentPrefix) && p.Key[:len(CommentPrefix)] == CommentPrefix
}

// IsBlank reports whether p is a preserved blank line.
func (p Pair) IsBlank() bool {
	return p.Key == "" && p.Val.isEmptyData()
}

// Items returns the list elements one pair contributes: nothing for
// comments and blank lines, the child for a bare item, the key as a scalar
// for a duplicate-key item, and the wrapped keys for the single empty-key
// form.
func (p Pair) Items() []*Node {
	if isMeta(p) {
		return nil
	}
	switch {
	case p.Key == "" && p.Val.allChildrenEmpty() && p.Val.Len() > 1:
		items := make([]*Node, 0, p.Val.Len())
		for _, k := range p.Val.Keys() {
			items = append(items, FromString(k))
		}
		return items
	case p.Key == "":
		return []*Node{p.Val}
	case p.Val.isEmptyData():
		return []*Node{FromString(p.Key)}
	default:
		return []*Node{FromPairs([]Pair{p})}
	}
}

// Scalar returns the scalar text of n. The second result is false when n
// is not a scalar.
func (n *Node) Scalar() (string, bool) {
	if n == nil || n.Kind != KindScalar {
		return "", false
	}
	// A constructed scalar holds its text in its only pair, even when the
	// text itself happens to start with the comment prefix.
	if len(n.Pairs) == 1 {
		return n.Pairs[0].Key, true
	}
	for _, p := range n.Pairs {
		if isMeta(p) {
			continue
		}
		return p.Key, true
	}
	return "", true
}

// Visit walks n depth-first, calling fn with each node and the pair index
// path from the root. Returning false from fn prunes the subtree.
func (n *Node) Visit(fn func(path []int, n *Node) bool) {
	var walk func(path []int, n *Node)
	walk = func(path []int, n *Node) {
		if n == nil || !fn(path, n) {
			return
		}
		for i, p := range n.Pairs {
			walk(append(path, i), p.Val)
		}
	}
	walk(nil, n)
}
