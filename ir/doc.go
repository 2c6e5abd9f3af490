// Package ir provides the in-memory representation of CCL documents.
//
// # Overview
//
// CCL ("Categorical Configuration Language") is an indentation-based
// configuration format in which every line is a `key = value` pair and
// nesting, lists and scalars are all encoded structurally. This package
// defines the two representations the rest of the module works with:
//
//   - Entry: one flat, source-faithful (key, value) pair as produced by
//     the entry parser. Order is preserved and duplicate keys are
//     meaningful.
//   - Node: the recursive document tree built from entries. A Node is an
//     ordered multimap: a sequence of (key, child) pairs in which the same
//     key may repeat.
//
// # Structural conventions
//
// There is no separate string variant. A scalar is a node with exactly one
// pair whose child is empty; the pair's key is the scalar text:
//
//	"Alice"  =>  {Alice: {}}
//
// A node denotes a list when all of its (non-comment, non-blank) pairs are
// under the empty key with non-empty children (bare `= item` syntax), when
// it has two or more pairs whose children are all empty (duplicate-key
// syntax), or when its single pair is under the empty key and that child's
// children are all empty. A node whose children all happen to be empty
// (e.g. a flag set) is therefore classified as a list; this ambiguity is
// inherent to the format and is always resolved in favor of the list
// interpretation.
//
// The Kind of a node (Empty, Scalar, List, Map) is computed once at
// construction from these rules; it is a pure function of shape and never
// of caller intent.
//
// # Views
//
// Pairs is the printing view: every pair, duplicates included, in insertion
// order. Get is the access view: the children of all pairs sharing the
// requested key, merged in order into a single node, which is how duplicate
// keys become lists.
//
// # Immutability
//
// Entries and nodes are values constructed once (by the parser, or by the
// gomap encoder) and read thereafter. None of the accessors mutate, so
// concurrent reads need no locking.
package ir
