package ir

// CommentPrefix marks a key as a comment. A pair whose key begins with
// this prefix carries commentary rather than data; accessors skip it and
// printers reproduce it verbatim.
const CommentPrefix = "/="

// Entry is one flat key/value pair from a CCL document, before hierarchy
// is built. Keys and values are stored exactly as parsed: the value of a
// nested section keeps its (relative) indentation and newlines.
type Entry struct {
	Key   string
	Value string
}

// IsBlank reports whether e stands for a preserved blank line: both key
// and value empty.
func (e Entry) IsBlank() bool {
	return e.Key == "" && e.Value == ""
}

// IsComment reports whether e is a comment entry.
func (e Entry) IsComment() bool {
	return len(e.Key) >= len(CommentPrefix) && e.Key[:len(CommentPrefix)] == CommentPrefix
}

// EntriesEqual reports whether two entry sequences are equal element-wise.
// This is the equality under which the flat round-trip law holds.
func EntriesEqual(a, b []Entry) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
