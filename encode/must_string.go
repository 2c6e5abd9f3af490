package encode

import (
	"bytes"

	"github.com/ccl-format/go-ccl/ir"
)

// String prints node to a string with the given options.
func String(node *ir.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	// bytes.Buffer never returns a write error.
	_ = Encode(node, buf, opts...)
	return buf.String()
}

// MustString is String without options, for tests and debug output.
func MustString(node *ir.Node) string {
	return String(node)
}
