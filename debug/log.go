package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ccl-format/go-ccl/encode"
	"github.com/ccl-format/go-ccl/ir"
)

// CCL wraps a node so that %s and %v print its canonical text. Call
// sites formatting a node with %s should pass this wrapper.
type CCL struct{ *ir.Node }

func (c CCL) String() string {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(c.Node, buf); err != nil {
		return fmt.Sprintf("[raw node] %v", c.Node)
	}
	return buf.String()
}

// Logf writes a diagnostic line to stderr, rendering node arguments in
// their canonical text form and maps/slices as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			buf := bytes.NewBuffer(nil)
			if err := encode.Encode(x, buf); err != nil {
				args[i] = fmt.Sprintf("[raw node] %v", x)
				continue
			}
			args[i] = buf.String()
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
