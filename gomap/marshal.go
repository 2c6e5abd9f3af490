package gomap

import (
	"bytes"

	"github.com/ccl-format/go-ccl/debug"
	"github.com/ccl-format/go-ccl/encode"
	"github.com/ccl-format/go-ccl/parse"
)

// Marshal renders v as configuration text.
func Marshal(v any, opts ...MapOption) ([]byte, error) {
	cfg := newMapConfig(opts)
	node, err := ToIR(v, opts...)
	if err != nil {
		return nil, err
	}
	if debug.Gomap() {
		debug.Logf("gomap: marshal %T:\n%s", v, debug.CCL{Node: node})
	}
	var buf bytes.Buffer
	if err := encode.Encode(node, &buf, cfg.encodeOptions...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal parses configuration text and maps it onto v, which must be
// a non-nil pointer.
func Unmarshal(data []byte, v any, opts ...UnmapOption) error {
	cfg := newUnmapConfig(opts)
	node, err := parse.Load(string(data), cfg.parseOptions...)
	if err != nil {
		return err
	}
	if debug.Gomap() {
		debug.Logf("gomap: unmarshal into %T:\n%s", v, debug.CCL{Node: node})
	}
	return FromIR(node, v, opts...)
}
