// Package gomap maps between Go values and document nodes.
//
// Marshal and Unmarshal work like their encoding/json counterparts, with
// the `ccl` struct tag controlling field names, "-" skipping a field and
// ",omitempty" dropping zero values. Types implementing
// encoding.TextMarshaler and encoding.TextUnmarshaler encode and decode
// through their text forms.
//
// Nil pointers, maps, slices and interfaces are absent: they produce no
// key when encoding and stay nil when their key is missing. Fields of
// any other type are required when decoding and their absence is a
// DecodeError.
package gomap
