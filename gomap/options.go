package gomap

import (
	"github.com/ccl-format/go-ccl/encode"
	"github.com/ccl-format/go-ccl/ir"
	"github.com/ccl-format/go-ccl/parse"
)

// MapOption controls the mapping from Go values to document nodes.
type MapOption interface {
	applyMap(*mapConfig)
}

// UnmapOption controls the mapping from document nodes to Go values.
type UnmapOption interface {
	applyUnmap(*unmapConfig)
}

type mapConfig struct {
	encodeOptions []encode.EncodeOption
}

type unmapConfig struct {
	parseOptions []parse.ParseOption
	boolOpts     ir.BoolOptions
	listOpts     ir.ListOptions
}

type mapOptionFunc func(*mapConfig)

func (f mapOptionFunc) applyMap(c *mapConfig) { f(c) }

type unmapOptionFunc func(*unmapConfig)

func (f unmapOptionFunc) applyUnmap(c *unmapConfig) { f(c) }

// WithEncodeOptions passes printer options through Marshal.
func WithEncodeOptions(opts ...encode.EncodeOption) MapOption {
	return mapOptionFunc(func(c *mapConfig) {
		c.encodeOptions = append(c.encodeOptions, opts...)
	})
}

// DuplicateKeyLists prints keyed sequences of primitives as repeated
// "key = item" lines instead of a bare-item block. The two forms load
// back as the same value.
func DuplicateKeyLists() MapOption {
	return mapOptionFunc(func(c *mapConfig) {
		c.encodeOptions = append(c.encodeOptions, encode.DuplicateKeyLists())
	})
}

// WithParseOptions passes dialect options through Unmarshal.
func WithParseOptions(opts ...parse.ParseOption) UnmapOption {
	return unmapOptionFunc(func(c *unmapConfig) {
		c.parseOptions = append(c.parseOptions, opts...)
	})
}

// LenientBools additionally accepts yes/no/on/off literals, case
// insensitively, for bool targets. The default accepts only "true" and
// "false".
func LenientBools() UnmapOption {
	return unmapOptionFunc(func(c *unmapConfig) { c.boolOpts.Lenient = true })
}

// CoerceScalars lets a lone scalar decode into a one-element slice. The
// default rejects scalars where a list is required.
func CoerceScalars() UnmapOption {
	return unmapOptionFunc(func(c *unmapConfig) { c.listOpts.CoerceScalar = true })
}

func newMapConfig(opts []MapOption) *mapConfig {
	c := &mapConfig{}
	for _, o := range opts {
		o.applyMap(c)
	}
	return c
}

func newUnmapConfig(opts []UnmapOption) *unmapConfig {
	c := &unmapConfig{}
	for _, o := range opts {
		o.applyUnmap(c)
	}
	return c
}
