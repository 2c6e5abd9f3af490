package gomap

import (
	"encoding"
	"errors"
	"math"
	"reflect"
	"strconv"

	"github.com/ccl-format/go-ccl/ir"
)

// FromIR maps a document node onto v, which must be a non-nil pointer.
// Shape mismatches, malformed literals, unknown enum labels and missing
// required fields all surface as DecodeError with the offending field
// path.
func FromIR(node *ir.Node, v any, opts ...UnmapOption) error {
	cfg := newUnmapConfig(opts)
	rv := reflect.ValueOf(v)
	if v == nil || rv.Kind() != reflect.Pointer || rv.IsNil() {
		return &DecodeError{Message: "destination must be a non-nil pointer"}
	}
	return fromIRValue(node, rv.Elem(), "", cfg)
}

func fromIRValue(node *ir.Node, val reflect.Value, fieldPath string, cfg *unmapConfig) error {
	typ := val.Type()
	kind := typ.Kind()

	if kind == reflect.Pointer {
		if val.IsNil() {
			val.Set(reflect.New(typ.Elem()))
		}
		return fromIRValue(node, val.Elem(), fieldPath, cfg)
	}

	if tu := textUnmarshaler(val); tu != nil {
		s, err := scalarText(node)
		if err != nil {
			return decodeErrf(fieldPath, err, "%v", err)
		}
		if err := tu.UnmarshalText([]byte(s)); err != nil {
			return decodeErrf(fieldPath, err, "cannot decode %q into %s: %v", s, typ, err)
		}
		return nil
	}

	switch kind {
	case reflect.String:
		s, err := scalarText(node)
		if err != nil {
			return decodeErrf(fieldPath, err, "%v", err)
		}
		val.SetString(s)
		return nil
	case reflect.Bool:
		b, err := node.AsBool(cfg.boolOpts)
		if err != nil {
			return decodeErrf(fieldPath, err, "%v", err)
		}
		val.SetBool(b)
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := node.AsInt()
		if err != nil {
			return decodeErrf(fieldPath, err, "%v", err)
		}
		if val.OverflowInt(n) {
			return decodeErrf(fieldPath, nil, "%d overflows %s", n, typ)
		}
		val.SetInt(n)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := node.AsUint()
		if err != nil {
			return decodeErrf(fieldPath, err, "%v", err)
		}
		if val.OverflowUint(n) {
			return decodeErrf(fieldPath, nil, "%d overflows %s", n, typ)
		}
		val.SetUint(n)
		return nil
	case reflect.Float32, reflect.Float64:
		f, err := node.AsFloat()
		if err != nil {
			return decodeErrf(fieldPath, err, "%v", err)
		}
		if kind == reflect.Float32 && !math.IsInf(f, 0) && math.Abs(f) > math.MaxFloat32 {
			return decodeErrf(fieldPath, nil, "%g overflows float32", f)
		}
		val.SetFloat(f)
		return nil
	case reflect.Slice:
		return fromIRSlice(node, val, fieldPath, cfg)
	case reflect.Array:
		return fromIRArray(node, val, fieldPath, cfg)
	case reflect.Map:
		return fromIRMap(node, val, fieldPath, cfg)
	case reflect.Struct:
		return fromIRStruct(node, val, fieldPath, cfg)
	case reflect.Interface:
		if typ.NumMethod() != 0 {
			return decodeErrf(fieldPath, nil, "unsupported type %s", typ)
		}
		out := anyValue(node, cfg)
		val.Set(reflect.ValueOf(&out).Elem())
		return nil
	default:
		return decodeErrf(fieldPath, nil, "unsupported type %s", typ)
	}
}

// scalarText reads a node as scalar text, with an empty node reading as
// the empty string ("key =" and an absent text are the same thing).
func scalarText(node *ir.Node) (string, error) {
	if node.IsEmpty() {
		return "", nil
	}
	return node.AsString()
}

func textUnmarshaler(val reflect.Value) encoding.TextUnmarshaler {
	if val.CanAddr() {
		if tu, ok := val.Addr().Interface().(encoding.TextUnmarshaler); ok {
			return tu
		}
	}
	return nil
}

func fromIRSlice(node *ir.Node, val reflect.Value, fieldPath string, cfg *unmapConfig) error {
	if val.Type().Elem().Kind() == reflect.Uint8 {
		s, err := scalarText(node)
		if err != nil {
			return decodeErrf(fieldPath, err, "%v", err)
		}
		val.SetBytes([]byte(s))
		return nil
	}
	items, err := node.AsList(cfg.listOpts)
	if err != nil {
		return decodeErrf(fieldPath, err, "%v", err)
	}
	out := reflect.MakeSlice(val.Type(), len(items), len(items))
	for i, item := range items {
		if err := fromIRValue(item, out.Index(i), elemPath(fieldPath, i), cfg); err != nil {
			return err
		}
	}
	val.Set(out)
	return nil
}

func fromIRArray(node *ir.Node, val reflect.Value, fieldPath string, cfg *unmapConfig) error {
	items, err := node.AsList(cfg.listOpts)
	if err != nil {
		return decodeErrf(fieldPath, err, "%v", err)
	}
	if len(items) != val.Len() {
		return decodeErrf(fieldPath, nil, "list has %d items, array wants %d", len(items), val.Len())
	}
	for i, item := range items {
		if err := fromIRValue(item, val.Index(i), elemPath(fieldPath, i), cfg); err != nil {
			return err
		}
	}
	return nil
}

// fromIRMap decodes keyed pairs into a string-keyed map. Repeated keys
// decode through the merged view, so "port = 80 / port = 443" lands in a
// map[string][]int as both values.
func fromIRMap(node *ir.Node, val reflect.Value, fieldPath string, cfg *unmapConfig) error {
	keyType := val.Type().Key()
	if keyType.Kind() != reflect.String {
		return decodeErrf(fieldPath, nil, "map keys must be strings, got %s", keyType)
	}
	if node.IsEmpty() {
		val.Set(reflect.MakeMap(val.Type()))
		return nil
	}
	if node.Kind != ir.KindMap && node.Kind != ir.KindList {
		return decodeErrf(fieldPath, nil, "expected keyed pairs, got %s", node.Kind)
	}
	out := reflect.MakeMapWithSize(val.Type(), node.Len())
	seen := map[string]bool{}
	for _, k := range node.Keys() {
		if seen[k] {
			continue
		}
		seen[k] = true
		child, err := node.Get(k)
		if err != nil {
			return decodeErrf(fieldPath, err, "%v", err)
		}
		ev := reflect.New(val.Type().Elem()).Elem()
		if err := fromIRValue(child, ev, childPath(fieldPath, k), cfg); err != nil {
			return err
		}
		out.SetMapIndex(reflect.ValueOf(k).Convert(keyType), ev)
	}
	val.Set(out)
	return nil
}

// fromIRStruct decodes declared fields by key lookup. An absent key is
// fine for pointer, slice, map and interface fields, which stay nil;
// other fields are required. Embedded structs search the same node.
func fromIRStruct(node *ir.Node, val reflect.Value, fieldPath string, cfg *unmapConfig) error {
	if node != nil && node.Kind == ir.KindScalar {
		return decodeErrf(fieldPath, nil, "expected keyed pairs, got scalar")
	}
	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		fv := val.Field(i)
		// Embedded structs search the same node even when their type
		// is unexported; the promoted fields are still settable.
		if field.Anonymous && fv.Kind() == reflect.Struct {
			if err := fromIRStruct(node, fv, fieldPath, cfg); err != nil {
				return err
			}
			continue
		}
		if !field.IsExported() {
			continue
		}
		tag := parseFieldTag(field)
		if tag.Skip {
			continue
		}
		path := childPath(fieldPath, tag.Name)
		child, err := node.Get(tag.Name)
		if err != nil {
			var nf *ir.NotFoundError
			if errors.As(err, &nf) {
				if optionalField(fv) {
					continue
				}
				return decodeErrf(path, err, "missing required field %q", tag.Name)
			}
			return decodeErrf(path, err, "%v", err)
		}
		if err := fromIRValue(child, fv, path, cfg); err != nil {
			return err
		}
	}
	return nil
}

func optionalField(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
		return true
	}
	return false
}

// anyValue maps a node to the natural untyped Go value: scalar text
// (numbers and bools read as what they look like), []any for lists,
// map[string]any for keyed pairs, nil for empty.
func anyValue(node *ir.Node, cfg *unmapConfig) any {
	if node == nil {
		return nil
	}
	switch node.Kind {
	case ir.KindEmpty:
		return nil
	case ir.KindScalar:
		s, _ := node.Scalar()
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
		if b, err := node.AsBool(cfg.boolOpts); err == nil {
			return b
		}
		return s
	case ir.KindList:
		items := node.Items()
		out := make([]any, len(items))
		for i, it := range items {
			out[i] = anyValue(it, cfg)
		}
		return out
	default:
		out := make(map[string]any, node.Len())
		for _, k := range node.Keys() {
			if _, ok := out[k]; ok {
				continue
			}
			child, err := node.Get(k)
			if err != nil {
				continue
			}
			out[k] = anyValue(child, cfg)
		}
		return out
	}
}
