package gomap

import (
	"encoding"
	"fmt"
	"reflect"
	"sort"
	"strconv"

	"github.com/ccl-format/go-ccl/ir"
)

// ToIR converts a Go value to a document node. Strings and other
// primitives become scalar leaves, slices become list nodes, maps and
// structs become keyed nodes. A nil pointer, map or slice inside a struct
// is omitted by the struct encoder rather than reaching here.
func ToIR(v any, opts ...MapOption) (*ir.Node, error) {
	if v == nil {
		return ir.Empty(), nil
	}
	visited := make(map[uintptr]string)
	return toIRValue(reflect.ValueOf(v), "", visited)
}

func toIRValue(val reflect.Value, fieldPath string, visited map[uintptr]string) (*ir.Node, error) {
	if !val.IsValid() {
		return ir.Empty(), nil
	}
	typ := val.Type()
	kind := typ.Kind()

	if kind == reflect.Pointer {
		if val.IsNil() {
			return ir.Empty(), nil
		}
		if tm, ok := val.Interface().(encoding.TextMarshaler); ok {
			return textMarshalNode(tm, fieldPath)
		}
		addr := val.Pointer()
		if prev, seen := visited[addr]; seen {
			return nil, encodeErrf(fieldPath, nil,
				"circular reference: already encoding this value at %s", prev)
		}
		visited[addr] = fieldPath
		node, err := toIRValue(val.Elem(), fieldPath, visited)
		delete(visited, addr)
		return node, err
	}

	if tm, ok := val.Interface().(encoding.TextMarshaler); ok {
		return textMarshalNode(tm, fieldPath)
	}
	if val.CanAddr() {
		if tm, ok := val.Addr().Interface().(encoding.TextMarshaler); ok {
			return textMarshalNode(tm, fieldPath)
		}
	}

	switch kind {
	case reflect.String:
		return ir.FromString(val.String()), nil
	case reflect.Bool:
		return ir.FromString(strconv.FormatBool(val.Bool())), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromString(strconv.FormatInt(val.Int(), 10)), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return ir.FromString(strconv.FormatUint(val.Uint(), 10)), nil
	case reflect.Float32, reflect.Float64:
		bits := 64
		if kind == reflect.Float32 {
			bits = 32
		}
		return ir.FromString(strconv.FormatFloat(val.Float(), 'g', -1, bits)), nil
	case reflect.Slice, reflect.Array:
		return toIRSlice(val, fieldPath, visited)
	case reflect.Map:
		return toIRMap(val, fieldPath, visited)
	case reflect.Struct:
		return toIRStruct(val, fieldPath, visited)
	case reflect.Interface:
		if val.IsNil() {
			return ir.Empty(), nil
		}
		return toIRValue(val.Elem(), fieldPath, visited)
	default:
		return nil, encodeErrf(fieldPath, nil, "unsupported type %s", typ)
	}
}

func textMarshalNode(tm encoding.TextMarshaler, fieldPath string) (*ir.Node, error) {
	text, err := tm.MarshalText()
	if err != nil {
		return nil, encodeErrf(fieldPath, err, "MarshalText: %v", err)
	}
	return ir.FromString(string(text)), nil
}

func toIRSlice(val reflect.Value, fieldPath string, visited map[uintptr]string) (*ir.Node, error) {
	if val.Kind() == reflect.Slice {
		if val.IsNil() {
			return ir.Empty(), nil
		}
		if val.Type().Elem().Kind() == reflect.Uint8 {
			return ir.FromString(string(val.Bytes())), nil
		}
		addr := val.Pointer()
		if prev, seen := visited[addr]; seen {
			return nil, encodeErrf(fieldPath, nil,
				"circular reference: already encoding this value at %s", prev)
		}
		visited[addr] = fieldPath
		defer delete(visited, addr)
	}
	items := make([]*ir.Node, 0, val.Len())
	for i := 0; i < val.Len(); i++ {
		node, err := toIRValue(val.Index(i), elemPath(fieldPath, i), visited)
		if err != nil {
			return nil, err
		}
		items = append(items, node)
	}
	return ir.FromNodes(items), nil
}

// toIRMap encodes a string-keyed map. Keys are sorted so output is
// deterministic; document order is a struct and slice concept, maps have
// none to preserve.
func toIRMap(val reflect.Value, fieldPath string, visited map[uintptr]string) (*ir.Node, error) {
	if val.IsNil() {
		return ir.Empty(), nil
	}
	if val.Type().Key().Kind() != reflect.String {
		return nil, encodeErrf(fieldPath, nil, "map keys must be strings, got %s", val.Type().Key())
	}
	addr := val.Pointer()
	if prev, seen := visited[addr]; seen {
		return nil, encodeErrf(fieldPath, nil,
			"circular reference: already encoding this value at %s", prev)
	}
	visited[addr] = fieldPath
	defer delete(visited, addr)

	keys := make([]string, 0, val.Len())
	iter := val.MapRange()
	for iter.Next() {
		keys = append(keys, iter.Key().String())
	}
	sort.Strings(keys)

	pairs := make([]ir.Pair, 0, len(keys))
	for _, k := range keys {
		mv := val.MapIndex(reflect.ValueOf(k).Convert(val.Type().Key()))
		if isAbsent(mv) {
			continue
		}
		node, err := toIRValue(mv, childPath(fieldPath, k), visited)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, ir.Pair{Key: k, Val: node})
	}
	return ir.FromPairs(pairs), nil
}

// toIRStruct encodes exported fields in declaration order. Nil pointers,
// maps and slices are omitted entirely: absence of a key is how the
// format spells "no value". Embedded structs flatten into the parent.
func toIRStruct(val reflect.Value, fieldPath string, visited map[uintptr]string) (*ir.Node, error) {
	typ := val.Type()
	var pairs []ir.Pair
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		fv := val.Field(i)
		// Embedded structs flatten whether or not their type is
		// exported; the promoted fields decide visibility themselves.
		if field.Anonymous && fv.Kind() == reflect.Struct {
			embedded, err := toIRStruct(fv, fieldPath, visited)
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, embedded.Pairs...)
			continue
		}
		if !field.IsExported() {
			continue
		}
		tag := parseFieldTag(field)
		if tag.Skip {
			continue
		}
		if isAbsent(fv) {
			continue
		}
		if tag.OmitEmpty && fv.IsZero() {
			continue
		}
		node, err := toIRValue(fv, childPath(fieldPath, tag.Name), visited)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, ir.Pair{Key: tag.Name, Val: node})
	}
	return ir.FromPairs(pairs), nil
}

// isAbsent reports whether a field value stands for "no value": a nil
// pointer, map, slice or interface.
func isAbsent(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return v.IsNil()
	}
	return false
}

func childPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}

func elemPath(parent string, i int) string {
	return fmt.Sprintf("%s[%d]", parent, i)
}
