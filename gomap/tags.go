package gomap

import (
	"reflect"
	"strings"
)

// TagName is the struct tag key read by the bridge.
const TagName = "ccl"

// fieldTag is the parsed form of a `ccl:"..."` struct tag. The first
// element renames the key ("-" skips the field entirely); "omitempty"
// drops zero values when encoding.
type fieldTag struct {
	Name      string
	Skip      bool
	OmitEmpty bool
}

func parseFieldTag(f reflect.StructField) fieldTag {
	tag := f.Tag.Get(TagName)
	if tag == "" {
		return fieldTag{Name: f.Name}
	}
	name, rest, _ := strings.Cut(tag, ",")
	ft := fieldTag{Name: name}
	if name == "-" && rest == "" {
		ft.Skip = true
		return ft
	}
	if name == "" {
		ft.Name = f.Name
	}
	for rest != "" {
		var opt string
		opt, rest, _ = strings.Cut(rest, ",")
		if opt == "omitempty" {
			ft.OmitEmpty = true
		}
	}
	return ft
}
