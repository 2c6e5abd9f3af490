package gomap_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ccl-format/go-ccl/gomap"
	"github.com/ccl-format/go-ccl/ir"
	"github.com/ccl-format/go-ccl/parse"
)

func mustLoad(t *testing.T, src string) *ir.Node {
	t.Helper()
	n, err := parse.Load(src)
	if err != nil {
		t.Fatalf("Load(%q) error: %v", src, err)
	}
	return n
}

func TestFromIRStruct(t *testing.T) {
	src := "host = db01\nport = 5432\n"
	var s server
	if err := gomap.FromIR(mustLoad(t, src), &s); err != nil {
		t.Fatalf("FromIR error: %v", err)
	}
	if s.Host != "db01" || s.Port != 5432 {
		t.Errorf("got %+v", s)
	}
}

func TestFromIRNested(t *testing.T) {
	src := strings.Join([]string{
		"name = app",
		"database =",
		"  host = localhost",
		"  port = 5432",
		"",
	}, "\n")
	var cfg struct {
		Name     string `ccl:"name"`
		Database server `ccl:"database"`
	}
	if err := gomap.FromIR(mustLoad(t, src), &cfg); err != nil {
		t.Fatalf("FromIR error: %v", err)
	}
	if cfg.Name != "app" || cfg.Database.Host != "localhost" || cfg.Database.Port != 5432 {
		t.Errorf("got %+v", cfg)
	}
}

// Both list spellings decode to the same slice.
func TestFromIRListForms(t *testing.T) {
	bare := "items =\n  = a\n  = b\n  = c\n"
	dup := "items = a\nitems = b\nitems = c\n"
	for _, src := range []string{bare, dup} {
		var got struct {
			Items []string `ccl:"items"`
		}
		if err := gomap.FromIR(mustLoad(t, src), &got); err != nil {
			t.Fatalf("FromIR(%q) error: %v", src, err)
		}
		if diff := cmp.Diff([]string{"a", "b", "c"}, got.Items); diff != "" {
			t.Errorf("FromIR(%q) items mismatch (-want +got):\n%s", src, diff)
		}
	}
}

func TestFromIRListOfStructs(t *testing.T) {
	src := strings.Join([]string{
		"servers =",
		"  =",
		"    host = a",
		"    port = 1",
		"  =",
		"    host = b",
		"    port = 2",
		"",
	}, "\n")
	var got struct {
		Servers []server `ccl:"servers"`
	}
	if err := gomap.FromIR(mustLoad(t, src), &got); err != nil {
		t.Fatalf("FromIR error: %v", err)
	}
	want := []server{{Host: "a", Port: 1}, {Host: "b", Port: 2}}
	if diff := cmp.Diff(want, got.Servers); diff != "" {
		t.Errorf("servers mismatch (-want +got):\n%s", diff)
	}
}

func TestFromIROptionalAbsent(t *testing.T) {
	var got struct {
		Name  string  `ccl:"name"`
		Alias *string `ccl:"alias"`
		Tags  []string
	}
	if err := gomap.FromIR(mustLoad(t, "name = x\n"), &got); err != nil {
		t.Fatalf("FromIR error: %v", err)
	}
	if got.Alias != nil || got.Tags != nil {
		t.Errorf("absent fields non-nil: %+v", got)
	}
}

func TestFromIRMissingRequired(t *testing.T) {
	var got struct {
		Name string `ccl:"name"`
		Port int    `ccl:"port"`
	}
	err := gomap.FromIR(mustLoad(t, "name = x\n"), &got)
	var de *gomap.DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("got %v, want DecodeError", err)
	}
	if de.FieldPath != "port" || !strings.Contains(de.Message, "missing required field") {
		t.Errorf("got path %q message %q", de.FieldPath, de.Message)
	}
}

func TestFromIRBools(t *testing.T) {
	src := "strict = true\nloose = Yes\n"
	var strict struct {
		Strict bool `ccl:"strict"`
		Loose  bool `ccl:"loose"`
	}
	if err := gomap.FromIR(mustLoad(t, src), &strict); err == nil {
		t.Error("strict decode accepted Yes")
	}
	if err := gomap.FromIR(mustLoad(t, src), &strict, gomap.LenientBools()); err != nil {
		t.Fatalf("lenient decode error: %v", err)
	}
	if !strict.Strict || !strict.Loose {
		t.Errorf("got %+v", strict)
	}
}

func TestFromIRCoerceScalars(t *testing.T) {
	var got struct {
		Items []string `ccl:"items"`
	}
	src := "items = only\n"
	if err := gomap.FromIR(mustLoad(t, src), &got); err == nil {
		t.Error("scalar decoded into slice without coercion")
	}
	if err := gomap.FromIR(mustLoad(t, src), &got, gomap.CoerceScalars()); err != nil {
		t.Fatalf("coerced decode error: %v", err)
	}
	if diff := cmp.Diff([]string{"only"}, got.Items); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
}

type level int

const (
	levelInfo level = iota
	levelWarn
)

func (l level) MarshalText() ([]byte, error) {
	switch l {
	case levelInfo:
		return []byte("info"), nil
	case levelWarn:
		return []byte("warn"), nil
	}
	return nil, errors.New("unknown level")
}

func (l *level) UnmarshalText(text []byte) error {
	switch string(text) {
	case "info":
		*l = levelInfo
	case "warn":
		*l = levelWarn
	default:
		return errors.New("unknown level " + string(text))
	}
	return nil
}

func TestFromIRTextUnmarshaler(t *testing.T) {
	var got struct {
		Level level `ccl:"level"`
	}
	if err := gomap.FromIR(mustLoad(t, "level = warn\n"), &got); err != nil {
		t.Fatalf("FromIR error: %v", err)
	}
	if got.Level != levelWarn {
		t.Errorf("level = %v", got.Level)
	}
	err := gomap.FromIR(mustLoad(t, "level = loud\n"), &got)
	var de *gomap.DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("got %v, want DecodeError", err)
	}
	if de.FieldPath != "level" {
		t.Errorf("path = %q", de.FieldPath)
	}
}

func TestFromIRMapTarget(t *testing.T) {
	src := "a = 1\nb = 2\n"
	var got map[string]int
	if err := gomap.FromIR(mustLoad(t, src), &got); err != nil {
		t.Fatalf("FromIR error: %v", err)
	}
	if diff := cmp.Diff(map[string]int{"a": 1, "b": 2}, got); diff != "" {
		t.Errorf("map mismatch (-want +got):\n%s", diff)
	}
}

func TestFromIRDuplicateKeysIntoMapOfSlices(t *testing.T) {
	src := "port = 80\nport = 443\n"
	var got map[string][]int
	if err := gomap.FromIR(mustLoad(t, src), &got); err != nil {
		t.Fatalf("FromIR error: %v", err)
	}
	if diff := cmp.Diff(map[string][]int{"port": {80, 443}}, got); diff != "" {
		t.Errorf("map mismatch (-want +got):\n%s", diff)
	}
}

func TestFromIRInterface(t *testing.T) {
	src := strings.Join([]string{
		"name = app",
		"port = 8080",
		"debug = true",
		"tags =",
		"  = a",
		"  = b",
		"",
	}, "\n")
	var got map[string]any
	if err := gomap.FromIR(mustLoad(t, src), &got); err != nil {
		t.Fatalf("FromIR error: %v", err)
	}
	want := map[string]any{
		"name":  "app",
		"port":  int64(8080),
		"debug": true,
		"tags":  []any{"a", "b"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestFromIREmbeddedFills(t *testing.T) {
	type meta struct {
		ID int `ccl:"id"`
	}
	var got struct {
		meta
		Name string `ccl:"name"`
	}
	if err := gomap.FromIR(mustLoad(t, "id = 7\nname = n\n"), &got); err != nil {
		t.Fatalf("FromIR error: %v", err)
	}
	if got.ID != 7 || got.Name != "n" {
		t.Errorf("got %+v", got)
	}
}

func TestFromIRErrorPath(t *testing.T) {
	src := "database =\n  host = x\n  port = many\n"
	var got struct {
		Database server `ccl:"database"`
	}
	err := gomap.FromIR(mustLoad(t, src), &got)
	var de *gomap.DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("got %v, want DecodeError", err)
	}
	if de.FieldPath != "database.port" {
		t.Errorf("path = %q", de.FieldPath)
	}
}

func TestFromIRNonPointer(t *testing.T) {
	var s server
	if err := gomap.FromIR(mustLoad(t, "host = x\n"), s); err == nil {
		t.Error("non-pointer destination accepted")
	}
}
