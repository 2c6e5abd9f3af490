package gomap_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/ccl-format/go-ccl/encode"
	"github.com/ccl-format/go-ccl/gomap"
	"github.com/ccl-format/go-ccl/ir"
)

type server struct {
	Host string `ccl:"host"`
	Port int    `ccl:"port"`
}

func TestToIRStruct(t *testing.T) {
	node, err := gomap.ToIR(server{Host: "db01", Port: 5432})
	if err != nil {
		t.Fatalf("ToIR error: %v", err)
	}
	if node.Kind != ir.KindMap {
		t.Fatalf("got kind %s, want map", node.Kind)
	}
	host, err := node.GetString("host")
	if err != nil || host != "db01" {
		t.Errorf("host = %q, %v", host, err)
	}
	port, err := node.GetInt("port")
	if err != nil || port != 5432 {
		t.Errorf("port = %d, %v", port, err)
	}
}

func TestToIRLeafConvention(t *testing.T) {
	node, err := gomap.ToIR(struct{ Name string }{Name: "Alice"})
	if err != nil {
		t.Fatalf("ToIR error: %v", err)
	}
	if got := encode.MustString(node); got != "Name = Alice\n" {
		t.Errorf("printed %q", got)
	}
}

func TestToIRSliceBecomesList(t *testing.T) {
	node, err := gomap.ToIR(struct {
		Items []string `ccl:"items"`
	}{Items: []string{"a", "b", "c"}})
	if err != nil {
		t.Fatalf("ToIR error: %v", err)
	}
	items, err := node.GetStrings("items", ir.ListOptions{})
	if err != nil {
		t.Fatalf("GetStrings error: %v", err)
	}
	if strings.Join(items, ",") != "a,b,c" {
		t.Errorf("items = %v", items)
	}
}

func TestToIRNilFieldsOmitted(t *testing.T) {
	type opt struct {
		Name  string  `ccl:"name"`
		Alias *string `ccl:"alias"`
		Tags  []string
		Extra map[string]string
	}
	node, err := gomap.ToIR(opt{Name: "x"})
	if err != nil {
		t.Fatalf("ToIR error: %v", err)
	}
	if node.Len() != 1 {
		t.Fatalf("got %d pairs, want 1: %v", node.Len(), node.Keys())
	}
	if node.Has("alias") || node.Has("Tags") || node.Has("Extra") {
		t.Errorf("nil fields present: %v", node.Keys())
	}
}

func TestToIROmitEmpty(t *testing.T) {
	type cfg struct {
		Name  string `ccl:"name"`
		Count int    `ccl:"count,omitempty"`
	}
	node, err := gomap.ToIR(cfg{Name: "x"})
	if err != nil {
		t.Fatalf("ToIR error: %v", err)
	}
	if node.Has("count") {
		t.Error("zero count should be omitted")
	}
	node, err = gomap.ToIR(cfg{Name: "x", Count: 3})
	if err != nil {
		t.Fatalf("ToIR error: %v", err)
	}
	if n, _ := node.GetInt("count"); n != 3 {
		t.Errorf("count = %d", n)
	}
}

func TestToIRSkipTag(t *testing.T) {
	node, err := gomap.ToIR(struct {
		Secret string `ccl:"-"`
		Public string `ccl:"public"`
	}{Secret: "hush", Public: "ok"})
	if err != nil {
		t.Fatalf("ToIR error: %v", err)
	}
	if node.Has("Secret") || node.Has("-") {
		t.Error("skipped field encoded")
	}
}

func TestToIRMapSortedKeys(t *testing.T) {
	node, err := gomap.ToIR(map[string]int{"b": 2, "a": 1, "c": 3})
	if err != nil {
		t.Fatalf("ToIR error: %v", err)
	}
	keys := node.Keys()
	if strings.Join(keys, ",") != "a,b,c" {
		t.Errorf("keys = %v", keys)
	}
}

func TestToIREmbeddedFlattens(t *testing.T) {
	type base struct {
		ID int `ccl:"id"`
	}
	type doc struct {
		base
		Name string `ccl:"name"`
	}
	node, err := gomap.ToIR(doc{base: base{ID: 7}, Name: "n"})
	if err != nil {
		t.Fatalf("ToIR error: %v", err)
	}
	if id, _ := node.GetInt("id"); id != 7 {
		t.Errorf("id = %d", id)
	}
}

func TestToIRCycle(t *testing.T) {
	type ring struct {
		Next *ring `ccl:"next"`
	}
	r := &ring{}
	r.Next = r
	_, err := gomap.ToIR(r)
	var ee *gomap.EncodeError
	if !errors.As(err, &ee) {
		t.Fatalf("got %v, want EncodeError", err)
	}
	if !strings.Contains(ee.Message, "circular") {
		t.Errorf("message = %q", ee.Message)
	}
}

func TestToIRBytesAsText(t *testing.T) {
	node, err := gomap.ToIR(struct {
		Data []byte `ccl:"data"`
	}{Data: []byte("raw text")})
	if err != nil {
		t.Fatalf("ToIR error: %v", err)
	}
	if s, _ := node.GetString("data"); s != "raw text" {
		t.Errorf("data = %q", s)
	}
}
