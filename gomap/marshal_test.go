package gomap_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ccl-format/go-ccl/encode"
	"github.com/ccl-format/go-ccl/gomap"
	"github.com/ccl-format/go-ccl/parse"
)

type appConfig struct {
	Name     string   `ccl:"name"`
	Debug    bool     `ccl:"debug"`
	Database server   `ccl:"database"`
	Tags     []string `ccl:"tags"`
	Owner    *string  `ccl:"owner"`
}

func TestMarshal(t *testing.T) {
	cfg := appConfig{
		Name:     "app",
		Debug:    true,
		Database: server{Host: "localhost", Port: 5432},
		Tags:     []string{"a", "b"},
	}
	out, err := gomap.Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	want := strings.Join([]string{
		"name = app",
		"debug = true",
		"database =",
		"  host = localhost",
		"  port = 5432",
		"tags =",
		"  = a",
		"  = b",
		"",
	}, "\n")
	if string(out) != want {
		t.Errorf("Marshal:\n%s\nwant:\n%s", out, want)
	}
}

func TestUnmarshal(t *testing.T) {
	src := strings.Join([]string{
		"name = app",
		"debug = true",
		"database =",
		"  host = localhost",
		"  port = 5432",
		"tags = a",
		"tags = b",
		"",
	}, "\n")
	var got appConfig
	if err := gomap.Unmarshal([]byte(src), &got); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	want := appConfig{
		Name:     "app",
		Debug:    true,
		Database: server{Host: "localhost", Port: 5432},
		Tags:     []string{"a", "b"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

// Marshal then Unmarshal is the identity on values whose nil fields stay
// nil: absent keys decode back to nil.
func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	owner := "ops"
	for _, cfg := range []appConfig{
		{Name: "a", Database: server{Host: "h", Port: 1}},
		{Name: "b", Debug: true, Database: server{Host: "h", Port: 2}, Tags: []string{"x"}},
		{Name: "c", Database: server{Host: "h", Port: 3}, Owner: &owner},
	} {
		out, err := gomap.Marshal(cfg)
		if err != nil {
			t.Fatalf("Marshal(%+v) error: %v", cfg, err)
		}
		var got appConfig
		if err := gomap.Unmarshal(out, &got); err != nil {
			t.Fatalf("Unmarshal(%q) error: %v", out, err)
		}
		if diff := cmp.Diff(cfg, got); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestMarshalDuplicateKeyLists(t *testing.T) {
	out, err := gomap.Marshal(struct {
		Tags []string `ccl:"tags"`
	}{Tags: []string{"a", "b"}}, gomap.DuplicateKeyLists())
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	want := "tags = a\ntags = b\n"
	if string(out) != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestMarshalEncodeOptions(t *testing.T) {
	out, err := gomap.Marshal(struct {
		DB server `ccl:"db"`
	}{DB: server{Host: "h", Port: 1}}, gomap.WithEncodeOptions(encode.Indent(4)))
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if !strings.Contains(string(out), "    host = h") {
		t.Errorf("indent not applied:\n%s", out)
	}
}

func TestUnmarshalParseOptions(t *testing.T) {
	src := "host=db01\nport=5432\n"
	var got server
	if err := gomap.Unmarshal([]byte(src), &got); err == nil {
		t.Error("unspaced delimiters accepted without loose parsing")
	}
	err := gomap.Unmarshal([]byte(src), &got, gomap.WithParseOptions(parse.LooseSpacing()))
	if err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if got.Host != "db01" || got.Port != 5432 {
		t.Errorf("got %+v", got)
	}
}

func TestUnmarshalParseError(t *testing.T) {
	src := "block =\n  \tmixed = 1\n   spaces = 2\n"
	var got map[string]any
	if err := gomap.Unmarshal([]byte(src), &got); err == nil {
		t.Error("mixed indentation accepted")
	}
}

func TestMarshalTextMarshaler(t *testing.T) {
	out, err := gomap.Marshal(struct {
		Level level `ccl:"level"`
	}{Level: levelWarn})
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(out) != "level = warn\n" {
		t.Errorf("got %q", out)
	}
}
