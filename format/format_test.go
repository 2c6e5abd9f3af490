package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"c", CCLFormat},
		{"ccl", CCLFormat},
		{"y", YAMLFormat},
		{"yaml", YAMLFormat},
		{"j", JSONFormat},
		{"json", JSONFormat},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if err != nil {
			t.Fatalf("ParseFormat(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("ParseFormat(toml) err = %v, want ErrBadFormat", err)
	}
}

func TestFormatRoundTrip(t *testing.T) {
	for _, f := range AllFormats() {
		got, err := ParseFormat(f.String())
		if err != nil {
			t.Fatalf("ParseFormat(%v): %v", f, err)
		}
		if got != f {
			t.Errorf("round trip %v -> %v", f, got)
		}
		if f.Suffix() != "."+f.String() {
			t.Errorf("%v suffix = %q", f, f.Suffix())
		}
	}
}

func TestFormatPredicates(t *testing.T) {
	if !CCLFormat.IsCCL() || CCLFormat.IsJSON() || CCLFormat.IsYAML() {
		t.Error("CCLFormat predicates wrong")
	}
	if !JSONFormat.IsJSON() || !YAMLFormat.IsYAML() {
		t.Error("JSON/YAML predicates wrong")
	}
}
