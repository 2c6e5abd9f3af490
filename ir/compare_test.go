package ir

import "testing"

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b *Node
		want int
	}{
		{"empty vs empty", Empty(), Empty(), 0},
		{"empty before scalar", Empty(), FromString("a"), -1},
		{"scalar order", FromString("a"), FromString("b"), -1},
		{"scalar equal", FromString("x"), FromString("x"), 0},
		{"scalar before list", FromString("z"), FromList([]string{"a"}), -1},
		{
			"list element order",
			FromList([]string{"a", "b"}),
			FromList([]string{"a", "c"}),
			-1,
		},
		{
			"shorter list first",
			FromList([]string{"a"}),
			FromList([]string{"a", "b"}),
			-1,
		},
		{
			"map key order",
			FromPairs([]Pair{{Key: "a", Val: FromString("1")}, {Key: "b", Val: FromString("1")}}),
			FromPairs([]Pair{{Key: "a", Val: FromString("1")}, {Key: "c", Val: FromString("1")}}),
			-1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare: got %d, want %d", got, tt.want)
			}
			if got := Compare(tt.b, tt.a); got != -tt.want {
				t.Errorf("Compare reversed: got %d, want %d", got, -tt.want)
			}
		})
	}
}

func TestEqualIgnoresComments(t *testing.T) {
	a := FromPairs([]Pair{
		{Key: "/= a note", Val: Empty()},
		{Key: "name", Val: FromString("Alice")},
		{Key: "age", Val: FromString("30")},
	})
	b := FromPairs([]Pair{
		{Key: "name", Val: FromString("Alice")},
		{Key: "age", Val: FromString("30")},
	})
	if !Equal(a, b) {
		t.Error("comment-stripped form should compare equal")
	}
}

func TestEqualListForms(t *testing.T) {
	bare := FromList([]string{"red", "green"})
	dup := FromPairs([]Pair{
		{Key: "red", Val: Empty()},
		{Key: "green", Val: Empty()},
	})
	if !Equal(bare, dup) {
		t.Error("bare and duplicate-key list forms should compare equal")
	}
}
