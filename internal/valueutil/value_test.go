package valueutil

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSortedKeysNumericThenLexical(t *testing.T) {
	got := SortedKeys([]string{"10", "b", "2", "a", "010", "1"})
	want := []string{"1", "2", "010", "10", "a", "b"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("SortedKeys mismatch (-want +got):\n%s", diff)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", "abc", "abc"},
		{"number keeps spelling", json.Number("101"), "101"},
		{"bool", true, "true"},
		{"list", []any{"a", json.Number("1")}, `["a",1]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := String(tt.in); got != tt.want {
				t.Errorf("String(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTruthy(t *testing.T) {
	falsy := []any{nil, "", false, json.Number("0"), json.Number("0.0"), []any{}, map[string]any{}}
	for _, v := range falsy {
		if Truthy(v) {
			t.Errorf("expected %#v to be falsy", v)
		}
	}
	truthy := []any{"x", true, json.Number("3"), []any{nil}, map[string]any{"a": nil}}
	for _, v := range truthy {
		if !Truthy(v) {
			t.Errorf("expected %#v to be truthy", v)
		}
	}
}

func TestInt(t *testing.T) {
	if n, ok := Int(json.Number("2")); !ok || n != 2 {
		t.Fatalf("Int(2) = %d, %v", n, ok)
	}
	if n, ok := Int(json.Number("3.0")); !ok || n != 3 {
		t.Fatalf("Int(3.0) = %d, %v", n, ok)
	}
	if _, ok := Int("abc"); ok {
		t.Fatal("expected non-numeric string to fail")
	}
	if _, ok := Int(json.Number("1.5")); ok {
		t.Fatal("expected fractional number to fail")
	}
}

func TestOrderedMarshalKeepsInsertionOrder(t *testing.T) {
	inner := NewOrdered(1)
	inner.Set("z", "<tag>")
	o := NewOrdered(3)
	o.Set("10", json.Number("1"))
	o.Set("2", inner)
	o.Set("10", json.Number("3"))

	data, err := o.MarshalJSON()
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	if want := `{"10":3,"2":{"z":"<tag>"}}`; string(data) != want {
		t.Fatalf("Marshal = %s, want %s", data, want)
	}
	if o.Len() != 2 {
		t.Fatalf("expected 2 members, got %d", o.Len())
	}
}
