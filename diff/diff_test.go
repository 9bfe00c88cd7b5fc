package diff

import (
	"reflect"
	"testing"
)

func TestCompare(t *testing.T) {
	from := map[string]any{
		"a": 1,
		"b": "hello",
		"c": []any{1, 2},
		"e": map[string]any{"x": true},
	}
	to := map[string]any{
		"a": 1,
		"b": "hallo",
		"c": []any{1},
		"d": true,
		"e": map[string]any{"x": false},
	}
	changes := Compare(from, to)
	type flat struct {
		path string
		op   Op
	}
	var got []flat
	for i := range changes {
		got = append(got, flat{changes[i].Path.String(), changes[i].Op})
	}
	want := []flat{
		{"b", Modified},
		{"c[1]", Removed},
		{"e.x", Modified},
		{"d", Added},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v want %v", got, want)
	}
}

func TestCompareTextDiff(t *testing.T) {
	changes := Compare(map[string]any{"b": "hello"}, map[string]any{"b": "hallo"})
	if len(changes) != 1 {
		t.Fatalf("got %d changes", len(changes))
	}
	if got, want := changes[0].Text, "h(-e)(+a)llo"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestCompareKindChange(t *testing.T) {
	changes := Compare(map[string]any{"a": []any{1}}, map[string]any{"a": map[string]any{"x": 1}})
	if len(changes) != 1 || changes[0].Op != Modified || changes[0].Path.String() != "a" {
		t.Errorf("got %v", changes)
	}
}

func TestEqual(t *testing.T) {
	a := map[string]any{"a": []any{1, map[string]any{"x": "y"}}}
	b := map[string]any{"a": []any{1, map[string]any{"x": "y"}}}
	if !Equal(a, b) {
		t.Error("not equal")
	}
	if Equal(a, map[string]any{"a": []any{1}}) {
		t.Error("equal")
	}
	if !Equal(nil, nil) {
		t.Error("nil not equal")
	}
}
