package value

import (
	"reflect"
	"testing"

	"github.com/goccy/go-yaml"
)

func TestOfKinds(t *testing.T) {
	for _, test := range []struct {
		v    any
		kind Kind
	}{
		{v: nil, kind: Scalar},
		{v: "x", kind: Scalar},
		{v: 3.5, kind: Scalar},
		{v: map[string]any{}, kind: Mapping},
		{v: yaml.MapSlice{}, kind: Mapping},
		{v: []any{}, kind: Sequence},
		{v: []int{1}, kind: Scalar}, // typed slices are opaque leaves
	} {
		if got := Of(test.v).Kind(); got != test.kind {
			t.Errorf("%T: got %s want %s", test.v, got, test.kind)
		}
	}
}

func TestMapViewSortedItems(t *testing.T) {
	v := Of(map[string]any{"b": 1, "c": 2, "a": 3}).(Map)
	var keys []string
	for k := range v.Items() {
		keys = append(keys, k)
	}
	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(keys, want) {
		t.Errorf("got %v want %v", keys, want)
	}
	if _, ok := v.Get("d"); ok {
		t.Error("got absent key")
	}
	v.Set("d", 4)
	if !v.Delete("b") || v.Delete("b") {
		t.Error("delete")
	}
	if got := v.Unwrap().(map[string]any); len(got) != 3 {
		t.Errorf("got %v", got)
	}
}

func TestNilMapAllocatesOnSet(t *testing.T) {
	var m map[string]any
	v := Of(m).(Map)
	v.Set("a", 1)
	got := v.Unwrap().(map[string]any)
	if got["a"] != 1 {
		t.Errorf("got %v", got)
	}
}

func TestSeqViewGrow(t *testing.T) {
	v := Of([]any{1}).(Seq)
	v.Put(3, "z")
	want := []any{1, nil, nil, "z"}
	if got := v.Unwrap(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v want %v", got, want)
	}
	if !v.Remove(1) {
		t.Error("remove")
	}
	if v.Remove(3) {
		t.Error("removed out of range")
	}
	if got := v.Len(); got != 3 {
		t.Errorf("got len %d", got)
	}
}

func TestMapSliceOrder(t *testing.T) {
	var root any
	doc := "b: 1\na: 2\n'k.1': 3\n"
	if err := yaml.UnmarshalWithOptions([]byte(doc), &root, yaml.UseOrderedMap()); err != nil {
		t.Fatal(err)
	}
	v, ok := Of(root).(Map)
	if !ok {
		t.Fatalf("got %T", Of(root))
	}
	var keys []string
	for k := range v.Items() {
		keys = append(keys, k)
	}
	if want := []string{"b", "a", "k.1"}; !reflect.DeepEqual(keys, want) {
		t.Errorf("got %v want %v", keys, want)
	}
	// new keys append, existing keys update in place
	v.Set("z", 4)
	v.Set("b", 5)
	keys = keys[:0]
	for k := range v.Items() {
		keys = append(keys, k)
	}
	if want := []string{"b", "a", "k.1", "z"}; !reflect.DeepEqual(keys, want) {
		t.Errorf("got %v want %v", keys, want)
	}
	if !v.Delete("a") {
		t.Error("delete")
	}
	if v.Len() != 3 {
		t.Errorf("got len %d", v.Len())
	}
}

func TestItemsRestartable(t *testing.T) {
	v := Of([]any{1, 2}).(Seq)
	// a fresh call yields a fresh sequence
	for range 2 {
		var got []any
		for _, item := range v.Items() {
			got = append(got, item.Unwrap())
		}
		if want := []any{1, 2}; !reflect.DeepEqual(got, want) {
			t.Errorf("got %v want %v", got, want)
		}
	}
}
