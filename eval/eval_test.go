package eval

import (
	"reflect"
	"strings"
	"testing"

	deep "github.com/terminal-labs/deep-collection"
)

func root() any {
	return map[string]any{
		"a": map[string]any{"b": 2},
		"l": []any{map[string]any{"x": 1}, map[string]any{"x": 2}},
	}
}

type evalTest struct {
	src  string
	want any
}

var evalTests = []evalTest{
	{src: `get("a.b")`, want: 2},
	{src: `get("a.b") + 1`, want: 3},
	{src: `has("a.b")`, want: true},
	{src: `has("a.c")`, want: false},
	{src: `values("l.*.x")`, want: []any{1, 2}},
	{src: `len(values("l.*.x"))`, want: 2},
	{src: `paths("l.*.x")`, want: []string{"l[0].x", "l[1].x"}},
	{src: `paths("q.*")`, want: []string{}},
	{src: `root.a.b == 2`, want: true},
}

func TestEval(t *testing.T) {
	for i := range evalTests {
		test := &evalTests[i]
		got, err := Eval(test.src, root())
		if err != nil {
			t.Errorf("eval %q: %v", test.src, err)
			continue
		}
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("eval %q: got %v want %v", test.src, got, test.want)
		}
	}
}

func TestEvalErrors(t *testing.T) {
	if _, err := Eval(`get("a.c")`, root()); err == nil || !strings.Contains(err.Error(), deep.ErrKeyNotFound.Error()) {
		t.Errorf("got %v", err)
	}
	if _, err := Eval(`get("a[x]")`, root()); err == nil || !strings.Contains(err.Error(), deep.ErrInvalidPathSyntax.Error()) {
		t.Errorf("got %v", err)
	}
	if _, err := Eval(`nonsense(`, root()); err == nil {
		t.Error("compiled")
	}
}
