// Package diff reports structural differences between two nested values
// as a flat list of per-path changes.
package diff

import (
	"reflect"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/terminal-labs/deep-collection/path"
	"github.com/terminal-labs/deep-collection/value"
)

type Op int

const (
	Modified Op = iota
	Added
	Removed
)

func (o Op) String() string {
	switch o {
	case Modified:
		return "modified"
	case Added:
		return "added"
	case Removed:
		return "removed"
	}
	return "<unknown op>"
}

// Change is one difference between two roots. Path addresses the changed
// member in both; From is absent for Added, To for Removed. For two
// differing string scalars, Text carries a compact character diff with
// deletions in (-...) and insertions in (+...) groups.
type Change struct {
	Path path.Path
	Op   Op
	From any
	To   any
	Text string
}

// Compare walks from and to in lockstep and returns every difference.
// Mapping members are compared by key, sequence members by position;
// kinds disagreeing at a path count as a single modification.
func Compare(from, to any) []Change {
	return compare(value.Of(from), value.Of(to), nil, nil)
}

// Equal reports whether two roots are structurally identical.
func Equal(from, to any) bool {
	return len(Compare(from, to)) == 0
}

func compare(a, b value.View, p path.Path, dst []Change) []Change {
	if a.Kind() != b.Kind() {
		return append(dst, Change{Path: p, Op: Modified, From: a.Unwrap(), To: b.Unwrap()})
	}
	switch av := a.(type) {
	case value.Map:
		bv := b.(value.Map)
		for key, ac := range av.Items() {
			kp := appendStep(p, path.KeyStep(key))
			bc, ok := bv.Get(key)
			if !ok {
				dst = append(dst, Change{Path: kp, Op: Removed, From: ac.Unwrap()})
				continue
			}
			dst = compare(ac, bc, kp, dst)
		}
		for key, bc := range bv.Items() {
			if _, ok := av.Get(key); !ok {
				dst = append(dst, Change{Path: appendStep(p, path.KeyStep(key)), Op: Added, To: bc.Unwrap()})
			}
		}
		return dst
	case value.Seq:
		bv := b.(value.Seq)
		n := min(av.Len(), bv.Len())
		for i := range n {
			ac, _ := av.At(i)
			bc, _ := bv.At(i)
			dst = compare(ac, bc, appendStep(p, path.IndexStep(i)), dst)
		}
		for i := n; i < av.Len(); i++ {
			ac, _ := av.At(i)
			dst = append(dst, Change{Path: appendStep(p, path.IndexStep(i)), Op: Removed, From: ac.Unwrap()})
		}
		for i := n; i < bv.Len(); i++ {
			bc, _ := bv.At(i)
			dst = append(dst, Change{Path: appendStep(p, path.IndexStep(i)), Op: Added, To: bc.Unwrap()})
		}
		return dst
	default:
		af, bf := a.Unwrap(), b.Unwrap()
		if reflect.DeepEqual(af, bf) {
			return dst
		}
		ch := Change{Path: p, Op: Modified, From: af, To: bf}
		if as, ok := af.(string); ok {
			if bs, ok := bf.(string); ok {
				ch.Text = textDiff(as, bs)
			}
		}
		return append(dst, ch)
	}
}

func textDiff(from, to string) string {
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := diffCfg.DiffMain(from, to, doMultiLine)
	buf := strings.Builder{}
	for i := range diffs {
		d := &diffs[i]
		switch d.Type {
		case diffpatch.DiffInsert:
			buf.WriteString("(+")
			buf.WriteString(d.Text)
			buf.WriteByte(')')
		case diffpatch.DiffDelete:
			buf.WriteString("(-")
			buf.WriteString(d.Text)
			buf.WriteByte(')')
		case diffpatch.DiffEqual:
			buf.WriteString(d.Text)
		}
	}
	return buf.String()
}

func appendStep(p path.Path, s path.Step) path.Path {
	res := make(path.Path, len(p)+1)
	copy(res, p)
	res[len(p)] = s
	return res
}
