// Package path defines the step model for addressing locations in nested
// collections, together with a parser for the textual path grammar.
//
// A path is an ordered sequence of steps. Each step selects one member of
// the value reached by the steps before it:
//
//   - "a.b"    → mapping member "a", then its member "b"
//   - "a[0]"   → member "a", then sequence element 0
//   - "a[-1]"  → member "a", then the last sequence element
//   - "a.*"    → member "a", then every member at that level (search only)
//   - "a[*]"   → same, bracket form
//   - "a[1:3]" → member "a", then sequence elements 1 and 2 (search only)
//   - "a.**.c" → member "a", then "c" at any depth below (search only)
//
// Key segments containing one of . [ ] * ' are written single-quoted with
// \' for an embedded quote, e.g. "'f[3]'.x" addresses the literal key
// "f[3]". The empty path addresses the root value itself.
package path

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Step is one unit of a path. Exactly one selector is set: Key for mapping
// members, Index for sequence elements, Wildcard for all members at a
// level, Deep for all members at any depth, Slice for a run of sequence
// elements. Steps are immutable once parsed.
type Step struct {
	Key      *string
	Index    *int
	Wildcard bool
	Deep     bool
	Slice    *Slice
}

// Slice selects a contiguous run of sequence elements. Nil bounds mean
// "from the start" and "to the end"; Step 0 means 1. Negative values count
// from the end, as with Index steps.
type Slice struct {
	Start *int
	Stop  *int
	Step  int
}

// Path is an ordered, possibly empty sequence of steps. The empty path
// denotes the root value.
type Path []Step

func KeyStep(name string) Step {
	return Step{Key: &name}
}

func IndexStep(i int) Step {
	return Step{Index: &i}
}

func WildcardStep() Step {
	return Step{Wildcard: true}
}

func DeepStep() Step {
	return Step{Deep: true}
}

func SliceStep(start, stop *int, step int) Step {
	return Step{Slice: &Slice{Start: start, Stop: stop, Step: step}}
}

// FromParts builds a path from pre-split segments, bypassing the textual
// grammar entirely. Strings become Key steps verbatim (no quoting or
// escaping applies), ints become Index steps, and Step values are taken
// as-is. Useful when key names may contain the delimiter character.
func FromParts(parts ...any) (Path, error) {
	res := make(Path, 0, len(parts))
	for i, part := range parts {
		switch v := part.(type) {
		case string:
			res = append(res, KeyStep(v))
		case int:
			res = append(res, IndexStep(v))
		case Step:
			res = append(res, v)
		default:
			return nil, fmt.Errorf("%w: segment %d has unsupported type %T", ErrSyntax, i, part)
		}
	}
	return res, nil
}

// Concrete reports whether the path is free of wildcard, deep and slice
// steps, so that it addresses at most one location.
func (p Path) Concrete() bool {
	for i := range p {
		s := &p[i]
		if s.Wildcard || s.Deep || s.Slice != nil {
			return false
		}
	}
	return true
}

// String renders the canonical textual form of the path. Parsing the
// result yields an identical path.
func (p Path) String() string {
	buf := bytes.NewBuffer(nil)
	for i := range p {
		s := &p[i]
		switch {
		case s.Key != nil:
			if buf.Len() > 0 {
				buf.WriteByte('.')
			}
			writeKey(buf, *s.Key)
		case s.Wildcard:
			if buf.Len() > 0 {
				buf.WriteByte('.')
			}
			buf.WriteByte('*')
		case s.Deep:
			if buf.Len() > 0 {
				buf.WriteByte('.')
			}
			buf.WriteString("**")
		case s.Index != nil:
			fmt.Fprintf(buf, "[%d]", *s.Index)
		case s.Slice != nil:
			buf.WriteByte('[')
			if s.Slice.Start != nil {
				buf.WriteString(strconv.Itoa(*s.Slice.Start))
			}
			buf.WriteByte(':')
			if s.Slice.Stop != nil {
				buf.WriteString(strconv.Itoa(*s.Slice.Stop))
			}
			if s.Slice.Step != 0 && s.Slice.Step != 1 {
				buf.WriteByte(':')
				buf.WriteString(strconv.Itoa(s.Slice.Step))
			}
			buf.WriteByte(']')
		}
	}
	return buf.String()
}

// String renders the canonical form of a single step.
func (s Step) String() string {
	return Path{s}.String()
}

func writeKey(buf *bytes.Buffer, key string) {
	if !quoteKey(key) {
		buf.WriteString(key)
		return
	}
	buf.WriteByte('\'')
	for i := 0; i < len(key); i++ {
		c := key[i]
		if c == '\'' || c == '\\' {
			buf.WriteByte('\\')
		}
		buf.WriteByte(c)
	}
	buf.WriteByte('\'')
}

func quoteKey(key string) bool {
	if key == "" {
		return true
	}
	return strings.ContainsAny(key, ".[]*'\\")
}

// Indices expands the slice against a sequence of length n, mirroring the
// usual extended-slice rules: bounds are normalized against n and clamped,
// so out-of-range bounds select an empty or truncated run rather than
// failing.
func (sl *Slice) Indices(n int) []int {
	step := sl.Step
	if step == 0 {
		step = 1
	}
	var res []int
	if step > 0 {
		start, stop := 0, n
		if sl.Start != nil {
			start = clampBound(*sl.Start, n, 0, n)
		}
		if sl.Stop != nil {
			stop = clampBound(*sl.Stop, n, 0, n)
		}
		for i := start; i < stop; i += step {
			res = append(res, i)
		}
		return res
	}
	start, stop := n-1, -1
	if sl.Start != nil {
		start = clampBound(*sl.Start, n, -1, n-1)
	}
	if sl.Stop != nil {
		stop = clampBound(*sl.Stop, n, -1, n-1)
	}
	for i := start; i > stop; i += step {
		res = append(res, i)
	}
	return res
}

func clampBound(i, n, lo, hi int) int {
	if i < 0 {
		i += n
	}
	if i < lo {
		return lo
	}
	if i > hi {
		return hi
	}
	return i
}
