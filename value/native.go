package value

import (
	"iter"
	"maps"
	"slices"
)

// mapView adapts map[string]any. Go maps have no iteration order, so
// Items yields keys sorted; mutation is in place except when the map is
// nil, in which case Set allocates and Unwrap returns the replacement.
type mapView struct {
	m map[string]any
}

func (v *mapView) Kind() Kind  { return Mapping }
func (v *mapView) Unwrap() any { return v.m }
func (v *mapView) Len() int    { return len(v.m) }

func (v *mapView) Get(key string) (View, bool) {
	x, ok := v.m[key]
	if !ok {
		return nil, false
	}
	return Of(x), true
}

func (v *mapView) Set(key string, val any) {
	if v.m == nil {
		v.m = map[string]any{}
	}
	v.m[key] = val
}

func (v *mapView) Delete(key string) bool {
	_, ok := v.m[key]
	if ok {
		delete(v.m, key)
	}
	return ok
}

func (v *mapView) Items() iter.Seq2[string, View] {
	return func(yield func(string, View) bool) {
		for _, key := range slices.Sorted(maps.Keys(v.m)) {
			if !yield(key, Of(v.m[key])) {
				return
			}
		}
	}
}

// seqView adapts []any. Put may reallocate when growing.
type seqView struct {
	s []any
}

func (v *seqView) Kind() Kind  { return Sequence }
func (v *seqView) Unwrap() any { return v.s }
func (v *seqView) Len() int    { return len(v.s) }

func (v *seqView) At(i int) (View, bool) {
	if i < 0 || i >= len(v.s) {
		return nil, false
	}
	return Of(v.s[i]), true
}

func (v *seqView) Put(i int, val any) {
	for i >= len(v.s) {
		v.s = append(v.s, nil)
	}
	v.s[i] = val
}

func (v *seqView) Remove(i int) bool {
	if i < 0 || i >= len(v.s) {
		return false
	}
	v.s = append(v.s[:i], v.s[i+1:]...)
	return true
}

func (v *seqView) Items() iter.Seq2[int, View] {
	return func(yield func(int, View) bool) {
		for i, x := range v.s {
			if !yield(i, Of(x)) {
				return
			}
		}
	}
}
