package value

import (
	"fmt"
	"iter"

	"github.com/goccy/go-yaml"
)

// mapSliceView adapts goccy yaml.MapSlice, the ordered mapping produced
// by decoding YAML with yaml.UseOrderedMap. Unlike native Go maps it
// preserves insertion order, so Items reflects document order and Set of
// a new key appends. Non-string keys are addressed by their printed form.
type mapSliceView struct {
	s yaml.MapSlice
}

func keyString(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	return fmt.Sprint(k)
}

func (v *mapSliceView) Kind() Kind  { return Mapping }
func (v *mapSliceView) Unwrap() any { return v.s }
func (v *mapSliceView) Len() int    { return len(v.s) }

func (v *mapSliceView) Get(key string) (View, bool) {
	for i := range v.s {
		if keyString(v.s[i].Key) == key {
			return Of(v.s[i].Value), true
		}
	}
	return nil, false
}

func (v *mapSliceView) Set(key string, val any) {
	for i := range v.s {
		if keyString(v.s[i].Key) == key {
			v.s[i].Value = val
			return
		}
	}
	v.s = append(v.s, yaml.MapItem{Key: key, Value: val})
}

func (v *mapSliceView) Delete(key string) bool {
	for i := range v.s {
		if keyString(v.s[i].Key) == key {
			v.s = append(v.s[:i], v.s[i+1:]...)
			return true
		}
	}
	return false
}

func (v *mapSliceView) Items() iter.Seq2[string, View] {
	return func(yield func(string, View) bool) {
		for i := range v.s {
			if !yield(keyString(v.s[i].Key), Of(v.s[i].Value)) {
				return
			}
		}
	}
}
