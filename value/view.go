// Package value is the capability seam between the traversal engine and
// concrete nested-structure representations. A View classifies a value as
// a Mapping, Sequence or Scalar and exposes member access without the
// engine knowing the container type.
//
// Of adapts native Go containers (map[string]any, []any) and goccy
// yaml.MapSlice out of the box. Any type implementing Map or Seq itself is
// used as its own view, so callers can plug custom containers in.
package value

import (
	"iter"

	"github.com/goccy/go-yaml"
)

type Kind int

const (
	Scalar Kind = iota
	Mapping
	Sequence
)

func (k Kind) String() string {
	switch k {
	case Mapping:
		return "Mapping"
	case Sequence:
		return "Sequence"
	case Scalar:
		return "Scalar"
	}
	return "<unknown kind>"
}

// View is the minimal surface every value exposes.
type View interface {
	Kind() Kind
	// Unwrap returns the concrete value behind the view, reflecting any
	// mutation made through it. Mutators may reallocate the underlying
	// container; callers holding a parent must re-store the unwrapped
	// value after mutating a child.
	Unwrap() any
}

// Map is the view of a value whose members are addressed by key.
// Items is restartable and yields members in a deterministic order: the
// container's own order when it has one, sorted key order otherwise.
type Map interface {
	View
	Len() int
	Get(key string) (View, bool)
	Set(key string, v any)
	Delete(key string) bool
	Items() iter.Seq2[string, View]
}

// Seq is the view of a value whose members are addressed by position.
// Indices are non-negative; callers normalize negative indices against
// Len first.
type Seq interface {
	View
	Len() int
	At(i int) (View, bool)
	// Put replaces the element at i, growing the sequence with nulls
	// when i is at or beyond Len.
	Put(i int, v any)
	// Remove deletes the element at i, shifting later elements down.
	Remove(i int) bool
	Items() iter.Seq2[int, View]
}

// Of returns the view of v. Unrecognized types without a Map or Seq
// implementation are scalars; the engine never looks inside them.
func Of(v any) View {
	switch x := v.(type) {
	case Map:
		return x
	case Seq:
		return x
	case map[string]any:
		return &mapView{m: x}
	case yaml.MapSlice:
		return &mapSliceView{s: x}
	case []any:
		return &seqView{s: x}
	default:
		return scalar{v: v}
	}
}

// NewMapping returns an empty native mapping view, used by the engine
// when materializing missing intermediate containers.
func NewMapping() Map {
	return &mapView{m: map[string]any{}}
}

// NewSequence returns an empty native sequence view.
func NewSequence() Seq {
	return &seqView{}
}

type scalar struct {
	v any
}

func (s scalar) Kind() Kind  { return Scalar }
func (s scalar) Unwrap() any { return s.v }
