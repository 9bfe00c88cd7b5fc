package deep

import (
	"fmt"
	"iter"

	"github.com/terminal-labs/deep-collection/debug"
	"github.com/terminal-labs/deep-collection/path"
	"github.com/terminal-labs/deep-collection/value"
)

// SearchPath is Search over an already parsed pattern.
func SearchPath(root any, p path.Path, opts ...Option) iter.Seq[Match] {
	cfg := newConfig(opts)
	return func(yield func(Match) bool) {
		type item struct {
			v      value.View
			prefix path.Path
			rest   path.Path
			depth  int
		}
		queue := []item{{v: value.Of(root), rest: p}}
		for len(queue) > 0 {
			it := queue[0]
			queue = queue[1:]
			if it.depth > cfg.maxDepth {
				yield(Match{
					Path: it.prefix,
					Err:  fmt.Errorf("%w: expansion at %q exceeds depth %d", ErrCyclicStructure, it.prefix, cfg.maxDepth),
				})
				return
			}
			if len(it.rest) == 0 {
				if debug.Search() {
					debug.Logf("search match at %q\n", it.prefix)
				}
				if !yield(Match{Path: it.prefix, Value: it.v.Unwrap()}) {
					return
				}
				continue
			}
			s := &it.rest[0]
			rest := it.rest[1:]
			switch {
			case s.Key != nil:
				if m, ok := it.v.(value.Map); ok {
					if child, ok := m.Get(*s.Key); ok {
						queue = append(queue, item{child, appendStep(it.prefix, path.KeyStep(*s.Key)), rest, it.depth + 1})
					}
				}
			case s.Index != nil:
				if seq, ok := it.v.(value.Seq); ok {
					if i, ok := normIndex(*s.Index, seq.Len()); ok {
						child, _ := seq.At(i)
						queue = append(queue, item{child, appendStep(it.prefix, path.IndexStep(i)), rest, it.depth + 1})
					}
				}
			case s.Slice != nil:
				if seq, ok := it.v.(value.Seq); ok {
					for _, i := range s.Slice.Indices(seq.Len()) {
						child, _ := seq.At(i)
						queue = append(queue, item{child, appendStep(it.prefix, path.IndexStep(i)), rest, it.depth + 1})
					}
				}
			case s.Wildcard:
				switch v := it.v.(type) {
				case value.Map:
					for key, child := range v.Items() {
						queue = append(queue, item{child, appendStep(it.prefix, path.KeyStep(key)), rest, it.depth + 1})
					}
				case value.Seq:
					for i, child := range v.Items() {
						queue = append(queue, item{child, appendStep(it.prefix, path.IndexStep(i)), rest, it.depth + 1})
					}
				}
			case s.Deep:
				// A deep step matches zero levels here, then every member
				// below with the deep step kept. Self-referential inputs
				// make this descent unbounded; the depth guard above cuts
				// it off.
				queue = append(queue, item{it.v, it.prefix, rest, it.depth})
				switch v := it.v.(type) {
				case value.Map:
					for key, child := range v.Items() {
						queue = append(queue, item{child, appendStep(it.prefix, path.KeyStep(key)), it.rest, it.depth + 1})
					}
				case value.Seq:
					for i, child := range v.Items() {
						queue = append(queue, item{child, appendStep(it.prefix, path.IndexStep(i)), it.rest, it.depth + 1})
					}
				}
			}
		}
	}
}

func appendStep(p path.Path, s path.Step) path.Path {
	res := make(path.Path, len(p)+1)
	copy(res, p)
	res[len(p)] = s
	return res
}
