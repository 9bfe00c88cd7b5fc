package deep

import (
	"fmt"

	"github.com/terminal-labs/deep-collection/debug"
	"github.com/terminal-labs/deep-collection/path"
	"github.com/terminal-labs/deep-collection/value"
)

func normIndex(i, n int) (int, bool) {
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, false
	}
	return i, true
}

// member resolves one concrete step against v.
func member(v value.View, s *path.Step) (value.View, error) {
	switch {
	case s.Key != nil:
		m, ok := v.(value.Map)
		if !ok {
			return nil, fmt.Errorf("%w: key %q requires a mapping, got %s", ErrTypeMismatch, *s.Key, v.Kind())
		}
		child, ok := m.Get(*s.Key)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, *s.Key)
		}
		return child, nil
	case s.Index != nil:
		seq, ok := v.(value.Seq)
		if !ok {
			return nil, fmt.Errorf("%w: index %d requires a sequence, got %s", ErrTypeMismatch, *s.Index, v.Kind())
		}
		i, ok := normIndex(*s.Index, seq.Len())
		if !ok {
			return nil, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, *s.Index, seq.Len())
		}
		child, _ := seq.At(i)
		return child, nil
	default:
		return nil, fmt.Errorf("%w: step %q only valid in search", ErrInvalidPathSyntax, s)
	}
}

// assign writes val at step s of v. Indices at or beyond the current
// length grow the sequence when grow is set, and fail otherwise.
func assign(v value.View, s *path.Step, val any, grow bool) error {
	switch {
	case s.Key != nil:
		m, ok := v.(value.Map)
		if !ok {
			return fmt.Errorf("%w: key %q requires a mapping, got %s", ErrTypeMismatch, *s.Key, v.Kind())
		}
		m.Set(*s.Key, val)
		return nil
	case s.Index != nil:
		seq, ok := v.(value.Seq)
		if !ok {
			return fmt.Errorf("%w: index %d requires a sequence, got %s", ErrTypeMismatch, *s.Index, v.Kind())
		}
		i, ok := normIndex(*s.Index, seq.Len())
		if !ok {
			if *s.Index < 0 || !grow {
				return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, *s.Index, seq.Len())
			}
			i = *s.Index
		}
		seq.Put(i, val)
		return nil
	default:
		return fmt.Errorf("%w: step %q only valid in search", ErrInvalidPathSyntax, s)
	}
}

// remove deletes the member at step s of v, reporting whether it was
// present.
func remove(v value.View, s *path.Step) (bool, error) {
	switch {
	case s.Key != nil:
		m, ok := v.(value.Map)
		if !ok {
			return false, fmt.Errorf("%w: key %q requires a mapping, got %s", ErrTypeMismatch, *s.Key, v.Kind())
		}
		return m.Delete(*s.Key), nil
	case s.Index != nil:
		seq, ok := v.(value.Seq)
		if !ok {
			return false, fmt.Errorf("%w: index %d requires a sequence, got %s", ErrTypeMismatch, *s.Index, v.Kind())
		}
		i, ok := normIndex(*s.Index, seq.Len())
		if !ok {
			return false, nil
		}
		return seq.Remove(i), nil
	default:
		return false, fmt.Errorf("%w: step %q only valid in search", ErrInvalidPathSyntax, s)
	}
}

func getPath(root any, p path.Path, cfg *config) (any, error) {
	cur := value.Of(root)
	for i := range p {
		next, err := member(cur, &p[i])
		if err != nil {
			if cfg.hasDefault && absentErr(err) {
				return cfg.def, nil
			}
			return nil, err
		}
		cur = next
	}
	return cur.Unwrap(), nil
}

func setPath(root any, p path.Path, val any, cfg *config) (any, error) {
	if debug.Walk() {
		debug.Logf("set %q\n", p)
	}
	if len(p) == 0 {
		return val, nil
	}
	rootView := value.Of(root)
	if root == nil && cfg.autoCreate {
		if v := emptyFor(&p[0]); v != nil {
			rootView = v
		}
	}
	views := []value.View{rootView}
	// Descend over existing containers, validating each step. split marks
	// the first step whose member is absent; everything below it is
	// materialized detached and attached in one assignment, so a failure
	// anywhere leaves root untouched.
	split := -1
	for i := 0; i < len(p)-1; i++ {
		child, err := member(views[i], &p[i])
		if err == nil {
			views = append(views, child)
			continue
		}
		if !absentErr(err) {
			return nil, err
		}
		if s := &p[i]; s.Index != nil && *s.Index < 0 {
			return nil, err
		}
		if !cfg.autoCreate {
			return nil, fmt.Errorf("%w: missing %q", ErrPathNotCreatable, p[:i+1])
		}
		split = i
		break
	}
	last := len(p) - 1
	if split >= 0 {
		// Build the chain for steps split+1..last bottom up; the step
		// addressing into a container implies its kind.
		child := val
		for j := last; j > split; j-- {
			container := emptyFor(&p[j])
			if container == nil {
				return nil, fmt.Errorf("%w: step %q only valid in search", ErrInvalidPathSyntax, &p[j])
			}
			if err := assign(container, &p[j], child, true); err != nil {
				return nil, err
			}
			child = container.Unwrap()
		}
		if err := assign(views[split], &p[split], child, true); err != nil {
			return nil, err
		}
	} else {
		if err := assign(views[last], &p[last], val, cfg.autoCreate); err != nil {
			return nil, err
		}
	}
	return writeBack(views, p), nil
}

func emptyFor(s *path.Step) value.View {
	switch {
	case s.Key != nil:
		return value.NewMapping()
	case s.Index != nil:
		return value.NewSequence()
	default:
		return nil
	}
}

// writeBack re-stores each walked container into its parent, propagating
// reallocations (sequence growth, lazily allocated maps) up to the root.
// Every step along views has already been validated, so the assignments
// cannot fail.
func writeBack(views []value.View, p path.Path) any {
	for i := len(views) - 1; i > 0; i-- {
		assign(views[i-1], &p[i-1], views[i].Unwrap(), true)
	}
	return views[0].Unwrap()
}

func deletePath(root any, p path.Path, cfg *config) (any, error) {
	if debug.Walk() {
		debug.Logf("delete %q strict=%t\n", p, cfg.strict)
	}
	if len(p) == 0 {
		if !cfg.strict {
			return root, nil
		}
		return nil, fmt.Errorf("%w: empty path has no member to delete", ErrKeyNotFound)
	}
	views := []value.View{value.Of(root)}
	for i := 0; i < len(p)-1; i++ {
		child, err := member(views[i], &p[i])
		if err != nil {
			if absentErr(err) && !cfg.strict {
				return root, nil
			}
			return nil, err
		}
		views = append(views, child)
	}
	last := &p[len(p)-1]
	removed, err := remove(views[len(views)-1], last)
	if err != nil {
		return nil, err
	}
	if !removed {
		if !cfg.strict {
			return root, nil
		}
		if last.Index != nil {
			return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, *last.Index)
		}
		return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, *last.Key)
	}
	return writeBack(views, p), nil
}
