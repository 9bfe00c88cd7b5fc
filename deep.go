package deep

import (
	"iter"

	"github.com/terminal-labs/deep-collection/path"
)

type config struct {
	def        any
	hasDefault bool
	autoCreate bool
	strict     bool
	maxDepth   int
}

// DefaultMaxDepth bounds search expansion depth; exceeding it surfaces
// ErrCyclicStructure.
const DefaultMaxDepth = 10000

type Option func(*config)

// WithDefault makes Get return v instead of failing when the path is
// absent. It does not mask type mismatches.
func WithDefault(v any) Option {
	return func(c *config) { c.def = v; c.hasDefault = true }
}

// WithAutoCreate controls whether Set materializes missing intermediate
// containers (default true). Disabled, a missing intermediate fails with
// ErrPathNotCreatable.
func WithAutoCreate(v bool) Option {
	return func(c *config) { c.autoCreate = v }
}

// WithStrict controls whether Delete of an absent path fails with
// ErrKeyNotFound (default true) or is an idempotent no-op.
func WithStrict(v bool) Option {
	return func(c *config) { c.strict = v }
}

// WithMaxDepth overrides the search depth guard.
func WithMaxDepth(n int) Option {
	return func(c *config) { c.maxDepth = n }
}

func newConfig(opts []Option) *config {
	cfg := &config{
		autoCreate: true,
		strict:     true,
		maxDepth:   DefaultMaxDepth,
	}
	for _, f := range opts {
		f(cfg)
	}
	return cfg
}

// Get resolves a concrete path against root and returns the value found.
// An absent member fails with ErrKeyNotFound or ErrIndexOutOfRange unless
// WithDefault was given; a step applied to the wrong kind of value fails
// with ErrTypeMismatch.
func Get(root any, p string, opts ...Option) (any, error) {
	pp, err := path.Parse(p)
	if err != nil {
		return nil, err
	}
	return GetPath(root, pp, opts...)
}

// GetPath is Get over an already parsed path.
func GetPath(root any, p path.Path, opts ...Option) (any, error) {
	return getPath(root, p, newConfig(opts))
}

// Set writes v at the location named by a concrete path and returns the
// root, which callers must use in place of the one passed in: mapping
// mutation is in place, but growing a sequence (or starting from a nil
// root) reallocates along the walked chain. Missing
// intermediate containers are materialized unless WithAutoCreate(false)
// is given. No mutation is committed on failure.
func Set(root any, p string, v any, opts ...Option) (any, error) {
	pp, err := path.Parse(p)
	if err != nil {
		return nil, err
	}
	return SetPath(root, pp, v, opts...)
}

// SetPath is Set over an already parsed path.
func SetPath(root any, p path.Path, v any, opts ...Option) (any, error) {
	return setPath(root, p, v, newConfig(opts))
}

// Delete removes the member named by the final step of a concrete path
// and returns the root. Deleting an absent path fails with
// ErrKeyNotFound or ErrIndexOutOfRange unless WithStrict(false) is
// given, which makes it a no-op.
func Delete(root any, p string, opts ...Option) (any, error) {
	pp, err := path.Parse(p)
	if err != nil {
		return nil, err
	}
	return DeletePath(root, pp, opts...)
}

// DeletePath is Delete over an already parsed path.
func DeletePath(root any, p path.Path, opts ...Option) (any, error) {
	return deletePath(root, p, newConfig(opts))
}

// Has reports whether a concrete path resolves against root. Any failure,
// including a malformed path or a type mismatch, reports false.
func Has(root any, p string) bool {
	_, err := Get(root, p)
	return err == nil
}

// Match is one search result: a concrete path and the value found there.
// A non-nil Err (only ErrCyclicStructure) terminates the sequence.
type Match struct {
	Path  path.Path
	Value any
	Err   error
}

// Search expands wildcard, slice and deep steps in pattern breadth-first
// against root and lazily yields every concrete location matched, in
// member order level by level. Absent members never fail a search; the
// branch just yields nothing. The root must not be mutated while the
// sequence is being consumed.
func Search(root any, pattern string, opts ...Option) (iter.Seq[Match], error) {
	pp, err := path.Parse(pattern)
	if err != nil {
		return nil, err
	}
	return SearchPath(root, pp, opts...), nil
}
