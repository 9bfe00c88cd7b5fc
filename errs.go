package deep

import (
	"errors"

	"github.com/terminal-labs/deep-collection/path"
)

var (
	// ErrInvalidPathSyntax reports a malformed textual path. It also
	// covers wildcard steps reaching Get, Set or Delete, which only
	// accept concrete paths.
	ErrInvalidPathSyntax = path.ErrSyntax

	// ErrKeyNotFound reports an absent mapping member.
	ErrKeyNotFound = errors.New("key not found")

	// ErrIndexOutOfRange reports a sequence index outside the current
	// length after normalizing negative indices.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrTypeMismatch reports a step whose required kind disagrees with
	// the value it is applied to, e.g. keying into a scalar.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrPathNotCreatable reports a Set without auto-create hitting a
	// missing intermediate container.
	ErrPathNotCreatable = errors.New("path not creatable")

	// ErrCyclicStructure reports a search exceeding its depth guard,
	// normally caused by a self-referential input value.
	ErrCyclicStructure = errors.New("cyclic structure")
)

func absentErr(err error) bool {
	return errors.Is(err, ErrKeyNotFound) || errors.Is(err, ErrIndexOutOfRange)
}
