// Package deep provides uniform path-based access to values nested
// arbitrarily deep inside heterogeneous collections: mappings keyed by
// strings, sequences indexed by position, and opaque scalar leaves.
//
// Paths use a dotted grammar with bracketed indices:
//
//	v, err := deep.Get(root, "users[2].roles[0]")
//	root, err = deep.Set(root, "a.b.c", 5)
//	root, err = deep.Delete(root, "a.b.c")
//	ok := deep.Has(root, "users[-1].name")
//
// Negative indices count from the end. Missing intermediate containers
// are materialized on Set unless auto-create is disabled. Wildcard (*),
// slice ([1:3]) and deep (**) steps drive Search, which lazily yields
// every concrete location matching a pattern:
//
//	matches, err := deep.Search(root, "a.*.x")
//	for m := range matches {
//	    fmt.Println(m.Path, m.Value)
//	}
//
// The engine operates on any representation through the value.View seam;
// map[string]any, []any and goccy yaml.MapSlice work out of the box, and
// callers can adapt their own container types. All operations are pure
// in-memory walks with no internal locking: concurrent readers are safe
// on an unchanged root, concurrent writers must be serialized by the
// caller.
package deep
