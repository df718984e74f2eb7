// Package nested reads, writes, deletes and inspects values inside nested
// Go data (decoded JSON, YAML or TOML documents and hand-built trees)
// addressed by a path.
//
// The package uses an internal package for implementation details:
//
//   - internal: index parsing and limit checks, deterministic key ordering
//
// # Paths
//
// A path is either a dot-delimited string or an explicit sequence of tokens:
//
//	nested.GetAt(data, "users.0.name")
//	nested.GetAt(data, []any{"users", 0, "name"})
//	nested.GetAt(data, []any{"example.com", "ttl"}) // key containing '.'
//
// In string form a segment made only of an optional '-' and digits is an
// index, anything else is a key. In sequence form strings are keys and Go
// integers are indices, with no conversion. Negative indices count from the
// end of a sequence.
//
// # Containers
//
// Three container kinds are traversed:
//
//   - Mapping: map[string]any, map[any]any and *OrderedMap
//   - Sequence: []any and *[]any
//   - ImmutableSequence: Tuple and Go arrays; any write through them fails
//
// Every other value is a leaf.
//
// # Basic Usage
//
//	data := map[string]any{}
//	err := nested.SetAt(data, "user.profile.name", "Alice", &nested.Options{CreatePaths: true})
//	// data == {"user": {"profile": {"name": "Alice"}}}
//
//	name, err := nested.GetAt(data, "user.profile.name")
//	email, err := nested.GetAtOr(data, "user.email", "unknown")
//	ok, err := nested.ExistsAt(data, "user.profile")
//	removed, err := nested.DeleteAt(data, "user.profile.name")
//
// Sequences only grow by appending at their current length, and deleting from
// a sequence must be enabled with Options.AllowListMutation. A root sequence
// must be passed as *[]any to change its length.
//
// # Introspection
//
//	nested.GetDepth(data)    // maximum nesting depth
//	nested.CountLeaves(data) // number of non-container values
//	nested.GetAllPaths(data) // path of every leaf
//
// # Errors
//
// Every failure is a *PathError carrying an ErrorCode. Use errors.Is with the
// sentinels (ErrMissingKey, ErrInvalidIndex, ...) or IsCode:
//
//	if errors.Is(err, nested.ErrMissingKey) { ... }
//
// # Configuration
//
// The package-level functions use DefaultConfig. Use New for custom limits:
//
//	cfg := nested.DefaultConfig()
//	cfg.MaxDepth = 20
//	p := nested.New(cfg)
package nested
