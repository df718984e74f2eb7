package nested

import "sync"

var (
	defaultProcessor     *Processor
	defaultProcessorOnce sync.Once
)

// getDefaultProcessor returns the shared processor built from DefaultConfig.
// It is created once and never reconfigured.
func getDefaultProcessor() *Processor {
	defaultProcessorOnce.Do(func() {
		defaultProcessor = New()
	})
	return defaultProcessor
}

// GetAt retrieves the value at path.
//
// path is either a dot-delimited string ("users.0.name") or a sequence of
// keys and indices ([]any{"users", 0, "name"}).
func GetAt(data, path any) (any, error) {
	return getDefaultProcessor().Get(data, path)
}

// GetAtOr retrieves the value at path, returning def when the path does not
// resolve. Malformed or too deep paths still return an error; indices beyond
// MaxListSize are misses.
func GetAtOr(data, path, def any) (any, error) {
	return getDefaultProcessor().GetOr(data, path, def)
}

// SetAt writes value at path, mutating data in place.
//
// To grow or replace the root itself pass a pointer (*[]any, *map[string]any or *any).
func SetAt(data, path, value any, opts ...*Options) error {
	return getDefaultProcessor().Set(data, path, value, opts...)
}

// DeleteAt removes the value at path and returns it
func DeleteAt(data, path any, opts ...*Options) (any, error) {
	return getDefaultProcessor().Delete(data, path, opts...)
}

// ExistsAt reports whether path resolves in data
func ExistsAt(data, path any) (bool, error) {
	return getDefaultProcessor().Exists(data, path)
}

// GetDepth returns the maximum nesting depth of data
func GetDepth(data any) int {
	return getDefaultProcessor().Depth(data)
}

// CountLeaves returns the number of leaf values in data
func CountLeaves(data any) int {
	return getDefaultProcessor().CountLeaves(data)
}

// GetAllPaths returns the path of every leaf in data
func GetAllPaths(data any) []Path {
	return getDefaultProcessor().AllPaths(data)
}

// Normalize converts a string or sequence path into its canonical tokens
func Normalize(path any) (Path, error) {
	return getDefaultProcessor().Normalize(path)
}
