package internal

import (
	"fmt"
	"sort"
	"strconv"
)

// SortedStringKeys returns the keys of m in ascending order
func SortedStringKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SortedAnyKeys returns the keys of m ordered by kind rank, then by value.
// Numbers sort before strings, strings before everything else.
func SortedAnyKeys(m map[any]any) []any {
	keys := make([]any, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.SliceStable(keys, func(i, j int) bool {
		return lessKey(keys[i], keys[j])
	})
	return keys
}

func lessKey(a, b any) bool {
	ra, rb := keyRank(a), keyRank(b)
	if ra != rb {
		return ra < rb
	}
	switch ra {
	case 0:
		fa, _ := toFloat(a)
		fb, _ := toFloat(b)
		return fa < fb
	case 1:
		return a.(string) < b.(string)
	default:
		return fmt.Sprintf("%T:%v", a, a) < fmt.Sprintf("%T:%v", b, b)
	}
}

func keyRank(k any) int {
	if _, ok := toFloat(k); ok {
		return 0
	}
	if _, ok := k.(string); ok {
		return 1
	}
	return 2
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	if i, ok := ToInt(v); ok {
		return float64(i), true
	}
	return 0, false
}

// KeyString renders a mapping key the way it appears in a dotted path
func KeyString(k any) string {
	switch v := k.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprint(v)
	}
}
