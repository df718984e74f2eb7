package nested

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var create = &Options{CreatePaths: true}

func TestSetAtCreatesContainers(t *testing.T) {
	tests := []struct {
		name     string
		path     any
		value    any
		expected map[string]any
	}{
		{
			name:     "nested mappings",
			path:     "user.profile.name",
			value:    "Alice",
			expected: map[string]any{"user": map[string]any{"profile": map[string]any{"name": "Alice"}}},
		},
		{
			name:     "index lookahead fabricates a sequence",
			path:     "items.0.name",
			value:    "Item 1",
			expected: map[string]any{"items": []any{map[string]any{"name": "Item 1"}}},
		},
		{
			name:     "numeric string in sequence form fabricates a mapping",
			path:     []any{"items", "0"},
			value:    "x",
			expected: map[string]any{"items": map[string]any{"0": "x"}},
		},
		{
			name:     "nested sequences",
			path:     "grid.0.0",
			value:    1,
			expected: map[string]any{"grid": []any{[]any{1}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := map[string]any{}
			require.NoError(t, SetAt(data, tt.path, tt.value, create))
			assert.Equal(t, tt.expected, data)

			got, err := GetAt(data, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.value, got)
		})
	}
}

func TestSetAtReplacesLeavesWhenCreating(t *testing.T) {
	data := map[string]any{"a": nil, "b": 5, "list": []any{nil}}

	require.NoError(t, SetAt(data, "a.b.c", 10, create))
	require.NoError(t, SetAt(data, "b.0", "x", create))
	require.NoError(t, SetAt(data, "list.0.k", "v", create))

	assert.Equal(t, map[string]any{
		"a":    map[string]any{"b": map[string]any{"c": 10}},
		"b":    []any{"x"},
		"list": []any{map[string]any{"k": "v"}},
	}, data)
}

func TestSetAtWithoutCreate(t *testing.T) {
	data := map[string]any{"a": map[string]any{"b": 1}, "s": "scalar", "list": []any{1}}

	require.NoError(t, SetAt(data, "a.b", 2))
	require.NoError(t, SetAt(data, "a.c", 3), "final upsert needs no create")
	require.NoError(t, SetAt(data, "list.1", 2), "final append needs no create")
	assert.Equal(t, map[string]any{"b": 2, "c": 3}, data["a"])
	assert.Equal(t, []any{1, 2}, data["list"])

	err := SetAt(data, "x.y", 1)
	assert.ErrorIs(t, err, ErrMissingKey)

	err = SetAt(data, "s.y", 1)
	assert.ErrorIs(t, err, ErrNonNavigableType)

	err = SetAt(data, "list.2.y", 1)
	assert.ErrorIs(t, err, ErrInvalidIndex)

	_, exists := data["x"]
	assert.False(t, exists, "failed set must not fabricate")
}

func TestSetAtSequentialAppend(t *testing.T) {
	list := []any{}
	require.NoError(t, SetAt(&list, "0", "first", create))
	assert.Equal(t, []any{"first"}, list)

	require.NoError(t, SetAt(&list, "1", "second", create))
	assert.Equal(t, []any{"first", "second"}, list)

	err := SetAt(&list, "5", "x", create)
	assert.ErrorIs(t, err, ErrInvalidIndex)
	assert.Equal(t, []any{"first", "second"}, list)

	require.NoError(t, SetAt(&list, "-1", "last"))
	assert.Equal(t, []any{"first", "last"}, list)
}

func TestSetAtNestedAppendWritesBack(t *testing.T) {
	data := map[string]any{"items": []any{"a"}}
	require.NoError(t, SetAt(data, "items.1", "b"))
	require.NoError(t, SetAt(data, "items.2.name", "c", create))
	assert.Equal(t, []any{"a", "b", map[string]any{"name": "c"}}, data["items"])

	outer := []any{[]any{}}
	require.NoError(t, SetAt(outer, "0.0", "inner"))
	assert.Equal(t, []any{[]any{"inner"}}, outer)
}

func TestSetAtIndexRules(t *testing.T) {
	tests := []struct {
		name string
		path string
		code ErrorCode
	}{
		{name: "negative out of range never extends", path: "-5", code: ErrCodeInvalidIndex},
		{name: "gap", path: "4", code: ErrCodeInvalidIndex},
		{name: "beyond list limit", path: "10001", code: ErrCodeInvalidIndex},
		{name: "key on sequence", path: "name", code: ErrCodeInvalidIndex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := []any{1, 2, 3}
			err := SetAt(&list, tt.path, 9, create)
			require.Error(t, err)
			assert.True(t, IsCode(err, tt.code), "got %v", err)
			assert.Equal(t, []any{1, 2, 3}, list)
		})
	}

	list := []any{1, 2, 3}
	require.NoError(t, SetAt(list, "-3", 9))
	assert.Equal(t, []any{9, 2, 3}, list)
}

func TestSetAtPathTooDeep(t *testing.T) {
	deep := strings.Repeat("a.", MaxDepth) + "a"
	segments := make([]any, MaxDepth+1)
	for i := range segments {
		segments[i] = "a"
	}

	tests := []struct {
		name string
		path any
		opts *Options
	}{
		{name: "string path", path: deep},
		{name: "string path with create", path: deep, opts: create},
		{name: "sequence path with create", path: segments, opts: create},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := map[string]any{}
			err := SetAt(data, tt.path, 1, tt.opts)
			assert.ErrorIs(t, err, ErrPathTooDeep)
			assert.Empty(t, data, "nothing is fabricated")
		})
	}

	t.Run("exists and delete", func(t *testing.T) {
		data := map[string]any{"a": 1}
		_, err := ExistsAt(data, deep)
		assert.ErrorIs(t, err, ErrPathTooDeep)
		_, err = DeleteAt(data, deep, &Options{AllowListMutation: true})
		assert.ErrorIs(t, err, ErrPathTooDeep)
		assert.Equal(t, map[string]any{"a": 1}, data)
	})
}

func TestSetAtBareRootSequenceCannotGrow(t *testing.T) {
	list := []any{1}
	err := SetAt(list, "1", 2)
	assert.ErrorIs(t, err, ErrOperationDisabled)
	assert.Equal(t, []any{1}, list)
}

func TestSetAtImmutableContainers(t *testing.T) {
	tests := []struct {
		name string
		data any
		path string
	}{
		{name: "tuple root", data: Tuple{1, 2}, path: "0"},
		{name: "tuple intermediate", data: map[string]any{"t": Tuple{map[string]any{}}}, path: "t.0.k"},
		{name: "tuple final", data: map[string]any{"t": Tuple{1}}, path: "t.0"},
		{name: "array final", data: map[string]any{"a": [2]any{1, 2}}, path: "a.1"},
		{name: "deep tuple", data: map[string]any{"a": []any{map[string]any{"t": Tuple{}}}}, path: "a.0.t.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SetAt(tt.data, tt.path, "x", create)
			assert.ErrorIs(t, err, ErrImmutableContainer)
		})
	}
}

func TestSetAtLeafRoot(t *testing.T) {
	err := SetAt(42, "a", 1, create)
	assert.ErrorIs(t, err, ErrNonNavigableType)

	var root any
	require.NoError(t, SetAt(&root, "a.0", 1, create))
	assert.Equal(t, map[string]any{"a": []any{1}}, root)

	var list any
	require.NoError(t, SetAt(&list, "0", "x", create))
	assert.Equal(t, []any{"x"}, list)
}

func TestSetAtNilMapRoot(t *testing.T) {
	var m map[string]any
	require.NoError(t, SetAt(&m, "a.b", 1, create))
	assert.Equal(t, map[string]any{"a": map[string]any{"b": 1}}, m)

	var bare map[string]any
	err := SetAt(bare, "a", 1)
	assert.ErrorIs(t, err, ErrNonNavigableType)
}

func TestSetAtOrderedMappings(t *testing.T) {
	p := New(&Config{OrderedMappings: true})
	var root any
	require.NoError(t, p.Set(&root, "z.y", 1, create))
	require.NoError(t, p.Set(&root, "z.a", 2, create))
	require.NoError(t, p.Set(&root, "b", 3, create))

	om, ok := root.(*OrderedMap)
	require.True(t, ok, "root should be an ordered map, got %T", root)
	paths := p.AllPaths(root)
	got := make([]string, len(paths))
	for i, path := range paths {
		got[i] = path.String()
	}
	assert.Equal(t, []string{"z.y", "z.a", "b"}, got)
	assert.Equal(t, 2, om.Len())
}

func TestSetAtMapAnyAny(t *testing.T) {
	data := map[any]any{"0": "text zero"}
	require.NoError(t, SetAt(data, "0", "updated"))
	require.NoError(t, SetAt(data, "1", "new"))
	assert.Equal(t, map[any]any{"0": "updated", 1: "new"}, data)
}

func TestSetAtRoundTrip(t *testing.T) {
	paths := []any{
		"a",
		"a.b.c",
		"list.0",
		"list.1.name",
		"list.-1.name",
		[]any{"dotted.key", 0, "x"},
		Path{Key("k"), Index(0), Index(0)},
	}

	data := map[string]any{}
	for i, path := range paths {
		require.NoError(t, SetAt(data, path, i, create), "set %v", path)
		got, err := GetAt(data, path)
		require.NoError(t, err, "get %v", path)
		assert.Equal(t, i, got, "round trip %v", path)
	}
}

func TestDeleteAt(t *testing.T) {
	data := map[string]any{"a": map[string]any{"b": 1, "c": 2}}
	removed, err := DeleteAt(data, "a.b")
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.Equal(t, map[string]any{"a": map[string]any{"c": 2}}, data)

	_, err = DeleteAt(data, "a.b")
	assert.ErrorIs(t, err, ErrMissingKey)

	_, err = DeleteAt(data, "x.y")
	assert.ErrorIs(t, err, ErrMissingKey)
	_, exists := data["x"]
	assert.False(t, exists, "delete never fabricates")
}

func TestDeleteAtSequence(t *testing.T) {
	list := []any{1, 2, 3}

	_, err := DeleteAt(&list, "1")
	assert.ErrorIs(t, err, ErrOperationDisabled)
	assert.Equal(t, []any{1, 2, 3}, list)

	allow := &Options{AllowListMutation: true}
	removed, err := DeleteAt(&list, "1", allow)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.Equal(t, []any{1, 3}, list)

	removed, err = DeleteAt(&list, "-1", allow)
	require.NoError(t, err)
	assert.Equal(t, 3, removed)
	assert.Equal(t, []any{1}, list)

	_, err = DeleteAt(&list, "4", allow)
	assert.ErrorIs(t, err, ErrInvalidIndex)
	_, err = DeleteAt(&list, "-2", allow)
	assert.ErrorIs(t, err, ErrInvalidIndex)
	_, err = DeleteAt(&list, "name", allow)
	assert.ErrorIs(t, err, ErrInvalidIndex)
}

func TestDeleteAtNestedSequence(t *testing.T) {
	data := map[string]any{"items": []any{"a", "b", "c"}}
	removed, err := DeleteAt(data, "items.0", &Options{AllowListMutation: true})
	require.NoError(t, err)
	assert.Equal(t, "a", removed)
	assert.Equal(t, []any{"b", "c"}, data["items"])

	bare := []any{1, 2}
	_, err = DeleteAt(bare, "0", &Options{AllowListMutation: true})
	assert.ErrorIs(t, err, ErrOperationDisabled)
	assert.Equal(t, []any{1, 2}, bare)
}

func TestDeleteAtImmutableAndLeaf(t *testing.T) {
	allow := &Options{AllowListMutation: true}

	_, err := DeleteAt(map[string]any{"t": Tuple{1}}, "t.0", allow)
	assert.ErrorIs(t, err, ErrImmutableContainer)

	_, err = DeleteAt(Tuple{[]any{1, 2}}, "0.0", allow)
	assert.ErrorIs(t, err, ErrImmutableContainer)

	inner := map[string]any{"k": 1}
	removed, err := DeleteAt(Tuple{inner}, "0.k")
	require.NoError(t, err, "mappings inside tuples stay mutable")
	assert.Equal(t, 1, removed)
	assert.Empty(t, inner)

	_, err = DeleteAt(map[string]any{"s": "x"}, "s.y")
	assert.ErrorIs(t, err, ErrNonNavigableType)

	_, err = DeleteAt(map[string]any{"s": "x"}, "s.y.z")
	assert.ErrorIs(t, err, ErrNonNavigableType)
}

func TestDeleteAtPathErrors(t *testing.T) {
	_, err := DeleteAt(map[string]any{}, "")
	assert.ErrorIs(t, err, ErrEmptyPath)

	_, err = DeleteAt(map[string]any{}, "a..b")
	assert.ErrorIs(t, err, ErrInvalidPath)
}
