package nested

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathErrorFormatting(t *testing.T) {
	tests := []struct {
		name     string
		err      *PathError
		expected string
	}{
		{
			name:     "full context",
			err:      &PathError{Op: "get", Path: "a.b", Code: ErrCodeMissingKey, Message: "key not found: 'b'"},
			expected: "nested get failed at path 'a.b': key not found: 'b' [MISSING_KEY]",
		},
		{
			name:     "no path",
			err:      &PathError{Op: "normalize", Code: ErrCodeInvalidPath, Message: "bad"},
			expected: "nested normalize failed: bad [INVALID_PATH]",
		},
		{
			name:     "bare",
			err:      &PathError{Code: ErrCodeEmptyPath, Message: "path cannot be empty"},
			expected: "path cannot be empty [EMPTY_PATH]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestPathErrorMatching(t *testing.T) {
	for _, code := range Codes() {
		t.Run(code.String(), func(t *testing.T) {
			err := fmt.Errorf("wrapped: %w", newPathError(code, "boom"))

			assert.ErrorIs(t, err, codeSentinels[code])
			assert.ErrorIs(t, err, &PathError{Code: code})
			assert.True(t, IsCode(err, code))

			got, ok := CodeOf(err)
			require.True(t, ok)
			assert.Equal(t, code, got)

			var pathErr *PathError
			require.ErrorAs(t, err, &pathErr)
			assert.Equal(t, "boom", pathErr.Message)
		})
	}

	err := newPathError(ErrCodeMissingKey, "x")
	assert.NotErrorIs(t, err, ErrInvalidIndex)
	assert.NotErrorIs(t, err, &PathError{Code: ErrCodeInvalidIndex})

	_, ok := CodeOf(errors.New("plain"))
	assert.False(t, ok)
	assert.False(t, IsCode(nil, ErrCodeMissingKey))
}

func TestCodesAreComplete(t *testing.T) {
	codes := Codes()
	assert.Len(t, codes, len(codeSentinels))
	seen := make(map[ErrorCode]bool)
	for _, code := range codes {
		assert.False(t, seen[code], "duplicate code %s", code)
		seen[code] = true
		assert.Contains(t, codeSentinels, code)
	}
}

func TestWithContextKeepsInnerValues(t *testing.T) {
	inner := &PathError{Op: "normalize", Code: ErrCodeInvalidPath, Message: "bad"}
	err := withContext(inner, opGet, "a..b")

	var pathErr *PathError
	require.ErrorAs(t, err, &pathErr)
	assert.Equal(t, "normalize", pathErr.Op)
	assert.Equal(t, "a..b", pathErr.Path)

	plain := errors.New("plain")
	assert.Same(t, plain, withContext(plain, opGet, "a"))
}

func TestErrorClassifier(t *testing.T) {
	ec := NewErrorClassifier()

	tests := []struct {
		code     ErrorCode
		syntax   bool
		notFound bool
		rejected bool
	}{
		{code: ErrCodeInvalidPath, syntax: true},
		{code: ErrCodeEmptyPath, syntax: true},
		{code: ErrCodePathTooDeep, syntax: true},
		{code: ErrCodeMissingKey, notFound: true},
		{code: ErrCodeInvalidIndex, notFound: true},
		{code: ErrCodeNonNavigableType, notFound: true},
		{code: ErrCodeImmutableContainer, rejected: true},
		{code: ErrCodeOperationDisabled, rejected: true},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			err := newPathError(tt.code, "x")
			assert.Equal(t, tt.syntax, ec.IsPathSyntax(err))
			assert.Equal(t, tt.notFound, ec.IsNotFound(err))
			assert.Equal(t, tt.rejected, ec.IsMutationRejected(err))
			assert.NotEqual(t, "Check the error message for specific details", ec.GetErrorSuggestion(err))
		})
	}

	assert.Equal(t, "Check the error message for specific details", ec.GetErrorSuggestion(errors.New("other")))
}

func TestOperationErrorsCarryContext(t *testing.T) {
	helper := NewTestHelper(t)
	data := map[string]any{"list": []any{1}}

	err := SetAt(data, "list.3", 1)
	helper.AssertCode(err, ErrCodeInvalidIndex)
	var pathErr *PathError
	require.ErrorAs(t, err, &pathErr)
	assert.Equal(t, "set", pathErr.Op)
	assert.Equal(t, "list.3", pathErr.Path)

	_, err = DeleteAt(data, []any{"list", 0})
	helper.AssertCode(err, ErrCodeOperationDisabled)
	require.ErrorAs(t, err, &pathErr)
	assert.Equal(t, "delete", pathErr.Op)
	assert.Equal(t, "[list 0]", pathErr.Path)

	_, err = ExistsAt(data, "")
	helper.AssertCode(err, ErrCodeEmptyPath)
	require.ErrorAs(t, err, &pathErr)
	assert.Equal(t, "normalize", pathErr.Op)
}
