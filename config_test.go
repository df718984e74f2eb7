package nested

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfiguration(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()
		assert.Equal(t, MaxDepth, config.MaxDepth)
		assert.Equal(t, MaxListSize, config.MaxListSize)
		assert.False(t, config.OrderedMappings)
	})

	t.Run("Clone", func(t *testing.T) {
		original := &Config{MaxDepth: 5, MaxListSize: 10, OrderedMappings: true}
		cloned := original.Clone()
		assert.Equal(t, original, cloned)

		cloned.MaxDepth = 99
		assert.Equal(t, 5, original.MaxDepth)

		var nilConfig *Config
		assert.Equal(t, DefaultConfig(), nilConfig.Clone())
	})

	t.Run("Validate", func(t *testing.T) {
		config := &Config{MaxDepth: -1, MaxListSize: 0}
		require.NoError(t, config.Validate())
		assert.Equal(t, MaxDepth, config.MaxDepth)
		assert.Equal(t, MaxListSize, config.MaxListSize)
	})
}

func TestProcessorLimits(t *testing.T) {
	helper := NewTestHelper(t)
	p := New(&Config{MaxDepth: 3, MaxListSize: 2})

	_, err := p.Normalize("a.b.c")
	require.NoError(t, err)
	_, err = p.Normalize("a.b.c.d")
	helper.AssertCode(err, ErrCodePathTooDeep)

	list := []any{1, 2}
	require.NoError(t, p.Set(&list, "2", 3))
	assert.Equal(t, []any{1, 2, 3}, list)

	err = p.Set(&list, "3", 4)
	helper.AssertCode(err, ErrCodeInvalidIndex)

	_, err = p.Get(list, "-3")
	helper.AssertCode(err, ErrCodeInvalidIndex)

	ok, err := p.Exists(list, "3")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestProcessorConfigIsolation(t *testing.T) {
	config := &Config{MaxDepth: 2}
	p := New(config)
	config.MaxDepth = 50

	_, err := p.Normalize(strings.Repeat("a.", 2) + "a")
	assert.ErrorIs(t, err, ErrPathTooDeep)

	got := p.GetConfig()
	assert.Equal(t, 2, got.MaxDepth)
	assert.Equal(t, MaxListSize, got.MaxListSize, "zero limits fall back to defaults")

	got.MaxDepth = 100
	assert.Equal(t, 2, p.GetConfig().MaxDepth)
}
