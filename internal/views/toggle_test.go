package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"infografias.nextwaveia.mx/internal/catalog"
)

func TestViewToggle(t *testing.T) {
	t.Run("starts on part 1", func(t *testing.T) {
		assert.Equal(t, catalog.Part1, NewViewToggle().Current())

		var zero ViewToggle
		assert.Equal(t, catalog.Part1, zero.Current())
	})

	t.Run("switches between parts and back", func(t *testing.T) {
		toggle := NewViewToggle()

		require.NoError(t, toggle.Select(catalog.Part2))
		assert.Equal(t, catalog.Part2, toggle.Current())
		assert.True(t, toggle.IsActive(catalog.Part2))
		assert.False(t, toggle.IsActive(catalog.Part1))

		require.NoError(t, toggle.Select(catalog.Part1))
		assert.Equal(t, catalog.Part1, toggle.Current())
	})

	t.Run("repeated selection is a no-op", func(t *testing.T) {
		toggle := NewViewToggle()
		for i := 0; i < 3; i++ {
			require.NoError(t, toggle.Select(catalog.Part2))
			assert.Equal(t, catalog.Part2, toggle.Current())
		}
	})

	t.Run("rejects unknown parts without changing state", func(t *testing.T) {
		toggle := NewViewToggle()
		require.NoError(t, toggle.Select(catalog.Part2))

		err := toggle.Select(catalog.Part(3))
		assert.ErrorIs(t, err, catalog.ErrUnknownPart)
		assert.Equal(t, catalog.Part2, toggle.Current())
	})
}
