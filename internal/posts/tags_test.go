package posts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"board-service/internal/errs"
)

func TestNormalizeTag(t *testing.T) {
	t.Run("lowercases and trims", func(t *testing.T) {
		got, err := NormalizeTag("Events ")
		require.NoError(t, err)
		require.Equal(t, "events", got)
	})

	t.Run("internal whitespace becomes hyphen", func(t *testing.T) {
		got, err := NormalizeTag("Study  Group")
		require.NoError(t, err)
		require.Equal(t, "study-group", got)
	})

	t.Run("rejects empty tag", func(t *testing.T) {
		_, err := NormalizeTag("   ")
		require.True(t, errs.IsValidation(err))
	})

	t.Run("rejects overlong tag", func(t *testing.T) {
		_, err := NormalizeTag(strings.Repeat("a", MaxTagLength+1))
		require.True(t, errs.IsValidation(err))
	})

	t.Run("boundary length passes", func(t *testing.T) {
		got, err := NormalizeTag(strings.Repeat("a", MaxTagLength))
		require.NoError(t, err)
		require.Len(t, got, MaxTagLength)
	})

	t.Run("length is counted in runes, not bytes", func(t *testing.T) {
		got, err := NormalizeTag(strings.Repeat("夜", MaxTagLength))
		require.NoError(t, err)
		require.Equal(t, strings.Repeat("夜", MaxTagLength), got)

		_, err = NormalizeTag(strings.Repeat("夜", MaxTagLength+1))
		require.True(t, errs.IsValidation(err))
	})
}

func TestNormalizeTags(t *testing.T) {
	t.Run("rejects more than five tags", func(t *testing.T) {
		_, err := NormalizeTags([]string{"a", "b", "c", "d", "e", "f"})
		require.True(t, errs.IsValidation(err))
	})

	t.Run("rejects duplicates after normalization", func(t *testing.T) {
		_, err := NormalizeTags([]string{"Events", "events "})
		require.True(t, errs.IsValidation(err))
	})

	t.Run("keeps order", func(t *testing.T) {
		got, err := NormalizeTags([]string{"Campus Life", "Events", "food"})
		require.NoError(t, err)
		require.Equal(t, []string{"campus-life", "events", "food"}, got)
	})

	t.Run("empty set is fine", func(t *testing.T) {
		got, err := NormalizeTags(nil)
		require.NoError(t, err)
		require.Empty(t, got)
	})
}
