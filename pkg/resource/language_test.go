package resource_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/langkit/langkit/pkg/resource"
)

func TestMemoryLanguageValues(t *testing.T) {
	t.Parallel()

	t.Run("absent key reads as empty", func(t *testing.T) {
		t.Parallel()

		lang := resource.NewMemoryLanguage()
		assert.Empty(t, lang.Value("missing"))
		assert.Empty(t, lang.Comment("missing"))
		assert.False(t, lang.KeyExists("missing"))
	})

	t.Run("set reports change", func(t *testing.T) {
		t.Parallel()

		lang := resource.NewMemoryLanguage()
		assert.True(t, lang.SetValue("greeting", "Hello"))
		assert.Equal(t, "Hello", lang.Value("greeting"))
		assert.True(t, lang.KeyExists("greeting"))
	})

	t.Run("equal value reports no change", func(t *testing.T) {
		t.Parallel()

		lang := resource.NewMemoryLanguage()
		lang.SetValue("greeting", "Hello")
		assert.False(t, lang.SetValue("greeting", "Hello"))
		assert.True(t, lang.SetValue("greeting", "Hi"))
	})

	t.Run("creating a key with an empty value is a change", func(t *testing.T) {
		t.Parallel()

		lang := resource.NewMemoryLanguage()
		assert.True(t, lang.SetValue("greeting", ""))
		assert.True(t, lang.KeyExists("greeting"))
		assert.False(t, lang.SetValue("greeting", ""))
	})

	t.Run("value and comment are independent", func(t *testing.T) {
		t.Parallel()

		lang := resource.NewMemoryLanguage()
		lang.SetValue("greeting", "Hello")
		assert.True(t, lang.SetComment("greeting", "shown on start"))
		assert.Equal(t, "Hello", lang.Value("greeting"))
		assert.Equal(t, "shown on start", lang.Comment("greeting"))
	})
}

func TestMemoryLanguageReadOnly(t *testing.T) {
	t.Parallel()

	lang := resource.NewMemoryLanguage(resource.WithReadOnly())

	assert.False(t, lang.CanChange())
	assert.False(t, lang.SetValue("greeting", "Hello"))
	assert.False(t, lang.SetComment("greeting", "note"))
	assert.False(t, lang.KeyExists("greeting"))
	assert.ErrorIs(t, lang.RenameKey("a", "b"), resource.ErrImmutable)
	assert.False(t, lang.DeleteKey("greeting"))

	lang.SetReadOnly(false)
	assert.True(t, lang.CanChange())
	assert.True(t, lang.SetValue("greeting", "Hello"))
}

func TestMemoryLanguageRenameKey(t *testing.T) {
	t.Parallel()

	t.Run("moves value and comment", func(t *testing.T) {
		t.Parallel()

		lang := resource.NewMemoryLanguage()
		lang.SetValue("old", "Hello")
		lang.SetComment("old", "note")

		require.NoError(t, lang.RenameKey("old", "new"))

		assert.False(t, lang.KeyExists("old"))
		assert.Equal(t, "Hello", lang.Value("new"))
		assert.Equal(t, "note", lang.Comment("new"))
	})

	t.Run("absent key is a no-op", func(t *testing.T) {
		t.Parallel()

		lang := resource.NewMemoryLanguage()
		require.NoError(t, lang.RenameKey("missing", "new"))
		assert.False(t, lang.KeyExists("new"))
	})

	t.Run("taken target is rejected", func(t *testing.T) {
		t.Parallel()

		lang := resource.NewMemoryLanguage()
		lang.SetValue("old", "Hello")
		lang.SetValue("new", "Hi")

		err := lang.RenameKey("old", "new")
		assert.ErrorIs(t, err, resource.ErrDuplicateKey)
		assert.Equal(t, "Hello", lang.Value("old"))
		assert.Equal(t, "Hi", lang.Value("new"))
	})
}

func TestMemoryLanguageDeleteKey(t *testing.T) {
	t.Parallel()

	lang := resource.NewMemoryLanguage()
	lang.SetValue("greeting", "Hello")

	assert.True(t, lang.DeleteKey("greeting"))
	assert.False(t, lang.KeyExists("greeting"))
	assert.False(t, lang.DeleteKey("greeting"))
}

func TestMemoryLanguageHasFile(t *testing.T) {
	t.Parallel()

	assert.False(t, resource.NewMemoryLanguage().HasFile())
	assert.True(t, resource.NewMemoryLanguage(resource.WithFile()).HasFile())
}
