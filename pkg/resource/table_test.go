package resource_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/langkit/langkit/pkg/culture"
	"github.com/langkit/langkit/pkg/resource"
)

func TestNewTable(t *testing.T) {
	t.Parallel()

	t.Run("empty culture set is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := resource.NewTable("Strings", nil)
		assert.ErrorIs(t, err, resource.ErrNoCultures)
	})

	t.Run("cultures are ordered neutral-first and deduplicated", func(t *testing.T) {
		t.Parallel()

		table, err := resource.NewTable("Strings",
			[]culture.ID{langFR, culture.Neutral, langDE, langDE})
		require.NoError(t, err)

		got := table.Cultures()
		require.Len(t, got, 3)
		assert.Equal(t, culture.Neutral, got[0])
		assert.Equal(t, culture.Neutral, table.NeutralCulture())
	})

	t.Run("baseline without an explicit neutral culture", func(t *testing.T) {
		t.Parallel()

		table, err := resource.NewTable("Strings", []culture.ID{langFR, langDE})
		require.NoError(t, err)
		assert.Equal(t, langDE, table.NeutralCulture())
	})

	t.Run("each culture gets its own store by default", func(t *testing.T) {
		t.Parallel()

		table := newTestTable(t)
		deLang, ok := table.Language(langDE)
		require.True(t, ok)
		frLang, ok := table.Language(langFR)
		require.True(t, ok)

		deLang.SetValue("Greeting", "Hallo")
		assert.False(t, frLang.KeyExists("Greeting"))
	})

	t.Run("tables have distinct identities", func(t *testing.T) {
		t.Parallel()

		assert.NotEqual(t, newTestTable(t).ID(), newTestTable(t).ID())
	})
}

func TestTableAdd(t *testing.T) {
	t.Parallel()

	t.Run("adds and retrieves an entry", func(t *testing.T) {
		t.Parallel()

		table := newTestTable(t)
		entry := addEntry(t, table, "Greeting")

		got, ok := table.Entry("Greeting")
		require.True(t, ok)
		assert.Same(t, entry, got)
		assert.Same(t, table, entry.Table())
	})

	t.Run("empty key is rejected", func(t *testing.T) {
		t.Parallel()

		table := newTestTable(t)
		_, err := table.Add("")
		assert.ErrorIs(t, err, resource.ErrEmptyKey)
	})

	t.Run("duplicate key is rejected", func(t *testing.T) {
		t.Parallel()

		table := newTestTable(t)
		addEntry(t, table, "Greeting")

		_, err := table.Add("Greeting")
		assert.ErrorIs(t, err, resource.ErrDuplicateKey)
	})
}

func TestTableRemove(t *testing.T) {
	t.Parallel()

	t.Run("removes the key from every culture", func(t *testing.T) {
		t.Parallel()

		table := newTestTable(t)
		entry := addEntry(t, table, "Greeting")
		require.NoError(t, entry.Values().Set(culture.Neutral, "Hello"))
		require.NoError(t, entry.Values().Set(langDE, "Hallo"))

		require.NoError(t, table.Remove("Greeting"))

		_, ok := table.Entry("Greeting")
		assert.False(t, ok)
		for _, id := range table.Cultures() {
			lang, _ := table.Language(id)
			assert.False(t, lang.KeyExists("Greeting"))
		}
	})

	t.Run("unknown key is rejected", func(t *testing.T) {
		t.Parallel()

		table := newTestTable(t)
		assert.ErrorIs(t, table.Remove("Greeting"), resource.ErrKeyNotFound)
	})

	t.Run("read-only culture blocks removal", func(t *testing.T) {
		t.Parallel()

		deLang := resource.NewMemoryLanguage()
		table := newTestTable(t, resource.WithLanguage(langDE, deLang))
		entry := addEntry(t, table, "Greeting")
		require.NoError(t, entry.Values().Set(langDE, "Hallo"))
		deLang.SetReadOnly(true)

		assert.ErrorIs(t, table.Remove("Greeting"), resource.ErrImmutable)

		_, ok := table.Entry("Greeting")
		assert.True(t, ok)
		assert.Equal(t, "Hallo", deLang.Value("Greeting"))
	})
}

func TestTableKeysAndEntries(t *testing.T) {
	t.Parallel()

	table := newTestTable(t)
	addEntry(t, table, "Zebra")
	addEntry(t, table, "Apple")
	addEntry(t, table, "Mango")

	assert.Equal(t, []string{"Apple", "Mango", "Zebra"}, table.Keys())

	entries := table.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "Apple", entries[0].Key())
	assert.Equal(t, "Zebra", entries[2].Key())
}

func TestTableSnapshotJSON(t *testing.T) {
	t.Parallel()

	table := newTestTable(t)
	entry := addEntry(t, table, "Greeting")
	require.NoError(t, entry.Values().Set(culture.Neutral, "Hello"))
	require.NoError(t, entry.Values().Set(langDE, "Hallo"))
	entry.SetComment("shown on start")

	raw, err := table.SnapshotJSON()
	require.NoError(t, err)

	var got struct {
		Name     string   `json:"name"`
		Cultures []string `json:"cultures"`
		Entries  map[string]struct {
			Values   map[string]string `json:"values"`
			Comments map[string]string `json:"comments"`
		} `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(raw, &got))

	assert.Equal(t, "Strings", got.Name)
	assert.Equal(t, []string{"und", "de", "fr"}, got.Cultures)
	require.Contains(t, got.Entries, "Greeting")
	assert.Equal(t, map[string]string{"und": "Hello", "de": "Hallo"}, got.Entries["Greeting"].Values)
	assert.Equal(t, map[string]string{"und": "shown on start"}, got.Entries["Greeting"].Comments)
}
