package resource

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/langkit/langkit/pkg/culture"
)

// Table is the owning entity of a set of resource entries: it holds the
// culture set, one Language per culture, and one Entry per key. The table is
// the sole coordinator of mutation; entries hold non-owning references to the
// shared languages.
type Table struct {
	id       uuid.UUID
	name     string
	cultures []culture.ID // canonical order, baseline first
	langs    map[culture.ID]Language
	entries  map[string]*Entry
	logger   *slog.Logger
}

// TableOption configures a Table.
type TableOption func(*Table)

// WithLanguage supplies the storage collaborator for one culture. Cultures
// without a supplied language get a fresh MemoryLanguage.
func WithLanguage(id culture.ID, lang Language) TableOption {
	return func(t *Table) {
		if lang != nil {
			t.langs[id] = lang
		}
	}
}

// WithLogger provides a customizable logger for the table.
// If not specified, a discard logger is used.
func WithLogger(logger *slog.Logger) TableOption {
	return func(t *Table) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// NewTable creates a resource table for the given cultures. The culture set
// must be non-empty; duplicates are collapsed. Cultures are brought into
// canonical order and the first one (the neutral culture, when present) is
// designated the baseline language.
func NewTable(name string, cultures []culture.ID, opts ...TableOption) (*Table, error) {
	if len(cultures) == 0 {
		return nil, ErrNoCultures
	}

	ordered := slices.Clone(cultures)
	culture.Sort(ordered)
	ordered = slices.Compact(ordered)

	t := &Table{
		id:       uuid.New(),
		name:     name,
		cultures: ordered,
		langs:    make(map[culture.ID]Language, len(ordered)),
		entries:  make(map[string]*Entry),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}
	for _, id := range ordered {
		if _, ok := t.langs[id]; !ok {
			t.langs[id] = NewMemoryLanguage()
		}
	}

	t.logger.Debug("resource table created", "table", name, "cultures", len(ordered))
	return t, nil
}

// ID returns the table identity. Entry equality is scoped to it.
func (t *Table) ID() uuid.UUID { return t.id }

// Name returns the table name.
func (t *Table) Name() string { return t.name }

// Cultures returns the table's culture set in canonical order, baseline first.
func (t *Table) Cultures() []culture.ID { return slices.Clone(t.cultures) }

// NeutralCulture returns the baseline culture of the table.
func (t *Table) NeutralCulture() culture.ID { return t.cultures[0] }

// Language returns the storage collaborator for one culture.
func (t *Table) Language(id culture.ID) (Language, bool) {
	lang, ok := t.langs[id]
	return lang, ok
}

// Add creates the entry for a key that first appeared in any culture.
// Fails with ErrEmptyKey for an empty key and with DuplicateKeyError when the
// table already holds an entry for key.
func (t *Table) Add(key string) (*Entry, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	if _, ok := t.entries[key]; ok {
		return nil, &DuplicateKeyError{Key: key}
	}

	entry, err := newEntry(t, key, t.langs, t.cultures)
	if err != nil {
		return nil, err
	}
	t.entries[key] = entry

	t.logger.Debug("resource entry added", "table", t.name, "key", key)
	return entry, nil
}

// Entry returns the entry for key, if the table holds one.
func (t *Table) Entry(key string) (*Entry, bool) {
	e, ok := t.entries[key]
	return e, ok
}

// Remove discards the entry for key and deletes the key from every culture.
// Fails with ErrKeyNotFound for unknown keys and with ImmutableError - before
// touching any culture - when one of the languages refuses modification.
func (t *Table) Remove(key string) error {
	if _, ok := t.entries[key]; !ok {
		return fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	for _, id := range t.cultures {
		if !t.langs[id].CanChange() {
			return &ImmutableError{Culture: id}
		}
	}
	for _, id := range t.cultures {
		t.langs[id].DeleteKey(key)
	}
	delete(t.entries, key)

	t.logger.Debug("resource entry removed", "table", t.name, "key", key)
	return nil
}

// Keys returns all resource keys in sorted order.
func (t *Table) Keys() []string {
	keys := make([]string, 0, len(t.entries))
	for key := range t.entries {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// Entries returns all entries sorted by key.
func (t *Table) Entries() []*Entry {
	entries := make([]*Entry, 0, len(t.entries))
	for _, key := range t.Keys() {
		entries = append(entries, t.entries[key])
	}
	return entries
}

// rekey moves an entry's index after a successful rename. The entry has
// already validated the target key against the table.
func (t *Table) rekey(oldKey, newKey string) {
	e, ok := t.entries[oldKey]
	if !ok {
		return
	}
	delete(t.entries, oldKey)
	t.entries[newKey] = e

	t.logger.Debug("resource entry renamed", "table", t.name, "from", oldKey, "to", newKey)
}

type snapshotEntry struct {
	Values   map[string]string `json:"values"`
	Comments map[string]string `json:"comments,omitempty"`
}

type snapshot struct {
	Name     string                   `json:"name"`
	Cultures []string                 `json:"cultures"`
	Entries  map[string]snapshotEntry `json:"entries"`
}

// SnapshotJSON returns the table content as JSON, keyed by resource key and
// culture tag. Useful for diagnostics and golden-file comparisons; this is
// not a persistence format.
func (t *Table) SnapshotJSON() ([]byte, error) {
	s := snapshot{
		Name:     t.name,
		Cultures: make([]string, len(t.cultures)),
		Entries:  make(map[string]snapshotEntry, len(t.entries)),
	}
	for i, id := range t.cultures {
		s.Cultures[i] = id.String()
	}
	for key, entry := range t.entries {
		se := snapshotEntry{
			Values:   make(map[string]string),
			Comments: make(map[string]string),
		}
		for id, v := range entry.Values().All() {
			if v != "" {
				se.Values[id.String()] = v
			}
		}
		for id, c := range entry.Comments().All() {
			if c != "" {
				se.Comments[id.String()] = c
			}
		}
		if len(se.Comments) == 0 {
			se.Comments = nil
		}
		s.Entries[key] = se
	}
	return json.Marshal(s)
}
