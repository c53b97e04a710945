package resource

// Language is the storage collaborator for one culture: a mapping from
// resource key to a value/comment pair. One Language instance serves all keys
// of its culture and is shared by every entry of the owning table; entries
// hold non-owning references and never manage its lifetime.
//
// Setters report whether the store actually changed, so callers can suppress
// redundant change notifications. Implementations must tolerate concurrent
// reads; writes are serialized by the owning table.
type Language interface {
	// Value returns the stored value for key, empty string when absent.
	Value(key string) string

	// SetValue stores value under key and reports whether the store changed.
	SetValue(key, value string) bool

	// Comment returns the stored comment for key, empty string when absent.
	Comment(key string) string

	// SetComment stores comment under key and reports whether the store changed.
	SetComment(key, comment string) bool

	// KeyExists reports whether key is present in this culture's store.
	KeyExists(key string) bool

	// CanChange reports whether the store currently accepts modifications.
	CanChange() bool

	// RenameKey moves the value/comment pair from oldKey to newKey.
	// Renaming an absent key is a no-op. Fails with ErrImmutable when the
	// store is read-only and with ErrDuplicateKey when newKey is taken.
	RenameKey(oldKey, newKey string) error

	// DeleteKey removes key and reports whether it was present.
	DeleteKey(key string) bool

	// HasFile reports whether a backing file exists for this culture.
	HasFile() bool
}

type languageEntry struct {
	value   string
	comment string
}

// MemoryLanguage is a map-backed Language. It backs tables that have no
// external store and serves as the reference implementation for the
// collaborator contract. The zero value is not usable; construct with
// NewMemoryLanguage.
type MemoryLanguage struct {
	entries  map[string]languageEntry
	readOnly bool
	hasFile  bool
}

// LanguageOption configures a MemoryLanguage.
type LanguageOption func(*MemoryLanguage)

// WithReadOnly marks the language as refusing all modifications,
// mimicking a locked or read-only backing file.
func WithReadOnly() LanguageOption {
	return func(l *MemoryLanguage) { l.readOnly = true }
}

// WithFile marks the language as having a backing file.
func WithFile() LanguageOption {
	return func(l *MemoryLanguage) { l.hasFile = true }
}

// NewMemoryLanguage creates an empty in-memory language store.
func NewMemoryLanguage(opts ...LanguageOption) *MemoryLanguage {
	l := &MemoryLanguage{entries: make(map[string]languageEntry)}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Value implements Language.
func (l *MemoryLanguage) Value(key string) string {
	return l.entries[key].value
}

// SetValue implements Language. Creating a key counts as a change even when
// the value is empty; a read-only store reports no change.
func (l *MemoryLanguage) SetValue(key, value string) bool {
	if l.readOnly {
		return false
	}
	e, ok := l.entries[key]
	if ok && e.value == value {
		return false
	}
	e.value = value
	l.entries[key] = e
	return true
}

// Comment implements Language.
func (l *MemoryLanguage) Comment(key string) string {
	return l.entries[key].comment
}

// SetComment implements Language.
func (l *MemoryLanguage) SetComment(key, comment string) bool {
	if l.readOnly {
		return false
	}
	e, ok := l.entries[key]
	if ok && e.comment == comment {
		return false
	}
	e.comment = comment
	l.entries[key] = e
	return true
}

// KeyExists implements Language.
func (l *MemoryLanguage) KeyExists(key string) bool {
	_, ok := l.entries[key]
	return ok
}

// CanChange implements Language.
func (l *MemoryLanguage) CanChange() bool {
	return !l.readOnly
}

// RenameKey implements Language.
func (l *MemoryLanguage) RenameKey(oldKey, newKey string) error {
	if l.readOnly {
		return ErrImmutable
	}
	e, ok := l.entries[oldKey]
	if !ok {
		return nil
	}
	if _, taken := l.entries[newKey]; taken {
		return &DuplicateKeyError{Key: newKey}
	}
	delete(l.entries, oldKey)
	l.entries[newKey] = e
	return nil
}

// DeleteKey implements Language.
func (l *MemoryLanguage) DeleteKey(key string) bool {
	if l.readOnly {
		return false
	}
	_, ok := l.entries[key]
	delete(l.entries, key)
	return ok
}

// HasFile implements Language.
func (l *MemoryLanguage) HasFile() bool {
	return l.hasFile
}

// SetReadOnly toggles whether the store accepts modifications.
func (l *MemoryLanguage) SetReadOnly(readOnly bool) {
	l.readOnly = readOnly
}
