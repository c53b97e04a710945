package resource

import (
	"hash/fnv"
	"regexp"
	"slices"

	"github.com/langkit/langkit/pkg/culture"
	"github.com/langkit/langkit/pkg/notify"
)

// Event names the logical property of an entry that changed. Observers treat
// an event as "recompute downstream state": derived values (findings,
// invariant flag, mismatch flag) are not delivered with the event and must be
// re-read from the entry.
type Event string

const (
	EventKey            Event = "key"
	EventValues         Event = "values"
	EventComment        Event = "comment"
	EventCodeReferences Event = "code_references"
)

// InvariantMarker is the comment token that marks an entry as intentionally
// untranslated. Matching is a case-insensitive substring check.
const InvariantMarker = "@Invariant"

var invariantMarkerRegex = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(InvariantMarker))

// MismatchFinding is the per-culture finding text for a translation whose
// format placeholders disagree with the neutral baseline.
const MismatchFinding = "format parameter mismatch"

// CodeReference points at a place in source code that uses a resource key.
// The entry stores references opaquely; an external scanner supplies them.
type CodeReference struct {
	File string
	Line int
	Text string
}

// Entry is one logical resource key across all cultures of its table: it
// binds the key to the per-culture language stores, projects values and
// comments across the culture set, and derives validation state.
//
// Entries are created and discarded by their Table and are identified by
// owner plus key, not by pointer: two Entry instances with the same table
// identity and key are equal.
type Entry struct {
	owner    *Table
	key      string
	cultures []culture.ID // canonical order, baseline first
	langs    map[culture.ID]Language
	neutral  Language
	values   *Projection[string]
	comments *Projection[string]
	codeRefs []CodeReference

	// Changed fires synchronously on the mutating goroutine for every
	// logical property change. See SetKey for the rejected-rename case.
	Changed notify.Signal[Event]
}

func newEntry(owner *Table, key string, langs map[culture.ID]Language, cultures []culture.ID) (*Entry, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	if len(cultures) == 0 {
		return nil, ErrNoCultures
	}
	e := &Entry{
		owner:    owner,
		key:      key,
		cultures: cultures,
		langs:    langs,
		neutral:  langs[cultures[0]],
	}
	e.buildProjections()
	return e, nil
}

// buildProjections replaces both projections with fresh ones closing over the
// current key and re-attaches the internal change forwarders. Called on
// construction and after every successful rename; stale projection pointers
// held by observers keep reading the old key.
func (e *Entry) buildProjections() {
	key := e.key
	e.values = NewProjection(e.langs, e.cultures,
		func(l Language) string { return l.Value(key) },
		func(l Language, v string) bool { return l.SetValue(key, v) },
	)
	e.comments = NewProjection(e.langs, e.cultures,
		func(l Language) string { return l.Comment(key) },
		func(l Language, v string) bool { return l.SetComment(key, v) },
	)
	e.values.Changed.Subscribe(func(culture.ID) { e.Changed.Emit(EventValues) })
	e.comments.Changed.Subscribe(func(culture.ID) { e.Changed.Emit(EventComment) })
}

// Table returns the owning table.
func (e *Entry) Table() *Table { return e.owner }

// Key returns the current resource key.
func (e *Entry) Key() string { return e.key }

// Values is the per-culture value projection for this entry's key.
// The returned projection is replaced after a successful SetKey.
func (e *Entry) Values() *Projection[string] { return e.values }

// Comments is the per-culture comment projection for this entry's key.
// The returned projection is replaced after a successful SetKey.
func (e *Entry) Comments() *Projection[string] { return e.comments }

// Cultures returns the entry's culture set in canonical order, baseline first.
func (e *Entry) Cultures() []culture.ID { return slices.Clone(e.cultures) }

// NeutralCulture returns the baseline culture of the entry.
func (e *Entry) NeutralCulture() culture.ID { return e.cultures[0] }

// SetKey renames the entry to newKey across every culture.
//
// The rename is validated against all cultures before anything is mutated:
// a key collision in any culture fails with DuplicateKeyError, a culture
// refusing modification fails with ImmutableError, and in both cases no
// culture is touched. Renaming to the current key is a successful no-op.
//
// On rejection EventKey is still emitted before the error returns, so bound
// consumers re-validate and discover the key did not change. A change
// notification therefore never implies success; check the returned error.
func (e *Entry) SetKey(newKey string) error {
	if newKey == e.key {
		return nil
	}
	if newKey == "" {
		e.Changed.Emit(EventKey)
		return ErrEmptyKey
	}

	if err := e.validateRename(newKey); err != nil {
		e.Changed.Emit(EventKey)
		return err
	}

	oldKey := e.key
	for _, id := range e.cultures {
		// Collisions and immutability were checked up front; a failure
		// here means a collaborator broke its contract mid-rename.
		if err := e.langs[id].RenameKey(oldKey, newKey); err != nil {
			return err
		}
	}
	e.key = newKey
	if e.owner != nil {
		e.owner.rekey(oldKey, newKey)
	}
	e.buildProjections()
	e.Changed.Emit(EventKey)
	return nil
}

func (e *Entry) validateRename(newKey string) error {
	if e.owner != nil {
		if _, taken := e.owner.entries[newKey]; taken {
			return &DuplicateKeyError{Key: newKey}
		}
	}
	for _, id := range e.cultures {
		if e.langs[id].KeyExists(newKey) {
			return &DuplicateKeyError{Key: newKey, Culture: id}
		}
	}
	for _, id := range e.cultures {
		if !e.langs[id].CanChange() {
			return &ImmutableError{Culture: id}
		}
	}
	return nil
}

// Comment returns the neutral-language comment, empty string when unset.
// Comments of other cultures are reachable through Comments.
func (e *Entry) Comment() string {
	return e.neutral.Comment(e.key)
}

// SetComment writes the comment through to the neutral language only.
func (e *Entry) SetComment(comment string) {
	// Going through the projection keeps change notification uniform.
	_ = e.comments.Set(e.cultures[0], comment)
}

// IsInvariant reports whether the neutral comment carries the invariant
// marker, case-insensitively. Invariant entries are intentionally
// untranslated and exempt from mismatch validation.
func (e *Entry) IsInvariant() bool {
	return invariantMarkerRegex.MatchString(e.Comment())
}

// SetInvariant marks or unmarks the entry as invariant. Marking appends the
// marker to the neutral comment if absent; unmarking strips every occurrence
// of the marker, regardless of case, including repeated or malformed ones.
func (e *Entry) SetInvariant(invariant bool) {
	comment := e.Comment()
	switch {
	case invariant && !e.IsInvariant():
		if comment == "" {
			e.SetComment(InvariantMarker)
		} else {
			e.SetComment(comment + " " + InvariantMarker)
		}
	case !invariant && e.IsInvariant():
		e.SetComment(invariantMarkerRegex.ReplaceAllLiteralString(comment, ""))
	}
}

// HasFormatMismatch reports whether the non-empty values of this entry
// disagree on their {N} placeholder sets. Always false for invariant entries.
func (e *Entry) HasFormatMismatch() bool {
	return e.HasFormatMismatchIn(e.cultures)
}

// HasFormatMismatchIn is HasFormatMismatch restricted to the given cultures,
// for comparing a specific pair or group. Cultures outside the entry's set
// are ignored.
func (e *Entry) HasFormatMismatchIn(cultures []culture.ID) bool {
	if e.IsInvariant() {
		return false
	}
	values := make([]string, 0, len(cultures))
	for _, id := range cultures {
		lang, ok := e.langs[id]
		if !ok {
			continue
		}
		values = append(values, lang.Value(e.key))
	}
	return FormatMismatch(values...)
}

// Finding returns the validation finding for one culture, empty when there is
// none. The neutral culture never has a finding (it is the baseline), and a
// culture with an empty value - or compared against an empty baseline - is
// never flagged. Findings are data, not errors: they describe content
// quality, and computing them cannot fail.
func (e *Entry) Finding(id culture.ID) string {
	if id == e.cultures[0] {
		return ""
	}
	lang, ok := e.langs[id]
	if !ok {
		return ""
	}
	if e.IsInvariant() {
		return ""
	}
	value := lang.Value(e.key)
	baseline := e.neutral.Value(e.key)
	if value == "" || baseline == "" {
		return ""
	}
	if FormatParams(value) != FormatParams(baseline) {
		return MismatchFinding
	}
	return ""
}

// Findings returns the non-empty findings per culture. Entries without
// findings yield an empty map.
func (e *Entry) Findings() map[culture.ID]string {
	findings := make(map[culture.ID]string)
	for _, id := range e.cultures {
		if f := e.Finding(id); f != "" {
			findings[id] = f
		}
	}
	return findings
}

// FileExists reports whether any culture of the entry has a backing file.
func (e *Entry) FileExists() bool {
	for _, id := range e.cultures {
		if e.langs[id].HasFile() {
			return true
		}
	}
	return false
}

// CodeReferences returns the source locations using this key, as supplied by
// an external scanner. The entry does not interpret them.
func (e *Entry) CodeReferences() []CodeReference {
	return slices.Clone(e.codeRefs)
}

// SetCodeReferences replaces the whole reference list and emits
// EventCodeReferences. The previous list is discarded, not merged.
func (e *Entry) SetCodeReferences(refs []CodeReference) {
	e.codeRefs = slices.Clone(refs)
	e.Changed.Emit(EventCodeReferences)
}

// Equal reports identity by owner and key: two entries are equal iff they
// belong to tables with the same identity and carry the same key, regardless
// of whether they are the same instance.
func (e *Entry) Equal(other *Entry) bool {
	if other == nil {
		return false
	}
	if (e.owner == nil) != (other.owner == nil) {
		return false
	}
	if e.owner != nil && e.owner.id != other.owner.id {
		return false
	}
	return e.key == other.key
}

// Hash combines the owner identity and the key, consistent with Equal.
func (e *Entry) Hash() uint64 {
	h := fnv.New64a()
	if e.owner != nil {
		_, _ = h.Write(e.owner.id[:])
	}
	_, _ = h.Write([]byte(e.key))
	return h.Sum64()
}

// String returns the key, which is how an entry is displayed.
func (e *Entry) String() string {
	return e.key
}
