package culture

import (
	"cmp"
	"fmt"
	"slices"

	"golang.org/x/text/language"
)

// ID identifies one culture of a resource table. The zero value is the
// neutral culture. IDs are comparable and usable as map keys.
type ID struct {
	tag language.Tag
}

// Neutral is the distinguished neutral (invariant) culture. It is the zero
// value of ID and acts as the baseline language of a resource table.
var Neutral = ID{}

// Parse interprets s as a BCP-47 language tag ("de", "fr-CA", "pt-BR").
// An empty string parses to Neutral. Malformed tags return ErrMalformedTag
// wrapped with the offending input.
func Parse(s string) (ID, error) {
	if s == "" {
		return Neutral, nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return Neutral, fmt.Errorf("%w: %q: %v", ErrMalformedTag, s, err)
	}
	return ID{tag: tag}, nil
}

// MustParse is like Parse but panics on malformed input.
// Intended for static culture sets known at compile time.
func MustParse(s string) ID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the canonical BCP-47 tag, "und" for the neutral culture.
func (id ID) String() string {
	if id.IsNeutral() {
		return "und"
	}
	return id.tag.String()
}

// IsNeutral reports whether id is the neutral culture.
func (id ID) IsNeutral() bool {
	return id.tag == language.Und
}

// Parent returns the next-broader culture: region variants collapse to their
// base language ("de-AT" to "de") and base languages collapse to Neutral.
// Parent of Neutral is Neutral.
func (id ID) Parent() ID {
	if id.IsNeutral() {
		return Neutral
	}
	return ID{tag: id.tag.Parent()}
}

// Compare orders IDs with the neutral culture first, then lexicographically
// by canonical tag. Returns a negative value when id sorts before other.
func (id ID) Compare(other ID) int {
	switch {
	case id.IsNeutral() && other.IsNeutral():
		return 0
	case id.IsNeutral():
		return -1
	case other.IsNeutral():
		return 1
	}
	return cmp.Compare(id.tag.String(), other.tag.String())
}

// Sort sorts ids in place into the canonical order: neutral first, then
// lexicographically by tag.
func Sort(ids []ID) {
	slices.SortFunc(ids, func(a, b ID) int { return a.Compare(b) })
}
