package resource

import (
	"fmt"
	"iter"

	"github.com/langkit/langkit/pkg/culture"
	"github.com/langkit/langkit/pkg/notify"
)

// Projection is a read/write view that applies one per-language operation
// (a value or comment accessor for a specific key) across the full culture
// set of an entry.
//
// The getter and setter close over the entry's current key, so projections
// are rebuilt, never mutated, after a successful rename. Subscriptions on
// Changed do not survive a rebuild; observers should subscribe to the owning
// entry instead.
type Projection[T any] struct {
	languages map[culture.ID]Language
	order     []culture.ID
	get       func(Language) T
	set       func(Language, T) bool

	// Changed fires once per Set call that the underlying store reports as
	// an actual change, carrying the affected culture.
	Changed notify.Signal[culture.ID]
}

// NewProjection creates a projection over languages in the given culture
// order. All cultures in order must be present in languages.
func NewProjection[T any](
	languages map[culture.ID]Language,
	order []culture.ID,
	get func(Language) T,
	set func(Language, T) bool,
) *Projection[T] {
	return &Projection[T]{
		languages: languages,
		order:     order,
		get:       get,
		set:       set,
	}
}

// Get returns the projected value for the given culture.
// Fails with ErrCultureNotFound for cultures outside the entry's set.
func (p *Projection[T]) Get(id culture.ID) (T, error) {
	lang, ok := p.languages[id]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %q", ErrCultureNotFound, id)
	}
	return p.get(lang), nil
}

// Set writes the projected value for the given culture. When the underlying
// store reports a change, Changed fires exactly once before Set returns;
// writing an equal value raises no notification.
func (p *Projection[T]) Set(id culture.ID, v T) error {
	lang, ok := p.languages[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrCultureNotFound, id)
	}
	if p.set(lang, v) {
		p.Changed.Emit(id)
	}
	return nil
}

// All yields (culture, value) pairs for every culture of the entry, in the
// entry's canonical order (neutral first).
func (p *Projection[T]) All() iter.Seq2[culture.ID, T] {
	return func(yield func(culture.ID, T) bool) {
		for _, id := range p.order {
			if !yield(id, p.get(p.languages[id])) {
				return
			}
		}
	}
}
