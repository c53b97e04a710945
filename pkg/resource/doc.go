// Package resource implements the in-memory model of a localized resource
// table: one logical key holding per-culture values and comments, kept
// consistent as cultures are added, values edited and keys renamed.
//
// # Architecture
//
// A Table owns an ordered set of cultures, one Language per culture, and one
// Entry per resource key. The Language interface is the storage collaborator:
// one Language instance serves all keys of one culture and may be shared
// across many entries. MemoryLanguage is the bundled map-backed
// implementation; file- or database-backed stores plug in through the same
// interface.
//
// An Entry exposes its per-culture content through two projections - Values
// and Comments - which apply a per-language getter/setter across the full
// culture set and raise a change signal whenever the underlying store reports
// a change. Derived state (per-culture findings, the invariant flag, format
// parameter mismatches) is computed on demand from the stored content and is
// never cached.
//
// # Usage
//
//	table, err := resource.NewTable("Strings",
//		[]culture.ID{culture.Neutral, culture.MustParse("de")})
//	if err != nil {
//		// handle invalid culture set
//	}
//
//	entry, err := table.Add("Greeting")
//	if err != nil {
//		// key already present
//	}
//
//	_ = entry.Values().Set(culture.Neutral, "Hello {0}")
//	_ = entry.Values().Set(culture.MustParse("de"), "Hallo {0}")
//
//	if entry.HasFormatMismatch() {
//		// a translation disagrees with the baseline placeholders
//	}
//
// # Concurrency
//
// The model is single-writer by contract: all mutation must be serialized by
// the owner. Change signals fire synchronously on the mutating goroutine; a
// listener may re-enter the entry but can observe projections rebuilt by an
// in-flight rename.
//
// # Error Handling
//
// Structural failures (duplicate key, immutable language) are returned from
// the mutating call and leave state untouched. Validation findings - per
// culture error texts and the mismatch flag - are plain data, never error
// returns.
package resource
