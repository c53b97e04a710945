// Package culture provides comparable culture identities for localized
// resource tables, built on BCP-47 language tags from golang.org/x/text.
//
// A culture identifies one translation column of a resource table. The zero
// value, exposed as Neutral, is the distinguished neutral (invariant) culture
// that serves as the baseline language of a table.
//
// Identities are plain comparable values and can be used as map keys:
//
//	de, err := culture.Parse("de-DE")
//	if err != nil {
//		// handle malformed tag
//	}
//
//	values := map[culture.ID]string{
//		culture.Neutral: "Hello",
//		de:              "Hallo",
//	}
//
// Sort orders a culture set deterministically with the neutral culture first,
// which is the convention the resource packages rely on to designate the
// baseline language.
package culture
