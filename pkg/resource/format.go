package resource

import (
	"regexp"
	"strconv"
)

// Positional placeholders of the form {N}, optionally with an alignment
// ({0,-10}) and/or a format specification ({0:n2}, {1,8:d}).
var formatParamRegex = regexp.MustCompile(`\{(\d+)(?:,-?\d+)?(?::[^{}]*)?\}`)

// maxFormatParamIndex caps which placeholder indices participate in the bit
// pattern. Indices beyond it never occur in real format strings and are
// ignored rather than overflowing the mask.
const maxFormatParamIndex = 63

// FormatParams returns the placeholder bit pattern of s: bit N is set iff the
// positional placeholder {N} occurs at least once. Repeated occurrences of
// the same index are indistinguishable from a single one.
func FormatParams(s string) uint64 {
	var pattern uint64
	for _, m := range formatParamRegex.FindAllStringSubmatch(s, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil || n > maxFormatParamIndex {
			continue
		}
		pattern |= 1 << n
	}
	return pattern
}

// FormatMismatch reports whether the non-empty strings in values disagree on
// their placeholder bit patterns. Empty strings are excluded: a missing
// translation is not a mismatch by itself. Zero or one distinct pattern among
// the non-empty strings means no mismatch.
func FormatMismatch(values ...string) bool {
	first := uint64(0)
	seen := false
	for _, v := range values {
		if v == "" {
			continue
		}
		p := FormatParams(v)
		if !seen {
			first, seen = p, true
			continue
		}
		if p != first {
			return true
		}
	}
	return false
}
