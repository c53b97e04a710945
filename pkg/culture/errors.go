package culture

import "errors"

// ErrMalformedTag indicates that an input string is not a well-formed
// BCP-47 language tag.
var ErrMalformedTag = errors.New("culture: malformed language tag")
