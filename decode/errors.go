package decode

import "errors"

// ErrMalformedInput is the hard error every decoder surfaces when its
// input text cannot be parsed as its own wire format at all (spec §7:
// "malformed input for a decoder" is one of the named hard-error cases).
var ErrMalformedInput = errors.New("malformed input")
