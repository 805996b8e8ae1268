package translate

import "errors"

// ErrMalformedSource is the hard error every translator surfaces when its
// input text cannot be parsed into the source format's own data model at
// all (spec §4.7: translators "never throw for schema-level issues; they
// throw only for fatal parse failures"). Schema-level issues — an
// unsupported keyword, an unresolvable reference, a lossy mapping — are
// friction (package friction), not errors.
var ErrMalformedSource = errors.New("malformed source text")
