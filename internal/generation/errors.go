package generation

import "errors"

// ErrMalformedResponse indicates the completion text could not be parsed as a
// JSON object. Content returned alongside it is always the fallback content.
var ErrMalformedResponse = errors.New("malformed completion response")

var errNotObject = errors.New("top-level value is not an object")
