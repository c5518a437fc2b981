package escape

import "errors"

// Errors returned by the context escapers. They are raised synchronously at
// the offending call and never retried or suppressed; callers decide whether
// to surface them or substitute a default.
var (
	// ErrMalformedEncoding is returned when an unescape routine receives text
	// that does not conform to its context's encoding rules.
	ErrMalformedEncoding = errors.New("malformed encoding")

	// ErrNoAddressFound is returned when input contains no well-formed email
	// address to extract.
	ErrNoAddressFound = errors.New("no email address found")

	// ErrPlaceholderCountMismatch is returned when the number of values
	// supplied to a parameterized-text template does not equal the number of
	// placeholder markers in it.
	ErrPlaceholderCountMismatch = errors.New("placeholder count mismatch")
)
