package escape

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// Conservative local@domain.tld matcher. Deliberately stricter than what
	// RFC 5322 allows: the input may be an arbitrary header-injection payload
	// and only an unambiguous address is worth extracting.
	emailRegex = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,4}`)
)
