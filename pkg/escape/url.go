package escape

import (
	"fmt"
	"net/url"
	"strings"
)

// URL truncates s at the first line break, then reassembles the remainder
// through standard URL parsing so invalid structural characters are dropped
// or percent-encoded. The truncation closes off header injection through
// embedded newlines in redirect targets and similar header values.
//
// It returns ErrMalformedEncoding when the first line cannot be parsed as a
// URL at all.
func URL(s string) (string, error) {
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		s = s[:i]
	}
	u, err := url.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
	}
	return u.String(), nil
}

// UnescapeURL returns s unchanged. URL normalization drops structure that
// cannot be recovered, so this context has no true inverse; callers that
// round-trip a URL get back the already-normalized form, not the original
// input.
func UnescapeURL(s string) string {
	return s
}
