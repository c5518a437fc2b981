package escape

import (
	"fmt"
	"net/url"
)

// QueryArgument percent-encodes every character that is not valid inside a
// single URL query argument, encoding space as "+".
func QueryArgument(s string) string {
	return url.QueryEscape(s)
}

// UnescapeQueryArgument decodes percent-encoded sequences and "+" back to
// their literal characters. It is a full inverse of QueryArgument and returns
// ErrMalformedEncoding for invalid percent sequences.
func UnescapeQueryArgument(s string) (string, error) {
	out, err := url.QueryUnescape(s)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
	}
	return out, nil
}
