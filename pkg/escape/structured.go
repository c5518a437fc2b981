package escape

import (
	"fmt"

	"github.com/goccy/go-json"
)

// StructuredData encodes s as a quoted, backslash-escaped JSON string literal
// suitable for splicing into structured-data output such as dynamically
// generated script payloads.
func StructuredData(s string) (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
	}
	return string(b), nil
}

// UnescapeStructuredData parses a JSON string literal back to the original
// text. It returns ErrMalformedEncoding when s is not a valid string literal.
func UnescapeStructuredData(s string) (string, error) {
	var out string
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
	}
	return out, nil
}
