package safestring

import "fmt"

// EscapeFor runs a single context's forward encoding without constructing a
// String. It exists for consumers like template engines and data-access
// layers that escape at their own boundary and manage safety themselves.
//
// The structured-data context encodes text only and rejects anything else
// with ErrTypeMismatch; every other context reduces data to its string form
// first.
func EscapeFor(ctx Context, data any) (string, error) {
	esc, err := escaperFor(ctx)
	if err != nil {
		return "", err
	}
	if ctx == ContextStructuredData {
		s, ok := data.(string)
		if !ok {
			return "", fmt.Errorf("%w: structured-data context encodes text, got %T", ErrTypeMismatch, data)
		}
		return esc.escape(s)
	}
	return esc.escape(stringify(data))
}

// UnescapeFor runs a single context's inverse on text. For one-directional
// contexts the result is the documented identity (URL, email address) or
// ErrUnimplementedContext (parameterized text).
func UnescapeFor(ctx Context, text string) (string, error) {
	esc, err := escaperFor(ctx)
	if err != nil {
		return "", err
	}
	return esc.unescape(text)
}
