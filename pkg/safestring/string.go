package safestring

import (
	"fmt"

	"github.com/stefvanhouten/safestring/pkg/escape"
)

// String is an immutable character sequence tagged with the one Context it is
// safe to be emitted into. Instances are only produced through the factory
// functions in this package, so holding a non-zero String is holding proof
// that its content passed through (or was asserted to have passed through)
// its context's escape routine.
//
// The zero value carries ContextUnspecified and fails every operation.
type String struct {
	ctx   Context
	value string
}

// Untrusted ingests raw data into ctx by escaping it. raw is reduced to its
// string form first, so any value can be ingested; use this for everything
// crossing the trust boundary: form input, headers, external API payloads,
// database fields, config values.
func Untrusted(ctx Context, raw any) (String, error) {
	esc, err := escaperFor(ctx)
	if err != nil {
		return String{}, err
	}
	content, err := esc.escape(stringify(raw))
	if err != nil {
		return String{}, err
	}
	return String{ctx: ctx, value: content}, nil
}

// Trusted wraps data verbatim, asserting it is already safe in ctx. No
// validation is performed beyond resolving the context; the caller carries
// the proof, typically because data came from another String of the same
// context or from a literal authored for it.
func Trusted(ctx Context, data string) (String, error) {
	if _, err := escaperFor(ctx); err != nil {
		return String{}, err
	}
	return String{ctx: ctx, value: data}, nil
}

// ParameterizedText builds a parameterized-text variant by splicing the
// neutralized, quoted form of each value into the %s markers of tmpl. It
// returns ErrPlaceholderCountMismatch when the value count does not equal the
// marker count.
//
// The substitution is a textual mitigation only; see pkg/escape's
// ParameterizedText for the full caveat.
func ParameterizedText(tmpl string, values ...any) (String, error) {
	strs := make([]string, len(values))
	for i, v := range values {
		strs[i] = stringify(v)
	}
	content, err := escape.ParameterizedText(tmpl, strs...)
	if err != nil {
		return String{}, err
	}
	return String{ctx: ContextParameterizedText, value: content}, nil
}

// Per-context ingestion helpers for the common untrusted path.

func UntrustedMarkup(raw any) (String, error) {
	return Untrusted(ContextMarkup, raw)
}

func UntrustedStructuredData(raw any) (String, error) {
	return Untrusted(ContextStructuredData, raw)
}

func UntrustedURL(raw any) (String, error) {
	return Untrusted(ContextURL, raw)
}

func UntrustedQueryArgument(raw any) (String, error) {
	return Untrusted(ContextQueryArgument, raw)
}

func UntrustedEmailAddress(raw any) (String, error) {
	return Untrusted(ContextEmailAddress, raw)
}

// Context reports the output environment s is safe for.
func (s String) Context() Context {
	return s.ctx
}

// String returns the safe content for direct emission into s's context.
func (s String) String() string {
	return s.value
}

// IsZero reports whether s is the unusable zero value.
func (s String) IsZero() bool {
	return s.ctx == ContextUnspecified && s.value == ""
}

// stringify reduces an arbitrary value to the string form escaping operates
// on. Plain strings pass through without allocation.
func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
