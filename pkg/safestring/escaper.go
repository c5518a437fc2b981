package safestring

import (
	"fmt"

	"github.com/stefvanhouten/safestring/pkg/escape"
)

// escaper is the capability every concrete context supplies: a forward
// encoding and its (possibly partial) inverse. The implementation set is
// closed; contexts are an enumeration, not an extension point.
type escaper interface {
	escape(data string) (string, error)
	unescape(text string) (string, error)
}

// escaperFor resolves a context to its escaper. It is the single place the
// enumeration is dispatched, so an unknown or unspecified context fails
// identically everywhere.
func escaperFor(c Context) (escaper, error) {
	switch c {
	case ContextMarkup:
		return markupEscaper{}, nil
	case ContextStructuredData:
		return structuredDataEscaper{}, nil
	case ContextURL:
		return urlEscaper{}, nil
	case ContextQueryArgument:
		return queryArgumentEscaper{}, nil
	case ContextEmailAddress:
		return emailAddressEscaper{}, nil
	case ContextParameterizedText:
		return parameterizedTextEscaper{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnimplementedContext, c)
	}
}

type markupEscaper struct{}

func (markupEscaper) escape(data string) (string, error) {
	return escape.Markup(data), nil
}

func (markupEscaper) unescape(text string) (string, error) {
	return escape.UnescapeMarkup(text), nil
}

type structuredDataEscaper struct{}

func (structuredDataEscaper) escape(data string) (string, error) {
	return escape.StructuredData(data)
}

func (structuredDataEscaper) unescape(text string) (string, error) {
	return escape.UnescapeStructuredData(text)
}

type urlEscaper struct{}

func (urlEscaper) escape(data string) (string, error) {
	return escape.URL(data)
}

func (urlEscaper) unescape(text string) (string, error) {
	return escape.UnescapeURL(text), nil
}

type queryArgumentEscaper struct{}

func (queryArgumentEscaper) escape(data string) (string, error) {
	return escape.QueryArgument(data), nil
}

func (queryArgumentEscaper) unescape(text string) (string, error) {
	return escape.UnescapeQueryArgument(text)
}

type emailAddressEscaper struct{}

func (emailAddressEscaper) escape(data string) (string, error) {
	return escape.EmailAddress(data)
}

func (emailAddressEscaper) unescape(text string) (string, error) {
	return escape.UnescapeEmailAddress(text), nil
}

type parameterizedTextEscaper struct{}

// A lone value entering the parameterized context takes the same neutralized,
// quoted form it would take inside a template.
func (parameterizedTextEscaper) escape(data string) (string, error) {
	return escape.ParameterizedValue(data), nil
}

// Substituted text cannot be decomposed back into template and values.
func (parameterizedTextEscaper) unescape(text string) (string, error) {
	return "", fmt.Errorf("%w: parameterized-text has no inverse", ErrUnimplementedContext)
}
