package safestring

// Context identifies the one output environment a value is safe to be emitted
// into. The set is closed: each member owns exactly one escape algorithm and
// one (possibly partial) inverse.
//
// The zero value is ContextUnspecified; every operation on it fails with
// ErrUnimplementedContext.
type Context int

const (
	ContextUnspecified Context = iota
	ContextMarkup
	ContextStructuredData
	ContextURL
	ContextQueryArgument
	ContextEmailAddress
	ContextParameterizedText
)

// String returns the context name for diagnostics and error messages.
func (c Context) String() string {
	switch c {
	case ContextMarkup:
		return "markup"
	case ContextStructuredData:
		return "structured-data"
	case ContextURL:
		return "url"
	case ContextQueryArgument:
		return "query-argument"
	case ContextEmailAddress:
		return "email-address"
	case ContextParameterizedText:
		return "parameterized-text"
	default:
		return "unspecified"
	}
}
