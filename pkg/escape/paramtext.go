package escape

import (
	"fmt"
	"strings"
)

// Marker is the positional placeholder recognized in parameterized-text
// templates.
const Marker = "%s"

// paramValueReplacer neutralizes quote and control characters in a value
// before it is spliced into a template. Single quotes are doubled, double
// quotes, slashes and backslashes are backslash-escaped, and line breaks and
// tabs are stripped. Applied in a single pass so replacements never
// re-process each other's output.
var paramValueReplacer = strings.NewReplacer(
	`\`, `\\`,
	`'`, `''`,
	`"`, `\"`,
	`/`, `\/`,
	"\n", "",
	"\r", "",
	"\t", "",
)

// ParameterizedValue neutralizes quote and control characters in a single
// value and wraps it in quote delimiters, producing the form a value takes
// inside a substituted template.
func ParameterizedValue(s string) string {
	return "'" + paramValueReplacer.Replace(s) + "'"
}

// ParameterizedText splices the neutralized, quoted form of each value into
// the %s markers of tmpl, in order. It returns ErrPlaceholderCountMismatch
// when the number of values does not equal the number of markers. There is no
// inverse: constructing is the only supported direction.
//
// This is a textual mitigation built on a fixed character blacklist, not a
// parameter-binding protocol. It does not defend against encoding-specific
// bypasses and must not be treated as a data-access safety boundary; real
// query execution belongs behind a driver's prepared statements.
func ParameterizedText(tmpl string, values ...string) (string, error) {
	markers := strings.Count(tmpl, Marker)
	if markers != len(values) {
		return "", fmt.Errorf("%w: template has %d markers, got %d values",
			ErrPlaceholderCountMismatch, markers, len(values))
	}

	var b strings.Builder
	b.Grow(len(tmpl))
	rest := tmpl
	for _, v := range values {
		i := strings.Index(rest, Marker)
		b.WriteString(rest[:i])
		b.WriteString(ParameterizedValue(v))
		rest = rest[i+len(Marker):]
	}
	b.WriteString(rest)
	return b.String(), nil
}
