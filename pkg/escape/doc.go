// Package escape provides per-context escaping and unescaping routines for
// emitting text into specific output environments.
//
// Each supported context owns exactly one forward encoding and one (possibly
// partial) inverse:
//
//   - Markup – HTML character-reference escaping of the five reserved
//     characters, with a full inverse.
//
//   - StructuredData – JSON string-literal encoding and decoding, with a full
//     inverse for well-formed literals.
//
//   - URL – first-line truncation followed by parse-and-reassemble
//     normalization; the inverse is a documented identity because dropped
//     structure cannot be recovered.
//
//   - QueryArgument – percent-encoding of a single query argument (space as
//     "+"), with a full inverse.
//
//   - EmailAddress – extraction of the first conservative local@domain.tld
//     match from untrusted input; the inverse is a documented identity.
//
//   - ParameterizedText – positional %s marker substitution with quote and
//     control-character neutralization. One-directional by design.
//
// # Usage
//
//	import "github.com/stefvanhouten/safestring/pkg/escape"
//
//	safe := escape.Markup(`<a href="x">`) // "&lt;a href=&#34;x&#34;&gt;"
//
//	q, err := escape.ParameterizedText(
//	    "SELECT * FROM users WHERE name = %s", "O'Brien")
//	// q == "SELECT * FROM users WHERE name = 'O''Brien'"
//
// # Error Handling
//
// Failures are reported through the sentinel errors in errors.go, wrapped
// with call-site detail; match them with errors.Is. Escaping and unescaping
// are all-or-nothing: no routine returns a partial result alongside an error.
//
// # Security Notes
//
// ParameterizedText is a best-effort textual defense, not a substitute for a
// driver's prepared statements. See its documentation before relying on it.
//
// # Thread Safety
//
// The package is stateless; every routine is a pure function over its input
// and safe for concurrent use.
package escape
