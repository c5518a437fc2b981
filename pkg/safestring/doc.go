// Package safestring tracks the origin and safety of strings across output
// contexts, so untrusted input can never reach markup, structured data, URLs,
// query arguments, email headers or parameterized query text without passing
// through the correct escaping first.
//
// The premise: every string arriving from outside the process – form input,
// headers, remote API payloads, database fields, config files – is unsafe by
// definition. Consumers ingest such data through Untrusted, which escapes it
// for exactly one Context and returns an immutable String carrying that tag.
// From then on the type system does the bookkeeping: combining a String with
// anything else re-escapes the other operand for the receiver's context
// instead of silently concatenating.
//
// # Contexts
//
// Six contexts are supported, each owning one escape algorithm and one
// (possibly partial) inverse:
//
//   - ContextMarkup – HTML character-reference escaping, full inverse
//   - ContextStructuredData – JSON string-literal encoding, full inverse
//   - ContextURL – first-line truncation plus URL normalization, no inverse
//   - ContextQueryArgument – percent-encoding of one query argument, full inverse
//   - ContextEmailAddress – conservative address extraction, no inverse
//   - ContextParameterizedText – %s marker substitution, one-directional
//
// # Upgrading
//
// Append, Format and FormatNamed route every operand through a single rule:
// same-context Strings are used verbatim; Strings from another context are
// unescaped through their own context and re-escaped for the receiver's;
// plain values are stringified and escaped directly. Safety is never
// inherited across contexts.
//
// # Usage
//
//	import "github.com/stefvanhouten/safestring/pkg/safestring"
//
//	greeting, _ := safestring.UntrustedMarkup("<b>" + userName + "</b>")
//	page, _ := greeting.Append(" & welcome")
//	// page.String() emits correctly escaped markup
//
//	q, err := safestring.ParameterizedText(
//	    "SELECT * FROM users WHERE name = %s AND id = %s", name, id)
//
// # Error Handling
//
// Failures are sentinel errors (see errors.go), wrapped with call-site detail
// and matched via errors.Is. Every error is raised synchronously at the
// offending call; nothing is retried, suppressed or returned partially.
//
// # Security Notes
//
// ParameterizedText is a textual mitigation built on a fixed character
// blacklist. It is suitable as a template-rendering helper, not as a
// data-access safety boundary; use a driver's prepared statements for real
// query execution.
//
// # Thread Safety
//
// Strings are immutable and the package holds no mutable state, so all
// operations are safe for unsynchronized concurrent use.
package safestring
