package escape

import "html"

// Markup escapes the five reserved markup characters (&, <, >, ", ') so s can
// be emitted into an HTML context. Escaping is not idempotent: re-escaping
// already escaped text double-encodes, so each value must be ingested exactly
// once.
func Markup(s string) string {
	return html.EscapeString(s)
}

// UnescapeMarkup decodes all standard character references back to literal
// characters. UnescapeMarkup(Markup(s)) == s holds for every s; the reverse
// does not hold for text containing non-canonical encodings.
func UnescapeMarkup(s string) string {
	return html.UnescapeString(s)
}
