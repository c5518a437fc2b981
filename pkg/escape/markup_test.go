package escape_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stefvanhouten/safestring/pkg/escape"
)

func TestMarkup(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "escapes script tag",
			input:    "<script>alert('xss')</script>",
			expected: "&lt;script&gt;alert(&#39;xss&#39;)&lt;/script&gt;",
		},
		{
			name:     "escapes quotes and ampersands",
			input:    `"test" & 'value'`,
			expected: "&#34;test&#34; &amp; &#39;value&#39;",
		},
		{
			name:     "leaves plain text alone",
			input:    "normal text",
			expected: "normal text",
		},
		{
			name:     "handles empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "double-encodes already escaped text",
			input:    "&lt;b&gt;",
			expected: "&amp;lt;b&amp;gt;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, escape.Markup(tt.input))
		})
	}
}

func TestUnescapeMarkup(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "decodes numeric and named references",
			input:    "&lt;script&gt;alert(&#39;xss&#39;)&lt;/script&gt;",
			expected: "<script>alert('xss')</script>",
		},
		{
			name:     "decodes non-canonical encodings",
			input:    "&#x3C;b&#62;",
			expected: "<b>",
		},
		{
			name:     "leaves plain text alone",
			input:    "normal text",
			expected: "normal text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, escape.UnescapeMarkup(tt.input))
		})
	}
}

func TestMarkupRoundTrip(t *testing.T) {
	inputs := []string{
		"plain",
		"<b>bold & 'quoted'</b>",
		`"double" <tag attr='v'>`,
		"unicode ✓ & emoji 🔒",
		"",
	}

	for _, input := range inputs {
		assert.Equal(t, input, escape.UnescapeMarkup(escape.Markup(input)))
	}
}
