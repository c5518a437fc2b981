package safestring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stefvanhouten/safestring/pkg/safestring"
)

func TestEscapeFor(t *testing.T) {
	tests := []struct {
		name     string
		ctx      safestring.Context
		data     any
		expected string
	}{
		{
			name:     "markup",
			ctx:      safestring.ContextMarkup,
			data:     "<b>",
			expected: "&lt;b&gt;",
		},
		{
			name:     "structured data",
			ctx:      safestring.ContextStructuredData,
			data:     "x",
			expected: `"x"`,
		},
		{
			name:     "query argument",
			ctx:      safestring.ContextQueryArgument,
			data:     "a b",
			expected: "a+b",
		},
		{
			name:     "parameterized value",
			ctx:      safestring.ContextParameterizedText,
			data:     "O'Brien",
			expected: "'O''Brien'",
		},
		{
			name:     "numbers are stringified",
			ctx:      safestring.ContextMarkup,
			data:     7,
			expected: "7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := safestring.EscapeFor(tt.ctx, tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestEscapeForTypeMismatch(t *testing.T) {
	// The structured-data context encodes text only; other kinds are a
	// contract violation, not something to stringify silently.
	_, err := safestring.EscapeFor(safestring.ContextStructuredData, 42)
	assert.ErrorIs(t, err, safestring.ErrTypeMismatch)
}

func TestEscapeForUnspecifiedContext(t *testing.T) {
	_, err := safestring.EscapeFor(safestring.ContextUnspecified, "x")
	assert.ErrorIs(t, err, safestring.ErrUnimplementedContext)
}

func TestUnescapeFor(t *testing.T) {
	t.Run("markup inverse", func(t *testing.T) {
		got, err := safestring.UnescapeFor(safestring.ContextMarkup, "&lt;b&gt;")
		require.NoError(t, err)
		assert.Equal(t, "<b>", got)
	})

	t.Run("query argument inverse", func(t *testing.T) {
		got, err := safestring.UnescapeFor(safestring.ContextQueryArgument, "a+b%26c")
		require.NoError(t, err)
		assert.Equal(t, "a b&c", got)
	})

	t.Run("url identity", func(t *testing.T) {
		got, err := safestring.UnescapeFor(safestring.ContextURL, "http://host/a%20b")
		require.NoError(t, err)
		assert.Equal(t, "http://host/a%20b", got)
	})

	t.Run("email identity", func(t *testing.T) {
		got, err := safestring.UnescapeFor(safestring.ContextEmailAddress, "user@example.com")
		require.NoError(t, err)
		assert.Equal(t, "user@example.com", got)
	})

	t.Run("parameterized text has no inverse", func(t *testing.T) {
		_, err := safestring.UnescapeFor(safestring.ContextParameterizedText, "id = '1'")
		assert.ErrorIs(t, err, safestring.ErrUnimplementedContext)
	})

	t.Run("malformed structured data", func(t *testing.T) {
		_, err := safestring.UnescapeFor(safestring.ContextStructuredData, "not a literal")
		assert.ErrorIs(t, err, safestring.ErrMalformedEncoding)
	})
}

func TestEscapeUnescapeRoundTrip(t *testing.T) {
	inputs := []string{
		"plain",
		`<b>bold & "quoted"</b>`,
		"spaces and + signs",
		"unicode ✓",
	}

	roundTrip := []safestring.Context{
		safestring.ContextMarkup,
		safestring.ContextStructuredData,
		safestring.ContextQueryArgument,
	}

	for _, ctx := range roundTrip {
		for _, input := range inputs {
			escaped, err := safestring.EscapeFor(ctx, input)
			require.NoError(t, err)
			got, err := safestring.UnescapeFor(ctx, escaped)
			require.NoError(t, err)
			assert.Equal(t, input, got, "context %s", ctx)
		}
	}
}
