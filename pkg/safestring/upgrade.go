package safestring

import (
	"fmt"
	"strings"
)

// upgrade converts v into content safe for s's context.
//
// Safety is never inherited across contexts: a value safe for markup is not
// safe for a URL merely because both are strings. A same-context String is
// used verbatim; a String from another context is first unescaped through its
// own context and re-escaped for this one; anything else is stringified and
// escaped directly.
func (s String) upgrade(esc escaper, v any) (string, error) {
	other, ok := v.(String)
	if !ok {
		return esc.escape(stringify(v))
	}
	if other.ctx == s.ctx {
		return other.value, nil
	}
	otherEsc, err := escaperFor(other.ctx)
	if err != nil {
		return "", err
	}
	data, err := otherEsc.unescape(other.value)
	if err != nil {
		return "", err
	}
	return esc.escape(data)
}

// Append returns a new String of s's context containing s's content followed
// by the upgraded content of each value, in order.
func (s String) Append(values ...any) (String, error) {
	esc, err := escaperFor(s.ctx)
	if err != nil {
		return String{}, err
	}
	var b strings.Builder
	b.WriteString(s.value)
	for _, v := range values {
		content, err := s.upgrade(esc, v)
		if err != nil {
			return String{}, err
		}
		b.WriteString(content)
	}
	return String{ctx: s.ctx, value: b.String()}, nil
}

// Format treats s's content as an fmt format template and substitutes the
// upgraded form of every argument, returning a new String of s's context.
func (s String) Format(args ...any) (String, error) {
	esc, err := escaperFor(s.ctx)
	if err != nil {
		return String{}, err
	}
	upgraded := make([]any, len(args))
	for i, a := range args {
		content, err := s.upgrade(esc, a)
		if err != nil {
			return String{}, err
		}
		upgraded[i] = content
	}
	return String{ctx: s.ctx, value: fmt.Sprintf(s.value, upgraded...)}, nil
}

// FormatNamed replaces every {name} placeholder in s's content with the
// upgraded form of the corresponding map value, returning a new String of s's
// context. Placeholders with no entry in named are left untouched.
func (s String) FormatNamed(named map[string]any) (String, error) {
	esc, err := escaperFor(s.ctx)
	if err != nil {
		return String{}, err
	}
	pairs := make([]string, 0, len(named)*2)
	for name, v := range named {
		content, err := s.upgrade(esc, v)
		if err != nil {
			return String{}, err
		}
		pairs = append(pairs, "{"+name+"}", content)
	}
	return String{ctx: s.ctx, value: strings.NewReplacer(pairs...).Replace(s.value)}, nil
}
