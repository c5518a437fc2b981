package escape

import "fmt"

// EmailAddress extracts the first substring of s matching a conservative
// local@domain.tld pattern and discards everything around it, which defeats
// header injection through appended addresses or extra header lines. It
// returns ErrNoAddressFound when s contains no well-formed address.
func EmailAddress(s string) (string, error) {
	addr := emailRegex.FindString(s)
	if addr == "" {
		return "", fmt.Errorf("%w in %q", ErrNoAddressFound, s)
	}
	return addr, nil
}

// UnescapeEmailAddress returns s unchanged. Extraction discards input that
// cannot be recovered, so this context has no inverse.
func UnescapeEmailAddress(s string) string {
	return s
}
