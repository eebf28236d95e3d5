package check

import (
	"fmt"
	"strings"
	"unicode/utf8"

	apperrors "inputguard/pkg/errors"
)

// URL trims value, escapes its first whitespace rune as %20 and requires one of
// the supported protocols. Later whitespace runes are left as they are.
func (c *Checker) URL(value any, name string) (string, error) {
	u, err := c.String(value, name)
	if err != nil {
		return "", err
	}
	u = escapeFirstSpace(u)

	if !hasAnyPrefix(u, c.protocols) {
		return "", apperrors.UnsupportedProtocol(fmt.Sprintf("must provide supported protocols for %s: %s",
			name, strings.Join(c.protocols, ", ")))
	}

	_, rest, _ := strings.Cut(u, "//")
	if utf8.RuneCountInString(rest) < c.minURLLength {
		return "", apperrors.TooShort(fmt.Sprintf("%s is too short", name))
	}

	return u, nil
}

// ImageURL is URL plus a case-sensitive image extension suffix.
func (c *Checker) ImageURL(value any, name string) (string, error) {
	u, err := c.URL(value, name+" link")
	if err != nil {
		return "", err
	}

	for _, ext := range c.imageExtensions {
		if strings.HasSuffix(u, ext) {
			return u, nil
		}
	}
	return "", apperrors.UnsupportedFormat(fmt.Sprintf("%s must have supported formats: %s",
		name, strings.Join(c.imageExtensions, ", ")))
}

func escapeFirstSpace(s string) string {
	i := strings.IndexFunc(s, isSpace)
	if i < 0 {
		return s
	}
	_, size := utf8.DecodeRuneInString(s[i:])
	return s[:i] + "%20" + s[i+size:]
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
