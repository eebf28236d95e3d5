package check

import (
	"fmt"
	"strings"
	"unicode"

	apperrors "inputguard/pkg/errors"
)

const countryCodeField = "countryCode"

// String requires non-empty text and returns it trimmed.
func (c *Checker) String(value any, name string) (string, error) {
	if isFalsy(value) {
		return "", apperrors.MissingValue("No string provided")
	}
	s, ok := asString(value)
	if !ok {
		return "", apperrors.WrongType(fmt.Sprintf("%s is not a string", name))
	}
	s = strings.TrimFunc(s, isSpace)
	if len(s) == 0 {
		return "", apperrors.EmptyValue(fmt.Sprintf("%s is empty", name))
	}
	return s, nil
}

func (c *Checker) ID(value any, name string) (string, error) {
	id, err := c.String(value, name)
	if err != nil {
		return "", err
	}
	if !c.codec.Valid(id) {
		return "", apperrors.InvalidFormat(fmt.Sprintf("%s is not a valid %s", name, c.codec.Name()))
	}
	return id, nil
}

// CountryCode only requires a non-empty string; no ISO 3166 shape is enforced.
func (c *Checker) CountryCode(value any) (string, error) {
	return c.String(value, countryCodeField)
}

// isSpace matches ECMAScript whitespace and line terminators: Unicode
// White_Space without U+0085, plus the byte order mark.
func isSpace(r rune) bool {
	return r == '\ufeff' || (r != '\u0085' && unicode.IsSpace(r))
}
