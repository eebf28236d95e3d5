package check

import (
	"fmt"

	apperrors "inputguard/pkg/errors"
)

// Bounds is an optional inclusive range. A nil side is unbounded.
type Bounds struct {
	Min *float64
	Max *float64
}

func NoBounds() Bounds {
	return Bounds{}
}

func AtLeast(min float64) Bounds {
	return Bounds{Min: &min}
}

func AtMost(max float64) Bounds {
	return Bounds{Max: &max}
}

func Between(min, max float64) Bounds {
	return Bounds{Min: &min, Max: &max}
}

// Number requires a non-zero number within b. A zero value is reported as
// missing. The result is a float64, so integers beyond 2^53 come back rounded.
func (c *Checker) Number(value any, name string, b Bounds) (float64, error) {
	if isFalsy(value) {
		return 0, apperrors.MissingValue(fmt.Sprintf("No %s provided", name))
	}
	n, ok := asNumber(value)
	if !ok {
		return 0, apperrors.WrongType(fmt.Sprintf("%s is not a number", name))
	}

	switch {
	case b.Min == nil && b.Max == nil:
		return n, nil
	case b.Min == nil:
		if n > *b.Max {
			return 0, apperrors.TooLarge(fmt.Sprintf("%s must be smaller than %s", name, formatNumber(*b.Max)))
		}
		return n, nil
	case b.Max == nil:
		if n < *b.Min {
			return 0, apperrors.TooSmall(fmt.Sprintf("%s must be bigger than %s", name, formatNumber(*b.Min)))
		}
		return n, nil
	}

	if *b.Min > *b.Max {
		return 0, apperrors.InvalidRange("min must be smaller than max")
	}
	if n < *b.Min || n > *b.Max {
		return 0, apperrors.OutOfRange(fmt.Sprintf("%s must be between %s and %s",
			name, formatNumber(*b.Min), formatNumber(*b.Max)))
	}
	return n, nil
}
