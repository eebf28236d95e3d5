package check

import (
	"fmt"
	"reflect"

	apperrors "inputguard/pkg/errors"
)

// StringSlice requires a non-empty slice whose elements all pass String. The
// returned slice holds the trimmed elements; value itself is not modified.
func (c *Checker) StringSlice(value any, name string) ([]string, error) {
	if isFalsy(value) {
		return nil, apperrors.MissingValue(fmt.Sprintf("No %s provided", name))
	}
	items, ok := asSequence(value)
	if !ok {
		return nil, apperrors.WrongType(fmt.Sprintf("%s is not an array", name))
	}
	if len(items) == 0 {
		return nil, apperrors.EmptyValue(fmt.Sprintf("%s is empty", name))
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		s, err := c.String(item, name+" element")
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// asSequence copies the elements of any slice or array into a []any.
func asSequence(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return append([]any(nil), s...), true
	case []string:
		out := make([]any, len(s))
		for i := range s {
			out[i] = s[i]
		}
		return out, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}
