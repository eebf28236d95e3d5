package check

import (
	"cmp"
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
)

// SlicesEqual reports whether a and b hold the same elements in any order.
// Sorting happens on copies; a and b are left untouched.
func SlicesEqual[T cmp.Ordered](a, b []T) bool {
	if a == nil || b == nil || len(a) != len(b) {
		return false
	}
	as, bs := slices.Clone(a), slices.Clone(b)
	slices.Sort(as)
	slices.Sort(bs)
	return slices.Equal(as, bs)
}

// SequencesEqual is SlicesEqual for dynamically typed input. Elements are
// ordered by their text form and compared with strict equality, so 1 and "1"
// never match.
func SequencesEqual(a, b any) bool {
	if isFalsy(a) || isFalsy(b) {
		return false
	}
	as, ok := asSequence(a)
	if !ok {
		return false
	}
	bs, ok := asSequence(b)
	if !ok || len(as) != len(bs) {
		return false
	}

	sortByText(as)
	sortByText(bs)
	for i := range as {
		if !strictEqual(as[i], bs[i]) {
			return false
		}
	}
	return true
}

// RecordsEqual reports whether a and b are string-keyed maps with the same keys
// and strictly equal values. Nested maps and slices compare by reference.
func RecordsEqual(a, b any) bool {
	if isFalsy(a) || isFalsy(b) {
		return false
	}
	am, ok := asRecord(a)
	if !ok {
		return false
	}
	bm, ok := asRecord(b)
	if !ok {
		return false
	}

	ak := make([]string, 0, len(am))
	for k := range am {
		ak = append(ak, k)
	}
	bk := make([]string, 0, len(bm))
	for k := range bm {
		bk = append(bk, k)
	}
	if !SlicesEqual(ak, bk) {
		return false
	}

	for _, k := range ak {
		if !strictEqual(am[k], bm[k]) {
			return false
		}
	}
	return true
}

func sortByText(items []any) {
	keys := make(map[int]string, len(items))
	idx := make([]int, len(items))
	for i, v := range items {
		idx[i] = i
		keys[i] = sortText(v)
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return keys[idx[i]] < keys[idx[j]]
	})

	sorted := make([]any, len(items))
	for i, j := range idx {
		sorted[i] = items[j]
	}
	copy(items, sorted)
}

func sortText(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if f, ok := asNumber(v); ok {
		return formatNumber(f)
	}
	return fmt.Sprint(v)
}

// asRecord views a string-keyed map as map[string]any. Values are shared with
// v, not copied.
func asRecord(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case bson.M:
		return map[string]any(m), true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

func isJSONNumber(v any) bool {
	_, ok := v.(json.Number)
	return ok
}

// strictEqual compares comparable values by value and maps, slices and funcs
// by identity. A json.Number equals any number of the same value, so 1.0 and
// 1e0 match but 1 and "1" do not.
func strictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if isJSONNumber(a) || isJSONNumber(b) {
		fa, okA := asNumber(a)
		fb, okB := asNumber(b)
		return okA && okB && fa == fb
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	if va.Comparable() {
		return va.Equal(vb)
	}

	switch va.Kind() {
	case reflect.Slice:
		return va.Len() == vb.Len() && va.Pointer() == vb.Pointer()
	case reflect.Map, reflect.Func:
		return va.Pointer() == vb.Pointer()
	}
	return false
}
