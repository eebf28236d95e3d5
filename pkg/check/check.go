package check

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"

	"inputguard/pkg/objectid"
)

var (
	DefaultProtocols       = []string{"http://", "https://"}
	DefaultImageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".svg"}
)

const DefaultMinURLLength = 0

type Checker struct {
	codec           objectid.Codec
	protocols       []string
	imageExtensions []string
	minURLLength    int
}

type Option func(*Checker)

func WithCodec(codec objectid.Codec) Option {
	return func(c *Checker) {
		if codec != nil {
			c.codec = codec
		}
	}
}

func WithProtocols(protocols ...string) Option {
	return func(c *Checker) {
		if len(protocols) > 0 {
			c.protocols = append([]string(nil), protocols...)
		}
	}
}

func WithImageExtensions(extensions ...string) Option {
	return func(c *Checker) {
		if len(extensions) > 0 {
			c.imageExtensions = append([]string(nil), extensions...)
		}
	}
}

// WithMinURLLength sets the minimum length of the part after "//". The default
// of 0 never rejects anything.
func WithMinURLLength(n int) Option {
	return func(c *Checker) {
		c.minURLLength = n
	}
}

func New(opts ...Option) *Checker {
	c := &Checker{
		codec:           objectid.Mongo,
		protocols:       DefaultProtocols,
		imageExtensions: DefaultImageExtensions,
		minURLLength:    DefaultMinURLLength,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Checker) Codec() objectid.Codec {
	return c.codec
}

var std = New()

// Default returns the checker behind the package-level functions.
func Default() *Checker {
	return std
}

func String(value any, name string) (string, error) {
	return std.String(value, name)
}

func ID(value any, name string) (string, error) {
	return std.ID(value, name)
}

func URL(value any, name string) (string, error) {
	return std.URL(value, name)
}

func ImageURL(value any, name string) (string, error) {
	return std.ImageURL(value, name)
}

func CountryCode(value any) (string, error) {
	return std.CountryCode(value)
}

func GeoCode(record any, name string) (any, error) {
	return std.GeoCode(record, name)
}

func Number(value any, name string, b Bounds) (float64, error) {
	return std.Number(value, name, b)
}

func StringSlice(value any, name string) ([]string, error) {
	return std.StringSlice(value, name)
}

func StringifyID(doc any) any {
	return std.StringifyID(doc)
}

func StringifyIDs(docs any) any {
	return std.StringifyIDs(docs)
}

func isFalsy(v any) bool {
	if v == nil {
		return true
	}
	if n, ok := v.(json.Number); ok {
		f, err := n.Float64()
		return n == "" || (err == nil && (f == 0 || math.IsNaN(f)))
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.Len() == 0
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f == 0 || math.IsNaN(f)
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

func asString(v any) (string, bool) {
	if s, ok := v.(string); ok {
		return s, true
	}
	if _, ok := v.(json.Number); ok {
		return "", false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

func asNumber(v any) (float64, bool) {
	if n, ok := v.(json.Number); ok {
		f, err := n.Float64()
		return f, err == nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
