package model

import "slices"

const (
	KindString      = "string"
	KindID          = "id"
	KindURL         = "url"
	KindImageURL    = "image-url"
	KindCountryCode = "country-code"
	KindGeoCode     = "geocode"
	KindNumber      = "number"
	KindStringArray = "string-array"
)

// Kinds lists every check kind in the order they are documented.
var Kinds = []string{
	KindString,
	KindID,
	KindURL,
	KindImageURL,
	KindCountryCode,
	KindGeoCode,
	KindNumber,
	KindStringArray,
}

func IsKind(kind string) bool {
	return slices.Contains(Kinds, kind)
}
