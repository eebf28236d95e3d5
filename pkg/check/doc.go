// Package check validates and normalizes untrusted input before it is persisted
// or used in queries.
//
// Every check works on a single value, returns the normalized value on success
// and fails fast with an *apperrors.AppError whose Code names the failure kind
// (MISSING_VALUE, WRONG_TYPE, EMPTY_VALUE, ...). Message texts are stable and
// safe to show to end users.
//
// Inputs are typed as any because they usually come straight from a decoded
// JSON or BSON payload. A value counts as missing when it is nil, a nil
// pointer/map/slice, the empty string, a numeric zero or NaN, or false. This
// means a legitimate 0 is reported missing by Number and GeoCode.
//
// Checks:
//   - String: trims surrounding whitespace. Whitespace follows ECMAScript:
//     U+FEFF is trimmed, U+0085 is kept.
//   - ID: String plus identifier syntax (MongoDB ObjectID by default).
//   - URL: String, escapes the first whitespace rune as %20, requires http(s).
//   - ImageURL: URL plus an image file extension.
//   - CountryCode: String named "countryCode".
//   - GeoCode: latitude/longitude presence and type, normalizes country,
//     countryCode and city in place.
//   - Number: optional inclusive bounds. Results are float64, so integers
//     beyond 2^53 lose precision.
//   - StringSlice: non-empty slice of valid strings.
//
// Comparison helpers (SlicesEqual, SequencesEqual, RecordsEqual) never mutate
// their arguments. StringifyID and StringifyIDs return deep copies of documents
// with identifier handles under "_id" rendered as text.
package check
