package model

// CheckRequest is the body of POST /api/v1/checks/:kind. Value keeps whatever
// JSON shape the caller sent; numbers arrive as json.Number.
type CheckRequest struct {
	Name  string   `json:"name" validate:"required,max=100"`
	Value any      `json:"value"`
	Min   *float64 `json:"min,omitempty"`
	Max   *float64 `json:"max,omitempty"`
}

type CheckResult struct {
	Kind  string `json:"kind"`
	Value any    `json:"value"`
}

// CompareRequest is the body of the compare endpoints. Both sides must be
// present; their shape is checked by the comparison itself.
type CompareRequest struct {
	A any `json:"a" validate:"required"`
	B any `json:"b" validate:"required"`
}

type CompareResult struct {
	Equal bool `json:"equal"`
}
