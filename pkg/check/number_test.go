package check

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "inputguard/pkg/errors"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		bounds  Bounds
		want    float64
		code    string
		message string
	}{
		{name: "no bounds", input: 42, bounds: NoBounds(), want: 42},
		{name: "negative without bounds", input: -3.5, bounds: NoBounds(), want: -3.5},
		{name: "within range", input: 5, bounds: Between(1, 10), want: 5},
		{name: "at lower bound", input: 1, bounds: Between(1, 10), want: 1},
		{name: "at upper bound", input: 10, bounds: Between(1, 10), want: 10},
		{name: "float within range", input: 2.5, bounds: Between(1, 3), want: 2.5},
		{name: "json number", input: json.Number("7"), bounds: Between(1, 10), want: 7},
		{name: "unsigned", input: uint8(9), bounds: AtMost(9), want: 9},
		{name: "large integer rounds", input: int64(1<<53 + 1), bounds: NoBounds(), want: 1 << 53},
		{
			name:    "above range",
			input:   15,
			bounds:  Between(1, 10),
			code:    apperrors.CodeOutOfRange,
			message: "rating must be between 1 and 10",
		},
		{
			name:    "below range",
			input:   0.5,
			bounds:  Between(1, 10),
			code:    apperrors.CodeOutOfRange,
			message: "rating must be between 1 and 10",
		},
		{
			name:    "fractional bounds in message",
			input:   4,
			bounds:  Between(0.5, 2.25),
			code:    apperrors.CodeOutOfRange,
			message: "rating must be between 0.5 and 2.25",
		},
		{
			name:    "inverted bounds",
			input:   5,
			bounds:  Between(10, 1),
			code:    apperrors.CodeInvalidRange,
			message: "min must be smaller than max",
		},
		{name: "only max, under", input: 3, bounds: AtMost(10), want: 3},
		{
			name:    "only max, over",
			input:   11,
			bounds:  AtMost(10),
			code:    apperrors.CodeTooLarge,
			message: "rating must be smaller than 10",
		},
		{name: "only min, over", input: 30, bounds: AtLeast(3), want: 30},
		{
			name:    "only min, under",
			input:   2,
			bounds:  AtLeast(3),
			code:    apperrors.CodeTooSmall,
			message: "rating must be bigger than 3",
		},
		{
			name:    "zero is missing",
			input:   0,
			bounds:  Between(-5, 5),
			code:    apperrors.CodeMissingValue,
			message: "No rating provided",
		},
		{
			name:    "NaN is missing",
			input:   math.NaN(),
			bounds:  NoBounds(),
			code:    apperrors.CodeMissingValue,
			message: "No rating provided",
		},
		{name: "nil", input: nil, bounds: NoBounds(), code: apperrors.CodeMissingValue, message: "No rating provided"},
		{
			name:    "numeric string",
			input:   "5",
			bounds:  NoBounds(),
			code:    apperrors.CodeWrongType,
			message: "rating is not a number",
		},
		{
			name:    "bool",
			input:   true,
			bounds:  NoBounds(),
			code:    apperrors.CodeWrongType,
			message: "rating is not a number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Number(tt.input, "rating", tt.bounds)
			if tt.code != "" {
				assertCheckError(t, err, tt.code, tt.message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNumber_InvalidRangeIsConfigurationError(t *testing.T) {
	_, err := Number(5, "rating", Between(10, 1))
	require.Error(t, err)
	assert.Equal(t, 500, apperrors.AsAppError(err).StatusCode())
}
