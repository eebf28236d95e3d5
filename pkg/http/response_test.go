package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "inputguard/pkg/errors"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"check failure", apperrors.EmptyValue("title is empty"), http.StatusUnprocessableEntity, apperrors.CodeEmptyValue, "title is empty"},
		{"invalid range", apperrors.InvalidRange("min must be smaller than max"), http.StatusInternalServerError, apperrors.CodeInvalidRange, "min must be smaller than max"},
		{"not found", apperrors.NotFound("check kind"), http.StatusNotFound, apperrors.CodeNotFound, "check kind not found"},
		{"plain error", errors.New("secret detail"), http.StatusInternalServerError, apperrors.CodeInternal, "An unexpected error occurred"},
		{"zero status", &apperrors.AppError{Code: "X", Message: "m"}, http.StatusInternalServerError, "X", "m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			require.NoError(t, WriteError(w, tt.err))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.NotContains(t, w.Body.String(), "secret detail")

			var body apperrors.ErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantMsg, body.Message)
		})
	}
}

func TestWriteSuccess(t *testing.T) {
	w := httptest.NewRecorder()
	require.NoError(t, WriteSuccess(w, map[string]bool{"equal": true}))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":{"equal":true}}`, w.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Value any `json:"value"`
	}

	tests := []struct {
		name     string
		body     string
		wantErr  bool
		wantCode string
	}{
		{"number kept as json.Number", `{"value": 10}`, false, ""},
		{"empty body", "  ", true, apperrors.CodeInvalidInput},
		{"malformed", `{"value":`, true, apperrors.CodeInvalidInput},
		{"trailing value", `{"value": 1} {"value": 2}`, true, apperrors.CodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var p payload
			err := DecodeJSON(r, &p)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.HasCode(err, tt.wantCode))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, json.Number("10"), p.Value)
		})
	}
}

func TestDecodeJSON_TooLarge(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"value": "0123456789"}`))
	r.Body = http.MaxBytesReader(w, r.Body, 4)

	var p struct{}
	err := DecodeJSON(r, &p)
	require.Error(t, err)
	assert.Equal(t, http.StatusRequestEntityTooLarge, apperrors.AsAppError(err).StatusCode())
}
