package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	apperrors "inputguard/pkg/errors"
)

// DecodeJSON reads exactly one JSON value from the request body into dst.
// Numbers decode as json.Number so integer input is not widened to float64
// before it reaches a check.
func DecodeJSON(r *http.Request, dst any) error {
	body, err := ReadBody(r)
	if err != nil {
		return err
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(dst); err != nil {
		return apperrors.Wrap(err, apperrors.CodeInvalidInput, "Invalid request body", http.StatusBadRequest)
	}
	if dec.More() {
		return apperrors.InvalidInput("Request body must hold a single JSON value")
	}
	return nil
}

// ReadBody reads the raw request body. An empty body or one cut off by
// http.MaxBytesReader is an input error.
func ReadBody(r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, apperrors.New(apperrors.CodeInvalidInput, "Request body too large", http.StatusRequestEntityTooLarge)
		}
		return nil, apperrors.Wrap(err, apperrors.CodeInvalidInput, "Invalid request body", http.StatusBadRequest)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, apperrors.InvalidInput("Request body is empty")
	}
	return body, nil
}
