package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"

	apperrors "inputguard/pkg/errors"
)

type extJSONEnvelope struct {
	V any `bson:"v"`
}

// DecodeExtJSON parses MongoDB Extended JSON (canonical or relaxed) holding a
// document or an array of documents. Documents come back as bson.D and arrays
// as bson.A.
func DecodeExtJSON(data []byte) (any, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, apperrors.InvalidInput("Request body is empty")
	}

	wrapped := make([]byte, 0, len(trimmed)+6)
	wrapped = append(wrapped, `{"v":`...)
	wrapped = append(wrapped, trimmed...)
	wrapped = append(wrapped, '}')

	var env extJSONEnvelope
	if err := bson.UnmarshalExtJSON(wrapped, false, &env); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInvalidInput, "Invalid Extended JSON", http.StatusBadRequest)
	}

	switch v := env.V.(type) {
	case bson.D:
		return v, nil
	case bson.A:
		for i, elem := range v {
			if _, ok := elem.(bson.D); !ok && elem != nil {
				return nil, apperrors.InvalidInput(fmt.Sprintf("Element %d is not a document", i))
			}
		}
		return v, nil
	}
	return nil, apperrors.InvalidInput("Body must be a document or an array of documents")
}

// EncodeExtJSON renders v as relaxed Extended JSON.
func EncodeExtJSON(v any) ([]byte, error) {
	data, err := bson.MarshalExtJSON(extJSONEnvelope{V: v}, false, false)
	if err != nil {
		return nil, err
	}

	var env struct {
		V json.RawMessage `json:"v"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	return env.V, nil
}
