package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeMissingValue        = "MISSING_VALUE"
	CodeWrongType           = "WRONG_TYPE"
	CodeEmptyValue          = "EMPTY_VALUE"
	CodeInvalidFormat       = "INVALID_FORMAT"
	CodeUnsupportedProtocol = "UNSUPPORTED_PROTOCOL"
	CodeTooShort            = "TOO_SHORT"
	CodeUnsupportedFormat   = "UNSUPPORTED_FORMAT"
	CodeMissingField        = "MISSING_FIELD"
	CodeTooSmall            = "TOO_SMALL"
	CodeTooLarge            = "TOO_LARGE"
	CodeOutOfRange          = "OUT_OF_RANGE"
	CodeInvalidRange        = "INVALID_RANGE"

	CodeNotFound     = "NOT_FOUND"
	CodeInternal     = "INTERNAL_ERROR"
	CodeInvalidInput = "INVALID_INPUT"
)

type AppError struct {
	Code       string         `json:"code"`
	Message    string         `json:"message"`
	HTTPStatus int            `json:"-"`
	Details    map[string]any `json:"details,omitempty"`
	Err        error          `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) StatusCode() int {
	return e.HTTPStatus
}

func (e *AppError) ToJSON() []byte {
	response := ErrorResponse{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	}
	data, _ := json.Marshal(response)
	return data
}

type ErrorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

func Wrap(err error, code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

func (e *AppError) WithDetails(details map[string]any) *AppError {
	e.Details = details
	return e
}

// Check builds a failed input check. Every check code except INVALID_RANGE is
// the caller's fault and maps to 422.
func Check(code, message string) *AppError {
	status := http.StatusUnprocessableEntity
	if code == CodeInvalidRange {
		status = http.StatusInternalServerError
	}
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: status,
	}
}

func MissingValue(message string) *AppError {
	return Check(CodeMissingValue, message)
}

func WrongType(message string) *AppError {
	return Check(CodeWrongType, message)
}

func EmptyValue(message string) *AppError {
	return Check(CodeEmptyValue, message)
}

func InvalidFormat(message string) *AppError {
	return Check(CodeInvalidFormat, message)
}

func UnsupportedProtocol(message string) *AppError {
	return Check(CodeUnsupportedProtocol, message)
}

func TooShort(message string) *AppError {
	return Check(CodeTooShort, message)
}

func UnsupportedFormat(message string) *AppError {
	return Check(CodeUnsupportedFormat, message)
}

func MissingField(message string) *AppError {
	return Check(CodeMissingField, message)
}

func TooSmall(message string) *AppError {
	return Check(CodeTooSmall, message)
}

func TooLarge(message string) *AppError {
	return Check(CodeTooLarge, message)
}

func OutOfRange(message string) *AppError {
	return Check(CodeOutOfRange, message)
}

func InvalidRange(message string) *AppError {
	return Check(CodeInvalidRange, message)
}

func NotFound(resource string) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
	}
}

func InvalidInput(message string) *AppError {
	return &AppError{
		Code:       CodeInvalidInput,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

func Internal(message string, err error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal("An unexpected error occurred", err)
}

// HasCode reports whether err carries an AppError with the given code anywhere
// in its chain.
func HasCode(err error, code string) bool {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return false
	}
	return appErr.Code == code
}
