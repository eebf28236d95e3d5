package middleware

import (
	"net/http"

	apperrors "inputguard/pkg/errors"
	httputil "inputguard/pkg/http"
)

// MaxRequestSize caps the request body. Declared lengths over the limit are
// rejected up front; other bodies fail on read past the limit.
func MaxRequestSize(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				err := apperrors.New(apperrors.CodeInvalidInput, "Request body too large", http.StatusRequestEntityTooLarge)
				_ = httputil.WriteError(w, err)
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}
