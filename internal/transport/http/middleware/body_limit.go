package middleware

import (
	"net/http"

	"peoplehub/internal/transport/http/api"
)

// BodyLimit caps write-request bodies. A declared Content-Length over
// the cap is rejected up front with the standard envelope; chunked
// bodies are still capped by the reader, surfacing on first read past
// the limit.
func BodyLimit(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if maxBytes <= 0 || !hasBody(r.Method) {
				next.ServeHTTP(w, r)
				return
			}
			if r.ContentLength > maxBytes {
				api.Fail(w, http.StatusRequestEntityTooLarge, "payload_too_large", "request body is too large", GetRequestID(r.Context()))
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

func hasBody(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	}
	return false
}
