package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/rbrd/isleep-backend-go/internal/handler/http/response"
)

const APIKeyHeader = "X-API-KEY"

// RequireAPIKey rejects requests whose X-API-KEY header does not match key.
// An empty key rejects every request.
func RequireAPIKey(key string) func(http.Handler) http.Handler {
	expected := []byte(key)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := []byte(r.Header.Get(APIKeyHeader))
			if len(expected) == 0 || subtle.ConstantTimeCompare(got, expected) != 1 {
				response.Unauthorized(w, "Missing or invalid API key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
