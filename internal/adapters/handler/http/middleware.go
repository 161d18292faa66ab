package http

import (
	"crypto/subtle"
	"net/http"
)

// requireAdminToken guards mutating routes with a static token compared
// against the X-Admin-Token header. An empty configured token disables the
// check, which is the single-player default.
func requireAdminToken(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token != "" {
				got := r.Header.Get("X-Admin-Token")
				if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
					respondError(w, http.StatusUnauthorized, "admin token required")
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
