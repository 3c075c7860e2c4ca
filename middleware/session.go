// Package middleware wires the caller's bearer token into request context.
// The console does not verify tokens itself; the remote API rejects forged
// credentials on every call, so this layer only shapes access (logged-in vs
// not, admin vs viewer) the same way the original console's route guards did.
package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/arvind407/EasyPickle/handlers"
	"github.com/arvind407/EasyPickle/session"
)

// Authenticate requires a parseable, unexpired bearer token and stores the
// resulting session in the request context.
func Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		sess, err := session.FromToken(strings.TrimPrefix(header, "Bearer "), time.Now)
		if err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		ctx := handlers.SessionIntoContext(r.Context(), sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin gates the mutating console routes. Must run after
// Authenticate.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := handlers.SessionFromContext(r.Context())
		if !sess.IsAdmin() {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
