package middleware

import (
	"net/http"

	"github.com/filedrop/filedrop/internal/ctxkeys"
	"github.com/filedrop/filedrop/internal/session"
)

// Identity resolves the identity cookie into the request context. Requests
// without a resolvable identity continue as anonymous; enforcement happens in
// RequireUser so public routes share the same chain.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := session.UserID(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		ctx := ctxkeys.WithUserID(r.Context(), userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireUser redirects anonymous requests to the login page.
func RequireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ctxkeys.UserID(r.Context()) == 0 {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	}
}

// RequireGuest redirects authenticated requests away from the auth pages.
func RequireGuest(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ctxkeys.UserID(r.Context()) != 0 {
			http.Redirect(w, r, "/files", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	}
}
