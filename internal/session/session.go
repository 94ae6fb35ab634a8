// Package session reads and writes the identity cookie.
//
// The cookie carries the user id as a raw, unsigned integer. Any client that
// can set its own cookies can therefore claim any identity; this is a
// documented gap inherited from the system this app replaces, kept so that
// a real session layer can be slotted in without changing callers.
package session

import (
	"net/http"
	"strconv"
)

const cookieName = "user_id"

// UserID extracts the user id established at login. Returns false when the
// cookie is absent or does not parse as a positive integer.
func UserID(r *http.Request) (int64, bool) {
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return 0, false
	}

	id, err := strconv.ParseInt(cookie.Value, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}

// SetUserID establishes the identity cookie after a successful login.
func SetUserID(w http.ResponseWriter, id int64) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    strconv.FormatInt(id, 10),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear removes the identity cookie at logout.
func Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
