package handler

import (
	"net/http"
	"time"
)

// Cookies beyond the session identifier: small persisted preferences.
const (
	cookieEmail    = "email"    // remember-me email for the login form
	cookieDarkmode = "darkmode" // "dark" or "light"
	cookiePic      = "pic"      // avatar URL
)

const rememberEmailTTL = 30 * 24 * time.Hour

func setCookie(w http.ResponseWriter, name, value string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		SameSite: http.SameSiteLaxMode,
	})
}

// clearCookie sends a cookie with a past expiry, which browsers treat as
// "delete immediately".
func clearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:    name,
		Value:   "",
		Path:    "/",
		MaxAge:  -1,
		Expires: time.Unix(0, 0),
	})
}

func cookieValue(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}
