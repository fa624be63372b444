package handler

import (
	"net/http"

	"github.com/davydav/userstats/internal/auth"
	"github.com/davydav/userstats/internal/session"
)

// Redirect targets for failed auth guards. Each protected operation carries
// its own tag so the login page can explain why the user landed there.
const (
	redirectNoUserEdit   = "/login?no_user_edit=unauthorized"
	redirectNoUser       = "/login?no_user=unauthorized"
	redirectNoUserLink   = "/login?no_user_link=unauthorized"
	redirectNoUserUnlink = "/login?no_user_unlink=unauthorized"
)

// requireLogin returns the request's session when it is authenticated.
// Otherwise it writes a 401 envelope with the operation's message and
// redirect tag and returns nil.
func requireLogin(w http.ResponseWriter, r *http.Request, message, redirect string) *session.Session {
	sess := auth.SessionFrom(r.Context())
	if sess == nil || !sess.IsLoggedIn() {
		respond(w, r, Envelope{
			StatusCode: http.StatusUnauthorized,
			Message:    message,
			Redirect:   redirect,
		})
		return nil
	}
	return sess
}
