package middleware

import (
	"log/slog"
	"net/http"

	"github.com/davydav/userstats/internal/auth"
	"github.com/davydav/userstats/internal/session"
)

// CookieName is the session identifier cookie shared by the middleware and
// the auth handlers.
const CookieName = "session_id"

// Sessions guarantees each browser exactly one live session: a request
// bearing a known token reuses its session, anything else gets a fresh one
// and a new cookie. Handlers read the session from the request context.
func Sessions(manager session.Manager, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var sess *session.Session

			if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
				sess = manager.Get(cookie.Value)
			}

			if sess == nil {
				created, err := manager.Create()
				if err != nil {
					logger.Error("create session", "error", err)
					http.Error(w, "Internal error", http.StatusInternalServerError)
					return
				}
				sess = created
				http.SetCookie(w, &http.Cookie{
					Name:     CookieName,
					Value:    sess.Token(),
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
					Secure:   r.TLS != nil,
				})
			}

			ctx := auth.WithSession(r.Context(), sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
