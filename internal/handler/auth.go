package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/davydav/userstats/internal/auth"
	"github.com/davydav/userstats/internal/middleware"
	"github.com/davydav/userstats/internal/session"
	"github.com/davydav/userstats/internal/store"
)

type AuthHandler struct {
	userStore *store.UserStore
	sessions  session.Manager
	logger    *slog.Logger
}

func NewAuthHandler(us *store.UserStore, sessions session.Manager, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		userStore: us,
		sessions:  sessions,
		logger:    logger,
	}
}

// LoginPage renders the login form, translating redirect tags from failed
// guards and login attempts into human-readable errors. The remembered
// email cookie pre-fills the form.
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	payload := map[string]any{
		"rememberedEmail": cookieValue(r, cookieEmail),
		"darkmode":        cookieValue(r, cookieDarkmode),
	}

	var errMsg string
	switch {
	case q.Has("login_error"):
		errMsg = "The email or password is incorrect."
	case q.Has("no_user_edit"):
		errMsg = "You must be logged in to edit your profile."
	case q.Has("no_user_link"):
		errMsg = "You must be logged in to claim a profile."
	case q.Has("no_user_unlink"):
		errMsg = "You must be logged in to unlink a profile."
	case q.Has("no_user"):
		errMsg = "You must be logged in to favourite a profile."
	}

	if errMsg != "" {
		payload["error"] = errMsg
		respond(w, r, Envelope{
			StatusCode: http.StatusBadRequest,
			Message:    "loaded login form with errors",
			Template:   "LoginFormView",
			Payload:    payload,
		})
		return
	}

	respond(w, r, Envelope{
		StatusCode: http.StatusOK,
		Message:    "Login form retrieved",
		Template:   "LoginFormView",
		Payload:    payload,
	})
}

// Login authenticates the posted credentials and marks the session. Empty
// fields, an unknown email, and a wrong password are deliberately
// indistinguishable to the client.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	invalid := Envelope{
		StatusCode: http.StatusBadRequest,
		Message:    "Invalid credentials.",
		Redirect:   "/login?login_error=invalid_credentials",
	}

	if email == "" || password == "" {
		respond(w, r, invalid)
		return
	}

	user, err := h.userStore.GetByEmail(email)
	if err != nil {
		h.logger.Error("login lookup", "error", err)
		respond(w, r, Envelope{StatusCode: http.StatusInternalServerError, Message: "Internal error"})
		return
	}
	if user == nil {
		respond(w, r, invalid)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		respond(w, r, invalid)
		return
	}

	sess := auth.SessionFrom(r.Context())
	sess.Set(session.KeyIsLoggedIn, true)
	sess.Set(session.KeyUserID, user.ID)
	sess.Set(session.KeyEmail, user.Email)

	if r.FormValue("rememberMe") == "on" {
		setCookie(w, cookieEmail, user.Email, rememberEmailTTL)
	} else {
		clearCookie(w, cookieEmail)
	}

	respond(w, r, Envelope{
		StatusCode: http.StatusOK,
		Message:    "Logged in successfully!",
		Redirect:   "/search",
	})
}

// Logout destroys the session and clears its cookie in the same response.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if sess := auth.SessionFrom(r.Context()); sess != nil {
		h.sessions.Destroy(sess.Token())
	}
	clearCookie(w, middleware.CookieName)

	respond(w, r, Envelope{
		StatusCode: http.StatusOK,
		Message:    "Logged out successfully",
		Redirect:   "/login",
	})
}
